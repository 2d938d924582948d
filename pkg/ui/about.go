package ui

import (
	"fmt"
	"image"
	"image/color"
	"net/url"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dixieflatline76/Wallin/asset"
	"github.com/dixieflatline76/Wallin/config"
	"github.com/dixieflatline76/Wallin/util/log"
)

// addVersionWatermark draws the app version in the bottom right corner of img.
func addVersionWatermark(img image.Image, version string) image.Image {
	versionString := fmt.Sprintf("Version: %s", version)
	b := img.Bounds()

	watermark := imaging.New(b.Dx(), b.Dy(), color.Transparent)
	col := color.NRGBA{R: 40, G: 40, B: 40, A: 200}

	bounds, _ := font.BoundString(basicfont.Face7x13, versionString)
	textWidth := bounds.Max.X.Ceil()

	d := &font.Drawer{
		Dst:  watermark,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(b.Dx()-textWidth-10, b.Dy()-10),
	}
	d.DrawString(versionString)

	return imaging.Overlay(img, watermark, image.Pt(0, 0), 1)
}

// aboutContent is the splash image above the about text and the home page link.
func aboutContent(assetMgr *asset.Manager) fyne.CanvasObject {
	box := container.NewVBox()

	splash, err := assetMgr.GetImage("splash.png")
	if err != nil {
		log.Printf("Failed to load splash image: %v", err)
	} else {
		img := canvas.NewImageFromImage(addVersionWatermark(splash, config.AppVersion))
		img.FillMode = canvas.ImageFillOriginal
		box.Add(img)
	}

	box.Add(createSectionTitleLabel(config.AppName))
	if text, err := assetMgr.GetText("about.txt"); err == nil {
		box.Add(createDescriptionLabel(text))
	}
	if home, err := url.Parse(config.AppHomeURL); err == nil {
		box.Add(widget.NewHyperlink(config.AppHomeURL, home))
	}
	return box
}

// ShowAbout shows the about splash for a few seconds. Drivers without splash
// windows get a normal window the user closes.
func ShowAbout(a fyne.App, assetMgr *asset.Manager) {
	content := aboutContent(assetMgr)

	drv, ok := a.Driver().(desktop.Driver)
	if !ok {
		w := a.NewWindow("About " + config.AppName)
		w.SetContent(container.NewPadded(content))
		w.CenterOnScreen()
		w.Show()
		return
	}

	splashWindow := drv.CreateSplashWindow()
	splashWindow.SetContent(container.NewPadded(content))
	splashWindow.CenterOnScreen()
	splashWindow.Show()

	time.AfterFunc(aboutSplashTime, func() {
		fyne.Do(splashWindow.Close)
	})
}
