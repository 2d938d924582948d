package ui

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/disintegration/imaging"

	"github.com/dixieflatline76/Wallin/config"
	"github.com/dixieflatline76/Wallin/pkg/wallpaper"
	"github.com/dixieflatline76/Wallin/util/log"
)

// Popover is the small window showing the previous/current/next carousel. It
// implements wallpaper.View; every method runs on the fyne main goroutine.
type Popover struct {
	app     fyne.App
	window  fyne.Window
	actions Actions
	notify  Notifier
	os      OS

	prevImg  *canvas.Image
	curImg   *canvas.Image
	nextImg  *canvas.Image
	status   *widget.Label
	progress *widget.ProgressBarInfinite

	applyBtn    *widget.Button
	nextBtn     *widget.Button
	retryBtn    *widget.Button
	settingsBtn *widget.Button

	settingsMenu func() *fyne.Menu
	placeholder  image.Image
	visible      bool
}

// NewPopover builds the popover window. It stays hidden until Show.
func NewPopover(a fyne.App, notify Notifier, os OS) *Popover {
	p := &Popover{
		app:         a,
		notify:      notify,
		os:          os,
		placeholder: imaging.New(wallpaper.PreviewWidth, wallpaper.PreviewHeight, color.NRGBA{R: 128, G: 128, B: 128, A: 40}),
	}

	p.prevImg = p.newFrame(wallpaper.PreviewWidth, wallpaper.PreviewHeight)
	p.curImg = p.newFrame(centerWidth, centerHeight)
	p.nextImg = p.newFrame(wallpaper.PreviewWidth, wallpaper.PreviewHeight)

	p.status = widget.NewLabel("")
	p.status.Alignment = fyne.TextAlignCenter
	p.progress = widget.NewProgressBarInfinite()
	p.progress.Hide()

	p.applyBtn = widget.NewButtonWithIcon("Use as Wallpaper", theme.ConfirmIcon(), p.onApply)
	p.applyBtn.Importance = widget.HighImportance
	p.nextBtn = widget.NewButtonWithIcon("Next", theme.MediaSkipNextIcon(), p.onNext)
	p.retryBtn = widget.NewButtonWithIcon("Retry", theme.ViewRefreshIcon(), p.onRetry)
	p.retryBtn.Hide()
	p.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), p.onSettings)
	p.applyBtn.Disable()
	p.nextBtn.Disable()

	p.window = a.NewWindow(config.AppName)
	p.window.SetFixedSize(true)
	p.window.SetCloseIntercept(p.Hide)
	p.window.SetContent(p.layout())
	p.window.Resize(fyne.NewSize(popoverWidth, popoverHeight))
	return p
}

// Bind connects the buttons to the carousel and the settings menu.
func (p *Popover) Bind(actions Actions, settingsMenu func() *fyne.Menu) {
	p.actions = actions
	p.settingsMenu = settingsMenu
}

func (p *Popover) newFrame(w, h float32) *canvas.Image {
	img := canvas.NewImageFromImage(p.placeholder)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.SetMinSize(fyne.NewSize(w, h))
	return img
}

func (p *Popover) layout() fyne.CanvasObject {
	carousel := container.NewHBox(
		layout.NewSpacer(),
		container.NewCenter(p.prevImg),
		container.NewCenter(p.curImg),
		container.NewCenter(p.nextImg),
		layout.NewSpacer(),
	)
	buttons := container.NewHBox(p.settingsBtn, layout.NewSpacer(), p.retryBtn, p.nextBtn, p.applyBtn)
	footer := container.NewVBox(p.progress, p.status, buttons)
	return container.NewPadded(container.NewBorder(nil, footer, nil, nil, carousel))
}

// Window returns the popover window.
func (p *Popover) Window() fyne.Window {
	return p.window
}

// Visible reports whether the popover is showing.
func (p *Popover) Visible() bool {
	return p.visible
}

// Show brings the popover to the front.
func (p *Popover) Show() {
	p.os.TransformToForeground()
	p.window.CenterOnScreen()
	p.window.Show()
	p.window.RequestFocus()
	p.visible = true
}

// Hide hides the popover without closing it.
func (p *Popover) Hide() {
	p.window.Hide()
	p.os.TransformToBackground()
	p.visible = false
}

// Toggle shows the popover when hidden and hides it otherwise.
func (p *Popover) Toggle() {
	if p.visible {
		p.Hide()
		return
	}
	p.Show()
}

// Render implements wallpaper.View.
func (p *Popover) Render(snap wallpaper.Snapshot) {
	p.setFrame(p.prevImg, snap.Previous(), true)
	p.setFrame(p.curImg, snap.Current(), false)
	p.setFrame(p.nextImg, snap.Next(), true)

	if snap.Current().Loaded() {
		p.applyBtn.Enable()
	} else {
		p.applyBtn.Disable()
	}
	if snap.Next().Loaded() {
		p.nextBtn.Enable()
	} else {
		p.nextBtn.Disable()
	}
	// A failed refill leaves Next empty with nothing in flight.
	if snap.Current().Loaded() {
		if snap.Next().State == wallpaper.StateEmpty {
			p.retryBtn.Show()
		} else {
			p.retryBtn.Hide()
		}
	}

	loading := false
	for _, v := range snap {
		loading = loading || v.State == wallpaper.StateLoading
	}
	if loading {
		p.startProgress()
	} else {
		p.stopProgress()
	}
}

func (p *Popover) setFrame(frame *canvas.Image, v wallpaper.SlotView, side bool) {
	img := p.placeholder
	if v.Loaded() {
		img = v.Data.Image
		if side && v.Data.Preview != nil {
			img = v.Data.Preview
		}
	}
	if frame.Image == img {
		return
	}
	frame.Image = img
	frame.Refresh()
}

// ShowLoading implements wallpaper.View.
func (p *Popover) ShowLoading() {
	p.retryBtn.Hide()
	p.setStatus(statusLoading, widget.MediumImportance)
	p.startProgress()
}

// ShowError implements wallpaper.View.
func (p *Popover) ShowError(err error) {
	p.stopProgress()
	p.setStatus(fmt.Sprintf(statusLoadFailedFmt, err), widget.DangerImportance)
	p.retryBtn.Show()
}

// ShowNotice implements wallpaper.View.
func (p *Popover) ShowNotice(title, message string) {
	p.setStatus(message, widget.WarningImportance)
	p.notify(title, message)
}

// WallpaperApplied implements wallpaper.View. An automatic change closes the popover
// and tells the user through a notification.
func (p *Popover) WallpaperApplied(path string, automatic bool) {
	log.Debugf("Popover: wallpaper applied from %s (automatic=%v)", path, automatic)
	p.setStatus(statusApplied, widget.SuccessImportance)
	if automatic {
		if p.visible {
			p.Hide()
		}
		p.notify(appliedNoticeTitle, statusApplied)
	}
}

func (p *Popover) setStatus(text string, importance widget.Importance) {
	p.status.Importance = importance
	p.status.SetText(text)
}

func (p *Popover) startProgress() {
	p.progress.Show()
	p.progress.Start()
}

func (p *Popover) stopProgress() {
	p.progress.Stop()
	p.progress.Hide()
	if p.status.Text == statusLoading {
		p.setStatus("", widget.MediumImportance)
	}
}

func (p *Popover) onApply() {
	if p.actions == nil {
		return
	}
	if err := p.actions.ApplyCurrent(); err != nil {
		log.Printf("Use as wallpaper: %v", err)
	}
}

func (p *Popover) onNext() {
	if p.actions == nil {
		return
	}
	err := p.actions.Advance()
	switch {
	case err == nil:
		p.setStatus("", widget.MediumImportance)
	case errors.Is(err, wallpaper.ErrRateLimited):
		// the controller already showed a notice
	default:
		log.Printf("Next wallpaper: %v", err)
	}
}

func (p *Popover) onRetry() {
	if p.actions == nil {
		return
	}
	p.retryBtn.Hide()
	p.actions.Retry()
}

func (p *Popover) onSettings() {
	if p.settingsMenu == nil {
		return
	}
	c := p.window.Canvas()
	pos := p.app.Driver().AbsolutePositionForObject(p.settingsBtn)
	pos = pos.Add(fyne.NewPos(0, p.settingsBtn.Size().Height))
	widget.ShowPopUpMenuAtPosition(p.settingsMenu(), c, pos)
}
