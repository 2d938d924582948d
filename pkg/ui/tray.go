package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/dixieflatline76/Wallin/asset"
	"github.com/dixieflatline76/Wallin/config"
	"github.com/dixieflatline76/Wallin/pkg/wallpaper"
	"github.com/dixieflatline76/Wallin/util/log"
)

// Tray owns the system tray icon and its menu.
type Tray struct {
	app      fyne.App
	assetMgr *asset.Manager
	popover  *Popover
	ctrl     Controller
	settings *SettingsMenu
	menu     *fyne.Menu
}

// NewTray creates the tray menu. Install puts it in the system tray.
func NewTray(a fyne.App, assetMgr *asset.Manager, popover *Popover, ctrl Controller, settings *SettingsMenu) *Tray {
	t := &Tray{app: a, assetMgr: assetMgr, popover: popover, ctrl: ctrl, settings: settings}
	t.menu = t.buildMenu()
	return t
}

// Menu returns the tray menu.
func (t *Tray) Menu() *fyne.Menu {
	return t.menu
}

func (t *Tray) buildMenu() *fyne.Menu {
	settingsItem := fyne.NewMenuItem("Settings", nil)
	settingsItem.ChildMenu = t.settings.Menu()

	quit := fyne.NewMenuItem("Quit", t.quit)
	quit.IsQuit = true

	return fyne.NewMenu(config.AppName,
		fyne.NewMenuItem("Show "+config.AppName, t.popover.Toggle),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Next Wallpaper", t.next),
		fyne.NewMenuItem("Use as Wallpaper", t.apply),
		fyne.NewMenuItemSeparator(),
		settingsItem,
		fyne.NewMenuItem("About "+config.AppName, func() { ShowAbout(t.app, t.assetMgr) }),
		fyne.NewMenuItemSeparator(),
		quit,
	)
}

// Install sets the tray menu and icon. It reports false when the driver has no system tray.
func (t *Tray) Install() bool {
	desk, ok := t.app.(desktop.App)
	if !ok {
		log.Print("Tray icon not supported on this platform")
		return false
	}
	icon, err := t.assetMgr.GetIcon("tray.png")
	if err != nil {
		log.Printf("Failed to load tray icon: %v", err)
	}
	desk.SetSystemTrayMenu(t.menu)
	if icon != nil {
		desk.SetSystemTrayIcon(icon)
		t.app.SetIcon(icon)
	}
	return true
}

func (t *Tray) next() {
	if err := t.ctrl.Advance(); err != nil && !errors.Is(err, wallpaper.ErrRateLimited) {
		log.Printf("Next wallpaper: %v", err)
	}
}

func (t *Tray) apply() {
	if err := t.ctrl.ApplyCurrent(); err != nil {
		log.Printf("Use as wallpaper: %v", err)
	}
}

func (t *Tray) quit() {
	log.Print("Quitting...")
	t.ctrl.Close()
	t.app.Quit()
}
