package ui

import (
	"fyne.io/fyne/v2"

	"github.com/dixieflatline76/Wallin/asset"
	"github.com/dixieflatline76/Wallin/config"
	"github.com/dixieflatline76/Wallin/pkg/wallpaper"
	"github.com/dixieflatline76/Wallin/util/log"
)

// WallinApp is the fyne side of the application: the popover, the tray and the
// settings menu.
type WallinApp struct {
	app      fyne.App
	cfg      *config.AppConfig
	assetMgr *asset.Manager
	popover  *Popover
	tray     *Tray
	ctrl     Controller
}

// NewWallinApp creates the popover. Call Bind once the controller exists.
func NewWallinApp(a fyne.App, cfg *config.AppConfig, assetMgr *asset.Manager) *WallinApp {
	wa := &WallinApp{app: a, cfg: cfg, assetMgr: assetMgr}
	wa.popover = NewPopover(a, wa.notifyUser, NewOS())
	return wa
}

// View is the wallpaper.View the controller reports to.
func (wa *WallinApp) View() wallpaper.View {
	return wa.popover
}

// Dispatcher runs controller callbacks on the fyne main goroutine.
func (wa *WallinApp) Dispatcher() wallpaper.Dispatcher {
	return wallpaper.DispatcherFunc(fyne.Do)
}

// Popover returns the carousel window.
func (wa *WallinApp) Popover() *Popover {
	return wa.popover
}

// Bind wires the controller into the popover, the settings menu and the tray.
func (wa *WallinApp) Bind(ctrl Controller) {
	wa.ctrl = ctrl
	settings := NewSettingsMenu(wa.app, wa.cfg, ctrl)
	wa.popover.Bind(ctrl, settings.Menu)
	wa.tray = NewTray(wa.app, wa.assetMgr, wa.popover, ctrl, settings)
	wa.tray.Install()
}

// Started opens the popover on launch. An automatic apply closes it again.
func (wa *WallinApp) Started() {
	if !wa.popover.Visible() {
		wa.popover.Show()
	}
}

// notifyUser sends a system notification when the user allows them.
func (wa *WallinApp) notifyUser(title, message string) {
	if !wa.cfg.GetAppNotificationsEnabled() {
		log.Debugf("Notification suppressed: %s: %s", title, message)
		return
	}
	wa.app.SendNotification(fyne.NewNotification(title, message))
}

// Run runs the fyne event loop until the app quits.
func (wa *WallinApp) Run() {
	wa.app.Run()
	if wa.ctrl != nil {
		wa.ctrl.Close()
	}
}
