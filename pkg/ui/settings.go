package ui

import (
	"net/url"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/dixieflatline76/Wallin/config"
	"github.com/dixieflatline76/Wallin/pkg/ui/setting"
	"github.com/dixieflatline76/Wallin/pkg/wallpaper"
	"github.com/dixieflatline76/Wallin/util/log"
)

// Preferences is the part of the app configuration the settings menu edits.
type Preferences interface {
	GetAutoApplyOnLaunch() bool
	SetAutoApplyOnLaunch(bool)
	GetRefreshIntervalSeconds() int
	SetRefreshIntervalSeconds(int)
	GetCacheLimit() int
	SetCacheLimit(int)
	GetAppNotificationsEnabled() bool
	SetAppNotificationsEnabled(bool)
}

// SettingsMenu builds the settings menu shown by the tray and the popover.
type SettingsMenu struct {
	app   fyne.App
	prefs Preferences
	ctrl  Controller
}

// NewSettingsMenu creates a SettingsMenu.
func NewSettingsMenu(a fyne.App, prefs Preferences, ctrl Controller) *SettingsMenu {
	return &SettingsMenu{app: a, prefs: prefs, ctrl: ctrl}
}

// Menu returns a new menu reflecting the current preferences.
func (sm *SettingsMenu) Menu() *fyne.Menu {
	return fyne.NewMenu("Settings", sm.Items()...)
}

// Items returns the settings entries.
func (sm *SettingsMenu) Items() []*fyne.MenuItem {
	autoApply := setting.NewToggleItem("Set Wallpaper on Launch", sm.prefs.GetAutoApplyOnLaunch(), func(on bool) {
		log.Printf("Settings: auto-apply on launch = %v", on)
		sm.prefs.SetAutoApplyOnLaunch(on)
	})

	notifications := setting.NewToggleItem("Notifications", sm.prefs.GetAppNotificationsEnabled(), func(on bool) {
		sm.prefs.SetAppNotificationsEnabled(on)
	})

	intervals := wallpaper.GetRefreshIntervals()
	current := indexOf(intervals, wallpaper.RefreshIntervalFromSeconds(sm.prefs.GetRefreshIntervalSeconds()))
	refresh := setting.NewChoiceMenu("Auto Change", setting.Stringers(intervals), current, func(i int) {
		r := intervals[i]
		log.Printf("Settings: auto change = %s", r)
		sm.prefs.SetRefreshIntervalSeconds(r.Seconds())
		sm.ctrl.SetRefreshInterval(r.Duration())
	})

	limits := wallpaper.GetCacheLimits()
	currentLimit := -1
	for i, l := range limits {
		if l.Size() == sm.prefs.GetCacheLimit() {
			currentLimit = i
		}
	}
	cache := setting.NewChoiceMenu("Cache Size", setting.Stringers(limits), currentLimit, func(i int) {
		sm.prefs.SetCacheLimit(limits[i].Size())
	})

	return []*fyne.MenuItem{
		autoApply,
		refresh.Item,
		fyne.NewMenuItemSeparator(),
		cache.Item,
		fyne.NewMenuItem("Open Cache Folder", sm.openCacheFolder),
		fyne.NewMenuItemSeparator(),
		notifications,
	}
}

func (sm *SettingsMenu) openCacheFolder() {
	dir, err := filepath.Abs(sm.ctrl.CacheDir())
	if err != nil {
		log.Printf("Cache folder: %v", err)
		return
	}
	p := filepath.ToSlash(dir)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // C:/Users/... on windows
	}
	u := &url.URL{Scheme: "file", Path: p}
	if err := sm.app.OpenURL(u); err != nil {
		log.Printf("Failed to open %s: %v", u, err)
	}
}

func indexOf[T comparable](s []T, v T) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

var _ Preferences = (*config.AppConfig)(nil)
