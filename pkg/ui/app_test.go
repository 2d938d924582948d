package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/dixieflatline76/Wallin/asset"
	"github.com/dixieflatline76/Wallin/config"
)

func TestWallinAppShowsPopoverOnLaunch(t *testing.T) {
	a := test.NewApp()
	cfg := config.NewAppConfig(a.Preferences())
	wa := NewWallinApp(a, cfg, asset.NewManager())
	wa.Bind(new(MockController))
	t.Cleanup(wa.Popover().Window().Close)

	wa.Started()
	assert.True(t, wa.Popover().Visible())

	wa.Popover().WallpaperApplied("/tmp/wallin/wallin_cache_a.png", true)
	assert.False(t, wa.Popover().Visible(), "the automatic apply closes the launch popover")

	wa.Started()
	assert.True(t, wa.Popover().Visible())
	wa.Started()
	assert.True(t, wa.Popover().Visible(), "a second call keeps it open")
}
