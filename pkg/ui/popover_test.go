package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/dixieflatline76/Wallin/pkg/wallpaper"
)

func newTestPopover(t *testing.T) (*Popover, *MockController, *fakeOS, *noticeRecorder) {
	t.Helper()
	a := test.NewApp()
	osx := &fakeOS{}
	rec := &noticeRecorder{}
	p := NewPopover(a, rec.notify, osx)
	ctrl := new(MockController)
	p.Bind(ctrl, nil)
	t.Cleanup(p.Window().Close)
	return p, ctrl, osx, rec
}

func TestPopoverStartsDisabled(t *testing.T) {
	p, ctrl, _, _ := newTestPopover(t)

	assert.True(t, p.applyBtn.Disabled())
	assert.True(t, p.nextBtn.Disabled())
	assert.False(t, p.retryBtn.Visible())

	// Disabled buttons ignore taps.
	test.Tap(p.nextBtn)
	ctrl.AssertNotCalled(t, "Advance")
}

func TestPopoverRender(t *testing.T) {
	p, _, _, _ := newTestPopover(t)

	var snap wallpaper.Snapshot
	snap[wallpaper.SlotPrevious] = loadedSlot("a.png")
	snap[wallpaper.SlotCurrent] = loadedSlot("a.png")
	snap[wallpaper.SlotNext] = wallpaper.SlotView{State: wallpaper.StateLoading}
	p.Render(snap)

	assert.False(t, p.applyBtn.Disabled())
	assert.True(t, p.nextBtn.Disabled(), "next stays disabled until it has loaded")
	assert.True(t, p.progress.Visible())
	assert.Same(t, snap.Current().Data.Image, p.curImg.Image)
	assert.Same(t, snap.Previous().Data.Preview, p.prevImg.Image, "side frames use the preview")
	assert.Same(t, p.placeholder, p.nextImg.Image)

	snap[wallpaper.SlotNext] = loadedSlot("b.png")
	p.Render(snap)
	assert.False(t, p.nextBtn.Disabled())
	assert.False(t, p.progress.Visible())
}

func TestPopoverButtons(t *testing.T) {
	p, ctrl, _, _ := newTestPopover(t)

	var snap wallpaper.Snapshot
	for i := range snap {
		snap[i] = loadedSlot("a.png")
	}
	p.Render(snap)

	ctrl.On("Advance").Return(nil).Once()
	ctrl.On("Advance").Return(wallpaper.ErrRateLimited).Once()
	ctrl.On("ApplyCurrent").Return(errors.New("no desktop")).Once()

	test.Tap(p.nextBtn)
	test.Tap(p.nextBtn)
	test.Tap(p.applyBtn)

	ctrl.AssertExpectations(t)
}

func TestPopoverErrorAndRetry(t *testing.T) {
	p, ctrl, _, _ := newTestPopover(t)

	p.ShowLoading()
	assert.Equal(t, statusLoading, p.status.Text)

	p.ShowError(wallpaper.ErrNetwork)
	assert.True(t, p.retryBtn.Visible())
	assert.Contains(t, p.status.Text, "network")
	assert.False(t, p.progress.Visible())

	ctrl.On("Retry").Return().Once()
	test.Tap(p.retryBtn)
	ctrl.AssertExpectations(t)
	assert.False(t, p.retryBtn.Visible())
}

func TestPopoverNotices(t *testing.T) {
	p, _, osx, rec := newTestPopover(t)

	p.ShowNotice("Slow down", "Please wait")
	assert.Equal(t, "Please wait", p.status.Text)
	assert.Equal(t, []notice{{"Slow down", "Please wait"}}, rec.got)

	p.Show()
	assert.True(t, p.Visible())
	assert.Equal(t, 1, osx.foreground)

	p.WallpaperApplied("/tmp/wallin/x.png", false)
	assert.True(t, p.Visible(), "manual apply keeps the popover open")
	assert.Len(t, rec.got, 1)

	p.WallpaperApplied("/tmp/wallin/x.png", true)
	assert.False(t, p.Visible())
	assert.Equal(t, 1, osx.background)
	assert.Equal(t, notice{appliedNoticeTitle, statusApplied}, rec.got[1])
}

func TestPopoverToggle(t *testing.T) {
	p, _, osx, _ := newTestPopover(t)

	p.Toggle()
	assert.True(t, p.Visible())
	p.Toggle()
	assert.False(t, p.Visible())
	assert.Equal(t, 1, osx.foreground)
	assert.Equal(t, 1, osx.background)
}

func TestPopoverRetryAfterFailedRefill(t *testing.T) {
	p, ctrl, _, _ := newTestPopover(t)

	var snap wallpaper.Snapshot
	snap[wallpaper.SlotPrevious] = loadedSlot("a.png")
	snap[wallpaper.SlotCurrent] = loadedSlot("b.png")
	p.Render(snap)

	assert.True(t, p.nextBtn.Disabled())
	assert.True(t, p.retryBtn.Visible(), "an empty next slot can be fetched again")

	ctrl.On("Retry").Return().Once()
	test.Tap(p.retryBtn)
	ctrl.AssertExpectations(t)

	snap[wallpaper.SlotNext] = wallpaper.SlotView{State: wallpaper.StateLoading}
	p.Render(snap)
	assert.False(t, p.retryBtn.Visible())

	snap[wallpaper.SlotNext] = loadedSlot("c.png")
	p.Render(snap)
	assert.False(t, p.retryBtn.Visible())
	assert.False(t, p.nextBtn.Disabled())
}
