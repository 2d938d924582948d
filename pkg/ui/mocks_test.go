package ui

import (
	"image"
	"image/color"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/mock"

	"github.com/dixieflatline76/Wallin/pkg/wallpaper"
)

// MockController implements Controller for testing
type MockController struct {
	mock.Mock
}

func (m *MockController) Advance() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockController) ApplyCurrent() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockController) Retry() {
	m.Called()
}

func (m *MockController) CacheDir() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockController) SetRefreshInterval(d time.Duration) {
	m.Called(d)
}

func (m *MockController) Close() {
	m.Called()
}

// fakeOS counts activation policy changes.
type fakeOS struct {
	foreground, background int
}

func (f *fakeOS) TransformToForeground() { f.foreground++ }
func (f *fakeOS) TransformToBackground() { f.background++ }

type notice struct{ title, message string }

// noticeRecorder collects notifications.
type noticeRecorder struct {
	got []notice
}

func (r *noticeRecorder) notify(title, message string) {
	r.got = append(r.got, notice{title, message})
}

func loadedSlot(name string) wallpaper.SlotView {
	var img image.Image = imaging.New(40, 30, color.NRGBA{R: 10, G: 120, B: 200, A: 255})
	return wallpaper.SlotView{
		State:   wallpaper.StateLoaded,
		Locator: wallpaper.Locator{URL: "https://img.example.com/" + name, Filename: name},
		Data: wallpaper.SlotData{
			Locator: wallpaper.Locator{URL: "https://img.example.com/" + name, Filename: name},
			Image:   img,
			Preview: imaging.New(8, 20, color.White),
		},
	}
}
