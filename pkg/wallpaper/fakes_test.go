package wallpaper

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testColor = color.RGBA{R: 200, G: 40, B: 40, A: 255}

// MockDesktop is a mock implementation of the Desktop interface.
type MockDesktop struct {
	mock.Mock
}

func (m *MockDesktop) SetWallpaper(path string, displayID int) error {
	args := m.Called(path, displayID)
	return args.Error(0)
}

// fakeSettings is a goroutine-safe Settings.
type fakeSettings struct {
	mu        sync.Mutex
	autoApply bool
	limit     int
	interval  int
	lastFetch time.Time
}

func (s *fakeSettings) GetAutoApplyOnLaunch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoApply
}

func (s *fakeSettings) GetCacheLimit() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.limit
}

func (s *fakeSettings) GetRefreshIntervalSeconds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

func (s *fakeSettings) SetLastFetchTimestamp(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastFetch = t
}

func (s *fakeSettings) LastFetch() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFetch
}

// fakeFetcher hands out img0, img1, ... and serves a small PNG for each.
type fakeFetcher struct {
	mu        sync.Mutex
	next      int
	batchErr  error
	downloads map[string]int
	gates     map[string]chan struct{}
	bodies    map[string][]byte
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		downloads: make(map[string]int),
		gates:     make(map[string]chan struct{}),
		bodies:    make(map[string][]byte),
	}
}

func testLocator(i int) Locator {
	name := fmt.Sprintf("img%d.png", i)
	return Locator{URL: "https://img.example.com/" + name, Filename: name}
}

func (f *fakeFetcher) FetchBatch(ctx context.Context, count int) ([]Locator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	locs := make([]Locator, 0, count)
	for i := 0; i < count; i++ {
		locs = append(locs, testLocator(f.next))
		f.next++
	}
	return locs, nil
}

func (f *fakeFetcher) DownloadImage(ctx context.Context, loc Locator) ([]byte, error) {
	f.mu.Lock()
	f.downloads[loc.Filename]++
	gate := f.gates[loc.Filename]
	body, ok := f.bodies[loc.Filename]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if ok {
		return body, nil
	}
	return testPNG(64, 48, testColor), nil
}

// hold makes downloads of name block until the returned func is called.
func (f *fakeFetcher) hold(name string) func() {
	gate := make(chan struct{})
	f.mu.Lock()
	f.gates[name] = gate
	f.mu.Unlock()
	return func() { close(gate) }
}

func (f *fakeFetcher) setBody(name string, body []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bodies[name] = body
}

func (f *fakeFetcher) setBatchErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchErr = err
}

func (f *fakeFetcher) Downloads(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.downloads[name]
}

// recordingView captures everything the controller shows. It is only touched on the
// goroutine draining the dispatcher.
type recordingView struct {
	renders   int
	loading   int
	errors    []error
	notices   []string
	applied   []string
	autoFlags []bool
}

func (v *recordingView) Render(Snapshot) { v.renders++ }
func (v *recordingView) ShowLoading()    { v.loading++ }
func (v *recordingView) ShowError(err error) {
	v.errors = append(v.errors, err)
}
func (v *recordingView) ShowNotice(title, message string) {
	v.notices = append(v.notices, title)
}
func (v *recordingView) WallpaperApplied(path string, automatic bool) {
	v.applied = append(v.applied, path)
	v.autoFlags = append(v.autoFlags, automatic)
}

func testPNG(w, h int, c color.Color) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// settle drains the dispatcher until no background task is left.
func settle(t *testing.T, d *LoopDispatcher, c *Controller) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for {
		d.Drain()
		if c.Pending() == 0 && d.Drain() == 0 && c.Pending() == 0 {
			return
		}
		if time.Now().After(deadline) {
			require.FailNow(t, "background work did not settle", "pending=%d", c.Pending())
		}
		time.Sleep(time.Millisecond)
	}
}

// drainUntil drains the dispatcher until cond holds.
func drainUntil(t *testing.T, d *LoopDispatcher, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for {
		d.Drain()
		if cond() {
			return
		}
		if time.Now().After(deadline) {
			require.FailNow(t, "condition not met")
		}
		time.Sleep(time.Millisecond)
	}
}
