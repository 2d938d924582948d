package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/dixieflatline76/Wallin/util"
	"github.com/dixieflatline76/Wallin/util/log"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"
)

// Settings is the subset of the persisted preferences the controller reads and writes.
type Settings interface {
	GetAutoApplyOnLaunch() bool
	GetCacheLimit() int
	GetRefreshIntervalSeconds() int
	SetLastFetchTimestamp(t time.Time)
}

// View receives carousel updates. All methods are called on the UI context.
type View interface {
	Render(snap Snapshot)
	ShowLoading()
	ShowError(err error)
	ShowNotice(title, message string)
	WallpaperApplied(path string, automatic bool)
}

// NopView discards all updates.
type NopView struct{}

func (NopView) Render(Snapshot)               {}
func (NopView) ShowLoading()                  {}
func (NopView) ShowError(error)               {}
func (NopView) ShowNotice(string, string)     {}
func (NopView) WallpaperApplied(string, bool) {}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used by the limiter, the auto-apply delay and the refresher.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithView sets the view notified of carousel changes.
func WithView(view View) Option {
	return func(c *Controller) { c.view = view }
}

// WithLimiter replaces the default 20-per-30s advance limiter.
func WithLimiter(limiter *AdvanceLimiter) Option {
	return func(c *Controller) { c.limiter = limiter }
}

// WithPreviewer replaces the default side-slot previewer.
func WithPreviewer(previewer *Previewer) Option {
	return func(c *Controller) { c.previewer = previewer }
}

// WithMaxBackgroundTasks bounds the number of concurrent downloads and decodes.
func WithMaxBackgroundTasks(n int64) Option {
	return func(c *Controller) {
		if n > 0 {
			c.maxTasks = n
		}
	}
}

// Controller owns the carousel and every component feeding it. Advance, ApplyCurrent,
// Retry, Snapshot and Start must be called on the UI context; background results are
// handed back through the Dispatcher.
type Controller struct {
	fetcher   Fetcher
	cache     *CacheStore
	desktop   Desktop
	settings  Settings
	dispatch  Dispatcher
	view      View
	clock     clockwork.Clock
	limiter   *AdvanceLimiter
	previewer *Previewer
	maxTasks  int64

	carousel  *Carousel
	auto      *AutoApplier
	refresher *Refresher
	sem       *semaphore.Weighted
	flight    singleflight.Group

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
	pending   *util.SafeCounter
	notified  *util.SafeFlag

	// UI context only
	started bool
	loading bool
	loadErr error
}

// NewController creates a Controller. Nothing is fetched until Start.
func NewController(fetcher Fetcher, cache *CacheStore, desktop Desktop, settings Settings, dispatch Dispatcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher:  fetcher,
		cache:    cache,
		desktop:  desktop,
		settings: settings,
		dispatch: dispatch,
		maxTasks: MaxBackgroundTasks,
		carousel: NewCarousel(),
		pending:  util.NewSafeCounter(),
		notified: util.NewSafeFlag(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.clock == nil {
		c.clock = clockwork.NewRealClock()
	}
	if c.view == nil {
		c.view = NopView{}
	}
	if c.limiter == nil {
		c.limiter = NewDefaultAdvanceLimiter(c.clock)
	}
	if c.previewer == nil {
		c.previewer = NewPreviewer(PreviewWidth, PreviewHeight)
	}

	c.sem = semaphore.NewWeighted(c.maxTasks)
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.auto = NewAutoApplier(c.clock, AutoApplyDelay, settings.GetAutoApplyOnLaunch, c, desktop)

	interval := time.Duration(settings.GetRefreshIntervalSeconds()) * time.Second
	c.refresher = NewRefresher(c.clock, interval, func(time.Time) {
		c.onUI(c.autoAdvance)
	})
	return c
}

// Start requests the initial batch and starts the refresher. Later calls do nothing.
func (c *Controller) Start(ctx context.Context) {
	if c.started {
		return
	}
	c.started = true

	c.cancel()
	c.ctx, c.cancel = context.WithCancel(ctx)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.refresher.Run(c.ctx)
	}()

	c.loadInitial()
}

// Close cancels background work and waits for it to finish.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		c.cancel()
		c.auto.Stop()
		c.wg.Wait()
		log.Print("Controller: stopped")
	})
}

// Snapshot returns a copy of the carousel.
func (c *Controller) Snapshot() Snapshot {
	return c.carousel.Snapshot()
}

// Pending returns the number of background tasks not yet finished.
func (c *Controller) Pending() int {
	return c.pending.Value()
}

// CanAdvance reports whether Advance would currently succeed.
func (c *Controller) CanAdvance() bool {
	return c.carousel.Ready() && c.limiter.Remaining(c.clock.Now()) > 0
}

// CacheDir returns the folder holding cached wallpapers.
func (c *Controller) CacheDir() string {
	return c.cache.Dir()
}

// SetRefreshInterval changes the automatic rotation interval. Zero disables it.
func (c *Controller) SetRefreshInterval(d time.Duration) {
	c.refresher.SetInterval(d)
}

// Advance shifts the carousel left and fetches a new next image. It returns ErrNotReady
// while the next image is loading and ErrRateLimited when the click limit is reached.
// If an earlier refill failed, Advance starts a new one and still returns ErrNotReady.
func (c *Controller) Advance() error {
	if !c.carousel.Ready() {
		c.recoverNext()
		return ErrNotReady
	}
	if !c.limiter.Allow() {
		wait := c.limiter.RetryAfter(c.clock.Now()).Round(time.Second)
		log.Debugf("Advance: rate limited, retry in %v", wait)
		c.view.ShowNotice("Slow down", fmt.Sprintf("Please wait %v before switching again.", wait))
		return ErrRateLimited
	}
	return c.shift()
}

// ApplyCurrent sets the current image as the desktop wallpaper.
func (c *Controller) ApplyCurrent() error {
	return c.applyCurrent(false)
}

// Retry reloads whatever failed: the whole carousel after an initial error, otherwise
// a missing next image.
func (c *Controller) Retry() {
	if c.loading {
		return
	}
	switch {
	case c.loadErr != nil, c.carousel.View(SlotCurrent).State == StateEmpty:
		c.loadInitial()
	default:
		c.recoverNext()
	}
}

// recoverNext refills Next when its last load failed and nothing is in flight.
func (c *Controller) recoverNext() bool {
	if c.loading || !c.carousel.View(SlotCurrent).Loaded() {
		return false
	}
	if c.carousel.View(SlotNext).State != StateEmpty {
		return false
	}
	log.Print("Next wallpaper is missing, fetching a new one")
	c.refillNext()
	c.render()
	return true
}

// EnsureCached returns the cache path of loc, downloading it first when needed.
// It is safe to call from any goroutine.
func (c *Controller) EnsureCached(ctx context.Context, loc Locator) (string, error) {
	path, err := c.cache.Path(loc)
	if err != nil {
		return "", err
	}
	if c.cache.Has(loc) {
		return path, nil
	}

	data, err := c.resolve(ctx, loc)
	if err != nil {
		return "", err
	}
	if !c.cache.Has(loc) {
		if err := c.cache.Write(loc, data.Bytes); err != nil {
			return "", err
		}
	}
	return path, nil
}

func (c *Controller) loadInitial() {
	c.loading = true
	c.loadErr = nil
	c.view.ShowLoading()

	c.goBackground(func(ctx context.Context) {
		locs, err := c.fetcher.FetchBatch(ctx, InitialBatchSize)
		if err == nil && len(locs) < InitialBatchSize {
			err = fmt.Errorf("%w: got %d of %d images", ErrDecode, len(locs), InitialBatchSize)
		}
		if err == nil {
			c.settings.SetLastFetchTimestamp(c.clock.Now())
		}
		c.onUI(func() { c.onInitialBatch(locs, err) })
	})
}

// onInitialBatch fills Previous and Current from the first locator and Next from the second.
func (c *Controller) onInitialBatch(locs []Locator, err error) {
	c.loading = false
	if err != nil {
		log.Printf("Failed to fetch wallpapers: %v", err)
		c.loadErr = err
		c.view.ShowError(err)
		return
	}

	first, second := locs[0], locs[1]
	c.load(SlotPrevious, first)
	c.load(SlotCurrent, first)
	c.load(SlotNext, second)
	c.render()

	c.auto.Arm(c.ctx, first, func(outcome ApplyOutcome) {
		c.onUI(func() { c.onApplied(outcome) })
	})
}

// load starts resolving loc into s.
func (c *Controller) load(s Slot, loc Locator) {
	gen := c.carousel.Begin(s, loc)
	c.goBackground(func(ctx context.Context) {
		data, err := c.resolve(ctx, loc)
		c.onUI(func() { c.finish(s, gen, data, err) })
	})
}

// refillNext fetches one new locator and loads it into Next.
func (c *Controller) refillNext() {
	gen := c.carousel.Begin(SlotNext, Locator{})
	c.goBackground(func(ctx context.Context) {
		locs, err := c.fetcher.FetchBatch(ctx, AdvanceBatchSize)
		if err == nil && len(locs) == 0 {
			err = fmt.Errorf("%w: empty batch", ErrDecode)
		}
		if err != nil {
			c.onUI(func() { c.finish(SlotNext, gen, SlotData{}, err) })
			return
		}
		c.settings.SetLastFetchTimestamp(c.clock.Now())

		data, err := c.resolve(ctx, locs[0])
		c.onUI(func() { c.finish(SlotNext, gen, data, err) })
	})
}

// finish applies a load result if the slot has not been superseded.
func (c *Controller) finish(s Slot, gen uint64, data SlotData, err error) {
	if err != nil {
		if c.carousel.Fail(s, gen) {
			log.Printf("Failed to load %s wallpaper: %v", s, err)
			c.render()
		}
		return
	}
	if !c.carousel.Fill(s, gen, data) {
		log.Debugf("Dropping stale %s result for %s", s, data.Locator)
		return
	}
	c.render()
}

func (c *Controller) shift() error {
	if err := c.carousel.Advance(); err != nil {
		return err
	}
	c.render()
	c.refillNext()
	return nil
}

// autoAdvance is the refresher tick: rotate and apply without consulting the click limiter.
func (c *Controller) autoAdvance() {
	if !c.carousel.Ready() {
		log.Print("Refresher: next wallpaper not ready, skipping this rotation")
		c.recoverNext()
		return
	}
	if err := c.shift(); err != nil {
		log.Printf("Refresher: rotation failed: %v", err)
		return
	}
	if err := c.applyCurrent(true); err != nil {
		log.Printf("Refresher: could not apply wallpaper: %v", err)
	}
}

func (c *Controller) applyCurrent(automatic bool) error {
	cur := c.carousel.View(SlotCurrent)
	if !cur.Loaded() {
		return ErrNotReady
	}
	loc, data := cur.Locator, cur.Data.Bytes

	c.goBackground(func(ctx context.Context) {
		outcome := c.apply(loc, data)
		outcome.Automatic = automatic
		c.onUI(func() { c.onApplied(outcome) })
	})
	return nil
}

// apply writes data to the cache when missing and hands the cached path to the desktop.
func (c *Controller) apply(loc Locator, data []byte) ApplyOutcome {
	outcome := ApplyOutcome{Locator: loc}
	path, err := c.cache.Path(loc)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	if !c.cache.Has(loc) {
		if err := c.cache.Write(loc, data); err != nil {
			outcome.Err = err
			return outcome
		}
	}

	outcome.Path = path
	if err := c.desktop.SetWallpaper(path, PrimaryDisplay); err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Applied = true
	return outcome
}

func (c *Controller) onApplied(outcome ApplyOutcome) {
	switch {
	case outcome.Applied:
		log.Printf("Wallpaper set to %s", outcome.Path)
		c.view.WallpaperApplied(outcome.Path, outcome.Automatic)
	case outcome.Err == nil:
		// warm-up only, auto-apply disabled
	case outcome.Automatic && outcome.Path == "":
		log.Printf("Auto-apply could not cache %s: %v", outcome.Locator, outcome.Err)
	default:
		log.Printf("Failed to set wallpaper %s: %v", outcome.Locator, outcome.Err)
		if c.notified.SetOnce() {
			c.view.ShowNotice("Wallpaper not set", outcome.Err.Error())
		}
	}
}

// resolve returns the decoded image for loc. Concurrent calls for the same filename
// share one download.
func (c *Controller) resolve(ctx context.Context, loc Locator) (SlotData, error) {
	v, err, shared := c.flight.Do(loc.Filename, func() (interface{}, error) {
		data, img, err := c.fetchImage(ctx, loc)
		if err != nil {
			return SlotData{}, err
		}
		preview, err := c.previewer.Preview(ctx, img)
		if err != nil {
			return SlotData{}, err
		}
		return SlotData{Image: img, Preview: preview, Bytes: data}, nil
	})
	if err != nil {
		return SlotData{}, err
	}
	if shared {
		log.Debugf("resolve: shared load of %s", loc)
	}
	data := v.(SlotData)
	data.Locator = loc
	return data, nil
}

// fetchImage reads loc from the cache or downloads, decodes and caches it.
func (c *Controller) fetchImage(ctx context.Context, loc Locator) ([]byte, image.Image, error) {
	data, err := c.cache.Read(loc)
	if err == nil {
		img, derr := DecodeImage(data)
		if derr == nil {
			return data, img, nil
		}
		log.Printf("Cached %s is unreadable, downloading again: %v", loc, derr)
	} else if !errors.Is(err, ErrCacheMiss) {
		log.Printf("Cache read for %s failed: %v", loc, err)
	}

	data, err = c.fetcher.DownloadImage(ctx, loc)
	if err != nil {
		return nil, nil, err
	}
	img, err := DecodeImage(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", loc, err)
	}
	c.store(loc, data)
	return data, img, nil
}

// store writes through to the cache. Failures are logged only.
func (c *Controller) store(loc Locator, data []byte) {
	if err := c.cache.Write(loc, data); err != nil {
		log.Printf("Failed to cache %s: %v", loc, err)
		return
	}
	if limit := c.settings.GetCacheLimit(); limit > 0 {
		if _, err := c.cache.Trim(limit); err != nil {
			log.Printf("Failed to trim cache: %v", err)
		}
	}
}

func (c *Controller) render() {
	c.view.Render(c.carousel.Snapshot())
}

// goBackground runs task on a bounded background goroutine.
func (c *Controller) goBackground(task func(ctx context.Context)) {
	ctx := c.ctx
	c.wg.Add(1)
	c.pending.Increment()
	go func() {
		defer c.wg.Done()
		defer c.pending.Decrement()

		if err := c.sem.Acquire(ctx, 1); err != nil {
			return
		}
		defer c.sem.Release(1)
		task(ctx)
	}()
}

// onUI hands fn to the UI context. fn is skipped once the controller is closed.
func (c *Controller) onUI(fn func()) {
	ctx := c.ctx
	c.dispatch.Do(func() {
		if ctx.Err() != nil {
			return
		}
		fn()
	})
}
