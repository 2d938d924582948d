package wallpaper

import (
	"context"
	"sync"
	"time"

	"github.com/dixieflatline76/Wallin/util"
	"github.com/dixieflatline76/Wallin/util/log"
	"github.com/jonboulle/clockwork"
)

// Warmer makes sure a locator is on disk and returns its cached path.
type Warmer interface {
	EnsureCached(ctx context.Context, loc Locator) (string, error)
}

// ApplyOutcome reports what a wallpaper push did.
type ApplyOutcome struct {
	Locator   Locator
	Path      string
	Applied   bool // the desktop call succeeded
	Automatic bool // triggered by the launch policy or the refresher rather than the user
	Err       error
}

// AutoApplier pushes the first current wallpaper of a launch to the desktop after a
// fixed delay. The first Arm wins; later calls are ignored for the rest of the launch.
type AutoApplier struct {
	clock   clockwork.Clock
	delay   time.Duration
	enabled func() bool
	warmer  Warmer
	desktop Desktop
	armed   *util.SafeFlag

	mu    sync.Mutex
	timer clockwork.Timer
	wg    sync.WaitGroup // the armed action, from Arm until it ran or was stopped
}

// NewAutoApplier creates an AutoApplier. enabled is read when the delay expires so a
// preference change during the delay is honoured.
func NewAutoApplier(clock clockwork.Clock, delay time.Duration, enabled func() bool, warmer Warmer, desktop Desktop) *AutoApplier {
	return &AutoApplier{
		clock:   clock,
		delay:   delay,
		enabled: enabled,
		warmer:  warmer,
		desktop: desktop,
		armed:   util.NewSafeFlag(),
	}
}

// Arm schedules the delayed action for loc and reports whether it was scheduled.
// onDone runs on the timer goroutine once the action has finished.
func (a *AutoApplier) Arm(ctx context.Context, loc Locator, onDone func(ApplyOutcome)) bool {
	if !a.armed.SetOnce() {
		log.Debugf("AutoApplier: already armed this launch, ignoring %s", loc)
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.wg.Add(1)
	a.timer = a.clock.AfterFunc(a.delay, func() {
		defer a.wg.Done()
		outcome := a.run(ctx, loc)
		if onDone != nil {
			onDone(outcome)
		}
	})
	log.Debugf("AutoApplier: armed for %s in %v", loc, a.delay)
	return true
}

// Armed reports whether Arm has already been called this launch.
func (a *AutoApplier) Armed() bool {
	return a.armed.Value()
}

// Stop cancels a pending action and waits for one that already fired. It does not
// re-arm. Cancel the ctx passed to Arm first so a running action skips the desktop.
func (a *AutoApplier) Stop() {
	a.mu.Lock()
	if a.timer != nil && a.timer.Stop() {
		a.wg.Done()
	}
	a.timer = nil
	a.mu.Unlock()

	a.wg.Wait()
}

// run warms the cache for loc and, when enabled, sets it as wallpaper.
func (a *AutoApplier) run(ctx context.Context, loc Locator) ApplyOutcome {
	outcome := ApplyOutcome{Locator: loc, Automatic: true}
	if ctx.Err() != nil {
		outcome.Err = ctx.Err()
		return outcome
	}

	path, err := a.warmer.EnsureCached(ctx, loc)
	if err != nil {
		log.Printf("AutoApplier: cache warm-up for %s failed: %v", loc, err)
		outcome.Err = err
		return outcome
	}
	outcome.Path = path

	if !a.enabled() {
		log.Printf("AutoApplier: auto-apply disabled, cached %s only", loc)
		return outcome
	}
	if err := ctx.Err(); err != nil {
		outcome.Err = err
		return outcome
	}

	if err := a.desktop.SetWallpaper(path, PrimaryDisplay); err != nil {
		log.Printf("AutoApplier: failed to set wallpaper %s: %v", path, err)
		outcome.Err = err
		return outcome
	}
	outcome.Applied = true
	log.Printf("AutoApplier: wallpaper set to %s", path)
	return outcome
}
