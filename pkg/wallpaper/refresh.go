package wallpaper

import (
	"context"
	"sync"
	"time"

	"github.com/dixieflatline76/Wallin/util/log"
	"github.com/jonboulle/clockwork"
)

// Refresher calls onTick once per interval. An interval of zero or less parks the loop
// until SetInterval enables it again.
type Refresher struct {
	clock  clockwork.Clock
	onTick func(now time.Time)

	mu       sync.Mutex
	interval time.Duration
	reset    chan struct{}
}

// NewRefresher creates a Refresher. It does nothing until Run is called.
func NewRefresher(clock clockwork.Clock, interval time.Duration, onTick func(now time.Time)) *Refresher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Refresher{
		clock:    clock,
		onTick:   onTick,
		interval: interval,
		reset:    make(chan struct{}, 1),
	}
}

// Interval returns the active interval.
func (r *Refresher) Interval() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.interval
}

// SetInterval changes the interval. A running loop restarts its ticker immediately.
func (r *Refresher) SetInterval(d time.Duration) {
	r.mu.Lock()
	r.interval = d
	r.mu.Unlock()

	select {
	case r.reset <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is done.
func (r *Refresher) Run(ctx context.Context) {
	log.Print("Starting wallpaper refresher...")
	defer log.Print("Stopping wallpaper refresher.")

	// The interval is read below, so a reset queued before Run is already honoured.
	select {
	case <-r.reset:
	default:
	}

	for {
		interval := r.Interval()
		if interval <= 0 {
			log.Debug("Refresher: disabled, waiting for an interval")
			select {
			case <-r.reset:
				continue
			case <-ctx.Done():
				return
			}
		}

		if !r.runTicker(ctx, interval) {
			return
		}
	}
}

// runTicker ticks at interval until a reset (true) or ctx is done (false).
func (r *Refresher) runTicker(ctx context.Context, interval time.Duration) bool {
	log.Printf("Refresher: next wallpaper every %v", interval)
	ticker := r.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.Chan():
			r.onTick(now)
		case <-r.reset:
			return true
		case <-ctx.Done():
			return false
		}
	}
}
