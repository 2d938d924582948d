package wallpaper

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// AdvanceLimiter gates the "next wallpaper" action with a sliding-window click counter.
// Clicks older than the window are pruned lazily on each check; there is no token
// refill or smoothing.
type AdvanceLimiter struct {
	mu     sync.Mutex
	clock  clockwork.Clock
	max    int
	window time.Duration
	clicks []time.Time
}

// NewAdvanceLimiter allows at most max advances in any trailing window. A max below
// zero is treated as zero, which denies every advance.
func NewAdvanceLimiter(clock clockwork.Clock, max int, window time.Duration) *AdvanceLimiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if max < 0 {
		max = 0
	}
	return &AdvanceLimiter{
		clock:  clock,
		max:    max,
		window: window,
		clicks: make([]time.Time, 0, max),
	}
}

// NewDefaultAdvanceLimiter allows 20 advances per 30 seconds.
func NewDefaultAdvanceLimiter(clock clockwork.Clock) *AdvanceLimiter {
	return NewAdvanceLimiter(clock, MaxAdvancesPerWindow, AdvanceWindow)
}

// TryAdvance records a click at now and reports whether it is allowed.
// Denied clicks are not recorded.
func (l *AdvanceLimiter) TryAdvance(now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pruneLocked(now)
	if len(l.clicks) >= l.max {
		return false
	}
	l.clicks = append(l.clicks, now)
	return true
}

// Allow is TryAdvance at the limiter clock's current time.
func (l *AdvanceLimiter) Allow() bool {
	return l.TryAdvance(l.clock.Now())
}

// Remaining returns how many advances are still allowed at now.
func (l *AdvanceLimiter) Remaining(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pruneLocked(now)
	return l.max - len(l.clicks)
}

// RetryAfter returns how long until the next advance is allowed, zero if it already is.
func (l *AdvanceLimiter) RetryAfter(now time.Time) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pruneLocked(now)
	if len(l.clicks) < l.max {
		return 0
	}
	if len(l.clicks) == 0 {
		return l.window
	}
	return l.clicks[0].Add(l.window).Sub(now)
}

// pruneLocked drops clicks at least one window old. CALLER MUST HOLD l.mu
func (l *AdvanceLimiter) pruneLocked(now time.Time) {
	keep := 0
	for keep < len(l.clicks) && now.Sub(l.clicks[keep]) >= l.window {
		keep++
	}
	if keep > 0 {
		l.clicks = append(l.clicks[:0], l.clicks[keep:]...)
	}
}
