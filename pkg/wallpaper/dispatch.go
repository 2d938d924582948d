package wallpaper

import (
	"context"
	"sync"
)

// Dispatcher runs functions on the UI-owning execution context. Every background
// completion reaches carousel state through exactly one Do call.
type Dispatcher interface {
	Do(fn func())
}

// DispatcherFunc adapts a function (for example fyne.Do) to a Dispatcher.
type DispatcherFunc func(fn func())

// Do calls f(fn).
func (f DispatcherFunc) Do(fn func()) {
	f(fn)
}

// LoopDispatcher queues functions on a channel drained by Run or Drain. It is the UI
// context for headless runs and tests.
type LoopDispatcher struct {
	queue    chan func()
	done     chan struct{}
	stopOnce sync.Once
}

// NewLoopDispatcher creates a dispatcher with a queue of the given size.
func NewLoopDispatcher(size int) *LoopDispatcher {
	if size < 1 {
		size = 1
	}
	return &LoopDispatcher{
		queue: make(chan func(), size),
		done:  make(chan struct{}),
	}
}

// Do enqueues fn. It blocks while the queue is full and drops fn once the dispatcher is stopped.
func (d *LoopDispatcher) Do(fn func()) {
	select {
	case <-d.done:
		return
	default:
	}
	select {
	case d.queue <- fn:
	case <-d.done:
	}
}

// Run executes queued functions until ctx is done, then stops the dispatcher.
func (d *LoopDispatcher) Run(ctx context.Context) error {
	defer d.Stop()
	for {
		select {
		case fn := <-d.queue:
			fn()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Drain executes everything currently queued without blocking and returns the count.
// It must only be called from the goroutine acting as the UI context.
func (d *LoopDispatcher) Drain() int {
	n := 0
	for {
		select {
		case fn := <-d.queue:
			fn()
			n++
		default:
			return n
		}
	}
}

// Stop makes further Do calls no-ops.
func (d *LoopDispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.done) })
}
