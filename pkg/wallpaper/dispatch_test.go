package wallpaper

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopDispatcherDrain(t *testing.T) {
	d := NewLoopDispatcher(8)
	var order []int
	for i := 0; i < 3; i++ {
		d.Do(func() { order = append(order, i) })
	}
	assert.Equal(t, 3, d.Drain())
	assert.Equal(t, []int{0, 1, 2}, order)
	assert.Zero(t, d.Drain())
}

func TestLoopDispatcherRun(t *testing.T) {
	d := NewLoopDispatcher(1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	var wg sync.WaitGroup
	var mu sync.Mutex
	count := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go d.Do(func() {
			mu.Lock()
			count++
			mu.Unlock()
			wg.Done()
		})
	}
	wg.Wait()
	assert.Equal(t, 10, count)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		require.FailNow(t, "Run did not return")
	}

	// Stopped dispatchers drop work instead of blocking.
	d.Do(func() { t.Error("ran after stop") })
	d.Do(func() { t.Error("ran after stop") })
}

func TestDispatcherFunc(t *testing.T) {
	called := false
	var d Dispatcher = DispatcherFunc(func(fn func()) { fn() })
	d.Do(func() { called = true })
	assert.True(t, called)
}
