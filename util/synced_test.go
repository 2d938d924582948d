package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeCounter(t *testing.T) {
	t.Run("Basic Operations", func(t *testing.T) {
		sc := NewSafeCounter()
		assert.Equal(t, 0, sc.Value())
		assert.Equal(t, 1, sc.Increment())
		assert.Equal(t, 2, sc.Increment())
		assert.Equal(t, 1, sc.Decrement())
		assert.Equal(t, 1, sc.Value())
	})

	t.Run("Concurrency", func(t *testing.T) {
		sc := NewSafeCounter()
		var wg sync.WaitGroup
		iterations := 1000

		wg.Add(iterations)
		for i := 0; i < iterations; i++ {
			go func() {
				defer wg.Done()
				sc.Increment()
			}()
		}
		wg.Wait()
		assert.Equal(t, iterations, sc.Value())
	})
}

func TestSafeFlag(t *testing.T) {
	sf := NewSafeFlag()
	assert.False(t, sf.Value())
	assert.True(t, sf.Set(true))
	assert.True(t, sf.Value())
	sf.Set(false)
	assert.False(t, sf.Value())
}

func TestSafeFlagSetOnce(t *testing.T) {
	sf := NewSafeFlag()
	var wg sync.WaitGroup
	winners := NewSafeCounter()

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if sf.SetOnce() {
				winners.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners.Value(), "exactly one caller should flip the flag")
	assert.True(t, sf.Value())
	assert.False(t, sf.SetOnce())
}
