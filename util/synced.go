package util

import "sync/atomic"

// SafeCounter is an int counter safe to use concurrently.
type SafeCounter struct {
	value atomic.Int64
}

// NewSafeCounter creates a new SafeCounter starting at zero.
func NewSafeCounter() *SafeCounter {
	return &SafeCounter{}
}

// Increment increments the counter's value and returns the new value.
func (sc *SafeCounter) Increment() int {
	return int(sc.value.Add(1))
}

// Decrement decrements the counter's value and returns the new value.
func (sc *SafeCounter) Decrement() int {
	return int(sc.value.Add(-1))
}

// Value returns the current value of the counter.
func (sc *SafeCounter) Value() int {
	return int(sc.value.Load())
}

// SafeFlag is a bool safe to use concurrently.
type SafeFlag struct {
	value atomic.Bool
}

// NewSafeFlag creates a new SafeFlag set to false.
func NewSafeFlag() *SafeFlag {
	return &SafeFlag{}
}

// Set sets the value of the flag and returns the new value.
func (sf *SafeFlag) Set(v bool) bool {
	sf.value.Store(v)
	return v
}

// Value returns the current value of the flag.
func (sf *SafeFlag) Value() bool {
	return sf.value.Load()
}

// SetOnce flips the flag from false to true. It reports whether this call did the flip,
// so exactly one caller wins.
func (sf *SafeFlag) SetOnce() bool {
	return sf.value.CompareAndSwap(false, true)
}
