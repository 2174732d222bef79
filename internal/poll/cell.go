// Package poll provides timer-refreshed observable cells.
//
// A Cell holds the last successfully sampled value of a sampling function.
// The owner decides how samples are driven: call Sample from its own tick
// loop (the status bar drives every cell from one shared tick so samples
// never overlap), or use Start for a self-owned ticker goroutine.
package poll

import (
	"sync"
	"time"

	"github.com/statbar/statbar/internal/logger"
)

// Cell holds the latest sampled value of type T.
//
// A panicking sample function is recovered and logged; the cell keeps its
// previous value and the next tick retries. Observers are notified
// synchronously after each successful sample, never after a failed one.
type Cell[T any] struct {
	mu        sync.Mutex
	value     T
	sample    func() T
	observers []func(T)
	stopped   bool
	stopCh    chan struct{}
	stopOnce  sync.Once
	log       logger.Logger
}

// NewCell creates a cell with a safe initial value and a sampling function.
// The sample function must be fast and non-blocking; it runs on whatever
// loop drives the cell.
func NewCell[T any](initial T, sample func() T) *Cell[T] {
	return &Cell[T]{
		value:  initial,
		sample: sample,
		stopCh: make(chan struct{}),
		log:    logger.Default(),
	}
}

// SetLogger replaces the cell's logger. Returns the cell for chaining.
func (c *Cell[T]) SetLogger(log logger.Logger) *Cell[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if log != nil {
		c.log = log
	}
	return c
}

// Value returns the last successfully sampled value.
// Between samples the value is stable.
func (c *Cell[T]) Value() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Subscribe registers an observer invoked after every successful sample.
func (c *Cell[T]) Subscribe(fn func(T)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Sample runs the sampling function once and returns the current value.
// After Stop it is a no-op returning the frozen value. The lock is held
// across the sample so samples of one cell are strictly sequential.
func (c *Cell[T]) Sample() T {
	c.mu.Lock()
	if c.stopped {
		v := c.value
		c.mu.Unlock()
		return v
	}

	if v, ok := c.runSample(); ok {
		c.value = v
	}

	v := c.value
	observers := make([]func(T), len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	for _, fn := range observers {
		fn(v)
	}
	return v
}

// runSample executes the sampling function with panic recovery.
// Must be called with c.mu held.
func (c *Cell[T]) runSample() (v T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Warn("sample failed, keeping previous value: %v", r)
			ok = false
		}
	}()
	return c.sample(), true
}

// Start launches a ticker goroutine sampling at the given interval until
// Stop is called. Intended for cells that live outside a UI loop.
func (c *Cell[T]) Start(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Sample()
			case <-c.stopCh:
				return
			}
		}
	}()
}

// Stop freezes the cell: no further samples occur, even from ticks already
// scheduled, and Value keeps returning the last good value. Stop is
// idempotent and mandatory on widget teardown to avoid dangling callbacks.
func (c *Cell[T]) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.mu.Unlock()
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Stopped reports whether Stop has been called.
func (c *Cell[T]) Stopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}
