// Package debounce delays a callback until input has been quiet for a while.
package debounce

import (
	"sync"
	"time"
)

// Debouncer calls fn with the most recent value once delay has passed
// without another Trigger.
type Debouncer[T any] struct {
	mu     sync.Mutex
	delay  time.Duration
	fn     func(T)
	timer  *time.Timer
	latest T
	gen    uint64
}

// New returns a debouncer calling fn.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Trigger records v and restarts the timer, cancelling any pending call.
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.latest = v
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
	}
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	// A timer that lost the race with Stop or a newer Trigger is stale.
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	v := d.latest
	d.timer = nil
	d.mu.Unlock()
	d.fn(v)
}

// Stop cancels the pending call, if any.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
