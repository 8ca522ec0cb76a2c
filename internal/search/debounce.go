package search

import (
	"sync"
	"time"
)

// DefaultWindow is the quiescence window used when none is configured.
const DefaultWindow = 300 * time.Millisecond

// Timer is the handle returned by Clock.AfterFunc.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. The zero Debouncer uses the wall clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Option configures a Debouncer or an Engine.
type Option func(*Debouncer)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c Clock) Option {
	return func(d *Debouncer) {
		if c != nil {
			d.clock = c
		}
	}
}

// Debouncer runs the most recently scheduled func once no further Schedule
// call has arrived for the window. It holds at most one pending handle.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	clock  Clock
	timer  Timer
	fn     func()
	gen    uint64
}

// NewDebouncer creates a debouncer. A non-positive window uses DefaultWindow.
func NewDebouncer(window time.Duration, opts ...Option) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	d := &Debouncer{window: window, clock: wallClock{}}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Window returns the quiescence window.
func (d *Debouncer) Window() time.Duration { return d.window }

// Schedule cancels any pending call and arms fn for one window from now.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.gen++
	gen := d.gen
	d.fn = fn
	d.timer = d.clock.AfterFunc(d.window, func() { d.fire(gen) })
}

// Cancel drops the pending call, if any. Call it on teardown of the owner.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.gen++
}

// Flush runs the pending call immediately on the calling goroutine.
// It reports whether there was anything to run.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.fn
	if fn == nil {
		d.mu.Unlock()
		return false
	}
	d.stopLocked()
	d.gen++
	d.mu.Unlock()
	fn()
	return true
}

// Pending reports whether a call is waiting for the window to elapse.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fn != nil
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = nil
	d.fn = nil
}

// fire runs the call armed under gen unless it was superseded or canceled
// after the timer had already fired.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.fn == nil {
		d.mu.Unlock()
		return
	}
	fn := d.fn
	d.fn = nil
	d.timer = nil
	d.mu.Unlock()
	fn()
}
