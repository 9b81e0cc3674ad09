// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package autosave

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet interval before an edit burst is persisted.
const DefaultDelay = 2 * time.Second

// Debouncer runs the most recently scheduled function once the quiet
// interval has elapsed without another Schedule call.
type Debouncer struct {
	clock Clock
	delay time.Duration

	mu    sync.Mutex
	timer Timer
	fn    func()
	gen   uint64
}

// NewDebouncer creates a debouncer. A nil clock means RealClock.
func NewDebouncer(clock Clock, delay time.Duration) *Debouncer {
	if clock == nil {
		clock = RealClock{}
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{clock: clock, delay: delay}
}

// Delay returns the quiet interval.
func (d *Debouncer) Delay() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.delay
}

// SetDelay changes the quiet interval for subsequent Schedule calls.
func (d *Debouncer) SetDelay(delay time.Duration) {
	if delay <= 0 {
		return
	}
	d.mu.Lock()
	d.delay = delay
	d.mu.Unlock()
}

// Schedule replaces any pending function with fn and restarts the timer.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.fn = fn
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(gen) })
}

// fire runs the pending function if it still belongs to generation gen.
// A timer that lost the race against Stop finds a newer generation and
// does nothing.
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

// Cancel drops the pending function and reports whether there was one.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelLocked()
}

func (d *Debouncer) cancelLocked() bool {
	if d.fn == nil {
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	d.fn = nil
	d.timer = nil
	return true
}

// Flush runs the pending function immediately on the caller's goroutine
// and reports whether one ran.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.fn
	if !d.cancelLocked() {
		d.mu.Unlock()
		return false
	}
	d.mu.Unlock()

	fn()
	return true
}

// Pending reports whether a function is waiting for the quiet interval.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fn != nil
}
