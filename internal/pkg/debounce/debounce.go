// Package debounce delays a callback until a quiet period has elapsed since
// the last trigger, coalescing bursts of triggers into a single invocation.
package debounce

import (
	"sync"
	"time"
)

// Debouncer invokes fn once per burst of Trigger calls, on the trailing edge
// of the delay window. A Trigger arriving before the window elapses
// supersedes the pending invocation entirely; superseded invocations never
// run.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func()
	timer   *time.Timer
	pending bool
	// gen identifies the most recent Trigger. An expired timer whose
	// generation no longer matches was superseded while it sat blocked on
	// the mutex (Stop had already returned false for it) and must not fire.
	gen uint64
}

func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules fn after the delay window, replacing any pending
// invocation. With a non-positive delay fn runs synchronously.
func (d *Debouncer) Trigger() {
	if d.delay <= 0 {
		d.fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = true
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if !d.pending || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.mu.Unlock()

	d.fn()
}

// Flush runs a pending invocation immediately. It is a no-op when nothing is
// pending, which makes it safe to call unconditionally on shutdown.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	d.fn()
}

// Stop cancels a pending invocation without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
	}
}
