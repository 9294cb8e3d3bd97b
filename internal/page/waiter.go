package page

import "time"

// DefaultReadyInterval is the poll cadence while waiting for a page's
// readiness predicate.
const DefaultReadyInterval = 50 * time.Millisecond

// Waiter polls an externally-supplied predicate until it becomes true or the
// wait is cancelled. There is deliberately no timeout: a page whose
// predicate never turns true is bounded only by its unload flag, which the
// caller controls. Cancellation is cooperative, checked at every
// resumption point.
type Waiter struct {
	Interval time.Duration
}

// Wait blocks until ready() is true (returning true) or cancelled() is true
// (returning false). Cancellation wins when both flip between polls.
func (w Waiter) Wait(ready, cancelled func() bool) bool {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultReadyInterval
	}
	for {
		if cancelled != nil && cancelled() {
			return false
		}
		if ready == nil || ready() {
			return true
		}
		time.Sleep(interval)
	}
}
