package ui

import "time"

// throttle gates key auto-repeat to a minimum interval between accepted
// presses.
type throttle struct {
	interval time.Duration
	now      func() time.Time
	next     time.Time
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: interval, now: time.Now}
}

// allow reports whether enough time passed since the last accepted press,
// and if so starts the next window.
func (t *throttle) allow() bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	current := t.now()
	if current.Before(t.next) {
		return false
	}
	t.next = current.Add(t.interval)
	return true
}
