// Package notice queues short-lived messages shown to the user.
package notice

import (
	"sync"
	"time"
)

// DefaultTTL is how long a notice stays visible without being dismissed.
const DefaultTTL = 4 * time.Second

// maxPending bounds the queue so a flood of notices cannot grow without
// limit; the oldest entry is dropped first.
const maxPending = 8

// Notice is one visible message.
type Notice struct {
	Message string
	Posted  time.Time
}

// Center collects notices and expires them. It implements
// action.NoticeSink.
type Center struct {
	mu      sync.Mutex
	pending []Notice
	ttl     time.Duration
	now     func() time.Time
	seen    map[string]bool
}

// NewCenter builds a center with the default TTL.
func NewCenter() *Center {
	return &Center{ttl: DefaultTTL, now: time.Now, seen: make(map[string]bool)}
}

// Notify posts a message.
func (c *Center) Notify(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, Notice{Message: message, Posted: c.now()})
	if len(c.pending) > maxPending {
		c.pending = c.pending[len(c.pending)-maxPending:]
	}
}

// NotifyOnce posts a message at most once per center lifetime, keyed by the
// message itself. Used for the per-session compatibility warning.
func (c *Center) NotifyOnce(message string) {
	c.mu.Lock()
	if c.seen[message] {
		c.mu.Unlock()
		return
	}
	c.seen[message] = true
	c.mu.Unlock()
	c.Notify(message)
}

// Active returns the notices that have not yet expired, oldest first, and
// drops the expired ones.
func (c *Center) Active() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	cutoff := c.now().Add(-c.ttl)
	kept := c.pending[:0]
	for _, n := range c.pending {
		if n.Posted.After(cutoff) {
			kept = append(kept, n)
		}
	}
	c.pending = kept
	out := make([]Notice, len(kept))
	copy(out, kept)
	return out
}

// Dismiss drops the oldest active notice.
func (c *Center) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.pending) > 0 {
		c.pending = c.pending[1:]
	}
}
