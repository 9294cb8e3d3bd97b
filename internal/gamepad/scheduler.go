package gamepad

import (
	"context"
	"sync"
	"time"
)

// Scheduler drives recurring engine polls. Hosts with their own frame
// callback implement this directly; headless hosts use NewTicker.
type Scheduler interface {
	Start(frame func())
	Stop()
}

// Ticker schedules frames at a fixed interval on a background goroutine.
type Ticker struct {
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTicker creates a frame scheduler with the given interval.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &Ticker{interval: interval}
}

// Start begins emitting frames. A second Start without an intervening Stop
// is ignored.
func (t *Ticker) Start(frame func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				frame()
			}
		}
	}()
}

// Stop cancels scheduling and waits for the frame goroutine to exit, so no
// frame runs after Stop returns. Safe to call repeatedly.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	t.wg.Wait()
}
