package notice

import (
	"testing"
	"time"
)

func TestExpiryDropsOldNotices(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewCenter()
	c.now = func() time.Time { return now }

	c.Notify("first")
	now = now.Add(3 * time.Second)
	c.Notify("second")
	now = now.Add(2 * time.Second)

	active := c.Active()
	if len(active) != 1 || active[0].Message != "second" {
		t.Fatalf("active = %+v, want only second", active)
	}
}

func TestQueueIsBounded(t *testing.T) {
	c := NewCenter()
	for i := 0; i < maxPending+5; i++ {
		c.Notify("n")
	}
	if got := len(c.Active()); got != maxPending {
		t.Fatalf("active count = %d, want %d", got, maxPending)
	}
}

func TestNotifyOncePostsOnce(t *testing.T) {
	c := NewCenter()
	c.NotifyOnce("layout warning")
	c.NotifyOnce("layout warning")
	if got := len(c.Active()); got != 1 {
		t.Fatalf("active count = %d, want 1", got)
	}
}

func TestDismissDropsOldest(t *testing.T) {
	c := NewCenter()
	c.Notify("a")
	c.Notify("b")
	c.Dismiss()
	active := c.Active()
	if len(active) != 1 || active[0].Message != "b" {
		t.Fatalf("active = %+v, want only b", active)
	}
}
