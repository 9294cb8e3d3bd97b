package dispatcher

import (
	"fmt"
	"strings"
	"testing"

	"github.com/JumpLink/NetflixController/internal/gamepad"
	"github.com/JumpLink/NetflixController/internal/settings"
	"github.com/JumpLink/NetflixController/internal/state"
)

type fakeNotices struct {
	posted []string
	once   map[string]bool
}

func (f *fakeNotices) Notify(m string) { f.posted = append(f.posted, m) }
func (f *fakeNotices) NotifyOnce(m string) {
	if f.once == nil {
		f.once = make(map[string]bool)
	}
	if f.once[m] {
		return
	}
	f.once[m] = true
	f.posted = append(f.posted, m)
}

func pad(index int, buttons, axes int) gamepad.Snapshot {
	return gamepad.Snapshot{
		ID:        fmt.Sprintf("Test Pad %d (Vendor: beef Product: cafe)", index),
		Index:     index,
		Connected: true,
		Timestamp: 1,
		Buttons:   make([]gamepad.ButtonState, buttons),
		Axes:      make([]float64, axes),
	}
}

func poll(t *testing.T, d *Dispatcher, snaps *[]gamepad.Snapshot) *gamepad.Engine {
	t.Helper()
	engine := gamepad.NewEngine(gamepad.SourceFunc(func() []gamepad.Snapshot { return *snaps }))
	if err := d.Attach(engine); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	engine.Poll()
	return engine
}

func TestConnectPopulatesRosterAndNotifies(t *testing.T) {
	roster := state.NewRosterStore()
	notices := &fakeNotices{}
	prefs := func() settings.Settings {
		return settings.Settings{ShowConnectionNotices: true, CompatibilityWarning: true}
	}
	d := New(roster, notices, prefs)

	snaps := []gamepad.Snapshot{pad(0, 17, 4)}
	poll(t, d, &snaps)

	entries := roster.Entries()
	if len(entries) != 1 || !entries[0].Standard {
		t.Fatalf("roster = %+v, want one standard entry", entries)
	}
	if len(notices.posted) != 1 || !strings.Contains(notices.posted[0], "connected") {
		t.Fatalf("notices = %v", notices.posted)
	}
}

func TestNonStandardLayoutWarnsOnce(t *testing.T) {
	roster := state.NewRosterStore()
	notices := &fakeNotices{}
	prefs := func() settings.Settings {
		return settings.Settings{CompatibilityWarning: true}
	}
	d := New(roster, notices, prefs)

	snaps := []gamepad.Snapshot{pad(0, 10, 2)}
	engine := poll(t, d, &snaps)

	if entries := roster.Entries(); entries[0].Standard {
		t.Fatalf("10-button device reported as standard")
	}
	if len(notices.posted) != 1 || !strings.Contains(notices.posted[0], "standard layout") {
		t.Fatalf("notices = %v", notices.posted)
	}

	// Reconnecting the same device does not repeat the warning.
	snaps = nil
	engine.Poll()
	reconnect := pad(0, 10, 2)
	reconnect.Timestamp = 2
	snaps = []gamepad.Snapshot{reconnect}
	engine.Poll()
	if len(notices.posted) != 1 {
		t.Fatalf("warning repeated: %v", notices.posted)
	}
}

func TestDisconnectRemovesFromRoster(t *testing.T) {
	roster := state.NewRosterStore()
	notices := &fakeNotices{}
	prefs := func() settings.Settings {
		return settings.Settings{ShowConnectionNotices: true}
	}
	d := New(roster, notices, prefs)

	snaps := []gamepad.Snapshot{pad(0, 17, 4), pad(1, 17, 4)}
	engine := poll(t, d, &snaps)
	if roster.Count() != 2 {
		t.Fatalf("roster count = %d, want 2", roster.Count())
	}

	snaps = []gamepad.Snapshot{pad(0, 17, 4)}
	engine.Poll()
	if roster.Count() != 1 {
		t.Fatalf("roster count = %d after disconnect, want 1", roster.Count())
	}
	if _, ok := roster.Entry(1); ok {
		t.Fatalf("disconnected device still in roster")
	}
}

func TestNoticesRespectPreferenceToggle(t *testing.T) {
	roster := state.NewRosterStore()
	notices := &fakeNotices{}
	d := New(roster, notices, func() settings.Settings { return settings.Settings{} })

	snaps := []gamepad.Snapshot{pad(0, 17, 4)}
	poll(t, d, &snaps)
	if len(notices.posted) != 0 {
		t.Fatalf("notices posted while disabled: %v", notices.posted)
	}
	if roster.Count() != 1 {
		t.Fatalf("roster not updated while notices disabled")
	}
}
