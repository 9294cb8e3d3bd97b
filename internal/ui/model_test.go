package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JumpLink/NetflixController/internal/action"
	"github.com/JumpLink/NetflixController/internal/dom"
	"github.com/JumpLink/NetflixController/internal/gamepad"
	"github.com/JumpLink/NetflixController/internal/hints"
	"github.com/JumpLink/NetflixController/internal/notice"
	"github.com/JumpLink/NetflixController/internal/pages"
	"github.com/JumpLink/NetflixController/internal/state"
)

const uiFixture = `<html><body>
<div class="navigation-tab">Home</div>
<div class="navigation-tab">Series</div>
<div class="billboard">
  <button class="billboard-action">Play</button>
</div>
<div class="lolomoRow" id="row0">
  <div class="slider-item" id="item-a">Alpha</div>
  <div class="slider-item" id="item-b">Beta</div>
  <button class="handleNext"></button>
</div>
<div class="search-gallery">
  <div class="search-title-card" id="sc0">Alpha</div>
  <div class="search-title-card" id="sc1">Beta</div>
</div>
<div class="watch-video">
  <div class="PlayerControlsNeo__button-control-row">
    <button class="button-nfplayerPlay">Play</button>
  </div>
</div>
</body></html>`

func newTestModel(t *testing.T) *Model {
	t.Helper()
	doc := dom.MustParse(uiFixture)
	bar := hints.NewBar()
	notices := notice.NewCenter()
	registry := action.NewRegistry(bar, notices)
	keyboard := NewKeyboard()
	engine := gamepad.NewEngine(keyboard)
	if err := registry.Attach(engine); err != nil {
		t.Fatalf("attach registry: %v", err)
	}
	router, search := pages.NewRouter(pages.Deps{Doc: doc, Registry: registry})
	m := NewModel(Options{
		Doc:      doc,
		Engine:   engine,
		Keyboard: keyboard,
		Registry: registry,
		Router:   router,
		Search:   search,
		Hints:    bar,
		Notices:  notices,
		Roster:   state.NewRosterStore(),
		Width:    120,
		Height:   40,
	})
	// Disable the auto-repeat gate so successive test presses register.
	m.repeat = newThrottle(0)
	return m
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func frame(m *Model) {
	m.handleFrameMsg(frameMsg{})
}

func TestModelStartsOnBrowseWithFocus(t *testing.T) {
	m := newTestModel(t)
	frame(m)

	view := m.View()
	if !strings.Contains(view, "/browse") {
		t.Fatalf("view missing location header:\n%s", view)
	}
	if !strings.Contains(view, "[Alpha]") {
		t.Fatalf("view missing focused first item:\n%s", view)
	}
}

func TestKeyTapMovesFocus(t *testing.T) {
	m := newTestModel(t)
	frame(m)

	m.handleKeyMsg(key("right"))
	frame(m)

	view := m.View()
	if !strings.Contains(view, "[Beta]") {
		t.Fatalf("focus did not move to second item:\n%s", view)
	}
	if strings.Contains(view, "[Alpha]") {
		t.Fatalf("previous item still focused:\n%s", view)
	}
}

func TestTabCyclesLocations(t *testing.T) {
	m := newTestModel(t)
	frame(m)

	m.handleKeyMsg(key("tab"))
	if m.currentLocation() != "/search" {
		t.Fatalf("location = %q, want /search", m.currentLocation())
	}
	m.handleKeyMsg(key("tab"))
	if !strings.HasPrefix(m.currentLocation(), "/watch") {
		t.Fatalf("location = %q, want watch", m.currentLocation())
	}
	m.handleKeyMsg(key("tab"))
	if m.currentLocation() != "/browse" {
		t.Fatalf("location = %q, want /browse", m.currentLocation())
	}
}

func TestSearchTypingFiltersResults(t *testing.T) {
	m := newTestModel(t)
	frame(m)

	m.handleKeyMsg(key("tab"))
	m.handleKeyMsg(key("b"))
	frame(m)

	if got := m.search.Query(); got != "b" {
		t.Fatalf("query = %q, want b", got)
	}
	view := m.View()
	if !strings.Contains(view, "[Beta]") {
		t.Fatalf("filtered result not focused:\n%s", view)
	}
}

func TestRosterRendering(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "no controllers connected") {
		t.Fatalf("empty roster line missing:\n%s", view)
	}
	m.roster.Upsert(state.DeviceEntry{ID: "Test Pad", Index: 0, Buttons: 17, Axes: 4, Standard: true})
	view = m.View()
	if !strings.Contains(view, "Test Pad") || !strings.Contains(view, "standard") {
		t.Fatalf("roster entry missing:\n%s", view)
	}
}

func TestThrottleGatesRepeats(t *testing.T) {
	th := newThrottle(50 * time.Millisecond)
	base := time.Unix(0, 0)
	th.now = func() time.Time { return base }

	if !th.allow() {
		t.Fatalf("first press gated")
	}
	if th.allow() {
		t.Fatalf("immediate repeat allowed")
	}
	base = base.Add(60 * time.Millisecond)
	if !th.allow() {
		t.Fatalf("press after interval gated")
	}
}

func TestKeyboardTapSpansOnePoll(t *testing.T) {
	kb := NewKeyboard()
	kb.Tap(0)

	first := kb.Devices()
	if !first[0].Buttons[0].Pressed {
		t.Fatalf("tap not visible on first read")
	}
	second := kb.Devices()
	if second[0].Buttons[0].Pressed {
		t.Fatalf("tap still pressed on second read")
	}
	if second[0].Timestamp <= first[0].Timestamp {
		t.Fatalf("timestamp did not advance")
	}
}

func TestKeyboardDisconnect(t *testing.T) {
	kb := NewKeyboard()
	kb.SetConnected(false)
	if got := kb.Devices(); len(got) != 0 {
		t.Fatalf("disconnected keyboard still listed: %v", got)
	}
}
