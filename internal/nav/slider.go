package nav

import (
	"time"

	"github.com/JumpLink/NetflixController/internal/action"
	"github.com/JumpLink/NetflixController/internal/dom"
	"github.com/JumpLink/NetflixController/internal/gamepad"
	"github.com/JumpLink/NetflixController/internal/logging/events"
)

// Class names the streaming page uses for slider rows.
const (
	SliderItemClass   = "slider-item"
	SliderNextClass   = "handleNext"
	SliderPrevClass   = "handlePrev"
	SliderPanelClass  = "jawbone"
	SliderPanelAction = "jawbone-action"
)

// Default settle delays. Window shifts animate for a fixed duration; panel
// opens read their own transition duration from the document and fall back
// to PanelOpenFallback.
const (
	ShiftSettleDefault = 500 * time.Millisecond
	PanelOpenFallback  = 700 * time.Millisecond
)

// Slider navigates a row whose visible items are a sliding window over a
// larger off-screen collection. It is not component-cached: the window
// contents change with every shift, so items are re-resolved from the row
// on demand.
//
// After the first window shift the page keeps a partially-visible item at
// the window's leading edge, which offsets all subsequent position math by
// one.
type Slider struct {
	Name string
	Row  *dom.Element
	Host PageHost

	Delay       Delayer
	ShiftSettle time.Duration

	styler   Styler
	position int
	shifted  bool

	panel    *Static
	panelPos int
}

// NewSlider builds a slider over a row element.
func NewSlider(name string, row *dom.Element, host PageHost) *Slider {
	return &Slider{
		Name:        name,
		Row:         row,
		Host:        host,
		Delay:       TimerDelayer{},
		ShiftSettle: ShiftSettleDefault,
		styler:      DefaultStyler,
		position:    -1,
		panelPos:    -1,
	}
}

func (s *Slider) items() []*dom.Element {
	if s.Row == nil || !s.Row.Attached() {
		return nil
	}
	return s.Row.ByClass(SliderItemClass)
}

// firstSelectable skips the partially-visible leading item once the window
// has shifted.
func (s *Slider) firstSelectable() int {
	if s.shifted {
		return 1
	}
	return 0
}

// Position returns the selected visual slot, or -1.
func (s *Slider) Position() int { return s.position }

// Shifted reports whether the leading partial item offset is in effect.
func (s *Slider) Shifted() bool { return s.shifted }

// SetStyler injects the focus styling.
func (s *Slider) SetStyler(st Styler) {
	if st != nil {
		s.styler = st
	}
}

// Select focuses a visual slot of the current window, failing soft on
// detached items.
func (s *Slider) Select(position int) bool {
	s.unselect()
	items := s.items()
	if len(items) == 0 {
		return false
	}
	if position < s.firstSelectable() {
		position = s.firstSelectable()
	}
	if position >= len(items) {
		position = len(items) - 1
	}
	target := items[position]
	if target == nil || !target.Attached() {
		events.Nav.Stale(s.Name, position)
		s.position = -1
		return false
	}
	s.position = position
	s.styler.Apply(target)
	events.Nav.Select(s.Name, position)
	return true
}

func (s *Slider) unselect() {
	if s.position < 0 {
		return
	}
	items := s.items()
	if s.position < len(items) {
		s.styler.Clear(items[s.position])
		events.Nav.Unselect(s.Name, s.position)
	}
	s.position = -1
}

// Current returns the focused item, or nil.
func (s *Slider) Current() *dom.Element {
	items := s.items()
	if s.position < 0 || s.position >= len(items) {
		return nil
	}
	return items[s.position]
}

// Left moves within the visible window, or shifts the window backward when
// its edge is reached.
func (s *Slider) Left() {
	if s.position < 0 {
		return
	}
	if s.position > s.firstSelectable() {
		s.Select(s.position - 1)
		return
	}
	s.shift(false)
}

// Right moves within the visible window, or shifts the window forward when
// its edge is reached.
func (s *Slider) Right() {
	if s.position < 0 {
		return
	}
	if s.position < len(s.items())-1 {
		s.Select(s.position + 1)
		return
	}
	s.shift(true)
}

// shift clicks the row's shift control and, after the settle delay,
// re-resolves which slot of the refreshed window takes focus: the first
// fully-visible item when advancing, the last when going back.
func (s *Slider) shift(forward bool) {
	class := SliderPrevClass
	direction := "prev"
	if forward {
		class = SliderNextClass
		direction = "next"
	}
	handle := s.Row.FirstByClass(class)
	if handle == nil || !handle.Attached() {
		return
	}
	events.Nav.SliderShift(s.Name, direction)
	handle.DispatchClick()
	wasShifted := s.shifted
	if forward {
		s.shifted = true
	}
	s.Delay.After(s.ShiftSettle, func() {
		items := s.items()
		if len(items) == 0 {
			s.position = -1
			return
		}
		if forward {
			s.Select(s.firstSelectable())
			return
		}
		target := len(items) - 1
		if wasShifted {
			target--
		}
		s.Select(target)
	})
}

// Up is handled by the owning page.
func (s *Slider) Up() {}

// Down is handled by the owning page.
func (s *Slider) Down() {}

// HandlesVertical reports that vertical movement leaves the row.
func (s *Slider) HandlesVertical() bool { return false }

// Enter restores focus from a transfer. A closed-panel transfer resolves to
// the slot the panel was opened from. A position referring to an item
// outside the currently visible window walks backward until a visible
// occupant is found.
func (s *Slider) Enter(t Transfer) {
	items := s.items()
	if len(items) == 0 {
		s.position = -1
		return
	}
	position := t.Position
	if position < 0 && t.ClosedPanel && s.panelPos >= 0 {
		position = s.panelPos
		if s.panel == nil {
			s.panelPos = -1
		}
	}
	if position < 0 {
		position = s.firstSelectable()
	}
	for position > s.firstSelectable() {
		if position < len(items) && items[position] != nil && items[position].Attached() {
			break
		}
		position--
	}
	s.Select(position)
}

// Exit hands the selected slot to the next focus holder.
func (s *Slider) Exit() Transfer {
	t := NewTransfer(s.position)
	s.unselect()
	return t
}

// Actions binds the interact button while the slider is focused.
func (s *Slider) Actions() []action.Action {
	return []action.Action{
		{Label: "Open", Index: gamepad.ButtonA, OnPress: s.Interact},
	}
}

// Interact opens the detail-panel companion for the focused item. The panel
// is spliced into the owning page immediately after this slider once the
// page's open transition settles; at most one companion is open at a time,
// so an existing panel from a different slot is evicted first.
func (s *Slider) Interact() {
	item := s.Current()
	if item == nil {
		return
	}
	events.Nav.Interact(s.Name, s.position)
	if s.panel != nil {
		if s.panelPos == s.position {
			return
		}
		s.Host.Remove(s.panel)
		s.panel.Cleanup()
		s.panel = nil
		events.Nav.PanelClose(s.Name)
	}
	item.DispatchClick()
	openPos := s.position
	settle := PanelOpenFallback
	if panelEl := s.Row.FirstByClass(SliderPanelClass); panelEl != nil {
		settle = panelEl.TransitionDuration(PanelOpenFallback)
	}
	s.Delay.After(settle, func() {
		panelEl := s.Row.FirstByClass(SliderPanelClass)
		if panelEl == nil || !panelEl.Attached() {
			return
		}
		panel := NewStatic(s.Name+":panel", func() []*dom.Element {
			return panelEl.ByClass(SliderPanelAction)
		})
		panel.ActionsFn = func() []action.Action {
			return []action.Action{
				{Label: "Select", Index: gamepad.ButtonA, OnPress: panel.Interact},
				{Label: "Close", Index: gamepad.ButtonB, OnPress: s.ClosePanel},
			}
		}
		if !s.Host.InsertAfter(s, panel) {
			return
		}
		s.panel = panel
		s.panelPos = openPos
		events.Nav.PanelOpen(s.Name)
	})
}

// ClosePanel closes the open companion panel from within the panel itself.
func (s *Slider) ClosePanel() {
	if s.panel == nil {
		return
	}
	s.panel = nil
	events.Nav.PanelClose(s.Name)
	s.Host.RemoveCurrent()
}

// Panel returns the open companion navigatable, or nil.
func (s *Slider) Panel() *Static { return s.panel }

// Cleanup drops panel state and focus styling. Safe to call repeatedly.
func (s *Slider) Cleanup() {
	s.unselect()
	if s.panel != nil {
		s.panel.Cleanup()
		s.panel = nil
	}
	s.panelPos = -1
}
