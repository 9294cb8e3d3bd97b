package nav

import (
	"github.com/JumpLink/NetflixController/internal/action"
	"github.com/JumpLink/NetflixController/internal/dom"
	"github.com/JumpLink/NetflixController/internal/logging/events"
)

// Static is a Navigatable backed by a fixed, lazily-cached ordered list of
// focus targets resolved from the external tree. Concrete navigatables embed
// it and wire the hooks.
//
// The component cache is read by Select/Left/Right and written only by the
// owning navigatable through Invalidate; invalidation is explicit, never
// automatic.
type Static struct {
	// Name identifies the navigatable in trace logs.
	Name string
	// Resolve produces the ordered focus targets from the external tree.
	Resolve func() []*dom.Element
	// OnInteract overrides the default click behaviour for the focused
	// component.
	OnInteract func(*dom.Element)
	// ActionsFn supplies the contextual actions while focused.
	ActionsFn func() []action.Action

	styler     Styler
	components []*dom.Element
	cached     bool
	position   int
}

// NewStatic builds an unselected navigatable over a component resolver.
func NewStatic(name string, resolve func() []*dom.Element) *Static {
	return &Static{Name: name, Resolve: resolve, position: -1, styler: DefaultStyler}
}

// Components returns the cached focus-target list, resolving it on first
// use.
func (s *Static) Components() []*dom.Element {
	if !s.cached {
		if s.Resolve != nil {
			s.components = s.Resolve()
		}
		s.cached = true
	}
	return s.components
}

// Invalidate drops the component cache. The owner calls it when the
// external tree changed underneath the cached references.
func (s *Static) Invalidate() {
	s.components = nil
	s.cached = false
}

// Position returns the selected index, or -1 when unselected.
func (s *Static) Position() int { return s.position }

// SetStyler injects the focus styling used from now on.
func (s *Static) SetStyler(st Styler) {
	if st != nil {
		s.styler = st
	}
}

// Select unselects the current component, validates the requested position
// against the live list, and applies focus styling. A target that the
// external tree removed since caching fails soft: the position becomes -1
// and nothing is thrown, because structural removal during an in-flight
// selection is an expected race.
func (s *Static) Select(position int) bool {
	s.Unselect()
	components := s.Components()
	if len(components) == 0 {
		return false
	}
	if position < 0 {
		position = 0
	}
	if position >= len(components) {
		position = len(components) - 1
	}
	target := components[position]
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

// Unselect clears focus styling from the current component, if any.
// Idempotent.
func (s *Static) Unselect() {
	if s.position < 0 {
		return
	}
	if s.position < len(s.components) {
		s.styler.Clear(s.components[s.position])
		events.Nav.Unselect(s.Name, s.position)
	}
	s.position = -1
}

// Current returns the focused component, or nil.
func (s *Static) Current() *dom.Element {
	if s.position < 0 || s.position >= len(s.components) {
		return nil
	}
	return s.components[s.position]
}

// Left moves the selection back by one. No wraparound.
func (s *Static) Left() {
	if s.position > 0 {
		s.Select(s.position - 1)
	}
}

// Right moves the selection forward by one. No wraparound.
func (s *Static) Right() {
	if s.position >= 0 && s.position < len(s.Components())-1 {
		s.Select(s.position + 1)
	}
}

// Up is a no-op; grid-shaped navigatables override vertical movement.
func (s *Static) Up() {}

// Down is a no-op; grid-shaped navigatables override vertical movement.
func (s *Static) Down() {}

// HandlesVertical reports that a plain list leaves vertical movement to the
// owning page.
func (s *Static) HandlesVertical() bool { return false }

// Enter restores the selection carried by the transfer, defaulting to the
// first component.
func (s *Static) Enter(t Transfer) {
	position := t.Position
	if position < 0 {
		position = 0
	}
	s.Select(position)
}

// Exit produces the transfer for the next focus holder and unselects.
func (s *Static) Exit() Transfer {
	t := NewTransfer(s.position)
	s.Unselect()
	return t
}

// Interact triggers the focused component. The default dispatches a click.
func (s *Static) Interact() {
	target := s.Current()
	if target == nil {
		return
	}
	events.Nav.Interact(s.Name, s.position)
	if s.OnInteract != nil {
		s.OnInteract(target)
		return
	}
	target.DispatchClick()
}

// Actions lists the contextual bindings while focused.
func (s *Static) Actions() []action.Action {
	if s.ActionsFn == nil {
		return nil
	}
	return s.ActionsFn()
}

// Cleanup unselects and drops the cache. Safe to call repeatedly.
func (s *Static) Cleanup() {
	s.Unselect()
	s.Invalidate()
}
