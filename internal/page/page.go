package page

import (
	"sync/atomic"
	"time"

	"github.com/JumpLink/NetflixController/internal/action"
	"github.com/JumpLink/NetflixController/internal/gamepad"
	"github.com/JumpLink/NetflixController/internal/logging/events"
	"github.com/JumpLink/NetflixController/internal/nav"
)

// State tracks the page lifecycle. Unloaded is terminal.
type State int

const (
	Constructed State = iota
	Loading
	Loaded
	Unloaded
)

// Page owns an ordered, mutable list of navigatables, the current position
// into it, and the load/unload lifecycle. Entries may be nil placeholders;
// the position never rests on a nil entry once something has been entered.
type Page struct {
	Name     string
	Location string

	// Ready is the externally-supplied readiness predicate polled during
	// Load. Nil means immediately ready.
	Ready func() bool
	// OnLoad runs once the page is ready and not yet unloaded. It
	// typically builds the initial navigatable list and enters the first
	// entry.
	OnLoad func(*Page)
	// Materialize gets a chance to lazily create and splice in the
	// navigatable for a position that does not exist yet, before
	// SetNavigatable validates the index.
	Materialize func(*Page, int)
	// StyleScan optionally pre-scans external styling rules during Load.
	StyleScan func()
	// Actions are page-level bindings held for the whole loaded lifetime.
	Actions []action.Action

	// ReadyInterval overrides the readiness poll cadence, mainly for
	// tests.
	ReadyInterval time.Duration

	registry     *action.Registry
	styler       nav.Styler
	navigatables []nav.Navigatable
	position     int
	state        State
	unloaded     atomic.Bool
	transition   bool
}

// New constructs a page bound to an action registry.
func New(name string, registry *action.Registry) *Page {
	return &Page{
		Name:     name,
		registry: registry,
		styler:   nav.DefaultStyler,
		position: -1,
	}
}

// SetStyler replaces the focus styling injected into entered navigatables.
func (p *Page) SetStyler(s nav.Styler) {
	if s != nil {
		p.styler = s
	}
}

// State returns the lifecycle state.
func (p *Page) State() State { return p.state }

// Position returns the index of the current navigatable, or -1.
func (p *Page) Position() int { return p.position }

// Navigatables returns the live list. Callers must not mutate it directly.
func (p *Page) Navigatables() []nav.Navigatable { return p.navigatables }

// Load waits for readiness and activates the page. If Unload is called
// while the wait is in flight, the wait observes the flag and resolves
// without running OnLoad.
func (p *Page) Load() {
	if p.state != Constructed {
		return
	}
	p.state = Loading
	events.Page.Load(p.Name, p.Location)
	if p.StyleScan != nil {
		p.StyleScan()
	}
	ok := Waiter{Interval: p.ReadyInterval}.Wait(p.Ready, p.unloaded.Load)
	if !ok || p.unloaded.Load() {
		return
	}
	if p.OnLoad != nil {
		p.OnLoad(p)
	}
	if p.registry != nil {
		p.registry.SetDirectionCallback(p.OnDirectionAction)
		p.registry.AddAll(p.Actions)
	}
	p.state = Loaded
	events.Page.Loaded(p.Name)
}

// Unload tears the page down. Calling it while still loading makes the
// readiness wait resolve without activation. Idempotent; Unloaded is
// terminal.
func (p *Page) Unload() {
	if p.state == Unloaded {
		return
	}
	p.unloaded.Store(true)
	wasLoaded := p.state == Loaded
	p.state = Unloaded
	events.Page.Unload(p.Name)
	if wasLoaded {
		p.onUnload()
	}
}

func (p *Page) onUnload() {
	for _, n := range p.navigatables {
		if n == nil {
			continue
		}
		if p.registry != nil {
			p.registry.RemoveAll(n.Actions())
		}
		n.Exit()
		n.Cleanup()
	}
	p.navigatables = nil
	p.position = -1
	if p.registry != nil {
		p.registry.RemoveAll(p.Actions)
		p.registry.SetDirectionCallback(nil)
		p.registry.ClearInputCallback()
	}
}

// Current returns the navigatable at the current position, or nil.
func (p *Page) Current() nav.Navigatable {
	if p.position < 0 || p.position >= len(p.navigatables) {
		return nil
	}
	return p.navigatables[p.position]
}

// OnDirectionAction routes one direction press. Left/right go to the
// current navigatable. Up/down are delegated when the navigatable handles
// vertical movement internally (a capability check, not a type check);
// otherwise the page moves to the neighbouring list entry.
func (p *Page) OnDirectionAction(dir gamepad.Direction) {
	if p.state != Loaded || p.transition {
		return
	}
	current := p.Current()
	if current == nil {
		return
	}
	events.Page.Direction(p.Name, dir.String(), p.position)
	switch dir {
	case gamepad.DirectionLeft:
		current.Left()
	case gamepad.DirectionRight:
		current.Right()
	case gamepad.DirectionUp:
		if current.HandlesVertical() {
			current.Up()
			return
		}
		p.SetNavigatable(p.position - 1)
	case gamepad.DirectionDown:
		if current.HandlesVertical() {
			current.Down()
			return
		}
		p.SetNavigatable(p.position + 1)
	}
}

// SetNavigatable moves focus to the entry at position. The materializer
// hook runs first so entries that only now exist in the external document
// can be spliced in; only then is the index validated. A failed
// materialization leaves the page where it was.
func (p *Page) SetNavigatable(position int) bool {
	if p.Materialize != nil && (position < 0 || position >= len(p.navigatables) || p.navigatables[position] == nil) {
		p.Materialize(p, position)
		if position >= 0 && position < len(p.navigatables) && p.navigatables[position] != nil {
			events.Page.Materialized(p.Name, position)
		}
	}
	if position < 0 || position >= len(p.navigatables) || p.navigatables[position] == nil {
		return false
	}
	from := p.position
	transfer := nav.NewTransfer(-1)
	if current := p.Current(); current != nil {
		if p.registry != nil {
			// A navigatable binding on the same index shadows the
			// page-level one; removal deletes the index outright, so
			// the page bindings must be re-asserted.
			p.registry.RemoveAll(current.Actions())
			p.registry.AddAll(p.Actions)
		}
		transfer = current.Exit()
	}
	p.position = position
	p.enter(p.navigatables[position], transfer)
	events.Page.SetNavigatable(p.Name, from, position)
	return true
}

func (p *Page) enter(n nav.Navigatable, t nav.Transfer) {
	n.SetStyler(p.styler)
	n.Enter(t)
	if p.registry != nil {
		p.registry.AddAll(n.Actions())
	}
}

// AddNavigatable appends an entry, which may be a nil placeholder.
func (p *Page) AddNavigatable(n nav.Navigatable) {
	p.navigatables = append(p.navigatables, n)
}

// InsertAt splices an entry in, keeping the current position pointing at
// the same navigatable.
func (p *Page) InsertAt(index int, n nav.Navigatable) {
	if index < 0 {
		index = 0
	}
	if index > len(p.navigatables) {
		index = len(p.navigatables)
	}
	p.navigatables = append(p.navigatables, nil)
	copy(p.navigatables[index+1:], p.navigatables[index:])
	p.navigatables[index] = n
	if p.position >= index {
		p.position++
	}
}

// ReplaceNil fills a nil placeholder with a real navigatable. It refuses to
// overwrite a non-nil entry.
func (p *Page) ReplaceNil(position int, n nav.Navigatable) bool {
	if position < 0 || position >= len(p.navigatables) || p.navigatables[position] != nil {
		return false
	}
	p.navigatables[position] = n
	return true
}

// InsertAfter splices an entry immediately after an existing one, located
// by identity. This is how a slider's detail panel joins the page.
func (p *Page) InsertAfter(after, n nav.Navigatable) bool {
	idx := p.indexOf(after)
	if idx < 0 {
		return false
	}
	p.InsertAt(idx+1, n)
	return true
}

// Remove splices an entry out by identity. Removing the current entry this
// way is not supported; use RemoveCurrent for the close-panel flow.
func (p *Page) Remove(n nav.Navigatable) bool {
	idx := p.indexOf(n)
	if idx < 0 || idx == p.position {
		return false
	}
	p.navigatables = append(p.navigatables[:idx], p.navigatables[idx+1:]...)
	if p.position > idx {
		p.position--
	}
	return true
}

// RemoveCurrent is the single operation a transient sub-panel uses to close
// itself: exit the current entry, delete it, decrement the position, and
// re-enter what now sits there. The whole sequence is atomic with respect
// to direction dispatch.
func (p *Page) RemoveCurrent() {
	if p.position < 0 || p.position >= len(p.navigatables) {
		return
	}
	p.transition = true
	defer func() { p.transition = false }()

	current := p.navigatables[p.position]
	if p.registry != nil && current != nil {
		p.registry.RemoveAll(current.Actions())
		p.registry.AddAll(p.Actions)
	}
	if current != nil {
		current.Exit()
		current.Cleanup()
	}
	idx := p.position
	p.navigatables = append(p.navigatables[:idx], p.navigatables[idx+1:]...)
	p.position = idx - 1
	if p.position >= 0 && p.position < len(p.navigatables) && p.navigatables[p.position] != nil {
		p.enter(p.navigatables[p.position], nav.Transfer{Position: -1, ClosedPanel: true})
	}
}

func (p *Page) indexOf(n nav.Navigatable) int {
	for i, entry := range p.navigatables {
		if entry == n {
			return i
		}
	}
	return -1
}

var _ nav.PageHost = (*Page)(nil)
