package action

import (
	"fmt"
	"sort"

	"github.com/JumpLink/NetflixController/internal/gamepad"
	"github.com/JumpLink/NetflixController/internal/logging/events"
)

// Action binds a button index to contextual behaviour. OnRelease is optional.
// HideHint keeps the binding out of the on-screen hint bar.
type Action struct {
	Label     string
	Index     int
	OnPress   func()
	OnRelease func()
	HideHint  bool
}

// Hint is one entry of the ordered set handed to the hint-display
// collaborator.
type Hint struct {
	Label string
	Index int
}

// HintSink receives the refreshed hint set. Rendering is the sink's problem;
// the registry only guarantees accuracy and ordering.
type HintSink interface {
	SetHints([]Hint)
}

// NoticeSink surfaces recovered action-callback failures to the user.
type NoticeSink interface {
	Notify(message string)
}

// Registry maintains the live mapping from button indices to contextual
// actions plus two cross-cutting callbacks: the direction callback bound to
// whichever page currently owns navigation, and a generic any-input callback
// used to reset inactivity timers.
type Registry struct {
	actions map[int]Action

	directionFn func(gamepad.Direction)
	inputFn     func()

	hints   HintSink
	notices NoticeSink
}

// NewRegistry creates an empty registry. Both sinks may be nil.
func NewRegistry(hints HintSink, notices NoticeSink) *Registry {
	return &Registry{
		actions: make(map[int]Action),
		hints:   hints,
		notices: notices,
	}
}

// SetDirectionCallback installs the handler for d-pad direction codes.
func (r *Registry) SetDirectionCallback(fn func(gamepad.Direction)) {
	r.directionFn = fn
}

// SetInputCallback installs the generic activity handler invoked for every
// button press.
func (r *Registry) SetInputCallback(fn func()) {
	r.inputFn = fn
}

// ClearInputCallback removes the generic activity handler.
func (r *Registry) ClearInputCallback() {
	r.inputFn = nil
}

// Add registers an action, overwriting any existing binding for the same
// index, and refreshes the hint display.
func (r *Registry) Add(a Action) {
	r.actions[a.Index] = a
	events.Action.Add(a.Index, a.Label)
	r.refreshHints()
}

// Remove drops the binding for an index and refreshes the hint display.
func (r *Registry) Remove(index int) {
	if _, ok := r.actions[index]; !ok {
		return
	}
	delete(r.actions, index)
	events.Action.Remove(index)
	r.refreshHints()
}

// AddAll registers a batch with a single hint refresh at the end, so the
// hint bar never flickers through intermediate states.
func (r *Registry) AddAll(actions []Action) {
	for _, a := range actions {
		r.actions[a.Index] = a
		events.Action.Add(a.Index, a.Label)
	}
	r.refreshHints()
}

// RemoveAll drops a batch with a single hint refresh at the end.
func (r *Registry) RemoveAll(actions []Action) {
	for _, a := range actions {
		delete(r.actions, a.Index)
		events.Action.Remove(a.Index)
	}
	r.refreshHints()
}

// Get returns the action bound to an index.
func (r *Registry) Get(index int) (Action, bool) {
	a, ok := r.actions[index]
	return a, ok
}

// Hints returns the visible hint set ordered by button index.
func (r *Registry) Hints() []Hint {
	indices := make([]int, 0, len(r.actions))
	for idx, a := range r.actions {
		if a.HideHint {
			continue
		}
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	hints := make([]Hint, 0, len(indices))
	for _, idx := range indices {
		hints = append(hints, Hint{Label: r.actions[idx].Label, Index: idx})
	}
	return hints
}

// OnButtonPress routes one press through the generic input callback, then
// the direction callback when the index is a d-pad code, then the bound
// action. The three are independent and may all fire.
func (r *Registry) OnButtonPress(index int) {
	if r.inputFn != nil {
		r.inputFn()
	}
	if dir := gamepad.DirectionForButton(index); dir != gamepad.DirectionNone && r.directionFn != nil {
		r.directionFn(dir)
	}
	if a, ok := r.actions[index]; ok && a.OnPress != nil {
		events.Action.Press(index, a.Label)
		r.invoke(a, a.OnPress)
	}
}

// OnButtonRelease invokes only the matching action's OnRelease, if present.
func (r *Registry) OnButtonRelease(index int) {
	if a, ok := r.actions[index]; ok && a.OnRelease != nil {
		events.Action.Release(index, a.Label)
		r.invoke(a, a.OnRelease)
	}
}

// Attach subscribes the registry to an engine's button events.
func (r *Registry) Attach(engine *gamepad.Engine) error {
	if err := engine.On(gamepad.EventButtonPress, nil, func(e *gamepad.Event) {
		r.OnButtonPress(e.Index)
	}); err != nil {
		return err
	}
	return engine.On(gamepad.EventButtonRelease, nil, func(e *gamepad.Event) {
		r.OnButtonRelease(e.Index)
	})
}

// invoke runs a caller-supplied callback behind a recover boundary. A panic
// is logged, surfaced as a transient notice, and must not abort the current
// poll cycle.
func (r *Registry) invoke(a Action, fn func()) {
	defer func() {
		if v := recover(); v != nil {
			events.Action.Recovered(a.Index, a.Label, v)
			if r.notices != nil {
				r.notices.Notify(fmt.Sprintf("action %q failed: %v", a.Label, v))
			}
		}
	}()
	fn()
}

func (r *Registry) refreshHints() {
	if r.hints == nil {
		return
	}
	r.hints.SetHints(r.Hints())
}
