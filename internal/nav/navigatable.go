package nav

import (
	"time"

	"github.com/JumpLink/NetflixController/internal/action"
)

// Navigatable is anything that can hold focus, move focus within itself, and
// be entered or exited with an opaque transfer of transient state.
type Navigatable interface {
	Left()
	Right()
	Up()
	Down()

	// Enter gives the navigatable focus, restoring state from the transfer
	// produced by the previous holder's Exit.
	Enter(Transfer)
	// Exit releases focus and returns the state the next holder needs.
	Exit() Transfer

	// HandlesVertical reports whether Up/Down move focus internally. Pages
	// use this capability check to decide between delegating and moving to
	// a neighbouring navigatable.
	HandlesVertical() bool

	// Actions lists the contextual button bindings this navigatable wants
	// while focused.
	Actions() []action.Action

	SetStyler(Styler)

	// Cleanup releases observers and listeners. Owners call it before
	// discarding the navigatable; it must be safe to call repeatedly.
	Cleanup()
}

// Transfer is the opaque bag of scalar state that crosses an exit/enter
// handoff. It is created fresh per transition and never retained.
type Transfer struct {
	// Position is the sub-index that was selected, or -1.
	Position int
	// ClosedPanel is set when the transition was caused by a transient
	// sub-panel closing itself.
	ClosedPanel bool
	Params      map[string]string
}

// NewTransfer builds a transfer carrying a selected sub-position.
func NewTransfer(position int) Transfer {
	return Transfer{Position: position}
}

// Delayer schedules a callback after a settle delay. The default uses the
// runtime timer; tests substitute a synchronous implementation.
type Delayer interface {
	After(d time.Duration, fn func())
}

// TimerDelayer schedules on the runtime timer.
type TimerDelayer struct{}

func (TimerDelayer) After(d time.Duration, fn func()) { time.AfterFunc(d, fn) }

// ImmediateDelayer runs callbacks synchronously, for deterministic tests.
type ImmediateDelayer struct{}

func (ImmediateDelayer) After(_ time.Duration, fn func()) { fn() }

// PageHost is the slice of page behaviour a navigatable needs to splice
// companions in and out of the owning page's list.
type PageHost interface {
	InsertAfter(after Navigatable, n Navigatable) bool
	Remove(n Navigatable) bool
	RemoveCurrent()
}
