package gamepad

// EventType identifies the kind of discrete event produced by a poll.
type EventType int

const (
	EventConnect EventType = iota
	EventDisconnect
	EventButtonPress
	EventButtonRelease
	EventButtonChange
	EventAxisChange
	EventJoystickMove
)

func (t EventType) String() string {
	switch t {
	case EventConnect:
		return "connect"
	case EventDisconnect:
		return "disconnect"
	case EventButtonPress:
		return "buttonpress"
	case EventButtonRelease:
		return "buttonrelease"
	case EventButtonChange:
		return "buttonchange"
	case EventAxisChange:
		return "axischange"
	case EventJoystickMove:
		return "joystickmove"
	}
	return "unknown"
}

// Event is created transiently when a poll comparison detects a change and
// never persisted. JoystickMove events carry Indices/Values; every other type
// uses Index/Value.
type Event struct {
	Type    EventType
	Device  *Device
	Index   int
	Value   float64
	Indices [2]int
	Values  [2]float64

	consumed bool
}

// Consume stops further listener dispatch for this event only. Sibling events
// produced by the same poll are unaffected.
func (e *Event) Consume() { e.consumed = true }

// Consumed reports whether a listener already consumed the event.
func (e *Event) Consumed() bool { return e.consumed }

// Listener receives dispatched events.
type Listener func(*Event)
