package gamepad

// Standard-layout control indices. Hosts that expose the standard mapping
// report buttons and axes at these positions regardless of vendor.
const (
	ButtonA = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLB
	ButtonRB
	ButtonLT
	ButtonRT
	ButtonSelect
	ButtonStart
	ButtonLS
	ButtonRS
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonHome
)

const (
	AxisLeftX = iota
	AxisLeftY
	AxisRightX
	AxisRightY
)

// IndexAny registers a listener for every control index. Such listeners run
// after index-specific ones for the same event type.
const IndexAny = -1

// Direction is a discrete navigation direction derived from d-pad codes.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "none"
}

// DirectionForButton maps a d-pad button index to its direction, or
// DirectionNone for non-directional indices.
func DirectionForButton(index int) Direction {
	switch index {
	case ButtonDPadUp:
		return DirectionUp
	case ButtonDPadDown:
		return DirectionDown
	case ButtonDPadLeft:
		return DirectionLeft
	case ButtonDPadRight:
		return DirectionRight
	}
	return DirectionNone
}
