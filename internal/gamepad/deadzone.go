package gamepad

import (
	"fmt"
	"math"
)

// DefaultDeadzone is applied per device unless overridden.
const DefaultDeadzone = 0.1

// ErrInvalidDeadzone marks a deadzone outside [0,1). It signals a usage
// error: callers fix the value rather than recover at runtime.
var ErrInvalidDeadzone = fmt.Errorf("deadzone must be in [0,1)")

func validDeadzone(dz float64) error {
	if dz < 0 || dz >= 1 || math.IsNaN(dz) {
		return fmt.Errorf("%w (got %v)", ErrInvalidDeadzone, dz)
	}
	return nil
}

// AdjustDeadzone zeroes values inside the deadzone and shifts the remaining
// range toward zero so the output stays continuous at the boundary. The
// continuity matters for smooth on-screen joystick visualisation.
func AdjustDeadzone(v, dz float64) float64 {
	if math.Abs(v) <= dz {
		return 0
	}
	if v > 0 {
		return v - dz
	}
	return v + dz
}
