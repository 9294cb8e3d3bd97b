package gamepad

import (
	"math"
	"testing"
)

func TestAdjustDeadzoneZeroesInsideBand(t *testing.T) {
	for _, v := range []float64{0, 0.05, -0.05, 0.1, -0.1} {
		if got := AdjustDeadzone(v, 0.1); got != 0 {
			t.Fatalf("expected 0 for %v, got %v", v, got)
		}
	}
}

func TestAdjustDeadzoneContinuousAtBoundary(t *testing.T) {
	dz := 0.1
	eps := 1e-9
	just := AdjustDeadzone(dz+eps, dz)
	if math.Abs(just) > 1e-8 {
		t.Fatalf("expected near-zero just past the boundary, got %v", just)
	}
	justNeg := AdjustDeadzone(-dz-eps, dz)
	if math.Abs(justNeg) > 1e-8 {
		t.Fatalf("expected near-zero just past the negative boundary, got %v", justNeg)
	}
}

func TestAdjustDeadzoneShiftsRange(t *testing.T) {
	if got := AdjustDeadzone(0.5, 0.1); got != 0.4 {
		t.Fatalf("expected 0.4, got %v", got)
	}
	if got := AdjustDeadzone(-0.5, 0.1); got != -0.4 {
		t.Fatalf("expected -0.4, got %v", got)
	}
	if got := AdjustDeadzone(0.3, 0); got != 0.3 {
		t.Fatalf("expected passthrough with zero deadzone, got %v", got)
	}
}

func TestDeadzoneSettersRejectInvalidValues(t *testing.T) {
	d := newDevice(Snapshot{ID: "pad"}, func(*Event) {}, func() [][2]int { return nil })
	for _, dz := range []float64{-0.1, 1, 1.5, math.NaN()} {
		if err := d.SetDeadzone(dz); err == nil {
			t.Fatalf("expected error for deadzone %v", dz)
		}
		if err := d.SetAxisDeadzone(0, dz); err == nil {
			t.Fatalf("expected error for axis deadzone %v", dz)
		}
		if err := d.SetJoystickDeadzone(dz); err == nil {
			t.Fatalf("expected error for joystick deadzone %v", dz)
		}
	}
	if err := d.SetDeadzone(0); err != nil {
		t.Fatalf("expected 0 to be accepted: %v", err)
	}
	if err := d.SetDeadzone(0.25); err != nil {
		t.Fatalf("expected 0.25 to be accepted: %v", err)
	}
	if d.Deadzone() != 0.25 {
		t.Fatalf("expected deadzone 0.25, got %v", d.Deadzone())
	}
}
