package gamepad

import (
	"github.com/JumpLink/NetflixController/internal/logging/events"
)

// Device is the engine's tracked record for one controller. It survives
// across polls regardless of whether the host hands out fresh snapshot
// values or keeps mutating one live record, because the engine always diffs
// against its own copy of the previously processed state.
//
// Connection state carries two bits: the host-reported flag from the latest
// read and the last-known flag from the previous poll. Some hosts stop
// updating a disconnected device in place, so the two can disagree for a
// frame.
type Device struct {
	id    string
	index int

	hostConnected bool
	connected     bool

	prev Snapshot

	deadzone         float64
	axisDeadzones    map[int]float64
	joystickDeadzone float64

	dispatch func(*Event)
	pairs    func() [][2]int
}

func newDevice(raw Snapshot, dispatch func(*Event), pairs func() [][2]int) *Device {
	return &Device{
		id:               raw.ID,
		index:            raw.Index,
		hostConnected:    raw.Connected,
		connected:        raw.Connected,
		prev:             cloneSnapshot(raw),
		deadzone:         DefaultDeadzone,
		axisDeadzones:    make(map[int]float64),
		joystickDeadzone: DefaultDeadzone,
		dispatch:         dispatch,
		pairs:            pairs,
	}
}

// ID returns the host identity string for the device.
func (d *Device) ID() string { return d.id }

// Index returns the host slot index for the device.
func (d *Device) Index() int { return d.index }

// Connected reports the last-known connection state.
func (d *Device) Connected() bool { return d.connected }

// State returns a copy of the most recently processed snapshot.
func (d *Device) State() Snapshot { return cloneSnapshot(d.prev) }

// Deadzone returns the per-device axis deadzone.
func (d *Device) Deadzone() float64 { return d.deadzone }

// SetDeadzone replaces the per-device axis deadzone. Values outside [0,1)
// are a usage error.
func (d *Device) SetDeadzone(dz float64) error {
	if err := validDeadzone(dz); err != nil {
		return err
	}
	d.deadzone = dz
	return nil
}

// SetAxisDeadzone overrides the deadzone for a single axis.
func (d *Device) SetAxisDeadzone(axis int, dz float64) error {
	if err := validDeadzone(dz); err != nil {
		return err
	}
	d.axisDeadzones[axis] = dz
	return nil
}

// SetJoystickDeadzone replaces the deadzone applied to registered axis
// pairs. It is distinct from the per-axis deadzone.
func (d *Device) SetJoystickDeadzone(dz float64) error {
	if err := validDeadzone(dz); err != nil {
		return err
	}
	d.joystickDeadzone = dz
	return nil
}

func (d *Device) axisDeadzone(axis int) float64 {
	if dz, ok := d.axisDeadzones[axis]; ok {
		return dz
	}
	return d.deadzone
}

// update diffs the previously processed state against a new raw read and
// dispatches edge events. Comparison order: buttons, axes, joysticks.
func (d *Device) update(raw Snapshot) {
	old := d.prev
	d.hostConnected = raw.Connected

	// A timestamp behind the processed state is a stale read; skip it but
	// keep the host-reported connection bit.
	if raw.Timestamp < old.Timestamp {
		return
	}

	if old.Connected && raw.Connected {
		d.compareButtons(old, raw)
		d.compareAxes(old, raw)
		d.compareJoysticks(old, raw)
	}

	d.prev = cloneSnapshot(raw)
	d.connected = raw.Connected
}

func (d *Device) compareButtons(old, now Snapshot) {
	n := len(now.Buttons)
	if len(old.Buttons) > n {
		n = len(old.Buttons)
	}
	for i := 0; i < n; i++ {
		prev := buttonAt(old, i)
		cur := buttonAt(now, i)
		if cur.Pressed && !prev.Pressed {
			events.Input.ButtonPress(d.id, i, cur.Value)
			d.dispatch(&Event{Type: EventButtonPress, Device: d, Index: i, Value: cur.Value})
		}
		if !cur.Pressed && prev.Pressed {
			events.Input.ButtonRelease(d.id, i)
			d.dispatch(&Event{Type: EventButtonRelease, Device: d, Index: i, Value: cur.Value})
		}
		if cur.Value != prev.Value {
			d.dispatch(&Event{Type: EventButtonChange, Device: d, Index: i, Value: cur.Value})
		}
	}
}

func (d *Device) compareAxes(old, now Snapshot) {
	n := len(now.Axes)
	if len(old.Axes) > n {
		n = len(old.Axes)
	}
	for i := 0; i < n; i++ {
		dz := d.axisDeadzone(i)
		prev := AdjustDeadzone(axisAt(old, i), dz)
		cur := AdjustDeadzone(axisAt(now, i), dz)
		if prev == cur {
			continue
		}
		events.Input.AxisChange(d.id, i, cur)
		d.dispatch(&Event{Type: EventAxisChange, Device: d, Index: i, Value: cur})
	}
}

func (d *Device) compareJoysticks(old, now Snapshot) {
	for _, pair := range d.pairs() {
		prevX := AdjustDeadzone(axisAt(old, pair[0]), d.joystickDeadzone)
		prevY := AdjustDeadzone(axisAt(old, pair[1]), d.joystickDeadzone)
		curX := AdjustDeadzone(axisAt(now, pair[0]), d.joystickDeadzone)
		curY := AdjustDeadzone(axisAt(now, pair[1]), d.joystickDeadzone)
		if prevX == curX && prevY == curY {
			continue
		}
		values := [2]float64{curX, curY}
		events.Input.JoystickMove(d.id, pair, values)
		d.dispatch(&Event{Type: EventJoystickMove, Device: d, Indices: pair, Values: values})
	}
}

func buttonAt(s Snapshot, i int) ButtonState {
	if i < 0 || i >= len(s.Buttons) {
		return ButtonState{}
	}
	return s.Buttons[i]
}

func axisAt(s Snapshot, i int) float64 {
	if i < 0 || i >= len(s.Axes) {
		return 0
	}
	return s.Axes[i]
}
