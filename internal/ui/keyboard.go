package ui

import (
	"github.com/JumpLink/NetflixController/internal/gamepad"
)

const (
	keyboardID      = "Keyboard Virtual Gamepad (standard)"
	keyboardButtons = 17
	keyboardAxes    = 4
)

// Keyboard is a virtual gamepad fed by terminal key presses. Terminals only
// report key-down, so every press is a tap: the device reads as pressed for
// exactly one poll and released on the next.
type Keyboard struct {
	connected bool
	timestamp float64
	taps      map[int]bool
}

// NewKeyboard starts connected.
func NewKeyboard() *Keyboard {
	return &Keyboard{connected: true, taps: make(map[int]bool)}
}

// Tap queues a momentary press of the given button index.
func (k *Keyboard) Tap(index int) {
	if index < 0 || index >= keyboardButtons {
		return
	}
	k.taps[index] = true
}

// SetConnected simulates plugging or unplugging the device.
func (k *Keyboard) SetConnected(v bool) { k.connected = v }

// Devices implements gamepad.Source. Each read consumes the queued taps and
// advances the snapshot timestamp.
func (k *Keyboard) Devices() []gamepad.Snapshot {
	if !k.connected {
		return nil
	}
	k.timestamp++
	buttons := make([]gamepad.ButtonState, keyboardButtons)
	for idx := range k.taps {
		buttons[idx] = gamepad.ButtonState{Pressed: true, Value: 1}
	}
	k.taps = make(map[int]bool)
	return []gamepad.Snapshot{{
		ID:        keyboardID,
		Index:     0,
		Connected: true,
		Timestamp: k.timestamp,
		Buttons:   buttons,
		Axes:      make([]float64, keyboardAxes),
	}}
}

var _ gamepad.Source = (*Keyboard)(nil)

// keyBindings maps terminal keys to standard-layout button indices.
var keyBindings = map[string]int{
	"up":        gamepad.ButtonDPadUp,
	"down":      gamepad.ButtonDPadDown,
	"left":      gamepad.ButtonDPadLeft,
	"right":     gamepad.ButtonDPadRight,
	"enter":     gamepad.ButtonA,
	"backspace": gamepad.ButtonB,
	"x":         gamepad.ButtonX,
	"y":         gamepad.ButtonY,
	"[":         gamepad.ButtonLB,
	"]":         gamepad.ButtonRB,
	"{":         gamepad.ButtonLT,
	"}":         gamepad.ButtonRT,
	"s":         gamepad.ButtonSelect,
	"p":         gamepad.ButtonStart,
}
