// Package dispatcher routes engine connection events into the device
// roster and user-facing notices.
package dispatcher

import (
	"fmt"

	"github.com/JumpLink/NetflixController/internal/gamepad"
	"github.com/JumpLink/NetflixController/internal/settings"
	"github.com/JumpLink/NetflixController/internal/state"
)

// A standard-layout report carries at least this many buttons and axes.
// Devices below the threshold still work but direction mapping may be off,
// which is what the compatibility warning tells the user.
const (
	standardButtons = 16
	standardAxes    = 4
)

type Result struct {
	RosterUpdated bool
}

// Noticer is the slice of notice behaviour the dispatcher needs.
type Noticer interface {
	Notify(message string)
	NotifyOnce(message string)
}

type Dispatcher struct {
	roster   state.RosterStore
	notices  Noticer
	settings func() settings.Settings
}

// New wires a dispatcher. notices may be nil; prefs supplies the current
// preference snapshot per event so toggles apply without rewiring.
func New(roster state.RosterStore, notices Noticer, prefs func() settings.Settings) *Dispatcher {
	if prefs == nil {
		prefs = func() settings.Settings { return settings.Settings{} }
	}
	return &Dispatcher{roster: roster, notices: notices, settings: prefs}
}

// Attach registers the dispatcher on the engine's connect and disconnect
// streams.
func (d *Dispatcher) Attach(engine *gamepad.Engine) error {
	if err := engine.On(gamepad.EventConnect, nil, func(e *gamepad.Event) { d.handleConnect(e) }); err != nil {
		return err
	}
	return engine.On(gamepad.EventDisconnect, nil, func(e *gamepad.Event) { d.handleDisconnect(e) })
}

func (d *Dispatcher) handleConnect(e *gamepad.Event) Result {
	snap := e.Device.State()
	entry := state.DeviceEntry{
		ID:       e.Device.ID(),
		Index:    e.Device.Index(),
		Buttons:  len(snap.Buttons),
		Axes:     len(snap.Axes),
		Standard: len(snap.Buttons) >= standardButtons && len(snap.Axes) >= standardAxes,
	}
	d.roster.Upsert(entry)

	prefs := d.settings()
	if d.notices != nil && prefs.ShowConnectionNotices {
		d.notices.Notify(fmt.Sprintf("Controller connected: %s", entry.ID))
	}
	if d.notices != nil && prefs.CompatibilityWarning && !entry.Standard {
		d.notices.NotifyOnce(fmt.Sprintf("Controller %s does not report a standard layout; buttons may be mapped incorrectly", entry.ID))
	}
	return Result{RosterUpdated: true}
}

func (d *Dispatcher) handleDisconnect(e *gamepad.Event) Result {
	d.roster.Remove(e.Device.Index())
	if d.notices != nil && d.settings().ShowConnectionNotices {
		d.notices.Notify(fmt.Sprintf("Controller disconnected: %s", e.Device.ID()))
	}
	return Result{RosterUpdated: true}
}
