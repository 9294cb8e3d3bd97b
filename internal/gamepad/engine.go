package gamepad

import (
	"github.com/JumpLink/NetflixController/internal/logging/events"
)

// Engine converts a polled device list into discrete, consumable events.
// All dispatch happens synchronously inside Poll; there is no concurrent
// mutation of engine state.
type Engine struct {
	source    Source
	listeners *listenerSet

	devices map[string]*Device
	order   []string

	sched   Scheduler
	running bool
}

// NewEngine wraps a host device source.
func NewEngine(source Source) *Engine {
	return &Engine{
		source:    source,
		listeners: newListenerSet(),
		devices:   make(map[string]*Device),
	}
}

// On registers a listener. For most event types indices is empty (fires for
// every index, after index-specific listeners) or a single control index.
// EventJoystickMove requires exactly a 2-length pair of one X and one Y axis.
func (e *Engine) On(t EventType, indices []int, fn Listener) error {
	return e.listeners.add(t, indices, fn)
}

// Device returns the tracked record for a host identity, if present.
func (e *Engine) Device(id string) (*Device, bool) {
	d, ok := e.devices[id]
	return d, ok
}

// Devices returns tracked devices in connect order.
func (e *Engine) Devices() []*Device {
	out := make([]*Device, 0, len(e.order))
	for _, id := range e.order {
		if d, ok := e.devices[id]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Poll re-reads the host device list and diffs every present device against
// its tracked record. Newly seen devices emit a connect event and their
// first snapshot becomes the comparison baseline. Tracked devices absent
// from the list emit a disconnect event and stop being tracked.
func (e *Engine) Poll() {
	list := e.source.Devices()
	seen := make(map[string]struct{}, len(list))
	for _, raw := range list {
		seen[raw.ID] = struct{}{}
		d, ok := e.devices[raw.ID]
		if !ok {
			d = newDevice(raw, e.listeners.dispatch, e.listeners.pairs)
			e.devices[raw.ID] = d
			e.order = append(e.order, raw.ID)
			events.Input.Connect(raw.ID, raw.Index)
			e.listeners.dispatch(&Event{Type: EventConnect, Device: d, Index: raw.Index})
			continue
		}
		d.update(raw)
	}
	for _, id := range e.order {
		if _, ok := seen[id]; ok {
			continue
		}
		d := e.devices[id]
		d.hostConnected = false
		d.connected = false
		delete(e.devices, id)
		events.Input.Disconnect(id)
		e.listeners.dispatch(&Event{Type: EventDisconnect, Device: d, Index: d.index})
	}
	e.compactOrder()
}

func (e *Engine) compactOrder() {
	if len(e.order) == len(e.devices) {
		return
	}
	kept := e.order[:0]
	for _, id := range e.order {
		if _, ok := e.devices[id]; ok {
			kept = append(kept, id)
		}
	}
	e.order = kept
}

// Start begins recurring polls on the given scheduler. Calling Start while
// running is a no-op.
func (e *Engine) Start(sched Scheduler) {
	if e.running {
		return
	}
	e.sched = sched
	e.running = true
	sched.Start(e.Poll)
}

// Stop halts scheduling. It is idempotent and guarantees no trailing poll
// once it returns.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	if e.sched != nil {
		e.sched.Stop()
		e.sched = nil
	}
}
