package events

import "github.com/JumpLink/NetflixController/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Select(component string, position int) {
	logging.Trace("nav.select", map[string]interface{}{"component": component, "position": position})
}

func (NavTracer) Unselect(component string, position int) {
	logging.Trace("nav.unselect", map[string]interface{}{"component": component, "position": position})
}

func (NavTracer) Stale(component string, position int) {
	logging.Trace("nav.stale", map[string]interface{}{"component": component, "position": position})
}

func (NavTracer) Interact(component string, position int) {
	logging.Trace("nav.interact", map[string]interface{}{"component": component, "position": position})
}

func (NavTracer) SliderShift(component string, direction string) {
	logging.Trace("nav.slider.shift", map[string]interface{}{"component": component, "direction": direction})
}

func (NavTracer) PanelOpen(component string) {
	logging.Trace("nav.panel.open", map[string]interface{}{"component": component})
}

func (NavTracer) PanelClose(component string) {
	logging.Trace("nav.panel.close", map[string]interface{}{"component": component})
}
