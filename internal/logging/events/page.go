package events

import "github.com/JumpLink/NetflixController/internal/logging"

type PageTracer struct{}

var Page = PageTracer{}

func (PageTracer) Load(name, location string) {
	logging.Trace("page.load", map[string]interface{}{"page": name, "location": location})
}

func (PageTracer) Loaded(name string) {
	logging.Trace("page.loaded", map[string]interface{}{"page": name})
}

func (PageTracer) Unload(name string) {
	logging.Trace("page.unload", map[string]interface{}{"page": name})
}

func (PageTracer) Direction(name, direction string, position int) {
	logging.Trace("page.direction", map[string]interface{}{"page": name, "direction": direction, "position": position})
}

func (PageTracer) SetNavigatable(name string, from, to int) {
	logging.Trace("page.navigatable", map[string]interface{}{"page": name, "from": from, "to": to})
}

func (PageTracer) Materialized(name string, position int) {
	logging.Trace("page.materialized", map[string]interface{}{"page": name, "position": position})
}

func (PageTracer) RouteMatch(location, page string) {
	logging.Trace("page.route", map[string]interface{}{"location": location, "page": page})
}
