package page

import (
	"regexp"

	"github.com/JumpLink/NetflixController/internal/logging/events"
)

// Route binds a location pattern to a page constructor. Routes are
// consulted in registration order; the first match wins.
type Route struct {
	Pattern *regexp.Regexp
	Build   func(location string) *Page
}

// Router resolves locations to pages and drives the unload/load handoff
// between them.
type Router struct {
	routes  []Route
	current *Page
}

// NewRouter constructs an empty router.
func NewRouter() *Router { return &Router{} }

// Register appends a route. Earlier registrations take priority.
func (r *Router) Register(pattern string, build func(location string) *Page) {
	r.routes = append(r.routes, Route{Pattern: regexp.MustCompile(pattern), Build: build})
}

// Resolve returns a fresh page for the location, or nil when no route
// matches.
func (r *Router) Resolve(location string) *Page {
	for _, route := range r.routes {
		if route.Pattern.MatchString(location) {
			p := route.Build(location)
			if p != nil {
				p.Location = location
				events.Page.RouteMatch(location, p.Name)
			}
			return p
		}
	}
	return nil
}

// Current returns the active page, possibly nil.
func (r *Router) Current() *Page { return r.current }

// Navigate unloads the active page and loads whatever the location
// resolves to. The unload happens even when nothing matches, so leaving a
// recognized page for an unrecognized one still tears down its bindings.
func (r *Router) Navigate(location string) *Page {
	if r.current != nil {
		r.current.Unload()
		r.current = nil
	}
	p := r.Resolve(location)
	if p == nil {
		return nil
	}
	r.current = p
	p.Load()
	return p
}
