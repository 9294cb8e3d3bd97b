package pages

import "github.com/JumpLink/NetflixController/internal/page"

// NewRouter wires every known location pattern. Registration order is
// priority order; the root location falls through to browse.
func NewRouter(deps Deps) (*page.Router, *SearchState) {
	r := page.NewRouter()
	search := NewSearchState(deps.Doc)

	r.Register(`^/watch`, func(string) *page.Page {
		return NewWatch(deps)
	})
	r.Register(`^/search`, func(string) *page.Page {
		return NewSearch(deps, search)
	})
	r.Register(`^/(browse|$)`, func(string) *page.Page {
		return NewBrowse(deps)
	})
	return r, search
}
