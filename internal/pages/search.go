package pages

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/JumpLink/NetflixController/internal/dom"
	"github.com/JumpLink/NetflixController/internal/nav"
	"github.com/JumpLink/NetflixController/internal/page"
)

const (
	searchGalleryClass = "search-gallery"
	searchCardClass    = "search-title-card"
	searchColumns      = 4
)

// NewSearchState builds the query holder shared between the host's text
// input and the search page grid.
func NewSearchState(doc *dom.Document) *SearchState {
	return &SearchState{doc: doc}
}

// NewSearch builds the search page: a grid over the result gallery. The
// query itself lives in the host's text input; the page re-ranks its grid
// whenever SetQuery is called with new text.
func NewSearch(deps Deps, state *SearchState) *page.Page {
	p := page.New("search", deps.Registry)
	p.Ready = func() bool {
		return deps.Doc.FirstByClass(searchGalleryClass) != nil
	}
	p.OnLoad = func(p *page.Page) {
		grid := nav.NewGrid("results", searchColumns, state.resolve)
		state.grid = grid
		p.AddNavigatable(grid)
		p.SetNavigatable(0)
	}
	return p
}

// SearchState holds the live query and exposes the filtered card list to
// the grid.
type SearchState struct {
	doc   *dom.Document
	grid  *nav.Grid
	query string
}

// SetQuery installs the new query text and invalidates the grid so the
// next resolve re-ranks.
func (s *SearchState) SetQuery(q string) {
	if q == s.query {
		return
	}
	s.query = q
	if s.grid != nil {
		s.grid.Invalidate()
		s.grid.Select(0)
	}
}

// Query returns the current query text.
func (s *SearchState) Query() string { return s.query }

func (s *SearchState) resolve() []*dom.Element {
	gallery := s.doc.FirstByClass(searchGalleryClass)
	if gallery == nil {
		return nil
	}
	cards := gallery.ByClass(searchCardClass)
	if strings.TrimSpace(s.query) == "" {
		return cards
	}
	return Rank(s.query, cards)
}

// Rank orders cards by fuzzy match quality against their visible labels,
// dropping non-matches. Ties keep document order.
func Rank(query string, cards []*dom.Element) []*dom.Element {
	type scored struct {
		el    *dom.Element
		rank  int
		order int
	}
	var matched []scored
	for i, card := range cards {
		label := strings.TrimSpace(card.Text())
		r := fuzzy.RankMatchNormalizedFold(query, label)
		if r < 0 {
			continue
		}
		matched = append(matched, scored{el: card, rank: r, order: i})
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].rank != matched[j].rank {
			return matched[i].rank < matched[j].rank
		}
		return matched[i].order < matched[j].order
	})
	out := make([]*dom.Element, len(matched))
	for i, m := range matched {
		out[i] = m.el
	}
	return out
}
