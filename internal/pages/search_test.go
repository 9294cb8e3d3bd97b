package pages

import (
	"testing"

	"github.com/JumpLink/NetflixController/internal/action"
	"github.com/JumpLink/NetflixController/internal/dom"
	"github.com/JumpLink/NetflixController/internal/page"
)

const searchFixture = `<html><body>
<div class="search-gallery">
  <div class="search-title-card" id="c0">Stranger Things</div>
  <div class="search-title-card" id="c1">The Crown</div>
  <div class="search-title-card" id="c2">Strange New Worlds</div>
  <div class="search-title-card" id="c3">Dark</div>
</div>
</body></html>`

func TestRankDropsNonMatchesAndKeepsOrder(t *testing.T) {
	doc := dom.MustParse(searchFixture)
	cards := doc.ByClass("search-title-card")

	got := Rank("strange", cards)
	if len(got) != 2 {
		t.Fatalf("matched %d cards, want 2", len(got))
	}
	ids := []string{got[0].Attr("id"), got[1].Attr("id")}
	if ids[0] != "c0" && ids[0] != "c2" {
		t.Fatalf("unexpected match %v", ids)
	}

	if got := Rank("zzzz", cards); len(got) != 0 {
		t.Fatalf("matched %d cards for nonsense query", len(got))
	}
}

func TestSetQueryReranksTheGrid(t *testing.T) {
	doc := dom.MustParse(searchFixture)
	deps := Deps{Doc: doc, Registry: action.NewRegistry(nil, nil)}
	state := NewSearchState(doc)
	p := NewSearch(deps, state)
	p.Load()

	if p.State() != page.Loaded {
		t.Fatalf("state = %v, want Loaded", p.State())
	}
	state.SetQuery("dark")
	current := state.grid.Current()
	if current == nil || current.Attr("id") != "c3" {
		t.Fatalf("focused card = %v, want c3", current)
	}

	// Clearing the query restores the full gallery.
	state.SetQuery("")
	if got := len(state.grid.Components()); got != 4 {
		t.Fatalf("components = %d, want 4", got)
	}
}

func TestRouterPriorities(t *testing.T) {
	doc := dom.MustParse(browseFixture)
	deps := Deps{Doc: doc, Registry: action.NewRegistry(nil, nil)}
	r, search := NewRouter(deps)
	if search == nil {
		t.Fatalf("router did not expose search state")
	}

	p := r.Navigate("/browse")
	if p == nil || p.Name != "browse" {
		t.Fatalf("resolved %+v for /browse", p)
	}
	if got := r.Resolve("/watch/80100172"); got == nil || got.Name != "watch" {
		t.Fatalf("resolved %+v for watch location", got)
	}
	if got := r.Resolve("/account"); got != nil {
		t.Fatalf("unexpected page %q for unmatched location", got.Name)
	}
}
