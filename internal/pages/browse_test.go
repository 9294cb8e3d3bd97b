package pages

import (
	"testing"

	"github.com/JumpLink/NetflixController/internal/action"
	"github.com/JumpLink/NetflixController/internal/dom"
	"github.com/JumpLink/NetflixController/internal/gamepad"
	"github.com/JumpLink/NetflixController/internal/nav"
	"github.com/JumpLink/NetflixController/internal/page"
)

const browseFixture = `<html><body>
<div id="lolomo">
  <div class="navigation-tab">Home</div>
  <div class="navigation-tab">Series</div>
  <div class="navigation-tab">Films</div>
  <div class="billboard">
    <button class="billboard-action">Play</button>
    <button class="billboard-action">More Info</button>
  </div>
  <div class="lolomoRow" id="row0">
    <div class="slider-item" id="r0-a"></div>
    <div class="slider-item" id="r0-b"></div>
    <button class="handleNext"></button>
  </div>
</div>
</body></html>`

func newBrowseDeps(t *testing.T, src string) (Deps, *dom.Document) {
	t.Helper()
	doc := dom.MustParse(src)
	return Deps{
		Doc:      doc,
		Registry: action.NewRegistry(nil, nil),
		Delay:    nav.ImmediateDelayer{},
	}, doc
}

func TestBrowseLoadsWithFocusOnFirstRow(t *testing.T) {
	deps, _ := newBrowseDeps(t, browseFixture)
	p := NewBrowse(deps)
	p.Load()

	if p.State() != page.Loaded {
		t.Fatalf("state = %v, want Loaded", p.State())
	}
	// Menu, billboard, one row.
	if got := len(p.Navigatables()); got != 3 {
		t.Fatalf("navigatables = %d, want 3", got)
	}
	if p.Position() != browseFixedSections {
		t.Fatalf("position = %d, want %d", p.Position(), browseFixedSections)
	}
	slider, ok := p.Current().(*nav.Slider)
	if !ok {
		t.Fatalf("current = %T, want *nav.Slider", p.Current())
	}
	if slider.Current().Attr("id") != "r0-a" {
		t.Fatalf("focused item = %q, want r0-a", slider.Current().Attr("id"))
	}
}

func TestBrowseDownPastLastRowIsNoOpUntilRowAppears(t *testing.T) {
	deps, doc := newBrowseDeps(t, browseFixture)
	p := NewBrowse(deps)
	p.Load()

	p.OnDirectionAction(gamepad.DirectionDown)
	if p.Position() != browseFixedSections {
		t.Fatalf("position = %d after down with no further rows", p.Position())
	}

	// Scrolling reveals another row; now the same press materializes it.
	container := doc.ByID("lolomo")
	if _, err := doc.AppendHTML(container, `<div class="lolomoRow" id="row1"><div class="slider-item" id="r1-a"></div></div>`); err != nil {
		t.Fatalf("AppendHTML: %v", err)
	}
	p.OnDirectionAction(gamepad.DirectionDown)
	if p.Position() != browseFixedSections+1 {
		t.Fatalf("position = %d, want %d", p.Position(), browseFixedSections+1)
	}
	slider := p.Current().(*nav.Slider)
	if slider.Current().Attr("id") != "r1-a" {
		t.Fatalf("focused item = %q, want r1-a", slider.Current().Attr("id"))
	}
}

func TestBrowseUpReachesMenu(t *testing.T) {
	deps, _ := newBrowseDeps(t, browseFixture)
	p := NewBrowse(deps)
	p.Load()

	p.OnDirectionAction(gamepad.DirectionUp)
	if p.Position() != 1 {
		t.Fatalf("position = %d, want billboard", p.Position())
	}
	p.OnDirectionAction(gamepad.DirectionUp)
	if p.Position() != 0 {
		t.Fatalf("position = %d, want menu", p.Position())
	}
	p.OnDirectionAction(gamepad.DirectionUp)
	if p.Position() != 0 {
		t.Fatalf("position moved past the menu")
	}
}

func TestBrowseBackActionReturnsToMenu(t *testing.T) {
	deps, _ := newBrowseDeps(t, browseFixture)
	p := NewBrowse(deps)
	p.Load()

	deps.Registry.OnButtonPress(gamepad.ButtonB)
	if p.Position() != 0 {
		t.Fatalf("position = %d after back, want 0", p.Position())
	}
}
