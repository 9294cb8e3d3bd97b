// Package pages builds the concrete pages the router serves for the
// fixture document.
package pages

import (
	"fmt"

	"github.com/JumpLink/NetflixController/internal/action"
	"github.com/JumpLink/NetflixController/internal/dom"
	"github.com/JumpLink/NetflixController/internal/gamepad"
	"github.com/JumpLink/NetflixController/internal/nav"
	"github.com/JumpLink/NetflixController/internal/page"
)

// Class names the browse document uses for its focusable sections.
const (
	menuClass      = "navigation-tab"
	billboardClass = "billboard"
	billboardCTA   = "billboard-action"
	rowClass       = "lolomoRow"
)

// browse lays out as [menu, billboard, row 0, row 1, ...]. Rows past the
// initial viewport only exist in the document once scrolling reveals them,
// so they are materialized on demand.
const browseFixedSections = 2

// Deps carries the collaborators every page shares.
type Deps struct {
	Doc      *dom.Document
	Registry *action.Registry
	Delay    nav.Delayer
}

func (d Deps) delay() nav.Delayer {
	if d.Delay != nil {
		return d.Delay
	}
	return nav.TimerDelayer{}
}

// NewBrowse builds the browse page: top menu, billboard, and one slider per
// row currently present in the document, with later rows materialized as
// they appear.
func NewBrowse(deps Deps) *page.Page {
	p := page.New("browse", deps.Registry)
	p.Ready = func() bool {
		return deps.Doc.FirstByClass(rowClass) != nil
	}
	p.OnLoad = func(p *page.Page) {
		menu := nav.NewStatic("menu", func() []*dom.Element {
			return deps.Doc.ByClass(menuClass)
		})
		p.AddNavigatable(menu)

		billboard := nav.NewStatic("billboard", func() []*dom.Element {
			bb := deps.Doc.FirstByClass(billboardClass)
			if bb == nil {
				return nil
			}
			return bb.ByClass(billboardCTA)
		})
		p.AddNavigatable(billboard)

		for i, row := range deps.Doc.ByClass(rowClass) {
			p.AddNavigatable(newRowSlider(deps, p, i, row))
		}
		p.SetNavigatable(browseFixedSections)
	}
	p.Materialize = func(p *page.Page, position int) {
		rowIndex := position - browseFixedSections
		if rowIndex < 0 {
			return
		}
		rows := deps.Doc.ByClass(rowClass)
		if rowIndex >= len(rows) {
			return
		}
		for len(p.Navigatables()) <= position {
			p.AddNavigatable(nil)
		}
		p.ReplaceNil(position, newRowSlider(deps, p, rowIndex, rows[rowIndex]))
	}
	p.Actions = []action.Action{backAction(p)}
	return p
}

func newRowSlider(deps Deps, host nav.PageHost, index int, row *dom.Element) *nav.Slider {
	s := nav.NewSlider(fmt.Sprintf("row-%d", index), row, host)
	s.Delay = deps.delay()
	return s
}

// backAction is the shared B binding returning focus to the menu row.
func backAction(p *page.Page) action.Action {
	return action.Action{
		Label: "Menu",
		Index: gamepad.ButtonB,
		OnPress: func() {
			p.SetNavigatable(0)
		},
	}
}
