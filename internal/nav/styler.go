package nav

import "github.com/JumpLink/NetflixController/internal/dom"

// Styler emulates the :focus pseudo-class on elements of a document that
// never expected keyboard-style focus.
type Styler interface {
	Apply(*dom.Element)
	Clear(*dom.Element)
}

// ClassStyler toggles a focus class and optionally scrolls the element into
// view when applied.
type ClassStyler struct {
	Class  string
	Scroll bool
}

// DefaultStyler is the styling the owning page injects unless a navigatable
// needs something special.
var DefaultStyler = ClassStyler{Class: "controller-focus", Scroll: true}

func (s ClassStyler) Apply(el *dom.Element) {
	if el == nil {
		return
	}
	el.AddClass(s.Class)
	if s.Scroll {
		el.ScrollIntoView()
	}
}

func (s ClassStyler) Clear(el *dom.Element) {
	if el == nil {
		return
	}
	el.RemoveClass(s.Class)
}
