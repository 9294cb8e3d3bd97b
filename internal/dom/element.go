package dom

import (
	"strings"
	"time"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// Element is a live reference into the document tree. References may become
// stale whenever the external tree mutates; callers re-validate through
// Attached before relying on one.
type Element struct {
	doc  *Document
	node *html.Node
}

// Attached reports whether the element is still part of its document.
func (e *Element) Attached() bool {
	if e == nil {
		return false
	}
	return e.doc.Contains(e)
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	if e == nil || e.node == nil {
		return ""
	}
	return e.node.Data
}

// Attr returns an attribute value.
func (e *Element) Attr(name string) string {
	if e == nil || e.node == nil {
		return ""
	}
	return htmlquery.SelectAttr(e.node, name)
}

// SetAttr sets or replaces an attribute. No-op on detached elements.
func (e *Element) SetAttr(name, value string) {
	if !e.Attached() {
		return
	}
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// Text returns the element's concatenated text content.
func (e *Element) Text() string {
	if e == nil || e.node == nil {
		return ""
	}
	return strings.TrimSpace(htmlquery.InnerText(e.node))
}

// HasClass reports whether the class list contains name.
func (e *Element) HasClass(name string) bool {
	for _, c := range strings.Fields(e.Attr("class")) {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass appends a class if absent. No-op on detached elements.
func (e *Element) AddClass(name string) {
	if !e.Attached() || e.HasClass(name) {
		return
	}
	classes := e.Attr("class")
	if classes == "" {
		e.SetAttr("class", name)
		return
	}
	e.SetAttr("class", classes+" "+name)
}

// RemoveClass strips a class if present. No-op on detached elements.
func (e *Element) RemoveClass(name string) {
	if !e.Attached() || !e.HasClass(name) {
		return
	}
	fields := strings.Fields(e.Attr("class"))
	kept := fields[:0]
	for _, c := range fields {
		if c != name {
			kept = append(kept, c)
		}
	}
	e.SetAttr("class", strings.Join(kept, " "))
}

// Query returns the first descendant matching a relative XPath expression.
func (e *Element) Query(expr string) *Element {
	if e == nil || e.node == nil {
		return nil
	}
	node, err := htmlquery.Query(e.node, expr)
	if err != nil || node == nil {
		return nil
	}
	return &Element{doc: e.doc, node: node}
}

// QueryAll returns every descendant matching a relative XPath expression.
func (e *Element) QueryAll(expr string) []*Element {
	if e == nil || e.node == nil {
		return nil
	}
	nodes, err := htmlquery.QueryAll(e.node, expr)
	if err != nil {
		return nil
	}
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &Element{doc: e.doc, node: n})
	}
	return out
}

// ByClass returns every descendant carrying the given class.
func (e *Element) ByClass(class string) []*Element {
	return e.QueryAll(".//*[contains(concat(' ', normalize-space(@class), ' '), ' " + class + " ')]")
}

// FirstByClass returns the first descendant carrying the given class.
func (e *Element) FirstByClass(class string) *Element {
	if e == nil || e.node == nil {
		return nil
	}
	return e.Query(".//*[contains(concat(' ', normalize-space(@class), ' '), ' " + class + " ')]")
}

// Detach removes the element from its parent. Used by the simulator to
// mutate the fixture underneath live navigation.
func (e *Element) Detach() {
	if !e.Attached() || e.node.Parent == nil {
		return
	}
	e.node.Parent.RemoveChild(e.node)
}

// Same reports whether two references point at the same underlying node.
func (e *Element) Same(other *Element) bool {
	return e != nil && other != nil && e.node == other.node
}

// ComputedStyle reads a property from the inline style attribute. The
// fixture document carries the styles the real page would compute.
func (e *Element) ComputedStyle(prop string) string {
	style := e.Attr("style")
	for _, decl := range strings.Split(style, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.TrimSpace(parts[0]) == prop {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}

// TransitionDuration parses the element's transition-duration, falling back
// to the given default when the property is missing or malformed.
func (e *Element) TransitionDuration(fallback time.Duration) time.Duration {
	raw := e.ComputedStyle("transition-duration")
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d >= 0 {
		return d
	}
	return fallback
}

// DispatchClick sends a synthetic click. Stale targets fail soft.
func (e *Element) DispatchClick() {
	if !e.Attached() {
		return
	}
	e.doc.record(SyntheticEvent{Type: "click", Target: e})
}

// DispatchPointerDown sends a synthetic pointerdown for secondary actions.
func (e *Element) DispatchPointerDown() {
	if !e.Attached() {
		return
	}
	e.doc.record(SyntheticEvent{Type: "pointerdown", Target: e})
}

// DispatchKey sends a synthetic keydown carrying a key code, for custom
// widgets that ignore pointer events.
func (e *Element) DispatchKey(key string) {
	if !e.Attached() {
		return
	}
	e.doc.record(SyntheticEvent{Type: "keydown", Target: e, Key: key})
}

// ScrollIntoView asks the host to bring the element on screen.
func (e *Element) ScrollIntoView() {
	if !e.Attached() {
		return
	}
	e.doc.record(SyntheticEvent{Type: "scrollintoview", Target: e})
}
