package dom

import (
	"fmt"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// SyntheticEvent is a pointer/keyboard event dispatched into the document on
// behalf of the controller.
type SyntheticEvent struct {
	Type   string
	Target *Element
	Key    string
}

// DispatchFunc receives synthetic events. The host installs one to translate
// events into real page behaviour; tests read the recorded log instead.
type DispatchFunc func(SyntheticEvent)

// Document wraps an externally-owned HTML tree. The tree mutates underneath
// the controller at any time, so element references handed out by queries
// may go stale; every mutating operation re-validates liveness first.
type Document struct {
	root       *html.Node
	dispatch   DispatchFunc
	dispatched []SyntheticEvent
}

// Parse builds a document from serialized HTML.
func Parse(src string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// MustParse is Parse for fixtures known to be well-formed.
func MustParse(src string) *Document {
	d, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return d
}

// SetDispatcher installs the synthetic-event handler.
func (d *Document) SetDispatcher(fn DispatchFunc) { d.dispatch = fn }

// Dispatched returns the synthetic events recorded so far.
func (d *Document) Dispatched() []SyntheticEvent { return d.dispatched }

// Query returns the first element matching an XPath expression, or nil when
// nothing matches or the expression fails. Absent matches are an expected
// state of the external tree, not an error.
func (d *Document) Query(expr string) *Element {
	node, err := htmlquery.Query(d.root, expr)
	if err != nil || node == nil {
		return nil
	}
	return &Element{doc: d, node: node}
}

// QueryAll returns every element matching an XPath expression, in document
// order.
func (d *Document) QueryAll(expr string) []*Element {
	nodes, err := htmlquery.QueryAll(d.root, expr)
	if err != nil {
		return nil
	}
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &Element{doc: d, node: n})
	}
	return out
}

// ByClass returns every element carrying the given class.
func (d *Document) ByClass(class string) []*Element {
	return d.QueryAll(classExpr(class))
}

// FirstByClass returns the first element carrying the given class.
func (d *Document) FirstByClass(class string) *Element {
	return d.Query(classExpr(class))
}

// ByID returns the element with the given id attribute.
func (d *Document) ByID(id string) *Element {
	return d.Query(fmt.Sprintf("//*[@id=%q]", id))
}

// Contains reports whether an element is still attached to this document.
func (d *Document) Contains(e *Element) bool {
	if e == nil || e.node == nil {
		return false
	}
	for n := e.node; n != nil; n = n.Parent {
		if n == d.root {
			return true
		}
	}
	return false
}

// AppendHTML parses a fragment and appends it under parent, returning the
// first appended element. The simulator uses this to grow the fixture tree
// underneath live navigation.
func (d *Document) AppendHTML(parent *Element, fragment string) (*Element, error) {
	if !d.Contains(parent) {
		return nil, fmt.Errorf("append target is detached")
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), parent.node)
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	var first *Element
	for _, n := range nodes {
		parent.node.AppendChild(n)
		if first == nil && n.Type == html.ElementNode {
			first = &Element{doc: d, node: n}
		}
	}
	return first, nil
}

func (d *Document) record(ev SyntheticEvent) {
	d.dispatched = append(d.dispatched, ev)
	if d.dispatch != nil {
		d.dispatch(ev)
	}
}

func classExpr(class string) string {
	return fmt.Sprintf("//*[contains(concat(' ', normalize-space(@class), ' '), ' %s ')]", class)
}
