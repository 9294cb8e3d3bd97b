// Package hints renders the contextual button hint bar.
package hints

import (
	"sync"

	"github.com/JumpLink/NetflixController/internal/action"
	"github.com/JumpLink/NetflixController/internal/gamepad"
)

// Glyph sets keyed by button index. Indices without a glyph fall back to
// the button name.
var glyphSets = map[string]map[int]string{
	"xbox": {
		gamepad.ButtonA:  "Ⓐ",
		gamepad.ButtonB:  "Ⓑ",
		gamepad.ButtonX:  "Ⓧ",
		gamepad.ButtonY:  "Ⓨ",
		gamepad.ButtonLB: "LB",
		gamepad.ButtonRB: "RB",
		gamepad.ButtonLT: "LT",
		gamepad.ButtonRT: "RT",
	},
	"ps": {
		gamepad.ButtonA:  "✕",
		gamepad.ButtonB:  "○",
		gamepad.ButtonX:  "□",
		gamepad.ButtonY:  "△",
		gamepad.ButtonLB: "L1",
		gamepad.ButtonRB: "R1",
		gamepad.ButtonLT: "L2",
		gamepad.ButtonRT: "R2",
	},
}

var buttonNames = map[int]string{
	gamepad.ButtonSelect:    "Select",
	gamepad.ButtonStart:     "Start",
	gamepad.ButtonDPadUp:    "Up",
	gamepad.ButtonDPadDown:  "Down",
	gamepad.ButtonDPadLeft:  "Left",
	gamepad.ButtonDPadRight: "Right",
}

// Entry is one rendered hint: a button glyph and its label.
type Entry struct {
	Glyph string
	Label string
}

// Bar holds the current hint set and renders it with a configurable glyph
// set. It implements action.HintSink.
type Bar struct {
	mu      sync.RWMutex
	hints   []action.Hint
	glyphs  string
	visible bool
}

// NewBar builds a visible bar using the xbox glyph set.
func NewBar() *Bar {
	return &Bar{glyphs: "xbox", visible: true}
}

// SetHints replaces the displayed set. Ordering is the caller's.
func (b *Bar) SetHints(hints []action.Hint) {
	b.mu.Lock()
	b.hints = hints
	b.mu.Unlock()
}

// SetGlyphs selects the glyph set. Unknown names keep the current set.
func (b *Bar) SetGlyphs(name string) {
	if _, ok := glyphSets[name]; !ok {
		return
	}
	b.mu.Lock()
	b.glyphs = name
	b.mu.Unlock()
}

// SetVisible toggles whether Entries returns anything.
func (b *Bar) SetVisible(v bool) {
	b.mu.Lock()
	b.visible = v
	b.mu.Unlock()
}

// Entries returns the renderable hint entries, or nil when hidden.
func (b *Bar) Entries() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.visible {
		return nil
	}
	set := glyphSets[b.glyphs]
	out := make([]Entry, 0, len(b.hints))
	for _, h := range b.hints {
		out = append(out, Entry{Glyph: glyphFor(set, h.Index), Label: h.Label})
	}
	return out
}

func glyphFor(set map[int]string, index int) string {
	if g, ok := set[index]; ok {
		return g
	}
	if name, ok := buttonNames[index]; ok {
		return name
	}
	return "?"
}

var _ action.HintSink = (*Bar)(nil)
