package hints

import (
	"testing"

	"github.com/JumpLink/NetflixController/internal/action"
	"github.com/JumpLink/NetflixController/internal/gamepad"
)

func TestEntriesUseSelectedGlyphSet(t *testing.T) {
	b := NewBar()
	b.SetHints([]action.Hint{
		{Label: "Select", Index: gamepad.ButtonA},
		{Label: "Back", Index: gamepad.ButtonB},
	})

	got := b.Entries()
	if len(got) != 2 || got[0].Glyph != "Ⓐ" || got[0].Label != "Select" {
		t.Fatalf("xbox entries = %+v", got)
	}

	b.SetGlyphs("ps")
	got = b.Entries()
	if got[0].Glyph != "✕" || got[1].Glyph != "○" {
		t.Fatalf("ps entries = %+v", got)
	}
}

func TestUnknownGlyphSetIsIgnored(t *testing.T) {
	b := NewBar()
	b.SetHints([]action.Hint{{Label: "Select", Index: gamepad.ButtonA}})
	b.SetGlyphs("sega")
	if got := b.Entries(); got[0].Glyph != "Ⓐ" {
		t.Fatalf("glyph = %q, want xbox default", got[0].Glyph)
	}
}

func TestHiddenBarReturnsNothing(t *testing.T) {
	b := NewBar()
	b.SetHints([]action.Hint{{Label: "Select", Index: gamepad.ButtonA}})
	b.SetVisible(false)
	if got := b.Entries(); got != nil {
		t.Fatalf("entries = %+v, want nil while hidden", got)
	}
}

func TestUnmappedIndexFallsBackToName(t *testing.T) {
	b := NewBar()
	b.SetHints([]action.Hint{{Label: "Pause", Index: gamepad.ButtonStart}})
	if got := b.Entries(); got[0].Glyph != "Start" {
		t.Fatalf("glyph = %q, want Start", got[0].Glyph)
	}
}
