package table

import (
	"strings"
	"testing"

	"github.com/JumpLink/NetflixController/internal/testutil"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"#0", "Keyboard Virtual Gamepad", "standard"},
		{"#10", "Pad", "non-standard"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft, AlignLeft})
	if len(got) != 2 {
		t.Fatalf("rows = %d, want 2", len(got))
	}
	want0 := " #0  Keyboard Virtual Gamepad  standard"
	want1 := "#10  Pad                       non-standard"
	if got[0] != want0 {
		t.Fatalf("row 0 = %q, want %q", got[0], want0)
	}
	if got[1] != want1 {
		t.Fatalf("row 1 = %q, want %q", got[1], want1)
	}
}

func TestFormatGoldenRoster(t *testing.T) {
	rows := [][]string{
		{"#0", "Keyboard Virtual Gamepad (standard)", "17b/4a", "standard"},
		{"#1", "Test Pad 1 (Vendor: dead Product: beef)", "10b/2a", "non-standard"},
		{"#2", "Wireless Controller", "17b/4a", "standard"},
	}
	lines := Format(rows, []Alignment{AlignRight, AlignLeft, AlignLeft, AlignLeft})
	testutil.AssertGolden(t, "roster.golden", strings.Join(lines, "\n")+"\n")
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("Format(nil) = %v, want nil", got)
	}
}
