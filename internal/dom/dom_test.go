package dom

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const fixture = `<html><body>
<div id="row" class="lolomoRow">
  <div class="slider">
    <div class="slider-item" id="item-0"><a class="slider-refocus">One</a></div>
    <div class="slider-item" id="item-1"><a class="slider-refocus">Two</a></div>
  </div>
  <span class="handleNext" style="transition-duration: 300ms"></span>
</div>
</body></html>`

func TestQueryAndClasses(t *testing.T) {
	doc := MustParse(fixture)
	items := doc.ByClass("slider-item")
	if len(items) != 2 {
		t.Fatalf("expected 2 slider items, got %d", len(items))
	}
	row := doc.ByID("row")
	if row == nil || !row.HasClass("lolomoRow") {
		t.Fatalf("expected row lookup by id")
	}
	row.AddClass("focused")
	if !row.HasClass("focused") {
		t.Fatalf("expected focused class to be added")
	}
	row.AddClass("focused")
	if row.Attr("class") != "lolomoRow focused" {
		t.Fatalf("expected idempotent AddClass, got %q", row.Attr("class"))
	}
	row.RemoveClass("focused")
	if row.HasClass("focused") {
		t.Fatalf("expected focused class to be removed")
	}
}

func TestDetachedElementFailsSoft(t *testing.T) {
	doc := MustParse(fixture)
	item := doc.ByID("item-0")
	if item == nil || !item.Attached() {
		t.Fatalf("expected item to be attached")
	}
	item.Detach()
	if item.Attached() {
		t.Fatalf("expected item to be detached")
	}
	if doc.Contains(item) {
		t.Fatalf("expected Contains to report detachment")
	}
	// All mutations on a stale reference are no-ops, never panics.
	item.AddClass("focused")
	item.DispatchClick()
	item.ScrollIntoView()
	if len(doc.Dispatched()) != 0 {
		t.Fatalf("expected no synthetic events against a detached element, got %v", doc.Dispatched())
	}
}

func TestSyntheticDispatchRecorded(t *testing.T) {
	doc := MustParse(fixture)
	var received []string
	doc.SetDispatcher(func(ev SyntheticEvent) { received = append(received, ev.Type) })
	item := doc.ByID("item-1")
	item.DispatchClick()
	item.DispatchPointerDown()
	item.DispatchKey("Enter")
	if len(received) != 3 || received[0] != "click" || received[1] != "pointerdown" || received[2] != "keydown" {
		t.Fatalf("unexpected dispatch order: %v", received)
	}
	got := doc.Dispatched()
	if len(got) != 3 || got[2].Key != "Enter" {
		t.Fatalf("expected recorded keydown with key, got %v", got)
	}
}

func TestComputedStyleAndTransitionDuration(t *testing.T) {
	doc := MustParse(fixture)
	handle := doc.FirstByClass("handleNext")
	if handle == nil {
		t.Fatalf("expected handle element")
	}
	if got := handle.ComputedStyle("transition-duration"); got != "300ms" {
		t.Fatalf("expected 300ms, got %q", got)
	}
	if got := handle.TransitionDuration(time.Second); got != 300*time.Millisecond {
		t.Fatalf("expected parsed 300ms, got %v", got)
	}
	item := doc.ByID("item-0")
	if got := item.TransitionDuration(700 * time.Millisecond); got != 700*time.Millisecond {
		t.Fatalf("expected fallback, got %v", got)
	}
}

func TestAppendHTMLGrowsTree(t *testing.T) {
	doc := MustParse(fixture)
	row := doc.ByID("row")
	added, err := doc.AppendHTML(row, `<div class="slider-item" id="item-2"><a class="slider-refocus">Three</a></div>`)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if added == nil || added.Attr("id") != "item-2" {
		t.Fatalf("expected appended element back, got %v", added)
	}
	if len(doc.ByClass("slider-item")) != 3 {
		t.Fatalf("expected 3 slider items after append")
	}
	row.Detach()
	if _, err := doc.AppendHTML(row, `<div></div>`); err == nil {
		t.Fatalf("expected append to a detached parent to fail")
	}
}

func TestParseFileFixture(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "billboard.html"))
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	doc, err := Parse(string(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	actions := doc.ByClass("billboard-action")
	if len(actions) != 2 {
		t.Fatalf("billboard actions = %d, want 2", len(actions))
	}
	if got := actions[0].Attr("href"); got != "/watch/80100172" {
		t.Fatalf("href = %q", got)
	}
	next := doc.FirstByClass("handleNext")
	if next == nil {
		t.Fatalf("missing shift control")
	}
	if d := next.TransitionDuration(time.Second); d != 750*time.Millisecond {
		t.Fatalf("transition duration = %v, want 750ms", d)
	}
}
