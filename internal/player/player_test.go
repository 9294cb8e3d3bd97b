package player

import (
	"testing"

	"github.com/JumpLink/NetflixController/internal/dom"
)

const playerFixture = `<html><body>
<div class="watch-video">
  <button class="button-nfplayerPause"></button>
  <button class="button-nfplayerBackTen"></button>
  <button class="button-nfplayerFastForward"></button>
  <button class="button-nfplayerVolume"></button>
  <button class="button-nfplayerFullscreen"></button>
</div>
</body></html>`

func TestTogglePrefersPauseWhilePlaying(t *testing.T) {
	doc := dom.MustParse(playerFixture)
	var clicked []string
	doc.SetDispatcher(func(ev dom.SyntheticEvent) {
		clicked = append(clicked, ev.Target.Attr("class"))
	})
	c := NewDocumentController(doc)

	if !c.Playing() {
		t.Fatalf("Playing() = false with pause control mounted")
	}
	c.TogglePlay()
	if len(clicked) != 1 || clicked[0] != "button-nfplayerPause" {
		t.Fatalf("clicked = %v, want pause control", clicked)
	}
}

func TestToggleFallsBackToPlayControl(t *testing.T) {
	doc := dom.MustParse(`<html><body><button class="button-nfplayerPlay"></button></body></html>`)
	var clicked []string
	doc.SetDispatcher(func(ev dom.SyntheticEvent) {
		clicked = append(clicked, ev.Target.Attr("class"))
	})
	c := NewDocumentController(doc)

	if c.Playing() {
		t.Fatalf("Playing() = true without pause control")
	}
	c.TogglePlay()
	if len(clicked) != 1 || clicked[0] != "button-nfplayerPlay" {
		t.Fatalf("clicked = %v, want play control", clicked)
	}
}

func TestMissingControlsFailSoft(t *testing.T) {
	doc := dom.MustParse(`<html><body><div></div></body></html>`)
	c := NewDocumentController(doc)

	c.JumpBack()
	c.JumpAhead()
	c.Mute()
	c.Fullscreen()
	if c.SkipIntro() {
		t.Fatalf("SkipIntro succeeded without a control")
	}
	if c.NextEpisode() {
		t.Fatalf("NextEpisode succeeded without a control")
	}
	if got := len(doc.Dispatched()); got != 0 {
		t.Fatalf("dispatched %d events on empty document", got)
	}
}

func TestJumpControls(t *testing.T) {
	doc := dom.MustParse(playerFixture)
	c := NewDocumentController(doc)

	c.JumpBack()
	c.JumpAhead()
	got := doc.Dispatched()
	if len(got) != 2 {
		t.Fatalf("dispatched %d events, want 2", len(got))
	}
	if got[0].Target.Attr("class") != "button-nfplayerBackTen" {
		t.Fatalf("first click on %q", got[0].Target.Attr("class"))
	}
}
