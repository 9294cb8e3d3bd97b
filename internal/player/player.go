// Package player bridges navigation to the video player controls found in
// the document.
package player

import (
	"github.com/JumpLink/NetflixController/internal/dom"
	"github.com/JumpLink/NetflixController/internal/logging/events"
)

// Controller drives playback. The document implementation clicks control
// elements; a different backend can substitute its own.
type Controller interface {
	TogglePlay()
	JumpBack()
	JumpAhead()
	Mute()
	Fullscreen()
	SkipIntro() bool
	NextEpisode() bool
	Playing() bool
}

// Control element classes in the watch document.
const (
	classPlayToggle  = "button-nfplayerPlay"
	classPauseToggle = "button-nfplayerPause"
	classBack        = "button-nfplayerBackTen"
	classAhead       = "button-nfplayerFastForward"
	classMute        = "button-nfplayerVolume"
	classFullscreen  = "button-nfplayerFullscreen"
	classSkipIntro   = "skip-credits"
	classNext        = "button-nfplayerNextEpisode"
)

// DocumentController implements Controller against a parsed document. All
// operations are fail-soft when the control is absent, matching a player
// chrome that mounts and unmounts with user activity.
type DocumentController struct {
	doc *dom.Document
}

// NewDocumentController binds a controller to the document.
func NewDocumentController(doc *dom.Document) *DocumentController {
	return &DocumentController{doc: doc}
}

func (c *DocumentController) click(class, op string) bool {
	el := c.doc.FirstByClass(class)
	if el == nil {
		return false
	}
	el.DispatchClick()
	events.Player.Control(op, class)
	return true
}

// Playing reports whether the pause control is mounted, which is only the
// case while playback runs.
func (c *DocumentController) Playing() bool {
	return c.doc.FirstByClass(classPauseToggle) != nil
}

// TogglePlay clicks whichever of the play/pause controls is mounted.
func (c *DocumentController) TogglePlay() {
	if !c.click(classPauseToggle, "player.pause") {
		c.click(classPlayToggle, "player.play")
	}
}

// JumpBack seeks backwards by the player's fixed step.
func (c *DocumentController) JumpBack() { c.click(classBack, "player.back") }

// JumpAhead seeks forwards by the player's fixed step.
func (c *DocumentController) JumpAhead() { c.click(classAhead, "player.ahead") }

// Mute toggles the volume control.
func (c *DocumentController) Mute() { c.click(classMute, "player.mute") }

// Fullscreen toggles fullscreen.
func (c *DocumentController) Fullscreen() { c.click(classFullscreen, "player.fullscreen") }

// SkipIntro clicks the skip control when present.
func (c *DocumentController) SkipIntro() bool {
	return c.click(classSkipIntro, "player.skip")
}

// NextEpisode advances to the next episode when the control is present.
func (c *DocumentController) NextEpisode() bool {
	return c.click(classNext, "player.next")
}

var _ Controller = (*DocumentController)(nil)
