package pages

import (
	"github.com/JumpLink/NetflixController/internal/action"
	"github.com/JumpLink/NetflixController/internal/dom"
	"github.com/JumpLink/NetflixController/internal/gamepad"
	"github.com/JumpLink/NetflixController/internal/nav"
	"github.com/JumpLink/NetflixController/internal/page"
	"github.com/JumpLink/NetflixController/internal/player"
)

const (
	watchClass         = "watch-video"
	watchControlsClass = "PlayerControlsNeo__button-control-row"
)

// NewWatch builds the watch page. Playback is driven by dedicated button
// bindings; the d-pad walks the on-screen control row.
func NewWatch(deps Deps) *page.Page {
	ctrl := player.NewDocumentController(deps.Doc)
	p := page.New("watch", deps.Registry)
	p.Ready = func() bool {
		return deps.Doc.FirstByClass(watchClass) != nil
	}
	p.OnLoad = func(p *page.Page) {
		controls := nav.NewStatic("controls", func() []*dom.Element {
			row := deps.Doc.FirstByClass(watchControlsClass)
			if row == nil {
				return nil
			}
			return row.QueryAll(".//button")
		})
		p.AddNavigatable(controls)
		p.SetNavigatable(0)
	}
	p.Actions = watchActions(ctrl)
	return p
}

func watchActions(ctrl player.Controller) []action.Action {
	return []action.Action{
		{Label: "Play/Pause", Index: gamepad.ButtonX, OnPress: ctrl.TogglePlay},
		{Label: "Back 10s", Index: gamepad.ButtonLB, OnPress: ctrl.JumpBack},
		{Label: "Ahead 10s", Index: gamepad.ButtonRB, OnPress: ctrl.JumpAhead},
		{Label: "Mute", Index: gamepad.ButtonY, OnPress: ctrl.Mute},
		{Label: "Fullscreen", Index: gamepad.ButtonSelect, OnPress: ctrl.Fullscreen},
		{Label: "Skip intro", Index: gamepad.ButtonLT, OnPress: func() { ctrl.SkipIntro() }},
		{Label: "Next episode", Index: gamepad.ButtonRT, OnPress: func() { ctrl.NextEpisode() }},
	}
}
