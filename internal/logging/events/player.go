package events

import "github.com/JumpLink/NetflixController/internal/logging"

type PlayerTracer struct{}

var Player = PlayerTracer{}

func (PlayerTracer) Control(op, class string) {
	logging.Trace("player.control", map[string]interface{}{"op": op, "control": class})
}
