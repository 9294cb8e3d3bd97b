package events

import "github.com/JumpLink/NetflixController/internal/logging"

type InputTracer struct{}

var Input = InputTracer{}

func (InputTracer) Connect(id string, index int) {
	logging.Trace("input.connect", map[string]interface{}{"id": id, "index": index})
}

func (InputTracer) Disconnect(id string) {
	logging.Trace("input.disconnect", map[string]interface{}{"id": id})
}

func (InputTracer) ButtonPress(id string, index int, value float64) {
	logging.Trace("input.button.press", map[string]interface{}{"id": id, "index": index, "value": value})
}

func (InputTracer) ButtonRelease(id string, index int) {
	logging.Trace("input.button.release", map[string]interface{}{"id": id, "index": index})
}

func (InputTracer) AxisChange(id string, index int, value float64) {
	logging.Trace("input.axis", map[string]interface{}{"id": id, "index": index, "value": value})
}

func (InputTracer) JoystickMove(id string, indices [2]int, values [2]float64) {
	logging.Trace("input.joystick", map[string]interface{}{
		"id": id,
		"x":  map[string]interface{}{"index": indices[0], "value": values[0]},
		"y":  map[string]interface{}{"index": indices[1], "value": values[1]},
	})
}
