package events

import "github.com/JumpLink/NetflixController/internal/logging"

type ActionTracer struct{}

var Action = ActionTracer{}

func (ActionTracer) Add(index int, label string) {
	logging.Trace("action.add", map[string]interface{}{"index": index, "label": label})
}

func (ActionTracer) Remove(index int) {
	logging.Trace("action.remove", map[string]interface{}{"index": index})
}

func (ActionTracer) Press(index int, label string) {
	logging.Trace("action.press", map[string]interface{}{"index": index, "label": label})
}

func (ActionTracer) Release(index int, label string) {
	logging.Trace("action.release", map[string]interface{}{"index": index, "label": label})
}

func (ActionTracer) Recovered(index int, label string, value interface{}) {
	logging.Trace("action.recovered", map[string]interface{}{"index": index, "label": label, "panic": value})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}
