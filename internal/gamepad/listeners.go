package gamepad

import "fmt"

// ErrJoystickIndices marks a joystick registration without exactly one X and
// one Y axis index.
var ErrJoystickIndices = fmt.Errorf("joystick listeners require a 2-length index pair")

// ErrIndexCount marks a non-joystick registration with more than one index.
var ErrIndexCount = fmt.Errorf("listeners accept at most one index")

type joystickListener struct {
	indices [2]int
	fn      Listener
}

// listenerSet holds ordered listener buckets. Index-specific listeners run
// before wildcard listeners for the same event type; insertion order is
// preserved within each bucket.
type listenerSet struct {
	byIndex   map[EventType]map[int][]Listener
	wildcards map[EventType][]Listener
	joysticks []joystickListener
}

func newListenerSet() *listenerSet {
	return &listenerSet{
		byIndex:   make(map[EventType]map[int][]Listener),
		wildcards: make(map[EventType][]Listener),
	}
}

func (s *listenerSet) add(t EventType, indices []int, fn Listener) error {
	if t == EventJoystickMove {
		if len(indices) != 2 {
			return fmt.Errorf("%w (got %d indices)", ErrJoystickIndices, len(indices))
		}
		s.joysticks = append(s.joysticks, joystickListener{indices: [2]int{indices[0], indices[1]}, fn: fn})
		return nil
	}
	if len(indices) > 1 {
		return fmt.Errorf("%w (got %d)", ErrIndexCount, len(indices))
	}
	index := IndexAny
	if len(indices) == 1 {
		index = indices[0]
	}
	if index == IndexAny {
		s.wildcards[t] = append(s.wildcards[t], fn)
		return nil
	}
	bucket, ok := s.byIndex[t]
	if !ok {
		bucket = make(map[int][]Listener)
		s.byIndex[t] = bucket
	}
	bucket[index] = append(bucket[index], fn)
	return nil
}

// pairs returns the distinct registered joystick axis pairs in registration
// order.
func (s *listenerSet) pairs() [][2]int {
	var out [][2]int
	seen := make(map[[2]int]struct{})
	for _, jl := range s.joysticks {
		if _, ok := seen[jl.indices]; ok {
			continue
		}
		seen[jl.indices] = struct{}{}
		out = append(out, jl.indices)
	}
	return out
}

func (s *listenerSet) dispatch(e *Event) {
	if e.Type == EventJoystickMove {
		for _, jl := range s.joysticks {
			if e.consumed {
				return
			}
			if jl.indices == e.Indices {
				jl.fn(e)
			}
		}
		return
	}
	if bucket, ok := s.byIndex[e.Type]; ok {
		for _, fn := range bucket[e.Index] {
			if e.consumed {
				return
			}
			fn(e)
		}
	}
	for _, fn := range s.wildcards[e.Type] {
		if e.consumed {
			return
		}
		fn(e)
	}
}
