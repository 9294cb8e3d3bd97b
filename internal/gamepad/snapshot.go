package gamepad

// ButtonState is the per-frame reading of one button.
type ButtonState struct {
	Pressed bool
	Value   float64 // 0..1, analog triggers report intermediate values
}

// Snapshot is a per-frame read of one controller. Hosts hand the engine a
// fresh value every poll; the Timestamp field increases monotonically
// whenever the underlying device state changed.
type Snapshot struct {
	ID        string
	Index     int
	Connected bool
	Timestamp float64
	Buttons   []ButtonState
	Axes      []float64 // -1..1
}

// Source is the host accessor for the current device list. The engine
// re-reads it every poll because some hosts only refresh control values when
// the list is fetched. A transiently empty list is valid.
type Source interface {
	Devices() []Snapshot
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() []Snapshot

func (f SourceFunc) Devices() []Snapshot { return f() }

func cloneSnapshot(s Snapshot) Snapshot {
	dup := s
	dup.Buttons = append([]ButtonState(nil), s.Buttons...)
	dup.Axes = append([]float64(nil), s.Axes...)
	return dup
}
