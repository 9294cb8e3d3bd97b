package state

import "sort"

// DeviceEntry describes one connected controller as shown in the roster.
type DeviceEntry struct {
	ID       string
	Index    int
	Buttons  int
	Axes     int
	Standard bool
}

type RosterStore interface {
	Entries() []DeviceEntry
	Entry(index int) (DeviceEntry, bool)
	Upsert(DeviceEntry)
	Remove(index int)
	Count() int
}

type rosterStore struct {
	entries map[int]DeviceEntry
}

func NewRosterStore() RosterStore {
	return &rosterStore{entries: make(map[int]DeviceEntry)}
}

func (r *rosterStore) Entries() []DeviceEntry {
	out := make([]DeviceEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

func (r *rosterStore) Entry(index int) (DeviceEntry, bool) {
	e, ok := r.entries[index]
	return e, ok
}

func (r *rosterStore) Upsert(e DeviceEntry) {
	r.entries[e.Index] = e
}

func (r *rosterStore) Remove(index int) {
	delete(r.entries, index)
}

func (r *rosterStore) Count() int {
	return len(r.entries)
}
