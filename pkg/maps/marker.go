package maps

// MarkerID is the opaque handle issued for a tracked marker. Handles are
// allocated from a per-controller monotonic counter and are never reused.
type MarkerID int64

// markerTable maps handles to the marker options they were created with.
// Every tracked handle corresponds to a marker attached either directly to
// the map or to the active cluster adapter, never both, never neither.
//
// The table is not self-synchronizing; the owning controller's mutex guards
// all access.
type markerTable struct {
	next    int64
	markers map[MarkerID]MarkerOptions
}

func newMarkerTable() *markerTable {
	return &markerTable{markers: make(map[MarkerID]MarkerOptions)}
}

// issue allocates a fresh handle without recording it. The caller records
// with put once the marker is attached natively, so a failed attach never
// leaves a tracked handle behind.
func (t *markerTable) issue() MarkerID {
	t.next++
	return MarkerID(t.next)
}

// put records the marker under a previously issued handle.
func (t *markerTable) put(id MarkerID, opts MarkerOptions) {
	t.markers[id] = opts
}

func (t *markerTable) has(id MarkerID) bool {
	_, ok := t.markers[id]
	return ok
}

// remove deletes the entry, reporting whether it was present.
func (t *markerTable) remove(id MarkerID) bool {
	if _, ok := t.markers[id]; !ok {
		return false
	}
	delete(t.markers, id)
	return true
}

func (t *markerTable) ids() []MarkerID {
	ids := make([]MarkerID, 0, len(t.markers))
	for id := range t.markers {
		ids = append(ids, id)
	}
	return ids
}

func (t *markerTable) len() int {
	return len(t.markers)
}

// payloads rebuilds the channel payloads for every tracked marker, used
// when moving the whole set between attachment surfaces.
func (t *markerTable) payloads() ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(t.markers))
	for id, opts := range t.markers {
		p, err := opts.payload(id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
