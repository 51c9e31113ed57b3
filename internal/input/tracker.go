package input

// DirtyTracker is the invalidation collaborator. The core only ever escalates
// to a whole-surface invalidation; partial regions are never requested.
type DirtyTracker interface {
	MarkFull()
}

// FullTracker is a minimal DirtyTracker recording whether a full repaint has
// been requested since the last Take.
type FullTracker struct {
	dirty bool
}

// MarkFull implements DirtyTracker.
func (t *FullTracker) MarkFull() { t.dirty = true }

// Dirty reports whether a full repaint is pending.
func (t *FullTracker) Dirty() bool { return t.dirty }

// Take returns the pending flag and clears it.
func (t *FullTracker) Take() bool {
	d := t.dirty
	t.dirty = false
	return d
}
