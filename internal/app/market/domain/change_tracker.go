package domain

// ChangeTracker records which scalar fields of an aggregate have been
// modified since load, so repositories can build UPDATE mutations that
// touch only the dirty columns. Child collections track their own deltas
// through the watched collection instead.
type ChangeTracker struct {
	dirtyFields map[string]bool
}

// NewChangeTracker creates a clean ChangeTracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{
		dirtyFields: make(map[string]bool),
	}
}

// MarkDirty marks a field as modified.
func (ct *ChangeTracker) MarkDirty(field string) {
	ct.dirtyFields[field] = true
}

// Dirty checks if a field has been modified.
func (ct *ChangeTracker) Dirty(field string) bool {
	return ct.dirtyFields[field]
}

// Clear resets all dirty markers.
func (ct *ChangeTracker) Clear() {
	ct.dirtyFields = make(map[string]bool)
}

// HasChanges returns true if any field has been modified.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirtyFields) > 0
}
