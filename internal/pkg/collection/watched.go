// Package collection provides child-collection tracking for aggregates.
//
// A Watched collection remembers the membership it was loaded with and
// computes add/remove deltas against the current membership, so that
// repositories can issue minimal writes instead of replacing the whole
// child set on every save.
package collection

// Equaler is the identity-comparison capability an item type must expose.
// Comparison is by domain identity fields, never by reference.
type Equaler[T any] interface {
	EqualTo(other T) bool
}

// Watched tracks the membership of a child collection and the net
// additions and removals since construction.
//
// A Watched instance is owned by a single aggregate for the duration of
// one request. It is not safe for concurrent mutation.
type Watched[T Equaler[T]] struct {
	initial []T
	current []T
	added   []T
	removed []T
}

// NewWatched creates a Watched collection seeded with the snapshot the
// aggregate was loaded with. Both delta lists start empty.
func NewWatched[T Equaler[T]](initial []T) *Watched[T] {
	w := &Watched[T]{
		initial: make([]T, len(initial)),
		current: make([]T, len(initial)),
	}
	copy(w.initial, initial)
	copy(w.current, initial)
	return w
}

// Items returns the current membership in insertion order.
func (w *Watched[T]) Items() []T {
	items := make([]T, len(w.current))
	copy(items, w.current)
	return items
}

// Add appends an item to the current membership. If the item was not part
// of the initial snapshot it is recorded as newly added. Adding the same
// logical item twice is a no-op on the delta lists.
func (w *Watched[T]) Add(item T) {
	if contains(w.current, item) {
		return
	}
	w.current = append(w.current, item)

	if contains(w.initial, item) {
		// Restoring a previously removed snapshot item: net state is
		// unchanged, so it must not stay in the removed delta.
		w.removed = drop(w.removed, item)
		return
	}
	if !contains(w.added, item) {
		w.added = append(w.added, item)
	}
}

// Remove drops an item from the current membership by identity. Items
// that were part of the initial snapshot are recorded as removed; items
// that were only added within this session are dropped from the added
// list instead, so the net delta is empty. Removing an absent item is a
// silent no-op.
func (w *Watched[T]) Remove(item T) {
	if !contains(w.current, item) {
		return
	}
	w.current = drop(w.current, item)

	if contains(w.initial, item) {
		if !contains(w.removed, item) {
			w.removed = append(w.removed, item)
		}
		return
	}
	w.added = drop(w.added, item)
}

// Update replaces the full desired membership in one call: every current
// item absent from target is removed, every target item absent from the
// current membership is added. Add and Remove are idempotent per item, so
// the order of the two passes does not affect the final delta sets. The
// resulting membership follows the order of target.
func (w *Watched[T]) Update(target []T) {
	for _, item := range w.Items() {
		if !contains(target, item) {
			w.Remove(item)
		}
	}
	for _, item := range target {
		if !contains(w.current, item) {
			w.Add(item)
		}
	}

	ordered := make([]T, 0, len(w.current))
	for _, item := range target {
		if contains(w.current, item) && !contains(ordered, item) {
			ordered = append(ordered, item)
		}
	}
	w.current = ordered
}

// Added returns the items whose net state changed to present since
// construction. An item added then removed in the same session appears
// in neither delta list.
func (w *Watched[T]) Added() []T {
	items := make([]T, len(w.added))
	copy(items, w.added)
	return items
}

// Removed returns the initial items whose net state changed to absent
// since construction.
func (w *Watched[T]) Removed() []T {
	items := make([]T, len(w.removed))
	copy(items, w.removed)
	return items
}

// HasChanges returns true if any net addition or removal is pending.
func (w *Watched[T]) HasChanges() bool {
	return len(w.added) > 0 || len(w.removed) > 0
}

func contains[T Equaler[T]](items []T, item T) bool {
	for _, candidate := range items {
		if candidate.EqualTo(item) {
			return true
		}
	}
	return false
}

func drop[T Equaler[T]](items []T, item T) []T {
	result := items[:0]
	for _, candidate := range items {
		if !candidate.EqualTo(item) {
			result = append(result, candidate)
		}
	}
	return result
}
