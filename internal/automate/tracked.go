package automate

import "github.com/osse101/AutomateGardenPot_Go/internal/domain"

// TrackedStack is an item stack whose consumption is reported back to its owner
type TrackedStack interface {
	// Sample is a read-only view of the stacked item
	Sample() domain.Item
	Count() int
	// Reduce removes n items; reducing to zero settles the stack
	Reduce(n int)
	// Unwrap returns the live item instance so callers can mutate tools in place
	Unwrap() domain.Item
}

// Output is a proposed machine output with an explicit outcome. Commit applies
// the machine-side effects of taking the output; Discard abandons it. Only the
// first of the two has any effect.
type Output interface {
	TrackedStack
	Commit()
	Discard()
	Settled() bool
}

// TrackedItem wraps an item with an optional commit callback
type TrackedItem struct {
	item     domain.Item
	onCommit func(item domain.Item)
	settled  bool
}

// NewTrackedItem wraps item; onCommit may be nil
func NewTrackedItem(item domain.Item, onCommit func(item domain.Item)) *TrackedItem {
	return &TrackedItem{item: item, onCommit: onCommit}
}

// Sample implements TrackedStack
func (t *TrackedItem) Sample() domain.Item { return t.item }

// Count implements TrackedStack
func (t *TrackedItem) Count() int {
	if t.item == nil {
		return 0
	}
	return t.item.Stack()
}

// Unwrap implements TrackedStack
func (t *TrackedItem) Unwrap() domain.Item { return t.item }

// Reduce implements TrackedStack
func (t *TrackedItem) Reduce(n int) {
	if t.item == nil || n <= 0 {
		return
	}
	t.item.SetStack(t.item.Stack() - n)
	if t.item.Stack() <= 0 {
		t.Commit()
	}
}

// Commit implements Output
func (t *TrackedItem) Commit() {
	if t.settled {
		return
	}
	t.settled = true
	if t.onCommit != nil {
		t.onCommit(t.item)
	}
}

// Discard implements Output
func (t *TrackedItem) Discard() {
	t.settled = true
}

// Settled implements Output
func (t *TrackedItem) Settled() bool { return t.settled }
