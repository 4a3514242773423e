package avltree

import "fmt"

// Merge moves all values of other into t. Every value of t has to be greater
// than every value of other, and t must be at least as high as other.
// Otherwise Merge returns an error wrapping ErrInvalidMerge and neither tree
// is modified.
//
// If other is empty, Merge is a no-op. If t is empty, t takes over the nodes
// of other. After a successful merge other is empty.
//
// Merge runs in O(log n), re-linking nodes without copying values.
func (t *Tree[T]) Merge(other *Tree[T]) error {
	if other.IsEmpty() {
		return nil
	}
	if t.root == nil {
		t.root, other.root = other.root, nil
		return nil
	}
	if t == other {
		return fmt.Errorf("%w: cannot merge a tree into itself", ErrInvalidMerge)
	}
	lo, hi := t.root.first().value, other.root.last().value
	if !(lo > hi) {
		tracer().Debugf("merge rejected: min %v <= max %v", lo, hi)
		return fmt.Errorf("%w: min %v of tree is not greater than max %v of merged tree",
			ErrInvalidMerge, lo, hi)
	}
	if t.Height() < other.Height() {
		tracer().Debugf("merge rejected: height %d < height %d", t.Height(), other.Height())
		return fmt.Errorf("%w: tree height %d is less than height %d of merged tree",
			ErrInvalidMerge, t.Height(), other.Height())
	}
	pivot, rest := removeMax(other.root)
	other.root = nil
	if rest != nil {
		rest.parent = nil
	}
	t.root = join(rest, pivot, t.root)
	return nil
}
