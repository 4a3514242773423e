package avltree

import (
	"cmp"
	"fmt"
)

// Check reports whether the tree satisfies all structural invariants.
// Failures are traced with error level, see Validate.
//
// Check walks the complete tree and is intended for tests.
func (t *Tree[T]) Check() bool {
	if err := t.Validate(); err != nil {
		tracer().Errorf("tree check: %v", err)
		return false
	}
	return true
}

// Validate checks the structural invariants of the tree and returns the
// first violation found, wrapping ErrCorrupted. Heights and sizes are
// re-calculated from scratch, not taken from the cached node fields.
//
// This checker is intentionally strict and should be used in tests.
func (t *Tree[T]) Validate() error {
	if t == nil || t.root == nil {
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrCorrupted, t.root.value)
	}
	_, _, err := checkNode(t.root, nil, nil)
	return err
}

// checkNode validates the sub-tree n, whose values have to lie within
// [*lo, *hi] if the bounds are set. It returns the real height and size of n.
func checkNode[T cmp.Ordered](n *Node[T], lo, hi *T) (height int, size int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if lo != nil && cmp.Less(n.value, *lo) {
		return 0, 0, fmt.Errorf("%w: value %v less than lower bound %v", ErrCorrupted, n.value, *lo)
	}
	if hi != nil && cmp.Less(*hi, n.value) {
		return 0, 0, fmt.Errorf("%w: value %v greater than upper bound %v", ErrCorrupted, n.value, *hi)
	}
	for _, c := range [...]*Node[T]{n.left, n.right} {
		if c != nil && c.parent != n {
			return 0, 0, fmt.Errorf("%w: node %v has inconsistent parent link", ErrCorrupted, c.value)
		}
	}
	hl, sl, err := checkNode(n.left, lo, &n.value)
	if err != nil {
		return 0, 0, err
	}
	hr, sr, err := checkNode(n.right, &n.value, hi)
	if err != nil {
		return 0, 0, err
	}
	if hl-hr < -1 || hl-hr > 1 {
		return 0, 0, fmt.Errorf("%w: node %v unbalanced (%d/%d)", ErrCorrupted, n.value, hl, hr)
	}
	height, size = 1+max(hl, hr), 1+sl+sr
	if n.height != height {
		return 0, 0, fmt.Errorf("%w: node %v caches height %d, real height is %d",
			ErrCorrupted, n.value, n.height, height)
	}
	if n.size != size {
		return 0, 0, fmt.Errorf("%w: node %v caches size %d, real size is %d",
			ErrCorrupted, n.value, n.size, size)
	}
	return height, size, nil
}
