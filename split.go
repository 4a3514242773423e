package avltree

import (
	"cmp"
	"fmt"
)

// SplitStrategy selects the algorithm used for splitting a tree.
type SplitStrategy int

const (
	// Polylog splits in O(log² n) by re-joining the sub-trees along the search
	// path of the threshold value.
	Polylog SplitStrategy = iota
	// Naive splits in O(n) by re-inserting every node into one of two fresh
	// trees. It is meant as a reference for testing.
	Naive
)

func (s SplitStrategy) valid() bool {
	return s == Polylog || s == Naive
}

func (s SplitStrategy) String() string {
	switch s {
	case Polylog:
		return "polylog"
	case Naive:
		return "naive"
	}
	return fmt.Sprintf("SplitStrategy(%d)", int(s))
}

// ParseSplitStrategy returns the strategy named name ("polylog" or "naive").
func ParseSplitStrategy(name string) (SplitStrategy, error) {
	for _, s := range []SplitStrategy{Polylog, Naive} {
		if s.String() == name {
			return s, nil
		}
	}
	return Polylog, fmt.Errorf("%w: unknown split strategy %q", ErrInvalidConfig, name)
}

// Split partitions the tree into a tree holding all values <= x and a tree
// holding all values > x, using the strategy configured for t.
//
// Split consumes t: all of its nodes are re-distributed to the resulting
// trees and t is empty afterwards. Both resulting trees share t's
// configuration.
func (t *Tree[T]) Split(x T) (le, gt *Tree[T]) {
	le, gt, err := t.SplitWith(x, t.cfg.Split)
	assert(err == nil, "split with validated strategy failed")
	return le, gt
}

// SplitWith is like Split, but uses a given strategy.
func (t *Tree[T]) SplitWith(x T, strategy SplitStrategy) (le, gt *Tree[T], err error) {
	if !strategy.valid() {
		return nil, nil, fmt.Errorf("%w: unknown split strategy %d", ErrInvalidConfig, strategy)
	}
	le, gt = t.sibling(), t.sibling()
	if t.root == nil {
		return le, gt, nil
	}
	root := t.root
	t.root = nil
	switch strategy {
	case Naive:
		le.root, gt.root = splitNaive(root, x)
	default:
		le.root, gt.root = splitPolylog(root, x)
	}
	tracer().Debugf("split at %v (%s): %d | %d values", x, strategy, le.Size(), gt.Size())
	return le, gt, nil
}

// splitFrame remembers a detached node on the search path of x, together with
// the sub-tree which is not on the search path.
type splitFrame[T cmp.Ordered] struct {
	node *Node[T]
	side *Node[T]
	le   bool // node.value <= x
}

// splitPolylog walks down the search path of x, detaching every node from its
// children. Then it walks back up, growing the two result trees by joining
// each path node, as pivot, with its off-path sub-tree.
//
// Every join is a height-matched pivot splice along a spine followed by a
// re-balancing walk upwards, thus costs O(log n). There are O(log n) nodes on
// the path.
func splitPolylog[T cmp.Ordered](root *Node[T], x T) (le, gt *Node[T]) {
	path := make([]splitFrame[T], 0, root.Height())
	for n := root; n != nil; {
		l, r := n.detach()
		if cmp.Less(x, n.value) {
			path = append(path, splitFrame[T]{node: n, side: r})
			n = l
		} else {
			path = append(path, splitFrame[T]{node: n, side: l, le: true})
			n = r
		}
	}
	for i := len(path) - 1; i >= 0; i-- {
		f := path[i]
		if f.le {
			le = join(f.side, f.node, le)
		} else {
			gt = join(gt, f.node, f.side)
		}
	}
	return le, gt
}

// splitNaive collects all nodes in order and re-inserts each of them into
// one of two new trees. All nodes are unlinked before the first insert, as
// re-inserted nodes must not be reached through stale links of their former
// parents.
func splitNaive[T cmp.Ordered](root *Node[T], x T) (le, gt *Node[T]) {
	nodes := make([]*Node[T], 0, root.Size())
	nodes = collectNodes(root, nodes)
	for _, n := range nodes {
		n.unlink()
	}
	for _, n := range nodes {
		if cmp.Less(x, n.value) {
			gt = insert(gt, n)
			gt.parent = nil
		} else {
			le = insert(le, n)
			le.parent = nil
		}
	}
	return le, gt
}

func collectNodes[T cmp.Ordered](n *Node[T], nodes []*Node[T]) []*Node[T] {
	if n == nil {
		return nodes
	}
	nodes = collectNodes(n.left, nodes)
	nodes = append(nodes, n)
	return collectNodes(n.right, nodes)
}
