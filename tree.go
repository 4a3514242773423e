package avltree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
)

// Tree is an AVL tree holding values of an ordered type T.
//
// A tree created by
//
//	Tree[T]{}
//
// is a valid object and behaves like an empty tree without a free list.
//
// Values are not required to be unique. Equal values are kept in insertion
// order, i.e. a value inserted later is placed right of an equal value inserted
// before.
type Tree[T cmp.Ordered] struct {
	root *Node[T]
	cfg  Config[T]
}

// Config configures a tree.
//
// The zero value is a valid configuration: no free list and the polylog split
// strategy.
type Config[T cmp.Ordered] struct {
	// FreeList, if set, receives released nodes and provides nodes for inserts.
	FreeList *FreeList[T]
	// Split selects the algorithm used by Tree.Split.
	Split SplitStrategy
}

func (cfg Config[T]) validate() error {
	if !cfg.Split.valid() {
		return fmt.Errorf("%w: unknown split strategy %d", ErrInvalidConfig, cfg.Split)
	}
	return nil
}

// New creates an empty tree with default configuration.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// NewWithConfig creates an empty tree with a validated configuration.
func NewWithConfig[T cmp.Ordered](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// sibling creates an empty tree sharing t's configuration.
func (t *Tree[T]) sibling() *Tree[T] {
	return &Tree[T]{cfg: t.cfg}
}

// Root returns the root node of the tree, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no values.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Size returns the number of values in the tree.
func (t *Tree[T]) Size() int {
	if t == nil {
		return 0
	}
	return t.root.Size()
}

// Height returns the tree height, where 0 means empty and 1 means a single
// value.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.root.Height()
}

// Min returns the smallest value of the tree, or ErrEmptyTree.
func (t *Tree[T]) Min() (T, error) {
	if t.IsEmpty() {
		var zero T
		return zero, ErrEmptyTree
	}
	return t.root.first().value, nil
}

// Max returns the largest value of the tree, or ErrEmptyTree.
func (t *Tree[T]) Max() (T, error) {
	if t.IsEmpty() {
		var zero T
		return zero, ErrEmptyTree
	}
	return t.root.last().value, nil
}

// Contains reports whether a value equal to v is stored in the tree.
func (t *Tree[T]) Contains(v T) bool {
	return t.find(v) != nil
}

// Get returns the stored value equal to v. The second result is false if no
// such value is stored in the tree.
func (t *Tree[T]) Get(v T) (T, bool) {
	if n := t.find(v); n != nil {
		return n.value, true
	}
	var zero T
	return zero, false
}

func (t *Tree[T]) find(v T) *Node[T] {
	if t == nil {
		return nil
	}
	return find(t.root, v)
}

func find[T cmp.Ordered](n *Node[T], v T) *Node[T] {
	if n == nil {
		return nil
	}
	switch cmp.Compare(v, n.value) {
	case -1:
		return find(n.left, v)
	case +1:
		return find(n.right, v)
	}
	return n
}

// At returns the value at position index in ascending order.
func (t *Tree[T]) At(index int) (T, error) {
	if index < 0 || index >= t.Size() {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, index, t.Size())
	}
	n := t.root
	for {
		nl := n.left.Size()
		switch {
		case index < nl:
			n = n.left
		case index > nl:
			index -= nl + 1 // skip left sub-tree and this node
			n = n.right
		default:
			return n.value, nil
		}
	}
}

// Rank returns the number of values in the tree which are less than v.
// If v is contained in the tree, Rank(v) is the index of its first occurrence.
func (t *Tree[T]) Rank(v T) int {
	if t == nil {
		return 0
	}
	rank := 0
	for n := t.root; n != nil; {
		if cmp.Less(n.value, v) {
			rank += n.left.Size() + 1
			n = n.right
		} else {
			n = n.left
		}
	}
	return rank
}

// InOrder returns all values of the tree in ascending order.
func (t *Tree[T]) InOrder() []T {
	values := make([]T, 0, t.Size())
	if t != nil {
		values = inOrder(t.root, values)
	}
	return values
}

func inOrder[T cmp.Ordered](n *Node[T], values []T) []T {
	if n == nil {
		return values
	}
	values = inOrder(n.left, values)
	values = append(values, n.value)
	return inOrder(n.right, values)
}
