package avltree

import (
	"cmp"
	"sync"
)

// Node is a node of an AVL tree. Clients may inspect nodes through the
// read-only accessors, but only the tree itself modifies them.
type Node[T cmp.Ordered] struct {
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	parent *Node[T] // points to parent node, nil for the root
	value  T
	height int // 1 for a leaf
	size   int // number of nodes in this sub-tree
}

// Value returns the value stored in a node.
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the left child of a node, or nil.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of a node, or nil.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// Parent returns the parent node of a node, or nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	if n == nil {
		return nil
	}
	return n.parent
}

// Height returns the cached height of a node's sub-tree. A nil node has
// height 0.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Size returns the cached number of nodes in a node's sub-tree.
func (n *Node[T]) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

// Balance returns height(left) - height(right).
func (n *Node[T]) Balance() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

// update recalculates height and size from the children's cached values.
func (n *Node[T]) update() {
	n.height = 1 + max(n.left.Height(), n.right.Height())
	n.size = 1 + n.left.Size() + n.right.Size()
}

// detach cuts a node loose from its children and its parent and returns the
// former children. The node itself is left as a singleton. The parent's child
// slot is not touched.
func (n *Node[T]) detach() (l, r *Node[T]) {
	l, r = n.left, n.right
	if l != nil {
		l.parent = nil
	}
	if r != nil {
		r.parent = nil
	}
	n.left, n.right, n.parent = nil, nil, nil
	n.update()
	return l, r
}

// unlink turns n into a singleton without touching its former neighbours.
func (n *Node[T]) unlink() {
	n.left, n.right, n.parent = nil, nil, nil
	n.update()
}

func (n *Node[T]) first() *Node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *Node[T]) last() *Node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the node with the next value in ascending order, or nil.
func (n *Node[T]) successor() *Node[T] {
	if n.right != nil {
		return n.right.first()
	}
	for n.parent != nil && n == n.parent.right {
		n = n.parent
	}
	return n.parent
}

// setLeft and setRight link a child and keep its parent reference in sync.
func (n *Node[T]) setLeft(c *Node[T]) {
	n.left = c
	if c != nil {
		c.parent = n
	}
}

func (n *Node[T]) setRight(c *Node[T]) {
	n.right = c
	if c != nil {
		c.parent = n
	}
}

// --- Free list -------------------------------------------------------------

// DefaultFreeListSize is the default number of nodes a FreeList retains.
const DefaultFreeListSize = 64

// FreeList keeps released nodes for re-use. A FreeList may be shared between
// trees, including trees accessed from different goroutines.
type FreeList[T cmp.Ordered] struct {
	mu       sync.Mutex
	freelist []*Node[T]
}

// NewFreeList creates a new free list retaining at most size nodes.
// A size <= 0 selects DefaultFreeListSize.
func NewFreeList[T cmp.Ordered](size int) *FreeList[T] {
	if size <= 0 {
		size = DefaultFreeListSize
	}
	return &FreeList[T]{freelist: make([]*Node[T], 0, size)}
}

// Len returns the number of nodes currently held by the free list.
func (f *FreeList[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.freelist)
}

// newNode allocates a singleton node, re-using a reclaimed node if available.
func (f *FreeList[T]) newNode(value T) *Node[T] {
	if f == nil {
		return &Node[T]{value: value, height: 1, size: 1}
	}
	f.mu.Lock()
	index := len(f.freelist) - 1
	if index < 0 {
		f.mu.Unlock()
		return &Node[T]{value: value, height: 1, size: 1}
	}
	n := f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	f.mu.Unlock()
	n.value = value
	n.height, n.size = 1, 1
	return n
}

// freeNode clears a node and keeps it for re-use. It reports whether the node
// has been retained.
func (f *FreeList[T]) freeNode(n *Node[T]) bool {
	*n = Node[T]{}
	if f == nil {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		return true
	}
	return false
}
