package avltree

import (
	"cmp"
	"iter"
)

// Iterator walks the values of a tree in ascending order. It is a single-pass
// iterator; a new one has to be created to start over.
//
// An iterator becomes invalid as soon as its tree is modified. Using it
// afterwards has undefined results.
//
//	it := tree.Iterator()
//	for it.Next() {
//	    fmt.Println(it.Value())
//	}
type Iterator[T cmp.Ordered] struct {
	next    *Node[T] // node to be visited by the next call to Next
	current *Node[T]
}

// Iterator returns an iterator positioned at the smallest value of t.
func (t *Tree[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{next: t.Root().first()}
}

// Next advances the iterator to the next value. It returns false if no
// values are left.
func (it *Iterator[T]) Next() bool {
	if it.next == nil {
		it.current = nil
		return false
	}
	it.current = it.next
	it.next = it.next.successor()
	return true
}

// Value returns the value the iterator is positioned at, i.e. the value
// found by the most recent call to Next.
func (it *Iterator[T]) Value() T {
	if it.current == nil {
		var zero T
		return zero
	}
	return it.current.value
}

// All returns an iterator over all values of t in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.Iterator()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Slot is an entry of a breadth-first snapshot of a tree. Missing children
// of a node are represented by slots with Present == false.
type Slot[T cmp.Ordered] struct {
	Value   T
	Height  int
	Size    int
	Present bool
}

// BreadthFirst returns a snapshot of the tree, layer by layer. Every node
// of a layer contributes two slots to the next layer, one for each child,
// where missing children are marked as not present. The snapshot ends with
// the first layer which contains no present slot.
//
// An empty tree results in a single layer with a single missing slot.
// BreadthFirst is intended for debugging; the format is not guaranteed to be
// stable.
func (t *Tree[T]) BreadthFirst() [][]Slot[T] {
	var layers [][]Slot[T]
	queue := []*Node[T]{t.Root()}
	for {
		layer := make([]Slot[T], len(queue))
		var next []*Node[T]
		for i, n := range queue {
			if n == nil {
				continue
			}
			layer[i] = Slot[T]{Value: n.value, Height: n.height, Size: n.size, Present: true}
			next = append(next, n.left, n.right)
		}
		layers = append(layers, layer)
		if len(next) == 0 {
			return layers
		}
		queue = next
	}
}
