package avltree

import "cmp"

// Remove deletes one occurrence of v from the tree and reports whether a value
// has been removed. Removing a value which is not contained in the tree, or
// removing from an empty tree, is a no-op.
//
// Nodes of values other than v are never moved to a different node: if an
// inner node is removed, its in-order successor node takes its place in the
// tree.
func (t *Tree[T]) Remove(v T) bool {
	if t.IsEmpty() {
		return false
	}
	var removed *Node[T]
	t.root, removed = remove(t.root, v)
	if t.root != nil {
		t.root.parent = nil
	}
	if removed == nil {
		return false
	}
	t.cfg.FreeList.freeNode(removed)
	return true
}

// remove deletes a node with value v from sub-tree n. It returns the new
// sub-tree root and the detached node, which is nil if v has not been found.
func remove[T cmp.Ordered](n *Node[T], v T) (*Node[T], *Node[T]) {
	if n == nil { // value not in tree
		return nil, nil
	}
	var removed *Node[T]
	switch cmp.Compare(v, n.value) {
	case -1:
		var l *Node[T]
		if l, removed = remove(n.left, v); removed == nil {
			return n, nil
		}
		n.setLeft(l)
	case +1:
		var r *Node[T]
		if r, removed = remove(n.right, v); removed == nil {
			return n, nil
		}
		n.setRight(r)
	default: // found: splice out n
		p := n.parent
		l, r := n.detach()
		if r == nil {
			if l != nil {
				l.parent = p
			}
			return l, n
		}
		succ, rest := removeMin(r)
		succ.setLeft(l)
		succ.setRight(rest)
		succ.parent = p
		return balance(succ), n
	}
	return balance(n), removed
}

// removeMin detaches the node with the smallest value from sub-tree n.
// It returns the detached node and the re-balanced remainder.
func removeMin[T cmp.Ordered](n *Node[T]) (*Node[T], *Node[T]) {
	if n.left == nil {
		p := n.parent
		_, r := n.detach()
		if r != nil {
			r.parent = p
		}
		return n, r
	}
	m, l := removeMin(n.left)
	n.setLeft(l)
	return m, balance(n)
}

// removeMax detaches the node with the largest value from sub-tree n.
// It returns the detached node and the re-balanced remainder.
func removeMax[T cmp.Ordered](n *Node[T]) (*Node[T], *Node[T]) {
	if n.right == nil {
		p := n.parent
		l, _ := n.detach()
		if l != nil {
			l.parent = p
		}
		return n, l
	}
	m, r := removeMax(n.right)
	n.setRight(r)
	return m, balance(n)
}
