package avltree

import "cmp"

// leftRotate promotes the right child of n to take n's place.
//
//	    n                r
//	   / \              / \
//	  a   r     ==>    n   c
//	     / \          / \
//	    b   c        a   b
//
// The parent's child slot is re-linked if it still refers to n. Returns the
// promoted node.
func leftRotate[T cmp.Ordered](n *Node[T]) *Node[T] {
	r := n.right
	assert(r != nil, "left rotation without right child")
	p := n.parent
	n.setRight(r.left)
	r.setLeft(n)
	r.parent = p
	if p != nil {
		if p.left == n {
			p.left = r
		} else if p.right == n {
			p.right = r
		}
	}
	n.update()
	r.update()
	return r
}

// rightRotate is the mirror image of leftRotate.
func rightRotate[T cmp.Ordered](n *Node[T]) *Node[T] {
	l := n.left
	assert(l != nil, "right rotation without left child")
	p := n.parent
	n.setLeft(l.right)
	l.setRight(n)
	l.parent = p
	if p != nil {
		if p.left == n {
			p.left = l
		} else if p.right == n {
			p.right = l
		}
	}
	n.update()
	l.update()
	return l
}

// balance restores the AVL property at n, provided both of its sub-trees are
// AVL trees with a height difference of at most 2. It performs at most two
// rotations and returns the new local root.
func balance[T cmp.Ordered](n *Node[T]) *Node[T] {
	n.update()
	switch bf := n.Balance(); {
	case bf <= -2:
		if n.right.Balance() > 0 { // right-left case
			rightRotate(n.right)
		}
		return leftRotate(n)
	case bf >= 2:
		if n.left.Balance() < 0 { // left-right case
			leftRotate(n.left)
		}
		return rightRotate(n)
	}
	return n
}

// balanceUp calls balance for n and every ancestor of n, following the parent
// links as they are after each step. Returns the root reached.
func balanceUp[T cmp.Ordered](n *Node[T]) *Node[T] {
	for {
		n = balance(n)
		if n.parent == nil {
			return n
		}
		n = n.parent
	}
}

// join links l and r with k in between and returns the balanced result.
// All values of l must be <= k.value <= all values of r. k must be a
// detached singleton, l and r detached roots (or nil).
//
// If the heights of l and r differ by more than one, k is spliced into the
// spine of the higher tree, at the first node whose height matches the lower
// tree, and the spine is rebalanced from there upwards.
func join[T cmp.Ordered](l, k, r *Node[T]) *Node[T] {
	assert(k != nil && k.left == nil && k.right == nil && k.parent == nil,
		"join pivot must be a detached singleton")
	hl, hr := l.Height(), r.Height()
	switch {
	case hl > hr+1: // walk down the right spine of l
		p, c := l, l.right
		for c.Height() > hr+1 {
			p, c = c, c.right
		}
		k.setLeft(c)
		k.setRight(r)
		p.setRight(k)
		return balanceUp(k)
	case hr > hl+1: // walk down the left spine of r
		p, c := r, r.left
		for c.Height() > hl+1 {
			p, c = c, c.left
		}
		k.setLeft(l)
		k.setRight(c)
		p.setLeft(k)
		return balanceUp(k)
	}
	k.setLeft(l)
	k.setRight(r)
	k.update()
	return k
}
