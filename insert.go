package avltree

import "cmp"

// Insert adds a value to the tree. Duplicates are allowed; a value equal to
// an existing one is placed to the right of it.
func (t *Tree[T]) Insert(v T) {
	k := t.cfg.FreeList.newNode(v)
	t.root = insert(t.root, k)
	t.root.parent = nil
}

// insert places the singleton k into the sub-tree n and returns the
// re-balanced sub-tree root.
func insert[T cmp.Ordered](n, k *Node[T]) *Node[T] {
	if n == nil {
		return k
	}
	if cmp.Less(k.value, n.value) {
		n.setLeft(insert(n.left, k))
	} else {
		n.setRight(insert(n.right, k))
	}
	return balance(n)
}
