/*
Package avltree implements an ordered collection of values as an AVL tree.

AVL Trees

An AVL tree is a binary search tree which keeps the heights of sibling subtrees
within a difference of at most one. Every node of an avltree.Tree carries a
back-reference to its parent, its cached height and the cached number of nodes
in its subtree. The latter makes order statistics (`At`, `Rank`) as cheap as a
search.

Besides the classic operations insert, search and delete, trees support

  - Merge: joining two trees where every value of one tree is smaller than
    every value of the other, in O(log n), and
  - Split: partitioning a tree by a threshold value into two trees, in
    O(log² n).

Both operations re-link existing nodes and never copy values. A split consumes
the tree it is called on.

	Operation     |   Tree
	--------------+-----------
	Insert        |   O(log n)
	Remove        |   O(log n)
	Contains      |   O(log n)
	At / Rank     |   O(log n)
	Merge         |   O(log n)
	Split         |   O(log² n)
	Iterate       |   O(n)

Trees are not safe for concurrent use. Clients sharing a tree between
goroutines have to guard every call with a lock; Merge and Split need
exclusive access to both trees involved.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package avltree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avltree'
func tracer() tracing.Trace {
	return tracing.Select("avltree")
}

// TreeError is an error type for the avltree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrEmptyTree is flagged whenever the minimum or maximum of an empty tree is
// requested.
const ErrEmptyTree = TreeError("tree is empty")

// ErrInvalidMerge is flagged if two trees are not eligible for merging, i.e.
// their values overlap or the receiving tree is lower than the merged one.
const ErrInvalidMerge = TreeError("invalid merge")

// ErrIndexOutOfBounds is flagged whenever an index is not in [0, size).
const ErrIndexOutOfBounds = TreeError("index out of bounds")

// ErrInvalidConfig signals an invalid tree configuration.
const ErrInvalidConfig = TreeError("invalid configuration")

// ErrCorrupted signals that a tree violates one of its structural invariants.
const ErrCorrupted = TreeError("tree corrupted")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
