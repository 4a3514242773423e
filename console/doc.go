/*
Package console prints AVL trees to a terminal.

Trees are printed sideways: the root sits at the left margin, right subtrees
above and left subtrees below their parent. Reading the output top-down
therefore yields the values in descending order.

Labels may be colored by the balance factor of their node and will be
truncated to fit the configured line width. Widths are measured in fixed-width
positions (“en”s) according to UAX#11, which handles East Asian wide
characters and combining sequences correctly.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'avltree'.
func tracer() tracing.Trace {
	return tracing.Select("avltree")
}
