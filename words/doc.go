/*
Package words builds vocabularies of words as AVL trees.

A vocabulary is an avltree.Tree[string] holding every distinct word of a text
exactly once, in lower case. Words are found by segmenting text at line-break
opportunities (UAX#14) and trimming punctuation from the segments.

Text may be given as a string, as an HTML fragment, or as a text file. Files are
read in the background in line-aligned fragments, which are broadcast to the
vocabulary builder.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package words

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'avltree'.
func tracer() tracing.Trace {
	return tracing.Select("avltree")
}
