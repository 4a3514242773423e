package avltree

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

type nodeids[T cmp.Ordered] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T cmp.Ordered]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Missing children are drawn as small empty
// circles.
func Tree2Dot[T cmp.Ordered](tree *Tree[T], w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	nilid := 0
	var walk func(*Node[T])
	walk = func(node *Node[T]) {
		ID := ids.alloc(node)
		label := fmt.Sprintf("%v\\nh=%d s=%d", node.value, node.height, node.size)
		label = strings.ReplaceAll(label, "\"", "\\\"")
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(node))
		for _, child := range [...]*Node[T]{node.left, node.right} {
			if child == nil {
				nilid--
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			walk(child)
		}
	}
	if root := tree.Root(); root != nil {
		walk(root)
	}
	b.WriteString(nodelist)
	b.WriteString(edgelist)
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[T cmp.Ordered](node *Node[T]) string {
	s := ",style=filled,shape=circle"
	if bf := node.Balance(); bf >= -1 && bf <= 1 {
		s += ",color=black,fillcolor=\"" + hexcolors[bf+1] + "\""
	} else {
		s += ",color=red,fillcolor=\"#FF7700\""
	}
	return s
}

// fill colors for balance factors -1, 0, +1
var hexcolors = [...]string{"#CCDDFF", "#a3d7e4", "#AACCFF"}
