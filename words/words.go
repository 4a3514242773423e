package words

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/avltree"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/net/html"
)

// FromText creates a vocabulary of the words in text.
func FromText(text string) *avltree.Tree[string] {
	tree := avltree.New[string]()
	addWords(tree, strings.NewReader(text))
	return tree
}

// FromHTML creates a vocabulary from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
// Content of script and style elements is skipped.
func FromHTML(input io.Reader) (*avltree.Tree[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, fmt.Errorf("words: parsing HTML: %w", err)
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return FromText(b.String()), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	} else if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// addWords inserts the words read from r into tree, skipping words already
// present. It returns the number of words inserted.
func addWords(tree *avltree.Tree[string], r io.Reader) int {
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(r))
	cnt := 0
	for segmenter.Next() {
		word := Normalize(string(segmenter.Bytes()))
		if word == "" || tree.Contains(word) {
			continue
		}
		tree.Insert(word)
		cnt++
	}
	return cnt
}

// Normalize lower-cases a text segment s and trims everything but letters and
// digits from both of its ends. Segments without letters or digits result in
// an empty string.
func Normalize(s string) string {
	word := strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToLower(word)
}
