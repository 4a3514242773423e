package console

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/avltree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds the parameters for printing a tree.
type Config struct {
	Width   int            // line width in ‘en’s; 0 means unlimited
	Colors  bool           // color labels by balance factor
	Details bool           // print height, size and balance factor of nodes
	Context *uax11.Context // context for measuring display widths
}

// ConfigFromTerminal is a simple helper for creating a print Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and switches on colors. Config.Context is created based on heuristics from the
// user environment.
func ConfigFromTerminal() *Config {
	config := &Config{
		Width:   80,
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colors = true
		if w, _, err := term.GetSize(fd); err == nil && w > 20 {
			config.Width = w - 1
		}
	}
	tracer().P("format", "console").Infof("setting line length to %d en, colors=%v",
		config.Width, config.Colors)
	return config
}

var graphemeSetup sync.Once

// Ellipsis marks labels which have been truncated.
const Ellipsis = "…"

// to control the print routine
type branch int

const (
	root branch = iota
	left
	right
)

// Print outputs an ASCII graphic representation of a tree to w.
//
// If parameter config is nil, a config is created from the current terminal's
// properties (see ConfigFromTerminal).
func Print[T cmp.Ordered](w io.Writer, tree *avltree.Tree[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	graphemeSetup.Do(func() { grapheme.SetupGraphemeClasses() })
	p := &printer[T]{w: w, cfg: *config}
	if p.cfg.Context == nil {
		p.cfg.Context = uax11.LatinContext
	}
	if p.cfg.Colors {
		p.palette = makeDefaultPalette()
	}
	if tree == nil || tree.IsEmpty() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	depth := p.print(tree.Root(), "", root)
	tracer().Debugf("printed tree of size %d and depth %d", tree.Size(), depth)
	return p.err
}

// makeDefaultPalette returns colors for balanced nodes, nodes leaning to one
// side, and nodes violating the AVL condition. Colors are forced on, as clients
// asked for them explicitly.
func makeDefaultPalette() []*color.Color {
	palette := []*color.Color{
		color.New(color.FgGreen),
		color.New(color.FgYellow),
		color.New(color.FgRed, color.Bold),
	}
	for _, c := range palette {
		c.EnableColor()
	}
	return palette
}

type printer[T cmp.Ordered] struct {
	w       io.Writer
	cfg     Config
	palette []*color.Color
	err     error // first write error
}

// print returns the depth of the subtree at n.
func (p *printer[T]) print(n *avltree.Node[T], prefix string, br branch) int {
	if n == nil {
		return 0
	}
	rd, ld := 0, 0
	if n.Right() != nil {
		t := "       "
		if br == left {
			t = "|      "
		}
		rd = p.print(n.Right(), prefix+t, right)
	}
	switch br {
	case root:
		p.line(prefix+"|------+ ", n)
	case left:
		p.line(prefix+"\\------+ ", n)
	case right:
		p.line(prefix+"/------+ ", n)
	}
	if n.Left() != nil {
		t := "       "
		if br == right {
			t = "|      "
		}
		ld = p.print(n.Left(), prefix+t, left)
	}
	return 1 + max(ld, rd)
}

func (p *printer[T]) line(head string, n *avltree.Node[T]) {
	if p.err != nil {
		return
	}
	label := p.label(n)
	if p.cfg.Width > 0 {
		label = truncate(label, p.cfg.Width-DisplayWidth(head, p.cfg.Context), p.cfg.Context)
	}
	if _, p.err = io.WriteString(p.w, head); p.err != nil {
		return
	}
	if p.palette != nil {
		_, p.err = p.colorFor(n).Fprint(p.w, label)
	} else {
		_, p.err = io.WriteString(p.w, label)
	}
	if p.err == nil {
		_, p.err = io.WriteString(p.w, "\n")
	}
}

func (p *printer[T]) label(n *avltree.Node[T]) string {
	if p.cfg.Details {
		return fmt.Sprintf("%v  h=%d s=%d %+d", n.Value(), n.Height(), n.Size(), n.Balance())
	}
	return fmt.Sprint(n.Value())
}

func (p *printer[T]) colorFor(n *avltree.Node[T]) *color.Color {
	bf := n.Balance()
	if bf < 0 {
		bf = -bf
	}
	return p.palette[min(bf, len(p.palette)-1)]
}

// DisplayWidth returns the number of fixed-width positions s occupies on a
// console.
func DisplayWidth(s string, context *uax11.Context) int {
	if context == nil {
		context = uax11.LatinContext
	}
	graphemeSetup.Do(func() { grapheme.SetupGraphemeClasses() })
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate shortens label to fit into room positions, marking the cut with an
// ellipsis.
func truncate(label string, room int, context *uax11.Context) string {
	if room <= 0 {
		return ""
	}
	if DisplayWidth(label, context) <= room {
		return label
	}
	runes := []rune(label)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if s := string(runes) + Ellipsis; DisplayWidth(s, context) <= room {
			return s
		}
	}
	return ""
}
