package console

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/avltree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

func buildTree(values ...int) *avltree.Tree[int] {
	tree := avltree.New[int]()
	for _, v := range values {
		tree.Insert(v)
	}
	return tree
}

func TestPrintSideways(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avltree")
	defer teardown()

	tree := buildTree(1, 2, 3, 4, 5, 6, 7)
	var buf bytes.Buffer
	if err := Print(&buf, tree, &Config{Context: uax11.LatinContext}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Logf("\n%s", buf.String())
	want := []string{
		"              /------+ 7",
		"       /------+ 6",
		"       |      \\------+ 5",
		"|------+ 4",
		"       |      /------+ 3",
		"       \\------+ 2",
		"              \\------+ 1",
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got=%q want=%q", i, lines[i], want[i])
		}
	}
}

func TestPrintEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avltree")
	defer teardown()

	var buf bytes.Buffer
	if err := Print(&buf, avltree.New[string](), &Config{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "(empty)\n" {
		t.Fatalf("got=%q", buf.String())
	}
}

func TestPrintDetailsTruncated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avltree")
	defer teardown()

	var buf bytes.Buffer
	config := &Config{Width: 30, Details: true, Context: uax11.LatinContext}
	if err := Print(&buf, buildTree(1, 2, 3, 4, 5), config); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Logf("\n%s", buf.String())
	truncated := 0
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if utf8.RuneCountInString(line) > config.Width {
			t.Errorf("line exceeds width %d: %q", config.Width, line)
		}
		if strings.HasSuffix(line, Ellipsis) {
			truncated++
		}
	}
	if truncated == 0 {
		t.Fatalf("expected deep lines to be truncated")
	}
	if !strings.Contains(buf.String(), "|------+ 2  h=3 s=5 -1") {
		t.Fatalf("root line with details missing")
	}
}

func TestPrintColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avltree")
	defer teardown()

	var buf bytes.Buffer
	if err := Print(&buf, buildTree(1, 2, 3), &Config{Colors: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected escape sequences in colored output: %q", buf.String())
	}
}

func TestDisplayWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avltree")
	defer teardown()

	if w := DisplayWidth("hello", nil); w != 5 {
		t.Errorf("width of 'hello': got=%d want=5", w)
	}
	if w := DisplayWidth("日本語", uax11.LatinContext); w != 6 {
		t.Errorf("width of wide characters: got=%d want=6", w)
	}
	if s := truncate("日本語", 5, uax11.LatinContext); DisplayWidth(s, uax11.LatinContext) > 5 {
		t.Errorf("truncated label %q too wide", s)
	}
	if s := truncate("abc", 0, nil); s != "" {
		t.Errorf("expected empty label for no room, got %q", s)
	}
}
