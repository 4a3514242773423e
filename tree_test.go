package avltree

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func valueRange(lo, hi int) []int {
	values := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		values = append(values, i)
	}
	return values
}

func buildTree(values []int) *Tree[int] {
	tree := New[int]()
	for _, v := range values {
		tree.Insert(v)
	}
	return tree
}

func heightBound(size int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(size+2))))
}

func mustCheck(t *testing.T, tree *Tree[int], context string) {
	t.Helper()
	if err := tree.Validate(); err != nil {
		t.Fatalf("%s: %v", context, err)
	}
	if tree.Height() > heightBound(tree.Size()) {
		t.Fatalf("%s: height %d exceeds AVL bound %d for size %d",
			context, tree.Height(), heightBound(tree.Size()), tree.Size())
	}
	if got := len(tree.InOrder()); got != tree.Size() {
		t.Fatalf("%s: in-order yields %d values, size is %d", context, got, tree.Size())
	}
}

func TestEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avltree")
	defer teardown()

	var tree Tree[int]
	if !tree.IsEmpty() || tree.Size() != 0 || tree.Height() != 0 {
		t.Fatalf("unexpected empty tree state size=%d height=%d", tree.Size(), tree.Height())
	}
	if !tree.Check() {
		t.Fatalf("expected empty tree to be valid")
	}
	if _, err := tree.Min(); !errors.Is(err, ErrEmptyTree) {
		t.Fatalf("expected ErrEmptyTree from Min, got %v", err)
	}
	if _, err := tree.Max(); !errors.Is(err, ErrEmptyTree) {
		t.Fatalf("expected ErrEmptyTree from Max, got %v", err)
	}
	if tree.Contains(1) {
		t.Fatalf("empty tree reports to contain a value")
	}
	if len(tree.InOrder()) != 0 {
		t.Fatalf("expected no values for empty tree")
	}
}

func TestInsertAscending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avltree")
	defer teardown()

	tree := buildTree(valueRange(0, 100))
	if !tree.Check() {
		t.Fatalf("tree check failed")
	}
	if tree.Size() != 100 {
		t.Fatalf("size: got=%d want=100", tree.Size())
	}
	if h := tree.Height(); h < 7 || h > 10 {
		t.Fatalf("height %d not in [7,10]", h)
	}
	if !slices.Equal(tree.InOrder(), valueRange(0, 100)) {
		t.Fatalf("unexpected in-order sequence: %v", tree.InOrder())
	}
	if lo, _ := tree.Min(); lo != 0 {
		t.Fatalf("min: got=%d want=0", lo)
	}
	if hi, _ := tree.Max(); hi != 99 {
		t.Fatalf("max: got=%d want=99", hi)
	}
}

func TestInsertDescendingAndRandom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avltree")
	defer teardown()

	desc := valueRange(0, 500)
	slices.Reverse(desc)
	mustCheck(t, buildTree(desc), "descending")

	rnd := rand.New(rand.NewSource(7))
	tree := New[int]()
	var want []int
	for i := 0; i < 2000; i++ {
		v := rnd.Intn(1000)
		tree.Insert(v)
		want = append(want, v)
	}
	mustCheck(t, tree, "random")
	slices.Sort(want)
	if !slices.Equal(tree.InOrder(), want) {
		t.Fatalf("in-order sequence does not match sorted input")
	}
}

func TestContainsAndGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avltree")
	defer teardown()

	tree := New[string]()
	for _, s := range []string{"4201", "1254", "8608", "1639", "8950", "6740"} {
		tree.Insert(s)
	}
	if !tree.Contains("8608") {
		t.Errorf("expected tree to contain 8608")
	}
	if tree.Contains("0000") {
		t.Errorf("expected tree not to contain 0000")
	}
	if v, ok := tree.Get("1639"); !ok || v != "1639" {
		t.Errorf("get: got=(%q,%v) want=(1639,true)", v, ok)
	}
	if _, ok := tree.Get("9999"); ok {
		t.Errorf("get of missing value reported ok")
	}
}

func TestDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avltree")
	defer teardown()

	tree := New[int]()
	for i := 0; i < 40; i++ {
		tree.Insert(1042)
		tree.Insert(i)
	}
	mustCheck(t, tree, "duplicates")
	if tree.Size() != 80 {
		t.Fatalf("size: got=%d want=80", tree.Size())
	}
	if tree.Rank(1042) != 40 {
		t.Fatalf("rank of duplicate: got=%d want=40", tree.Rank(1042))
	}
	for i := 0; i < 40; i++ {
		if !tree.Remove(1042) {
			t.Fatalf("remove of duplicate #%d failed", i)
		}
		mustCheck(t, tree, "remove duplicate")
	}
	if tree.Contains(1042) {
		t.Fatalf("duplicates left after removing all of them")
	}
}

func TestAtAndRank(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avltree")
	defer teardown()

	rnd := rand.New(rand.NewSource(42))
	values := rnd.Perm(300)
	tree := buildTree(values)
	sorted := tree.InOrder()
	for i, v := range sorted {
		got, err := tree.At(i)
		if err != nil {
			t.Fatalf("At(%d): unexpected error %v", i, err)
		}
		if got != v {
			t.Fatalf("At(%d): got=%d want=%d", i, got, v)
		}
		if r := tree.Rank(v); r != i {
			t.Fatalf("Rank(%d): got=%d want=%d", v, r, i)
		}
	}
	if _, err := tree.At(300); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := tree.At(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if r := tree.Rank(1000); r != 300 {
		t.Fatalf("Rank beyond max: got=%d want=300", r)
	}
}

func TestNewWithConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avltree")
	defer teardown()

	if _, err := NewWithConfig(Config[int]{Split: SplitStrategy(7)}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for unknown split strategy, got %v", err)
	}
	if _, err := NewWithConfig(Config[int]{Split: SplitStrategy(-1)}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative split strategy, got %v", err)
	}
	if tree, err := NewWithConfig(Config[int]{}); err != nil || tree.Config().Split != Polylog {
		t.Fatalf("zero config: got=(%+v,%v) want polylog", tree, err)
	}
	fl := NewFreeList[int](8)
	tree, err := NewWithConfig(Config[int]{FreeList: fl, Split: Naive})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg := tree.Config(); cfg.FreeList != fl || cfg.Split != Naive {
		t.Fatalf("configuration not stored: %+v", cfg)
	}
}

func TestFreeListRecyclesNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avltree")
	defer teardown()

	fl := NewFreeList[int](4)
	tree, _ := NewWithConfig(Config[int]{FreeList: fl})
	for _, v := range valueRange(0, 20) {
		tree.Insert(v)
	}
	for _, v := range valueRange(0, 10) {
		tree.Remove(v)
	}
	if fl.Len() != 4 {
		t.Fatalf("free list length: got=%d want=4", fl.Len())
	}
	for _, v := range valueRange(100, 103) {
		tree.Insert(v)
	}
	if fl.Len() != 1 {
		t.Fatalf("free list length after re-use: got=%d want=1", fl.Len())
	}
	mustCheck(t, tree, "after re-use")
	want := append(valueRange(10, 20), valueRange(100, 103)...)
	if !slices.Equal(tree.InOrder(), want) {
		t.Fatalf("unexpected values: %v", tree.InOrder())
	}
}
