package words

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/avltree"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// fragment is a line-aligned chunk of a text file's content.
type fragment struct {
	text string // content of this fragment
	pos  int64  // start position of this fragment within the file
}

// loadDone is broadcast after the last fragment of a file.
type loadDone struct {
	err error // I/O error which ended loading, if any
}

// loadStats is what the progress subscriber hands back to LoadFile.
type loadStats struct {
	fragments int
	bytes     int64
}

// loadResult is what the vocabulary builder hands back to LoadFile.
type loadResult struct {
	tree *avltree.Tree[string]
	err  error
}

// LoadFile reads a file, which must be a text file, and creates a vocabulary
// of its words.
//
// The file is read by a background goroutine and broadcast in fragments to a
// vocabulary builder and a progress counter. The tree is returned only after
// all fragments have been processed. Opening of the file is done synchronously.
func LoadFile(name string) (*avltree.Tree[string], error) {
	tree, _, err := loadFile(name, 0)
	return tree, err
}

// loadFile traces from the builder goroutine only while loading; the summary
// is traced after both subscribers have finished.
func loadFile(name string, fragSize int64) (*avltree.Tree[string], loadStats, error) {
	file, info, err := openFile(name)
	if err != nil {
		return nil, loadStats{}, err
	}
	defer file.Close()
	if fragSize <= 0 {
		fragSize = fragmentSize(info.Size())
	}
	ctx := context.Background()
	cast := caster.New(ctx) // we will broadcast messages when fragments are loaded
	defer cast.Close()
	builderCh, ok := cast.Sub(ctx, 16)
	if !ok {
		return nil, loadStats{}, fmt.Errorf("words: cannot subscribe to loader of %s", name)
	}
	progressCh, ok := cast.Sub(ctx, 16)
	if !ok {
		return nil, loadStats{}, fmt.Errorf("words: cannot subscribe to loader of %s", name)
	}
	result := make(chan loadResult)
	progress := make(chan loadStats)
	go buildVocabulary(builderCh, result)
	go countProgress(progressCh, progress)
	go readFragments(file, fragSize, cast)
	r := <-result
	stats := <-progress
	if r.err != nil {
		tracer().Errorf("loading %s failed after %d of %d bytes: %v", name, stats.bytes, info.Size(), r.err)
		return nil, stats, fmt.Errorf("words: loading %s: %w", name, r.err)
	}
	tracer().Infof("loaded %s (%d bytes in %d fragments)", name, stats.bytes, stats.fragments)
	return r.tree, stats, nil
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*os.File, os.FileInfo, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, nil, fmt.Errorf("words: %w", err)
	} else if !fi.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("words: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, nil, fmt.Errorf("words: %w", err)
	}
	return file, fi, nil
}

// fragmentSize selects a fragment size in relation to the size of a file.
func fragmentSize(size int64) int64 {
	switch {
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// --- File loading goroutines -----------------------------------------------

// readFragments reads r line by line and publishes a fragment whenever at least
// fragSize bytes have been collected. Words never span fragments, as fragments
// end at line boundaries.
func readFragments(r io.Reader, fragSize int64, cast *caster.Caster) {
	br := bufio.NewReader(r)
	var b strings.Builder
	var pos int64
	for {
		line, err := br.ReadString('\n')
		b.WriteString(line)
		if int64(b.Len()) >= fragSize || (err != nil && b.Len() > 0) {
			cast.Pub(fragment{text: b.String(), pos: pos})
			pos += int64(b.Len())
			b.Reset()
		}
		if err != nil {
			if err == io.EOF {
				err = nil
			}
			cast.Pub(loadDone{err: err})
			return
		}
	}
}

// buildVocabulary is the only goroutine touching the tree while loading.
func buildVocabulary(ch <-chan interface{}, result chan<- loadResult) {
	tree := avltree.New[string]()
	for msg := range ch {
		switch m := msg.(type) {
		case fragment:
			n := addWords(tree, strings.NewReader(m.text))
			tracer().Debugf("fragment @%d added %d words", m.pos, n)
		case loadDone:
			result <- loadResult{tree: tree, err: m.err}
			return
		}
	}
	result <- loadResult{err: fmt.Errorf("loader closed prematurely")}
}

// countProgress sums up the fragments loaded until the end of loading.
func countProgress(ch <-chan interface{}, done chan<- loadStats) {
	var stats loadStats
	for msg := range ch {
		switch m := msg.(type) {
		case fragment:
			stats.fragments++
			stats.bytes += int64(len(m.text))
		case loadDone:
			done <- stats
			return
		}
	}
	done <- stats
}
