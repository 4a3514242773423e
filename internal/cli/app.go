// Package cli implements the avltree command, which builds word vocabularies
// from text files and operates on them as AVL trees.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/npillmayer/avltree"
	"github.com/npillmayer/avltree/words"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

func tracer() tracing.Trace {
	return tracing.Select("avltree")
}

type (
	avltreeApp struct {
		baseCmd *cobra.Command
		opts    *baseOptions
	}

	// baseOptions are shared by all sub-commands.
	baseOptions struct {
		html bool // input files are HTML fragments
	}
)

// New creates a new avltree application.
func New() *avltreeApp {
	opts := &baseOptions{}
	baseCmd := &cobra.Command{
		Use:           "avltree",
		Short:         "Word vocabularies as AVL trees",
		Long:          `avltree reads text files into vocabularies of distinct words, kept in an AVL tree, and lists, splits, prints or exports them.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	baseCmd.PersistentFlags().BoolVar(&opts.html, "html", false, "treat input files as HTML fragments")
	return &avltreeApp{baseCmd: baseCmd, opts: opts}
}

// Execute adds all child commands and runs the application.
func (a *avltreeApp) Execute(ctx context.Context) error {
	return a.addAndExecuteCommand(ctx)
}

func (a *avltreeApp) addAndExecuteCommand(ctx context.Context) error {
	a.baseCmd.AddCommand(newWordsCmd(a.opts))
	a.baseCmd.AddCommand(newSplitCmd(a.opts))
	a.baseCmd.AddCommand(newShowCmd(a.opts))
	a.baseCmd.AddCommand(newDotCmd(a.opts))
	return a.baseCmd.ExecuteContext(ctx)
}

// loadVocabulary reads the words of a file into a tree.
func loadVocabulary(opts *baseOptions, name string) (*avltree.Tree[string], error) {
	var tree *avltree.Tree[string]
	if opts.html {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		defer f.Close()
		if tree, err = words.FromHTML(f); err != nil {
			return nil, err
		}
	} else {
		var err error
		if tree, err = words.LoadFile(name); err != nil {
			return nil, err
		}
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	tracer().Infof("vocabulary of %s: %d words, height %d", name, tree.Size(), tree.Height())
	return tree, nil
}
