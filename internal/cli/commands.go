package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/avltree"
	"github.com/npillmayer/avltree/console"
	"github.com/spf13/cobra"
)

func newWordsCmd(opts *baseOptions) *cobra.Command {
	var count bool
	var cmd = &cobra.Command{
		Use:   "words FILE",
		Short: "Lists the distinct words of a file in ascending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadVocabulary(opts, args[0])
			if err != nil {
				return err
			}
			return wordsRunFun(cmd.OutOrStdout(), tree, count)
		},
	}
	cmd.Flags().BoolVarP(&count, "count", "c", false, "print the number of words only")
	return cmd
}

func wordsRunFun(out io.Writer, tree *avltree.Tree[string], count bool) error {
	if count {
		_, err := fmt.Fprintf(out, "%d\n", tree.Size())
		return err
	}
	for w := range tree.All() {
		if _, err := fmt.Fprintln(out, w); err != nil {
			return err
		}
	}
	return nil
}

func newSplitCmd(opts *baseOptions) *cobra.Command {
	var strategy string
	var cmd = &cobra.Command{
		Use:   "split FILE WORD",
		Short: "Splits the vocabulary of a file into words <= WORD and words > WORD",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := avltree.ParseSplitStrategy(strategy)
			if err != nil {
				return err
			}
			tree, err := loadVocabulary(opts, args[0])
			if err != nil {
				return err
			}
			return splitRunFun(cmd.OutOrStdout(), tree, args[1], s)
		},
	}
	cmd.Flags().StringVarP(&strategy, "strategy", "s", avltree.Polylog.String(), "split strategy: polylog or naive")
	return cmd
}

func splitRunFun(out io.Writer, tree *avltree.Tree[string], word string, s avltree.SplitStrategy) error {
	le, gt, err := tree.SplitWith(word, s)
	if err != nil {
		return err
	}
	for _, part := range []struct {
		name string
		tree *avltree.Tree[string]
	}{{"<=", le}, {">", gt}} {
		if err := part.tree.Validate(); err != nil {
			return fmt.Errorf("split at %q: %w", word, err)
		}
		_, err := fmt.Fprintf(out, "%-2s %q: size=%d height=%d", part.name, word,
			part.tree.Size(), part.tree.Height())
		if err != nil {
			return err
		}
		if lo, err := part.tree.Min(); err == nil {
			hi, _ := part.tree.Max()
			_, err = fmt.Fprintf(out, " range=[%s, %s]", lo, hi)
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	return nil
}

func newShowCmd(opts *baseOptions) *cobra.Command {
	config := &console.Config{}
	var cmd = &cobra.Command{
		Use:   "show FILE",
		Short: "Prints the vocabulary tree of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadVocabulary(opts, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if out == os.Stdout {
				terminal := console.ConfigFromTerminal()
				if !cmd.Flags().Changed("width") {
					config.Width = terminal.Width
				}
				if !cmd.Flags().Changed("colors") {
					config.Colors = terminal.Colors
				}
				config.Context = terminal.Context
			}
			return console.Print(out, tree, config)
		},
	}
	cmd.Flags().IntVarP(&config.Width, "width", "w", 0, "maximum line width, 0 for unlimited")
	cmd.Flags().BoolVar(&config.Colors, "colors", false, "color nodes by balance factor")
	cmd.Flags().BoolVarP(&config.Details, "details", "d", false, "print height, size and balance of nodes")
	return cmd
}

func newDotCmd(opts *baseOptions) *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "dot FILE",
		Short: "Outputs the vocabulary tree of a file in Graphviz DOT format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadVocabulary(opts, args[0])
			if err != nil {
				return err
			}
			return avltree.Tree2Dot(tree, cmd.OutOrStdout())
		},
	}
	return cmd
}
