// Package cli implements the ts-highlight command line.
//
// The root command parses --code (or --file) with the grammar named by
// --language and prints either the highlight captures of a query as
// "<capture-name> <start> <end>" lines, or with --graphviz-only the parse
// tree as Graphviz DOT.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DeusData/ts-highlight/internal/dot"
	"github.com/DeusData/ts-highlight/internal/lang"
)

var version = "dev"

// SetVersion sets the version printed by --version.
func SetVersion(v string) {
	version = v
}

// options collects the root command's flags.
type options struct {
	code           string
	file           string
	language       string
	highlights     string
	highlightsFile string
	graphvizOnly   bool
	format         string
	validate       bool
	output         string
	configPath     string
	verbose        bool
}

// NewRootCmd builds the root command with its flags and subcommands.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "ts-highlight",
		Short: "Output highlight captures with byte ranges or a Graphviz graph of the parse tree",
		Long: `ts-highlight parses code with a tree-sitter grammar and prints either the
captures of a highlights query as "<capture-name> <start> <end>" lines with
byte offsets, or (with --graphviz-only) the whole parse tree as Graphviz DOT.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := root.Flags()
	f.StringVar(&opts.code, "code", "", "the code to parse")
	f.StringVar(&opts.file, "file", "", "read the code to parse from this file")
	f.StringVar(&opts.language, "language", "", "grammar to parse with (see 'ts-highlight languages')")
	f.StringVar(&opts.highlights, "highlights", "", "highlights query, like the content of queries/highlights.scm; required when not using --graphviz-only")
	f.StringVar(&opts.highlightsFile, "highlights-file", "", "read the highlights query from this file")
	f.BoolVar(&opts.graphvizOnly, "graphviz-only", false, "output only the Graphviz dot graph of the parse tree")
	f.StringVar(&opts.format, "format", string(dot.FormatDOT), "graph output format with --graphviz-only: dot, svg or png")
	f.BoolVar(&opts.validate, "validate", false, "check the generated graph with Graphviz before writing it")
	f.StringVarP(&opts.output, "output", "o", "", "write output to this file instead of stdout")
	root.MarkFlagsMutuallyExclusive("code", "file")
	root.MarkFlagsOneRequired("code", "file")
	root.MarkFlagsMutuallyExclusive("highlights", "highlights-file")

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default is ./.ts-highlight.yaml or $HOME/.ts-highlight.yaml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	_ = root.RegisterFlagCompletionFunc("language", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lang.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = root.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, f := range dot.Formats() {
			names = append(names, string(f))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(newLanguagesCmd())
	return root
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages accepted by --language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range lang.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// Execute runs the command line with args (without the program name).
func Execute(ctx context.Context, args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
