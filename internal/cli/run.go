package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/DeusData/ts-highlight/internal/config"
	"github.com/DeusData/ts-highlight/internal/dot"
	"github.com/DeusData/ts-highlight/internal/highlight"
	"github.com/DeusData/ts-highlight/internal/lang"
	"github.com/DeusData/ts-highlight/internal/parser"
)

var errHighlightsRequired = errors.New("--highlights is required when not using --graphviz-only")

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if opts.verbose {
		level = "debug"
	}
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), level))

	code, err := readCode(cmd, opts)
	if err != nil {
		return err
	}
	l, err := resolveLanguage(opts)
	if err != nil {
		return err
	}
	format, err := dot.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if !opts.graphvizOnly && format != dot.FormatDOT {
		return fmt.Errorf("--format %s requires --graphviz-only", format)
	}

	var query string
	if !opts.graphvizOnly {
		query, err = resolveQuery(cmd, opts, cfg, l)
		if err != nil {
			return err
		}
	}

	start := time.Now()
	tree, err := parser.Parse(l, code)
	if err != nil {
		return err
	}
	defer tree.Close()

	// The output is built in full before anything is written, so a failure
	// leaves an existing --output file untouched.
	var out []byte
	if opts.graphvizOnly {
		out, err = renderGraph(cmd.Context(), opts, format, tree, code)
	} else {
		out, err = renderHighlights(l, tree, code, query)
	}
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, opts.output, out); err != nil {
		return err
	}
	slog.Debug("run.done", "lang", l, "graphviz", opts.graphvizOnly, "bytes", len(out), "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func readCode(cmd *cobra.Command, opts *options) ([]byte, error) {
	switch {
	case opts.file != "":
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return nil, fmt.Errorf("read code: %w", err)
		}
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("read code: %s is not valid UTF-8", opts.file)
		}
		return data, nil
	case cmd.Flags().Changed("code"):
		if !utf8.ValidString(opts.code) {
			return nil, errors.New("--code is not valid UTF-8")
		}
		return []byte(opts.code), nil
	default:
		return nil, errors.New("one of --code or --file is required")
	}
}

func resolveLanguage(opts *options) (lang.Language, error) {
	if opts.language != "" {
		l, ok := lang.ForName(opts.language)
		if !ok {
			return "", fmt.Errorf("unsupported language %q (supported: %v)", opts.language, lang.Names())
		}
		return l, nil
	}
	if opts.file != "" {
		if l, ok := lang.ForPath(opts.file); ok {
			return l, nil
		}
		return "", fmt.Errorf("cannot infer language of %s, pass --language", opts.file)
	}
	return "", errors.New("--language is required")
}

// resolveQuery picks the highlights query: --highlights (even when empty),
// then --highlights-file, then the file configured for l.
func resolveQuery(cmd *cobra.Command, opts *options, cfg *config.Config, l lang.Language) (string, error) {
	if cmd.Flags().Changed("highlights") {
		return opts.highlights, nil
	}
	path := opts.highlightsFile
	if path == "" {
		p, ok := cfg.QueryFile(l)
		if !ok {
			return "", errHighlightsRequired
		}
		path = p
		slog.Debug("highlights.config", "lang", l, "path", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read highlights: %w", err)
	}
	return string(data), nil
}

func writeOutput(cmd *cobra.Command, path string, out []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func renderGraph(ctx context.Context, opts *options, format dot.Format, tree *tree_sitter.Tree, code []byte) ([]byte, error) {
	text, err := dot.RenderTree(tree, code)
	if err != nil {
		return nil, err
	}
	if opts.validate {
		if err := dot.Validate(ctx, text); err != nil {
			return nil, fmt.Errorf("generated graph is invalid: %w", err)
		}
	}
	return dot.Image(ctx, text, format)
}

func renderHighlights(l lang.Language, tree *tree_sitter.Tree, code []byte, query string) ([]byte, error) {
	captures, err := highlight.Run(l, tree, code, query)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := highlight.Write(&buf, captures); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
