package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// Format selects how rendered DOT text is emitted.
type Format string

const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// Formats lists the accepted output formats.
func Formats() []Format {
	return []Format{FormatDOT, FormatSVG, FormatPNG}
}

// ParseFormat resolves a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatDOT, FormatSVG, FormatPNG:
		return f, nil
	case "":
		return FormatDOT, nil
	default:
		return "", fmt.Errorf("unknown format %q (want dot, svg or png)", s)
	}
}

// Validate checks that text is DOT that Graphviz accepts.
func Validate(ctx context.Context, text string) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(text))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	if g == nil {
		return fmt.Errorf("parse DOT: no graph")
	}
	return g.Close()
}

// Image lays out DOT text and renders it in the given format. FormatDOT
// returns the text unchanged.
func Image(ctx context.Context, text string, f Format) ([]byte, error) {
	var gf graphviz.Format
	switch f {
	case FormatDOT:
		return []byte(text), nil
	case FormatSVG:
		gf = graphviz.SVG
	case FormatPNG:
		gf = graphviz.PNG
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gf, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", f, err)
	}
	return buf.Bytes(), nil
}
