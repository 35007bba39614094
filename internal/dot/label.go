package dot

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxSnippetBytes is the longest source snippet shown in a node label.
// Longer snippets are cut and marked with an ellipsis.
const MaxSnippetBytes = 60

const ellipsis = "..."

var (
	// ErrRangeOutOfBounds means a node's byte range does not fit the source.
	ErrRangeOutOfBounds = errors.New("node range out of bounds")
	// ErrInvalidUTF8 means a node's byte range does not cut valid UTF-8 from the source.
	ErrInvalidUTF8 = errors.New("node text is not valid UTF-8")
)

// Applied in a single pass, so no substitution is escaped twice.
var snippetEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\b", `\b`,
	"\f", `\f`,
)

var kindEscaper = strings.NewReplacer(`"`, `\"`)

// nodeText returns the source text of [start, end).
func nodeText(source []byte, start, end uint) (string, error) {
	if start > end || end > uint(len(source)) {
		return "", fmt.Errorf("[%d,%d) of %d bytes: %w", start, end, len(source), ErrRangeOutOfBounds)
	}
	text := source[start:end]
	if !utf8.Valid(text) {
		return "", fmt.Errorf("[%d,%d): %w", start, end, ErrInvalidUTF8)
	}
	return string(text), nil
}

// truncate keeps at most MaxSnippetBytes bytes of text and appends an
// ellipsis when anything was cut. The cut never splits a rune.
func truncate(text string) string {
	if len(text) <= MaxSnippetBytes {
		return text
	}
	cut := MaxSnippetBytes
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + ellipsis
}

// Snippet returns the label form of a node's text: truncated, then escaped
// for a double-quoted DOT string.
func Snippet(text string) string {
	return snippetEscaper.Replace(truncate(text))
}

// label builds "<kind> <start> <end>" and the snippet on the following line.
func label(n Node, source []byte) (string, error) {
	start, end := n.StartByte(), n.EndByte()
	text, err := nodeText(source, start, end)
	if err != nil {
		return "", fmt.Errorf("%s %w", n.Kind(), err)
	}
	return fmt.Sprintf("%s %d %d\n%s", kindEscaper.Replace(n.Kind()), start, end, Snippet(text)), nil
}
