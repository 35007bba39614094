// Package highlight runs tree-sitter highlight queries and reports the
// captures as "<capture-name> <start> <end>" lines with byte offsets.
package highlight

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	"github.com/zeebo/xxh3"

	"github.com/DeusData/ts-highlight/internal/lang"
	"github.com/DeusData/ts-highlight/internal/parser"
)

// ErrInvalidQuery is returned when a highlights query does not compile
// against the language's grammar.
var ErrInvalidQuery = errors.New("invalid highlights query")

// Capture is one named node range produced by a query match.
type Capture struct {
	Name      string
	StartByte uint
	EndByte   uint
}

func (c Capture) String() string {
	return fmt.Sprintf("%s %d %d", c.Name, c.StartByte, c.EndByte)
}

type cacheKey struct {
	lang lang.Language
	hash uint64
}

var (
	cacheMu sync.Mutex
	cache   = map[cacheKey]*tree_sitter.Query{}
)

// Compile returns the compiled query for l. Compiled queries are cached by
// language and query text and live for the rest of the process.
func Compile(l lang.Language, query string) (*tree_sitter.Query, error) {
	key := cacheKey{lang: l, hash: xxh3.HashString(query)}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if q, ok := cache[key]; ok {
		return q, nil
	}

	tsLang, err := parser.GetLanguage(l)
	if err != nil {
		return nil, err
	}
	q, qErr := tree_sitter.NewQuery(tsLang, query)
	if qErr != nil {
		return nil, fmt.Errorf("%w: %s at row %d, column %d", ErrInvalidQuery, qErr.Message, qErr.Row, qErr.Column)
	}
	cache[key] = q
	slog.Debug("highlight.compile", "lang", l, "patterns", q.PatternCount(), "captures", len(q.CaptureNames()))
	return q, nil
}

// Run matches query against tree and returns the captures in match order,
// and within a match in capture order.
func Run(l lang.Language, tree *tree_sitter.Tree, source []byte, query string) ([]Capture, error) {
	if tree == nil {
		return nil, fmt.Errorf("highlight: nil tree")
	}
	q, err := Compile(l, query)
	if err != nil {
		return nil, err
	}

	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()

	names := q.CaptureNames()
	matches := qc.Matches(q, tree.RootNode(), source)

	var captures []Capture
	for {
		match := matches.Next()
		if match == nil {
			break
		}
		for _, c := range match.Captures {
			captures = append(captures, Capture{
				Name:      names[c.Index],
				StartByte: c.Node.StartByte(),
				EndByte:   c.Node.EndByte(),
			})
		}
	}
	slog.Debug("highlight.captures", "lang", l, "count", len(captures))
	return captures, nil
}

// Write prints one "<name> <start> <end>" line per capture.
func Write(w io.Writer, captures []Capture) error {
	bw := bufio.NewWriter(w)
	for _, c := range captures {
		if _, err := fmt.Fprintf(bw, "%s %d %d\n", c.Name, c.StartByte, c.EndByte); err != nil {
			return err
		}
	}
	return bw.Flush()
}
