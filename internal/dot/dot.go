// Package dot renders parse trees as Graphviz DOT text.
//
// Node ids in the output are assigned in pre-order encounter order starting
// at 1, so rendering the same tree over the same source always produces the
// same bytes, whatever the parser's internal node handles are.
package dot

import (
	"fmt"
	"log/slog"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

const (
	header = "digraph name {\n"
	footer = "}"
)

// renderer accumulates node and edge statements for one Render call.
type renderer struct {
	source []byte
	body   strings.Builder
	nodes  int
	edges  int
}

func (r *renderer) node(n Node, id int) error {
	l, err := label(n, r.source)
	if err != nil {
		return fmt.Errorf("node_%d: %w", id, err)
	}
	fmt.Fprintf(&r.body, "node_%d[label=\"%s\"];\n", id, l)
	r.nodes++
	return nil
}

func (r *renderer) edge(parentID, childID int) error {
	fmt.Fprintf(&r.body, "node_%d -> node_%d[label=\"\"];\n", parentID, childID)
	r.edges++
	return nil
}

// Render returns the DOT description of the tree rooted at root. source must
// be the text the tree was parsed from. On error no partial text is returned.
func Render(root Node, source []byte) (string, error) {
	if root == nil {
		return "", fmt.Errorf("render: nil root")
	}
	r := &renderer{source: source}
	if err := walk(root, r); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	slog.Debug("dot.render", "nodes", r.nodes, "edges", r.edges)
	return header + r.body.String() + footer, nil
}

// RenderTree renders a tree-sitter tree.
func RenderTree(tree *tree_sitter.Tree, source []byte) (string, error) {
	if tree == nil {
		return "", fmt.Errorf("render: nil tree")
	}
	return Render(FromTreeSitter(tree.RootNode()), source)
}
