package dot

import tree_sitter "github.com/tree-sitter/go-tree-sitter"

// Node is the read-only view of a parse tree node the renderer walks.
// ID is an opaque handle that is unique within one tree; it is only ever
// used as a lookup key and never appears in the output.
type Node interface {
	ID() uintptr
	Kind() string
	StartByte() uint
	EndByte() uint
	ChildCount() uint
	Child(i uint) Node
}

// tsNode adapts a tree-sitter node to Node.
type tsNode struct {
	n *tree_sitter.Node
}

// FromTreeSitter wraps a tree-sitter node. It returns nil for a nil node.
func FromTreeSitter(n *tree_sitter.Node) Node {
	if n == nil {
		return nil
	}
	return tsNode{n: n}
}

func (t tsNode) ID() uintptr       { return t.n.Id() }
func (t tsNode) Kind() string      { return t.n.Kind() }
func (t tsNode) StartByte() uint   { return t.n.StartByte() }
func (t tsNode) EndByte() uint     { return t.n.EndByte() }
func (t tsNode) ChildCount() uint  { return t.n.ChildCount() }
func (t tsNode) Child(i uint) Node { return FromTreeSitter(t.n.Child(i)) }

// idTable hands out stable ids in encounter order, starting at 1.
type idTable struct {
	ids map[uintptr]int
}

func newIDTable() *idTable {
	return &idTable{ids: make(map[uintptr]int)}
}

// assign returns the id for n and whether it was allocated by this call.
// A node seen before keeps its first id.
func (t *idTable) assign(n Node) (int, bool) {
	if id, ok := t.ids[n.ID()]; ok {
		return id, false
	}
	id := len(t.ids) + 1
	t.ids[n.ID()] = id
	return id, true
}

// frame is a node whose children are still being visited.
type frame struct {
	node Node
	id   int
	next uint
}

// visitor receives the walk in output order.
type visitor interface {
	node(n Node, id int) error
	edge(parentID, childID int) error
}

// walk visits root and its descendants in pre-order, children left to right.
// A child's id is allocated and its edge reported before the child itself is
// visited. The walk keeps its own stack so tree depth is not bounded by the
// goroutine stack, and a node reached twice is only visited the first time.
func walk(root Node, v visitor) error {
	ids := newIDTable()
	rootID, _ := ids.assign(root)
	if err := v.node(root, rootID); err != nil {
		return err
	}
	stack := []frame{{node: root, id: rootID}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= top.node.ChildCount() {
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.node.Child(top.next)
		top.next++
		if child == nil {
			continue
		}

		parentID := top.id
		childID, fresh := ids.assign(child)
		if err := v.edge(parentID, childID); err != nil {
			return err
		}
		if !fresh {
			continue
		}
		if err := v.node(child, childID); err != nil {
			return err
		}
		stack = append(stack, frame{node: child, id: childID})
	}
	return nil
}
