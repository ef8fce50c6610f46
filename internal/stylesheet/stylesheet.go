// Package stylesheet holds the parsed form of a CSS document: a tree of
// rules, at-rules, declarations and comments with source positions.
package stylesheet

// Position is a location in the source. Line and Column are 1-based;
// Offset is the 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Before reports whether p comes strictly before q, comparing line then
// column.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// Kind identifies the type of a Node.
type Kind int

// Node kinds.
const (
	RuleNode Kind = iota + 1
	AtRuleNode
	DeclNode
	CommentNode
)

// String returns the lower-case name used in plugin scripts.
func (k Kind) String() string {
	switch k {
	case RuleNode:
		return "rule"
	case AtRuleNode:
		return "atrule"
	case DeclNode:
		return "decl"
	case CommentNode:
		return "comment"
	default:
		return "unknown"
	}
}

// Node is a single element of the tree. Which fields are set depends on Kind:
//   - RuleNode: Selector, Nodes
//   - AtRuleNode: Name, Params, Nodes when HasBlock
//   - DeclNode: Prop, Value, RawValue, ValueStart, Important
//   - CommentNode: Text
//
// Comments written inside a selector, params or declaration are not part
// of those strings; they become CommentNode siblings placed before the node.
// RawValue is the value's source text, comments included, starting at
// ValueStart, so an index into it is a byte offset from ValueStart.
type Node struct {
	Kind Kind

	Selector string
	Name     string
	Params   string

	Prop       string
	Value      string
	RawValue   string
	ValueStart Position
	Important  bool

	Text string

	HasBlock bool
	Start    Position
	End      Position

	Nodes  []*Node
	Parent *Node
}

// Root is a parsed stylesheet.
type Root struct {
	Nodes  []*Node
	Source []byte

	lineStarts []int
}

// Position converts a byte offset in Source to a Position.
func (r *Root) Position(offset int) Position {
	if r.lineStarts == nil {
		r.lineStarts = lineStarts(r.Source)
	}
	return position(r.lineStarts, offset)
}

// Walk visits every node depth-first in source order. A non-nil error from
// fn stops the walk and is returned.
func (r *Root) Walk(fn func(n *Node) error) error {
	return walk(r.Nodes, fn)
}

// WalkKind is like Walk but only calls fn for nodes of kind k.
func (r *Root) WalkKind(k Kind, fn func(n *Node) error) error {
	return r.Walk(func(n *Node) error {
		if n.Kind != k {
			return nil
		}
		return fn(n)
	})
}

func walk(nodes []*Node, fn func(n *Node) error) error {
	for _, n := range nodes {
		if err := fn(n); err != nil {
			return err
		}
		if err := walk(n.Nodes, fn); err != nil {
			return err
		}
	}
	return nil
}
