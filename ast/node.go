package ast

// NodeKind identifies the grammar rule that produced a node.
type NodeKind int

const (
	// KindKeyword covers fixed literals such as "func", "(", ")" and ":".
	KindKeyword NodeKind = iota
	KindIdentifier
	KindSpacing
	KindNewline
	KindListSeparator

	// KindOperation stands in for the not-yet-specified expression grammar:
	// any run of word characters qualifies.
	KindOperation
)

var nodeKindNames = map[NodeKind]string{
	KindKeyword:       "Keyword",
	KindIdentifier:    "Identifier",
	KindSpacing:       "Spacing",
	KindNewline:       "Newline",
	KindListSeparator: "ListSeparator",
	KindOperation:     "Operation",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is a typed token in the AST. It carries the literal source text it
// covers, the position at which that text starts, and the continuations by
// which the nodes allowed to follow it are defined.
type Node struct {
	Kind NodeKind
	Text string
	Pos  Position

	// Continuations lists the nodes that may legally follow this one, in
	// declaration order. A nil entry means the production may end here.
	// The list is append-only during construction and must be treated as
	// frozen once the rule that built it returns.
	Continuations []*Node
}

// Leaf marks that the production may end at n. Calling it more than once
// leaves exactly one end marker in the continuation list.
func Leaf(n *Node) (*Node, error) {
	for _, c := range n.Continuations {
		if c == nil {
			return n, nil
		}
	}
	n.Continuations = append(n.Continuations, nil)
	return n, nil
}

// CanEnd reports whether the production may legally end at this node.
func (n *Node) CanEnd() bool {
	for _, c := range n.Continuations {
		if c == nil {
			return true
		}
	}
	return false
}

func (n *Node) String() string {
	return Render(n)
}
