package ast

// NewNewline builds a standalone, leaf-capable line terminator node.
func NewNewline(at Position) (*Node, error) {
	return Leaf(&Node{Kind: KindNewline, Text: Newline, Pos: at})
}

// ExpectNewline proposes the platform line terminator as the node
// following n.
func ExpectNewline(n *Node, chain Chain) (*Node, error) {
	return Expect(n, KindNewline, Newline, chain)
}
