package ast

// NewSpacing builds a standalone, leaf-capable node covering one space.
func NewSpacing(at Position) (*Node, error) {
	return Leaf(&Node{Kind: KindSpacing, Text: " ", Pos: at})
}

// ExpectSpacing proposes a single space as the node following n.
func ExpectSpacing(n *Node, chain Chain) (*Node, error) {
	return Expect(n, KindSpacing, " ", chain)
}
