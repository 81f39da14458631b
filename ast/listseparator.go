package ast

// NewListSeparator builds a standalone, leaf-capable ", " node.
func NewListSeparator(at Position) (*Node, error) {
	return Leaf(&Node{Kind: KindListSeparator, Text: ", ", Pos: at})
}

// ExpectListSeparator proposes a ", " as the node following n.
func ExpectListSeparator(n *Node, chain Chain) (*Node, error) {
	return Expect(n, KindListSeparator, ", ", chain)
}
