package ast

// NewIdentifier builds a standalone, leaf-capable identifier node.
func NewIdentifier(at Position, text string) (*Node, error) {
	if _, err := Validate(KindIdentifier, text); err != nil {
		return nil, err
	}
	return Leaf(&Node{Kind: KindIdentifier, Text: text, Pos: at})
}

// ExpectIdentifier proposes an identifier with the given text as the node
// following n.
func ExpectIdentifier(n *Node, text string, chain Chain) (*Node, error) {
	return Expect(n, KindIdentifier, text, chain)
}
