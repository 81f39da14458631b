package ast

// NewOperation builds a standalone, leaf-capable node for a statement or
// expression whose internal grammar is not parsed yet.
func NewOperation(at Position, text string) (*Node, error) {
	if _, err := Validate(KindOperation, text); err != nil {
		return nil, err
	}
	return Leaf(&Node{Kind: KindOperation, Text: text, Pos: at})
}

// ExpectOperation proposes an operation with the given text as the node
// following n.
func ExpectOperation(n *Node, text string, chain Chain) (*Node, error) {
	return Expect(n, KindOperation, text, chain)
}
