package ast

// Chain describes what must follow a freshly proposed node. It receives the
// candidate, issues further Expect and Leaf calls on it, and returns it when
// the rest of the production validates.
type Chain func(*Node) (*Node, error)

// Expect proposes a node of the given kind and text as a continuation of n.
//
// The candidate is positioned after the text n consumed, validated against
// its kind's pattern and handed to chain, which builds everything that must
// follow it. Only when chain succeeds does the candidate join n's
// continuations; any failure along the way leaves n exactly as it was.
func Expect(n *Node, kind NodeKind, text string, chain Chain) (*Node, error) {
	if _, err := Validate(kind, text); err != nil {
		return nil, err
	}
	candidate := &Node{Kind: kind, Text: text, Pos: NextPosition(n.Pos, n.Text)}
	if _, err := chain(candidate); err != nil {
		return nil, err
	}
	n.Continuations = append(n.Continuations, candidate)
	return n, nil
}

// ExpectKeyword proposes the fixed literal text as the node following n.
func ExpectKeyword(n *Node, text string, chain Chain) (*Node, error) {
	return Expect(n, KindKeyword, text, chain)
}
