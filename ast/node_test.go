package ast

import "testing"

func TestLeafIsIdempotent(t *testing.T) {
	n := &Node{Kind: KindIdentifier, Text: "main"}

	for i := 0; i < 2; i++ {
		if _, err := Leaf(n); err != nil {
			t.Fatalf("Leaf failed: %v", err)
		}
	}

	markers := 0
	for _, c := range n.Continuations {
		if c == nil {
			markers++
		}
	}
	if markers != 1 {
		t.Errorf("got %d end markers, want 1", markers)
	}
}

func TestCanEnd(t *testing.T) {
	n := &Node{Kind: KindKeyword, Text: ":"}
	if n.CanEnd() {
		t.Error("node without an end marker reports CanEnd")
	}
	if _, err := Leaf(n); err != nil {
		t.Fatalf("Leaf failed: %v", err)
	}
	if !n.CanEnd() {
		t.Error("node with an end marker reports !CanEnd")
	}
}

// Every node in a finished tree must either terminate the production or
// lead somewhere.
func TestFunctionTreeHasNoDeadEnds(t *testing.T) {
	root, err := Function(Position{Column: 1}, "main", []ValueParameter{
		{TypeName: "string[]", Identifier: "args"},
	})
	if err != nil {
		t.Fatalf("Function failed: %v", err)
	}

	walk(root, func(n *Node) {
		if !n.CanEnd() && len(n.Continuations) == 0 {
			t.Errorf("node %v %q can neither end nor continue", n.Kind, n.Text)
		}
	})
}

// walk visits every node of the tree rooted at n in depth-first order.
func walk(n *Node, visit func(*Node)) {
	visit(n)
	for _, c := range n.Continuations {
		if c != nil {
			walk(c, visit)
		}
	}
}
