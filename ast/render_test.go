package ast

import (
	"strings"
	"testing"
)

func TestRenderFunctionWithoutParameters(t *testing.T) {
	root, err := Function(Position{Column: 1}, "main", nil)
	if err != nil {
		t.Fatalf("Function failed: %v", err)
	}

	want := strings.Join([]string{
		`├─ Keyword "func"`,
		`   ├─ Spacing`,
		`      ├─ Identifier "main"`,
		`         ├─ Keyword "("`,
		`            ├─ Keyword ")"`,
		`               ├─ Keyword ":"`,
		``,
	}, "\n")
	if got := Render(root); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderLabels(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"identifier carries its literal", &Node{Kind: KindIdentifier, Text: "main"}, "├─ Identifier \"main\"\n"},
		{"whitespace literal is omitted", &Node{Kind: KindSpacing, Text: " "}, "├─ Spacing\n"},
		{"newline literal is omitted", &Node{Kind: KindNewline, Text: Newline}, "├─ Newline\n"},
		{"separator carries its literal", &Node{Kind: KindListSeparator, Text: ", "}, "├─ ListSeparator \", \"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// An end marker terminates the whole render; siblings declared after it do
// not appear.
func TestRenderStopsAtProductionEnd(t *testing.T) {
	n := &Node{Kind: KindIdentifier, Text: "main"}
	if _, err := Leaf(n); err != nil {
		t.Fatalf("Leaf failed: %v", err)
	}
	n.Continuations = append(n.Continuations, &Node{Kind: KindIdentifier, Text: "hidden"})

	got := Render(n)
	if strings.Contains(got, "hidden") {
		t.Errorf("sibling after the end marker was rendered:\n%s", got)
	}
}
