package ast

import "testing"

func TestSingleTokenRules(t *testing.T) {
	at := Position{Column: 1, Row: 0}

	tests := []struct {
		name  string
		build func() (*Node, error)
		kind  NodeKind
		text  string
	}{
		{"identifier", func() (*Node, error) { return NewIdentifier(at, "main") }, KindIdentifier, "main"},
		{"spacing", func() (*Node, error) { return NewSpacing(at) }, KindSpacing, " "},
		{"newline", func() (*Node, error) { return NewNewline(at) }, KindNewline, Newline},
		{"list separator", func() (*Node, error) { return NewListSeparator(at) }, KindListSeparator, ", "},
		{"operation", func() (*Node, error) { return NewOperation(at, "print") }, KindOperation, "print"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.build()
			if err != nil {
				t.Fatalf("rule failed: %v", err)
			}
			if n.Kind != tt.kind || n.Text != tt.text {
				t.Errorf("built %v %q, want %v %q", n.Kind, n.Text, tt.kind, tt.text)
			}
			if !n.CanEnd() {
				t.Error("single-token rule is not leaf-capable")
			}
		})
	}
}

func TestSingleTokenRulesRejectInvalidText(t *testing.T) {
	at := Position{Column: 1, Row: 0}

	if _, err := NewIdentifier(at, ""); err == nil {
		t.Error("empty identifier accepted")
	}
	if _, err := NewOperation(at, ""); err == nil {
		t.Error("empty operation accepted")
	}
}
