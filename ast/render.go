package ast

import (
	"fmt"
	"strings"
)

// Render formats the tree rooted at root as an indented ASCII tree, one
// line per node with three spaces of indent per depth level.
func Render(root *Node) string {
	var b strings.Builder
	renderNode(&b, root, 0)
	return b.String()
}

// renderNode reports whether a production end was reached. An end marker
// terminates the whole render, not just its own sibling list; downstream
// tooling reads the output and relies on it staying that way.
func renderNode(b *strings.Builder, n *Node, depth int) bool {
	b.WriteString(strings.Repeat(" ", depth*3))
	b.WriteString("├─ ")
	b.WriteString(label(n))
	b.WriteByte('\n')
	for _, c := range n.Continuations {
		if c == nil {
			return true
		}
		if renderNode(b, c, depth+1) {
			return true
		}
	}
	return false
}

// label disambiguates a node by its literal unless the literal repeats the
// kind name or is pure whitespace.
func label(n *Node) string {
	name := n.Kind.String()
	if name == n.Text || strings.TrimSpace(n.Text) == "" {
		return name
	}
	return fmt.Sprintf("%s %q", name, n.Text)
}
