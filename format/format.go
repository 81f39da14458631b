package format

import "github.com/helena-lang/helena/ast"

// Encoder writes one representation of a node tree.
type Encoder interface {
	Encode(node *ast.Node) error
}
