package format

import (
	"io"

	"github.com/helena-lang/helena/ast"
)

// TreeEncoder writes the indented ASCII rendering of a node tree. The
// output is a diagnostic surface for humans, not a stable format.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(node *ast.Node) error {
	_, err := io.WriteString(e.w, ast.Render(node))
	return err
}
