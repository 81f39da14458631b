package format

import (
	"encoding/json"
	"io"

	"github.com/helena-lang/helena/ast"
)

// ASTJSONEncoder writes a node tree as indented JSON. End-of-production
// markers appear as null entries so the continuation order survives the
// round trip.
type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node *ast.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = e.w.Write([]byte("\n"))
	return err
}

func (e *ASTJSONEncoder) MarshalText(node *ast.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type astJSONNode struct {
	Kind          string         `json:"kind"`
	Text          string         `json:"text"`
	Column        uint32         `json:"column"`
	Row           uint32         `json:"row"`
	Continuations []*astJSONNode `json:"continuations,omitempty"`
}

func nodeToJSON(n *ast.Node) *astJSONNode {
	jn := &astJSONNode{
		Kind:   n.Kind.String(),
		Text:   n.Text,
		Column: n.Pos.Column,
		Row:    n.Pos.Row,
	}
	for _, c := range n.Continuations {
		if c == nil {
			jn.Continuations = append(jn.Continuations, nil)
			continue
		}
		jn.Continuations = append(jn.Continuations, nodeToJSON(c))
	}
	return jn
}
