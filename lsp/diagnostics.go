package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/helena-lang/helena/ast"
)

// Diagnose parses text and converts a generation failure into LSP
// diagnostics. A clean parse yields an empty, non-nil slice so clients
// clear stale diagnostics.
//
// Generation stops at the first mismatch and carries no position, so the
// diagnostic spans the first line of the document.
func Diagnose(text string, generator ast.Config) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	if _, err := ast.Generate(text, generator); err != nil {
		severity := protocol.DiagnosticSeverityError
		source := lsName
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 0, Character: uint32(firstLineLength(text))},
			},
			Severity: &severity,
			Source:   &source,
			Message:  err.Error(),
		})
	}

	return diagnostics
}

func firstLineLength(text string) int {
	if i := strings.Index(text, "\n"); i >= 0 {
		return i
	}
	return len(text)
}
