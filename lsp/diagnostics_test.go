package lsp

import (
	"testing"

	"github.com/helena-lang/helena/ast"
)

func TestDiagnoseCleanSource(t *testing.T) {
	diagnostics := Diagnose("func main():", ast.DefaultConfig())
	if diagnostics == nil {
		t.Fatal("clean parse returned a nil slice")
	}
	if len(diagnostics) != 0 {
		t.Errorf("got %d diagnostics, want 0: %+v", len(diagnostics), diagnostics)
	}
}

func TestDiagnoseReportsMismatch(t *testing.T) {
	diagnostics := Diagnose("func ():", ast.DefaultConfig())
	if len(diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diagnostics))
	}

	d := diagnostics[0]
	if d.Message != "Expected an identifier." {
		t.Errorf("got message %q", d.Message)
	}
	if d.Range.End.Character != uint32(len("func ():")) {
		t.Errorf("diagnostic ends at character %d, want %d", d.Range.End.Character, len("func ():"))
	}
}

func TestDiagnoseHonorsCaps(t *testing.T) {
	generator := ast.DefaultConfig()
	generator.MaxLeafing[ast.RuleNewline] = 0

	if diagnostics := Diagnose(ast.Newline, generator); len(diagnostics) != 1 {
		t.Errorf("got %d diagnostics, want 1", len(diagnostics))
	}
}
