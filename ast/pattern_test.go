package ast

import "testing"

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr string
	}{
		{"empty", "", "Expected an identifier."},
		{"plain", "main", ""},
		{"digits", "x1", ""},
		{"array type", "string[]", ""},
		{"no letters or digits", "?!", "?! is invalid. An identifier can only contain letters A–Z and digits."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateIdentifier(tt.text)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateIdentifier(%q) failed: %v", tt.text, err)
				}
				if got != tt.text {
					t.Errorf("got %q, want %q", got, tt.text)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateIdentifier(%q) succeeded, want error", tt.text)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("got message %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		kind    NodeKind
		text    string
		matches bool
	}{
		{"keyword", KindKeyword, "func", true},
		{"empty keyword", KindKeyword, "", false},
		{"spacing", KindSpacing, " ", true},
		{"two spaces", KindSpacing, "  ", false},
		{"tab", KindSpacing, "\t", false},
		{"newline", KindNewline, Newline, true},
		{"not a newline", KindNewline, "x", false},
		{"list separator", KindListSeparator, ", ", true},
		{"bare comma", KindListSeparator, ",", false},
		{"operation", KindOperation, "doSomething", true},
		{"empty operation", KindOperation, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.kind, tt.text)
			if tt.matches && err != nil {
				t.Errorf("Validate(%v, %q) failed: %v", tt.kind, tt.text, err)
			}
			if !tt.matches && err == nil {
				t.Errorf("Validate(%v, %q) succeeded, want mismatch", tt.kind, tt.text)
			}
		})
	}
}

func TestUnmatchedPatternErrorMessage(t *testing.T) {
	err := &UnmatchedPatternError{Pattern: ", ", Text: ","}
	want := `Textual representation of node (",") does not match ", ".`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
