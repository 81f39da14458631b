package ast

import (
	"fmt"
	"regexp"
)

// Patterns are matched unanchored, like the original front end's: a kind
// accepts any text containing a match. That is why a type name such as
// "string[]" passes the identifier pattern.
var (
	identifierPattern = regexp.MustCompile(`[a-zA-Z0-9]+`)
	operationPattern  = regexp.MustCompile(`\w+`)
)

// UnmatchedPatternError reports that a node's text does not match the
// pattern required by its kind. It is the only error the engine produces.
type UnmatchedPatternError struct {
	// Pattern describes what the kind expected.
	Pattern string

	// Text is the offending text.
	Text string

	// Message, when non-empty, replaces the default rendering.
	Message string
}

func (e *UnmatchedPatternError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Textual representation of node (%q) does not match %q.", e.Text, e.Pattern)
}

// Validate classifies text against the pattern registered for kind,
// returning the text unchanged when it matches.
func Validate(kind NodeKind, text string) (string, error) {
	switch kind {
	case KindKeyword:
		// The concrete literal is fixed by the rule proposing the node;
		// here only emptiness can be rejected.
		if text == "" {
			return "", &UnmatchedPatternError{Pattern: "keyword", Text: text}
		}
		return text, nil
	case KindIdentifier:
		return ValidateIdentifier(text)
	case KindSpacing:
		return matchExact(" ", text)
	case KindNewline:
		return matchExact(Newline, text)
	case KindListSeparator:
		return matchExact(", ", text)
	case KindOperation:
		return matchPattern(operationPattern, text)
	}
	return "", &UnmatchedPatternError{Pattern: kind.String(), Text: text}
}

// ValidateIdentifier checks text against the identifier pattern. The empty
// text and the invalid-charset case carry distinct messages.
func ValidateIdentifier(text string) (string, error) {
	if text == "" {
		return "", &UnmatchedPatternError{Message: "Expected an identifier."}
	}
	if !identifierPattern.MatchString(text) {
		return "", &UnmatchedPatternError{
			Message: fmt.Sprintf("%s is invalid. An identifier can only contain letters A–Z and digits.", text),
		}
	}
	return text, nil
}

func matchExact(want, text string) (string, error) {
	if text != want {
		return "", &UnmatchedPatternError{Pattern: want, Text: text}
	}
	return text, nil
}

func matchPattern(pattern *regexp.Regexp, text string) (string, error) {
	if !pattern.MatchString(text) {
		return "", &UnmatchedPatternError{Pattern: pattern.String(), Text: text}
	}
	return text, nil
}
