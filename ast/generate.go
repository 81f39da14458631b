package ast

import (
	"fmt"
	"strings"
)

// RuleKind enumerates the rules the generator may apply at the top level of
// a source file.
type RuleKind int

const (
	RuleFunction RuleKind = iota
	RuleNewline
)

var ruleKindNames = map[RuleKind]string{
	RuleFunction: "Function",
	RuleNewline:  "Newline",
}

func (k RuleKind) String() string {
	if name, ok := ruleKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Config controls top-level generation. MaxLeafing caps how many times each
// rule may produce a standalone root node; a cap of zero means the rule may
// only appear nested inside another rule's continuations.
type Config struct {
	MaxLeafing map[RuleKind]int
}

// DefaultConfig allows up to a hundred top-level occurrences of each rule.
func DefaultConfig() Config {
	return Config{
		MaxLeafing: map[RuleKind]int{
			RuleFunction: 100,
			RuleNewline:  100,
		},
	}
}

// Generate builds the AST roots for source, applying every registered
// top-level rule at each unconsumed prefix. It returns either the full
// ordered sequence of roots or the first error; there is no partial result.
func Generate(source string, cfg Config) ([]*Node, error) {
	var roots []*Node
	counts := make(map[RuleKind]int)
	pos := Position{Column: 1}
	rest := source
	for rest != "" {
		if strings.HasPrefix(rest, Newline) {
			if err := countLeaf(cfg, counts, RuleNewline); err != nil {
				return nil, err
			}
			root, err := NewNewline(pos)
			if err != nil {
				return nil, err
			}
			roots = append(roots, root)
			rest = rest[len(Newline):]
			pos = Position{Column: pos.Column + 1}
			continue
		}

		decl, length, err := scanFunction(rest)
		if err != nil {
			return nil, err
		}
		if err := countLeaf(cfg, counts, RuleFunction); err != nil {
			return nil, err
		}
		root, err := Function(pos, decl.name, decl.params)
		if err != nil {
			return nil, err
		}
		roots = append(roots, root)
		pos = NextPosition(pos, rest[:length])
		rest = rest[length:]
	}
	return roots, nil
}

func countLeaf(cfg Config, counts map[RuleKind]int, kind RuleKind) error {
	counts[kind]++
	if counts[kind] > cfg.MaxLeafing[kind] {
		return &UnmatchedPatternError{
			Message: fmt.Sprintf("%s may appear at most %d times at the top level.", kind, cfg.MaxLeafing[kind]),
		}
	}
	return nil
}

type functionDecl struct {
	name   string
	params []ValueParameter
}

// scanFunction segments one single-line function declaration from the head
// of rest, returning its parts and the number of bytes it covers. It only
// slices the text; pattern validation stays with the rule that consumes the
// slices.
func scanFunction(rest string) (functionDecl, int, error) {
	line := rest
	if i := strings.Index(rest, Newline); i >= 0 {
		line = rest[:i]
	}

	const prefix = "func "
	if !strings.HasPrefix(line, prefix) {
		return functionDecl{}, 0, &UnmatchedPatternError{Pattern: prefix, Text: line}
	}
	open := strings.Index(line, "(")
	if open < 0 {
		return functionDecl{}, 0, &UnmatchedPatternError{Pattern: "(", Text: line}
	}
	closing := strings.Index(line, ")")
	if closing < open {
		return functionDecl{}, 0, &UnmatchedPatternError{Pattern: ")", Text: line}
	}
	if closing+1 >= len(line) || line[closing+1] != ':' {
		return functionDecl{}, 0, &UnmatchedPatternError{Pattern: ":", Text: line}
	}

	decl := functionDecl{name: line[len(prefix):open]}
	if list := line[open+1 : closing]; list != "" {
		for _, part := range strings.Split(list, ", ") {
			typeName, identifier, ok := strings.Cut(part, " ")
			if !ok {
				return functionDecl{}, 0, &UnmatchedPatternError{Pattern: "<type> <identifier>", Text: part}
			}
			decl.params = append(decl.params, ValueParameter{TypeName: typeName, Identifier: identifier})
		}
	}
	return decl, closing + 2, nil
}
