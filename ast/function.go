package ast

// ValueParameter describes one parameter of a function declaration.
type ValueParameter struct {
	// TypeName is the type exactly as written, qualified or not.
	TypeName string

	// Identifier is the name given to the parameter.
	Identifier string
}

// Function builds the node chain of a single-line function declaration: the
// "func" keyword, a space, the function's name and a parenthesized,
// comma-separated list of typed parameters, closed by the ":" scope
// delimiter. The returned node is the "func" keyword at the head of the
// chain.
func Function(at Position, name string, params []ValueParameter) (*Node, error) {
	fn := &Node{Kind: KindKeyword, Text: "func", Pos: at}
	_, err := ExpectSpacing(fn, func(n *Node) (*Node, error) {
		return ExpectIdentifier(n, name, func(n *Node) (*Node, error) {
			return ExpectKeyword(n, "(", func(n *Node) (*Node, error) {
				return expectValueParameters(n, params)
			})
		})
	})
	if err != nil {
		return nil, err
	}
	return fn, nil
}

// expectValueParameters chains params onto the opening parenthesis. The
// fold runs right to left: the seed expects the closing parenthesis and the
// scope delimiter, the last parameter connects to that seed directly, and
// every earlier parameter reaches the next one through a list separator.
func expectValueParameters(open *Node, params []ValueParameter) (*Node, error) {
	chain := func(n *Node) (*Node, error) {
		return ExpectKeyword(n, ")", func(n *Node) (*Node, error) {
			return ExpectKeyword(n, ":", Leaf)
		})
	}
	for i := len(params) - 1; i >= 0; i-- {
		param, next, last := params[i], chain, i == len(params)-1
		chain = func(n *Node) (*Node, error) {
			return ExpectIdentifier(n, param.TypeName, func(n *Node) (*Node, error) {
				return ExpectSpacing(n, func(n *Node) (*Node, error) {
					return ExpectIdentifier(n, param.Identifier, func(n *Node) (*Node, error) {
						if last {
							return next(n)
						}
						return ExpectListSeparator(n, next)
					})
				})
			})
		}
	}
	return chain(open)
}
