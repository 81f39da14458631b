// Package ast builds abstract syntax trees for Helena source text.
//
// # Overview
//
// The tree is made of typed tokens ("nodes"). Each node carries the literal
// source text it covers, the position that text starts at, and an ordered
// list of continuations describing which nodes may legally follow it. A nil
// continuation entry marks a point where the production may end.
//
// Trees grow through an expectation protocol: a grammar rule proposes each
// successor with Expect (or one of the kind-specific wrappers such as
// ExpectIdentifier), passing a Chain that builds everything after the
// candidate. The candidate only joins the tree once the whole remainder of
// the production validates; a pattern mismatch anywhere discards the
// candidate and leaves the already-built prefix untouched. There is no
// backtracking: a rule enumerates its alternatives explicitly inside the
// chain.
//
// # Example
//
//	roots, err := ast.Generate("func main(string[] args):", ast.DefaultConfig())
//	if err != nil {
//	    // one *UnmatchedPatternError, no partial tree
//	}
//	fmt.Print(ast.Render(roots[0]))
//
// # Errors
//
// The only error produced is *UnmatchedPatternError, raised when a
// candidate's text fails the pattern registered for its kind. Mismatches
// propagate unchanged through every enclosing Expect call; generation
// returns either every root or the first error.
//
// # Concurrency
//
// Construction is single-threaded and purely recursive. Nodes are owned
// exclusively by their parent, so finished trees may be read from any
// goroutine.
package ast
