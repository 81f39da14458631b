package ast

// MaxRow bounds the in-line offset tracked for a node. Offsets past the
// bound collapse to it rather than keep counting.
const MaxRow = 100

// Position locates a node in the source file.
type Position struct {
	// Column is the 1-based number of the line the node starts on.
	Column uint32

	// Row is the character offset of the node within its line, capped at
	// MaxRow.
	Row uint32
}

// NextPosition computes where the node that follows one at current begins,
// given the text the current node consumed.
//
// The column branch is reproduced exactly as the original front end
// computes it: with non-empty consumed text nextRow can never come back to
// zero, so the increment only fires for an empty text on a line start.
// Callers depend on this arithmetic staying put.
func NextPosition(current Position, consumed string) Position {
	row := current.Row + uint32(len(consumed))
	if row > MaxRow {
		row = MaxRow
	}
	column := current.Column
	if current.Column > 0 && row == 0 {
		column = current.Column + 1
	}
	return Position{Column: column, Row: row}
}
