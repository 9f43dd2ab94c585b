package token

import "fmt"

// Position is a line/column coordinate in source text. Lines are 1-based,
// columns are 0-based; the column resets to 0 when a newline is consumed.
type Position struct {
	Line   int
	Column int
}

// NewPosition returns the position of the start of a source string.
func NewPosition() Position {
	return Position{Line: 1, Column: 0}
}

// NoPosition is the position carried by an invalid/default token.
func NoPosition() Position {
	return Position{Line: -1, Column: -1}
}

// Advance mutates the position for one consumed character.
func (p *Position) Advance(ch byte) {
	if ch == '\n' {
		p.Line++
		p.Column = 0
	} else {
		p.Column++
	}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
