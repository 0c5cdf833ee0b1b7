package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

/*

Board input and output

Boards travel as 81 significant characters in row-major order:
'1'..'9' for givens, '.' or '0' for unknowns.  Layout characters
(spaces, newlines, '|' stack separators and '-' rules, as produced by
the pretty-printer) are ignored on input, so a pretty-printed board
parses back to itself.

*/

// Parse errors.  ErrBoardSize is wrapped with the count actually
// seen, ErrBoardChar with the offending character.
var (
	ErrBoardSize = errors.New("board must have 81 cells")
	ErrBoardChar = errors.New("board cells must be '1'..'9', '.' or '0'")
)

// Parse reads a board from its textual form.
func Parse(s string) (Grid, error) {
	var g Grid
	n := 0
	for _, r := range s {
		switch {
		case r >= '1' && r <= '9' || r == '.' || r == '0':
			if n == 81 {
				return Grid{}, fmt.Errorf("%w, got more", ErrBoardSize)
			}
			*g.cellAt(n/9, n%9) = NewCell(byte(r))
			n++
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '|' || r == '-':
			// layout only
		default:
			return Grid{}, fmt.Errorf("%w: %q", ErrBoardChar, r)
		}
	}
	if n != 81 {
		return Grid{}, fmt.Errorf("%w, got %d", ErrBoardSize, n)
	}
	return g, nil
}

// Board writes the grid into a 9x9 character matrix, row-major, using
// '1'..'9' for known cells and '.' for anything unresolved (which a
// solved board never contains).
func (g *Grid) Board() [9][9]byte {
	var board [9][9]byte
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			board[r][c] = g.cellAt(r, c).Char()
		}
	}
	return board
}

// Line returns the flat 81-character form of the board, the format
// used for storage and over the wire.
func (g *Grid) Line() string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			sb.WriteByte(g.cellAt(r, c).Char())
		}
	}
	return sb.String()
}

// String pretty-prints the board with a horizontal rule between bands
// and '|' between stacks:
//
//	-------------
//	|537|642|195|
//	...
func (g *Grid) String() string {
	const sep = "-------------\n"
	var sb strings.Builder
	sb.WriteString(sep)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c%3 == 0 {
				sb.WriteByte('|')
			}
			sb.WriteByte(g.cellAt(r, c).Char())
		}
		sb.WriteString("|\n")
		if r%3 == 2 {
			sb.WriteString(sep)
		}
	}
	return sb.String()
}

// NumGivens counts the known cells of the board.
func (g *Grid) NumGivens() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.cellAt(r, c).Known() {
				n++
			}
		}
	}
	return n
}
