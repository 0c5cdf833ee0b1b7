// Package puzzle provides a model for standard 9x9 Sudoku boards
// and a solver that enumerates their completions.
//
// Each of the 81 positions on a board is a Cell: a 9-bit candidate
// set in which bit i (0-based) is set when digit i+1 can still be
// placed there.  A cell with exactly one candidate is known; a cell
// with no candidates marks a contradiction.  Boards are made of nine
// 3x3 SubGrids assembled into a Grid, and the solver alternates
// constraint narrowing on the Grid with candidate-set bisection on
// the most constrained cell, backtracking over whole-Grid snapshots
// kept on an explicit stack.
//
// The core is synchronous and allocation-light: a Grid is a flat
// fixed-size value, so snapshots are plain assignments.
package puzzle

import (
	"math/bits"
)

// A Cell is the candidate set for one board position.  Only the low
// nine bits are ever set: bit d-1 means digit d is still possible.
type Cell uint16

// AllCandidates is the candidate set of an empty, unconstrained cell.
const AllCandidates Cell = 1<<9 - 1

// NewCell makes a cell from its board character: '.' (or '0') gives
// an unconstrained cell, '1'..'9' a known one.  Other characters are
// the caller's problem; Parse rejects them before they get here.
func NewCell(c byte) Cell {
	if c == '.' || c == '0' {
		return AllCandidates
	}
	return 1 << (c - '1')
}

// Contains reports whether digit d (1..9) is still a candidate.
func (c Cell) Contains(d int) bool {
	return c&(1<<(d-1)) != 0
}

// Is reports whether the cell is known to be exactly digit d.
func (c Cell) Is(d int) bool {
	return c == 1<<(d-1)
}

// Known reports whether the cell has exactly one candidate left.
func (c Cell) Known() bool {
	return c != 0 && c&(c-1) == 0
}

// NumCandidates counts the digits still possible in the cell.
func (c Cell) NumCandidates() int {
	return bits.OnesCount16(uint16(c))
}

// Char returns the cell's board character: its digit if known,
// '.' otherwise.
func (c Cell) Char() byte {
	if c.Known() {
		return '1' + byte(bits.TrailingZeros16(uint16(c)))
	}
	return '.'
}

// Split bisects an unresolved cell's candidate set into two disjoint
// halves covering the original: the lowest ceil(n/2) digits on the
// left, the rest on the right.  For instance {1,4,6} splits into
// {1,4} and {6}.  The ascending-digit order is load-bearing: it fixes
// the shape of the search tree and hence the enumeration order of
// solutions.  Callers must ensure NumCandidates() >= 2.
func (c Cell) Split() (left, right Cell) {
	n := (c.NumCandidates() + 1) / 2
	for d := 1; n > 0; d++ {
		if c.Contains(d) {
			left |= 1 << (d - 1)
			n--
		}
	}
	right = c &^ left
	return left, right
}

// accumulate folds the cell into a house's running validity state:
// known collects the digits already fixed in the house, all the
// digits reachable anywhere in it.  It returns false when the cell is
// empty of candidates or duplicates a digit already fixed elsewhere
// in the house.
func (c Cell) accumulate(known, all *Cell) bool {
	if c == 0 {
		return false
	}
	if c.Known() {
		if *known&c != 0 {
			return false
		}
		*known |= c
	}
	*all |= c
	return true
}
