package puzzle

/*

Board representation: nine 3x3 SubGrids tiled into a Grid.  Both
types are flat arrays, so assignment copies the whole board; the
solver leans on that for its backtracking snapshots.

*/

// A SubGrid is one of the nine non-overlapping 3x3 blocks of the
// board, stored row-major within the block.
type SubGrid [9]Cell

// cellAt returns the cell at block-local coordinates (r, c), each in 0..2.
func (s *SubGrid) cellAt(r, c int) *Cell {
	return &s[r*3+c]
}

// Solved reports whether every cell in the block is known.
func (s *SubGrid) Solved() bool {
	for _, c := range s {
		if !c.Known() {
			return false
		}
	}
	return true
}

// KnownMask returns the union of the candidate bits of the block's
// known cells: the digits already fixed somewhere in the block.
func (s *SubGrid) KnownMask() Cell {
	var m Cell
	for _, c := range s {
		if c.Known() {
			m |= c
		}
	}
	return m
}

// Valid reports whether the block can still be completed: no cell is
// out of candidates, no digit is fixed twice, and every digit remains
// reachable in some cell.
func (s *SubGrid) Valid() bool {
	var known, all Cell
	for _, c := range s {
		if !c.accumulate(&known, &all) {
			return false
		}
	}
	return all == AllCandidates
}

// A Grid is a full 9x9 board.  The zero Grid is not meaningful; use
// Parse or NewGrid.  Grids are values: assigning one snapshots all 81
// cells.
type Grid struct {
	subs [9]SubGrid
}

// NewGrid builds a grid from a 9x9 character matrix, row-major, with
// '1'..'9' for givens and '.' (or '0') for unknowns.  The characters
// are not validated; Parse is the checked entry point.
func NewGrid(board [9][9]byte) Grid {
	var g Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			*g.cellAt(r, c) = NewCell(board[r][c])
		}
	}
	return g
}

// cellAt returns the cell at board coordinates (r, c), each in 0..8.
func (g *Grid) cellAt(r, c int) *Cell {
	return g.subs[(r/3)*3+c/3].cellAt(r%3, c%3)
}

// CellAt returns the candidate set at board coordinates (r, c).
func (g *Grid) CellAt(r, c int) Cell {
	return *g.cellAt(r, c)
}

// rowKnownMask returns the digits fixed somewhere in row r.
func (g *Grid) rowKnownMask(r int) Cell {
	var m Cell
	for c := 0; c < 9; c++ {
		if cell := *g.cellAt(r, c); cell.Known() {
			m |= cell
		}
	}
	return m
}

// colKnownMask returns the digits fixed somewhere in column c.
func (g *Grid) colKnownMask(c int) Cell {
	var m Cell
	for r := 0; r < 9; r++ {
		if cell := *g.cellAt(r, c); cell.Known() {
			m |= cell
		}
	}
	return m
}

// Solved reports whether every cell on the board is known.
func (g *Grid) Solved() bool {
	for i := range g.subs {
		if !g.subs[i].Solved() {
			return false
		}
	}
	return true
}

// rowAndColValid checks row i and column i together: no empty
// candidate sets, no duplicated fixed digits, and all nine digits
// still reachable in each.  Requiring full coverage is stricter than
// just forbidding duplicates and prunes branches where a digit has
// been eliminated from a whole house.
func (g *Grid) rowAndColValid(i int) bool {
	var rowKnown, rowAll, colKnown, colAll Cell
	for j := 0; j < 9; j++ {
		if !g.cellAt(i, j).accumulate(&rowKnown, &rowAll) ||
			!g.cellAt(j, i).accumulate(&colKnown, &colAll) {
			return false
		}
	}
	return rowAll == AllCandidates && colAll == AllCandidates
}

// Valid reports whether the board can still be completed, checking
// each sub-grid, row, and column as per rowAndColValid.  An invalid
// board is a dead search branch; the solver drops it.
func (g *Grid) Valid() bool {
	for i := 0; i < 9; i++ {
		if !g.subs[i].Valid() || !g.rowAndColValid(i) {
			return false
		}
	}
	return true
}

// IntersectConstraints narrows every unresolved cell against the
// digits already fixed in its row, column, and sub-grid, sweeping
// until a whole sweep changes nothing.  Each sweep precomputes the
// nine column masks once and each row mask once; newly fixed cells
// are picked up by the next sweep.  The result is a fixpoint:
// running it again is a no-op.
//
// Narrowing can empty a cell's candidate set; that is not detected
// here but by a Valid call afterwards.
func (g *Grid) IntersectConstraints() {
	for changed := true; changed; {
		changed = false
		var colMasks [9]Cell
		for c := 0; c < 9; c++ {
			colMasks[c] = ^g.colKnownMask(c) & AllCandidates
		}
		for r := 0; r < 9; r++ {
			rowMask := ^g.rowKnownMask(r) & AllCandidates
			for c := 0; c < 9; c++ {
				sub := &g.subs[(r/3)*3+c/3]
				cell := sub.cellAt(r%3, c%3)
				if cell.Known() {
					continue
				}
				old := *cell
				*cell &^= sub.KnownMask()
				*cell &= rowMask
				*cell &= colMasks[c]
				if *cell != old {
					changed = true
				}
			}
		}
	}
}
