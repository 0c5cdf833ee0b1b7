package puzzle

import (
	"context"
)

/*

Sudoku board solver

The solver is a depth-first search over whole-board snapshots kept on
an explicit stack, so search depth is decoupled from call-stack depth
and a solution cap can stop the enumeration at any point.

Each iteration pops a board and narrows it to its constraint fixpoint.
A board that comes out fully known is a solution; a board that comes
out contradictory (an empty candidate set, a duplicated digit, or a
house that can no longer reach some digit) is dropped.  Otherwise the
unresolved cell with the fewest candidates is bisected into a low half
and a high half, and one snapshot per half is pushed.  The high half
is pushed last and therefore explored first.

Splitting candidate sets in halves rather than trying single digits
keeps the stack shallow on wide-open boards: a nine-candidate cell
costs at most four splits to pin down instead of eight siblings.

*/

// mostConstrained returns the coordinates of the unresolved cell with
// the fewest candidates, scanning row-major and keeping the first of
// any tie.  Two candidates is the floor for an unresolved cell, so
// the scan stops early when it finds one.  The board must have at
// least one unresolved cell.
func (g *Grid) mostConstrained() (row, col int) {
	lowest := 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if n := g.cellAt(r, c).NumCandidates(); n > 1 && n < lowest {
				row, col, lowest = r, c, n
				if n == 2 {
					return row, col
				}
			}
		}
	}
	return row, col
}

// generate pushes the two children of g onto the stack: copies of g
// with its most constrained cell replaced by each half of that cell's
// split.  The right (high-digit) half goes on top of the stack.
func (g *Grid) generate(stack *[]Grid) {
	r, c := g.mostConstrained()
	left, right := g.cellAt(r, c).Split()

	child := *g
	*child.cellAt(r, c) = left
	*stack = append(*stack, child)
	child = *g
	*child.cellAt(r, c) = right
	*stack = append(*stack, child)
}

// Solve enumerates the valid completions of the board, in a
// deterministic order, without modifying the receiver.  If
// maxSolutions is positive it caps the number of solutions returned;
// zero or negative means enumerate everything.  An unsolvable board
// yields an empty result.
func (g Grid) Solve(maxSolutions int) []Grid {
	return g.SolveContext(context.Background(), maxSolutions)
}

// SolveContext is Solve with cooperative cancellation: the context is
// checked before each board is taken up, and on cancellation the
// solutions accepted so far are returned.  Partial boards are never
// returned.
func (g Grid) SolveContext(ctx context.Context, maxSolutions int) []Grid {
	stack := []Grid{g}
	var solutions []Grid
	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return solutions
		default:
		}
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur.IntersectConstraints()
		if cur.Solved() {
			solutions = append(solutions, cur)
			// Decrement-then-compare, so a zero cap never trips it.
			maxSolutions--
			if maxSolutions == 0 {
				break
			}
			continue
		}
		if !cur.Valid() {
			continue
		}
		cur.generate(&stack)
	}
	return solutions
}
