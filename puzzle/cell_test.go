package puzzle

import (
	"testing"
)

/*

cell basics

*/

func TestNewCell(t *testing.T) {
	if c := NewCell('.'); c != AllCandidates {
		t.Errorf("NewCell('.') = %09b, want all candidates", c)
	}
	if c := NewCell('0'); c != AllCandidates {
		t.Errorf("NewCell('0') = %09b, want all candidates", c)
	}
	for d := 1; d <= 9; d++ {
		c := NewCell(byte('0' + d))
		if !c.Known() || !c.Is(d) {
			t.Errorf("NewCell('%d') = %09b, want known cell for %d", d, c, d)
		}
		if got := c.Char(); got != byte('0'+d) {
			t.Errorf("NewCell('%d').Char() = %q", d, got)
		}
	}
}

func TestKnown(t *testing.T) {
	if Cell(0).Known() {
		t.Errorf("empty candidate set counts as known")
	}
	if AllCandidates.Known() {
		t.Errorf("unconstrained cell counts as known")
	}
	if !Cell(1 << 4).Known() {
		t.Errorf("single candidate not recognized as known")
	}
	if Cell(1<<4 | 1<<7).Known() {
		t.Errorf("two candidates recognized as known")
	}
}

func TestCharUnresolved(t *testing.T) {
	if got := Cell(1<<2 | 1<<5).Char(); got != '.' {
		t.Errorf("unresolved cell prints %q, want '.'", got)
	}
	if got := Cell(0).Char(); got != '.' {
		t.Errorf("contradictory cell prints %q, want '.'", got)
	}
}

func TestContains(t *testing.T) {
	c := Cell(1<<0 | 1<<3 | 1<<5) // digits 1, 4, 6
	for d := 1; d <= 9; d++ {
		want := d == 1 || d == 4 || d == 6
		if got := c.Contains(d); got != want {
			t.Errorf("Contains(%d) = %v, want %v", d, got, want)
		}
	}
}

/*

splitting

Split is checked over every possible unresolved candidate set, since
the search tree shape (and hence the solution enumeration order)
depends on all of them.

*/

func TestSplitAllCells(t *testing.T) {
	for bits := Cell(1); bits <= AllCandidates; bits++ {
		n := bits.NumCandidates()
		if n < 2 {
			continue
		}
		left, right := bits.Split()
		if left == 0 || right == 0 {
			t.Fatalf("Split(%09b) produced an empty half: %09b / %09b", bits, left, right)
		}
		if left|right != bits {
			t.Fatalf("Split(%09b) halves %09b / %09b don't cover the input", bits, left, right)
		}
		if left&right != 0 {
			t.Fatalf("Split(%09b) halves %09b / %09b overlap", bits, left, right)
		}
		if want := (n + 1) / 2; left.NumCandidates() != want {
			t.Fatalf("Split(%09b) left half has %d candidates, want %d",
				bits, left.NumCandidates(), want)
		}
		// the left half takes the low digits
		var maxLeft, minRight int
		for d := 1; d <= 9; d++ {
			if left.Contains(d) {
				maxLeft = d
			}
			if right.Contains(d) && minRight == 0 {
				minRight = d
			}
		}
		if maxLeft >= minRight {
			t.Fatalf("Split(%09b) halves %09b / %09b aren't ordered", bits, left, right)
		}
	}
}

func TestSplitExample(t *testing.T) {
	c := Cell(1<<0 | 1<<3 | 1<<5) // digits 1, 4, 6
	left, right := c.Split()
	if want := Cell(1<<0 | 1<<3); left != want {
		t.Errorf("left half = %09b, want %09b", left, want)
	}
	if want := Cell(1 << 5); right != want {
		t.Errorf("right half = %09b, want %09b", right, want)
	}
}
