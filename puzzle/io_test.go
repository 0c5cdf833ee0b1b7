package puzzle

import (
	"errors"
	"strings"
	"testing"
)

/*

parsing

*/

func TestParseRoundTrip(t *testing.T) {
	g := mustParse(t, easyBoard)
	if got := g.Line(); got != easyBoard {
		t.Errorf("parsed board exports as\n%s\nwant\n%s", got, easyBoard)
	}
}

func TestParseZeroForBlank(t *testing.T) {
	zeros := strings.ReplaceAll(easyBoard, ".", "0")
	if g := mustParse(t, zeros); g != mustParse(t, easyBoard) {
		t.Errorf("'0' blanks parse differently from '.' blanks")
	}
}

func TestParseLayoutCharacters(t *testing.T) {
	g := mustParse(t, easySolution)
	// the pretty-printed form must parse back to the same board
	if got := mustParse(t, g.String()); got != g {
		t.Errorf("pretty-printed board doesn't parse back to itself")
	}
	spaced := "  53..7.... 6..195...\n.98....6.\t8...6...3" +
		"4..8.3..17...2...6.6....28....419..5....8..79\n"
	if got := mustParse(t, spaced); got != mustParse(t, easyBoard) {
		t.Errorf("whitespace changed the parsed board")
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(easyBoard[:80]); !errors.Is(err, ErrBoardSize) {
		t.Errorf("80-cell board: got %v, want a size error", err)
	}
	if _, err := Parse(easyBoard + "5"); !errors.Is(err, ErrBoardSize) {
		t.Errorf("82-cell board: got %v, want a size error", err)
	}
	if _, err := Parse(""); !errors.Is(err, ErrBoardSize) {
		t.Errorf("empty input: got %v, want a size error", err)
	}
	if _, err := Parse("x" + easyBoard[1:]); !errors.Is(err, ErrBoardChar) {
		t.Errorf("bad cell character: got %v, want a character error", err)
	}
}

/*

output

*/

func TestString(t *testing.T) {
	g := mustParse(t, easySolution)
	want := "-------------\n" +
		"|534|678|912|\n" +
		"|672|195|348|\n" +
		"|198|342|567|\n" +
		"-------------\n" +
		"|859|761|423|\n" +
		"|426|853|791|\n" +
		"|713|924|856|\n" +
		"-------------\n" +
		"|961|537|284|\n" +
		"|287|419|635|\n" +
		"|345|286|179|\n" +
		"-------------\n"
	if got := g.String(); got != want {
		t.Errorf("pretty print:\n%s\nwant:\n%s", got, want)
	}
}

func TestStringBlanks(t *testing.T) {
	g := mustParse(t, emptyBoard)
	want := "-------------\n" +
		"|...|...|...|\n"
	if got := g.String(); !strings.HasPrefix(got, want) {
		t.Errorf("pretty print of an empty board starts with:\n%s", got)
	}
}

func TestBoard(t *testing.T) {
	g := mustParse(t, easyBoard)
	board := g.Board()
	if board[0][0] != '5' || board[0][1] != '3' || board[0][2] != '.' {
		t.Errorf("first row exports as %q", board[0])
	}
	if board[8][8] != '9' {
		t.Errorf("last cell exports as %q", board[8][8])
	}
}

func TestNumGivens(t *testing.T) {
	g := mustParse(t, easyBoard)
	if got := g.NumGivens(); got != 30 {
		t.Errorf("givens = %d, want 30", got)
	}
	g = mustParse(t, easySolution)
	if got := g.NumGivens(); got != 81 {
		t.Errorf("solved board givens = %d, want 81", got)
	}
	g = mustParse(t, emptyBoard)
	if got := g.NumGivens(); got != 0 {
		t.Errorf("empty board givens = %d, want 0", got)
	}
}
