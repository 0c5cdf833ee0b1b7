package storage

import (
	"os"
	"reflect"
	"testing"

	"github.com/sjanel/sudoku-solver/puzzle"
)

/*

setup

These tests need a live Redis and Postgres, located the same way the
server locates them (REDIS_URL and DATABASE_URL).  When neither is
reachable the storage tests are skipped, so the rest of the module
tests cleanly on a bare machine.

*/

var connected bool

func TestMain(m *testing.M) {
	if _, _, err := Connect(); err == nil {
		connected = true
	}
	code := m.Run()
	if connected {
		Close()
	}
	os.Exit(code)
}

func requireStorage(t *testing.T) {
	t.Helper()
	if !connected {
		t.Skip("storage backends not reachable")
	}
}

/*

known-good boards

*/

const (
	easyBoard = "53..7...." +
		"6..195..." +
		".98....6." +
		"8...6...3" +
		"4..8.3..1" +
		"7...2...6" +
		".6....28." +
		"...419..5" +
		"....8..79"
	easySolution = "534678912" +
		"672195348" +
		"198342567" +
		"859761423" +
		"426853791" +
		"713924856" +
		"961537284" +
		"287419635" +
		"345286179"
)

/*

tests

*/

func TestSignatureStable(t *testing.T) {
	// pure function; no backends needed
	sig := Signature(easyBoard)
	if len(sig) != 64 {
		t.Errorf("signature length %d, want 64 hex chars", len(sig))
	}
	if sig != Signature(easyBoard) {
		t.Errorf("signature of the same board differs between calls")
	}
	if sig == Signature(easySolution) {
		t.Errorf("different boards share a signature")
	}
}

func TestSaveLoadPuzzle(t *testing.T) {
	requireStorage(t)
	g, err := puzzle.Parse(easyBoard)
	if err != nil {
		t.Fatalf("parse failure on known-good board: %v", err)
	}
	sig, err := SavePuzzle("easy", &g)
	if err != nil {
		t.Fatalf("save failure: %v", err)
	}
	if sig != Signature(g.Line()) {
		t.Errorf("save returned signature %q, want %q", sig, Signature(g.Line()))
	}
	pi, err := LoadPuzzle(sig)
	if err != nil {
		t.Fatalf("load failure: %v", err)
	}
	if pi.Board != g.Line() {
		t.Errorf("loaded board %q, want %q", pi.Board, g.Line())
	}
	if pi.Givens != g.NumGivens() {
		t.Errorf("loaded givens %d, want %d", pi.Givens, g.NumGivens())
	}
	// saving again must not duplicate or fail
	if _, err := SavePuzzle("easy", &g); err != nil {
		t.Errorf("second save failure: %v", err)
	}
}

func TestSaveLoadSolutions(t *testing.T) {
	requireStorage(t)
	g, err := puzzle.Parse(easyBoard)
	if err != nil {
		t.Fatalf("parse failure on known-good board: %v", err)
	}
	sig, err := SavePuzzle("easy", &g)
	if err != nil {
		t.Fatalf("save failure: %v", err)
	}
	want := []string{easySolution}
	if err := SaveSolutions(sig, want); err != nil {
		t.Fatalf("solution save failure: %v", err)
	}
	got, err := LoadSolutions(sig)
	if err != nil {
		t.Fatalf("solution load failure: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("loaded solutions %v, want %v", got, want)
	}
	// replacing the list must not accumulate rows
	if err := SaveSolutions(sig, want); err != nil {
		t.Fatalf("solution re-save failure: %v", err)
	}
	if got, _ := LoadSolutions(sig); len(got) != len(want) {
		t.Errorf("re-saved solution count %d, want %d", len(got), len(want))
	}
}

func TestCacheRoundTrip(t *testing.T) {
	requireStorage(t)
	var c Cache
	want := []string{easySolution}
	c.Put(easyBoard, want)
	got, ok := c.Get(easyBoard)
	if !ok {
		t.Fatalf("cache miss right after a put")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("cached solutions %v, want %v", got, want)
	}
	// the write-through must have persisted the puzzle too
	pi, err := LoadPuzzle(Signature(easyBoard))
	if err != nil {
		t.Fatalf("persisted puzzle missing after cache put: %v", err)
	}
	if pi.Board != easyBoard {
		t.Errorf("persisted board %q, want %q", pi.Board, easyBoard)
	}
}
