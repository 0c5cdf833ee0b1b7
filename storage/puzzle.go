package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/sjanel/sudoku-solver/puzzle"
)

/*

stored puzzles

A puzzle is identified by its signature, a hash of its flat
81-character board, so the same board saved twice (under whatever
names) is one row.  Solutions are stored per signature in enumeration
order, and the full solution list is mirrored in the cache keyed by
"PZL:<signature>:solutions".

*/

// Signature returns the storage identity of a board: the hex SHA-256
// of its flat 81-character form.
func Signature(board string) string {
	sum := sha256.Sum256([]byte(board))
	return hex.EncodeToString(sum[:])
}

// A PuzzleInfo is the stored form of a puzzle.
type PuzzleInfo struct {
	Signature string    // hash identity of the board
	Name      string    // user-facing name, may be empty
	Board     string    // flat 81-character board
	Givens    int       // number of known cells in the board
	Created   time.Time // when the puzzle was first saved
}

// SavePuzzle stores a board under an optional name and returns its
// signature.  Saving the same board again is a no-op, except that a
// non-empty name fills in a missing one.
func SavePuzzle(name string, g *puzzle.Grid) (string, error) {
	board := g.Line()
	sig := Signature(board)
	err := pgExecute(func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO puzzles (signature, name, board, givens) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (signature) DO UPDATE SET name = excluded.name
			 WHERE puzzles.name = '' AND excluded.name <> ''`,
			sig, name, board, g.NumGivens())
		return err
	})
	if err != nil {
		return "", fmt.Errorf("couldn't save puzzle %q: %w", sig, err)
	}
	return sig, nil
}

// LoadPuzzle fetches a stored puzzle by signature, checking the cache
// before the database and back-filling the cache on a miss.  A puzzle
// that was never saved comes back as pgx.ErrNoRows.
func LoadPuzzle(signature string) (*PuzzleInfo, error) {
	if pi := cacheLoadPuzzle(signature); pi != nil {
		return pi, nil
	}
	pi := &PuzzleInfo{Signature: signature}
	err := pgExecute(func(ctx context.Context, tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			"SELECT name, board, givens, created FROM puzzles WHERE signature = $1",
			signature)
		return row.Scan(&pi.Name, &pi.Board, &pi.Givens, &pi.Created)
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't load puzzle %q: %w", signature, err)
	}
	cacheInsertPuzzle(pi)
	return pi, nil
}

// ListPuzzles returns every stored puzzle, oldest first.
func ListPuzzles() ([]PuzzleInfo, error) {
	var infos []PuzzleInfo
	err := pgExecute(func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			"SELECT signature, name, board, givens, created FROM puzzles ORDER BY created, signature")
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var pi PuzzleInfo
			if err := rows.Scan(&pi.Signature, &pi.Name, &pi.Board, &pi.Givens, &pi.Created); err != nil {
				return err
			}
			infos = append(infos, pi)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't list puzzles: %w", err)
	}
	return infos, nil
}

// puzzleKey: cache key for a stored puzzle.
func puzzleKey(signature string) string {
	return "PZL:" + signature
}

// cacheLoadPuzzle: fetch a puzzle entry from the cache, or nil.
// Cache trouble is logged and treated as a miss.
func cacheLoadPuzzle(signature string) *PuzzleInfo {
	var bytes []byte
	err := rdExecute(func(conn redis.Conn) (err error) {
		bytes, err = redis.Bytes(conn.Do("GET", puzzleKey(signature)))
		if err == redis.ErrNil {
			return nil
		}
		return err
	})
	if err != nil {
		logrus.WithError(err).WithField("signature", signature).
			Warn("cache failure loading puzzle")
		return nil
	}
	if len(bytes) == 0 {
		return nil
	}
	var pi PuzzleInfo
	if err := json.Unmarshal(bytes, &pi); err != nil {
		logrus.WithError(err).WithField("signature", signature).
			Warn("dropping undecodable cached puzzle")
		return nil
	}
	return &pi
}

// cacheInsertPuzzle: put a puzzle entry into the cache, replacing any
// entry with the same signature.  Best effort.
func cacheInsertPuzzle(pi *PuzzleInfo) {
	bytes, err := json.Marshal(pi)
	if err == nil {
		err = rdExecute(func(conn redis.Conn) error {
			_, err := conn.Do("SET", puzzleKey(pi.Signature), bytes)
			return err
		})
	}
	if err != nil {
		logrus.WithError(err).WithField("signature", pi.Signature).
			Warn("cache failure saving puzzle")
	}
}

/*

stored solutions

*/

// SaveSolutions stores the solution list of an already-saved puzzle,
// replacing whatever list was there.  Boards are flat 81-character
// strings in enumeration order.
func SaveSolutions(signature string, boards []string) error {
	err := pgExecute(func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			"DELETE FROM solutions WHERE signature = $1", signature); err != nil {
			return err
		}
		for i, board := range boards {
			if _, err := tx.Exec(ctx,
				"INSERT INTO solutions (signature, ordinal, board) VALUES ($1, $2, $3)",
				signature, i, board); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("couldn't save solutions for %q: %w", signature, err)
	}
	return nil
}

// LoadSolutions returns the stored solution list of a puzzle, in
// enumeration order.  A puzzle with no stored solutions yields an
// empty list, not an error.
func LoadSolutions(signature string) ([]string, error) {
	var boards []string
	err := pgExecute(func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			"SELECT board FROM solutions WHERE signature = $1 ORDER BY ordinal", signature)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var board string
			if err := rows.Scan(&board); err != nil {
				return err
			}
			boards = append(boards, board)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't load solutions for %q: %w", signature, err)
	}
	return boards, nil
}

// solutionsKey: cache key for a puzzle's solution list.
func solutionsKey(signature string) string {
	return puzzleKey(signature) + ":solutions"
}

// CachedSolutions returns the cached solution list for a board, if
// there is one.  Cache trouble is logged and treated as a miss.
func CachedSolutions(board string) ([]string, bool) {
	sig := Signature(board)
	var bytes []byte
	err := rdExecute(func(conn redis.Conn) (err error) {
		bytes, err = redis.Bytes(conn.Do("GET", solutionsKey(sig)))
		if err == redis.ErrNil {
			return nil
		}
		return err
	})
	if err != nil {
		logrus.WithError(err).WithField("signature", sig).
			Warn("cache failure loading solutions")
		return nil, false
	}
	if bytes == nil {
		return nil, false
	}
	var boards []string
	if err := json.Unmarshal(bytes, &boards); err != nil {
		logrus.WithError(err).WithField("signature", sig).
			Warn("dropping undecodable cached solutions")
		return nil, false
	}
	return boards, true
}

// CacheSolutions stores the solution list for a board in the cache.
// Best effort: failures are logged, not returned.
func CacheSolutions(board string, boards []string) {
	sig := Signature(board)
	bytes, err := json.Marshal(boards)
	if err == nil {
		err = rdExecute(func(conn redis.Conn) error {
			_, err := conn.Do("SET", solutionsKey(sig), bytes)
			return err
		})
	}
	if err != nil {
		logrus.WithError(err).WithField("signature", sig).
			Warn("cache failure saving solutions")
	}
}

/*

solver cache adapter

*/

// A Cache adapts this package to the solver service's cache
// interface.  Get serves from Redis; Put writes through to Redis and
// also persists the puzzle and its solutions in the database, so that
// everything the service solves survives a cache flush.
type Cache struct{}

// Get implements puzzle.SolutionCache.
func (Cache) Get(board string) ([]string, bool) {
	return CachedSolutions(board)
}

// Put implements puzzle.SolutionCache.
func (Cache) Put(board string, boards []string) {
	CacheSolutions(board, boards)
	g, err := puzzle.Parse(board)
	if err != nil {
		logrus.WithError(err).Warn("unparseable board reached the solution cache")
		return
	}
	sig, err := SavePuzzle("", &g)
	if err == nil {
		err = SaveSolutions(sig, boards)
	}
	if err != nil {
		logrus.WithError(err).Warn("couldn't persist solved puzzle")
	}
}
