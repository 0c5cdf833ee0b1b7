// Package storage persists puzzles and their solutions.
//
// Two backends cooperate: a Redis cache holds solution lists keyed by
// board signature so repeated solve requests are served without
// searching, and a Postgres database keeps the puzzles and their
// solutions durably.  Both are configured from the environment and
// both are optional at the application level: the solver itself never
// touches this package.
package storage

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

// Connect dials the cache and the database and makes sure the schema
// is in place.  It returns the URLs it connected to, for logging.
func Connect() (cacheURL, databaseURL string, err error) {
	rdInit()
	rdMutex.Lock()
	defer rdMutex.Unlock()
	cacheURL, err = rdConnect()
	if err != nil {
		return
	}

	pgInit()
	databaseURL, err = pgConnect()
	if err != nil {
		rdClose()
		return
	}
	if err = ensureSchema(); err != nil {
		err = fmt.Errorf("couldn't prepare database schema: %w", err)
		pgClose()
		rdClose()
	}
	return
}

// Close drops both connections.  Safe to call after a failed Connect.
func Close() {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	pgClose()
	rdClose()
}

/*

cache using Redis

*/

// Redis connection data
var (
	rdc     redis.Conn // open connection, if any
	rdURL   string     // URL for the open connection
	rdMutex sync.Mutex // prevent concurrent connection use
)

// rdInit - look up Redis info from the environment
func rdInit() {
	if url := os.Getenv("REDIS_URL"); url != "" {
		rdURL = url
	} else {
		rdURL = "redis://localhost:6379/"
	}
}

// rdConnect: connect to the configured Redis URL.  Returns the URL
// connected to, or an error.
func rdConnect() (string, error) {
	conn, err := redis.DialURL(rdURL)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to cache at %q: %w", rdURL, err)
	}
	rdc = conn
	return rdURL, nil
}

// rdClose: close the Redis connection, if open.
func rdClose() {
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

// rdExecute: run the body with the Redis connection, under the
// connection mutex.  Redis connections can go away without warning,
// so the connection is pinged first and redialed if dead.
func rdExecute(body func(conn redis.Conn) error) error {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	if rdc == nil {
		return fmt.Errorf("cache is not connected")
	}
	if _, err := rdc.Do("PING"); err != nil {
		logrus.WithError(err).Warn("cache connection lost, redialing")
		rdClose()
		if _, err := rdConnect(); err != nil {
			return err
		}
	}
	return body(rdc)
}

/*

persistence using Postgres

*/

// Postgres connection data
var (
	pgConn  *pgx.Conn  // open connection, if any
	pgURL   string     // URL for the open connection
	pgMutex sync.Mutex // prevent concurrent transaction use
)

// pgInit - look up Postgres info from the environment
func pgInit() {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		pgURL = url
	} else {
		pgURL = "postgres://localhost/sudoku?sslmode=disable"
	}
}

// pgConnect: open the Postgres database.  Returns the URL connected
// to, or an error.
func pgConnect() (string, error) {
	conn, err := pgx.Connect(context.Background(), pgURL)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to database at %q: %w", pgURL, err)
	}
	pgConn = conn
	return pgURL, nil
}

// pgClose: close the Postgres connection, if open.
func pgClose() {
	if pgConn != nil {
		pgConn.Close(context.Background())
		pgConn = nil
	}
}

// pgExecute: run the body inside a single transaction, rolling back
// if the body errs out and committing otherwise.
func pgExecute(body func(ctx context.Context, tx pgx.Tx) error) error {
	pgMutex.Lock()
	defer pgMutex.Unlock()
	if pgConn == nil {
		return fmt.Errorf("database is not connected")
	}
	ctx := context.Background()
	tx, err := pgConn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("couldn't open a transaction: %w", err)
	}
	if err := body(ctx, tx); err != nil {
		tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
