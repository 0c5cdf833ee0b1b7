package storage

import (
	"context"

	"github.com/jackc/pgx/v5"
)

/*

database schema

The schema is tiny and append-mostly, so it is bootstrapped in place
at connect time rather than through a migration tool.  Both
statements are idempotent.

*/

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS puzzles (
		signature text PRIMARY KEY,
		name      text NOT NULL DEFAULT '',
		board     char(81) NOT NULL,
		givens    integer NOT NULL,
		created   timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS solutions (
		signature text NOT NULL REFERENCES puzzles (signature),
		ordinal   integer NOT NULL,
		board     char(81) NOT NULL,
		PRIMARY KEY (signature, ordinal)
	)`,
}

// ensureSchema creates the tables if they aren't there yet.
func ensureSchema() error {
	return pgExecute(func(ctx context.Context, tx pgx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}
