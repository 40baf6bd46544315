package store

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// NewDB opens a Postgres connection pool. sql.Open performs no I/O:
// connections are dialed lazily on first use and shared for the life of the
// process, so a mid-deploy database outage surfaces on the first insert
// rather than at boot.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
