// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database dialects.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// ErrStorageUnavailable indicates the data store cannot be reached at all.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Open opens a connection for the given dialect, verifies it, and brings
// the schema up to the latest version.
func Open(databaseURL, dialect string) (*sql.DB, error) {
	if dialect != DialectSQLite && dialect != DialectPostgres {
		return nil, fmt.Errorf("unsupported database type %q", dialect)
	}

	driver := "sqlite"
	if dialect == DialectPostgres {
		driver = "postgres"
	}

	conn, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if dialect == DialectSQLite {
		// In-memory databases exist per connection; pin the pool to one.
		if strings.Contains(databaseURL, ":memory:") || strings.Contains(databaseURL, "mode=memory") {
			conn.SetMaxOpenConns(1)
		}
		if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("setting journal mode: %w", err)
		}
		if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("enabling foreign keys: %w", err)
		}
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if err := Migrate(conn, dialect); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return conn, nil
}
