// Package sqlite provides a SQLite-based implementation of
// ucd.IndexService.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait 5 seconds before failing on lock contention instead of
	// returning "database is locked" immediately.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS files (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			content_hash TEXT NOT NULL,
			loaded_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS codepoints (
			code INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			combining INTEGER NOT NULL DEFAULT 0,
			bidi TEXT NOT NULL,
			decomposition TEXT NOT NULL DEFAULT '',
			decimal_value INTEGER NOT NULL DEFAULT -1,
			digit_value INTEGER NOT NULL DEFAULT -1,
			numeric_value TEXT NOT NULL DEFAULT '',
			mirrored INTEGER NOT NULL DEFAULT 0,
			old_name TEXT NOT NULL DEFAULT '',
			iso_comment TEXT NOT NULL DEFAULT '',
			upper_code INTEGER NOT NULL DEFAULT 0,
			lower_code INTEGER NOT NULL DEFAULT 0,
			title_code INTEGER NOT NULL DEFAULT 0,
			file_id TEXT NOT NULL REFERENCES files(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_codepoints_category ON codepoints(category);
		CREATE INDEX IF NOT EXISTS idx_codepoints_name ON codepoints(name);

		CREATE TABLE IF NOT EXISTS blocks (
			lo INTEGER NOT NULL,
			hi INTEGER NOT NULL,
			name TEXT NOT NULL,
			file_id TEXT NOT NULL REFERENCES files(id) ON DELETE CASCADE,
			PRIMARY KEY (lo, hi)
		);
	`

	_, err := db.db.Exec(schema)
	return err
}
