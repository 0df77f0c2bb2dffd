// Package db manages the SQLite connections that generated schemas are
// applied to.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteClient manages a connection to a SQLite database.
type SQLiteClient struct {
	db *sql.DB
}

// NewSQLiteClient opens the SQLite database at path, creating it if it
// does not exist. Foreign key enforcement is enabled when requested so
// that ON DELETE CASCADE clauses in the generated schema take effect.
func NewSQLiteClient(ctx context.Context, path string, foreignKeys bool) (*SQLiteClient, error) {
	dsn := path
	if foreignKeys {
		dsn += "?_foreign_keys=on"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteClient{db: db}, nil
}

// Close closes the database connection
func (c *SQLiteClient) Close() error {
	return c.db.Close()
}

// GetDB returns the underlying database connection
func (c *SQLiteClient) GetDB() *sql.DB {
	return c.db
}
