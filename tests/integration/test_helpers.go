//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"

	"github.com/recordkit/sqlgen"
	"github.com/recordkit/sqlgen/column"
	"github.com/recordkit/sqlgen/internal/db"
)

// openTestDB opens an in-memory SQLite database with foreign key
// enforcement on and closes it when the test ends.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	client, err := db.NewSQLiteClient(context.Background(), ":memory:", true)
	if err != nil {
		t.Fatalf("Failed to connect to SQLite: %v", err)
	}
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Errorf("Failed to close SQLite connection: %v", err)
		}
	})

	// Every connection to :memory: is a separate database; keep the pool
	// on a single connection so all queries see the applied schema.
	conn := client.GetDB()
	conn.SetMaxOpenConns(1)
	return conn
}

// testRegistry registers an authors table and a posts table referencing
// it, with an index on the post title.
func testRegistry(t *testing.T) *sqlgen.Registry {
	t.Helper()

	authors := &sqlgen.Record{
		Name:  "Author",
		Table: "authors",
		Fields: []sqlgen.Field{
			{Column: &sqlgen.Column{Name: "_id", Type: column.Integer, PrimaryKey: true, AutoIncrement: true}},
			{Column: &sqlgen.Column{Name: "email", Type: column.Text, NotNull: true, Unique: true}},
		},
	}
	posts := &sqlgen.Record{
		Name:  "Post",
		Table: "posts",
		Fields: []sqlgen.Field{
			{Column: &sqlgen.Column{Name: "_id", Type: column.Integer, PrimaryKey: true, AutoIncrement: true}},
			{Column: &sqlgen.Column{Name: "title", Type: column.Text, NotNull: true, Flags: column.FlagIndex}},
			{Column: &sqlgen.Column{Name: "status", Type: column.Text, Default: sqlgen.String("draft")}},
			{ForeignKey: &sqlgen.ForeignKey{Name: "author", NotNull: true, Parent: authors}},
		},
	}

	reg := sqlgen.NewRegistry()
	if err := reg.RegisterAll([]*sqlgen.Record{authors, posts}); err != nil {
		t.Fatalf("Failed to register records: %v", err)
	}
	return reg
}

func verifySchemaObject(t *testing.T, conn *sql.DB, objectType, name string) {
	t.Helper()

	var count int
	err := conn.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = ? AND name = ?",
		objectType, name,
	).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to query sqlite_master: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected %s %q to exist, found %d", objectType, name, count)
	}
}
