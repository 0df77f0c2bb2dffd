package sqlgen

import (
	"context"
	"database/sql"
	"fmt"
)

// Apply executes statements in order inside a single transaction, rolling
// back on the first failure. The statement list typically comes from
// Extractor.TableStatements or Registry.AllStatements.
func Apply(ctx context.Context, db *sql.DB, statements []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to execute %q: %w", stmt, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
