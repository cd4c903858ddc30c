package database

import (
	"context"
	"database/sql"
)

// RunMigrations creates the ledger schema. Safe to call on every
// invocation: all statements are IF NOT EXISTS.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	// Create groups table: one row per distinct train number
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS groups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			number INTEGER NOT NULL UNIQUE
		)
	`)
	if err != nil {
		return err
	}

	// Create trains table: one row per recorded departure
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS trains (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			destination TEXT NOT NULL,
			group_id INTEGER NOT NULL,
			departure_time INTEGER NOT NULL,
			FOREIGN KEY (group_id) REFERENCES groups(id)
		)
	`)
	if err != nil {
		return err
	}

	// Index for the join and number-filter path
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_trains_group
		ON trains(group_id)
	`)
	return err
}
