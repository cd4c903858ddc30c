package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// TestOpenCreatesFileAndSchema verifies Open creates the database file and
// the ledger tables
func TestOpenCreatesFileAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trains.db")
	ctx := context.Background()

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected database file at %s: %v", path, err)
	}
	if got := countRows(t, db, "groups"); got != 0 {
		t.Errorf("Expected empty groups table, got %d rows", got)
	}
}

// TestOpenTwiceOnSameFile verifies opening an existing ledger is safe and
// preserves its contents
func TestOpenTwiceOnSameFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trains.db")
	ctx := context.Background()

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("First Open failed: %v", err)
	}
	repo := NewRepository(db)
	if _, err := repo.CreateTrain(ctx, "Moscow", 42, 800); err != nil {
		t.Fatalf("CreateTrain failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("Second Open failed: %v", err)
	}
	defer db.Close()

	if got := countRows(t, db, "trains"); got != 1 {
		t.Errorf("Expected 1 train row after reopen, got %d", got)
	}
}
