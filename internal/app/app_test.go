package app

import (
	"context"
	"database/sql"
	"testing"

	"github.com/trainledger/trains/internal/database"
	trainservice "github.com/trainledger/trains/internal/services/train"
	_ "modernc.org/sqlite"
)

func TestNewWiresServices(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	application := New(database.NewRepository(db))
	if application.TrainService == nil {
		t.Fatal("Expected TrainService to be initialized")
	}
	if application.Repo() == nil {
		t.Fatal("Expected repository to be accessible")
	}

	// The container must be usable end to end
	created, err := application.TrainService.Add(context.Background(), trainservice.AddRequest{
		Destination: "Moscow",
		Number:      42,
		Time:        800,
	})
	if err != nil {
		t.Fatalf("Add through container failed: %v", err)
	}
	if created.ID <= 0 {
		t.Errorf("Expected positive train ID, got %d", created.ID)
	}

	if err := application.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
