package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/trainledger/trains/internal/models"
)

// GroupRepo handles all group-related database operations.
type GroupRepo struct {
	db *sql.DB
}

// GetByNumber looks up the group for a train number.
// Returns sql.ErrNoRows (wrapped) if no group exists for the number.
func (r *GroupRepo) GetByNumber(ctx context.Context, number int) (*models.Group, error) {
	group := &models.Group{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, number FROM groups WHERE number = ?`,
		number,
	).Scan(&group.ID, &group.Number)
	if err != nil {
		return nil, fmt.Errorf("failed to look up group for number %d: %w", number, err)
	}
	return group, nil
}

// Create inserts a group for a train number and returns it with its
// assigned identifier.
func (r *GroupRepo) Create(ctx context.Context, number int) (*models.Group, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO groups (number) VALUES (?)`,
		number,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert group for number %d: %w", number, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get group ID after insert: %w", err)
	}

	return &models.Group{ID: int(id), Number: number}, nil
}
