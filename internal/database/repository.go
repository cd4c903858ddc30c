package database

import (
	"context"
	"database/sql"

	"github.com/trainledger/trains/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes the entity repositories using struct embedding.
type Repository struct {
	*GroupRepo
	*TrainRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		GroupRepo: &GroupRepo{db: db},
		TrainRepo: &TrainRepo{db: db},
	}
}

// Wrapper methods for GroupRepo to satisfy DataStore
func (r *Repository) GetGroupByNumber(ctx context.Context, number int) (*models.Group, error) {
	return r.GroupRepo.GetByNumber(ctx, number)
}

func (r *Repository) CreateGroup(ctx context.Context, number int) (*models.Group, error) {
	return r.GroupRepo.Create(ctx, number)
}

// Wrapper methods for TrainRepo to satisfy DataStore
func (r *Repository) CreateTrain(ctx context.Context, destination string, number, departureTime int) (*models.Train, error) {
	return r.TrainRepo.Create(ctx, destination, number, departureTime)
}

func (r *Repository) ListDepartures(ctx context.Context) ([]*models.Departure, error) {
	return r.TrainRepo.ListAll(ctx)
}

func (r *Repository) ListDeparturesByNumber(ctx context.Context, number int) ([]*models.Departure, error) {
	return r.TrainRepo.ListByNumber(ctx, number)
}
