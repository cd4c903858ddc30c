package database

import (
	"context"

	"github.com/trainledger/trains/internal/models"
)

// DataStore defines the unified interface for all data operations needed by
// the service layer. Keeping it as an interface enables fakes in unit tests.
type DataStore interface {
	// Groups
	GetGroupByNumber(ctx context.Context, number int) (*models.Group, error)
	CreateGroup(ctx context.Context, number int) (*models.Group, error)

	// Trains
	CreateTrain(ctx context.Context, destination string, number, departureTime int) (*models.Train, error)
	ListDepartures(ctx context.Context) ([]*models.Departure, error)
	ListDeparturesByNumber(ctx context.Context, number int) ([]*models.Departure, error)
}
