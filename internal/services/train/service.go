// Package train holds the business operations of the departure ledger.
package train

import (
	"context"
	"fmt"
	"strings"

	"github.com/trainledger/trains/internal/database"
	"github.com/trainledger/trains/internal/models"
)

// Service defines all departure-related business operations
type Service interface {
	// Write operations
	Add(ctx context.Context, req AddRequest) (*models.Train, error)

	// Read operations
	ListAll(ctx context.Context) ([]*models.Departure, error)
	ListByNumber(ctx context.Context, number int) ([]*models.Departure, error)
}

// AddRequest encapsulates all data needed to record a departure
type AddRequest struct {
	Destination string
	Number      int // 0 when the number flag was omitted
	Time        int
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new departure service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// Add validates the request and records the departure. The first departure
// for a given train number also creates that number's group.
func (s *service) Add(ctx context.Context, req AddRequest) (*models.Train, error) {
	if err := validateAdd(req); err != nil {
		return nil, err
	}

	t, err := s.repo.CreateTrain(ctx, req.Destination, req.Number, req.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to record departure: %w", err)
	}
	return t, nil
}

// ListAll returns every recorded departure in insertion order.
func (s *service) ListAll(ctx context.Context) ([]*models.Departure, error) {
	departures, err := s.repo.ListDepartures(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departures: %w", err)
	}
	return departures, nil
}

// ListByNumber returns the departures whose train number equals number.
func (s *service) ListByNumber(ctx context.Context, number int) ([]*models.Departure, error) {
	if number < 0 {
		return nil, ErrInvalidNumber
	}

	departures, err := s.repo.ListDeparturesByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("failed to list departures for number %d: %w", number, err)
	}
	return departures, nil
}

func validateAdd(req AddRequest) error {
	if strings.TrimSpace(req.Destination) == "" {
		return ErrEmptyDestination
	}
	if len(req.Destination) > 255 {
		return ErrDestinationTooLong
	}
	if req.Number < 0 {
		return ErrInvalidNumber
	}
	if req.Time < 0 {
		return ErrInvalidTime
	}
	return nil
}
