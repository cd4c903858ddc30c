package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/trainledger/trains/internal/models"
)

// TrainRepo handles all departure-related database operations.
type TrainRepo struct {
	db *sql.DB
}

// Create records a departure. If no group exists for the train number yet,
// one is inserted first; both writes commit in a single transaction.
func (r *TrainRepo) Create(ctx context.Context, destination string, number, departureTime int) (*models.Train, error) {
	train := &models.Train{
		Destination:   destination,
		DepartureTime: departureTime,
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var groupID int
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM groups WHERE number = ?`,
			number,
		).Scan(&groupID)
		if errors.Is(err, sql.ErrNoRows) {
			result, err := tx.ExecContext(ctx,
				`INSERT INTO groups (number) VALUES (?)`,
				number,
			)
			if err != nil {
				return fmt.Errorf("failed to insert group for number %d: %w", number, err)
			}
			id, err := result.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to get group ID after insert: %w", err)
			}
			groupID = int(id)
		} else if err != nil {
			return fmt.Errorf("failed to look up group for number %d: %w", number, err)
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO trains (destination, group_id, departure_time)
			 VALUES (?, ?, ?)`,
			destination, groupID, departureTime,
		)
		if err != nil {
			return fmt.Errorf("failed to insert departure to '%s': %w", destination, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get train ID after insert: %w", err)
		}

		train.ID = int(id)
		train.GroupID = groupID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return train, nil
}

// ListAll retrieves every departure joined with its group, in insertion order.
func (r *TrainRepo) ListAll(ctx context.Context) ([]*models.Departure, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT trains.destination, groups.number, trains.departure_time
		 FROM trains
		 INNER JOIN groups ON groups.id = trains.group_id
		 ORDER BY trains.id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDepartures(rows)
}

// ListByNumber retrieves the departures whose train number equals number,
// in insertion order.
func (r *TrainRepo) ListByNumber(ctx context.Context, number int) ([]*models.Departure, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT trains.destination, groups.number, trains.departure_time
		 FROM trains
		 INNER JOIN groups ON groups.id = trains.group_id
		 WHERE groups.number = ?
		 ORDER BY trains.id`,
		number,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDepartures(rows)
}

func scanDepartures(rows *sql.Rows) ([]*models.Departure, error) {
	var departures []*models.Departure
	for rows.Next() {
		dep := &models.Departure{}
		if err := rows.Scan(&dep.Destination, &dep.Number, &dep.Time); err != nil {
			return nil, err
		}
		departures = append(departures, dep)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departures, nil
}
