package models

// Group represents a train-number grouping. One row exists per distinct
// train number; departures reference their group by ID.
type Group struct {
	ID     int
	Number int
}
