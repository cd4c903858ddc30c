package models

// Train represents one recorded departure.
type Train struct {
	ID            int
	Destination   string
	GroupID       int
	DepartureTime int // minutes-of-day style integer, e.g. 800 for 08:00
}

// GetID returns the train's identifier.
// Used by the CLI output formatter in quiet mode.
func (t *Train) GetID() int {
	return t.ID
}

// Departure is a DTO for displaying departures: a train row joined with
// its group, shaped as the destination/number/time triple the table shows.
type Departure struct {
	Destination string
	Number      int
	Time        int
}
