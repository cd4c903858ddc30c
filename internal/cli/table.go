package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/trainledger/trains/internal/models"
)

// Column widths of the departure table
const (
	indexWidth       = 4
	destinationWidth = 30
	numberWidth      = 20
	timeWidth        = 20
)

// RenderDepartures writes the fixed-width bordered departure table to w.
// Rows are 1-indexed in the order given. An empty slice produces no output
// at all, not even borders.
func RenderDepartures(w io.Writer, departures []*models.Departure) {
	if len(departures) == 0 {
		return
	}

	line := fmt.Sprintf(
		"+-%s-+-%s-+-%s-+-%s-+",
		strings.Repeat("-", indexWidth),
		strings.Repeat("-", destinationWidth),
		strings.Repeat("-", numberWidth),
		strings.Repeat("-", timeWidth),
	)

	fmt.Fprintln(w, line)
	fmt.Fprintf(
		w,
		"| %s | %s | %s | %s |\n",
		center("№", indexWidth),
		center("Destination", destinationWidth),
		center("Train number", numberWidth),
		center("Departure time", timeWidth),
	)
	fmt.Fprintln(w, line)

	for idx, dep := range departures {
		fmt.Fprintf(
			w,
			"| %*d | %-*s | %-*d |  %-*d |\n",
			indexWidth, idx+1,
			destinationWidth, dep.Destination,
			numberWidth, dep.Number,
			timeWidth, dep.Time,
		)
	}
	fmt.Fprintln(w, line)
}

// center pads s with spaces to width, biasing the extra space to the right.
// Widths count runes so the "№" header cell lines up.
func center(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
