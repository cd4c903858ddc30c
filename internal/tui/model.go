// Package tui implements the interactive departure board behind
// `trains display --interactive`. It is read-only: the board renders the
// ledger and scrolls, all writes go through the add command.
package tui

import (
	viewport "github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/trainledger/trains/internal/config"
	"github.com/trainledger/trains/internal/models"
)

// Model is the Bubble Tea model for the departure board
type Model struct {
	departures []*models.Departure
	keys       config.KeyMappings

	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewModel creates the initial board model for a departure list
func NewModel(departures []*models.Departure, cfg *config.Config) Model {
	return Model{
		departures: departures,
		keys:       cfg.KeyMappings,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Run renders the departure board and blocks until the user quits
func Run(departures []*models.Departure, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(departures, cfg))
	_, err := p.Run()
	return err
}
