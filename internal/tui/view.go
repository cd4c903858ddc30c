package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/trainledger/trains/internal/cli/styles"
)

// View renders the departure board
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if !m.ready {
		return "Loading..."
	}

	title := styles.TitleStyle.Render("Departures")
	help := styles.SubtleStyle.Render(fmt.Sprintf(
		"%s/%s scroll · %s/%s top/bottom · %s quit",
		m.keys.ScrollUp, m.keys.ScrollDown,
		m.keys.GotoTop, m.keys.GotoBottom,
		m.keys.Quit,
	))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		styles.BoardBorderStyle.Render(m.viewport.View()),
		help,
	)
}

// renderRows lays out the departure list as viewport content
func (m Model) renderRows() string {
	var b strings.Builder

	header := fmt.Sprintf("%4s  %-30s  %12s  %14s", "№", "Destination", "Train number", "Departure time")
	b.WriteString(styles.TitleStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render(strings.Repeat("─", utf8.RuneCountInString(header))))
	b.WriteString("\n")

	for idx, dep := range m.departures {
		row := fmt.Sprintf("%4d  %-30s  %12d  %14d", idx+1, dep.Destination, dep.Number, dep.Time)
		b.WriteString(styles.ValueStyle.Render(row))
		b.WriteString("\n")
	}

	return b.String()
}
