package tui

import (
	viewport "github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Update handles terminal resize and key events
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New()
			m.ready = true
		}
		// Border, padding and the title/help lines take up the rest
		m.viewport.SetWidth(msg.Width - 4)
		m.viewport.SetHeight(msg.Height - 5)
		m.viewport.SetContent(m.renderRows())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case m.keys.Quit, "ctrl+c", "esc":
			return m, tea.Quit
		case m.keys.GotoTop:
			m.viewport.GotoTop()
			return m, nil
		case m.keys.GotoBottom:
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	// Everything else (scroll keys, mouse wheel) is the viewport's business
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
