package explorer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		ApplyMaxWidth(m.width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	// Forward everything else to the filter input (cursor blink ticks).
	if m.filtering {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	default:
		return m, nil
	}
}

// handleListKeys handles keys in list view
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter is focused, most keys belong to the text input.
	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.cursor = 0
			return m, nil

		case "enter":
			m.filtering = false
			m.filter.Blur()
			m.ClampCursor()
			return m, nil

		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.ClampCursor()
			return m, cmd
		}
	}

	switch msg.String() {
	// Quit
	case "q", "ctrl+c":
		return m, tea.Quit

	// Start filtering
	case "/":
		m.filtering = true
		return m, m.filter.Focus()

	// Navigation
	case "up", "k":
		m.MoveCursorUp()
		return m, nil

	case "down", "j":
		m.MoveCursorDown()
		return m, nil

	// Select resource
	case "enter", " ":
		if row, ok := m.SelectedRow(); ok {
			m.selected = row
			m.hasSelection = true
			m.viewMode = ViewDetail
		}
		return m, nil

	// Clear an applied filter
	case "esc":
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.cursor = 0
		}
		return m, nil

	// Help
	case "?":
		m.viewMode = ViewHelp
		return m, nil
	}

	return m, nil
}

// handleDetailKeys handles keys in detail view
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc", "enter", "backspace":
		m.viewMode = ViewList
		m.hasSelection = false
		return m, nil

	case "?":
		m.viewMode = ViewHelp
		return m, nil
	}

	return m, nil
}

// handleHelpKeys handles keys in the help overlay
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc", "?":
		m.viewMode = ViewList
		return m, nil
	}

	return m, nil
}
