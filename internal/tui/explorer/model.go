package explorer

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/extendy/internal/registry"
)

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewHelp
)

// Row is one selectable resource in the list view.
type Row struct {
	Kind    registry.Kind
	Name    string
	Primary registry.Entry
	Extra   int
}

// Model is the registry explorer model
type Model struct {
	// Core data
	reg  *registry.Registry
	rows []Row

	// UI state
	viewMode     ViewMode
	cursor       int
	selected     Row
	hasSelection bool
	scrollOffset int

	// Filter state
	filter    textinput.Model
	filtering bool

	// Dimensions
	width  int
	height int

	// Configuration
	useUnicode bool
}

// NewModel creates a new explorer model over a populated registry.
func NewModel(reg *registry.Registry) Model {
	ti := textinput.New()
	ti.Placeholder = "name or owner"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	m := Model{
		reg:        reg,
		viewMode:   ViewList,
		filter:     ti,
		useUnicode: true,
		width:      80,
		height:     24,
	}
	m.rows = buildRows(reg)

	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// buildRows flattens the registry into list rows: commands first, then
// services, each block in registration order of its current primaries.
func buildRows(reg *registry.Registry) []Row {
	var rows []Row
	for _, kind := range []registry.Kind{registry.KindCommand, registry.KindService} {
		for _, primary := range reg.All(kind) {
			rows = append(rows, Row{
				Kind:    kind,
				Name:    primary.Name,
				Primary: primary,
				Extra:   len(reg.Alternatives(kind, primary.Name)) - 1,
			})
		}
	}
	return rows
}

// Helper Methods

// VisibleRows returns the rows matching the current filter text.
func (m *Model) VisibleRows() []Row {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		return m.rows
	}

	var out []Row
	for _, r := range m.rows {
		if strings.Contains(strings.ToLower(r.Name), query) ||
			strings.Contains(strings.ToLower(r.Primary.Owner), query) {
			out = append(out, r)
		}
	}
	return out
}

// SelectedRow returns the row under the cursor.
func (m *Model) SelectedRow() (Row, bool) {
	visible := m.VisibleRows()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return Row{}, false
	}
	return visible[m.cursor], true
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	visible := m.VisibleRows()
	if len(visible) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(visible) - 1
	}
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	visible := m.VisibleRows()
	if len(visible) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(visible) {
		m.cursor = 0
	}
}

// ClampCursor keeps the cursor inside the visible row range after the
// filter narrows the list.
func (m *Model) ClampCursor() {
	visible := m.VisibleRows()
	if len(visible) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// CountByKind returns how many rows exist per resource kind.
func (m *Model) CountByKind() map[registry.Kind]int {
	counts := make(map[registry.Kind]int)
	for _, r := range m.rows {
		counts[r.Kind]++
	}
	return counts
}

// ContestedCount returns how many resources carry alternatives.
func (m *Model) ContestedCount() int {
	n := 0
	for _, r := range m.rows {
		if r.Extra > 0 {
			n++
		}
	}
	return n
}

// GetViewMode returns the current view mode
func (m *Model) GetViewMode() ViewMode {
	return m.viewMode
}

// IsFiltering reports whether the filter input is focused.
func (m *Model) IsFiltering() bool {
	return m.filtering
}
