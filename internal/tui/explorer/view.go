package explorer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/extendy/internal/registry"
)

// View renders the current model state
func (m Model) View() string {
	switch m.viewMode {
	case ViewList:
		return m.renderListView()
	case ViewDetail:
		return m.renderDetailView()
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderListView()
	}
}

// renderListView renders the main resource list view
func (m Model) renderListView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.filtering || m.filter.Value() != "" {
		content.WriteString(filterStyle.Render(m.filter.View()))
		content.WriteString("\n")
	}

	content.WriteString(m.renderRowList())
	content.WriteString("\n")

	content.WriteString(m.renderFooter())

	return content.String()
}

// renderHeader renders the header with title and registry summary
func (m Model) renderHeader() string {
	title := titleStyle.Render("🧩 Extendy Registry Explorer")

	counts := m.CountByKind()
	summary := fmt.Sprintf(
		"commands %d  •  services %d  •  contested %d",
		counts[registry.KindCommand],
		counts[registry.KindService],
		m.ContestedCount(),
	)

	headerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		summary,
	)

	return headerStyle.Render(headerContent)
}

// renderRowList renders the scrollable list of resources
func (m Model) renderRowList() string {
	visible := m.VisibleRows()
	if len(visible) == 0 {
		return m.renderEmptyState()
	}

	var items []string
	visibleHeight := m.height - 10 // Reserve space for header and footer
	if visibleHeight < 1 {
		visibleHeight = 1
	}

	start := m.scrollOffset
	end := start + visibleHeight
	if end > len(visible) {
		end = len(visible)
	}

	for i := start; i < end; i++ {
		items = append(items, m.renderRow(visible[i], i == m.cursor))
	}

	if start > 0 {
		items = append([]string{lipgloss.NewStyle().Foreground(mutedColor).Render("▲ More above")}, items...)
	}
	if end < len(visible) {
		items = append(items, lipgloss.NewStyle().Foreground(mutedColor).Render("▼ More below"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderRow renders a single resource row
func (m Model) renderRow(r Row, selected bool) string {
	decision := registry.AcceptedPrimary
	if r.Extra > 0 {
		decision = registry.AcceptedAlternative
	}

	icon := decision.Icon()
	if !m.useUnicode {
		icon = decision.IconFallback()
	}

	name := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s/%s", r.Kind, r.Name))

	owner := r.Primary.Owner
	if r.Primary.Versioned() {
		owner = fmt.Sprintf("%s@%s", owner, r.Primary.Version)
	}

	line := fmt.Sprintf("%s %s  %s", icon, name, lipgloss.NewStyle().Foreground(mutedColor).Render(owner))
	if r.Extra > 0 {
		line += lipgloss.NewStyle().Foreground(warningColor).Render(fmt.Sprintf("  +%d alternative(s)", r.Extra))
	}

	if selected {
		return selectedItemStyle.Render(line)
	}
	return itemStyle.Render(line)
}

// renderEmptyState renders the empty state when nothing matches
func (m Model) renderEmptyState() string {
	if m.filter.Value() != "" {
		return emptyStateStyle.Render(fmt.Sprintf("No resources match %q.", m.filter.Value()))
	}

	message := `No resources registered yet.

Enable plugins in the manifest, then relaunch:
  extendy explore --manifest extendy.yaml`

	return emptyStateStyle.Render(message)
}

// renderFooter renders the footer with keyboard shortcuts
func (m Model) renderFooter() string {
	if m.filtering {
		return footerStyle.Render("enter: apply filter  •  esc: cancel")
	}

	hints := []string{
		"↑/↓: navigate",
		"enter: inspect",
		"/: filter",
		"?: help",
		"q: quit",
	}

	return footerStyle.Render(strings.Join(hints, "  •  "))
}

// renderDetailView renders the contributor sequence for one resource
func (m Model) renderDetailView() string {
	if !m.hasSelection {
		return "Resource not found"
	}

	r := m.selected

	var content strings.Builder

	header := titleStyle.Render(fmt.Sprintf("🔍 %s/%s", r.Kind, r.Name))
	content.WriteString(header)
	content.WriteString("\n\n")

	seq := m.reg.Alternatives(r.Kind, r.Name)
	var lines []string
	for i, entry := range seq {
		role := alternativeEntryStyle.Render("alternative")
		if i == 0 {
			role = primaryEntryStyle.Render("primary")
		}

		version := entry.Version
		if version == "" {
			version = "unversioned"
		}

		lines = append(lines, fmt.Sprintf(
			"%d. %s  %s  %s  %s",
			i+1,
			role,
			lipgloss.NewStyle().Bold(true).Render(entry.Owner),
			lipgloss.NewStyle().Foreground(mutedColor).Render(version),
			lipgloss.NewStyle().Foreground(mutedColor).Render(fmt.Sprintf("seq %d", entry.Seq)),
		))
	}
	content.WriteString(detailSectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	content.WriteString("\n")

	content.WriteString(detailLabelStyle.Render("Owner"))
	content.WriteString(r.Primary.Owner)
	content.WriteString("\n")
	if r.Primary.Versioned() {
		content.WriteString(detailLabelStyle.Render("Version"))
		content.WriteString(r.Primary.Version)
		content.WriteString("\n")
	}

	footer := footerStyle.Render("esc: back  •  ?: help  •  q: quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content.String(),
		footer,
	)
}

// renderHelpView renders the help overlay
func (m Model) renderHelpView() string {
	title := helpTitleStyle.Render("❓ Registry Explorer Help")

	helpContent := `
List View:
  ↑/↓, j/k      Navigate up/down
  Enter         Inspect a resource's contributors
  /             Filter by resource name or owner
  Esc           Clear the applied filter
  ?             Toggle this help
  q, Ctrl+C     Quit

Detail View:
  Esc           Back to list
  q, Ctrl+C     Quit

Markers:
  🟢 Sole contributor registered under this name
  🟡 Conflicting contributors retained as alternatives
`

	return helpBoxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		helpContent,
	))
}
