package explorer

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor    = lipgloss.Color("99")  // Purple
	successColor    = lipgloss.Color("42")  // Green
	warningColor    = lipgloss.Color("226") // Yellow
	mutedColor      = lipgloss.Color("245") // Gray
	accentColor     = lipgloss.Color("212") // Pink
	backgroundColor = lipgloss.Color("235") // Dark gray

	// Title style
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	// Header style
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			PaddingBottom(1).
			MarginBottom(1)

	// Resource item styles
	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				PaddingRight(2).
				Foreground(accentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	// Role indicator styles
	primaryEntryStyle = lipgloss.NewStyle().
				Foreground(successColor).
				Bold(true)

	alternativeEntryStyle = lipgloss.NewStyle().
				Foreground(warningColor)

	// Filter bar style
	filterStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			PaddingLeft(2).
			MarginBottom(1)

	// Footer style
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			PaddingTop(1).
			MarginTop(1)

	// Help overlay styles
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Align(lipgloss.Center).
			MarginBottom(1)

	helpBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(2, 4).
			Background(backgroundColor)

	// Detail view styles
	detailLabelStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Bold(true).
				Width(12)

	detailSectionStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(mutedColor).
				Padding(1, 2).
				MarginTop(1).
				MarginBottom(1)

	// Empty state style
	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			Align(lipgloss.Center).
			PaddingTop(4).
			PaddingBottom(4)
)

// ApplyMaxWidth applies a maximum width to all relevant styles
func ApplyMaxWidth(width int) {
	itemStyle = itemStyle.MaxWidth(width - 4)
	selectedItemStyle = selectedItemStyle.MaxWidth(width - 4)
	headerStyle = headerStyle.Width(width - 2)
	footerStyle = footerStyle.Width(width - 2)
}
