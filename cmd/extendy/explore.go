package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/extendy/internal/tui/explorer"
)

func newExploreCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Open the interactive registry explorer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(flags)
		},
	}
}

func runExplore(flags *rootFlags) error {
	app, err := buildSession(flags)
	if err != nil {
		return err
	}

	m := explorer.NewModel(app.Registry)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run explorer: %w", err)
	}

	return nil
}
