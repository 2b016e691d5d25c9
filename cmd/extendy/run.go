package main

import (
	"github.com/spf13/cobra"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Invoke a plugin-contributed command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildSession(flags)
			if err != nil {
				return err
			}
			return app.App.Invoke(cmd.Context(), args[0], args[1:])
		},
	}
}
