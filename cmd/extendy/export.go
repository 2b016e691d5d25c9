package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(flags *rootFlags) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a JSON snapshot of the session's registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildSession(flags)
			if err != nil {
				return err
			}

			snapshot := app.App.Snapshot()

			if outPath != "" {
				if err := snapshot.Export(outPath); err != nil {
					return newCommandError(
						"export snapshot",
						fmt.Sprintf("writing %q", outPath),
						err,
						"Check that the target directory exists and is writable.",
					)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Snapshot written to %s\n", outPath)
				return nil
			}

			data, err := snapshot.Render()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the snapshot to a file instead of stdout")

	return cmd
}
