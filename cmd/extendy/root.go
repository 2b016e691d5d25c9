package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	manifestPath string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "extendy",
		Short:         "Extendy hosts plugin-contributed commands and services",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the registry explorer
			if len(args) == 0 {
				return runExplore(flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.manifestPath, "manifest", "m", "", "Path to host manifest (defaults to every builtin plugin)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newCommandsCmd(flags))
	cmd.AddCommand(newServicesCmd(flags))
	cmd.AddCommand(newPluginsCmd(flags))
	cmd.AddCommand(newConflictsCmd(flags))
	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newCallCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newExploreCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
