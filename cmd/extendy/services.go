package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/extendy/internal/registry"
)

func newServicesCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "services",
		Short: "List the services plugins contributed this session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildSession(flags)
			if err != nil {
				return err
			}
			return renderResourceList(cmd, app, registry.KindService, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
