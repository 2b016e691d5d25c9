package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/extendy/internal/manifest"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a manifest without loading any plugin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.manifestPath == "" {
				return newCommandError(
					"validate manifest",
					"checking arguments",
					errors.New("no manifest given"),
					"Pass the manifest with --manifest, e.g. 'extendy validate --manifest extendy.yaml'.",
				)
			}

			m, err := manifest.Parse(flags.manifestPath)
			if err != nil {
				return err
			}

			if _, err := resolvePlugins(m); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Manifest %q is valid (%d plugin(s) enabled).\n",
				flags.manifestPath, len(m.EnabledPlugins()))
			return nil
		},
	}
}
