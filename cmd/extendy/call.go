package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCallCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "call <service> [key=value...]",
		Short: "Call a plugin-contributed service and print its result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serviceArgs, err := parseServiceArgs(args[1:])
			if err != nil {
				return err
			}

			app, err := buildSession(flags)
			if err != nil {
				return err
			}

			result, err := app.App.Call(cmd.Context(), args[0], serviceArgs)
			if err != nil {
				return err
			}

			return renderServiceResult(cmd, result)
		},
	}
}

func parseServiceArgs(pairs []string) (map[string]string, error) {
	args := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, newCommandError(
				"call service",
				fmt.Sprintf("parsing argument %q", pair),
				errors.New("service arguments must be key=value pairs"),
				"Pass arguments as key=value pairs, e.g. 'extendy call now format=unix'.",
			)
		}
		args[key] = value
	}
	return args, nil
}

func renderServiceResult(cmd *cobra.Command, result any) error {
	if result == nil {
		return nil
	}

	if s, ok := result.(string); ok {
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
