package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/extendy/internal/registry"
)

type listOptions struct {
	jsonOutput bool
}

func newCommandsCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List the commands plugins contributed this session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildSession(flags)
			if err != nil {
				return err
			}
			return renderResourceList(cmd, app, registry.KindCommand, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderResourceList(cmd *cobra.Command, app *AppContext, kind registry.Kind, opts *listOptions) error {
	primaries := app.Registry.All(kind)
	if len(primaries) == 0 {
		return renderEmptyResourceList(cmd, kind)
	}

	if opts.jsonOutput {
		return renderResourceJSON(cmd, app, kind, primaries)
	}

	return renderResourceTable(cmd, app, kind, primaries)
}

func renderEmptyResourceList(cmd *cobra.Command, kind registry.Kind) error {
	fmt.Fprintf(cmd.OutOrStdout(), "No %ss registered this session.\n", kind)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEnable plugins in the manifest or run without --manifest to load every builtin.")
	return nil
}

func renderResourceTable(cmd *cobra.Command, app *AppContext, kind registry.Kind, primaries []registry.Entry) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tOWNER\tVERSION\tALTERNATIVES")

	useUnicode := supportsUnicode(cmd.OutOrStdout())

	for _, p := range primaries {
		extra := len(app.Registry.Alternatives(kind, p.Name)) - 1

		marker := registry.AcceptedPrimary
		if extra > 0 {
			marker = registry.AcceptedAlternative
		}
		icon := marker.Icon()
		if !useUnicode {
			icon = marker.IconFallback()
		}

		fmt.Fprintf(writer, "%s %s\t%s\t%s\t%d\n",
			icon,
			p.Name,
			p.Owner,
			valueOrFallback(p.Version, "-"),
			extra,
		)
	}

	return writer.Flush()
}

type resourceJSONEntry struct {
	Name         string                  `json:"name"`
	Owner        string                  `json:"owner"`
	Version      string                  `json:"version,omitempty"`
	Seq          uint64                  `json:"seq"`
	Alternatives []resourceJSONContender `json:"alternatives,omitempty"`
}

type resourceJSONContender struct {
	Owner   string `json:"owner"`
	Version string `json:"version,omitempty"`
	Seq     uint64 `json:"seq"`
}

type resourceJSONPayload struct {
	Version   string              `json:"version"`
	Kind      registry.Kind       `json:"kind"`
	Count     int                 `json:"count"`
	Resources []resourceJSONEntry `json:"resources"`
}

func renderResourceJSON(cmd *cobra.Command, app *AppContext, kind registry.Kind, primaries []registry.Entry) error {
	payload := resourceJSONPayload{
		Version:   "1.0",
		Kind:      kind,
		Count:     len(primaries),
		Resources: make([]resourceJSONEntry, len(primaries)),
	}

	for i, p := range primaries {
		entry := resourceJSONEntry{
			Name:    p.Name,
			Owner:   p.Owner,
			Version: p.Version,
			Seq:     p.Seq,
		}

		for _, alt := range app.Registry.Alternatives(kind, p.Name)[1:] {
			entry.Alternatives = append(entry.Alternatives, resourceJSONContender{
				Owner:   alt.Owner,
				Version: alt.Version,
				Seq:     alt.Seq,
			})
		}

		payload.Resources[i] = entry
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
