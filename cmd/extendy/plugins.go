package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/extendy/internal/manifest"
	"github.com/alexisbeaulieu97/extendy/internal/plugin"
	"github.com/alexisbeaulieu97/extendy/internal/plugins"
)

func newPluginsCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "List the builtin plugin catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderPluginCatalog(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderPluginCatalog(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	var enabled map[string]manifest.PluginRef
	if flags.manifestPath != "" {
		m, err := manifest.Parse(flags.manifestPath)
		if err != nil {
			return err
		}
		enabled = manifest.PluginMap(m.Plugins)
	}

	catalog := plugins.All()

	if opts.jsonOutput {
		return renderPluginJSON(cmd, catalog, enabled)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	if enabled != nil {
		fmt.Fprintln(writer, "NAME\tVERSION\tENABLED\tDESCRIPTION")
	} else {
		fmt.Fprintln(writer, "NAME\tVERSION\tDESCRIPTION")
	}

	for _, p := range catalog {
		meta := p.Metadata()
		if enabled != nil {
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", meta.Name, meta.Version, enabledState(enabled, meta.Name), meta.Description)
		} else {
			fmt.Fprintf(writer, "%s\t%s\t%s\n", meta.Name, meta.Version, meta.Description)
		}
	}

	return writer.Flush()
}

func enabledState(refs map[string]manifest.PluginRef, name string) string {
	ref, listed := refs[name]
	switch {
	case !listed:
		return "no"
	case ref.Enabled:
		return "yes"
	default:
		return "disabled"
	}
}

type pluginJSONEntry struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	Enabled     *bool  `json:"enabled,omitempty"`
}

type pluginJSONPayload struct {
	Version string            `json:"version"`
	Count   int               `json:"count"`
	Plugins []pluginJSONEntry `json:"plugins"`
}

func renderPluginJSON(cmd *cobra.Command, catalog []plugin.Plugin, enabled map[string]manifest.PluginRef) error {
	payload := pluginJSONPayload{
		Version: "1.0",
		Count:   len(catalog),
		Plugins: make([]pluginJSONEntry, len(catalog)),
	}

	for i, p := range catalog {
		meta := p.Metadata()
		entry := pluginJSONEntry{
			Name:        meta.Name,
			Version:     meta.Version,
			Description: meta.Description,
		}
		if enabled != nil {
			ref, listed := enabled[meta.Name]
			state := listed && ref.Enabled
			entry.Enabled = &state
		}
		payload.Plugins[i] = entry
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
