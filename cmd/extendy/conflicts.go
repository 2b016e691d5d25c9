package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/extendy/internal/registry"
)

func newConflictsCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Show contested resources and rejected registrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildSession(flags)
			if err != nil {
				return err
			}
			return renderConflicts(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type contestedResource struct {
	Kind         registry.Kind  `json:"kind"`
	Name         string         `json:"name"`
	Contributors []contestedRow `json:"contributors"`
}

type contestedRow struct {
	Role    string `json:"role"`
	Owner   string `json:"owner"`
	Version string `json:"version,omitempty"`
	Seq     uint64 `json:"seq"`
}

type rejectionRow struct {
	Kind          registry.Kind         `json:"kind"`
	Name          string                `json:"name"`
	Owner         string                `json:"owner"`
	Reason        registry.RejectReason `json:"reason"`
	ConflictOwner string                `json:"conflict_owner,omitempty"`
}

type conflictsJSONPayload struct {
	Version    string              `json:"version"`
	Contested  []contestedResource `json:"contested"`
	Rejections []rejectionRow      `json:"rejections"`
}

func renderConflicts(cmd *cobra.Command, app *AppContext, opts *listOptions) error {
	contested := collectContested(app)
	rejections := collectRejections(app)

	if opts.jsonOutput {
		payload := conflictsJSONPayload{
			Version:    "1.0",
			Contested:  contested,
			Rejections: rejections,
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	out := cmd.OutOrStdout()
	useUnicode := supportsUnicode(out)

	if len(contested) == 0 && len(rejections) == 0 {
		fmt.Fprintln(out, "No conflicts this session. Every resource has a single contributor.")
		return nil
	}

	fmt.Fprintf(out, "Contested resources: %d\n", len(contested))
	for _, c := range contested {
		fmt.Fprintf(out, "\n%s %s/%s (%d contributors)\n",
			decisionIcon(registry.AcceptedAlternative, useUnicode), c.Kind, c.Name, len(c.Contributors))
		for i, row := range c.Contributors {
			fmt.Fprintf(out, "   %d. %-12s %s %s (seq %d)\n",
				i+1, row.Role, row.Owner, valueOrFallback(row.Version, "-"), row.Seq)
		}
	}

	if len(rejections) > 0 {
		fmt.Fprintf(out, "\nRejections: %d\n", len(rejections))
		for _, r := range rejections {
			fmt.Fprintf(out, "\n%s %s/%s rejected for %s: repeat registration by %s (first registered by %s)\n",
				decisionIcon(registry.Rejected, useUnicode), r.Kind, r.Name, r.Reason, r.Owner, r.ConflictOwner)
		}
	}

	return nil
}

func collectContested(app *AppContext) []contestedResource {
	var out []contestedResource
	for _, kind := range []registry.Kind{registry.KindCommand, registry.KindService} {
		for _, primary := range app.Registry.All(kind) {
			entries := app.Registry.Alternatives(kind, primary.Name)
			if len(entries) < 2 {
				continue
			}

			resource := contestedResource{
				Kind:         kind,
				Name:         primary.Name,
				Contributors: make([]contestedRow, len(entries)),
			}
			for i, e := range entries {
				role := "alternative"
				if i == 0 {
					role = "primary"
				}
				resource.Contributors[i] = contestedRow{
					Role:    role,
					Owner:   e.Owner,
					Version: e.Version,
					Seq:     e.Seq,
				}
			}
			out = append(out, resource)
		}
	}
	return out
}

func collectRejections(app *AppContext) []rejectionRow {
	var out []rejectionRow
	for _, o := range app.Report.Rejections() {
		out = append(out, rejectionRow{
			Kind:          o.Key.Kind,
			Name:          o.Key.Name,
			Owner:         o.Owner,
			Reason:        o.Reason,
			ConflictOwner: o.ConflictOwner,
		})
	}
	return out
}

func decisionIcon(d registry.Decision, useUnicode bool) string {
	if useUnicode {
		return d.Icon()
	}
	return d.IconFallback()
}
