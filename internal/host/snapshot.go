package host

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alexisbeaulieu97/extendy/internal/registry"
)

const snapshotSchemaVersion = "1.0"

// Snapshot is the serialisable view of a frozen registry: every primary
// entry per kind plus the alternatives retained behind it.
type Snapshot struct {
	SchemaVersion string          `json:"schema_version"`
	GeneratedAt   time.Time       `json:"generated_at"`
	Commands      []SnapshotEntry `json:"commands"`
	Services      []SnapshotEntry `json:"services"`
}

// SnapshotEntry records one resource name with its primary owner and any
// demoted or alternative contributors.
type SnapshotEntry struct {
	Name         string               `json:"name"`
	Owner        string               `json:"owner"`
	Version      string               `json:"version,omitempty"`
	Alternatives []SnapshotContributor `json:"alternatives,omitempty"`
}

// SnapshotContributor identifies a non-primary contributor to a resource.
type SnapshotContributor struct {
	Owner   string `json:"owner"`
	Version string `json:"version,omitempty"`
}

// Snapshot captures the current registry contents for export.
func (a *App) Snapshot() Snapshot {
	return Snapshot{
		SchemaVersion: snapshotSchemaVersion,
		GeneratedAt:   time.Now().UTC(),
		Commands:      a.snapshotKind(registry.KindCommand),
		Services:      a.snapshotKind(registry.KindService),
	}
}

func (a *App) snapshotKind(kind registry.Kind) []SnapshotEntry {
	primaries := a.reg.All(kind)
	out := make([]SnapshotEntry, 0, len(primaries))

	for _, primary := range primaries {
		entry := SnapshotEntry{
			Name:    primary.Name,
			Owner:   primary.Owner,
			Version: primary.Version,
		}

		seq := a.reg.Alternatives(kind, primary.Name)
		for _, alt := range seq[1:] {
			entry.Alternatives = append(entry.Alternatives, SnapshotContributor{
				Owner:   alt.Owner,
				Version: alt.Version,
			})
		}

		out = append(out, entry)
	}

	return out
}

// Render returns the indented JSON encoding of the snapshot.
func (s Snapshot) Render() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// Export writes the snapshot to disk atomically: the JSON is staged in a
// temporary file and renamed into place so readers never observe a
// partial document.
func (s Snapshot) Export(path string) error {
	data, err := s.Render()
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
