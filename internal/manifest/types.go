package manifest

import (
	"gopkg.in/yaml.v3"
)

// Manifest represents the full extendy host manifest document.
type Manifest struct {
	Version     string      `yaml:"version" validate:"required,semver"`
	Name        string      `yaml:"name" validate:"required,min=1,max=100"`
	Description string      `yaml:"description,omitempty"`
	Settings    Settings    `yaml:"settings,omitempty"`
	Plugins     []PluginRef `yaml:"plugins,omitempty" validate:"omitempty,dive"`
}

// Settings holds global load-session parameters.
type Settings struct {
	Parallel int    `yaml:"parallel,omitempty" validate:"omitempty,min=1,max=32"`
	OnError  string `yaml:"on_error,omitempty" validate:"omitempty,oneof=halt continue"`
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
}

// PluginRef selects one catalog plugin for the session.
type PluginRef struct {
	Name    string `yaml:"name" validate:"required,plugin_name"`
	Enabled bool   `yaml:"enabled,omitempty"`
}

// UnmarshalYAML customises plugin reference decoding. A reference may be
// the shorthand scalar form ("- gitinfo") or a mapping, and a mapping
// without an explicit enabled flag participates in the session.
func (p *PluginRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		p.Name = value.Value
		p.Enabled = true
		return nil
	}

	type rawRef struct {
		Name    string `yaml:"name"`
		Enabled *bool  `yaml:"enabled"`
	}

	var raw rawRef
	if err := value.Decode(&raw); err != nil {
		return err
	}

	p.Name = raw.Name
	if raw.Enabled != nil {
		p.Enabled = *raw.Enabled
	} else {
		p.Enabled = true
	}

	return nil
}

// EnabledPlugins returns the names of enabled plugins in manifest order.
func (m *Manifest) EnabledPlugins() []string {
	out := make([]string, 0, len(m.Plugins))
	for _, ref := range m.Plugins {
		if ref.Enabled {
			out = append(out, ref.Name)
		}
	}
	return out
}

// PluginMap builds a lookup table for plugin references by name.
func PluginMap(refs []PluginRef) map[string]PluginRef {
	out := make(map[string]PluginRef, len(refs))
	for _, ref := range refs {
		out[ref.Name] = ref
	}
	return out
}
