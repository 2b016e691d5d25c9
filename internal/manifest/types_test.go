package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPluginRefUnmarshalDefaults(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		yaml        string
		wantName    string
		wantEnabled bool
	}{
		{
			name:        "mapping without enabled defaults to true",
			yaml:        `{name: gitinfo}`,
			wantName:    "gitinfo",
			wantEnabled: true,
		},
		{
			name:        "explicit enabled false is kept",
			yaml:        `{name: gitinfo, enabled: false}`,
			wantName:    "gitinfo",
			wantEnabled: false,
		},
		{
			name:        "explicit enabled true is kept",
			yaml:        `{name: gitinfo, enabled: true}`,
			wantName:    "gitinfo",
			wantEnabled: true,
		},
		{
			name:        "scalar shorthand decodes name only",
			yaml:        `clock`,
			wantName:    "clock",
			wantEnabled: true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var ref PluginRef
			require.NoError(t, yaml.Unmarshal([]byte(tc.yaml), &ref))
			require.Equal(t, tc.wantName, ref.Name)
			require.Equal(t, tc.wantEnabled, ref.Enabled)
		})
	}
}

func TestEnabledPluginsPreservesOrder(t *testing.T) {
	t.Parallel()

	m := &Manifest{
		Plugins: []PluginRef{
			{Name: "clock", Enabled: true},
			{Name: "gitinfo", Enabled: false},
			{Name: "sysinfo", Enabled: true},
		},
	}

	require.Equal(t, []string{"clock", "sysinfo"}, m.EnabledPlugins())
}

func TestPluginMap(t *testing.T) {
	t.Parallel()

	refs := []PluginRef{
		{Name: "gitinfo", Enabled: true},
		{Name: "sysinfo", Enabled: false},
	}

	byName := PluginMap(refs)
	require.Len(t, byName, 2)
	require.True(t, byName["gitinfo"].Enabled)
	require.False(t, byName["sysinfo"].Enabled)
}
