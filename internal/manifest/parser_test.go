package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	extendyerrors "github.com/alexisbeaulieu97/extendy/pkg/errors"
)

func TestParse(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
name: "workstation"
description: "Sample manifest for parser tests"
settings:
  parallel: 4
  on_error: continue
plugins:
  - name: gitinfo
  - name: sysinfo
    enabled: false
`

	shorthandYAML := `version: "1.0"
name: "workstation"
plugins:
  - gitinfo
  - clock
`

	invalidYAML := `version: [1, 0]
name: "Broken"
plugins:
  - name: gitinfo
`

	missingRequired := `version: "1.0"
`

	badVersion := `version: "beta"
name: "Bad Version"
`

	cases := []struct {
		name      string
		contents  string
		wantError error
		assert    func(t *testing.T, m *Manifest, err error)
	}{
		{
			name:     "valid manifest is parsed",
			contents: validYAML,
			assert: func(t *testing.T, m *Manifest, err error) {
				require.NoError(t, err)
				require.NotNil(t, m)
				require.Equal(t, "workstation", m.Name)
				require.Equal(t, 4, m.Settings.Parallel)
				require.Equal(t, "continue", m.Settings.OnError)
				require.Len(t, m.Plugins, 2)
				require.True(t, m.Plugins[0].Enabled)
				require.False(t, m.Plugins[1].Enabled)
			},
		},
		{
			name:     "shorthand plugin references decode as enabled",
			contents: shorthandYAML,
			assert: func(t *testing.T, m *Manifest, err error) {
				require.NoError(t, err)
				require.Equal(t, []string{"gitinfo", "clock"}, m.EnabledPlugins())
			},
		},
		{
			name:      "invalid yaml returns parse error",
			contents:  invalidYAML,
			wantError: &extendyerrors.ParseError{},
			assert: func(t *testing.T, m *Manifest, err error) {
				require.Error(t, err)
				var parseErr *extendyerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
			},
		},
		{
			name:      "missing required fields returns validation error",
			contents:  missingRequired,
			wantError: &extendyerrors.ValidationError{},
			assert: func(t *testing.T, m *Manifest, err error) {
				require.Error(t, err)
				var validationErr *extendyerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "name")
			},
		},
		{
			name:      "schema version must follow major.minor",
			contents:  badVersion,
			wantError: &extendyerrors.ValidationError{},
			assert: func(t *testing.T, m *Manifest, err error) {
				require.Error(t, err)
				var validationErr *extendyerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "version")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempManifest(t, tc.contents)
			m, err := Parse(path)
			if tc.wantError == nil {
				tc.assert(t, m, err)
				return
			}

			tc.assert(t, m, err)
			require.Error(t, err)
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Parse(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var parseErr *extendyerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 0, parseErr.Line)
}

func writeTempManifest(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "extendy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
