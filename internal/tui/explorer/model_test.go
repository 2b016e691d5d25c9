package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/extendy/internal/registry"
)

func populatedRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	reg := registry.New()

	inserts := []struct {
		kind    registry.Kind
		name    string
		owner   string
		version string
	}{
		{registry.KindCommand, "build", "alpha", "1.0.0"},
		{registry.KindCommand, "build", "beta", "2.0.0"},
		{registry.KindCommand, "deploy", "gamma", ""},
		{registry.KindService, "greeter", "alpha", ""},
	}

	for _, in := range inserts {
		outcome, err := reg.Insert(in.kind, in.name, nil, in.owner, in.version)
		require.NoError(t, err)
		require.True(t, outcome.Accepted())
	}

	return reg
}

func TestNewModelBuildsRows(t *testing.T) {
	m := NewModel(populatedRegistry(t))

	require.Len(t, m.rows, 3)

	// Commands come first, in registration order of their primaries.
	assert.Equal(t, registry.KindCommand, m.rows[0].Kind)
	assert.Equal(t, "build", m.rows[0].Name)
	assert.Equal(t, "beta", m.rows[0].Primary.Owner)
	assert.Equal(t, 1, m.rows[0].Extra)

	assert.Equal(t, "deploy", m.rows[1].Name)
	assert.Equal(t, 0, m.rows[1].Extra)

	assert.Equal(t, registry.KindService, m.rows[2].Kind)
	assert.Equal(t, "greeter", m.rows[2].Name)
}

func TestVisibleRowsFiltering(t *testing.T) {
	m := NewModel(populatedRegistry(t))

	m.filter.SetValue("dep")
	visible := m.VisibleRows()
	require.Len(t, visible, 1)
	assert.Equal(t, "deploy", visible[0].Name)

	// Owner names match too.
	m.filter.SetValue("beta")
	visible = m.VisibleRows()
	require.Len(t, visible, 1)
	assert.Equal(t, "build", visible[0].Name)

	m.filter.SetValue("")
	assert.Len(t, m.VisibleRows(), 3)
}

func TestCursorWraps(t *testing.T) {
	m := NewModel(populatedRegistry(t))

	m.MoveCursorUp()
	assert.Equal(t, 2, m.cursor)

	m.MoveCursorDown()
	assert.Equal(t, 0, m.cursor)
}

func TestClampCursorAfterFilter(t *testing.T) {
	m := NewModel(populatedRegistry(t))

	m.cursor = 2
	m.filter.SetValue("build")
	m.ClampCursor()

	row, ok := m.SelectedRow()
	require.True(t, ok)
	assert.Equal(t, "build", row.Name)
}

func TestCounts(t *testing.T) {
	m := NewModel(populatedRegistry(t))

	counts := m.CountByKind()
	assert.Equal(t, 2, counts[registry.KindCommand])
	assert.Equal(t, 1, counts[registry.KindService])
	assert.Equal(t, 1, m.ContestedCount())
}
