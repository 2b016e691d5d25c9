package loader

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/extendy/internal/plugin"
	"github.com/alexisbeaulieu97/extendy/internal/registry"
	extendyerrors "github.com/alexisbeaulieu97/extendy/pkg/errors"
)

type fakePlugin struct {
	meta       plugin.Metadata
	registerFn func(r *plugin.Registrator) error
}

func newFakePlugin(name string, registerFn func(r *plugin.Registrator) error) *fakePlugin {
	return &fakePlugin{
		meta:       plugin.Metadata{Name: name, Version: "1.0.0"},
		registerFn: registerFn,
	}
}

func (p *fakePlugin) Metadata() plugin.Metadata { return p.meta }

func (p *fakePlugin) Register(r *plugin.Registrator) error {
	if p.registerFn == nil {
		return nil
	}
	return p.registerFn(r)
}

func registerOneCommand(name string) func(r *plugin.Registrator) error {
	return func(r *plugin.Registrator) error {
		_, err := r.RegisterCommand(name, nil)
		return err
	}
}

func TestLoadSequentialFollowsDiscoveryOrder(t *testing.T) {
	reg := registry.New()
	l := New(reg, nil, Options{OnFailure: FailContinue})

	plugins := []plugin.Plugin{
		newFakePlugin("alpha", registerOneCommand("build")),
		newFakePlugin("beta", registerOneCommand("test")),
		newFakePlugin("gamma", registerOneCommand("deploy")),
	}

	report, err := l.Load(context.Background(), plugins)
	require.NoError(t, err)

	require.Len(t, report.Results, 3)
	assert.Equal(t, "alpha", report.Results[0].Owner)
	assert.Equal(t, "beta", report.Results[1].Owner)
	assert.Equal(t, "gamma", report.Results[2].Owner)
	assert.Equal(t, 3, report.Registered())

	all := reg.All(registry.KindCommand)
	require.Len(t, all, 3)
	assert.Equal(t, "build", all[0].Name)
	assert.Equal(t, "test", all[1].Name)
	assert.Equal(t, "deploy", all[2].Name)
}

func TestLoadValidatesMetadata(t *testing.T) {
	reg := registry.New()
	l := New(reg, nil, Options{OnFailure: FailContinue})

	plugins := []plugin.Plugin{
		&fakePlugin{meta: plugin.Metadata{Name: "Bad Name", Version: "1.0.0"}},
		newFakePlugin("alpha", registerOneCommand("build")),
	}

	report, err := l.Load(context.Background(), plugins)
	require.NoError(t, err)

	require.Len(t, report.Failed(), 1)
	var pluginErr *extendyerrors.PluginError
	require.ErrorAs(t, report.Results[0].Err, &pluginErr)

	_, ok := reg.Lookup(registry.KindCommand, "build")
	assert.True(t, ok)
}

func TestLoadHaltsBeforeRunningAnythingOnInvalidMetadata(t *testing.T) {
	reg := registry.New()
	l := New(reg, nil, Options{OnFailure: FailHalt})

	plugins := []plugin.Plugin{
		newFakePlugin("alpha", registerOneCommand("build")),
		&fakePlugin{meta: plugin.Metadata{Name: "alpha!", Version: "1.0.0"}},
	}

	_, err := l.Load(context.Background(), plugins)
	require.Error(t, err)

	// The pre-flight failure stops the session before any registration.
	assert.Equal(t, 0, reg.Len())
}

func TestLoadRejectsDuplicateIdentity(t *testing.T) {
	reg := registry.New()
	l := New(reg, nil, Options{OnFailure: FailContinue})

	plugins := []plugin.Plugin{
		newFakePlugin("alpha", registerOneCommand("build")),
		newFakePlugin("alpha", registerOneCommand("other")),
	}

	report, err := l.Load(context.Background(), plugins)
	require.NoError(t, err)

	require.NoError(t, report.Results[0].Err)
	require.Error(t, report.Results[1].Err)
	assert.Contains(t, report.Results[1].Err.Error(), "already claimed")

	_, ok := reg.Lookup(registry.KindCommand, "build")
	assert.True(t, ok)
	_, ok = reg.Lookup(registry.KindCommand, "other")
	assert.False(t, ok)
}

func TestLoadKeepsResourcesAcceptedBeforeFailure(t *testing.T) {
	reg := registry.New()
	l := New(reg, nil, Options{OnFailure: FailContinue})

	plugins := []plugin.Plugin{
		newFakePlugin("alpha", func(r *plugin.Registrator) error {
			if _, err := r.RegisterCommand("build", nil); err != nil {
				return err
			}
			return errors.New("entry point exploded")
		}),
		newFakePlugin("beta", registerOneCommand("test")),
	}

	report, err := l.Load(context.Background(), plugins)
	require.NoError(t, err)

	require.Error(t, report.Results[0].Err)
	require.Len(t, report.Results[0].Outcomes, 1)

	_, ok := reg.Lookup(registry.KindCommand, "build")
	assert.True(t, ok)
	_, ok = reg.Lookup(registry.KindCommand, "test")
	assert.True(t, ok)
}

func TestLoadHaltStopsAtFirstRegistrationFailure(t *testing.T) {
	reg := registry.New()
	l := New(reg, nil, Options{OnFailure: FailHalt})

	secondRan := false
	plugins := []plugin.Plugin{
		newFakePlugin("alpha", func(r *plugin.Registrator) error {
			return errors.New("entry point exploded")
		}),
		newFakePlugin("beta", func(r *plugin.Registrator) error {
			secondRan = true
			return nil
		}),
	}

	_, err := l.Load(context.Background(), plugins)
	require.Error(t, err)
	assert.False(t, secondRan)
}

func TestLoadParallelRegistersEveryPlugin(t *testing.T) {
	reg := registry.New()
	l := New(reg, nil, Options{Parallel: 3, OnFailure: FailContinue})

	var plugins []plugin.Plugin
	for i := 0; i < 9; i++ {
		name := fmt.Sprintf("plugin-%d", i)
		resource := fmt.Sprintf("cmd-%d", i)
		plugins = append(plugins, newFakePlugin(name, registerOneCommand(resource)))
	}

	report, err := l.Load(context.Background(), plugins)
	require.NoError(t, err)

	assert.Empty(t, report.Failed())
	assert.Equal(t, 9, report.Registered())
	assert.Equal(t, 9, reg.Len())
}

func TestLoadParallelConflictSetIsStable(t *testing.T) {
	reg := registry.New()
	l := New(reg, nil, Options{Parallel: 4, OnFailure: FailContinue})

	owners := []string{"alpha", "beta", "gamma", "delta"}
	var plugins []plugin.Plugin
	for _, owner := range owners {
		plugins = append(plugins, newFakePlugin(owner, registerOneCommand("build")))
	}

	report, err := l.Load(context.Background(), plugins)
	require.NoError(t, err)
	require.Equal(t, 4, report.Registered())

	// The interleaving is nondeterministic but the stored set is not:
	// one primary, every contributor retrievable.
	all := reg.Alternatives(registry.KindCommand, "build")
	require.Len(t, all, 4)

	seen := map[string]bool{}
	for _, e := range all {
		seen[e.Owner] = true
	}
	for _, owner := range owners {
		assert.True(t, seen[owner])
	}

	primary, ok := reg.Lookup(registry.KindCommand, "build")
	require.True(t, ok)
	assert.Equal(t, all[0], primary)
}

func TestLoadCancelledContext(t *testing.T) {
	reg := registry.New()
	l := New(reg, nil, Options{OnFailure: FailContinue})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := l.Load(ctx, []plugin.Plugin{
		newFakePlugin("alpha", registerOneCommand("build")),
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, report.Failed(), 1)
	assert.Equal(t, 0, reg.Len())
}

func TestReportAccessors(t *testing.T) {
	reg := registry.New()
	l := New(reg, nil, Options{OnFailure: FailContinue})

	plugins := []plugin.Plugin{
		newFakePlugin("alpha", func(r *plugin.Registrator) error {
			if _, err := r.RegisterCommand("build", nil); err != nil {
				return err
			}
			// Identical repeat: rejected as a duplicate.
			if _, err := r.RegisterCommand("build", nil); err != nil {
				return err
			}
			return nil
		}),
		newFakePlugin("beta", registerOneCommand("build")),
	}

	report, err := l.Load(context.Background(), plugins)
	require.NoError(t, err)

	rejections := report.Rejections()
	require.Len(t, rejections, 1)
	assert.Equal(t, registry.ReasonDuplicate, rejections[0].Reason)
	assert.Equal(t, "alpha", rejections[0].Owner)

	conflicts := report.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, "beta", conflicts[0].Owner)
	assert.Equal(t, "alpha", conflicts[0].ConflictOwner)

	assert.Empty(t, report.Failed())
	assert.Equal(t, 2, report.Registered())
}
