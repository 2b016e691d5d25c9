package main

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/extendy/internal/host"
	"github.com/alexisbeaulieu97/extendy/internal/loader"
	"github.com/alexisbeaulieu97/extendy/internal/logger"
	"github.com/alexisbeaulieu97/extendy/internal/manifest"
	"github.com/alexisbeaulieu97/extendy/internal/plugin"
	"github.com/alexisbeaulieu97/extendy/internal/plugins"
	"github.com/alexisbeaulieu97/extendy/internal/registry"
)

// AppContext bundles the long-lived pieces of one loading session.
type AppContext struct {
	Manifest *manifest.Manifest
	Registry *registry.Registry
	Report   *loader.Report
	App      *host.App
	Log      *logger.Logger
}

// buildSession runs a full loading session: resolve the plugin set,
// load it into a fresh registry, freeze, and build the dispatch tables.
func buildSession(flags *rootFlags) (*AppContext, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	var m *manifest.Manifest
	selected := plugins.All()
	opts := loader.DefaultOptions()

	if flags.manifestPath != "" {
		parsed, err := manifest.Parse(flags.manifestPath)
		if err != nil {
			return nil, err
		}
		m = parsed

		if m.Settings.LogLevel != "" && !flags.verbose {
			level = m.Settings.LogLevel
		}

		selected, err = resolvePlugins(m)
		if err != nil {
			return nil, err
		}

		opts = sessionOptions(m.Settings, opts)
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	report, err := loader.New(reg, log, opts).Load(context.Background(), selected)
	if err != nil {
		return nil, err
	}

	app, err := host.Build(reg, log)
	if err != nil {
		return nil, err
	}

	return &AppContext{
		Manifest: m,
		Registry: reg,
		Report:   report,
		App:      app,
		Log:      log,
	}, nil
}

// resolvePlugins maps the manifest's enabled plugin names onto the
// builtin catalog, preserving manifest order.
func resolvePlugins(m *manifest.Manifest) ([]plugin.Plugin, error) {
	var out []plugin.Plugin
	for _, name := range m.EnabledPlugins() {
		p, ok := plugins.Lookup(name)
		if !ok {
			return nil, newCommandError(
				"load plugins",
				fmt.Sprintf("resolving plugin %q", name),
				fmt.Errorf("no such plugin in the builtin catalog"),
				"Run 'extendy plugins' to see the available plugins.",
			)
		}
		out = append(out, p)
	}
	return out, nil
}

// sessionOptions overlays manifest settings onto the environment defaults.
func sessionOptions(s manifest.Settings, defaults loader.Options) loader.Options {
	opts := defaults

	if s.Parallel > 0 {
		opts.Parallel = s.Parallel
	}

	switch s.OnError {
	case "halt":
		opts.OnFailure = loader.FailHalt
	case "continue":
		opts.OnFailure = loader.FailContinue
	}

	return opts
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}
