package host

import (
	"context"
	"sort"

	"github.com/alexisbeaulieu97/extendy/internal/logger"
	"github.com/alexisbeaulieu97/extendy/internal/registry"
	extendyerrors "github.com/alexisbeaulieu97/extendy/pkg/errors"
)

// CommandFunc is the handle contract for command resources. Plugins
// register values of this type and the host casts back before dispatch.
type CommandFunc func(ctx context.Context, args []string) error

// ServiceFunc is the handle contract for service resources. Services
// take named arguments and produce a result the caller renders.
type ServiceFunc func(ctx context.Context, args map[string]string) (any, error)

// App is the read side of a completed loading session. Build freezes the
// registry and indexes the primary entry of every resource, so dispatch
// is a map hit with no further conflict resolution.
type App struct {
	reg      *registry.Registry
	log      *logger.Logger
	commands map[string]registry.Entry
	services map[string]registry.Entry
}

// Build freezes the registry and constructs dispatch tables from its
// primary entries. Handles stay opaque until dispatch; a resource whose
// handle does not satisfy the host contract fails at invocation, not
// here, so plugins may register resources the host never calls.
func Build(reg *registry.Registry, log *logger.Logger) (*App, error) {
	if reg == nil {
		return nil, extendyerrors.NewValidationError("registry", "registry is nil", nil)
	}

	reg.Freeze()

	app := &App{
		reg:      reg,
		log:      log,
		commands: make(map[string]registry.Entry),
		services: make(map[string]registry.Entry),
	}

	for _, e := range reg.All(registry.KindCommand) {
		app.commands[e.Name] = e
	}
	for _, e := range reg.All(registry.KindService) {
		app.services[e.Name] = e
	}

	return app, nil
}

// Invoke dispatches a registered command by name.
func (a *App) Invoke(ctx context.Context, name string, args []string) error {
	entry, ok := a.commands[name]
	if !ok {
		return UnknownCommandError{Name: name, Available: a.Commands()}
	}

	fn, ok := entry.Handle.(CommandFunc)
	if !ok {
		return BadHandleError{Kind: registry.KindCommand, Name: name, Owner: entry.Owner}
	}

	if ctx == nil {
		ctx = context.Background()
	}

	a.log.WithFields(map[string]any{
		"command": name,
		"owner":   entry.Owner,
	}).Debug("dispatching command")

	if err := fn(ctx, args); err != nil {
		return extendyerrors.NewInvocationError(name, err)
	}

	return nil
}

// Call invokes a registered service by name and returns its result.
func (a *App) Call(ctx context.Context, name string, args map[string]string) (any, error) {
	entry, ok := a.services[name]
	if !ok {
		return nil, UnknownServiceError{Name: name, Available: a.Services()}
	}

	fn, ok := entry.Handle.(ServiceFunc)
	if !ok {
		return nil, BadHandleError{Kind: registry.KindService, Name: name, Owner: entry.Owner}
	}

	if ctx == nil {
		ctx = context.Background()
	}

	a.log.WithFields(map[string]any{
		"service": name,
		"owner":   entry.Owner,
	}).Debug("calling service")

	result, err := fn(ctx, args)
	if err != nil {
		return nil, extendyerrors.NewInvocationError(name, err)
	}

	return result, nil
}

// Commands returns the names of all dispatchable commands, sorted.
func (a *App) Commands() []string {
	out := make([]string, 0, len(a.commands))
	for name := range a.commands {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Services returns the names of all callable services, sorted.
func (a *App) Services() []string {
	out := make([]string, 0, len(a.services))
	for name := range a.services {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Command returns the primary entry backing a command name.
func (a *App) Command(name string) (registry.Entry, bool) {
	entry, ok := a.commands[name]
	return entry, ok
}

// Service returns the primary entry backing a service name.
func (a *App) Service(name string) (registry.Entry, bool) {
	entry, ok := a.services[name]
	return entry, ok
}
