package host

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/extendy/internal/registry"
)

// UnknownCommandError is returned when dispatch names a command no
// plugin registered.
type UnknownCommandError struct {
	Name      string
	Available []string
}

func (e UnknownCommandError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("unknown command %q\nHint: no plugin registered any command; check the manifest's plugins list", e.Name)
	}
	return fmt.Sprintf("unknown command %q\nHint: available commands: %s", e.Name, strings.Join(e.Available, ", "))
}

// UnknownServiceError is returned when a call names a service no plugin
// registered.
type UnknownServiceError struct {
	Name      string
	Available []string
}

func (e UnknownServiceError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("unknown service %q\nHint: no plugin registered any service; check the manifest's plugins list", e.Name)
	}
	return fmt.Sprintf("unknown service %q\nHint: available services: %s", e.Name, strings.Join(e.Available, ", "))
}

// BadHandleError is returned when a registered handle does not satisfy
// the host's callable contract for its kind.
type BadHandleError struct {
	Kind  registry.Kind
	Name  string
	Owner string
}

func (e BadHandleError) Error() string {
	return fmt.Sprintf(
		"resource %s/%s from '%s' does not satisfy the host contract\nHint: commands must be registered as host.CommandFunc and services as host.ServiceFunc",
		e.Kind,
		e.Name,
		e.Owner,
	)
}
