package registry

import "fmt"

// ErrInvalidRegistration is returned when a registration carries
// malformed input: an empty name, owner identity, or kind. It is
// surfaced synchronously to the caller and never stored.
type ErrInvalidRegistration struct {
	Kind   Kind
	Name   string
	Owner  string
	Detail string
}

func (e ErrInvalidRegistration) Error() string {
	return fmt.Sprintf(
		"invalid registration of %s/%s by '%s': %s\nHint: registration input is validated before conflict resolution; fix the calling plugin",
		valueOrPlaceholder(string(e.Kind)),
		valueOrPlaceholder(e.Name),
		e.Owner,
		e.Detail,
	)
}

// ErrFrozenRegistry is returned when a mutation is attempted after
// Freeze. It marks a lifecycle violation in the loading phase and is
// never reported as a mere rejection outcome.
type ErrFrozenRegistry struct {
	Kind  Kind
	Name  string
	Owner string
}

func (e ErrFrozenRegistry) Error() string {
	return fmt.Sprintf(
		"registry is frozen; cannot register %s/%s for '%s'\nHint: all registration must complete before the host starts consuming the registry",
		e.Kind,
		e.Name,
		e.Owner,
	)
}

func valueOrPlaceholder(s string) string {
	if s == "" {
		return "<empty>"
	}
	return s
}
