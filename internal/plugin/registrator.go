package plugin

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/extendy/internal/registry"
)

// Registrator is the per-plugin facade over the shared resource
// registry. Discovery constructs one per plugin and passes it to the
// plugin's Register entry point; every contribution made through it is
// stamped with the owning plugin's identity. Registrators for different
// plugins may write to the same registry concurrently; the registry
// serializes the actual insertions.
//
// The registrator records the outcome of each call it forwards, so the
// loading session can report conflicts and rejections without relying
// on plugins to do so.
type Registrator struct {
	reg   *registry.Registry
	owner string

	mu       sync.Mutex
	outcomes []registry.Outcome
}

// NewRegistrator binds a registrator to the shared registry under the
// given owner identity. The identity must be non-empty and is immutable
// for the registrator's lifetime.
func NewRegistrator(reg *registry.Registry, owner string) (*Registrator, error) {
	if reg == nil {
		return nil, fmt.Errorf("registrator requires a registry")
	}
	if strings.TrimSpace(owner) == "" {
		return nil, fmt.Errorf("registrator requires a non-empty owner identity")
	}
	return &Registrator{reg: reg, owner: owner}, nil
}

// Owner returns the plugin identity stamped on contributions.
func (r *Registrator) Owner() string {
	return r.owner
}

// Outcomes returns the recorded outcome of every registration forwarded
// so far, in call order. The result is a copy.
func (r *Registrator) Outcomes() []registry.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]registry.Outcome, len(r.outcomes))
	copy(out, r.outcomes)
	return out
}

// RegisterOption adjusts a single registration call.
type RegisterOption func(*registerOptions)

type registerOptions struct {
	version string
}

// WithVersion tags the contribution with an explicit version so it can
// supersede or coexist with other versions of the same resource.
// Without it the contribution is unversioned.
func WithVersion(tag string) RegisterOption {
	return func(o *registerOptions) {
		o.version = tag
	}
}

// RegisterCommand contributes a command under the plugin's identity.
// The name must be non-empty; the handle is stored opaquely and the
// host decides how to invoke it. The outcome reports how the conflict
// policy disposed of the contribution; errors are reserved for
// malformed input and post-freeze calls.
func (r *Registrator) RegisterCommand(name string, handle any, opts ...RegisterOption) (registry.Outcome, error) {
	return r.register(registry.KindCommand, name, handle, opts)
}

// RegisterService contributes a service under the plugin's identity,
// with the same contract as RegisterCommand.
func (r *Registrator) RegisterService(name string, handle any, opts ...RegisterOption) (registry.Outcome, error) {
	return r.register(registry.KindService, name, handle, opts)
}

func (r *Registrator) register(kind registry.Kind, name string, handle any, opts []RegisterOption) (registry.Outcome, error) {
	var options registerOptions
	for _, opt := range opts {
		opt(&options)
	}

	outcome, err := r.reg.Insert(kind, name, handle, r.owner, options.version)
	if err != nil {
		return outcome, err
	}

	r.mu.Lock()
	r.outcomes = append(r.outcomes, outcome)
	r.mu.Unlock()

	return outcome, nil
}
