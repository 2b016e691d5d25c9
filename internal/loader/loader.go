package loader

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/extendy/internal/logger"
	"github.com/alexisbeaulieu97/extendy/internal/plugin"
	"github.com/alexisbeaulieu97/extendy/internal/registry"
	extendyerrors "github.com/alexisbeaulieu97/extendy/pkg/errors"
)

// Loader runs plugin loading sessions against a shared resource
// registry. A session validates plugin identities, hands each plugin a
// registrator stamped with its identity, runs the registration entry
// points sequentially or with bounded parallelism, and aggregates every
// outcome into a report for the host to act on. The loader itself never
// freezes the registry; that is the consuming host's phase transition.
type Loader struct {
	reg  *registry.Registry
	log  *logger.Logger
	opts Options
}

// New creates a loader for the given registry. A nil logger disables
// session logging.
func New(reg *registry.Registry, log *logger.Logger, opts Options) *Loader {
	if opts.OnFailure == "" {
		opts.OnFailure = DefaultOptions().OnFailure
	}
	return &Loader{reg: reg, log: log, opts: opts}
}

// Load runs a single loading session over the given plugins, in
// discovery order. Plugin failures are collected in the report; the
// returned error is non-nil only when the failure policy halts the
// session or the context is cancelled. A single plugin's conflicts
// never abort the session.
func (l *Loader) Load(ctx context.Context, plugins []plugin.Plugin) (*Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	report := &Report{Results: make([]Result, len(plugins))}

	// Identity pre-flight: metadata must validate and owner identities
	// must be session-unique before any registration runs.
	seen := make(map[string]int, len(plugins))
	runnable := make([]bool, len(plugins))

	for i, p := range plugins {
		meta := p.Metadata()
		res := &report.Results[i]
		res.Owner = meta.Name

		if err := meta.Validate(); err != nil {
			res.Err = extendyerrors.NewPluginError(meta.Name, err)
			continue
		}
		if prev, dup := seen[meta.Name]; dup {
			res.Err = extendyerrors.NewPluginError(meta.Name,
				fmt.Errorf("identity %q already claimed by the plugin at position %d", meta.Name, prev))
			continue
		}

		seen[meta.Name] = i
		runnable[i] = true
	}

	if l.opts.OnFailure == FailHalt {
		if err := report.firstFailure(); err != nil {
			return report, err
		}
	}

	if l.opts.Parallel > 1 {
		l.loadParallel(ctx, plugins, runnable, report)
	} else {
		l.loadSequential(ctx, plugins, runnable, report)
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}
	if l.opts.OnFailure == FailHalt {
		if err := report.firstFailure(); err != nil {
			return report, err
		}
	}

	return report, nil
}

func (l *Loader) loadSequential(ctx context.Context, plugins []plugin.Plugin, runnable []bool, report *Report) {
	for i, p := range plugins {
		if !runnable[i] {
			continue
		}

		res := &report.Results[i]
		if err := ctx.Err(); err != nil {
			res.Err = extendyerrors.NewPluginError(res.Owner, err)
			continue
		}

		l.runPlugin(p, res)
		if res.Err != nil && l.opts.OnFailure == FailHalt {
			return
		}
	}
}

func (l *Loader) loadParallel(ctx context.Context, plugins []plugin.Plugin, runnable []bool, report *Report) {
	sem := make(chan struct{}, l.opts.Parallel)
	var wg sync.WaitGroup

	for i, p := range plugins {
		if !runnable[i] {
			continue
		}

		wg.Add(1)
		go func(res *Result, p plugin.Plugin) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				res.Err = extendyerrors.NewPluginError(res.Owner, ctx.Err())
				return
			}

			l.runPlugin(p, res)
		}(&report.Results[i], p)
	}

	wg.Wait()
}

// runPlugin invokes one plugin's registration entry point and records
// its outcomes. Resources accepted before a failure stay registered.
func (l *Loader) runPlugin(p plugin.Plugin, res *Result) {
	log := l.log.WithPlugin(res.Owner)

	r, err := plugin.NewRegistrator(l.reg, res.Owner)
	if err != nil {
		res.Err = extendyerrors.NewPluginError(res.Owner, err)
		return
	}

	log.Debug("running registration entry point")

	if err := p.Register(r); err != nil {
		res.Err = extendyerrors.NewPluginError(res.Owner, err)
	}
	res.Outcomes = r.Outcomes()

	for _, outcome := range res.Outcomes {
		switch {
		case outcome.Decision == registry.Rejected:
			log.Warn(fmt.Sprintf("registration of %s rejected: %s", outcome.Key, outcome.Reason))
		case outcome.ConflictOwner != "":
			log.Debug(fmt.Sprintf("%s contested with '%s', stored as %s", outcome.Key, outcome.ConflictOwner, outcome.Decision))
		}
	}

	if res.Err != nil {
		log.Error(res.Err, "plugin registration failed")
	}
}
