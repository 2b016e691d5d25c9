package loader

import (
	"github.com/alexisbeaulieu97/extendy/internal/registry"
)

// Result captures one plugin's activity within a loading session.
type Result struct {
	Owner    string
	Outcomes []registry.Outcome
	Err      error
}

// Report aggregates a session's results in discovery order. It is the
// structured surface the host inspects to decide whether to warn, halt,
// or continue; the loader itself only halts on hard failures.
type Report struct {
	Results []Result
}

// Conflicts returns every accepted outcome that contested an existing
// entry: cross-owner collisions stored as alternatives and
// supersessions of a previous primary.
func (r *Report) Conflicts() []registry.Outcome {
	var out []registry.Outcome
	for _, res := range r.Results {
		for _, o := range res.Outcomes {
			if o.Accepted() && o.ConflictOwner != "" {
				out = append(out, o)
			}
		}
	}
	return out
}

// Rejections returns every rejected outcome.
func (r *Report) Rejections() []registry.Outcome {
	var out []registry.Outcome
	for _, res := range r.Results {
		for _, o := range res.Outcomes {
			if o.Decision == registry.Rejected {
				out = append(out, o)
			}
		}
	}
	return out
}

// Failed returns the results of plugins whose loading or registration
// failed hard.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Registered returns the total number of accepted contributions.
func (r *Report) Registered() int {
	n := 0
	for _, res := range r.Results {
		for _, o := range res.Outcomes {
			if o.Accepted() {
				n++
			}
		}
	}
	return n
}

// firstFailure returns the first hard failure in discovery order, or
// nil when every plugin loaded cleanly.
func (r *Report) firstFailure() error {
	for _, res := range r.Results {
		if res.Err != nil {
			return res.Err
		}
	}
	return nil
}
