package registry

import (
	"sort"
	"strings"
	"sync"
)

// Registry stores every resource contributed during a plugin loading
// session, grouped by (kind, name). Each group is an ordered sequence
// whose head is the primary entry answering default lookups; the tail
// holds alternatives in registration order. A registry is created at the
// start of a loading session, populated through Insert, and frozen once
// the host begins consuming it.
//
// All methods are safe for concurrent use. Insert runs its read,
// conflict resolution, and mutation as one critical section under a
// single lock; registration is a bounded startup phase, not a hot path.
type Registry struct {
	mu      sync.RWMutex
	entries map[Key][]Entry
	seq     uint64
	frozen  bool
}

// New creates an empty, unfrozen registry.
func New() *Registry {
	return &Registry{
		entries: make(map[Key][]Entry),
	}
}

// Insert submits a candidate resource for registration. Malformed input
// and post-freeze mutation fail with an error; every other disposition,
// including rejection of a duplicate, is reported through the Outcome.
// Each accepted entry consumes exactly one sequence number, giving a
// total order over registration events even when plugins register
// concurrently.
func (r *Registry) Insert(kind Kind, name string, handle any, owner, version string) (Outcome, error) {
	if strings.TrimSpace(string(kind)) == "" {
		return Outcome{}, ErrInvalidRegistration{Kind: kind, Name: name, Owner: owner, Detail: "kind must not be empty"}
	}
	if strings.TrimSpace(name) == "" {
		return Outcome{}, ErrInvalidRegistration{Kind: kind, Name: name, Owner: owner, Detail: "name must not be empty"}
	}
	if strings.TrimSpace(owner) == "" {
		return Outcome{}, ErrInvalidRegistration{Kind: kind, Name: name, Owner: owner, Detail: "owner identity must not be empty"}
	}

	key := Key{Kind: kind, Name: name}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return Outcome{}, ErrFrozenRegistry{Kind: kind, Name: name, Owner: owner}
	}

	candidate := Entry{Kind: kind, Name: name, Handle: handle, Owner: owner, Version: version}
	existing := r.entries[key]
	verdict := resolve(candidate, existing)

	switch verdict.decision {
	case AcceptedPrimary:
		r.seq++
		candidate.Seq = r.seq
		r.entries[key] = promote(existing, candidate)
	case AcceptedAlternative:
		r.seq++
		candidate.Seq = r.seq
		r.entries[key] = append(existing, candidate)
	case Rejected:
		// State untouched; rejected candidates consume no sequence number.
	}

	return Outcome{
		Decision:      verdict.decision,
		Key:           key,
		Owner:         owner,
		Reason:        verdict.reason,
		ConflictOwner: verdict.conflictOwner,
	}, nil
}

// promote places the candidate at the head of the sequence and re-files
// the demoted primary among the alternatives in registration order. The
// demoted entry is never dropped; prior contributors stay queryable.
func promote(existing []Entry, candidate Entry) []Entry {
	next := make([]Entry, 0, len(existing)+1)
	next = append(next, candidate)
	if len(existing) == 0 {
		return next
	}

	demoted := existing[0]
	tail := existing[1:]

	// The tail is kept in ascending Seq order, so a binary search finds
	// the demoted primary's slot.
	idx := sort.Search(len(tail), func(i int) bool { return tail[i].Seq > demoted.Seq })
	next = append(next, tail[:idx]...)
	next = append(next, demoted)
	next = append(next, tail[idx:]...)
	return next
}

// Lookup returns the primary entry for the key, reporting false when
// nothing is registered under it.
func (r *Registry) Lookup(kind Kind, name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seq := r.entries[Key{Kind: kind, Name: name}]
	if len(seq) == 0 {
		return Entry{}, false
	}
	return seq[0], true
}

// Alternatives returns every entry stored under the key, primary first,
// alternatives following in registration order. The result is a copy;
// mutating it does not affect the registry.
func (r *Registry) Alternatives(kind Kind, name string) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seq := r.entries[Key{Kind: kind, Name: name}]
	if len(seq) == 0 {
		return nil
	}
	out := make([]Entry, len(seq))
	copy(out, seq)
	return out
}

// All returns the primary entry of every key of the given kind, ordered
// by ascending registration sequence, so consumers build their dispatch
// tables deterministically.
func (r *Registry) All(kind Kind) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for key, seq := range r.entries {
		if key.Kind != kind || len(seq) == 0 {
			continue
		}
		out = append(out, seq[0])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

// Freeze transitions the registry to read-only. It is one-way and
// idempotent: later Insert calls fail with ErrFrozenRegistry while reads
// keep working without further synchronization concerns.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Len returns the number of stored entries across every key and kind.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, seq := range r.entries {
		n += len(seq)
	}
	return n
}
