package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type insertOp struct {
	kind    Kind
	name    string
	owner   string
	version string
}

// drawOps generates insertion sequences over a deliberately small value
// space so keys collide often enough to exercise every resolver branch.
func drawOps(t *rapid.T) []insertOp {
	kinds := []Kind{KindCommand, KindService}
	names := []string{"build", "test", "fetch", "sync"}
	owners := []string{"alpha", "beta", "gamma"}
	versions := []string{"", "1", "2", "1.0", "1.10", "nightly"}

	count := rapid.IntRange(1, 60).Draw(t, "opCount")
	ops := make([]insertOp, count)
	for i := range ops {
		ops[i] = insertOp{
			kind:    rapid.SampledFrom(kinds).Draw(t, "kind"),
			name:    rapid.SampledFrom(names).Draw(t, "name"),
			owner:   rapid.SampledFrom(owners).Draw(t, "owner"),
			version: rapid.SampledFrom(versions).Draw(t, "version"),
		}
	}
	return ops
}

func TestRegistry_PropertyBased_Invariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ops := drawOps(t)
		reg := New()

		// accepted tracks every stored (owner, version) pair per key, the
		// ground truth for duplicate detection and non-destructiveness.
		accepted := make(map[Key]map[[2]string]struct{})
		acceptedCount := 0

		for _, op := range ops {
			key := Key{Kind: op.kind, Name: op.name}
			pair := [2]string{op.owner, op.version}
			_, dup := accepted[key][pair]
			before := reg.Alternatives(op.kind, op.name)

			outcome, err := reg.Insert(op.kind, op.name, nil, op.owner, op.version)
			require.NoError(t, err)

			if dup {
				assert.Equal(t, Rejected, outcome.Decision)
				assert.Equal(t, ReasonDuplicate, outcome.Reason)
				assert.Equal(t, before, reg.Alternatives(op.kind, op.name))
			} else {
				assert.True(t, outcome.Accepted())
				if accepted[key] == nil {
					accepted[key] = make(map[[2]string]struct{})
				}
				accepted[key][pair] = struct{}{}
				acceptedCount++
			}

			assert.Equal(t, acceptedCount, reg.Len())

			seq := reg.Alternatives(op.kind, op.name)
			primary, ok := reg.Lookup(op.kind, op.name)
			require.True(t, ok)
			assert.Equal(t, seq[0], primary)
			for i := 2; i < len(seq); i++ {
				assert.Less(t, seq[i-1].Seq, seq[i].Seq)
			}
		}

		// Non-destructive resolution: every accepted contribution is still
		// retrievable exactly once.
		for key, pairs := range accepted {
			seq := reg.Alternatives(key.Kind, key.Name)
			assert.Len(t, seq, len(pairs))

			found := make(map[[2]string]int, len(seq))
			for _, e := range seq {
				found[[2]string{e.Owner, e.Version}]++
			}
			for pair := range pairs {
				assert.Equal(t, 1, found[pair])
			}
		}

		// All exposes exactly one primary per key in ascending sequence
		// order.
		for _, kind := range []Kind{KindCommand, KindService} {
			all := reg.All(kind)
			for i := 1; i < len(all); i++ {
				assert.Less(t, all[i-1].Seq, all[i].Seq)
			}
			for _, e := range all {
				primary, ok := reg.Lookup(kind, e.Name)
				require.True(t, ok)
				assert.Equal(t, e, primary)
			}
		}

		// Determinism: replaying the same insertions reproduces the exact
		// registry state.
		replay := New()
		for _, op := range ops {
			_, err := replay.Insert(op.kind, op.name, nil, op.owner, op.version)
			require.NoError(t, err)
		}
		for key := range accepted {
			assert.Equal(t,
				replay.Alternatives(key.Kind, key.Name),
				reg.Alternatives(key.Kind, key.Name),
			)
		}

		// Post-freeze immutability: every further insert fails and leaves
		// the stored sequences untouched.
		reg.Freeze()
		frozenView := make(map[Key][]Entry, len(accepted))
		for key := range accepted {
			frozenView[key] = reg.Alternatives(key.Kind, key.Name)
		}
		for _, op := range ops {
			_, err := reg.Insert(op.kind, op.name, nil, op.owner, op.version)
			var frozen ErrFrozenRegistry
			require.ErrorAs(t, err, &frozen)
		}
		for key := range accepted {
			assert.Equal(t, frozenView[key], reg.Alternatives(key.Kind, key.Name))
		}
	})
}
