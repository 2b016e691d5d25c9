package registry

// resolution is the resolver's verdict on one candidate entry.
type resolution struct {
	decision      Decision
	reason        RejectReason
	conflictOwner string
}

// resolve applies the default conflict policy to a candidate against the
// existing sequence for its key. It is a pure function: it never mutates
// either argument and returns the same verdict for the same inputs.
//
// Policy, checked in order:
//  1. An empty sequence accepts the candidate as primary.
//  2. A candidate repeating any stored entry's (owner, version) pair is
//     rejected as a duplicate, so an accidentally re-invoked registration
//     function surfaces instead of passing silently.
//  3. An unversioned candidate colliding with another owner's unversioned
//     primary is stored as an alternative; it never displaces the holder.
//  4. A versioned candidate strictly newer than the current primary
//     supersedes it. Tags without a defined order fall back to
//     registration time, so the later arrival wins.
//  5. Everything else is stored as an alternative.
func resolve(candidate Entry, existing []Entry) resolution {
	if len(existing) == 0 {
		return resolution{decision: AcceptedPrimary}
	}

	for _, e := range existing {
		if e.Owner == candidate.Owner && e.Version == candidate.Version {
			return resolution{
				decision:      Rejected,
				reason:        ReasonDuplicate,
				conflictOwner: e.Owner,
			}
		}
	}

	primary := existing[0]

	if !candidate.Versioned() && !primary.Versioned() && candidate.Owner != primary.Owner {
		return resolution{decision: AcceptedAlternative, conflictOwner: primary.Owner}
	}

	if candidate.Versioned() {
		cmp, ordered := compareTags(candidate.Version, primary.Version)
		if !ordered || cmp > 0 {
			return resolution{decision: AcceptedPrimary, conflictOwner: primary.Owner}
		}
	}

	return resolution{decision: AcceptedAlternative, conflictOwner: primary.Owner}
}
