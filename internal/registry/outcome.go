package registry

// Decision classifies how the resolver disposed of a candidate entry.
type Decision string

const (
	// AcceptedPrimary means the candidate now answers default lookups for
	// its key, demoting any previous primary to an alternative.
	AcceptedPrimary Decision = "primary"
	// AcceptedAlternative means the candidate was stored behind the
	// current primary and remains retrievable by introspection.
	AcceptedAlternative Decision = "alternative"
	// Rejected means the candidate was discarded and the registry is
	// unchanged.
	Rejected Decision = "rejected"
)

// Icon returns the Unicode marker for the decision.
func (d Decision) Icon() string {
	switch d {
	case AcceptedPrimary:
		return "🟢"
	case AcceptedAlternative:
		return "🟡"
	case Rejected:
		return "🔴"
	default:
		return "⚪"
	}
}

// IconFallback returns the ASCII marker used when Unicode is not supported.
func (d Decision) IconFallback() string {
	switch d {
	case AcceptedPrimary:
		return "[OK]"
	case AcceptedAlternative:
		return "[AL]"
	case Rejected:
		return "[XX]"
	default:
		return "[??]"
	}
}

// RejectReason explains a Rejected decision.
type RejectReason string

const (
	// ReasonDuplicate marks a repeat registration of an identical
	// (owner, version) pair under the same key.
	ReasonDuplicate RejectReason = "duplicate"
)

// Outcome reports the disposition of a single Insert call. It is the
// structured result the host logs or surfaces to plugin authors; only
// lifecycle violations and malformed input are reported as errors
// instead.
type Outcome struct {
	Decision Decision
	Key      Key
	Owner    string

	// Reason is set when Decision is Rejected.
	Reason RejectReason
	// ConflictOwner identifies the existing entry the candidate clashed
	// with: the duplicate's owner on rejection, the displaced or retained
	// primary's owner otherwise. Empty for an uncontested registration.
	ConflictOwner string
}

// Accepted reports whether the entry was stored in any position.
func (o Outcome) Accepted() bool {
	return o.Decision == AcceptedPrimary || o.Decision == AcceptedAlternative
}
