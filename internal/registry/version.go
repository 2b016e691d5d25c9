package registry

import (
	"strconv"
	"strings"
)

// compareTags orders two version tags. The empty tag sorts below every
// explicit tag. Tags whose dot-separated segments are all decimal
// numbers compare numerically segment by segment, a missing trailing
// segment ranking below a present one. The second return value is false
// when the pair has no defined order; callers treat that as a tie broken
// by registration time.
func compareTags(a, b string) (int, bool) {
	if a == b {
		return 0, true
	}
	if a == "" {
		return -1, true
	}
	if b == "" {
		return 1, true
	}

	as, ok := numericSegments(a)
	if !ok {
		return 0, false
	}
	bs, ok := numericSegments(b)
	if !ok {
		return 0, false
	}

	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			if as[i] < bs[i] {
				return -1, true
			}
			return 1, true
		}
	}

	switch {
	case len(as) < len(bs):
		return -1, true
	case len(as) > len(bs):
		return 1, true
	default:
		return 0, true
	}
}

// numericSegments parses a dotted tag into numeric segments. The second
// return value is false when any segment is empty, signed, or otherwise
// non-numeric.
func numericSegments(tag string) ([]uint64, bool) {
	parts := strings.Split(tag, ".")
	segments := make([]uint64, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, false
		}
		segments = append(segments, n)
	}
	return segments, true
}
