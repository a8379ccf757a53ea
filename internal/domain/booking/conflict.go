package booking

// ConflictReason distinguishes why a candidate slot is refused so callers
// can offer alternatives.
type ConflictReason string

const (
	ConflictNone         ConflictReason = ""
	ConflictSessionTaken ConflictReason = "SESSION_TAKEN"
	ConflictTimeOverlap  ConflictReason = "TIME_OVERLAP"
)

func (r ConflictReason) Message() string {
	switch r {
	case ConflictSessionTaken:
		return "session already booked or awaiting approval"
	case ConflictTimeOverlap:
		return "time range overlaps another reservation"
	default:
		return ""
	}
}

// sessionsCollide encodes that the full day is the union of both
// half-sessions, checked symmetrically in both directions.
func sessionsCollide(requested, existing Session) bool {
	if requested == existing {
		return true
	}
	if existing == SessionFullDay || requested == SessionFullDay {
		return true
	}
	return false
}

// DetectConflict checks a candidate slot against the time specs of every
// blocking reservation already held for the same room and loan date. The
// caller is responsible for filtering the candidate set (non-rejected
// status, excluded id).
//
// Session-vs-session collisions report SESSION_TAKEN; everything else,
// including a session colliding with an explicit interval through its fixed
// window, reports TIME_OVERLAP.
func DetectConflict(candidate TimeSpec, existing []TimeSpec) ConflictReason {
	for _, other := range existing {
		if candidate.IsSession() && other.IsSession() {
			if sessionsCollide(candidate.Session(), other.Session()) {
				return ConflictSessionTaken
			}
			continue
		}
		if candidate.Overlaps(other) {
			return ConflictTimeOverlap
		}
	}
	return ConflictNone
}
