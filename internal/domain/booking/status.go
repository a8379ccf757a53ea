package booking

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsDecided reports whether the reservation has left the pending state.
// Approved and Rejected are terminal.
func (s Status) IsDecided() bool {
	return s == StatusApproved || s == StatusRejected
}

// Blocks reports whether a reservation in this status occupies its slot.
// A pending request reserves the slot provisionally; only a rejected one
// frees it.
func (s Status) Blocks() bool {
	return s != StatusRejected
}

type Decision = Status

// ParseDecision accepts only the two terminal states.
func ParseDecision(raw string) (Decision, bool) {
	switch Status(raw) {
	case StatusApproved, StatusRejected:
		return Status(raw), true
	default:
		return "", false
	}
}
