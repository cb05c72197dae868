package booking

// Status is the booking state machine: the only legal transition is
// confirmed -> cancelled, and nothing leaves cancelled.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusConfirmed && next == StatusCancelled
}
