package schedule

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeSlot = errors.New("slot must end strictly after it starts")

// TimeSlot is a half-open interval [start, end). The end instant is excluded,
// so back-to-back slots share a boundary without overlapping.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() || end.IsZero() {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	if !end.After(start) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{start: start, end: end}, nil
}

func ReconstructTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start, end: end}
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) IsZero() bool {
	return ts.start.IsZero() || ts.end.IsZero()
}

// Overlaps reports whether two half-open intervals intersect.
// Touching endpoints (A ends exactly when B starts) do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}
