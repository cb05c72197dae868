package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Candidate is a proposed occupation of a resource, checked before persisting.
// ExcludeID carries the event's own id during in-place updates so an event is
// never reported as conflicting with itself.
type Candidate struct {
	OrgID      uuid.UUID
	ResourceID uuid.UUID
	Slot       TimeSlot
	ExcludeID  *uuid.UUID
}

// ConflictError identifies the first persisted event whose window intersects
// the candidate's.
type ConflictError struct {
	EventID uuid.UUID
	Title   string
	Start   time.Time
	End     time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"schedule conflict: event %s (%q) already occupies %s - %s",
		e.EventID, e.Title,
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339),
	)
}

// CheckNoConflict decides whether the candidate may occupy its resource window.
// existing holds the persisted events for the candidate's organization and
// resource; entries scoped to any other organization or resource are ignored,
// never compared. A candidate without a slot passes trivially: presence
// validation is the caller's job. Pure read-then-decide; nothing is persisted
// here and the caller must only persist on success.
func CheckNoConflict(c Candidate, existing []*Event) error {
	if c.Slot.IsZero() {
		return nil
	}

	for _, ev := range existing {
		if ev == nil {
			continue
		}
		if c.ExcludeID != nil && ev.ID() == *c.ExcludeID {
			continue
		}
		if ev.OrgID() != c.OrgID || ev.ResourceID() != c.ResourceID {
			continue
		}
		if c.Slot.Overlaps(ev.Slot()) {
			return &ConflictError{
				EventID: ev.ID(),
				Title:   ev.Title(),
				Start:   ev.Slot().Start(),
				End:     ev.Slot().End(),
			}
		}
	}

	return nil
}
