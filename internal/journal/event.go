package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event is one logged smoking occurrence. Events are immutable after
// creation; an edit is modeled as delete followed by re-add.
type Event struct {
	// ID is an opaque identifier, stable across save/load/export/import.
	ID string `json:"id"`
	// SmokeType is the substance label. Labels are denormalized into the
	// event, not foreign-keyed into the catalog.
	SmokeType string `json:"smokeType"`
	// Activity is what the user was doing at the time.
	Activity string `json:"activity"`
	// OccurredAt is the absolute instant of the occurrence, stored in UTC.
	// Display and bucketing convert to the observer's timezone.
	OccurredAt time.Time `json:"dateTime"`
}

// NewEvent creates an event with a fresh id and validated fields.
func NewEvent(smokeType, activity string, at time.Time) (Event, error) {
	smokeType = strings.TrimSpace(smokeType)
	activity = strings.TrimSpace(activity)
	if smokeType == "" {
		return Event{}, fmt.Errorf("smoke type must not be empty")
	}
	if activity == "" {
		return Event{}, fmt.Errorf("activity must not be empty")
	}
	if at.IsZero() {
		return Event{}, fmt.Errorf("timestamp must be a valid instant")
	}
	return Event{
		ID:         newID(),
		SmokeType:  smokeType,
		Activity:   activity,
		OccurredAt: at.UTC(),
	}, nil
}

// newID returns a time-ordered UUID, falling back to v4.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
