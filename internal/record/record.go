// Package record defines the activity record: one immutable, append-only
// journal entry representing a single act of logging an activity.
package record

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is a single activity record.
//
// Entries are immutable once appended. Points carries the score delta
// (quantity x impact_per_unit) as computed at logging time, so replay does
// not depend on the profile that was active when the entry was written.
//
// The JSON layout matches the persisted journal document:
// timestamp is ISO-8601, category and activity are profile keys.
type Entry struct {
	ID       string    `json:"id"`
	Seq      int64     `json:"-"`
	LoggedAt time.Time `json:"timestamp"`
	Category string    `json:"category"`
	Activity string    `json:"activity"`
	Quantity float64   `json:"quantity"`
	Points   float64   `json:"points"`
}

// New constructs an entry stamped with a fresh UUID and the given time.
// Seq is zero until the journal assigns it on append.
func New(category, activity string, quantity, points float64, loggedAt time.Time) Entry {
	return Entry{
		ID:       uuid.NewString(),
		LoggedAt: loggedAt,
		Category: category,
		Activity: activity,
		Quantity: quantity,
		Points:   points,
	}
}

// Validate checks the well-formedness rules the journal enforces on append.
// The quantity must be a positive real; key fields and the timestamp must
// be present. Unknown (but non-empty) category keys are permitted - they
// are inert during scoring, not invalid.
func Validate(e Entry) error {
	if e.ID == "" {
		return fmt.Errorf("entry id is required")
	}
	if e.Category == "" {
		return fmt.Errorf("entry category is required")
	}
	if e.Activity == "" {
		return fmt.Errorf("entry activity is required")
	}
	if e.LoggedAt.IsZero() {
		return fmt.Errorf("entry timestamp is required")
	}
	if e.Quantity <= 0 {
		return fmt.Errorf("entry quantity must be positive, got %v", e.Quantity)
	}
	return nil
}
