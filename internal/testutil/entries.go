package testutil

import (
	"time"

	"github.com/minhtran/pace/internal/record"
)

// EntryAt builds a journal entry logged at the given time.
func EntryAt(at time.Time, category, activity string, quantity, points float64) record.Entry {
	return record.New(category, activity, quantity, points, at)
}

// EntryDaysAgo builds a journal entry logged a whole number of days
// before now, at the same time of day. days may be 0 for "today".
func EntryDaysAgo(now time.Time, days int, category, activity string, quantity, points float64) record.Entry {
	return record.New(category, activity, quantity, points, now.AddDate(0, 0, -days))
}
