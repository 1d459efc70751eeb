package engine

import (
	"sort"
	"time"

	"github.com/minhtran/pace/internal/record"
)

// Streak returns the number of consecutive calendar days, ending today
// or yesterday, on which at least one entry was logged.
//
// Multiple entries on one day count once. The streak is 0 when the log
// is empty or the most recent active day is older than yesterday.
// Calendar days are taken in the clock's location.
func (e *Engine) Streak(log []record.Entry) int {
	if len(log) == 0 {
		return 0
	}

	now := e.clock.Now()
	loc := now.Location()

	seen := make(map[time.Time]struct{})
	for _, entry := range log {
		seen[midnight(entry.LoggedAt.In(loc))] = struct{}{}
	}

	active := make([]time.Time, 0, len(seen))
	for day := range seen {
		active = append(active, day)
	}
	sort.Slice(active, func(i, j int) bool { return active[j].Before(active[i]) })

	today := midnight(now)
	yesterday := today.AddDate(0, 0, -1)
	if !active[0].Equal(today) && !active[0].Equal(yesterday) {
		return 0
	}

	// Walk backward from the most recent active day; the first gap in the
	// contiguous run ends the streak.
	streak := 0
	for i, day := range active {
		if !active[0].AddDate(0, 0, -i).Equal(day) {
			break
		}
		streak++
	}
	return streak
}
