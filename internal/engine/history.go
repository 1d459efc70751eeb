package engine

import (
	"math"
	"sort"
	"time"

	"github.com/minhtran/pace/internal/record"
)

// ScorePoint is one point in a category's score trajectory.
type ScorePoint struct {
	At    time.Time `json:"at"`
	Score float64   `json:"score"`
}

// History replays the journal in timestamp order and returns each
// category's score trajectory.
//
// Every configured category's series is seeded with a synthetic point at
// midnight-of-today minus historySeedDays, at InitialScore, so charts
// have a stable left edge even for categories with no entries yet. A new
// point is appended each time an entry for that category is applied.
//
// The result is a fresh snapshot per call; it is not incremental.
func (e *Engine) History(log []record.Entry) map[string][]ScorePoint {
	now := e.clock.Now()
	seed := midnight(now).AddDate(0, 0, -historySeedDays)

	history := make(map[string][]ScorePoint, e.cfg.Len())
	running := make(map[string]float64, e.cfg.Len())
	for _, key := range e.cfg.Keys() {
		history[key] = []ScorePoint{{At: seed, Score: InitialScore}}
		running[key] = InitialScore
	}

	sorted := make([]record.Entry, len(log))
	copy(sorted, log)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LoggedAt.Before(sorted[j].LoggedAt)
	})

	for _, entry := range sorted {
		current, ok := running[entry.Category]
		if !ok {
			continue
		}
		next := math.Min(MaxScore, current+entry.Points)
		running[entry.Category] = next
		history[entry.Category] = append(history[entry.Category], ScorePoint{
			At:    entry.LoggedAt,
			Score: next,
		})
	}

	return history
}

// midnight truncates t to the start of its calendar day, keeping the
// location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
