package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/minhtran/pace/internal/record"
)

// encouragement is emitted when no other feedback rule fires.
const encouragement = "Everything is on track. Keep the momentum going!"

// Feedback generates advisory text from current scores and the journal.
// It is a fixed rule set, not a learned model. Rules apply in order,
// each contributing at most one paragraph:
//
//  1. callout for the highest-scoring category
//  2. caution for the lowest-scoring category when it is below 50
//  3. per-category inactivity warning when the most recent entry is 7 or
//     more whole days old (categories with no entries are skipped)
//  4. a generic encouragement when nothing else fired
//
// Paragraphs are joined with a blank line. The function is total: empty
// scores and an empty log produce the encouragement message.
func (e *Engine) Feedback(scores map[string]float64, log []record.Entry) string {
	var paragraphs []string

	if len(scores) > 0 {
		best, worst := extremes(scores)
		paragraphs = append(paragraphs, fmt.Sprintf(
			"Top form: %s (%.1f/100).", e.displayName(best), scores[best]))
		if scores[worst] < cautionBelow {
			paragraphs = append(paragraphs, fmt.Sprintf(
				"Needs attention: %s (%.1f/100). Try a small activity to get moving again.",
				e.displayName(worst), scores[worst]))
		}
	}

	paragraphs = append(paragraphs, e.staleWarnings(log)...)

	if len(paragraphs) == 0 {
		return encouragement
	}
	return strings.Join(paragraphs, "\n\n")
}

// extremes returns the best- and worst-scoring keys. Ties resolve to the
// lexicographically first key so output is deterministic.
func extremes(scores map[string]float64) (best, worst string) {
	keys := make([]string, 0, len(scores))
	for key := range scores {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	best, worst = keys[0], keys[0]
	for _, key := range keys[1:] {
		if scores[key] > scores[best] {
			best = key
		}
		if scores[key] < scores[worst] {
			worst = key
		}
	}
	return best, worst
}

// staleWarnings emits one warning per configured category whose most
// recent entry is staleAfterDays or more whole days before now. The log
// is scanned in reverse so the first hit per category is its most recent
// entry.
func (e *Engine) staleWarnings(log []record.Entry) []string {
	lastSeen := make(map[string]time.Time)
	for i := len(log) - 1; i >= 0; i-- {
		entry := log[i]
		if _, ok := e.cfg.Category(entry.Category); !ok {
			continue
		}
		if _, ok := lastSeen[entry.Category]; !ok {
			lastSeen[entry.Category] = entry.LoggedAt
		}
	}

	now := e.clock.Now()
	var warnings []string
	for _, key := range e.cfg.Keys() {
		last, ok := lastSeen[key]
		if !ok {
			continue
		}
		days := wholeDays(now.Sub(last))
		if days >= staleAfterDays {
			warnings = append(warnings, fmt.Sprintf(
				"It has been %d days since your last activity in %s.",
				days, e.displayName(key)))
		}
	}
	return warnings
}

// wholeDays floors a duration to whole 24-hour days.
func wholeDays(d time.Duration) int {
	return int(d.Hours() / 24)
}
