package harness

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/minhtran/pace/internal/config"
	"github.com/minhtran/pace/internal/engine"
	"github.com/minhtran/pace/internal/journal"
	"github.com/minhtran/pace/internal/record"
	"github.com/minhtran/pace/internal/testutil"
)

// scoreTolerance is the float comparison tolerance for expectations.
const scoreTolerance = 1e-9

// Result captures every derived view after a scenario's entries are
// journaled and replayed.
type Result struct {
	Scenario string             `json:"scenario"`
	Scores   map[string]float64 `json:"scores"`
	Overall  float64            `json:"overall"`
	Streak   int                `json:"streak"`
	Advice   string             `json:"advice"`
}

// Run executes a scenario against a throwaway journal and verifies its
// expectations. baseDir resolves the scenario's profile path.
func Run(scenario *Scenario, baseDir string) (*Result, error) {
	cfg, err := config.Load(filepath.Join(baseDir, scenario.Profile))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	now, err := time.Parse(time.RFC3339, scenario.Now)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	clock := testutil.NewFixedClock(now)
	eng := engine.New(cfg, engine.WithClock(clock))

	j, err := journal.OpenMemory()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	defer j.Close()

	ctx := context.Background()
	for i, step := range scenario.Entries {
		entry, err := buildEntry(eng, now, step)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: entries[%d]: %w", scenario.Name, i, err)
		}
		if _, err := j.Append(ctx, entry); err != nil {
			return nil, fmt.Errorf("scenario %s: entries[%d]: %w", scenario.Name, i, err)
		}
	}

	log, err := j.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	scores := eng.ScoresFromLog(log)
	result := &Result{
		Scenario: scenario.Name,
		Scores:   scores,
		Overall:  eng.Overall(scores),
		Streak:   eng.Streak(log),
		Advice:   eng.Feedback(scores, log),
	}

	if err := verify(scenario, result); err != nil {
		return result, err
	}

	return result, nil
}

// buildEntry converts a scenario step into a journal entry. Points are
// frozen at logging time via the engine, exactly as production does.
func buildEntry(eng *engine.Engine, now time.Time, step EntryStep) (record.Entry, error) {
	at := now.AddDate(0, 0, -step.DaysAgo)
	if step.At != "" {
		tod, err := time.Parse("15:04", step.At)
		if err != nil {
			return record.Entry{}, err
		}
		at = time.Date(at.Year(), at.Month(), at.Day(), tod.Hour(), tod.Minute(), 0, 0, now.Location())
	}

	points := eng.Improvement(step.Category, step.Activity, step.Quantity)
	return record.New(step.Category, step.Activity, step.Quantity, points, at), nil
}

// verify checks the scenario's point assertions against the result.
func verify(scenario *Scenario, result *Result) error {
	expect := scenario.Expect
	if expect == nil {
		return nil
	}

	for key, want := range expect.Scores {
		got, ok := result.Scores[key]
		if !ok {
			return fmt.Errorf("scenario %s: expected score for unknown category %q", scenario.Name, key)
		}
		if math.Abs(got-want) > scoreTolerance {
			return fmt.Errorf("scenario %s: score[%s] = %v, want %v", scenario.Name, key, got, want)
		}
	}

	if expect.Overall != nil && math.Abs(result.Overall-*expect.Overall) > scoreTolerance {
		return fmt.Errorf("scenario %s: overall = %v, want %v", scenario.Name, result.Overall, *expect.Overall)
	}

	if expect.Streak != nil && result.Streak != *expect.Streak {
		return fmt.Errorf("scenario %s: streak = %d, want %d", scenario.Name, result.Streak, *expect.Streak)
	}

	return nil
}
