package engine

import (
	"math"

	"github.com/minhtran/pace/internal/record"
)

// Improvement returns the score delta for logging quantity units of an
// activity: quantity x impact_per_unit.
//
// Unknown category or activity keys yield 0.0 rather than an error. The
// function is used for previews before a key has been validated at the
// boundary, so the permissive default is deliberate.
func (e *Engine) Improvement(categoryKey, activityKey string, quantity float64) float64 {
	act, ok := e.cfg.Activity(categoryKey, activityKey)
	if !ok {
		return 0.0
	}
	return quantity * act.ImpactPerUnit
}

// ScoresFromLog computes current per-category scores by folding over the
// journal in its given order.
//
// Every configured category starts at InitialScore; each recognized
// entry applies score = min(MaxScore, score+points). Entries for unknown
// categories are inert. The fold deliberately does not re-sort by
// timestamp - see the package comment.
func (e *Engine) ScoresFromLog(log []record.Entry) map[string]float64 {
	scores := make(map[string]float64, e.cfg.Len())
	for _, key := range e.cfg.Keys() {
		scores[key] = InitialScore
	}

	for _, entry := range log {
		current, ok := scores[entry.Category]
		if !ok {
			continue
		}
		scores[entry.Category] = math.Min(MaxScore, current+entry.Points)
	}

	return scores
}

// Overall returns the weighted overall score: the sum of score x weight
// over the configured categories. Weights are taken as configured and
// are not normalized.
func (e *Engine) Overall(scores map[string]float64) float64 {
	var total float64
	for _, key := range e.cfg.Keys() {
		cat, _ := e.cfg.Category(key)
		total += scores[key] * cat.Weight
	}
	return total
}
