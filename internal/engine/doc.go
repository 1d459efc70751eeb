// Package engine derives every performance view from the activity
// journal: current per-category scores, the weighted overall score,
// per-category score history, the calendar-day streak, and heuristic
// advisory text.
//
// The engine is pure and stateless between calls. All state lives in the
// journal snapshot and the profile passed in; "now" comes from an
// injected Clock so every computation is deterministic under test.
//
// Scoring invariants:
//   - Every configured category starts at InitialScore (30.0).
//   - Each applied entry clamps the score at MaxScore (100.0). There is
//     no lower clamp; negative-impact activities may drive a score below
//     zero.
//   - Entries referencing an unknown category are inert - ignored, never
//     an error.
//   - ScoresFromLog folds in the journal's stored order; History replays
//     in timestamp order. The divergence is deliberate: because the
//     per-entry clamp is nonlinear, re-sorting would change which points
//     get "wasted" above the cap, and the aggregate fold preserves the
//     behavior the journal was written under.
package engine
