// Package journal provides durable storage for the activity log.
//
// The journal is an append-only, totally ordered sequence of activity
// records backed by a single SQLite file. It is the single source of
// truth: scores, history, streaks, and feedback are all derived by
// replaying it, never stored.
//
// The store assumes a single user and a single process. Appends are
// idempotent on entry ID; reads return entries in a deterministic order
// (seq ASC, id ASC). A corrupt database file surfaces as ErrCorrupt so
// the boundary can degrade to an empty log with a warning instead of
// failing the caller.
package journal
