package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/minhtran/pace/internal/record"
)

// ReadAll returns the full journal in its canonical order: seq ASC,
// id ASC. This is the order scoring folds in; only the historical view
// re-sorts by timestamp.
//
// Returns an empty slice (not nil) when the journal has no entries.
func (j *Journal) ReadAll(ctx context.Context) ([]record.Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT seq, id, logged_at, category, activity, quantity, points
		FROM entries
		ORDER BY seq ASC, id ASC
	`)
	if err != nil {
		return nil, classify("query entries", err)
	}
	defer rows.Close()

	entries := []record.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}

// Count returns the number of entries in the journal.
func (j *Journal) Count(ctx context.Context) (int, error) {
	var n int
	if err := j.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

// scanEntry scans a row into an Entry. The journal is the only writer,
// so an unparsable stored timestamp is an unexpected-input condition and
// propagates as an error rather than being skipped.
func scanEntry(rows *sql.Rows) (record.Entry, error) {
	var e record.Entry
	var loggedAt string

	if err := rows.Scan(&e.Seq, &e.ID, &loggedAt, &e.Category, &e.Activity, &e.Quantity, &e.Points); err != nil {
		return record.Entry{}, fmt.Errorf("scan entry: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, loggedAt)
	if err != nil {
		return record.Entry{}, fmt.Errorf("scan entry %s: bad timestamp %q: %w", e.ID, loggedAt, err)
	}
	e.LoggedAt = t

	return e, nil
}
