package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/minhtran/pace/internal/record"
)

// Append inserts an activity record and returns it with its assigned seq.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - appending the same
// entry twice is a no-op that returns the stored entry's seq.
//
// Timestamps are persisted as ISO-8601 (RFC 3339) text with full
// precision, preserving the offset they were logged in.
func (j *Journal) Append(ctx context.Context, e record.Entry) (record.Entry, error) {
	if err := record.Validate(e); err != nil {
		return record.Entry{}, fmt.Errorf("append: %w", err)
	}

	result, err := j.db.ExecContext(ctx, `
		INSERT INTO entries (id, logged_at, category, activity, quantity, points)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		e.ID,
		e.LoggedAt.Format(time.RFC3339Nano),
		e.Category,
		e.Activity,
		e.Quantity,
		e.Points,
	)
	if err != nil {
		return record.Entry{}, fmt.Errorf("append entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return record.Entry{}, fmt.Errorf("append entry: rows affected: %w", err)
	}

	if rowsAffected > 0 {
		seq, err := result.LastInsertId()
		if err != nil {
			return record.Entry{}, fmt.Errorf("append entry: last insert id: %w", err)
		}
		e.Seq = seq
		return e, nil
	}

	// Conflict - the entry already exists, fetch its seq.
	err = j.db.QueryRowContext(ctx, `
		SELECT seq FROM entries WHERE id = ?
	`, e.ID).Scan(&e.Seq)
	if err != nil {
		return record.Entry{}, fmt.Errorf("append entry: select existing: %w", err)
	}
	return e, nil
}

// Reset removes all persisted history and rewinds the seq counter, so a
// reset journal is indistinguishable from a fresh one.
func (j *Journal) Reset(ctx context.Context) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("reset journal: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("reset journal: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name = 'entries'`); err != nil {
		return fmt.Errorf("reset journal: rewind seq: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("reset journal: commit: %w", err)
	}
	return nil
}
