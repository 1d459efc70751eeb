package journal

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 0 - Initial schema (pre-migration)
// 1 - Added index on entries.category for per-category scans
const currentSchemaVersion = 1

// ErrCorrupt reports that the journal file exists but is not a valid
// database. Callers should treat the journal as empty, warn the user,
// and leave the file in place until the next successful append.
var ErrCorrupt = errors.New("journal file is corrupt")

// Journal provides durable storage for activity records.
type Journal struct {
	db *sql.DB
}

// Open creates or opens the journal database at the given path.
// Applies required pragmas and migrations automatically; a missing file
// is created empty (not an error). Returns ErrCorrupt (wrapped) when the
// file exists but SQLite cannot read it.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	// SQLite only supports one writer at a time; the tracker is
	// single-user anyway, so keep a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, classify("connect to journal", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Journal{db: db}, nil
}

// OpenMemory opens a throwaway in-memory journal. Used as the degraded
// fallback when the on-disk journal is corrupt, and by tests.
func OpenMemory() (*Journal, error) {
	return Open(":memory:")
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Sideline renames a corrupt journal file to path+".corrupt" so the next
// append can start a fresh journal. The corrupt file is preserved, not
// deleted. Returns the backup path.
func Sideline(path string) (string, error) {
	backup := path + ".corrupt"
	if err := os.Rename(path, backup); err != nil {
		return "", fmt.Errorf("sideline corrupt journal: %w", err)
	}
	return backup, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return classify(fmt.Sprintf("execute %q", pragma), err)
		}
	}

	return nil
}

// applySchema creates tables if they don't exist and runs migrations.
// Idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return classify("apply schema", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return classify("get user_version", err)
	}

	if version < 1 {
		if err := migrateToV1(db); err != nil {
			return err
		}
		version = 1
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}

// migrateToV1 adds the category index for databases created before v1.
// New databases get this as a no-op (CREATE INDEX IF NOT EXISTS).
func migrateToV1(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_entries_category
		ON entries(category)
	`)
	if err != nil {
		return fmt.Errorf("migrate to v1: %w", err)
	}
	return nil
}

// classify wraps an error, tagging SQLite corruption codes with
// ErrCorrupt so callers can degrade instead of failing.
func classify(op string, err error) error {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		if serr.Code == sqlite3.ErrCorrupt || serr.Code == sqlite3.ErrNotADB {
			return fmt.Errorf("%s: %w: %v", op, ErrCorrupt, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
