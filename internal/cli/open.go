package cli

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/minhtran/pace/internal/config"
	"github.com/minhtran/pace/internal/journal"
)

// loadProfile loads the category profile. A missing or malformed profile
// is a fatal startup condition: reported once, then the process exits.
func loadProfile(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.Profile)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load profile", err)
	}
	return cfg, nil
}

// openJournalRead opens the journal for derivation. A missing file is an
// empty journal, not an error. A corrupt file degrades to an empty
// in-memory journal with a warning; the file on disk is left in place
// until the next successful append.
func openJournalRead(opts *RootOptions, cmd *cobra.Command) (*journal.Journal, error) {
	j, err := journal.Open(opts.DB)
	if err == nil {
		return j, nil
	}
	if errors.Is(err, journal.ErrCorrupt) {
		warn(cmd, "journal at %s is corrupt; treating history as empty", opts.DB)
		j, err := journal.OpenMemory()
		if err != nil {
			return nil, WrapExitError(ExitFailure, "failed to open fallback journal", err)
		}
		return j, nil
	}
	return nil, WrapExitError(ExitCommandError, "failed to open journal", err)
}

// openJournalAppend opens the journal for writing, creating the data
// directory on first use. A corrupt file is sidelined to a .corrupt
// backup so a fresh journal can start in its place.
func openJournalAppend(opts *RootOptions, cmd *cobra.Command) (*journal.Journal, error) {
	if dir := filepath.Dir(opts.DB); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to create data directory", err)
		}
	}

	j, err := journal.Open(opts.DB)
	if err == nil {
		return j, nil
	}
	if errors.Is(err, journal.ErrCorrupt) {
		backup, serr := journal.Sideline(opts.DB)
		if serr != nil {
			return nil, WrapExitError(ExitFailure, "failed to sideline corrupt journal", serr)
		}
		warn(cmd, "corrupt journal moved to %s; starting fresh", backup)
		j, err := journal.Open(opts.DB)
		if err != nil {
			return nil, WrapExitError(ExitFailure, "failed to recreate journal", err)
		}
		return j, nil
	}
	return nil, WrapExitError(ExitCommandError, "failed to open journal", err)
}
