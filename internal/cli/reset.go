package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// ResetOptions holds flags for the reset command.
type ResetOptions struct {
	*RootOptions
	Yes bool
}

// ResetResult is the payload reported after a reset.
type ResetResult struct {
	Removed int `json:"removed"`
}

// NewResetCommand creates the reset command.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Destroy all logged history",
		Long: `Destroy all logged history. Every derived score returns to its
initial value. This cannot be undone; --yes is required.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "confirm destroying all history")

	return cmd
}

func runReset(opts *ResetOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	if !opts.Yes {
		return NewExitError(ExitCommandError, fmt.Sprintf(
			"[%s] reset destroys all history and cannot be undone; re-run with --yes", ErrCodeConfirm))
	}

	j, err := openJournalAppend(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer j.Close()

	removed, err := j.Count(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("[%s] failed to count entries", ErrCodeJournal), err)
	}

	if err := j.Reset(ctx); err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("[%s] failed to reset journal", ErrCodeJournal), err)
	}

	if opts.Format == "json" {
		return respondJSON(cmd, ResetResult{Removed: removed})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries. All scores are back at their initial value.\n", removed)
	return nil
}
