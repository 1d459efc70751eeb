package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full journal to stdout as JSON",
		Long: `Write the full journal to stdout as a JSON document: an array of
records with timestamp, category, activity, quantity, and points. The
output is ordered the way scoring folds (append order).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	j, err := openJournalRead(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer j.Close()

	log, err := j.ReadAll(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("[%s] failed to read journal", ErrCodeJournal), err)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(log)
}
