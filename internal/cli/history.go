package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhtran/pace/internal/engine"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Category string // optional - single category only
}

// HistoryResult maps category keys to their score trajectories.
type HistoryResult struct {
	Series map[string][]engine.ScorePoint `json:"series"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show per-category score trajectories",
		Long: `Show each category's score trajectory, replayed from the journal in
timestamp order. Every series starts 30 days back at the initial score.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "show a single category only")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	cfg, err := loadProfile(opts.RootOptions)
	if err != nil {
		return err
	}

	if opts.Category != "" {
		if _, ok := cfg.Category(opts.Category); !ok {
			return NewExitError(ExitCommandError, fmt.Sprintf(
				"[%s] unknown category %q", ErrCodeUnknownKey, opts.Category))
		}
	}

	j, err := openJournalRead(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer j.Close()

	log, err := j.ReadAll(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("[%s] failed to read journal", ErrCodeJournal), err)
	}

	eng := engine.New(cfg)
	series := eng.History(log)

	if opts.Category != "" {
		series = map[string][]engine.ScorePoint{opts.Category: series[opts.Category]}
	}

	if opts.Format == "json" {
		return respondJSON(cmd, HistoryResult{Series: series})
	}

	w := cmd.OutOrStdout()
	for _, key := range cfg.Keys() {
		points, ok := series[key]
		if !ok {
			continue
		}
		cat, _ := cfg.Category(key)
		fmt.Fprintf(w, "%s (%s)\n", cat.Name, key)
		for _, p := range points {
			fmt.Fprintf(w, "  %s  %5.1f\n", p.At.Format("2006-01-02 15:04"), p.Score)
		}
		fmt.Fprintln(w)
	}
	return nil
}
