package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhtran/pace/internal/engine"
)

// StatusOptions holds flags for the status command.
type StatusOptions struct {
	*RootOptions
}

// CategoryStatus is one category's line in the status report.
type CategoryStatus struct {
	Key    string  `json:"key"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Score  float64 `json:"score"`
}

// StatusResult is the full status report payload.
type StatusResult struct {
	Categories []CategoryStatus `json:"categories"`
	Overall    float64          `json:"overall"`
	Streak     int              `json:"streak"`
	Entries    int              `json:"entries"`
}

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatusOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show current scores, overall score, and streak",
		Long: `Show the current per-category scores derived by replaying the journal,
the weighted overall score, and the consecutive-day streak.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(opts, cmd)
		},
	}

	return cmd
}

func runStatus(opts *StatusOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	cfg, err := loadProfile(opts.RootOptions)
	if err != nil {
		return err
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
	scores := eng.ScoresFromLog(log)

	result := StatusResult{
		Overall: eng.Overall(scores),
		Streak:  eng.Streak(log),
		Entries: len(log),
	}
	for _, key := range cfg.Keys() {
		cat, _ := cfg.Category(key)
		result.Categories = append(result.Categories, CategoryStatus{
			Key:    key,
			Name:   cat.Name,
			Weight: cat.Weight,
			Score:  scores[key],
		})
	}

	if opts.Format == "json" {
		return respondJSON(cmd, result)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Overall: %.1f\n", result.Overall)
	fmt.Fprintf(w, "Streak:  %d day(s)\n", result.Streak)
	fmt.Fprintln(w)
	for _, cat := range result.Categories {
		fmt.Fprintf(w, "  %-12s %5.1f/100  (weight %.2f)\n", cat.Name, cat.Score, cat.Weight)
	}
	if opts.Verbose {
		fmt.Fprintf(w, "\n%d journal entries\n", result.Entries)
	}
	return nil
}
