package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhtran/pace/internal/engine"
	"github.com/minhtran/pace/internal/record"
)

// LogOptions holds flags for the log command.
type LogOptions struct {
	*RootOptions
}

// LogResult is the payload reported after a successful append.
type LogResult struct {
	Category string  `json:"category"`
	Activity string  `json:"activity"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Points   float64 `json:"points"`
	Score    float64 `json:"score"`
	Streak   int     `json:"streak"`
}

// NewLogCommand creates the log command.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "log <category> <activity> <quantity>",
		Short: "Record an activity in the journal",
		Long: `Record an activity. The quantity is multiplied by the activity's
impact-per-unit and the result is appended to the journal as an immutable
record; the category's score is recomputed by replay.

Examples:
  pace log fitness run 4
  pace log study deep_work 1.5 --format json`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(opts, cmd, args)
		},
	}

	return cmd
}

func runLog(opts *LogOptions, cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadProfile(opts.RootOptions)
	if err != nil {
		return err
	}

	categoryKey, activityKey := args[0], args[1]

	cat, ok := cfg.Category(categoryKey)
	if !ok {
		return NewExitError(ExitCommandError, fmt.Sprintf(
			"[%s] unknown category %q (known: %s)",
			ErrCodeUnknownKey, categoryKey, strings.Join(cfg.Keys(), ", ")))
	}
	act, ok := cfg.Activity(categoryKey, activityKey)
	if !ok {
		return NewExitError(ExitCommandError, fmt.Sprintf(
			"[%s] unknown activity %q in category %q (known: %s)",
			ErrCodeUnknownKey, activityKey, categoryKey, strings.Join(cfg.ActivityKeys(categoryKey), ", ")))
	}

	quantity, err := parseQuantity(args[2])
	if err != nil {
		return err
	}

	eng := engine.New(cfg)
	points := eng.Improvement(categoryKey, activityKey, quantity)

	j, err := openJournalAppend(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer j.Close()

	entry := record.New(categoryKey, activityKey, quantity, points, time.Now())
	if _, err := j.Append(ctx, entry); err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("[%s] failed to append entry", ErrCodeJournal), err)
	}

	log, err := j.ReadAll(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("[%s] failed to read journal", ErrCodeJournal), err)
	}
	scores := eng.ScoresFromLog(log)

	result := LogResult{
		Category: categoryKey,
		Activity: activityKey,
		Quantity: quantity,
		Unit:     act.Unit,
		Points:   points,
		Score:    scores[categoryKey],
		Streak:   eng.Streak(log),
	}

	if opts.Format == "json" {
		return respondJSON(cmd, result)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Logged %s: %g %s (%+.1f points)\n", act.Name, quantity, act.Unit, points)
	fmt.Fprintf(w, "%s is now at %.1f/100\n", cat.Name, result.Score)
	if result.Streak > 1 {
		fmt.Fprintf(w, "Streak: %d days\n", result.Streak)
	}
	return nil
}

// parseQuantity validates the caller-supplied quantity before it reaches
// the engine or the store. Non-numeric and non-positive input get
// distinct messages.
func parseQuantity(raw string) (float64, error) {
	quantity, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf(
			"[%s] quantity %q is not a number", ErrCodeQuantity, raw))
	}
	if quantity <= 0 {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf(
			"[%s] quantity must be positive, got %v", ErrCodeQuantity, quantity))
	}
	return quantity, nil
}
