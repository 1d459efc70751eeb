package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhtran/pace/internal/engine"
)

// AdviceOptions holds flags for the advice command.
type AdviceOptions struct {
	*RootOptions
}

// AdviceResult is the advice payload.
type AdviceResult struct {
	Advice string `json:"advice"`
}

// NewAdviceCommand creates the advice command.
func NewAdviceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AdviceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "advice",
		Short: "Show heuristic feedback on recent performance",
		Long: `Show advisory text derived from current scores and recent activity:
a callout for the strongest category, a caution for a weak one, and
inactivity warnings for categories gone quiet for a week or more.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdvice(opts, cmd)
		},
	}

	return cmd
}

func runAdvice(opts *AdviceOptions, cmd *cobra.Command) error {
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
	advice := eng.Feedback(eng.ScoresFromLog(log), log)

	if opts.Format == "json" {
		return respondJSON(cmd, AdviceResult{Advice: advice})
	}

	fmt.Fprintln(cmd.OutOrStdout(), advice)
	return nil
}
