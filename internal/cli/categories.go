package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CategoriesOptions holds flags for the categories command.
type CategoriesOptions struct {
	*RootOptions
}

// ActivityInfo describes one loggable activity.
type ActivityInfo struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	ImpactPerUnit float64 `json:"impact_per_unit"`
}

// CategoryInfo describes one configured category.
type CategoryInfo struct {
	Key        string         `json:"key"`
	Name       string         `json:"name"`
	Weight     float64        `json:"weight"`
	Activities []ActivityInfo `json:"activities"`
}

// NewCategoriesCommand creates the categories command.
func NewCategoriesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CategoriesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "categories",
		Short:         "List the configured categories and activities",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategories(opts, cmd)
		},
	}

	return cmd
}

func runCategories(opts *CategoriesOptions, cmd *cobra.Command) error {
	cfg, err := loadProfile(opts.RootOptions)
	if err != nil {
		return err
	}

	var result []CategoryInfo
	for _, key := range cfg.Keys() {
		cat, _ := cfg.Category(key)
		info := CategoryInfo{Key: key, Name: cat.Name, Weight: cat.Weight}
		for _, actKey := range cfg.ActivityKeys(key) {
			act := cat.Activities[actKey]
			info.Activities = append(info.Activities, ActivityInfo{
				Key:           actKey,
				Name:          act.Name,
				Unit:          act.Unit,
				ImpactPerUnit: act.ImpactPerUnit,
			})
		}
		result = append(result, info)
	}

	if opts.Format == "json" {
		return respondJSON(cmd, result)
	}

	w := cmd.OutOrStdout()
	for _, cat := range result {
		fmt.Fprintf(w, "%s (%s, weight %.2f)\n", cat.Name, cat.Key, cat.Weight)
		for _, act := range cat.Activities {
			fmt.Fprintf(w, "  %-16s %s, %+g points per %s\n", act.Key, act.Name, act.ImpactPerUnit, act.Unit)
		}
		fmt.Fprintln(w)
	}
	return nil
}
