// ABOUTME: CLI commands for setting, listing, and updating goals.
// ABOUTME: Progress updates overwrite current_value, last write wins.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/lifetrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	goalCategory    string
	goalDescription string
	goalTarget      float64
	goalStartDate   string
	goalEndDate     string
)

var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"g"},
	Short:   "Set and track goals",
	Long: `Track numeric goals per category. Each goal has a target value and a
current value; updating progress overwrites the current value outright
(no accumulation). Percent complete is derived at display time.

EXAMPLES:

  lifetrack goal set --category Health --description "Gym sessions" \
      --target 100 --start 2024-03-01 --end 2024-03-31
  lifetrack goal list
  lifetrack goal progress abc12345 60`,
}

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create a goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}
		u, err := repo.GetUser(userName)
		if err != nil {
			return err
		}

		g, err := models.NewGoal(u.ID, goalCategory, goalDescription, goalTarget, goalStartDate, goalEndDate)
		if err != nil {
			return err
		}
		if err := repo.SetGoal(userName, g); err != nil {
			return fmt.Errorf("failed to set goal: %w", err)
		}

		color.Green("✓ Set %s goal", g.Category)
		fmt.Printf("  %s target %.1f (%s to %s)\n",
			color.New(color.Faint).Sprint(g.ID.String()[:8]),
			g.TargetValue, g.StartDate, g.EndDate)
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List goals with progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}

		goals, err := repo.ListGoals(userName)
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}
		if len(goals) == 0 {
			fmt.Println("No goals found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, g := range goals {
			desc := ""
			if g.Description != "" {
				desc = faint.Sprintf(" (%s)", truncate(g.Description, 40))
			}
			fmt.Printf("%s %s %.1f/%.1f %5.1f%% %s%s\n",
				faint.Sprint(g.ID.String()[:8]),
				padRight(g.Category, 10),
				g.CurrentValue, g.TargetValue,
				g.PercentComplete(),
				bar(g.PercentComplete(), 20),
				desc)
		}
		return nil
	},
}

var goalProgressCmd = &cobra.Command{
	Use:   "progress <id> <value>",
	Short: "Overwrite a goal's current value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		if err := repo.UpdateGoalProgress(userName, args[0], value); err != nil {
			return fmt.Errorf("failed to update goal: %w", err)
		}
		color.Green("✓ Goal %s progress set to %.1f", args[0], value)
		return nil
	},
}

func init() {
	goalSetCmd.Flags().StringVar(&goalCategory, "category", "", "goal category")
	goalSetCmd.Flags().StringVar(&goalDescription, "description", "", "goal description")
	goalSetCmd.Flags().Float64Var(&goalTarget, "target", 0, "target value")
	goalSetCmd.Flags().StringVar(&goalStartDate, "start", "today", "start date (YYYY-MM-DD)")
	goalSetCmd.Flags().StringVar(&goalEndDate, "end", "", "end date (YYYY-MM-DD)")
	_ = goalSetCmd.MarkFlagRequired("category")
	_ = goalSetCmd.MarkFlagRequired("target")
	_ = goalSetCmd.MarkFlagRequired("end")

	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalProgressCmd)
	rootCmd.AddCommand(goalCmd)
}
