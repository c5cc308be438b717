// ABOUTME: CLI calendar command: monthly time-allocation grid.
// ABOUTME: One row per day of the month, one column per active category.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lifetrack/internal/models"
	"github.com/harperreed/lifetrack/internal/report"
	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:     "calendar <YYYY-MM>",
	Aliases: []string{"cal"},
	Short:   "Show the monthly time-allocation calendar",
	Long: `Render one month as a grid: a row per day, a column per category
that saw any activity that month, hours in each cell. Days without
activity show zeros.

EXAMPLES:

  lifetrack calendar 2024-03
  lifetrack cal 2024-03 --user alice`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}
		year, month, err := models.ParseMonth(args[0])
		if err != nil {
			return err
		}

		cal, err := report.MonthlyCalendar(repo, userName, year, month)
		if err != nil {
			return fmt.Errorf("failed to build calendar: %w", err)
		}

		bold := color.New(color.Bold)
		bold.Printf("%s %d\n\n", cal.Month, cal.Year)

		if len(cal.Categories) == 0 {
			fmt.Println("No activities this month.")
			return nil
		}

		fmt.Printf("  %s", padRight("DATE", 12))
		for _, c := range cal.Categories {
			fmt.Printf("%8s", truncate(c, 8))
		}
		fmt.Println()

		for _, day := range cal.Days {
			fmt.Printf("  %s", padRight(day.Date, 12))
			for _, c := range cal.Categories {
				fmt.Printf("%8.1f", day.Hours[c])
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}
