// ABOUTME: CLI report command: weekly and monthly analysis views.
// ABOUTME: Renders distribution bars, score trends, and the activity breakdown.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lifetrack/internal/models"
	"github.com/harperreed/lifetrack/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportPeriod string
	reportDate   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a weekly or monthly analysis",
	Long: `Aggregate logged activities and scores into a report.

The weekly report covers the trailing 7 days ending at --date; the monthly
report covers the calendar month containing --date. Both show the category
distribution, the day-by-day score trend, and the per-subcategory breakdown.

EXAMPLES:

  lifetrack report                       # weekly, ending today
  lifetrack report --period monthly
  lifetrack report --period weekly --date 2024-03-15`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}
		ref, err := models.ParseDate(reportDate)
		if err != nil {
			return err
		}

		analysis, err := report.Analyze(repo, userName, report.Period(reportPeriod), ref)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}

		printAnalysis(analysis)
		return nil
	},
}

func printAnalysis(a *report.Analysis) {
	bold := color.New(color.Bold)

	bold.Println(a.Pie.Title)
	fmt.Printf("%s to %s  (%.1f hours logged)\n\n", a.Window.From, a.Window.To, a.TotalHours)

	if len(a.Summary.Shares) == 0 {
		fmt.Println("No activities in this window.")
	} else {
		for _, share := range a.Summary.Shares {
			fmt.Printf("  %s %s %6.2f%%  %.1fh\n",
				padRight(share.Category, 10), bar(share.Percent, 24), share.Percent, share.Hours)
		}
	}

	fmt.Println()
	bold.Println(a.Trend.Title)
	if len(a.Trend.Dates) == 0 {
		fmt.Println("No scores in this window.")
	} else {
		fmt.Printf("  %s  %5s  %5s  %6s\n", padRight("DATE", 10), "LIFE", "WORK", "HEALTH")
		for i, date := range a.Trend.Dates {
			fmt.Printf("  %s  %5.1f  %5.1f  %6.1f\n",
				date,
				a.Trend.Series[report.SeriesLife][i],
				a.Trend.Series[report.SeriesWork][i],
				a.Trend.Series[report.SeriesHealth][i])
		}
	}

	if len(a.Breakdown) > 0 {
		fmt.Println()
		bold.Println("Breakdown")
		for _, row := range a.Breakdown {
			label := row.Category
			if row.Subcategory != "" {
				label += " / " + row.Subcategory
			}
			fmt.Printf("  %s %6.1fh\n", padRight(truncate(label, 28), 28), row.Hours)
		}
	}
}

func init() {
	reportCmd.Flags().StringVar(&reportPeriod, "period", "weekly", "report period (weekly or monthly)")
	reportCmd.Flags().StringVar(&reportDate, "date", "today", "reference date (YYYY-MM-DD or 'today')")
	rootCmd.AddCommand(reportCmd)
}
