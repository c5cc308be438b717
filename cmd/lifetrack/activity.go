// ABOUTME: CLI commands for logging and listing daily activities.
// ABOUTME: Includes the whole-day editor backed by transactional replace.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/lifetrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	activityDate     string
	activityCategory string
	activitySub      string
	activityStart    string
	activityEnd      string
)

var activityCmd = &cobra.Command{
	Use:     "activity",
	Aliases: []string{"act"},
	Short:   "Log and list daily activities",
	Long: `Track time-block activities. Each activity is one block on one date
with a category, optional subcategory, and HH:MM start/end times.

An activity cannot span midnight: the end time must be after the start
time on the same date.

EXAMPLES:

  lifetrack activity log --date today --category Work --sub Meetings \
      --start 09:00 --end 11:30
  lifetrack activity list --date 2024-03-01
  lifetrack activity set-day --date today --hours Work=8,Sleep=7.5`,
}

var activityLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log one activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}
		u, err := repo.GetUser(userName)
		if err != nil {
			return err
		}

		a, err := models.NewActivity(u.ID, activityDate, activityCategory, activitySub, activityStart, activityEnd)
		if err != nil {
			return err
		}
		if err := repo.LogActivity(userName, a); err != nil {
			return fmt.Errorf("failed to log activity: %w", err)
		}

		color.Green("✓ Logged %s", a.Category)
		fmt.Printf("  %s %s %s-%s (%.2fh)\n",
			color.New(color.Faint).Sprint(a.ID.String()[:8]),
			a.Date, a.Start, a.End, a.Duration())
		return nil
	},
}

var activityListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List activities for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}
		date, err := models.ParseDate(activityDate)
		if err != nil {
			return err
		}

		activities, err := repo.ActivitiesOn(userName, date.Format(models.DateLayout))
		if err != nil {
			return fmt.Errorf("failed to list activities: %w", err)
		}
		if len(activities) == 0 {
			fmt.Println("No activities found.")
			return nil
		}

		faint := color.New(color.Faint)
		var total float64
		for _, a := range activities {
			sub := ""
			if a.Subcategory != "" {
				sub = faint.Sprintf(" (%s)", a.Subcategory)
			}
			fmt.Printf("%s %s-%s %s %.2fh%s\n",
				faint.Sprint(a.ID.String()[:8]),
				a.Start, a.End,
				padRight(a.Category, 12),
				a.Duration(), sub)
			total += a.Duration()
		}
		fmt.Printf("\nTotal: %.2fh across %d activities\n", total, len(activities))
		return nil
	},
}

var setDayHours map[string]string

var activitySetDayCmd = &cobra.Command{
	Use:   "set-day",
	Short: "Replace a whole day's activities with category hour blocks",
	Long: `Replace everything logged for a date with one block per category,
starting at midnight. Hours accept decimals (7.5 = 7h30m).

The existing rows for the date are deleted and the new blocks inserted in
a single transaction, so the day is never left half-updated.

EXAMPLES:

  lifetrack activity set-day --date 2024-03-01 --hours Work=8,Life=3,Sleep=7.5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}
		u, err := repo.GetUser(userName)
		if err != nil {
			return err
		}
		date, err := models.ParseDate(activityDate)
		if err != nil {
			return err
		}
		dateStr := date.Format(models.DateLayout)

		var activities []*models.Activity
		for category, hoursStr := range setDayHours {
			hours, err := strconv.ParseFloat(hoursStr, 64)
			if err != nil {
				return fmt.Errorf("invalid hours for %s: %s", category, hoursStr)
			}
			if hours <= 0 {
				continue
			}
			if hours >= 24 {
				return fmt.Errorf("hours for %s must fit inside a day: %.1f", category, hours)
			}
			end := fmt.Sprintf("%02d:%02d", int(hours), int(hours*60)%60)
			a, err := models.NewActivity(u.ID, dateStr, category, "Default", "00:00", end)
			if err != nil {
				return err
			}
			activities = append(activities, a)
		}

		if err := repo.ReplaceDayActivities(userName, dateStr, activities); err != nil {
			return fmt.Errorf("failed to save day: %w", err)
		}
		color.Green("✓ Saved %s: %d blocks", dateStr, len(activities))
		return nil
	},
}

func init() {
	activityLogCmd.Flags().StringVar(&activityDate, "date", "today", "date (YYYY-MM-DD or 'today')")
	activityLogCmd.Flags().StringVar(&activityCategory, "category", "", "activity category")
	activityLogCmd.Flags().StringVar(&activitySub, "sub", "", "subcategory")
	activityLogCmd.Flags().StringVar(&activityStart, "start", "", "start time (HH:MM)")
	activityLogCmd.Flags().StringVar(&activityEnd, "end", "", "end time (HH:MM)")
	_ = activityLogCmd.MarkFlagRequired("category")
	_ = activityLogCmd.MarkFlagRequired("start")
	_ = activityLogCmd.MarkFlagRequired("end")

	activityListCmd.Flags().StringVar(&activityDate, "date", "today", "date (YYYY-MM-DD or 'today')")

	activitySetDayCmd.Flags().StringVar(&activityDate, "date", "today", "date (YYYY-MM-DD or 'today')")
	activitySetDayCmd.Flags().StringToStringVar(&setDayHours, "hours", nil, "category=hours pairs, e.g. Work=8,Sleep=7.5")
	_ = activitySetDayCmd.MarkFlagRequired("hours")

	activityCmd.AddCommand(activityLogCmd)
	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activitySetDayCmd)
	rootCmd.AddCommand(activityCmd)
}
