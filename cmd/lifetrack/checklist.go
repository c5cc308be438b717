// ABOUTME: CLI commands for the daily checklist and notes.
// ABOUTME: The checklist is one label-to-done map per user-date, upserted whole.
package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/harperreed/lifetrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	checklistDate  string
	checklistDone  []string
	checklistNotes string
	checklistFull  bool
)

var checklistCmd = &cobra.Command{
	Use:     "checklist",
	Aliases: []string{"check"},
	Short:   "Save and show the daily checklist",
	Long: `Track a daily checklist. Saving replaces the whole day's checklist:
items named with --done are marked done, the rest of the default items
are recorded as not done. Notes are free-form text for the day.

EXAMPLES:

  lifetrack checklist save --date today --done Exercise --done Reading \
      --notes "Good day"
  lifetrack checklist show --date 2024-03-05
  lifetrack checklist show --full   # include unchecked items`,
}

var checklistSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save one day's checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}
		u, err := repo.GetUser(userName)
		if err != nil {
			return err
		}

		items := map[string]bool{}
		for _, label := range models.DefaultChecklistItems {
			items[label] = false
		}
		for _, label := range checklistDone {
			items[label] = true
		}

		c, err := models.NewDailyChecklist(u.ID, checklistDate, items, checklistNotes)
		if err != nil {
			return err
		}
		if err := repo.SaveChecklist(userName, c); err != nil {
			return fmt.Errorf("failed to save checklist: %w", err)
		}

		done := 0
		for _, v := range c.Items {
			if v {
				done++
			}
		}
		color.Green("✓ Saved checklist for %s (%d/%d done)", c.Date, done, len(c.Items))
		return nil
	},
}

var checklistShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show one day's checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}
		date, err := models.ParseDate(checklistDate)
		if err != nil {
			return err
		}

		c, err := repo.GetChecklist(userName, date.Format(models.DateLayout))
		if err != nil {
			return fmt.Errorf("failed to get checklist: %w", err)
		}
		if len(c.Items) == 0 {
			fmt.Println("No checklist saved for this date.")
			return nil
		}

		labels := make([]string, 0, len(c.Items))
		for label := range c.Items {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		done := 0
		for _, label := range labels {
			if c.Items[label] {
				color.Green("✓ %s", label)
				done++
			} else if checklistFull {
				fmt.Printf("  %s\n", color.New(color.Faint).Sprint(label))
			}
		}
		fmt.Printf("\n%d/%d done\n", done, len(c.Items))
		if c.Notes != "" {
			fmt.Printf("Notes: %s\n", c.Notes)
		}
		return nil
	},
}

func init() {
	checklistSaveCmd.Flags().StringVar(&checklistDate, "date", "today", "date (YYYY-MM-DD or 'today')")
	checklistSaveCmd.Flags().StringArrayVar(&checklistDone, "done", nil, "checklist item to mark done (repeatable)")
	checklistSaveCmd.Flags().StringVar(&checklistNotes, "notes", "", "daily notes")

	checklistShowCmd.Flags().StringVar(&checklistDate, "date", "today", "date (YYYY-MM-DD or 'today')")
	checklistShowCmd.Flags().BoolVar(&checklistFull, "full", false, "include unchecked items")

	checklistCmd.AddCommand(checklistSaveCmd)
	checklistCmd.AddCommand(checklistShowCmd)
	rootCmd.AddCommand(checklistCmd)
}
