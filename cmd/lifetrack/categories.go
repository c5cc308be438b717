// ABOUTME: CLI commands for the per-user category vocabulary.
// ABOUTME: A stored custom set replaces the default Work/Life/Health/Sleep set.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/lifetrack/internal/models"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cat"},
	Short:   "Manage the activity category vocabulary",
	Long: `Show or replace the user's category vocabulary. Activities are listed
and aggregated against this set. Until a custom set is saved, the
defaults apply: Work, Life, Health, Sleep.

EXAMPLES:

  lifetrack categories show
  lifetrack categories set "Study:Classes,Homework" "Life:Family,Friends" Sleep`,
}

var categoriesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the category vocabulary",
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}
		categories, err := repo.GetCategories(userName)
		if err != nil {
			return fmt.Errorf("failed to get categories: %w", err)
		}

		faint := color.New(color.Faint)
		for _, c := range categories {
			subs := ""
			if len(c.Subcategories) > 0 {
				subs = faint.Sprintf("  %s", strings.Join(c.Subcategories, ", "))
			}
			fmt.Printf("%s%s\n", padRight(c.Name, 14), subs)
		}
		return nil
	},
}

var categoriesSetCmd = &cobra.Command{
	Use:   "set <category[:sub1,sub2]> ...",
	Short: "Replace the category vocabulary",
	Long: `Replace the user's entire category set. Each argument is a category
name, optionally followed by a colon and comma-separated subcategories.
The replacement is atomic: the old set and new set never mix.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}

		var categories []*models.CustomCategory
		for _, arg := range args {
			name, subsPart, _ := strings.Cut(arg, ":")
			if name == "" {
				return fmt.Errorf("empty category name in %q", arg)
			}
			c := &models.CustomCategory{Name: name}
			if subsPart != "" {
				for _, sub := range strings.Split(subsPart, ",") {
					if sub = strings.TrimSpace(sub); sub != "" {
						c.Subcategories = append(c.Subcategories, sub)
					}
				}
			}
			categories = append(categories, c)
		}

		if err := repo.ReplaceCategories(userName, categories); err != nil {
			return fmt.Errorf("failed to set categories: %w", err)
		}
		color.Green("✓ Saved %d categories", len(categories))
		return nil
	},
}

func init() {
	categoriesCmd.AddCommand(categoriesShowCmd)
	categoriesCmd.AddCommand(categoriesSetCmd)
	rootCmd.AddCommand(categoriesCmd)
}
