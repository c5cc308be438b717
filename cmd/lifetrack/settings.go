// ABOUTME: CLI commands for user settings, presets, and the default profile.
// ABOUTME: Settings are upserted per user; presets also replace categories.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lifetrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	settingsWake   string
	settingsWork   float64
	settingsLife   float64
	settingsHealth float64
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage user settings",
	Long: `Manage per-user settings: the default wake-up time and the weights the
weighted score average applies to work, life, and health.

Presets bundle settings with a category vocabulary:

  balanced      default categories, equal weights, wake 06:00
  early-riser   wake 05:00, health weighted up
  student       Study replaces Work, wake 07:00

EXAMPLES:

  lifetrack settings show
  lifetrack settings set --wake 06:30 --work-weight 1.2
  lifetrack settings preset student
  lifetrack settings default-user "John Doe"`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the user's settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}
		s, err := repo.GetSettings(userName)
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}

		wake := s.DefaultWakeTime
		if wake == "" {
			wake = "-"
		}
		fmt.Printf("Wake-up time:   %s\n", wake)
		fmt.Printf("Work weight:    %.1f\n", s.WorkWeight)
		fmt.Printf("Life weight:    %.1f\n", s.LifeWeight)
		fmt.Printf("Health weight:  %.1f\n", s.HealthWeight)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the user's settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}

		if settingsWake != "" {
			if _, err := models.ParseClock(settingsWake); err != nil {
				return err
			}
		}
		s := &models.UserSettings{
			DefaultWakeTime: settingsWake,
			WorkWeight:      settingsWork,
			LifeWeight:      settingsLife,
			HealthWeight:    settingsHealth,
		}
		if err := repo.SaveSettings(userName, s); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		color.Green("✓ Settings updated")
		return nil
	},
}

var settingsPresetCmd = &cobra.Command{
	Use:   "preset <name>",
	Short: "Apply a preset template",
	Long: `Apply a preset template: overwrites the user's settings and replaces
the category vocabulary with the preset's.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}
		preset, err := models.GetPreset(args[0])
		if err != nil {
			return err
		}

		s := &models.UserSettings{
			DefaultWakeTime: preset.DefaultWakeTime,
			WorkWeight:      preset.WorkWeight,
			LifeWeight:      preset.LifeWeight,
			HealthWeight:    preset.HealthWeight,
		}
		if err := repo.SaveSettings(userName, s); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		var categories []*models.CustomCategory
		for _, name := range preset.Categories {
			categories = append(categories, &models.CustomCategory{
				Name:          name,
				Subcategories: preset.Subcategories[name],
			})
		}
		if err := repo.ReplaceCategories(userName, categories); err != nil {
			return fmt.Errorf("failed to apply categories: %w", err)
		}

		color.Green("✓ Applied preset %s", preset.Name)
		return nil
	},
}

var settingsDefaultUserCmd = &cobra.Command{
	Use:   "default-user <name>",
	Short: "Set the default profile for all commands",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Verify the profile exists before persisting it as the default.
		if _, err := repo.GetUser(args[0]); err != nil {
			return err
		}
		cfg.DefaultUser = args[0]
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Green("✓ Default user set to %s", args[0])
		return nil
	},
}

func init() {
	settingsSetCmd.Flags().StringVar(&settingsWake, "wake", "", "default wake-up time (HH:MM)")
	settingsSetCmd.Flags().Float64Var(&settingsWork, "work-weight", 1.0, "work score weight")
	settingsSetCmd.Flags().Float64Var(&settingsLife, "life-weight", 1.0, "life score weight")
	settingsSetCmd.Flags().Float64Var(&settingsHealth, "health-weight", 1.0, "health score weight")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsPresetCmd)
	settingsCmd.AddCommand(settingsDefaultUserCmd)
	rootCmd.AddCommand(settingsCmd)
}
