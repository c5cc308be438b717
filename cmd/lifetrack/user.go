// ABOUTME: CLI commands for managing user profiles.
// ABOUTME: Supports add, list, delete, and placeholder-data seeding.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lifetrack/internal/models"
	"github.com/spf13/cobra"
)

var seedDays int

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user profiles",
	Long: `Manage user profiles. Every tracked row belongs to exactly one profile.

COMMANDS:

  add <name>     Create a profile (names are unique)
  list           List profiles
  delete <name>  Delete a profile and ALL its data
  seed <name>    Fill a profile with 30 days of placeholder data

EXAMPLES:

  lifetrack user add "John Doe"
  lifetrack user seed "John Doe"
  lifetrack user list`,
}

var userAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a user profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := repo.CreateUser(args[0])
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		color.Green("✓ Added user %s", u.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(u.ID.String()[:8]))
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List user profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := repo.ListUsers()
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		if len(users) == 0 {
			fmt.Println("No users found. Create one with 'lifetrack user add <name>'.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, u := range users {
			fmt.Printf("%s %s\n", faint.Sprint(u.ID.String()[:8]), u.Name)
		}
		return nil
	},
}

var userDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a user profile and all its data",
	Long: `Delete a user profile. All of the profile's activities, metrics, goals,
settings, categories, and checklists are removed with it.

CAUTION:

  This permanently deletes the profile's data. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteUser(args[0]); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		color.Green("✓ Deleted user %s", args[0])
		return nil
	},
}

var userSeedCmd = &cobra.Command{
	Use:   "seed <name>",
	Short: "Fill a profile with placeholder data",
	Long: `Generate placeholder data for a profile: activities across the default
categories, daily scores, daily habits, a few goals, and settings, spread
over the trailing days. Useful for trying out the report views.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := seedUser(args[0], seedDays); err != nil {
			return fmt.Errorf("failed to seed data: %w", err)
		}
		color.Green("✓ Seeded %d days of placeholder data for %s", seedDays, args[0])
		return nil
	},
}

// seedUser writes randomized placeholder rows for the trailing days.
func seedUser(userName string, days int) error {
	u, err := repo.GetUser(userName)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	for day := 0; day <= days; day++ {
		date := start.AddDate(0, 0, day).Format(models.DateLayout)

		for _, category := range models.DefaultCategories {
			subs := models.DefaultSubcategories[category]
			for i := 0; i < 1+rng.Intn(2); i++ {
				startHour := rng.Intn(20)
				duration := 1 + rng.Intn(3)
				a, err := models.NewActivity(u.ID, date, category,
					subs[rng.Intn(len(subs))],
					fmt.Sprintf("%02d:00", startHour),
					fmt.Sprintf("%02d:00", startHour+duration),
				)
				if err != nil {
					return err
				}
				if err := repo.LogActivity(userName, a); err != nil {
					return err
				}
			}
		}

		qual, err := models.NewQualitativeMetric(u.ID, date,
			1+rng.Intn(10), 1+rng.Intn(10), 1+rng.Intn(10))
		if err != nil {
			return err
		}
		if err := repo.LogQualitativeMetric(userName, qual); err != nil {
			return err
		}

		quant, err := models.NewQuantitativeMetric(u.ID, date,
			fmt.Sprintf("%02d:%02d", 5+rng.Intn(4), rng.Intn(60)),
			rng.Intn(3), rng.Intn(60), rng.Intn(60))
		if err != nil {
			return err
		}
		if err := repo.LogQuantitativeMetric(userName, quant); err != nil {
			return err
		}
	}

	for _, category := range []string{models.CategoryWork, models.CategoryLife, models.CategoryHealth} {
		g, err := models.NewGoal(u.ID, category,
			fmt.Sprintf("Improve %s balance", category),
			float64(50+rng.Intn(50)),
			start.Format(models.DateLayout), end.Format(models.DateLayout))
		if err != nil {
			return err
		}
		if err := repo.SetGoal(userName, g); err != nil {
			return err
		}
	}

	settings := models.DefaultSettings(u.ID)
	settings.DefaultWakeTime = "06:00"
	return repo.SaveSettings(userName, settings)
}

func init() {
	userSeedCmd.Flags().IntVar(&seedDays, "days", 30, "number of trailing days to seed")
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userDeleteCmd)
	userCmd.AddCommand(userSeedCmd)
	rootCmd.AddCommand(userCmd)
}
