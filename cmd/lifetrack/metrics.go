// ABOUTME: CLI commands for logging and showing daily metrics.
// ABOUTME: Handles qualitative scores and quantitative habits together.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lifetrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	metricsDate       string
	metricsLife       int
	metricsWork       int
	metricsHealth     int
	metricsWake       string
	metricsWorkouts   int
	metricsMeditation int
	metricsBrain      int
)

var metricsCmd = &cobra.Command{
	Use:     "metrics",
	Aliases: []string{"m"},
	Short:   "Log and show daily metrics",
	Long: `Track daily metrics: three qualitative scores (life, work, health, each
1-10) and quantitative habits (wake-up time, workout count, meditation and
brain-training minutes).

EXAMPLES:

  lifetrack metrics log --date today --life 7 --work 8 --health 6 \
      --wake 06:30 --workouts 1 --meditation 20
  lifetrack metrics show --date 2024-03-01`,
}

var metricsLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log one day's metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}
		u, err := repo.GetUser(userName)
		if err != nil {
			return err
		}

		qual, err := models.NewQualitativeMetric(u.ID, metricsDate, metricsLife, metricsWork, metricsHealth)
		if err != nil {
			return err
		}
		quant, err := models.NewQuantitativeMetric(u.ID, metricsDate, metricsWake, metricsWorkouts, metricsMeditation, metricsBrain)
		if err != nil {
			return err
		}

		if err := repo.LogQualitativeMetric(userName, qual); err != nil {
			return fmt.Errorf("failed to log scores: %w", err)
		}
		if err := repo.LogQuantitativeMetric(userName, quant); err != nil {
			return fmt.Errorf("failed to log habits: %w", err)
		}

		color.Green("✓ Logged metrics for %s", qual.Date)
		fmt.Printf("  life %d  work %d  health %d\n", qual.LifeScore, qual.WorkScore, qual.HealthScore)
		return nil
	},
}

var metricsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show one day's metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, err := currentUser()
		if err != nil {
			return err
		}
		date, err := models.ParseDate(metricsDate)
		if err != nil {
			return err
		}

		dm, err := repo.MetricsOn(userName, date.Format(models.DateLayout))
		if err != nil {
			return fmt.Errorf("failed to get metrics: %w", err)
		}

		if dm.Qualitative == nil && dm.Quantitative == nil {
			fmt.Println("No metrics logged for this date.")
			return nil
		}

		if q := dm.Qualitative; q != nil {
			fmt.Printf("Scores:  life %d  work %d  health %d\n", q.LifeScore, q.WorkScore, q.HealthScore)
		}
		if q := dm.Quantitative; q != nil {
			wake := q.WakeUpTime
			if wake == "" {
				wake = "-"
			}
			fmt.Printf("Habits:  wake %s  workouts %d  meditation %dm  brain training %dm\n",
				wake, q.Workouts, q.MeditationMinutes, q.BrainTrainingMinutes)
		}
		return nil
	},
}

func init() {
	metricsLogCmd.Flags().StringVar(&metricsDate, "date", "today", "date (YYYY-MM-DD or 'today')")
	metricsLogCmd.Flags().IntVar(&metricsLife, "life", 0, "life score (1-10)")
	metricsLogCmd.Flags().IntVar(&metricsWork, "work", 0, "work score (1-10)")
	metricsLogCmd.Flags().IntVar(&metricsHealth, "health", 0, "health score (1-10)")
	metricsLogCmd.Flags().StringVar(&metricsWake, "wake", "", "wake-up time (HH:MM)")
	metricsLogCmd.Flags().IntVar(&metricsWorkouts, "workouts", 0, "workout count")
	metricsLogCmd.Flags().IntVar(&metricsMeditation, "meditation", 0, "meditation minutes")
	metricsLogCmd.Flags().IntVar(&metricsBrain, "brain", 0, "brain training minutes")
	_ = metricsLogCmd.MarkFlagRequired("life")
	_ = metricsLogCmd.MarkFlagRequired("work")
	_ = metricsLogCmd.MarkFlagRequired("health")

	metricsShowCmd.Flags().StringVar(&metricsDate, "date", "today", "date (YYYY-MM-DD or 'today')")

	metricsCmd.AddCommand(metricsLogCmd)
	metricsCmd.AddCommand(metricsShowCmd)
	rootCmd.AddCommand(metricsCmd)
}
