// ABOUTME: Root Cobra command for lifetrack CLI.
// ABOUTME: Opens the repository in PersistentPreRunE, closes it afterwards.
package main

import (
	"fmt"

	"github.com/harperreed/lifetrack/internal/config"
	"github.com/harperreed/lifetrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	repo     storage.Repository
	flagUser string
)

var rootCmd = &cobra.Command{
	Use:   "lifetrack",
	Short: "Personal life-tracking system",
	Long: `Lifetrack records daily activities, self-reported metrics, goals, and
checklists for one or more user profiles, and renders weekly/monthly
summaries from them.

WHAT IT TRACKS:

  Activities   time blocks per category (Work, Life, Health, Sleep, or custom)
  Scores       daily life/work/health scores on a 1-10 scale
  Habits       wake-up time, workouts, meditation and brain-training minutes
  Goals        target/current progress pairs per category
  Checklists   a daily done/not-done list with free-form notes

QUICK START:

  $ lifetrack user add "John Doe"
  $ lifetrack activity log --user "John Doe" --date today \
      --category Work --sub Meetings --start 09:00 --end 11:30
  $ lifetrack metrics log --user "John Doe" --date today \
      --life 7 --work 8 --health 6
  $ lifetrack report --user "John Doe" --period weekly
  $ lifetrack calendar 2024-03 --user "John Doe"

Dates are YYYY-MM-DD; the literal "today" is accepted. Times are HH:MM
(24-hour). Activities cannot span midnight: the end time must be after
the start time on the same date.

Set a default profile once to drop the --user flag:

  $ lifetrack settings default-user "John Doe"

MCP INTEGRATION:

  Run 'lifetrack mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "lifetrack": { "command": "lifetrack", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data is stored in SQLite at ~/.local/share/lifetrack/lifetrack.db.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// currentUser resolves the acting profile: the --user flag when given,
// otherwise the configured default.
func currentUser() (string, error) {
	if flagUser != "" {
		return flagUser, nil
	}
	if cfg != nil && cfg.DefaultUser != "" {
		return cfg.DefaultUser, nil
	}
	return "", fmt.Errorf("no user selected: pass --user or set one with 'lifetrack settings default-user'")
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "user profile name")
}
