// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/lifetrack/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your tracked data
through a standardized protocol. The server communicates via stdin/stdout.
Tools that take a "user" argument fall back to the configured default user
when the argument is empty.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "lifetrack": {
        "command": "lifetrack",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  log_activity      Record one timed activity
  list_activities   List a day's activities
  log_metrics       Record daily scores and habit numbers
  get_metrics       Get one day's metrics
  set_goal          Create a goal
  update_goal       Update a goal's progress
  list_goals        List goals
  save_checklist    Save one day's checklist
  get_checklist     Get one day's checklist
  get_settings      Get user settings
  update_settings   Update user settings
  weekly_report     Trailing-7-day analysis
  monthly_report    Calendar-month analysis

AVAILABLE RESOURCES:

  lifetrack://today            Today's activities, metrics, and checklist
  lifetrack://report/weekly    Weekly analysis for the default user
  lifetrack://report/monthly   Monthly analysis for the default user`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, cfg.DefaultUser)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
