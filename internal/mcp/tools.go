// ABOUTME: MCP tool implementations for life-tracking operations.
// ABOUTME: Mirrors the CLI surface: logging, goals, checklists, reports.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/lifetrack/internal/models"
	"github.com/harperreed/lifetrack/internal/report"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_activity",
		Description: "Log a time-block activity (category, subcategory, start/end HH:MM)",
	}, s.handleLogActivity)

	// list_activities
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_activities",
		Description: "List a user's activities for one date",
	}, s.handleListActivities)

	// log_metrics
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_metrics",
		Description: "Log daily qualitative scores (1-10) and quantitative habits",
	}, s.handleLogMetrics)

	// get_metrics
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_metrics",
		Description: "Get both metric kinds for one date",
	}, s.handleGetMetrics)

	// set_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_goal",
		Description: "Create a goal with a target value and date range",
	}, s.handleSetGoal)

	// update_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_goal",
		Description: "Overwrite a goal's current progress value",
	}, s.handleUpdateGoal)

	// list_goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_goals",
		Description: "List a user's goals with progress",
	}, s.handleListGoals)

	// save_checklist
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_checklist",
		Description: "Save one day's checklist (label->done map) and notes",
	}, s.handleSaveChecklist)

	// get_checklist
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_checklist",
		Description: "Get one day's checklist and notes",
	}, s.handleGetChecklist)

	// get_settings
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_settings",
		Description: "Get a user's settings (wake time, score weights)",
	}, s.handleGetSettings)

	// update_settings
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_settings",
		Description: "Upsert a user's settings",
	}, s.handleUpdateSettings)

	// weekly_report
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_report",
		Description: "Trailing-7-day activity distribution, score trend, and breakdown",
	}, s.handleWeeklyReport)

	// monthly_report
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "monthly_report",
		Description: "Calendar-month activity distribution, score trend, and breakdown",
	}, s.handleMonthlyReport)
}

// Tool input/output types

type logActivityInput struct {
	User        string `json:"user,omitempty" jsonschema:"User profile name (defaults to the configured default user)"`
	Date        string `json:"date" jsonschema:"Date (YYYY-MM-DD or 'today')"`
	Category    string `json:"category" jsonschema:"Activity category (Work, Life, Health, Sleep, or a custom category)"`
	Subcategory string `json:"subcategory,omitempty" jsonschema:"Optional subcategory"`
	Start       string `json:"start" jsonschema:"Start time (HH:MM 24h)"`
	End         string `json:"end" jsonschema:"End time (HH:MM 24h), must be after start"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type listActivitiesInput struct {
	User string `json:"user,omitempty" jsonschema:"User profile name (defaults to the configured default user)"`
	Date string `json:"date" jsonschema:"Date (YYYY-MM-DD or 'today')"`
}

type logMetricsInput struct {
	User                 string `json:"user,omitempty" jsonschema:"User profile name (defaults to the configured default user)"`
	Date                 string `json:"date" jsonschema:"Date (YYYY-MM-DD or 'today')"`
	LifeScore            int    `json:"life_score" jsonschema:"Life score 1-10"`
	WorkScore            int    `json:"work_score" jsonschema:"Work score 1-10"`
	HealthScore          int    `json:"health_score" jsonschema:"Health score 1-10"`
	WakeUpTime           string `json:"wake_up_time,omitempty" jsonschema:"Wake-up time (HH:MM)"`
	Workouts             int    `json:"workouts,omitempty" jsonschema:"Workout count"`
	MeditationMinutes    int    `json:"meditation_minutes,omitempty" jsonschema:"Meditation minutes"`
	BrainTrainingMinutes int    `json:"brain_training_minutes,omitempty" jsonschema:"Brain training minutes"`
}

type getMetricsInput struct {
	User string `json:"user,omitempty" jsonschema:"User profile name (defaults to the configured default user)"`
	Date string `json:"date" jsonschema:"Date (YYYY-MM-DD or 'today')"`
}

type setGoalInput struct {
	User        string  `json:"user,omitempty" jsonschema:"User profile name (defaults to the configured default user)"`
	Category    string  `json:"category" jsonschema:"Goal category"`
	Description string  `json:"description,omitempty" jsonschema:"Goal description"`
	Target      float64 `json:"target" jsonschema:"Target value"`
	StartDate   string  `json:"start_date" jsonschema:"Start date (YYYY-MM-DD)"`
	EndDate     string  `json:"end_date" jsonschema:"End date (YYYY-MM-DD)"`
}

type goalOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type updateGoalInput struct {
	User    string  `json:"user,omitempty" jsonschema:"User profile name (defaults to the configured default user)"`
	GoalID  string  `json:"goal_id" jsonschema:"Goal ID or prefix"`
	Current float64 `json:"current" jsonschema:"New current value (overwrites)"`
}

type listGoalsInput struct {
	User string `json:"user,omitempty" jsonschema:"User profile name (defaults to the configured default user)"`
}

type saveChecklistInput struct {
	User  string          `json:"user,omitempty" jsonschema:"User profile name (defaults to the configured default user)"`
	Date  string          `json:"date" jsonschema:"Date (YYYY-MM-DD or 'today')"`
	Items map[string]bool `json:"items" jsonschema:"Checklist label to done map"`
	Notes string          `json:"notes,omitempty" jsonschema:"Daily notes"`
}

type getChecklistInput struct {
	User string `json:"user,omitempty" jsonschema:"User profile name (defaults to the configured default user)"`
	Date string `json:"date" jsonschema:"Date (YYYY-MM-DD or 'today')"`
}

type settingsInput struct {
	User string `json:"user,omitempty" jsonschema:"User profile name (defaults to the configured default user)"`
}

type updateSettingsInput struct {
	User            string  `json:"user,omitempty" jsonschema:"User profile name (defaults to the configured default user)"`
	DefaultWakeTime string  `json:"default_wake_time,omitempty" jsonschema:"Default wake-up time (HH:MM)"`
	WorkWeight      float64 `json:"work_weight" jsonschema:"Work score weight"`
	LifeWeight      float64 `json:"life_weight" jsonschema:"Life score weight"`
	HealthWeight    float64 `json:"health_weight" jsonschema:"Health score weight"`
}

type reportInput struct {
	User string `json:"user,omitempty" jsonschema:"User profile name (defaults to the configured default user)"`
}

// Tool handlers

// user falls back to the configured default profile when the tool call
// left the user argument empty.
func (s *Server) user(name string) (string, error) {
	if name != "" {
		return name, nil
	}
	if s.defaultUser != "" {
		return s.defaultUser, nil
	}
	return "", fmt.Errorf("no user given and no default user configured")
}

func (s *Server) handleLogActivity(ctx context.Context, req *mcp.CallToolRequest, input logActivityInput) (*mcp.CallToolResult, simpleOutput, error) {
	userName, err := s.user(input.User)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	u, err := s.repo.GetUser(userName)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	a, err := models.NewActivity(u.ID, input.Date, input.Category, input.Subcategory, input.Start, input.End)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := s.repo.LogActivity(userName, a); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log activity: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s/%s %s-%s on %s (%.2fh)", a.Category, a.Subcategory, a.Start, a.End, a.Date, a.Duration()),
	}, nil
}

func (s *Server) handleListActivities(ctx context.Context, req *mcp.CallToolRequest, input listActivitiesInput) (*mcp.CallToolResult, any, error) {
	userName, err := s.user(input.User)
	if err != nil {
		return nil, nil, err
	}
	date, err := models.ParseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	activities, err := s.repo.ActivitiesOn(userName, date.Format(models.DateLayout))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list activities: %w", err)
	}

	if len(activities) == 0 {
		return nil, map[string]interface{}{"message": "No activities found."}, nil
	}
	return nil, activities, nil
}

func (s *Server) handleLogMetrics(ctx context.Context, req *mcp.CallToolRequest, input logMetricsInput) (*mcp.CallToolResult, simpleOutput, error) {
	userName, err := s.user(input.User)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	u, err := s.repo.GetUser(userName)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	qual, err := models.NewQualitativeMetric(u.ID, input.Date, input.LifeScore, input.WorkScore, input.HealthScore)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	quant, err := models.NewQuantitativeMetric(u.ID, input.Date, input.WakeUpTime, input.Workouts, input.MeditationMinutes, input.BrainTrainingMinutes)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := s.repo.LogQualitativeMetric(userName, qual); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log scores: %w", err)
	}
	if err := s.repo.LogQuantitativeMetric(userName, quant); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log habits: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged metrics for %s: life %d, work %d, health %d", qual.Date, qual.LifeScore, qual.WorkScore, qual.HealthScore),
	}, nil
}

func (s *Server) handleGetMetrics(ctx context.Context, req *mcp.CallToolRequest, input getMetricsInput) (*mcp.CallToolResult, any, error) {
	userName, err := s.user(input.User)
	if err != nil {
		return nil, nil, err
	}
	date, err := models.ParseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	dm, err := s.repo.MetricsOn(userName, date.Format(models.DateLayout))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get metrics: %w", err)
	}
	if dm.Qualitative == nil && dm.Quantitative == nil {
		return nil, map[string]interface{}{"message": "No metrics logged for this date."}, nil
	}
	return nil, dm, nil
}

func (s *Server) handleSetGoal(ctx context.Context, req *mcp.CallToolRequest, input setGoalInput) (*mcp.CallToolResult, goalOutput, error) {
	userName, err := s.user(input.User)
	if err != nil {
		return nil, goalOutput{}, err
	}
	u, err := s.repo.GetUser(userName)
	if err != nil {
		return nil, goalOutput{}, err
	}

	g, err := models.NewGoal(u.ID, input.Category, input.Description, input.Target, input.StartDate, input.EndDate)
	if err != nil {
		return nil, goalOutput{}, err
	}

	if err := s.repo.SetGoal(userName, g); err != nil {
		return nil, goalOutput{}, fmt.Errorf("failed to set goal: %w", err)
	}

	return nil, goalOutput{
		ID:      g.ID.String()[:8],
		Message: fmt.Sprintf("Set %s goal with target %.1f (ID: %s)", g.Category, g.TargetValue, g.ID.String()[:8]),
	}, nil
}

func (s *Server) handleUpdateGoal(ctx context.Context, req *mcp.CallToolRequest, input updateGoalInput) (*mcp.CallToolResult, simpleOutput, error) {
	userName, err := s.user(input.User)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.repo.UpdateGoalProgress(userName, input.GoalID, input.Current); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update goal: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Goal %s progress set to %.1f", input.GoalID, input.Current),
	}, nil
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input listGoalsInput) (*mcp.CallToolResult, any, error) {
	userName, err := s.user(input.User)
	if err != nil {
		return nil, nil, err
	}
	goals, err := s.repo.ListGoals(userName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list goals: %w", err)
	}
	if len(goals) == 0 {
		return nil, map[string]interface{}{"message": "No goals found."}, nil
	}
	return nil, goals, nil
}

func (s *Server) handleSaveChecklist(ctx context.Context, req *mcp.CallToolRequest, input saveChecklistInput) (*mcp.CallToolResult, simpleOutput, error) {
	userName, err := s.user(input.User)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	u, err := s.repo.GetUser(userName)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	c, err := models.NewDailyChecklist(u.ID, input.Date, input.Items, input.Notes)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := s.repo.SaveChecklist(userName, c); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save checklist: %w", err)
	}

	done := 0
	for _, v := range c.Items {
		if v {
			done++
		}
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Saved checklist for %s: %d/%d done", c.Date, done, len(c.Items)),
	}, nil
}

func (s *Server) handleGetChecklist(ctx context.Context, req *mcp.CallToolRequest, input getChecklistInput) (*mcp.CallToolResult, any, error) {
	userName, err := s.user(input.User)
	if err != nil {
		return nil, nil, err
	}
	date, err := models.ParseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	c, err := s.repo.GetChecklist(userName, date.Format(models.DateLayout))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get checklist: %w", err)
	}
	return nil, c, nil
}

func (s *Server) handleGetSettings(ctx context.Context, req *mcp.CallToolRequest, input settingsInput) (*mcp.CallToolResult, any, error) {
	userName, err := s.user(input.User)
	if err != nil {
		return nil, nil, err
	}
	settings, err := s.repo.GetSettings(userName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return nil, settings, nil
}

func (s *Server) handleUpdateSettings(ctx context.Context, req *mcp.CallToolRequest, input updateSettingsInput) (*mcp.CallToolResult, simpleOutput, error) {
	userName, err := s.user(input.User)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	settings := &models.UserSettings{
		DefaultWakeTime: input.DefaultWakeTime,
		WorkWeight:      input.WorkWeight,
		LifeWeight:      input.LifeWeight,
		HealthWeight:    input.HealthWeight,
	}
	if err := s.repo.SaveSettings(userName, settings); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return nil, simpleOutput{Message: "Settings updated."}, nil
}

func (s *Server) handleWeeklyReport(ctx context.Context, req *mcp.CallToolRequest, input reportInput) (*mcp.CallToolResult, any, error) {
	userName, err := s.user(input.User)
	if err != nil {
		return nil, nil, err
	}
	analysis, err := report.Analyze(s.repo, userName, report.PeriodWeekly, time.Now())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build weekly report: %w", err)
	}
	return nil, analysis, nil
}

func (s *Server) handleMonthlyReport(ctx context.Context, req *mcp.CallToolRequest, input reportInput) (*mcp.CallToolResult, any, error) {
	userName, err := s.user(input.User)
	if err != nil {
		return nil, nil, err
	}
	analysis, err := report.Analyze(s.repo, userName, report.PeriodMonthly, time.Now())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build monthly report: %w", err)
	}
	return nil, analysis, nil
}
