// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and the default-user fallback.
package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/lifetrack/internal/models"
	"github.com/harperreed/lifetrack/internal/report"
	"github.com/harperreed/lifetrack/internal/storage"
)

// setupTestDB creates a test database in a temp directory.
func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "lifetrack-mcp-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "lifetrack.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func setupServer(t *testing.T, defaultUser string) (*Server, *storage.DB) {
	t.Helper()
	db := setupTestDB(t)
	if _, err := db.CreateUser("alice"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	server, err := NewServer(db, defaultUser)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server, db
}

func TestNewServer(t *testing.T) {
	db := setupTestDB(t)

	server, err := NewServer(db, "")
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	if server == nil {
		t.Fatal("Expected non-nil server")
	}
	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.repo == nil {
		t.Error("Expected non-nil repo")
	}
}

func TestDefaultUserFallback(t *testing.T) {
	server, _ := setupServer(t, "alice")

	if name, err := server.user(""); err != nil || name != "alice" {
		t.Errorf("user(\"\") = %q, %v; want alice", name, err)
	}
	if name, err := server.user("bob"); err != nil || name != "bob" {
		t.Errorf("user(bob) = %q, %v; want bob", name, err)
	}

	noDefault, _ := setupServer(t, "")
	if _, err := noDefault.user(""); err == nil {
		t.Error("expected error with no user and no default")
	}
}

func TestHandleLogActivity(t *testing.T) {
	server, db := setupServer(t, "")
	ctx := context.Background()

	_, out, err := server.handleLogActivity(ctx, nil, logActivityInput{
		User:        "alice",
		Date:        "2024-03-05",
		Category:    models.CategoryWork,
		Subcategory: "Meetings",
		Start:       "09:00",
		End:         "11:30",
	})
	if err != nil {
		t.Fatalf("handleLogActivity failed: %v", err)
	}
	if out.Message == "" {
		t.Error("expected a confirmation message")
	}

	activities, err := db.ActivitiesOn("alice", "2024-03-05")
	if err != nil {
		t.Fatalf("ActivitiesOn failed: %v", err)
	}
	if len(activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(activities))
	}
}

func TestHandleLogActivityRejectsInvalid(t *testing.T) {
	server, _ := setupServer(t, "")
	ctx := context.Background()

	tests := []struct {
		name  string
		input logActivityInput
	}{
		{"unknown user", logActivityInput{User: "nobody", Date: "2024-03-05", Category: "Work", Start: "09:00", End: "10:00"}},
		{"end before start", logActivityInput{User: "alice", Date: "2024-03-05", Category: "Work", Start: "11:00", End: "09:00"}},
		{"bad date", logActivityInput{User: "alice", Date: "bad", Category: "Work", Start: "09:00", End: "10:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := server.handleLogActivity(ctx, nil, tt.input); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestHandleLogAndGetMetrics(t *testing.T) {
	server, _ := setupServer(t, "alice")
	ctx := context.Background()

	_, _, err := server.handleLogMetrics(ctx, nil, logMetricsInput{
		Date:              "2024-03-05",
		LifeScore:         7,
		WorkScore:         8,
		HealthScore:       6,
		WakeUpTime:        "06:30",
		Workouts:          1,
		MeditationMinutes: 20,
	})
	if err != nil {
		t.Fatalf("handleLogMetrics failed: %v", err)
	}

	_, out, err := server.handleGetMetrics(ctx, nil, getMetricsInput{Date: "2024-03-05"})
	if err != nil {
		t.Fatalf("handleGetMetrics failed: %v", err)
	}
	dm, ok := out.(*models.DayMetrics)
	if !ok {
		t.Fatalf("expected *models.DayMetrics, got %T", out)
	}
	if dm.Qualitative == nil || dm.Qualitative.LifeScore != 7 {
		t.Errorf("unexpected qualitative metrics: %+v", dm.Qualitative)
	}
	if dm.Quantitative == nil || dm.Quantitative.WakeUpTime != "06:30" {
		t.Errorf("unexpected quantitative metrics: %+v", dm.Quantitative)
	}
}

func TestHandleLogMetricsRejectsOutOfRange(t *testing.T) {
	server, _ := setupServer(t, "alice")
	ctx := context.Background()

	_, _, err := server.handleLogMetrics(ctx, nil, logMetricsInput{
		Date:        "2024-03-05",
		LifeScore:   11,
		WorkScore:   5,
		HealthScore: 5,
	})
	if err == nil {
		t.Error("expected error for out-of-range score")
	}
}

func TestHandleGoalLifecycle(t *testing.T) {
	server, db := setupServer(t, "alice")
	ctx := context.Background()

	_, out, err := server.handleSetGoal(ctx, nil, setGoalInput{
		Category:  models.CategoryHealth,
		Target:    100,
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})
	if err != nil {
		t.Fatalf("handleSetGoal failed: %v", err)
	}
	if len(out.ID) != 8 {
		t.Errorf("expected 8-char goal ID prefix, got %q", out.ID)
	}

	if _, _, err := server.handleUpdateGoal(ctx, nil, updateGoalInput{GoalID: out.ID, Current: 40}); err != nil {
		t.Fatalf("handleUpdateGoal failed: %v", err)
	}

	goals, err := db.ListGoals("alice")
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(goals) != 1 || goals[0].CurrentValue != 40 {
		t.Errorf("unexpected goals: %+v", goals)
	}
}

func TestHandleChecklistRoundTrip(t *testing.T) {
	server, _ := setupServer(t, "alice")
	ctx := context.Background()

	_, _, err := server.handleSaveChecklist(ctx, nil, saveChecklistInput{
		Date:  "2024-03-05",
		Items: map[string]bool{"Exercise": true, "Reading": false},
		Notes: "ok day",
	})
	if err != nil {
		t.Fatalf("handleSaveChecklist failed: %v", err)
	}

	_, out, err := server.handleGetChecklist(ctx, nil, getChecklistInput{Date: "2024-03-05"})
	if err != nil {
		t.Fatalf("handleGetChecklist failed: %v", err)
	}
	c, ok := out.(*models.DailyChecklist)
	if !ok {
		t.Fatalf("expected *models.DailyChecklist, got %T", out)
	}
	if !c.Items["Exercise"] || c.Items["Reading"] {
		t.Errorf("unexpected items: %+v", c.Items)
	}
	if c.Notes != "ok day" {
		t.Errorf("Notes = %q, want 'ok day'", c.Notes)
	}
}

func TestHandleUpdateSettings(t *testing.T) {
	server, db := setupServer(t, "alice")
	ctx := context.Background()

	_, _, err := server.handleUpdateSettings(ctx, nil, updateSettingsInput{
		DefaultWakeTime: "05:30",
		WorkWeight:      1.2,
		LifeWeight:      0.8,
		HealthWeight:    1.0,
	})
	if err != nil {
		t.Fatalf("handleUpdateSettings failed: %v", err)
	}

	settings, err := db.GetSettings("alice")
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.DefaultWakeTime != "05:30" || settings.WorkWeight != 1.2 {
		t.Errorf("unexpected settings: %+v", settings)
	}
}

func TestHandleWeeklyReport(t *testing.T) {
	server, db := setupServer(t, "alice")
	ctx := context.Background()

	u, err := db.GetUser("alice")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	a, err := models.NewActivity(u.ID, "today", models.CategoryWork, "Meetings", "09:00", "11:00")
	if err != nil {
		t.Fatalf("NewActivity failed: %v", err)
	}
	if err := db.LogActivity("alice", a); err != nil {
		t.Fatalf("LogActivity failed: %v", err)
	}

	_, out, err := server.handleWeeklyReport(ctx, nil, reportInput{})
	if err != nil {
		t.Fatalf("handleWeeklyReport failed: %v", err)
	}
	analysis, ok := out.(*report.Analysis)
	if !ok {
		t.Fatalf("expected *report.Analysis, got %T", out)
	}
	if analysis.TotalHours != 2 {
		t.Errorf("TotalHours = %v, want 2", analysis.TotalHours)
	}
}

func TestResourcesSkippedWithoutDefaultUser(t *testing.T) {
	// Construction must succeed even when resources cannot be registered.
	db := setupTestDB(t)
	if _, err := NewServer(db, ""); err != nil {
		t.Fatalf("NewServer without default user failed: %v", err)
	}
}

func TestHandleTodayResource(t *testing.T) {
	server, _ := setupServer(t, "alice")
	ctx := context.Background()

	result, err := server.handleTodayResource(ctx, nil)
	if err != nil {
		t.Fatalf("handleTodayResource failed: %v", err)
	}
	if len(result.Contents) != 1 || result.Contents[0].URI != "lifetrack://today" {
		t.Errorf("unexpected resource contents: %+v", result.Contents)
	}
}
