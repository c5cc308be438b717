// ABOUTME: Tests for export and import functionality.
// ABOUTME: Verifies a full JSON round-trip into a fresh database.
package storage

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/harperreed/lifetrack/internal/models"
)

func TestExportJSON(t *testing.T) {
	db := setupTestDB(t)
	u := mustCreateUser(t, db, "alice")

	a, err := models.NewActivity(u.ID, "2024-03-05", models.CategoryWork, "Meetings", "09:00", "11:30")
	if err != nil {
		t.Fatalf("NewActivity failed: %v", err)
	}
	if err := db.LogActivity("alice", a); err != nil {
		t.Fatalf("LogActivity failed: %v", err)
	}

	data, err := db.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if export.Tool != "lifetrack" || export.Version != "1.0" {
		t.Errorf("unexpected header: tool=%s version=%s", export.Tool, export.Version)
	}
	if len(export.Users) != 1 || export.Users[0].Name != "alice" {
		t.Fatalf("expected one user alice, got %+v", export.Users)
	}
	if len(export.Users[0].Activities) != 1 {
		t.Errorf("expected 1 activity, got %d", len(export.Users[0].Activities))
	}
}

func TestExportYAML(t *testing.T) {
	db := setupTestDB(t)
	u := mustCreateUser(t, db, "alice")

	m, err := models.NewQualitativeMetric(u.ID, "2024-03-05", 7, 8, 6)
	if err != nil {
		t.Fatalf("NewQualitativeMetric failed: %v", err)
	}
	if err := db.LogQualitativeMetric("alice", m); err != nil {
		t.Fatalf("LogQualitativeMetric failed: %v", err)
	}

	data, err := db.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "alice") {
		t.Error("expected YAML to contain the user name")
	}
	if !strings.Contains(out, "qualitative_metrics") {
		t.Error("expected YAML to contain qualitative metrics")
	}
}

func TestImportRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	u := mustCreateUser(t, src, "alice")

	a, _ := models.NewActivity(u.ID, "2024-03-05", models.CategoryWork, "Meetings", "09:00", "11:30")
	if err := src.LogActivity("alice", a); err != nil {
		t.Fatalf("LogActivity failed: %v", err)
	}
	qual, _ := models.NewQualitativeMetric(u.ID, "2024-03-05", 7, 8, 6)
	if err := src.LogQualitativeMetric("alice", qual); err != nil {
		t.Fatalf("LogQualitativeMetric failed: %v", err)
	}
	quant, _ := models.NewQuantitativeMetric(u.ID, "2024-03-05", "06:30", 1, 20, 15)
	if err := src.LogQuantitativeMetric("alice", quant); err != nil {
		t.Fatalf("LogQuantitativeMetric failed: %v", err)
	}
	g, _ := models.NewGoal(u.ID, models.CategoryHealth, "run 100km", 100, "2024-03-01", "2024-03-31")
	if err := src.SetGoal("alice", g); err != nil {
		t.Fatalf("SetGoal failed: %v", err)
	}
	if err := src.UpdateGoalProgress("alice", g.ID.String(), 40); err != nil {
		t.Fatalf("UpdateGoalProgress failed: %v", err)
	}
	settings := &models.UserSettings{UserID: u.ID, DefaultWakeTime: "06:00", WorkWeight: 1.2, LifeWeight: 0.8, HealthWeight: 1.0}
	if err := src.SaveSettings("alice", settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	check, _ := models.NewDailyChecklist(u.ID, "2024-03-05", map[string]bool{"Exercise": true}, "notes")
	if err := src.SaveChecklist("alice", check); err != nil {
		t.Fatalf("SaveChecklist failed: %v", err)
	}

	data, err := src.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	dst := setupTestDB(t)
	if err := dst.ImportJSON(data); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	activities, err := dst.ActivitiesOn("alice", "2024-03-05")
	if err != nil {
		t.Fatalf("ActivitiesOn failed: %v", err)
	}
	if len(activities) != 1 || activities[0].Duration() != 2.5 {
		t.Errorf("unexpected imported activities: %+v", activities)
	}

	metrics, err := dst.MetricsOn("alice", "2024-03-05")
	if err != nil {
		t.Fatalf("MetricsOn failed: %v", err)
	}
	if metrics.Qualitative == nil || metrics.Qualitative.WorkScore != 8 {
		t.Errorf("unexpected imported qualitative metrics: %+v", metrics.Qualitative)
	}
	if metrics.Quantitative == nil || metrics.Quantitative.MeditationMinutes != 20 {
		t.Errorf("unexpected imported quantitative metrics: %+v", metrics.Quantitative)
	}

	goals, err := dst.ListGoals("alice")
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(goals) != 1 || goals[0].CurrentValue != 40 {
		t.Errorf("unexpected imported goals: %+v", goals)
	}

	gotSettings, err := dst.GetSettings("alice")
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if gotSettings.DefaultWakeTime != "06:00" || gotSettings.WorkWeight != 1.2 {
		t.Errorf("unexpected imported settings: %+v", gotSettings)
	}

	gotCheck, err := dst.GetChecklist("alice", "2024-03-05")
	if err != nil {
		t.Fatalf("GetChecklist failed: %v", err)
	}
	if !gotCheck.Items["Exercise"] || gotCheck.Notes != "notes" {
		t.Errorf("unexpected imported checklist: %+v", gotCheck)
	}
}

func TestImportDuplicateUserFails(t *testing.T) {
	db := setupTestDB(t)
	mustCreateUser(t, db, "alice")

	data := &ExportData{Users: []*UserData{{Name: "alice"}}}
	if err := db.ImportData(data); err == nil {
		t.Error("expected error importing an existing user")
	}
}
