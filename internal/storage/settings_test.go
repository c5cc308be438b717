// ABOUTME: Tests for settings, category vocabulary, and checklist storage.
// ABOUTME: Verifies upsert semantics and default fallbacks.
package storage

import (
	"testing"

	"github.com/harperreed/lifetrack/internal/models"
)

func TestGetSettingsDefaults(t *testing.T) {
	db := setupTestDB(t)
	u := mustCreateUser(t, db, "alice")

	s, err := db.GetSettings("alice")
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if s.UserID != u.ID {
		t.Errorf("UserID = %v, want %v", s.UserID, u.ID)
	}
	if s.WorkWeight != 1.0 || s.LifeWeight != 1.0 || s.HealthWeight != 1.0 {
		t.Errorf("weights = %v/%v/%v, want defaults 1/1/1", s.WorkWeight, s.LifeWeight, s.HealthWeight)
	}
}

func TestSaveSettingsUpsert(t *testing.T) {
	db := setupTestDB(t)
	u := mustCreateUser(t, db, "alice")

	first := &models.UserSettings{UserID: u.ID, DefaultWakeTime: "06:00", WorkWeight: 1.0, LifeWeight: 1.0, HealthWeight: 1.0}
	if err := db.SaveSettings("alice", first); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	second := &models.UserSettings{UserID: u.ID, DefaultWakeTime: "05:30", WorkWeight: 1.2, LifeWeight: 0.8, HealthWeight: 1.0}
	if err := db.SaveSettings("alice", second); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	// The second write wins in full.
	got, err := db.GetSettings("alice")
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.DefaultWakeTime != "05:30" {
		t.Errorf("DefaultWakeTime = %s, want 05:30", got.DefaultWakeTime)
	}
	if got.WorkWeight != 1.2 || got.LifeWeight != 0.8 {
		t.Errorf("weights = %v/%v, want 1.2/0.8", got.WorkWeight, got.LifeWeight)
	}

	// Still a single row per user.
	var count int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM user_settings").Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 settings row, got %d", count)
	}
}

func TestGetCategoriesDefaults(t *testing.T) {
	db := setupTestDB(t)
	mustCreateUser(t, db, "alice")

	categories, err := db.GetCategories("alice")
	if err != nil {
		t.Fatalf("GetCategories failed: %v", err)
	}
	if len(categories) != 4 {
		t.Fatalf("expected 4 default categories, got %d", len(categories))
	}
	if categories[0].Name != models.CategoryWork {
		t.Errorf("first category = %s, want Work", categories[0].Name)
	}
	if len(categories[0].Subcategories) == 0 {
		t.Error("expected default subcategories")
	}
}

func TestReplaceCategories(t *testing.T) {
	db := setupTestDB(t)
	u := mustCreateUser(t, db, "alice")

	custom := []*models.CustomCategory{
		{UserID: u.ID, Name: "Study", Subcategories: []string{"Classes", "Homework"}},
		{UserID: u.ID, Name: "Rest", Subcategories: nil},
	}
	if err := db.ReplaceCategories("alice", custom); err != nil {
		t.Fatalf("ReplaceCategories failed: %v", err)
	}

	got, err := db.GetCategories("alice")
	if err != nil {
		t.Fatalf("GetCategories failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}
	if got[0].Name != "Study" || len(got[0].Subcategories) != 2 {
		t.Errorf("got[0] = %+v, want Study with 2 subcategories", got[0])
	}
	if got[1].Name != "Rest" || len(got[1].Subcategories) != 0 {
		t.Errorf("got[1] = %+v, want Rest with no subcategories", got[1])
	}

	// A second replace removes the first set entirely.
	if err := db.ReplaceCategories("alice", custom[:1]); err != nil {
		t.Fatalf("ReplaceCategories failed: %v", err)
	}
	got, _ = db.GetCategories("alice")
	if len(got) != 1 || got[0].Name != "Study" {
		t.Errorf("expected only Study after second replace, got %d rows", len(got))
	}
}

func TestSaveAndGetChecklist(t *testing.T) {
	db := setupTestDB(t)
	u := mustCreateUser(t, db, "alice")

	items := map[string]bool{}
	for i, label := range models.DefaultChecklistItems {
		items[label] = i%2 == 0
	}
	c, err := models.NewDailyChecklist(u.ID, "2024-03-05", items, "solid morning")
	if err != nil {
		t.Fatalf("NewDailyChecklist failed: %v", err)
	}
	if err := db.SaveChecklist("alice", c); err != nil {
		t.Fatalf("SaveChecklist failed: %v", err)
	}

	got, err := db.GetChecklist("alice", "2024-03-05")
	if err != nil {
		t.Fatalf("GetChecklist failed: %v", err)
	}
	if len(got.Items) != len(models.DefaultChecklistItems) {
		t.Fatalf("expected %d items, got %d", len(models.DefaultChecklistItems), len(got.Items))
	}
	for label, done := range items {
		if got.Items[label] != done {
			t.Errorf("item %q = %v, want %v", label, got.Items[label], done)
		}
	}
	if got.Notes != "solid morning" {
		t.Errorf("Notes = %q, want 'solid morning'", got.Notes)
	}
}

func TestSaveChecklistUpsert(t *testing.T) {
	db := setupTestDB(t)
	u := mustCreateUser(t, db, "alice")

	first, _ := models.NewDailyChecklist(u.ID, "2024-03-05", map[string]bool{"Exercise": true}, "v1")
	if err := db.SaveChecklist("alice", first); err != nil {
		t.Fatalf("SaveChecklist failed: %v", err)
	}
	second, _ := models.NewDailyChecklist(u.ID, "2024-03-05", map[string]bool{"Reading": true}, "v2")
	if err := db.SaveChecklist("alice", second); err != nil {
		t.Fatalf("SaveChecklist failed: %v", err)
	}

	got, err := db.GetChecklist("alice", "2024-03-05")
	if err != nil {
		t.Fatalf("GetChecklist failed: %v", err)
	}
	// The replacement is whole, not merged.
	if _, ok := got.Items["Exercise"]; ok {
		t.Error("expected first checklist to be replaced, found Exercise")
	}
	if !got.Items["Reading"] || got.Notes != "v2" {
		t.Errorf("got %+v notes %q, want Reading done and notes v2", got.Items, got.Notes)
	}
}

func TestGetChecklistMissingDate(t *testing.T) {
	db := setupTestDB(t)
	mustCreateUser(t, db, "alice")

	got, err := db.GetChecklist("alice", "2024-03-05")
	if err != nil {
		t.Fatalf("GetChecklist failed: %v", err)
	}
	if len(got.Items) != 0 {
		t.Errorf("expected empty checklist, got %d items", len(got.Items))
	}
}
