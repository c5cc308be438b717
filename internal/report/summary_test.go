// ABOUTME: Tests for aggregation: summaries, breakdowns, and windows.
// ABOUTME: Percentages must sum to ~100 and empty windows must stay valid.
package report

import (
	"testing"
	"time"

	"github.com/harperreed/lifetrack/internal/models"
	"github.com/harperreed/lifetrack/internal/storage"
)

func TestSummarize(t *testing.T) {
	db := setupTestDB(t)
	u := mustCreateUser(t, db, "alice")

	logActivity(t, db, u, "2024-03-05", models.CategoryWork, "Meetings", "09:00", "11:30")
	logActivity(t, db, u, "2024-03-05", models.CategoryLife, "Family", "18:00", "20:30")
	logActivity(t, db, u, "2024-03-06", models.CategoryWork, "Deep Work", "09:00", "14:00")

	w := Window{From: "2024-03-01", To: "2024-03-31"}
	s, err := Summarize(db, "alice", w)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if s.TotalHours != 10 {
		t.Errorf("TotalHours = %v, want 10", s.TotalHours)
	}
	if len(s.Shares) != 2 {
		t.Fatalf("expected 2 shares, got %d", len(s.Shares))
	}
	// Sorted by hours descending.
	if s.Shares[0].Category != models.CategoryWork || s.Shares[0].Hours != 7.5 {
		t.Errorf("Shares[0] = %+v, want Work 7.5h", s.Shares[0])
	}
	if s.Shares[0].Percent != 75 || s.Shares[1].Percent != 25 {
		t.Errorf("percents = %v/%v, want 75/25", s.Shares[0].Percent, s.Shares[1].Percent)
	}
}

func TestSummarizePercentagesSumTo100(t *testing.T) {
	db := setupTestDB(t)
	u := mustCreateUser(t, db, "alice")

	// Durations chosen so the shares do not divide evenly.
	logActivity(t, db, u, "2024-03-05", models.CategoryWork, "", "09:00", "10:00")
	logActivity(t, db, u, "2024-03-05", models.CategoryLife, "", "10:00", "11:00")
	logActivity(t, db, u, "2024-03-05", models.CategoryHealth, "", "11:00", "12:00")

	s, err := Summarize(db, "alice", Window{From: "2024-03-01", To: "2024-03-31"})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	var sum float64
	for _, share := range s.Shares {
		sum += share.Percent
	}
	if sum < 99.9 || sum > 100.1 {
		t.Errorf("percentages sum to %v, want ~100", sum)
	}
}

func TestSummarizeEmptyWindow(t *testing.T) {
	db := setupTestDB(t)
	mustCreateUser(t, db, "alice")

	s, err := Summarize(db, "alice", Window{From: "2024-03-01", To: "2024-03-31"})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.TotalHours != 0 || len(s.Shares) != 0 {
		t.Errorf("expected empty summary, got %+v", s)
	}
}

func TestBreakdown(t *testing.T) {
	db := setupTestDB(t)
	u := mustCreateUser(t, db, "alice")

	logActivity(t, db, u, "2024-03-05", models.CategoryWork, "Meetings", "09:00", "10:00")
	logActivity(t, db, u, "2024-03-06", models.CategoryWork, "Meetings", "09:00", "10:00")
	logActivity(t, db, u, "2024-03-05", models.CategoryWork, "Deep Work", "10:00", "13:00")

	rows, err := Breakdown(db, "alice", Window{From: "2024-03-01", To: "2024-03-31"})
	if err != nil {
		t.Fatalf("Breakdown failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Subcategory != "Deep Work" || rows[0].Hours != 3 {
		t.Errorf("rows[0] = %+v, want Deep Work 3h", rows[0])
	}
	if rows[1].Subcategory != "Meetings" || rows[1].Hours != 2 {
		t.Errorf("rows[1] = %+v, want Meetings 2h", rows[1])
	}
}

func TestWeeklyWindow(t *testing.T) {
	ref := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	w := WeeklyWindow(ref)
	if w.From != "2024-03-08" || w.To != "2024-03-15" {
		t.Errorf("window = %s..%s, want 2024-03-08..2024-03-15", w.From, w.To)
	}
}

func TestMonthlyWindow(t *testing.T) {
	ref := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	w := MonthlyWindow(ref)
	if w.From != "2024-02-01" || w.To != "2024-02-29" {
		t.Errorf("window = %s..%s, want 2024-02-01..2024-02-29", w.From, w.To)
	}
}

// logActivity creates and stores one activity or fails the test.
func logActivity(t *testing.T, db *storage.DB, u *models.User, date, category, sub, start, end string) {
	t.Helper()
	a, err := models.NewActivity(u.ID, date, category, sub, start, end)
	if err != nil {
		t.Fatalf("NewActivity failed: %v", err)
	}
	if err := db.LogActivity(u.Name, a); err != nil {
		t.Fatalf("LogActivity failed: %v", err)
	}
}

// mustCreateUser creates a user or fails the test.
func mustCreateUser(t *testing.T, db *storage.DB, name string) *models.User {
	t.Helper()
	u, err := db.CreateUser(name)
	if err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", name, err)
	}
	return u
}
