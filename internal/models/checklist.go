// ABOUTME: Daily checklist model, a label-to-boolean map plus free-form notes.
// ABOUTME: One checklist per user per date, upserted as a whole.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultChecklistItems is the built-in daily routine checklist.
var DefaultChecklistItems = []string{
	"Wake up & Mindfulness",
	"Exercise",
	"Meditation",
	"Morning Walk",
	"Active Learning with Breakfast",
	"Morning Work Block",
	"Lunch Break",
	"Afternoon Work Block",
	"Active Learning",
	"Brain Training",
	"Reading",
	"Journaling",
	"Evening Reflection",
	"Plan for Tomorrow",
}

// DailyChecklist holds one day's checked items and notes for a user.
// Items maps checklist labels to done/not-done.
type DailyChecklist struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      string // YYYY-MM-DD
	Items     map[string]bool
	Notes     string
	CreatedAt time.Time
}

// NewDailyChecklist creates a checklist entry for a user-date.
func NewDailyChecklist(userID uuid.UUID, date string, items map[string]bool, notes string) (*DailyChecklist, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = map[string]bool{}
	}
	return &DailyChecklist{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      day.Format(DateLayout),
		Items:     items,
		Notes:     notes,
		CreatedAt: time.Now(),
	}, nil
}
