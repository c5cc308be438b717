// ABOUTME: Activity model and the default category vocabulary.
// ABOUTME: Activities are same-day time blocks: date + start/end clock times.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Default activity categories. Users can replace this vocabulary with
// custom categories; these apply whenever no custom set is stored.
const (
	CategoryWork   = "Work"
	CategoryLife   = "Life"
	CategoryHealth = "Health"
	CategorySleep  = "Sleep"
)

// DefaultCategories is the built-in category vocabulary.
var DefaultCategories = []string{CategoryWork, CategoryLife, CategoryHealth, CategorySleep}

// DefaultSubcategories maps each default category to its subcategories.
var DefaultSubcategories = map[string][]string{
	CategoryWork:   {"Meetings", "Deep Work", "Admin"},
	CategoryLife:   {"Family", "Friends", "Hobbies"},
	CategoryHealth: {"Exercise", "Meditation", "Personal Care"},
	CategorySleep:  {"Night Sleep"},
}

// Activity represents one logged time block for a user on a single day.
// Activities never span midnight: End must be after Start on the same date.
type Activity struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        string // YYYY-MM-DD
	Category    string
	Subcategory string
	Start       string // HH:MM
	End         string // HH:MM
	CreatedAt   time.Time
}

// NewActivity creates an Activity with generated UUID and current timestamp.
// It validates the date and clock strings and rejects End <= Start.
func NewActivity(userID uuid.UUID, date, category, subcategory, start, end string) (*Activity, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	startClock, err := ParseClock(start)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	endClock, err := ParseClock(end)
	if err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}
	if !endClock.After(startClock) {
		return nil, fmt.Errorf("end time %s must be after start time %s", end, start)
	}
	return &Activity{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        day.Format(DateLayout),
		Category:    category,
		Subcategory: subcategory,
		Start:       startClock.Format(ClockLayout),
		End:         endClock.Format(ClockLayout),
		CreatedAt:   time.Now(),
	}, nil
}

// Duration returns the activity length in hours.
func (a *Activity) Duration() float64 {
	start, err := ParseClock(a.Start)
	if err != nil {
		return 0
	}
	end, err := ParseClock(a.End)
	if err != nil {
		return 0
	}
	return end.Sub(start).Hours()
}
