// ABOUTME: Goal model for target/current numeric progress pairs.
// ABOUTME: Progress updates are unconditional overwrites of current_value.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Goal represents a tracked target within a category and date range.
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Category     string
	Description  string
	TargetValue  float64
	CurrentValue float64
	StartDate    string // YYYY-MM-DD
	EndDate      string // YYYY-MM-DD
	CreatedAt    time.Time
}

// NewGoal creates a Goal with current progress at zero.
func NewGoal(userID uuid.UUID, category, description string, target float64, startDate, endDate string) (*Goal, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	return &Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Category:     category,
		Description:  description,
		TargetValue:  target,
		CurrentValue: 0,
		StartDate:    start.Format(DateLayout),
		EndDate:      end.Format(DateLayout),
		CreatedAt:    time.Now(),
	}, nil
}

// PercentComplete returns progress as a percentage of the target.
// It is derived at display time and never persisted.
func (g *Goal) PercentComplete() float64 {
	if g.TargetValue == 0 {
		return 0
	}
	return g.CurrentValue / g.TargetValue * 100
}
