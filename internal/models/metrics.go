// ABOUTME: Qualitative and quantitative daily metric models.
// ABOUTME: One row of each kind per user per date, scores on a 1-10 scale.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Score bounds for qualitative metrics.
const (
	MinScore = 1
	MaxScore = 10
)

// QualitativeMetric holds the three self-reported daily scores.
type QualitativeMetric struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        string // YYYY-MM-DD
	LifeScore   int
	WorkScore   int
	HealthScore int
	CreatedAt   time.Time
}

// NewQualitativeMetric creates a scored entry, validating score ranges.
func NewQualitativeMetric(userID uuid.UUID, date string, life, work, health int) (*QualitativeMetric, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	for _, s := range []struct {
		name  string
		value int
	}{{"life", life}, {"work", work}, {"health", health}} {
		if s.value < MinScore || s.value > MaxScore {
			return nil, fmt.Errorf("%s score %d out of range %d-%d", s.name, s.value, MinScore, MaxScore)
		}
	}
	return &QualitativeMetric{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        day.Format(DateLayout),
		LifeScore:   life,
		WorkScore:   work,
		HealthScore: health,
		CreatedAt:   time.Now(),
	}, nil
}

// QuantitativeMetric holds the measurable daily habits.
type QuantitativeMetric struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	Date                 string // YYYY-MM-DD
	WakeUpTime           string // HH:MM
	Workouts             int
	MeditationMinutes    int
	BrainTrainingMinutes int
	CreatedAt            time.Time
}

// NewQuantitativeMetric creates a quantitative entry, validating the date,
// wake time, and non-negative counts.
func NewQuantitativeMetric(userID uuid.UUID, date, wakeUp string, workouts, meditation, brainTraining int) (*QuantitativeMetric, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	wake := ""
	if wakeUp != "" {
		t, err := ParseClock(wakeUp)
		if err != nil {
			return nil, fmt.Errorf("wake-up time: %w", err)
		}
		wake = t.Format(ClockLayout)
	}
	if workouts < 0 || meditation < 0 || brainTraining < 0 {
		return nil, fmt.Errorf("metric counts must be non-negative")
	}
	return &QuantitativeMetric{
		ID:                   uuid.New(),
		UserID:               userID,
		Date:                 day.Format(DateLayout),
		WakeUpTime:           wake,
		Workouts:             workouts,
		MeditationMinutes:    meditation,
		BrainTrainingMinutes: brainTraining,
		CreatedAt:            time.Now(),
	}, nil
}

// DayMetrics bundles both metric kinds for one user-date, either of which
// may be nil when nothing was logged.
type DayMetrics struct {
	Qualitative  *QualitativeMetric
	Quantitative *QuantitativeMetric
}

// DailyScores is one date's qualitative scores, used for trend reporting.
type DailyScores struct {
	Date        string
	LifeScore   float64
	WorkScore   float64
	HealthScore float64
}
