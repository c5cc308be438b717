// ABOUTME: Qualitative and quantitative metric operations for SQLite storage.
// ABOUTME: Provides per-date fetch and the range query behind score trends.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lifetrack/internal/models"
)

// LogQualitativeMetric stores one day's self-reported scores.
func (d *DB) LogQualitativeMetric(userName string, m *models.QualitativeMetric) error {
	userID, err := d.userID(userName)
	if err != nil {
		return err
	}
	m.UserID = userID

	query := `
		INSERT INTO qualitative_metrics (id, user_id, date, life_score, work_score, health_score, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		m.ID.String(), m.UserID.String(), m.Date,
		m.LifeScore, m.WorkScore, m.HealthScore,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("log qualitative metric: %w", err)
	}
	return nil
}

// LogQuantitativeMetric stores one day's measured habits.
func (d *DB) LogQuantitativeMetric(userName string, m *models.QuantitativeMetric) error {
	userID, err := d.userID(userName)
	if err != nil {
		return err
	}
	m.UserID = userID

	query := `
		INSERT INTO quantitative_metrics (id, user_id, date, wake_up_time, workouts, meditation_minutes, brain_training_minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		m.ID.String(), m.UserID.String(), m.Date,
		m.WakeUpTime, m.Workouts, m.MeditationMinutes, m.BrainTrainingMinutes,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("log quantitative metric: %w", err)
	}
	return nil
}

// MetricsOn retrieves both metric kinds for one user-date. A day with no
// logged metrics returns an empty DayMetrics, not an error.
func (d *DB) MetricsOn(userName, date string) (*models.DayMetrics, error) {
	userID, err := d.userID(userName)
	if err != nil {
		return nil, err
	}

	dm := &models.DayMetrics{}

	qualRow := d.db.QueryRow(`
		SELECT id, date, life_score, work_score, health_score, created_at
		FROM qualitative_metrics
		WHERE user_id = ? AND date = ?
		ORDER BY created_at DESC LIMIT 1
	`, userID.String(), date)

	var qual models.QualitativeMetric
	var idStr, createdAt string
	err = qualRow.Scan(&idStr, &qual.Date, &qual.LifeScore, &qual.WorkScore, &qual.HealthScore, &createdAt)
	switch {
	case err == nil:
		qual.ID, _ = uuid.Parse(idStr)
		qual.UserID = userID
		qual.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		dm.Qualitative = &qual
	case errors.Is(err, sql.ErrNoRows):
		// no scores logged for this date
	default:
		return nil, fmt.Errorf("get metrics: %w", err)
	}

	quantRow := d.db.QueryRow(`
		SELECT id, date, wake_up_time, workouts, meditation_minutes, brain_training_minutes, created_at
		FROM quantitative_metrics
		WHERE user_id = ? AND date = ?
		ORDER BY created_at DESC LIMIT 1
	`, userID.String(), date)

	var quant models.QuantitativeMetric
	var wake sql.NullString
	err = quantRow.Scan(&idStr, &quant.Date, &wake, &quant.Workouts, &quant.MeditationMinutes, &quant.BrainTrainingMinutes, &createdAt)
	switch {
	case err == nil:
		quant.ID, _ = uuid.Parse(idStr)
		quant.UserID = userID
		quant.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if wake.Valid {
			quant.WakeUpTime = wake.String
		}
		dm.Quantitative = &quant
	case errors.Is(err, sql.ErrNoRows):
		// no quantitative entry for this date
	default:
		return nil, fmt.Errorf("get metrics: %w", err)
	}

	return dm, nil
}

// ScoresBetween returns one row per date in the inclusive range with the
// three qualitative scores, averaged when a date was logged more than
// once, ordered by date.
func (d *DB) ScoresBetween(userName, from, to string) ([]*models.DailyScores, error) {
	userID, err := d.userID(userName)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT date,
		       AVG(life_score) AS life_score,
		       AVG(work_score) AS work_score,
		       AVG(health_score) AS health_score
		FROM qualitative_metrics
		WHERE user_id = ? AND date BETWEEN ? AND ?
		GROUP BY date
		ORDER BY date
	`
	rows, err := d.db.Query(query, userID.String(), from, to)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer rows.Close()

	var scores []*models.DailyScores
	for rows.Next() {
		var s models.DailyScores
		if err := rows.Scan(&s.Date, &s.LifeScore, &s.WorkScore, &s.HealthScore); err != nil {
			return nil, fmt.Errorf("scan scores: %w", err)
		}
		scores = append(scores, &s)
	}
	return scores, rows.Err()
}
