// ABOUTME: Activity CRUD operations for SQLite storage.
// ABOUTME: Includes the transactional replace-day path used by the day editor.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lifetrack/internal/models"
)

// LogActivity stores a new activity for the named user.
func (d *DB) LogActivity(userName string, a *models.Activity) error {
	userID, err := d.userID(userName)
	if err != nil {
		return err
	}
	a.UserID = userID

	query := `
		INSERT INTO daily_activities (id, user_id, date, category, subcategory, start_time, end_time, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		a.ID.String(),
		a.UserID.String(),
		a.Date,
		a.Category,
		a.Subcategory,
		a.Start,
		a.End,
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("log activity: %w", err)
	}
	return nil
}

// ActivitiesOn retrieves a user's activities for one date, restricted to
// the user's category vocabulary and ordered by start time.
func (d *DB) ActivitiesOn(userName, date string) ([]*models.Activity, error) {
	userID, err := d.userID(userName)
	if err != nil {
		return nil, err
	}

	categories, err := d.GetCategories(userName)
	if err != nil {
		return nil, err
	}
	placeholders := ""
	args := []interface{}{userID.String(), date}
	for i, c := range categories {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += "?"
		args = append(args, c.Name)
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, date, category, subcategory, start_time, end_time, created_at
		FROM daily_activities
		WHERE user_id = ? AND date = ? AND category IN (%s)
		ORDER BY start_time
	`, placeholders)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

// ActivitiesBetween retrieves a user's activities in an inclusive date
// range, ordered by date then start time.
func (d *DB) ActivitiesBetween(userName, from, to string) ([]*models.Activity, error) {
	userID, err := d.userID(userName)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, date, category, subcategory, start_time, end_time, created_at
		FROM daily_activities
		WHERE user_id = ? AND date BETWEEN ? AND ?
		ORDER BY date, start_time
	`
	rows, err := d.db.Query(query, userID.String(), from, to)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

// ReplaceDayActivities atomically replaces all of a user's activities for
// one date. The delete and inserts run in a single transaction so a
// failure cannot leave the day half-updated.
func (d *DB) ReplaceDayActivities(userName, date string, activities []*models.Activity) error {
	userID, err := d.userID(userName)
	if err != nil {
		return err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("replace day activities: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		"DELETE FROM daily_activities WHERE user_id = ? AND date = ?",
		userID.String(), date,
	); err != nil {
		return fmt.Errorf("replace day activities: %w", err)
	}

	for _, a := range activities {
		a.UserID = userID
		a.Date = date
		if _, err := tx.Exec(`
			INSERT INTO daily_activities (id, user_id, date, category, subcategory, start_time, end_time, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID.String(), userID.String(), date, a.Category, a.Subcategory,
			a.Start, a.End, a.CreatedAt.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("replace day activities: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace day activities: %w", err)
	}
	return nil
}

// scanActivities scans rows into a slice of Activities.
func scanActivities(rows *sql.Rows) ([]*models.Activity, error) {
	var activities []*models.Activity
	for rows.Next() {
		var a models.Activity
		var idStr, userIDStr, createdAt string
		var subcategory sql.NullString

		err := rows.Scan(&idStr, &userIDStr, &a.Date, &a.Category, &subcategory, &a.Start, &a.End, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}

		a.ID, _ = uuid.Parse(idStr)
		a.UserID, _ = uuid.Parse(userIDStr)
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if subcategory.Valid {
			a.Subcategory = subcategory.String
		}
		activities = append(activities, &a)
	}
	return activities, rows.Err()
}
