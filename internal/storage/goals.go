// ABOUTME: Goal CRUD operations for SQLite storage.
// ABOUTME: Progress updates are unconditional overwrites, last write wins.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lifetrack/internal/models"
)

// SetGoal stores a new goal for the named user.
func (d *DB) SetGoal(userName string, g *models.Goal) error {
	userID, err := d.userID(userName)
	if err != nil {
		return err
	}
	g.UserID = userID

	query := `
		INSERT INTO goals (id, user_id, category, description, target_value, current_value, start_date, end_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		g.ID.String(), g.UserID.String(), g.Category, g.Description,
		g.TargetValue, g.CurrentValue, g.StartDate, g.EndDate,
		g.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("set goal: %w", err)
	}
	return nil
}

// ListGoals retrieves all goals for the named user, newest first.
func (d *DB) ListGoals(userName string) ([]*models.Goal, error) {
	userID, err := d.userID(userName)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, category, description, target_value, current_value, start_date, end_date, created_at
		FROM goals
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := d.db.Query(query, userID.String())
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []*models.Goal
	for rows.Next() {
		var g models.Goal
		var idStr, userIDStr, createdAt string
		var description sql.NullString

		err := rows.Scan(&idStr, &userIDStr, &g.Category, &description,
			&g.TargetValue, &g.CurrentValue, &g.StartDate, &g.EndDate, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}

		g.ID, _ = uuid.Parse(idStr)
		g.UserID, _ = uuid.Parse(userIDStr)
		g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if description.Valid {
			g.Description = description.String
		}
		goals = append(goals, &g)
	}
	return goals, rows.Err()
}

// UpdateGoalProgress overwrites a goal's current value. No clamping and
// no accumulation: the stored value is exactly the one supplied.
func (d *DB) UpdateGoalProgress(userName, goalIDOrPrefix string, currentValue float64) error {
	userID, err := d.userID(userName)
	if err != nil {
		return err
	}

	goalID, err := d.resolveGoalID(userID, goalIDOrPrefix)
	if err != nil {
		return err
	}

	_, err = d.db.Exec(
		"UPDATE goals SET current_value = ? WHERE id = ? AND user_id = ?",
		currentValue, goalID, userID.String(),
	)
	if err != nil {
		return fmt.Errorf("update goal progress: %w", err)
	}
	return nil
}

// resolveGoalID finds the full goal ID from a prefix, scoped to one user.
func (d *DB) resolveGoalID(userID uuid.UUID, idOrPrefix string) (string, error) {
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	rows, err := d.db.Query(
		"SELECT id FROM goals WHERE user_id = ? AND id LIKE ? || '%'",
		userID.String(), idOrPrefix,
	)
	if err != nil {
		return "", fmt.Errorf("resolve goal ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan goal ID: %w", err)
		}
		matches = append(matches, id)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("goal %s: %w", idOrPrefix, ErrNotFound)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple goals", idOrPrefix)
	}
	return matches[0], nil
}
