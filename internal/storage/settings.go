// ABOUTME: User settings operations for SQLite storage.
// ABOUTME: Settings are upserted per user; absent rows yield defaults.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/lifetrack/internal/models"
)

// GetSettings retrieves a user's settings, applying the built-in defaults
// when the user has never saved any.
func (d *DB) GetSettings(userName string) (*models.UserSettings, error) {
	userID, err := d.userID(userName)
	if err != nil {
		return nil, err
	}

	row := d.db.QueryRow(`
		SELECT default_wake_time, work_weight, life_weight, health_weight
		FROM user_settings
		WHERE user_id = ?
	`, userID.String())

	s := models.UserSettings{UserID: userID}
	var wake sql.NullString
	err = row.Scan(&wake, &s.WorkWeight, &s.LifeWeight, &s.HealthWeight)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultSettings(userID), nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if wake.Valid {
		s.DefaultWakeTime = wake.String
	}
	return &s, nil
}

// SaveSettings upserts a user's settings, keyed by user. The second write
// for the same user wins in full.
func (d *DB) SaveSettings(userName string, s *models.UserSettings) error {
	userID, err := d.userID(userName)
	if err != nil {
		return err
	}
	s.UserID = userID

	query := `
		INSERT OR REPLACE INTO user_settings (user_id, default_wake_time, work_weight, life_weight, health_weight)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		userID.String(), s.DefaultWakeTime, s.WorkWeight, s.LifeWeight, s.HealthWeight,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
