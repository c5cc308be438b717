// ABOUTME: Daily checklist operations for SQLite storage.
// ABOUTME: Payload is a JSON label-to-boolean map, upserted per user-date.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lifetrack/internal/models"
)

// SaveChecklist upserts one day's checklist for the named user. A second
// save for the same user-date replaces the first in full.
func (d *DB) SaveChecklist(userName string, c *models.DailyChecklist) error {
	userID, err := d.userID(userName)
	if err != nil {
		return err
	}
	c.UserID = userID
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	payload, err := json.Marshal(c.Items)
	if err != nil {
		return fmt.Errorf("save checklist: %w", err)
	}

	query := `
		INSERT INTO daily_checklist (id, user_id, date, checklist_data, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, date) DO UPDATE SET
			checklist_data = excluded.checklist_data,
			notes = excluded.notes
	`
	_, err = d.db.Exec(query,
		c.ID.String(), userID.String(), c.Date, string(payload), c.Notes,
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save checklist: %w", err)
	}
	return nil
}

// GetChecklist retrieves one day's checklist. A date with no saved
// checklist returns an empty checklist, not an error.
func (d *DB) GetChecklist(userName, date string) (*models.DailyChecklist, error) {
	userID, err := d.userID(userName)
	if err != nil {
		return nil, err
	}

	row := d.db.QueryRow(`
		SELECT id, checklist_data, notes, created_at
		FROM daily_checklist
		WHERE user_id = ? AND date = ?
	`, userID.String(), date)

	var c models.DailyChecklist
	var idStr, createdAt string
	var payload, notes sql.NullString
	err = row.Scan(&idStr, &payload, &notes, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.DailyChecklist{
				UserID: userID,
				Date:   date,
				Items:  map[string]bool{},
			}, nil
		}
		return nil, fmt.Errorf("get checklist: %w", err)
	}

	c.ID, _ = uuid.Parse(idStr)
	c.UserID = userID
	c.Date = date
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	c.Items = map[string]bool{}
	if payload.Valid && payload.String != "" {
		if err := json.Unmarshal([]byte(payload.String), &c.Items); err != nil {
			return nil, fmt.Errorf("get checklist: decode payload: %w", err)
		}
	}
	if notes.Valid {
		c.Notes = notes.String
	}
	return &c, nil
}
