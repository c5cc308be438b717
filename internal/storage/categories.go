// ABOUTME: Custom category vocabulary operations for SQLite storage.
// ABOUTME: The stored set replaces the defaults wholesale; replace is transactional.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/lifetrack/internal/models"
)

// GetCategories retrieves the user's category vocabulary. When the user
// has no custom categories, the built-in defaults are returned.
func (d *DB) GetCategories(userName string) ([]*models.CustomCategory, error) {
	userID, err := d.userID(userName)
	if err != nil {
		return nil, err
	}

	rows, err := d.db.Query(`
		SELECT id, category_name, subcategories
		FROM custom_categories
		WHERE user_id = ?
		ORDER BY rowid
	`, userID.String())
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.CustomCategory
	for rows.Next() {
		var c models.CustomCategory
		var idStr string
		var subs sql.NullString
		if err := rows.Scan(&idStr, &c.Name, &subs); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.ID, _ = uuid.Parse(idStr)
		c.UserID = userID
		if subs.Valid && subs.String != "" {
			c.Subcategories = strings.Split(subs.String, ",")
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		for _, name := range models.DefaultCategories {
			categories = append(categories, &models.CustomCategory{
				ID:            uuid.New(),
				UserID:        userID,
				Name:          name,
				Subcategories: models.DefaultSubcategories[name],
			})
		}
	}
	return categories, nil
}

// ReplaceCategories atomically replaces the user's custom category set.
func (d *DB) ReplaceCategories(userName string, categories []*models.CustomCategory) error {
	userID, err := d.userID(userName)
	if err != nil {
		return err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("replace categories: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM custom_categories WHERE user_id = ?", userID.String()); err != nil {
		return fmt.Errorf("replace categories: %w", err)
	}

	for _, c := range categories {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		c.UserID = userID
		if _, err := tx.Exec(`
			INSERT INTO custom_categories (id, user_id, category_name, subcategories)
			VALUES (?, ?, ?, ?)`,
			c.ID.String(), userID.String(), c.Name, strings.Join(c.Subcategories, ","),
		); err != nil {
			return fmt.Errorf("replace categories: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace categories: %w", err)
	}
	return nil
}
