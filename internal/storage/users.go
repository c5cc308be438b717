// ABOUTME: User CRUD operations for SQLite storage.
// ABOUTME: Resolves user names to IDs; all other operations build on this.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lifetrack/internal/models"
)

// CreateUser inserts a new user profile. Names are unique.
func (d *DB) CreateUser(name string) (*models.User, error) {
	if name == "" {
		return nil, fmt.Errorf("user name must not be empty")
	}
	u := models.NewUser(name)
	_, err := d.db.Exec(
		"INSERT INTO users (id, name, created_at) VALUES (?, ?, ?)",
		u.ID.String(), u.Name, u.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// GetUser retrieves a user profile by name.
func (d *DB) GetUser(name string) (*models.User, error) {
	row := d.db.QueryRow("SELECT id, name, created_at FROM users WHERE name = ?", name)

	var u models.User
	var idStr, createdAt string
	if err := row.Scan(&idStr, &u.Name, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.ID, _ = uuid.Parse(idStr)
	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &u, nil
}

// ListUsers retrieves all user profiles, ordered by name.
func (d *DB) ListUsers() ([]*models.User, error) {
	rows, err := d.db.Query("SELECT id, name, created_at FROM users ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var u models.User
		var idStr, createdAt string
		if err := rows.Scan(&idStr, &u.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.ID, _ = uuid.Parse(idStr)
		u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		users = append(users, &u)
	}
	return users, rows.Err()
}

// DeleteUser removes a user profile. Owned rows are removed by the
// schema's ON DELETE CASCADE.
func (d *DB) DeleteUser(name string) error {
	result, err := d.db.Exec("DELETE FROM users WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %q: %w", name, ErrNotFound)
	}
	return nil
}

// mustUUID parses a stored UUID, returning uuid.Nil on malformed input.
func mustUUID(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}

// userID resolves a user name to its ID. Every write path calls this
// before inserting, so an unknown name fails with ErrNotFound instead of
// producing orphaned rows.
func (d *DB) userID(name string) (uuid.UUID, error) {
	row := d.db.QueryRow("SELECT id FROM users WHERE name = ?", name)
	var idStr string
	if err := row.Scan(&idStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("user %q: %w", name, ErrNotFound)
		}
		return uuid.Nil, fmt.Errorf("resolve user: %w", err)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve user: %w", err)
	}
	return id, nil
}
