// ABOUTME: Export and import functionality for life-tracking data.
// ABOUTME: Dumps every user's data grouped by profile, as JSON or YAML.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/lifetrack/internal/models"
	"gopkg.in/yaml.v3"
)

// UserData groups one user's rows for export.
type UserData struct {
	Name         string                       `json:"name" yaml:"name"`
	Activities   []*models.Activity           `json:"activities,omitempty" yaml:"activities,omitempty"`
	Qualitative  []*models.QualitativeMetric  `json:"qualitative_metrics,omitempty" yaml:"qualitative_metrics,omitempty"`
	Quantitative []*models.QuantitativeMetric `json:"quantitative_metrics,omitempty" yaml:"quantitative_metrics,omitempty"`
	Goals        []*models.Goal               `json:"goals,omitempty" yaml:"goals,omitempty"`
	Settings     *models.UserSettings         `json:"settings,omitempty" yaml:"settings,omitempty"`
	Categories   []*models.CustomCategory     `json:"categories,omitempty" yaml:"categories,omitempty"`
	Checklists   []*models.DailyChecklist     `json:"checklists,omitempty" yaml:"checklists,omitempty"`
}

// ExportData represents the full export format for life-tracking data.
type ExportData struct {
	Version    string      `json:"version" yaml:"version"`
	ExportedAt time.Time   `json:"exported_at" yaml:"exported_at"`
	Tool       string      `json:"tool" yaml:"tool"`
	Users      []*UserData `json:"users" yaml:"users"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	users, err := d.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	export := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "lifetrack",
	}

	for _, u := range users {
		ud := &UserData{Name: u.Name}

		// The widest possible range: dates are lexicographic ISO strings.
		ud.Activities, err = d.ActivitiesBetween(u.Name, "0000-01-01", "9999-12-31")
		if err != nil {
			return nil, err
		}
		scores, err := d.scoresRaw(u.Name)
		if err != nil {
			return nil, err
		}
		ud.Qualitative = scores
		ud.Quantitative, err = d.quantitativeRaw(u.Name)
		if err != nil {
			return nil, err
		}
		ud.Goals, err = d.ListGoals(u.Name)
		if err != nil {
			return nil, err
		}
		ud.Settings, err = d.GetSettings(u.Name)
		if err != nil {
			return nil, err
		}
		ud.Categories, err = d.categoriesRaw(u.Name)
		if err != nil {
			return nil, err
		}
		ud.Checklists, err = d.checklistsRaw(u.Name)
		if err != nil {
			return nil, err
		}

		export.Users = append(export.Users, ud)
	}

	return export, nil
}

// ImportData imports data from an export file. Destination users must not
// already exist; duplicates cause errors.
func (d *DB) ImportData(data *ExportData) error {
	for _, ud := range data.Users {
		if _, err := d.CreateUser(ud.Name); err != nil {
			return fmt.Errorf("import user %s: %w", ud.Name, err)
		}
		for _, a := range ud.Activities {
			if err := d.LogActivity(ud.Name, a); err != nil {
				return fmt.Errorf("import activity: %w", err)
			}
		}
		for _, m := range ud.Qualitative {
			if err := d.LogQualitativeMetric(ud.Name, m); err != nil {
				return fmt.Errorf("import qualitative metric: %w", err)
			}
		}
		for _, m := range ud.Quantitative {
			if err := d.LogQuantitativeMetric(ud.Name, m); err != nil {
				return fmt.Errorf("import quantitative metric: %w", err)
			}
		}
		for _, g := range ud.Goals {
			current := g.CurrentValue
			if err := d.SetGoal(ud.Name, g); err != nil {
				return fmt.Errorf("import goal: %w", err)
			}
			if current != 0 {
				if err := d.UpdateGoalProgress(ud.Name, g.ID.String(), current); err != nil {
					return fmt.Errorf("import goal progress: %w", err)
				}
			}
		}
		if ud.Settings != nil {
			if err := d.SaveSettings(ud.Name, ud.Settings); err != nil {
				return fmt.Errorf("import settings: %w", err)
			}
		}
		if len(ud.Categories) > 0 {
			if err := d.ReplaceCategories(ud.Name, ud.Categories); err != nil {
				return fmt.Errorf("import categories: %w", err)
			}
		}
		for _, c := range ud.Checklists {
			if err := d.SaveChecklist(ud.Name, c); err != nil {
				return fmt.Errorf("import checklist: %w", err)
			}
		}
	}
	return nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON imports data from a JSON export.
func (d *DB) ImportJSON(raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse export file: %w", err)
	}
	return d.ImportData(&data)
}

// scoresRaw lists all qualitative rows for a user without aggregation.
func (d *DB) scoresRaw(userName string) ([]*models.QualitativeMetric, error) {
	userID, err := d.userID(userName)
	if err != nil {
		return nil, err
	}
	rows, err := d.db.Query(`
		SELECT id, date, life_score, work_score, health_score
		FROM qualitative_metrics WHERE user_id = ? ORDER BY date
	`, userID.String())
	if err != nil {
		return nil, fmt.Errorf("export qualitative metrics: %w", err)
	}
	defer rows.Close()

	var out []*models.QualitativeMetric
	for rows.Next() {
		var m models.QualitativeMetric
		var idStr string
		if err := rows.Scan(&idStr, &m.Date, &m.LifeScore, &m.WorkScore, &m.HealthScore); err != nil {
			return nil, fmt.Errorf("scan qualitative metric: %w", err)
		}
		m.ID = mustUUID(idStr)
		m.UserID = userID
		out = append(out, &m)
	}
	return out, rows.Err()
}

// quantitativeRaw lists all quantitative rows for a user.
func (d *DB) quantitativeRaw(userName string) ([]*models.QuantitativeMetric, error) {
	userID, err := d.userID(userName)
	if err != nil {
		return nil, err
	}
	rows, err := d.db.Query(`
		SELECT id, date, COALESCE(wake_up_time, ''), workouts, meditation_minutes, brain_training_minutes
		FROM quantitative_metrics WHERE user_id = ? ORDER BY date
	`, userID.String())
	if err != nil {
		return nil, fmt.Errorf("export quantitative metrics: %w", err)
	}
	defer rows.Close()

	var out []*models.QuantitativeMetric
	for rows.Next() {
		var m models.QuantitativeMetric
		var idStr string
		if err := rows.Scan(&idStr, &m.Date, &m.WakeUpTime, &m.Workouts, &m.MeditationMinutes, &m.BrainTrainingMinutes); err != nil {
			return nil, fmt.Errorf("scan quantitative metric: %w", err)
		}
		m.ID = mustUUID(idStr)
		m.UserID = userID
		out = append(out, &m)
	}
	return out, rows.Err()
}

// categoriesRaw lists only explicitly stored categories, without the
// default-vocabulary fallback GetCategories applies.
func (d *DB) categoriesRaw(userName string) ([]*models.CustomCategory, error) {
	userID, err := d.userID(userName)
	if err != nil {
		return nil, err
	}
	var count int
	if err := d.db.QueryRow(
		"SELECT COUNT(*) FROM custom_categories WHERE user_id = ?", userID.String(),
	).Scan(&count); err != nil {
		return nil, fmt.Errorf("export categories: %w", err)
	}
	if count == 0 {
		return nil, nil
	}
	return d.GetCategories(userName)
}

// checklistsRaw lists all checklist rows for a user.
func (d *DB) checklistsRaw(userName string) ([]*models.DailyChecklist, error) {
	userID, err := d.userID(userName)
	if err != nil {
		return nil, err
	}
	rows, err := d.db.Query(
		"SELECT date FROM daily_checklist WHERE user_id = ? ORDER BY date", userID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("export checklists: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan checklist date: %w", err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var out []*models.DailyChecklist
	for _, date := range dates {
		c, err := d.GetChecklist(userName, date)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
