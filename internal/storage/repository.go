// ABOUTME: Repository interface for life-tracking data storage.
// ABOUTME: Defines the contract for all entity operations, scoped by user name.
package storage

import (
	"errors"

	"github.com/harperreed/lifetrack/internal/models"
)

// ErrNotFound is returned when a named user or record does not exist.
// Every write resolves its owning user first and fails with this error
// rather than inserting orphaned rows.
var ErrNotFound = errors.New("not found")

// Repository defines the storage interface for life-tracking data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// User operations
	CreateUser(name string) (*models.User, error)
	GetUser(name string) (*models.User, error)
	ListUsers() ([]*models.User, error)
	DeleteUser(name string) error

	// Activity operations
	LogActivity(userName string, a *models.Activity) error
	ActivitiesOn(userName, date string) ([]*models.Activity, error)
	ActivitiesBetween(userName, from, to string) ([]*models.Activity, error)
	ReplaceDayActivities(userName, date string, activities []*models.Activity) error

	// Metric operations
	LogQualitativeMetric(userName string, m *models.QualitativeMetric) error
	LogQuantitativeMetric(userName string, m *models.QuantitativeMetric) error
	MetricsOn(userName, date string) (*models.DayMetrics, error)
	ScoresBetween(userName, from, to string) ([]*models.DailyScores, error)

	// Goal operations
	SetGoal(userName string, g *models.Goal) error
	ListGoals(userName string) ([]*models.Goal, error)
	UpdateGoalProgress(userName, goalIDOrPrefix string, currentValue float64) error

	// Settings operations
	GetSettings(userName string) (*models.UserSettings, error)
	SaveSettings(userName string, s *models.UserSettings) error

	// Category vocabulary operations
	GetCategories(userName string) ([]*models.CustomCategory, error)
	ReplaceCategories(userName string, categories []*models.CustomCategory) error

	// Checklist operations
	SaveChecklist(userName string, c *models.DailyChecklist) error
	GetChecklist(userName, date string) (*models.DailyChecklist, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ImportJSON(data []byte) error

	// Lifecycle
	Close() error
}
