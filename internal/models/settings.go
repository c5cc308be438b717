// ABOUTME: Per-user settings, custom category vocabulary, and preset templates.
// ABOUTME: Settings are upserted per user; presets bundle settings + categories.
package models

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// UserSettings holds per-user preferences, one row per user.
type UserSettings struct {
	UserID          uuid.UUID
	DefaultWakeTime string // HH:MM, may be empty
	WorkWeight      float64
	LifeWeight      float64
	HealthWeight    float64
}

// DefaultSettings returns the built-in settings applied when a user has
// never saved any.
func DefaultSettings(userID uuid.UUID) *UserSettings {
	return &UserSettings{
		UserID:       userID,
		WorkWeight:   1.0,
		LifeWeight:   1.0,
		HealthWeight: 1.0,
	}
}

// CustomCategory is one user-defined category with its subcategories.
// A user's custom set, when present, replaces the default vocabulary.
type CustomCategory struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Subcategories []string
}

// Preset is a named settings template bundling wake time, weights, and a
// category vocabulary.
type Preset struct {
	Name            string
	DefaultWakeTime string
	WorkWeight      float64
	LifeWeight      float64
	HealthWeight    float64
	Categories      []string
	Subcategories   map[string][]string
}

var presets = map[string]Preset{
	"balanced": {
		Name:            "balanced",
		DefaultWakeTime: "06:00",
		WorkWeight:      1.0,
		LifeWeight:      1.0,
		HealthWeight:    1.0,
		Categories:      DefaultCategories,
		Subcategories:   DefaultSubcategories,
	},
	"early-riser": {
		Name:            "early-riser",
		DefaultWakeTime: "05:00",
		WorkWeight:      1.0,
		LifeWeight:      1.0,
		HealthWeight:    1.2,
		Categories:      DefaultCategories,
		Subcategories: map[string][]string{
			CategoryWork:   {"Core Work", "Side Projects", "Other"},
			CategoryLife:   {"Partner", "Kids", "Friends & Social", "Other"},
			CategoryHealth: {"Gym", "Meditation", "Personal Care", "Other"},
			CategorySleep:  {},
		},
	},
	"student": {
		Name:            "student",
		DefaultWakeTime: "07:00",
		WorkWeight:      1.2,
		LifeWeight:      0.8,
		HealthWeight:    1.0,
		Categories:      []string{"Study", CategoryLife, CategoryHealth, CategorySleep},
		Subcategories: map[string][]string{
			"Study":        {"Classes", "Homework", "Research", "Other"},
			CategoryLife:   {"Family", "Friends", "Hobbies", "Other"},
			CategoryHealth: {"Exercise", "Meditation", "Personal Care", "Other"},
			CategorySleep:  {},
		},
	},
}

// GetPreset looks up a preset template by name.
func GetPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q (valid: %v)", name, PresetNames())
	}
	return p, nil
}

// PresetNames returns the available preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
