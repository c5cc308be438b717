// ABOUTME: Aggregation engine: per-category durations, percentages, breakdowns.
// ABOUTME: An empty window yields empty-but-valid results, never an error.
package report

import (
	"math"
	"sort"

	"github.com/harperreed/lifetrack/internal/models"
	"github.com/harperreed/lifetrack/internal/storage"
)

// CategoryShare is one category's aggregated slice of the window.
type CategoryShare struct {
	Category string
	Hours    float64
	Percent  float64 // of the window total, rounded to 2 decimal places
}

// Summary is the aggregated view of one user's activities in a window.
type Summary struct {
	Window     Window
	TotalHours float64
	Shares     []CategoryShare // sorted by Hours descending
}

// BreakdownRow is one (category, subcategory) pair's total hours.
type BreakdownRow struct {
	Category    string
	Subcategory string
	Hours       float64
}

// Summarize aggregates a user's activities in the window into per-category
// totals and percentages, sorted descending by hours. A window with no
// activities returns an empty summary with zero total hours.
func Summarize(repo storage.Repository, userName string, w Window) (*Summary, error) {
	activities, err := repo.ActivitiesBetween(userName, w.From, w.To)
	if err != nil {
		return nil, err
	}
	return summarize(activities, w), nil
}

func summarize(activities []*models.Activity, w Window) *Summary {
	totals := map[string]float64{}
	var total float64
	for _, a := range activities {
		h := a.Duration()
		totals[a.Category] += h
		total += h
	}

	s := &Summary{Window: w, TotalHours: total}
	for category, hours := range totals {
		share := CategoryShare{Category: category, Hours: hours}
		// Division by zero cannot occur: total is zero only when totals is empty.
		share.Percent = round2(hours / total * 100)
		s.Shares = append(s.Shares, share)
	}
	sort.Slice(s.Shares, func(i, j int) bool {
		if s.Shares[i].Hours != s.Shares[j].Hours {
			return s.Shares[i].Hours > s.Shares[j].Hours
		}
		return s.Shares[i].Category < s.Shares[j].Category
	})
	return s
}

// Breakdown aggregates a user's activities in the window into
// (category, subcategory, hours) rows sorted descending by hours.
func Breakdown(repo storage.Repository, userName string, w Window) ([]BreakdownRow, error) {
	activities, err := repo.ActivitiesBetween(userName, w.From, w.To)
	if err != nil {
		return nil, err
	}

	type key struct{ category, subcategory string }
	totals := map[key]float64{}
	for _, a := range activities {
		totals[key{a.Category, a.Subcategory}] += a.Duration()
	}

	rows := make([]BreakdownRow, 0, len(totals))
	for k, hours := range totals {
		rows = append(rows, BreakdownRow{Category: k.category, Subcategory: k.subcategory, Hours: hours})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Hours != rows[j].Hours {
			return rows[i].Hours > rows[j].Hours
		}
		if rows[i].Category != rows[j].Category {
			return rows[i].Category < rows[j].Category
		}
		return rows[i].Subcategory < rows[j].Subcategory
	})
	return rows, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
