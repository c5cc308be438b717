// ABOUTME: Monthly calendar formatter: one row per day with category hours.
// ABOUTME: Builds a full-month date spine and zero-fills days without data.
package report

import (
	"sort"
	"time"

	"github.com/harperreed/lifetrack/internal/models"
	"github.com/harperreed/lifetrack/internal/storage"
)

// CalendarDay is one calendar row: a date and its per-category hours.
// Every category column present in the month appears in Hours, zero when
// nothing was logged that day.
type CalendarDay struct {
	Date  string
	Hours map[string]float64
}

// Calendar is a month's time-allocation grid.
type Calendar struct {
	Year       int
	Month      time.Month
	Categories []string // column order, sorted
	Days       []CalendarDay
}

// MonthlyCalendar produces exactly days-in-month rows for the selected
// month, combining the date spine with per-day per-category activity
// totals. This is the only report that enumerates dates independently of
// stored data.
func MonthlyCalendar(repo storage.Repository, userName string, year int, month time.Month) (*Calendar, error) {
	w := MonthWindow(year, month)
	activities, err := repo.ActivitiesBetween(userName, w.From, w.To)
	if err != nil {
		return nil, err
	}

	perDay := map[string]map[string]float64{}
	categorySet := map[string]bool{}
	for _, a := range activities {
		if perDay[a.Date] == nil {
			perDay[a.Date] = map[string]float64{}
		}
		perDay[a.Date][a.Category] += a.Duration()
		categorySet[a.Category] = true
	}

	categories := make([]string, 0, len(categorySet))
	for c := range categorySet {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	cal := &Calendar{Year: year, Month: month, Categories: categories}
	days := models.DaysInMonth(year, month)
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(models.DateLayout)
		row := CalendarDay{Date: date, Hours: map[string]float64{}}
		for _, c := range categories {
			row.Hours[c] = perDay[date][c]
		}
		cal.Days = append(cal.Days, row)
	}
	return cal, nil
}
