// ABOUTME: Reporting windows: trailing-7-day and calendar-month date ranges.
// ABOUTME: Windows scope every aggregation query as inclusive ISO date bounds.
package report

import (
	"time"

	"github.com/harperreed/lifetrack/internal/models"
)

// Period names the supported reporting windows.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Window is an inclusive date range used to scope aggregation.
type Window struct {
	Period Period
	From   string // YYYY-MM-DD
	To     string // YYYY-MM-DD
}

// WeeklyWindow returns the trailing-7-day window ending at ref.
func WeeklyWindow(ref time.Time) Window {
	return Window{
		Period: PeriodWeekly,
		From:   ref.AddDate(0, 0, -7).Format(models.DateLayout),
		To:     ref.Format(models.DateLayout),
	}
}

// MonthlyWindow returns the calendar-month window containing ref, from the
// first of the month through its last day.
func MonthlyWindow(ref time.Time) Window {
	return MonthWindow(ref.Year(), ref.Month())
}

// MonthWindow returns the calendar window for an explicit year and month.
func MonthWindow(year int, month time.Month) Window {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month, models.DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	return Window{
		Period: PeriodMonthly,
		From:   first.Format(models.DateLayout),
		To:     last.Format(models.DateLayout),
	}
}
