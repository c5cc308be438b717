// ABOUTME: Top-level analysis assembly for the weekly and monthly reports.
// ABOUTME: Bundles distribution, trend, breakdown, and total hours per window.
package report

import (
	"fmt"
	"time"

	"github.com/harperreed/lifetrack/internal/storage"
)

// Analysis is everything one report view needs: the proportion chart, the
// trend chart, the flat breakdown, and the window total.
type Analysis struct {
	Window     Window
	TotalHours float64
	Summary    *Summary
	Pie        *PieSeries
	Trend      *LineSeries
	Breakdown  []BreakdownRow
}

// Analyze builds the full analysis for a period anchored at ref. An empty
// window yields a valid zero-value analysis.
func Analyze(repo storage.Repository, userName string, period Period, ref time.Time) (*Analysis, error) {
	var w Window
	var title string
	switch period {
	case PeriodWeekly:
		w = WeeklyWindow(ref)
		title = "Weekly"
	case PeriodMonthly:
		w = MonthlyWindow(ref)
		title = "Monthly"
	default:
		return nil, fmt.Errorf("unknown period %q (valid: weekly, monthly)", period)
	}

	summary, err := Summarize(repo, userName, w)
	if err != nil {
		return nil, err
	}
	breakdown, err := Breakdown(repo, userName, w)
	if err != nil {
		return nil, err
	}
	trend, err := ScoreTrend(repo, userName, w)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Window:     w,
		TotalHours: summary.TotalHours,
		Summary:    summary,
		Pie:        PieFromSummary(title+" Activity Distribution", summary),
		Trend:      LineFromTrend(title+" Score Trends", trend),
		Breakdown:  breakdown,
	}, nil
}
