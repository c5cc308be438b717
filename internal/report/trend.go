// ABOUTME: Score trend assembly: one point per date with the three scores.
// ABOUTME: Both windows stay per-date; monthly is month-to-date, not per-week.
package report

import (
	"github.com/harperreed/lifetrack/internal/models"
	"github.com/harperreed/lifetrack/internal/storage"
)

// TrendPoint is one date's life/work/health scores.
type TrendPoint struct {
	Date        string
	LifeScore   float64
	WorkScore   float64
	HealthScore float64
}

// ScoreTrend returns one point per logged date in the window, ordered by
// date. Dates logged more than once are averaged. The monthly window
// deliberately keeps per-date granularity rather than bucketing by week.
func ScoreTrend(repo storage.Repository, userName string, w Window) ([]TrendPoint, error) {
	scores, err := repo.ScoresBetween(userName, w.From, w.To)
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, 0, len(scores))
	for _, s := range scores {
		points = append(points, TrendPoint{
			Date:        s.Date,
			LifeScore:   s.LifeScore,
			WorkScore:   s.WorkScore,
			HealthScore: s.HealthScore,
		})
	}
	return points, nil
}

// WeightedAverage folds a trend into one number per series using the
// user's configured score weights, for the quick-glance line.
func WeightedAverage(points []TrendPoint, settings *models.UserSettings) float64 {
	if len(points) == 0 {
		return 0
	}
	weightSum := settings.WorkWeight + settings.LifeWeight + settings.HealthWeight
	if weightSum == 0 {
		return 0
	}
	var total float64
	for _, p := range points {
		total += (p.WorkScore*settings.WorkWeight +
			p.LifeScore*settings.LifeWeight +
			p.HealthScore*settings.HealthWeight) / weightSum
	}
	return total / float64(len(points))
}
