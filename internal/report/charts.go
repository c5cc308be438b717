// ABOUTME: Report builder: shapes aggregated results into chart-ready series.
// ABOUTME: Both chart types tolerate empty input and render empty-but-valid.
package report

// PieSeries is a proportion chart: parallel label and value slices.
type PieSeries struct {
	Title  string
	Labels []string
	Values []float64 // percentages
}

// LineSeries is a trend chart: dates on the x-axis, named score series.
type LineSeries struct {
	Title  string
	Dates  []string
	Series map[string][]float64
}

// Score series names used by trend charts.
const (
	SeriesLife   = "Life Score"
	SeriesWork   = "Work Score"
	SeriesHealth = "Health Score"
)

// PieFromSummary shapes a category summary into a proportion chart.
func PieFromSummary(title string, s *Summary) *PieSeries {
	pie := &PieSeries{
		Title:  title,
		Labels: []string{},
		Values: []float64{},
	}
	if s == nil {
		return pie
	}
	for _, share := range s.Shares {
		pie.Labels = append(pie.Labels, share.Category)
		pie.Values = append(pie.Values, share.Percent)
	}
	return pie
}

// LineFromTrend shapes trend points into a three-series line chart.
func LineFromTrend(title string, points []TrendPoint) *LineSeries {
	line := &LineSeries{
		Title: title,
		Dates: []string{},
		Series: map[string][]float64{
			SeriesLife:   {},
			SeriesWork:   {},
			SeriesHealth: {},
		},
	}
	for _, p := range points {
		line.Dates = append(line.Dates, p.Date)
		line.Series[SeriesLife] = append(line.Series[SeriesLife], p.LifeScore)
		line.Series[SeriesWork] = append(line.Series[SeriesWork], p.WorkScore)
		line.Series[SeriesHealth] = append(line.Series[SeriesHealth], p.HealthScore)
	}
	return line
}
