package indicators

import (
	"time"

	"stockscope/internal/models"
)

// seriesFromCloses builds a daily series where every bar's open, high, and
// low track the close, which keeps close-only indicators easy to reason
// about.
func seriesFromCloses(closes ...float64) models.BarSeries {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make(models.BarSeries, len(closes))
	for i, c := range closes {
		series[i] = models.Bar{
			Date:   base.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return series
}

// rampSeries builds a series of n closes starting at start and stepping by
// step per bar.
func rampSeries(n int, start, step float64) models.BarSeries {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start + float64(i)*step
	}
	return seriesFromCloses(closes...)
}
