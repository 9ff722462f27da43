// Package patterns provides candlestick pattern detection.
package patterns

import (
	"stockscope/internal/analysis"
	"stockscope/internal/models"
)

// maxEvents caps how many detected events the detector reports.
const maxEvents = 10

// dojiBodyRatio is the body-to-range ratio below which a bar is a doji.
const dojiBodyRatio = 0.1

// CandlestickDetector classifies single-bar and two-bar candlestick
// patterns over a bar series.
type CandlestickDetector struct{}

// NewCandlestickDetector creates a new candlestick pattern detector.
func NewCandlestickDetector() *CandlestickDetector {
	return &CandlestickDetector{}
}

func (d *CandlestickDetector) Name() string {
	return "CandlestickDetector"
}

// Detect scans the series from the third bar onward and returns the last
// ten detected events in chronological order. Checks are non-exclusive: a
// single bar can contribute several events, appended in check order.
func (d *CandlestickDetector) Detect(series models.BarSeries) ([]analysis.PatternEvent, error) {
	var events []analysis.PatternEvent

	for i := 2; i < len(series); i++ {
		curr := series[i]
		prev := series[i-1]

		body := abs(curr.Close - curr.Open)
		barRange := curr.High - curr.Low
		upperShadow := curr.High - max(curr.Open, curr.Close)
		lowerShadow := min(curr.Open, curr.Close) - curr.Low

		if barRange > 0 && body/barRange < dojiBodyRatio {
			events = append(events, analysis.PatternEvent{
				Date:        curr.Date,
				Pattern:     "Doji",
				Direction:   analysis.Neutral,
				Description: "Indecision in the market",
			})
		}

		if body > 0 && lowerShadow > 2*body && upperShadow < body && curr.Close > curr.Open {
			events = append(events, analysis.PatternEvent{
				Date:        curr.Date,
				Pattern:     "Hammer",
				Direction:   analysis.Bullish,
				Description: "Potential bullish reversal",
			})
		}

		if body > 0 && upperShadow > 2*body && lowerShadow < body && curr.Close < curr.Open {
			events = append(events, analysis.PatternEvent{
				Date:        curr.Date,
				Pattern:     "Shooting Star",
				Direction:   analysis.Bearish,
				Description: "Potential bearish reversal",
			})
		}

		if curr.Close > curr.Open && prev.Close < prev.Open &&
			curr.Close > prev.Open && curr.Open < prev.Close {
			events = append(events, analysis.PatternEvent{
				Date:        curr.Date,
				Pattern:     "Bullish Engulfing",
				Direction:   analysis.Bullish,
				Description: "Strong bullish reversal signal",
			})
		}

		if curr.Close < curr.Open && prev.Close > prev.Open &&
			curr.Close < prev.Open && curr.Open > prev.Close {
			events = append(events, analysis.PatternEvent{
				Date:        curr.Date,
				Pattern:     "Bearish Engulfing",
				Direction:   analysis.Bearish,
				Description: "Strong bearish reversal signal",
			})
		}
	}

	if len(events) > maxEvents {
		events = events[len(events)-maxEvents:]
	}
	return events, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
