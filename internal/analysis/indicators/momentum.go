package indicators

import (
	"fmt"

	"stockscope/internal/analysis"
	"stockscope/internal/models"
)

// RSI calculates the Relative Strength Index.
type RSI struct {
	period int
}

// NewRSI creates a new RSI indicator.
func NewRSI(period int) *RSI {
	return &RSI{period: period}
}

func (r *RSI) Name() string {
	return fmt.Sprintf("RSI_%d", r.period)
}

func (r *RSI) Period() int {
	return r.period
}

// RSIResult holds per-bar RSI values and their signal classification.
type RSIResult struct {
	Values  []float64
	Signals []analysis.Signal
}

// Calculate computes RSI as 100 - 100/(1+RS), where RS is the ratio of the
// rolling simple mean of gains to the rolling simple mean of losses over
// the period. Warm-up bars are NaN. When the loss mean is zero the ratio is
// +Inf and RSI saturates to 100 through ordinary float arithmetic; a window
// with no movement at all yields 0/0 and stays NaN. Both are left to IEEE
// semantics on purpose.
func (r *RSI) Calculate(series models.BarSeries) (*RSIResult, error) {
	if r.period <= 0 {
		return nil, ErrInvalidPeriod
	}

	n := len(series)
	closes := series.Closes()

	// Bar-to-bar deltas, split into zero-filled gain and loss columns.
	// Index 0 has no prior bar and contributes zero to both.
	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	avgGain := rollingMean(gains, r.period)
	avgLoss := rollingMean(losses, r.period)

	values := make([]float64, n)
	signals := make([]analysis.Signal, n)
	for i := 0; i < n; i++ {
		rs := avgGain[i] / avgLoss[i]
		values[i] = 100 - 100/(1+rs)
		signals[i] = classifyRSI(values[i])
	}

	return &RSIResult{Values: values, Signals: signals}, nil
}

// classifyRSI maps an RSI value to its signal. NaN compares false on both
// thresholds and falls through to Neutral.
func classifyRSI(v float64) analysis.Signal {
	switch {
	case v > 70:
		return analysis.SignalOverbought
	case v < 30:
		return analysis.SignalOversold
	default:
		return analysis.SignalNeutral
	}
}
