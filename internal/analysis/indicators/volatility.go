package indicators

import (
	"fmt"

	"stockscope/internal/analysis"
	"stockscope/internal/models"
)

// BollingerBands calculates Bollinger Bands over closes.
type BollingerBands struct {
	period    int
	stdDevMul float64
}

// NewBollingerBands creates a new Bollinger Bands indicator.
func NewBollingerBands(period int, stdDevMul float64) *BollingerBands {
	return &BollingerBands{
		period:    period,
		stdDevMul: stdDevMul,
	}
}

func (b *BollingerBands) Name() string {
	return fmt.Sprintf("BollingerBands_%d_%.1f", b.period, b.stdDevMul)
}

func (b *BollingerBands) Period() int {
	return b.period
}

// BollingerResult holds the per-bar band columns and signal classification.
type BollingerResult struct {
	Upper   []float64
	Middle  []float64
	Lower   []float64
	Width   []float64
	Signals []analysis.Signal
}

// Calculate computes the middle band as SMA(period) of closes and the outer
// bands at stdDevMul rolling sample standard deviations. Warm-up bars are
// NaN and classify Neutral. Width is the raw upper-lower distance.
func (b *BollingerBands) Calculate(series models.BarSeries) (*BollingerResult, error) {
	if b.period <= 0 || b.stdDevMul <= 0 {
		return nil, ErrInvalidPeriod
	}

	n := len(series)
	closes := series.Closes()

	middle := rollingMean(closes, b.period)
	sd := rollingStdDev(closes, b.period)

	upper := make([]float64, n)
	lower := make([]float64, n)
	width := make([]float64, n)
	signals := make([]analysis.Signal, n)

	for i := 0; i < n; i++ {
		upper[i] = middle[i] + b.stdDevMul*sd[i]
		lower[i] = middle[i] - b.stdDevMul*sd[i]
		width[i] = upper[i] - lower[i]
		signals[i] = classifyBollinger(closes[i], upper[i], lower[i])
	}

	return &BollingerResult{
		Upper:   upper,
		Middle:  middle,
		Lower:   lower,
		Width:   width,
		Signals: signals,
	}, nil
}

// classifyBollinger maps a close against its bands. NaN bands compare false
// and fall through to Neutral.
func classifyBollinger(close, upper, lower float64) analysis.Signal {
	switch {
	case close >= upper:
		return analysis.SignalOverbought
	case close <= lower:
		return analysis.SignalOversold
	default:
		return analysis.SignalNeutral
	}
}
