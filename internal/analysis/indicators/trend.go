package indicators

import (
	"fmt"

	"stockscope/internal/analysis"
	"stockscope/internal/models"
)

// SMA calculates Simple Moving Average of closes.
type SMA struct {
	period int
}

// NewSMA creates a new SMA indicator.
func NewSMA(period int) *SMA {
	return &SMA{period: period}
}

func (s *SMA) Name() string {
	return fmt.Sprintf("SMA_%d", s.period)
}

func (s *SMA) Period() int {
	return s.period
}

// Calculate returns the rolling mean of closes. The first period-1 entries
// are NaN.
func (s *SMA) Calculate(series models.BarSeries) ([]float64, error) {
	if s.period <= 0 {
		return nil, ErrInvalidPeriod
	}
	return rollingMean(series.Closes(), s.period), nil
}

// EMA calculates Exponential Moving Average of closes, seeded with the
// first close (no initial-average seeding).
type EMA struct {
	span int
}

// NewEMA creates a new EMA indicator.
func NewEMA(span int) *EMA {
	return &EMA{span: span}
}

func (e *EMA) Name() string {
	return fmt.Sprintf("EMA_%d", e.span)
}

func (e *EMA) Period() int {
	return e.span
}

func (e *EMA) Calculate(series models.BarSeries) ([]float64, error) {
	if e.span <= 0 {
		return nil, ErrInvalidPeriod
	}
	return CalculateEMA(series.Closes(), e.span), nil
}

// MACD calculates Moving Average Convergence Divergence.
type MACD struct {
	fastSpan   int
	slowSpan   int
	signalSpan int
}

// NewMACD creates a new MACD indicator with the given spans
// (defaults elsewhere are 12, 26, 9).
func NewMACD(fast, slow, signal int) *MACD {
	return &MACD{
		fastSpan:   fast,
		slowSpan:   slow,
		signalSpan: signal,
	}
}

func (m *MACD) Name() string {
	return fmt.Sprintf("MACD_%d_%d_%d", m.fastSpan, m.slowSpan, m.signalSpan)
}

func (m *MACD) Period() int {
	return m.slowSpan + m.signalSpan - 1
}

// MACDResult holds the per-bar MACD columns and the crossover signal.
type MACDResult struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
	Cross     []analysis.CrossSignal
}

// Calculate computes the MACD line as fast EMA minus slow EMA, the signal
// line as an EMA of the MACD line, and the histogram as their difference.
// With first-value-seeded EMAs every bar is defined. Crossovers compare
// each consecutive bar pair in isolation.
func (m *MACD) Calculate(series models.BarSeries) (*MACDResult, error) {
	if m.fastSpan <= 0 || m.slowSpan <= 0 || m.signalSpan <= 0 {
		return nil, ErrInvalidPeriod
	}

	n := len(series)
	closes := series.Closes()

	fastEMA := CalculateEMA(closes, m.fastSpan)
	slowEMA := CalculateEMA(closes, m.slowSpan)

	line := make([]float64, n)
	for i := 0; i < n; i++ {
		line[i] = fastEMA[i] - slowEMA[i]
	}

	signal := CalculateEMA(line, m.signalSpan)

	histogram := make([]float64, n)
	for i := 0; i < n; i++ {
		histogram[i] = line[i] - signal[i]
	}

	cross := make([]analysis.CrossSignal, n)
	if n > 0 {
		cross[0] = analysis.CrossHold
	}
	for i := 1; i < n; i++ {
		switch {
		case line[i] > signal[i] && line[i-1] <= signal[i-1]:
			cross[i] = analysis.CrossBuy
		case line[i] < signal[i] && line[i-1] >= signal[i-1]:
			cross[i] = analysis.CrossSell
		default:
			cross[i] = analysis.CrossHold
		}
	}

	return &MACDResult{
		Line:      line,
		Signal:    signal,
		Histogram: histogram,
		Cross:     cross,
	}, nil
}
