package indicators

import (
	"math"

	"stockscope/internal/errors"
)

var (
	// ErrInvalidPeriod is returned when an indicator period is invalid.
	ErrInvalidPeriod = errors.ErrInvalidPeriod
)

// sum calculates the sum of a slice of float64.
func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// mean calculates the arithmetic mean of a slice of float64.
// An empty slice yields NaN, matching the undefined-value convention.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return sum(values) / float64(len(values))
}

// sampleStdDev calculates the sample standard deviation (ddof=1).
// Fewer than two values yields NaN.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	m := mean(values)
	var variance float64
	for _, v := range values {
		diff := v - m
		variance += diff * diff
	}
	variance /= float64(len(values) - 1)
	return math.Sqrt(variance)
}

// nanSlice returns a slice of n NaN values. Rolling computations fill in
// defined values from their warm-up index onward.
func nanSlice(n int) []float64 {
	s := make([]float64, n)
	nan := math.NaN()
	for i := range s {
		s[i] = nan
	}
	return s
}

// rollingMean computes a trailing simple moving average over the given
// window. The first period-1 entries are NaN.
func rollingMean(values []float64, period int) []float64 {
	result := nanSlice(len(values))
	for i := period - 1; i < len(values); i++ {
		result[i] = mean(values[i-period+1 : i+1])
	}
	return result
}

// rollingStdDev computes a trailing sample standard deviation over the
// given window. The first period-1 entries are NaN.
func rollingStdDev(values []float64, period int) []float64 {
	result := nanSlice(len(values))
	for i := period - 1; i < len(values); i++ {
		result[i] = sampleStdDev(values[i-period+1 : i+1])
	}
	return result
}

// CalculateEMA computes an exponential moving average with smoothing factor
// 2/(span+1), seeded with the first value rather than an initial simple
// average. Every entry is defined.
func CalculateEMA(values []float64, span int) []float64 {
	if len(values) == 0 || span <= 0 {
		return nil
	}
	result := make([]float64, len(values))
	alpha := 2.0 / float64(span+1)
	result[0] = values[0]
	for i := 1; i < len(values); i++ {
		result[i] = alpha*values[i] + (1-alpha)*result[i-1]
	}
	return result
}
