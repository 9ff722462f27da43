package indicators

import (
	"math"
	"testing"

	"stockscope/internal/analysis"
)

func TestBollingerKnownValues(t *testing.T) {
	series := seriesFromCloses(1, 2, 3, 4, 5)

	result, err := NewBollingerBands(3, 2.0).Calculate(series)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	// Window (1,2,3): middle 2, sample stddev 1, so bands at 4 and 0.
	if math.Abs(result.Middle[2]-2) > 1e-9 {
		t.Errorf("Middle[2] = %v, want 2", result.Middle[2])
	}
	if math.Abs(result.Upper[2]-4) > 1e-9 {
		t.Errorf("Upper[2] = %v, want 4", result.Upper[2])
	}
	if math.Abs(result.Lower[2]-0) > 1e-9 {
		t.Errorf("Lower[2] = %v, want 0", result.Lower[2])
	}
	if math.Abs(result.Width[2]-4) > 1e-9 {
		t.Errorf("Width[2] = %v, want 4", result.Width[2])
	}
	if result.Signals[2] != analysis.SignalNeutral {
		t.Errorf("Signals[2] = %v, want Neutral", result.Signals[2])
	}
}

func TestBollingerWarmupIsNeutral(t *testing.T) {
	series := seriesFromCloses(10, 11, 12, 13, 14)

	result, err := NewBollingerBands(3, 2.0).Calculate(series)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if !math.IsNaN(result.Upper[i]) || !math.IsNaN(result.Lower[i]) {
			t.Errorf("expected NaN bands at warm-up index %d", i)
		}
		if result.Signals[i] != analysis.SignalNeutral {
			t.Errorf("expected Neutral signal at warm-up index %d, got %v", i, result.Signals[i])
		}
	}
}

func TestBollingerConstantSeriesTouchesBothBands(t *testing.T) {
	closes := make([]float64, 10)
	for i := range closes {
		closes[i] = 50
	}
	series := seriesFromCloses(closes...)

	result, err := NewBollingerBands(3, 2.0).Calculate(series)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	// Zero deviation collapses the bands onto the price; >= wins the
	// comparison order, so the signal reads Overbought.
	last := len(closes) - 1
	if result.Width[last] != 0 {
		t.Errorf("expected zero width on a constant series, got %v", result.Width[last])
	}
	if result.Signals[last] != analysis.SignalOverbought {
		t.Errorf("Signals[last] = %v, want Overbought", result.Signals[last])
	}
}

func TestBollingerOversoldOnCrash(t *testing.T) {
	closes := []float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 60}
	series := seriesFromCloses(closes...)

	// A single outlier can deviate at most (n-1)/sqrt(n) sample standard
	// deviations from a mean that includes it, so a 2.0 multiplier can
	// never flag it within a 5-bar window; 1.5 can.
	result, err := NewBollingerBands(5, 1.5).Calculate(series)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	last := len(closes) - 1
	if result.Signals[last] != analysis.SignalOversold {
		t.Errorf("Signals[last] = %v, want Oversold", result.Signals[last])
	}
}

func TestSampleStdDev(t *testing.T) {
	if got := sampleStdDev([]float64{1, 2, 3}); math.Abs(got-1) > 1e-9 {
		t.Errorf("sampleStdDev(1,2,3) = %v, want 1", got)
	}
	if got := sampleStdDev([]float64{5}); !math.IsNaN(got) {
		t.Errorf("sampleStdDev of one value = %v, want NaN", got)
	}
}
