package indicators

import (
	"math"
	"testing"

	"stockscope/internal/analysis"
	"stockscope/internal/errors"
)

func TestSMAKnownValues(t *testing.T) {
	series := seriesFromCloses(1, 2, 3, 4, 5)

	values, err := NewSMA(3).Calculate(series)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if !math.IsNaN(values[0]) || !math.IsNaN(values[1]) {
		t.Errorf("expected NaN warm-up, got %v", values[:2])
	}
	want := []float64{2, 3, 4}
	for i, w := range want {
		if got := values[i+2]; math.Abs(got-w) > 1e-9 {
			t.Errorf("SMA[%d] = %v, want %v", i+2, got, w)
		}
	}
}

func TestEMAConstantSeries(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 42
	}
	series := seriesFromCloses(closes...)

	values, err := NewEMA(9).Calculate(series)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	for i, v := range values {
		if v != 42 {
			t.Errorf("EMA[%d] = %v, want 42", i, v)
		}
	}
}

func TestEMASeededWithFirstValue(t *testing.T) {
	series := seriesFromCloses(10, 20)

	values, err := NewEMA(3).Calculate(series)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if values[0] != 10 {
		t.Errorf("EMA[0] = %v, want the first close", values[0])
	}
	// alpha = 2/(3+1) = 0.5
	if math.Abs(values[1]-15) > 1e-9 {
		t.Errorf("EMA[1] = %v, want 15", values[1])
	}
}

func TestMACDConstantSeries(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100
	}
	series := seriesFromCloses(closes...)

	result, err := NewMACD(12, 26, 9).Calculate(series)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	for i := range result.Line {
		if result.Line[i] != 0 || result.Signal[i] != 0 || result.Histogram[i] != 0 {
			t.Fatalf("expected zero MACD columns at %d, got line=%v signal=%v hist=%v",
				i, result.Line[i], result.Signal[i], result.Histogram[i])
		}
		if result.Cross[i] != analysis.CrossHold {
			t.Fatalf("expected Hold at %d, got %v", i, result.Cross[i])
		}
	}
}

func TestMACDRisingSeriesNeverSells(t *testing.T) {
	series := rampSeries(60, 100, 2)

	result, err := NewMACD(12, 26, 9).Calculate(series)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	for i, c := range result.Cross {
		if c == analysis.CrossSell {
			t.Errorf("unexpected Sell at bar %d on a rising series", i)
		}
	}
	if result.Histogram[len(result.Histogram)-1] <= 0 {
		t.Errorf("expected positive histogram on a sustained rise, got %v",
			result.Histogram[len(result.Histogram)-1])
	}
}

func TestMACDReversalProducesSell(t *testing.T) {
	closes := make([]float64, 60)
	for i := 0; i < 30; i++ {
		closes[i] = 100 + float64(i)*5
	}
	for i := 30; i < 60; i++ {
		closes[i] = closes[29] - float64(i-29)*5
	}
	series := seriesFromCloses(closes...)

	result, err := NewMACD(12, 26, 9).Calculate(series)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	sold := false
	for _, c := range result.Cross[30:] {
		if c == analysis.CrossSell {
			sold = true
			break
		}
	}
	if !sold {
		t.Error("expected a Sell crossover after the reversal")
	}
	if result.Histogram[len(result.Histogram)-1] >= 0 {
		t.Errorf("expected negative histogram after a sustained fall, got %v",
			result.Histogram[len(result.Histogram)-1])
	}
}

func TestMACDCrossPairConsistency(t *testing.T) {
	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 100 + 20*math.Sin(float64(i)/6)
	}
	series := seriesFromCloses(closes...)

	result, err := NewMACD(12, 26, 9).Calculate(series)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if result.Cross[0] != analysis.CrossHold {
		t.Errorf("cross[0] = %v, want Hold", result.Cross[0])
	}
	for i := 1; i < len(result.Cross); i++ {
		line, sig := result.Line[i], result.Signal[i]
		prevLine, prevSig := result.Line[i-1], result.Signal[i-1]
		switch result.Cross[i] {
		case analysis.CrossBuy:
			if !(line > sig && prevLine <= prevSig) {
				t.Errorf("Buy at %d without an upward crossover", i)
			}
		case analysis.CrossSell:
			if !(line < sig && prevLine >= prevSig) {
				t.Errorf("Sell at %d without a downward crossover", i)
			}
		}
	}
}

func TestMACDInvalidSpans(t *testing.T) {
	series := rampSeries(40, 100, 1)
	if _, err := NewMACD(0, 26, 9).Calculate(series); !errors.Is(err, errors.ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
}
