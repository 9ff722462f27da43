package indicators

import (
	"math"
	"testing"
	"time"

	"stockscope/internal/errors"
	"stockscope/internal/models"
)

func TestClusterLevelsMergesNearby(t *testing.T) {
	got := ClusterLevels([]float64{101, 150, 100}, 0.02)

	// 100 and 101 sit within 2% of their running mean and merge; 150
	// stands alone.
	want := []float64{100.5, 150}
	if len(got) != len(want) {
		t.Fatalf("ClusterLevels returned %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("cluster[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestClusterLevelsBoundaryIsExclusive(t *testing.T) {
	// 102 is exactly 2% from 100: the strict comparison keeps them apart.
	got := ClusterLevels([]float64{100, 102}, 0.02)
	if len(got) != 2 {
		t.Fatalf("expected exact-tolerance levels to stay separate, got %v", got)
	}
}

func TestClusterLevelsEmpty(t *testing.T) {
	if got := ClusterLevels(nil, 0.02); got != nil {
		t.Errorf("expected nil for no candidates, got %v", got)
	}
}

func TestLevelFinderVShape(t *testing.T) {
	// Lows form a V with the floor at the center; highs mirror it so the
	// edges carry the local maxima.
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 21
	series := make(models.BarSeries, n)
	for i := 0; i < n; i++ {
		dist := math.Abs(float64(i - 10))
		low := 90 + dist
		series[i] = models.Bar{
			Date:   base.AddDate(0, 0, i),
			Open:   low + 1,
			High:   low + 2,
			Low:    low,
			Close:  low + 1,
			Volume: 1000,
		}
	}

	set, err := NewLevelFinder(5, 0.02).Find(series)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	if len(set.Support) != 1 || set.Support[0] != 90 {
		t.Errorf("support = %v, want [90]", set.Support)
	}
	if set.NearestSupport == nil || *set.NearestSupport != 90 {
		t.Errorf("nearest support = %v, want 90", set.NearestSupport)
	}
	// Edge highs are 102 on both sides and merge into one resistance.
	if len(set.Resistance) != 1 || set.Resistance[0] != 102 {
		t.Errorf("resistance = %v, want [102]", set.Resistance)
	}
	if set.NearestResistance == nil || *set.NearestResistance != 102 {
		t.Errorf("nearest resistance = %v, want 102", set.NearestResistance)
	}
	if set.CurrentPrice != series.Last().Close {
		t.Errorf("current price = %v, want %v", set.CurrentPrice, series.Last().Close)
	}
}

func TestLevelFinderNearestIsStrict(t *testing.T) {
	// Flat series: every bar ties as both extremum kinds, producing one
	// support at the low and one resistance at the high. The close sits
	// strictly between them.
	closes := make([]float64, 15)
	for i := range closes {
		closes[i] = 100
	}
	series := seriesFromCloses(closes...)

	set, err := NewLevelFinder(5, 0.02).Find(series)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	if set.NearestSupport == nil || *set.NearestSupport != 99 {
		t.Errorf("nearest support = %v, want 99", set.NearestSupport)
	}
	if set.NearestResistance == nil || *set.NearestResistance != 101 {
		t.Errorf("nearest resistance = %v, want 101", set.NearestResistance)
	}
}

func TestLevelFinderReportsLastFive(t *testing.T) {
	// A staircase of well-separated lows yields more clusters than the
	// report cap; only the highest five survive.
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var series models.BarSeries
	for step := 0; step < 8; step++ {
		floor := 100 + float64(step)*20
		for i := 0; i < 11; i++ {
			dist := math.Abs(float64(i - 5))
			low := floor + dist
			series = append(series, models.Bar{
				Date:   base.AddDate(0, 0, len(series)),
				Open:   low + 1,
				High:   low + 2,
				Low:    low,
				Close:  low + 1,
				Volume: 1000,
			})
		}
	}

	set, err := NewLevelFinder(5, 0.02).Find(series)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	if len(set.Support) > 5 {
		t.Errorf("support list has %d levels, cap is 5", len(set.Support))
	}
	for i := 1; i < len(set.Support); i++ {
		if set.Support[i] <= set.Support[i-1] {
			t.Errorf("support levels not ascending: %v", set.Support)
		}
	}
}

func TestLevelFinderEmptySeries(t *testing.T) {
	_, err := NewLevelFinder(5, 0.02).Find(nil)
	if !errors.Is(err, errors.ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}
