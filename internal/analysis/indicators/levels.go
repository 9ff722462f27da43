package indicators

import (
	"sort"

	"stockscope/internal/analysis"
	"stockscope/internal/errors"
	"stockscope/internal/models"
)

// maxReportedLevels caps how many clustered levels each side reports.
const maxReportedLevels = 5

// LevelFinder extracts support and resistance levels from local extrema.
type LevelFinder struct {
	order     int
	tolerance float64
}

// NewLevelFinder creates a level finder. order is the number of bars on
// each side a candidate extremum must dominate; tolerance is the relative
// distance within which neighbouring levels merge into one cluster.
func NewLevelFinder(order int, tolerance float64) *LevelFinder {
	return &LevelFinder{order: order, tolerance: tolerance}
}

func (f *LevelFinder) Name() string {
	return "LevelFinder"
}

func (f *LevelFinder) Period() int {
	return 2*f.order + 1
}

// Find scans Lows for local minima (candidate support) and Highs for local
// maxima (candidate resistance), clusters each side, and locates the
// nearest level on either side of the last close. The nearest search runs
// over the full clustered set; the reported lists keep only the last
// (highest) five per side.
func (f *LevelFinder) Find(series models.BarSeries) (*analysis.LevelSet, error) {
	if f.order <= 0 || f.tolerance <= 0 {
		return nil, ErrInvalidPeriod
	}
	if len(series) == 0 {
		return nil, errors.NewInsufficientDataError(f.Name(), 1, 0)
	}

	lows := series.Lows()
	highs := series.Highs()

	var supportCandidates, resistanceCandidates []float64
	for i := range series {
		if isLocalExtremum(lows, i, f.order, false) {
			supportCandidates = append(supportCandidates, lows[i])
		}
		if isLocalExtremum(highs, i, f.order, true) {
			resistanceCandidates = append(resistanceCandidates, highs[i])
		}
	}

	support := ClusterLevels(supportCandidates, f.tolerance)
	resistance := ClusterLevels(resistanceCandidates, f.tolerance)

	currentPrice := series.Last().Close

	set := &analysis.LevelSet{
		Support:           lastN(support, maxReportedLevels),
		Resistance:        lastN(resistance, maxReportedLevels),
		NearestSupport:    nearestBelow(support, currentPrice),
		NearestResistance: nearestAbove(resistance, currentPrice),
		CurrentPrice:      currentPrice,
	}
	return set, nil
}

// isLocalExtremum reports whether values[i] dominates every value within
// order bars on both sides, with the window clamped at the series edges.
// Ties count.
func isLocalExtremum(values []float64, i, order int, maximum bool) bool {
	lo := i - order
	if lo < 0 {
		lo = 0
	}
	hi := i + order
	if hi > len(values)-1 {
		hi = len(values) - 1
	}
	for j := lo; j <= hi; j++ {
		if maximum {
			if values[i] < values[j] {
				return false
			}
		} else {
			if values[i] > values[j] {
				return false
			}
		}
	}
	return true
}

// ClusterLevels merges nearby price levels. Candidates are sorted ascending
// and greedily grouped: a level joins the open cluster while its relative
// distance from the running cluster mean stays under tolerance; otherwise
// the cluster closes and is replaced by its mean. The result is ascending.
func ClusterLevels(levels []float64, tolerance float64) []float64 {
	if len(levels) == 0 {
		return nil
	}

	sorted := make([]float64, len(levels))
	copy(sorted, levels)
	sort.Float64s(sorted)

	var clusters []float64
	current := []float64{sorted[0]}

	for _, level := range sorted[1:] {
		m := mean(current)
		if abs(level-m)/m < tolerance {
			current = append(current, level)
		} else {
			clusters = append(clusters, mean(current))
			current = []float64{level}
		}
	}
	clusters = append(clusters, mean(current))

	return clusters
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// lastN returns the trailing n elements of an ascending level list.
func lastN(levels []float64, n int) []float64 {
	if len(levels) <= n {
		return levels
	}
	return levels[len(levels)-n:]
}

// nearestBelow returns the highest level strictly below price, or nil.
func nearestBelow(levels []float64, price float64) *float64 {
	var nearest *float64
	for i, level := range levels {
		if level < price && (nearest == nil || level > *nearest) {
			nearest = &levels[i]
		}
	}
	return nearest
}

// nearestAbove returns the lowest level strictly above price, or nil.
func nearestAbove(levels []float64, price float64) *float64 {
	var nearest *float64
	for i, level := range levels {
		if level > price && (nearest == nil || level < *nearest) {
			nearest = &levels[i]
		}
	}
	return nearest
}
