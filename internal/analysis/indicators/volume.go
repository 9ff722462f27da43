package indicators

import (
	"fmt"

	"stockscope/internal/analysis"
	"stockscope/internal/errors"
	"stockscope/internal/models"
)

// spikeLookback is the window over which recent volume spikes are counted.
const spikeLookback = 10

// VolumeAnalyzer computes the rolling volume average, spike flags,
// On-Balance Volume, and the recent-versus-prior volume trend.
type VolumeAnalyzer struct {
	period     int
	spikeRatio float64
}

// NewVolumeAnalyzer creates a volume analyzer. A bar is flagged as a spike
// when its volume exceeds spikeRatio times the rolling mean.
func NewVolumeAnalyzer(period int, spikeRatio float64) *VolumeAnalyzer {
	return &VolumeAnalyzer{period: period, spikeRatio: spikeRatio}
}

func (v *VolumeAnalyzer) Name() string {
	return fmt.Sprintf("Volume_%d", v.period)
}

func (v *VolumeAnalyzer) Period() int {
	return v.period
}

// VolumeResult holds the per-bar volume columns plus the latest summary.
type VolumeResult struct {
	MA      []float64
	Spikes  []bool
	OBV     []float64
	Summary analysis.VolumeSummary
}

// Calculate computes the volume columns. OBV accumulates from zero: volume
// is added on a rising close, subtracted on a falling one, and carried
// unchanged otherwise. The trend compares the mean of the most recent
// period bars against the mean of the period bars before them; an
// undefined prior window compares false and reports Decreasing.
func (v *VolumeAnalyzer) Calculate(series models.BarSeries) (*VolumeResult, error) {
	if v.period <= 0 || v.spikeRatio <= 0 {
		return nil, ErrInvalidPeriod
	}
	if len(series) == 0 {
		return nil, errors.NewInsufficientDataError(v.Name(), 1, 0)
	}

	n := len(series)
	vols := series.Volumes()
	closes := series.Closes()

	ma := rollingMean(vols, v.period)

	spikes := make([]bool, n)
	for i := 0; i < n; i++ {
		// NaN rolling mean compares false: no spikes during warm-up.
		spikes[i] = vols[i] > v.spikeRatio*ma[i]
	}

	obv := make([]float64, n)
	for i := 1; i < n; i++ {
		switch {
		case closes[i] > closes[i-1]:
			obv[i] = obv[i-1] + vols[i]
		case closes[i] < closes[i-1]:
			obv[i] = obv[i-1] - vols[i]
		default:
			obv[i] = obv[i-1]
		}
	}

	recentLo := n - v.period
	if recentLo < 0 {
		recentLo = 0
	}
	recent := mean(vols[recentLo:])

	olderLo := n - 2*v.period
	if olderLo < 0 {
		olderLo = 0
	}
	olderHi := n - v.period
	older := mean(sliceOrEmpty(vols, olderLo, olderHi))

	trend := analysis.VolumeDecreasing
	if recent > older {
		trend = analysis.VolumeIncreasing
	}

	spikeLo := n - spikeLookback
	if spikeLo < 0 {
		spikeLo = 0
	}
	recentSpikes := 0
	for _, s := range spikes[spikeLo:] {
		if s {
			recentSpikes++
		}
	}

	summary := analysis.VolumeSummary{
		CurrentVolume: series.Last().Volume,
		AvgVolume:     ma[n-1],
		Trend:         trend,
		OBV:           obv[n-1],
		RecentSpikes:  recentSpikes,
	}

	return &VolumeResult{
		MA:      ma,
		Spikes:  spikes,
		OBV:     obv,
		Summary: summary,
	}, nil
}

// sliceOrEmpty slices values[lo:hi], returning an empty slice when the
// bounds cross.
func sliceOrEmpty(values []float64, lo, hi int) []float64 {
	if hi <= lo {
		return nil
	}
	return values[lo:hi]
}
