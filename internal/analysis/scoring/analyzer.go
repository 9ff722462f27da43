// Package scoring fuses indicator outputs into a composite analysis result
// and trading recommendation.
package scoring

import (
	"context"
	"math"
	"sync"

	"stockscope/internal/analysis"
	"stockscope/internal/analysis/indicators"
	"stockscope/internal/analysis/patterns"
	"stockscope/internal/errors"
	"stockscope/internal/models"
)

// Params holds the tunable windows and thresholds of the analysis engine.
type Params struct {
	RSIPeriod        int
	MACDFast         int
	MACDSlow         int
	MACDSignal       int
	BBPeriod         int
	BBStdDev         float64
	LevelOrder       int
	LevelTolerance   float64
	VolumePeriod     int
	VolumeSpikeRatio float64
	TrendFastPeriod  int
	TrendSlowPeriod  int
	MinBars          int
}

// DefaultParams returns the standard parameter set: RSI(14), MACD(12,26,9),
// Bollinger(20, 2), extrema order 5 with 2% cluster tolerance, 20-bar
// volume window with 2x spike ratio, SMA20/SMA50 trend, 60-bar floor.
func DefaultParams() Params {
	return Params{
		RSIPeriod:        14,
		MACDFast:         12,
		MACDSlow:         26,
		MACDSignal:       9,
		BBPeriod:         20,
		BBStdDev:         2.0,
		LevelOrder:       5,
		LevelTolerance:   0.02,
		VolumePeriod:     20,
		VolumeSpikeRatio: 2.0,
		TrendFastPeriod:  20,
		TrendSlowPeriod:  50,
		MinBars:          60,
	}
}

// Validate checks that every window and threshold is usable.
func (p Params) Validate() error {
	if p.RSIPeriod <= 0 || p.MACDFast <= 0 || p.MACDSlow <= 0 || p.MACDSignal <= 0 ||
		p.BBPeriod <= 0 || p.LevelOrder <= 0 || p.VolumePeriod <= 0 ||
		p.TrendFastPeriod <= 0 || p.TrendSlowPeriod <= 0 {
		return errors.ErrInvalidPeriod
	}
	if p.BBStdDev <= 0 || p.LevelTolerance <= 0 || p.VolumeSpikeRatio <= 0 {
		return errors.Wrap(errors.ErrConfigInvalid, "multipliers and tolerances must be positive")
	}
	if p.MinBars < 1 {
		return errors.Wrap(errors.ErrConfigInvalid, "min_bars must be at least 1")
	}
	return nil
}

// Analyzer runs the full technical analysis over one bar series. It holds
// no per-invocation state and is safe for concurrent use.
type Analyzer struct {
	params Params
}

// NewAnalyzer creates an analyzer with the given parameters.
func NewAnalyzer(params Params) (*Analyzer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{params: params}, nil
}

// NewDefaultAnalyzer creates an analyzer with DefaultParams.
func NewDefaultAnalyzer() *Analyzer {
	return &Analyzer{params: DefaultParams()}
}

// Params returns the analyzer's parameter set.
func (a *Analyzer) Params() Params {
	return a.params
}

// Analyze validates the series and computes the composite result.
// See AnalyzeFrame for details.
func (a *Analyzer) Analyze(ctx context.Context, series models.BarSeries) (*analysis.Result, error) {
	result, _, err := a.AnalyzeFrame(ctx, series)
	return result, err
}

// AnalyzeFrame validates the series, runs the five analysis modules
// (momentum, volatility, levels, volume, patterns) in parallel, and fuses
// their outputs into a Result once all have joined. It also returns the
// per-bar indicator frame for callers that render the full table. The
// computation is pure: the same series always yields an identical result.
func (a *Analyzer) AnalyzeFrame(ctx context.Context, series models.BarSeries) (*analysis.Result, *indicators.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if err := series.Validate(); err != nil {
		return nil, nil, err
	}
	if len(series) < a.params.MinBars {
		return nil, nil, errors.NewInsufficientDataError("analysis", a.params.MinBars, len(series))
	}

	var (
		wg sync.WaitGroup

		rsiRes    *indicators.RSIResult
		macdRes   *indicators.MACDResult
		bbRes     *indicators.BollingerResult
		levelSet  *analysis.LevelSet
		volRes    *indicators.VolumeResult
		patEvents []analysis.PatternEvent

		errs [5]error
	)

	// The five modules are independent; the recommendation below is the
	// join barrier.
	wg.Add(5)
	go func() {
		defer wg.Done()
		rsiRes, errs[0] = indicators.NewRSI(a.params.RSIPeriod).Calculate(series)
		if errs[0] != nil {
			return
		}
		macdRes, errs[0] = indicators.NewMACD(a.params.MACDFast, a.params.MACDSlow, a.params.MACDSignal).Calculate(series)
	}()
	go func() {
		defer wg.Done()
		bbRes, errs[1] = indicators.NewBollingerBands(a.params.BBPeriod, a.params.BBStdDev).Calculate(series)
	}()
	go func() {
		defer wg.Done()
		levelSet, errs[2] = indicators.NewLevelFinder(a.params.LevelOrder, a.params.LevelTolerance).Find(series)
	}()
	go func() {
		defer wg.Done()
		volRes, errs[3] = indicators.NewVolumeAnalyzer(a.params.VolumePeriod, a.params.VolumeSpikeRatio).Calculate(series)
	}()
	go func() {
		defer wg.Done()
		patEvents, errs[4] = patterns.NewCandlestickDetector().Detect(series)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}

	frame := indicators.NewFrame(series)
	frame.SetRSI(rsiRes)
	frame.SetMACD(macdRes)
	frame.SetBollinger(bbRes)
	frame.SetVolume(volRes)

	sma20, err := indicators.NewSMA(a.params.TrendFastPeriod).Calculate(series)
	if err != nil {
		return nil, nil, err
	}
	sma50, err := indicators.NewSMA(a.params.TrendSlowPeriod).Calculate(series)
	if err != nil {
		return nil, nil, err
	}
	frame.SMA20 = sma20
	frame.SMA50 = sma50

	last := len(series) - 1
	currentPrice := series.Last().Close
	trend := TrendLabel(currentPrice, sma20[last], sma50[last])

	rsiValue := rsiRes.Values[last]
	reportedRSI := rsiValue
	if math.IsNaN(reportedRSI) {
		// Undefined RSI is reported as zero; the interpretation still
		// says "Insufficient data".
		reportedRSI = 0
	}

	result := &analysis.Result{
		CurrentPrice: currentPrice,
		Trend:        trend,
		RSI: analysis.RSISummary{
			Value:          reportedRSI,
			Signal:         rsiRes.Signals[last],
			Interpretation: InterpretRSI(rsiValue),
		},
		MACD: analysis.MACDSummary{
			Line:           macdRes.Line[last],
			Signal:         macdRes.Signal[last],
			Histogram:      macdRes.Histogram[last],
			Cross:          macdRes.Cross[last],
			Interpretation: InterpretMACD(macdRes.Histogram[last]),
		},
		Bollinger: analysis.BollingerSummary{
			Upper:          bbRes.Upper[last],
			Middle:         bbRes.Middle[last],
			Lower:          bbRes.Lower[last],
			Width:          bbRes.Width[last],
			Signal:         bbRes.Signals[last],
			Interpretation: InterpretBollinger(currentPrice, bbRes.Upper[last], bbRes.Lower[last]),
		},
		Levels:   *levelSet,
		Volume:   volRes.Summary,
		Patterns: patEvents,
		SMA20:    sma20[last],
		SMA50:    sma50[last],
	}

	result.Recommendation = Recommend(Inputs{
		RSISignal:   result.RSI.Signal,
		MACDCross:   result.MACD.Cross,
		BBSignal:    result.Bollinger.Signal,
		Trend:       result.Trend,
		VolumeTrend: result.Volume.Trend,
	})

	return result, frame, nil
}
