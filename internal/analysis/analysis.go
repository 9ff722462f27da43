// Package analysis provides the shared result types for technical analysis:
// indicator summaries, price levels, pattern events, and the composite
// recommendation.
package analysis

import (
	"time"
)

// Signal classifies a bar relative to an oscillator or band threshold.
type Signal string

const (
	SignalOverbought Signal = "Overbought"
	SignalOversold   Signal = "Oversold"
	SignalNeutral    Signal = "Neutral"
)

// CrossSignal classifies a MACD/signal-line crossover at a single bar.
type CrossSignal string

const (
	CrossBuy  CrossSignal = "Buy"
	CrossSell CrossSignal = "Sell"
	CrossHold CrossSignal = "Hold"
)

// Direction is the expected price direction implied by a pattern.
type Direction string

const (
	Bullish Direction = "Bullish"
	Bearish Direction = "Bearish"
	Neutral Direction = "Neutral"
)

// Trend labels the relationship between the current price and its moving
// averages.
type Trend string

const (
	TrendStrongUptrend   Trend = "Strong Uptrend"
	TrendUptrend         Trend = "Uptrend"
	TrendSideways        Trend = "Sideways"
	TrendDowntrend       Trend = "Downtrend"
	TrendStrongDowntrend Trend = "Strong Downtrend"
)

// Bullish reports whether the trend label is one of the uptrend variants.
func (t Trend) Bullish() bool {
	return t == TrendUptrend || t == TrendStrongUptrend
}

// Bearish reports whether the trend label is one of the downtrend variants.
func (t Trend) Bearish() bool {
	return t == TrendDowntrend || t == TrendStrongDowntrend
}

// VolumeTrend compares recent volume against the preceding window.
type VolumeTrend string

const (
	VolumeIncreasing VolumeTrend = "Increasing"
	VolumeDecreasing VolumeTrend = "Decreasing"
)

// Action is the recommended trading action.
type Action string

const (
	ActionStrongBuy  Action = "Strong Buy"
	ActionBuy        Action = "Buy"
	ActionHold       Action = "Hold"
	ActionSell       Action = "Sell"
	ActionStrongSell Action = "Strong Sell"
)

// PatternEvent is a candlestick pattern detected at a specific bar.
type PatternEvent struct {
	Date        time.Time `json:"date"`
	Pattern     string    `json:"pattern"`
	Direction   Direction `json:"type"`
	Description string    `json:"description"`
}

// LevelSet holds clustered support and resistance levels, sorted ascending,
// plus the nearest level on each side of the current price. Nearest values
// are nil when no level exists strictly below (or above) the price.
type LevelSet struct {
	Support           []float64 `json:"support_levels"`
	Resistance        []float64 `json:"resistance_levels"`
	NearestSupport    *float64  `json:"nearest_support"`
	NearestResistance *float64  `json:"nearest_resistance"`
	CurrentPrice      float64   `json:"current_price"`
}

// VolumeSummary aggregates the volume analysis for the latest bar.
type VolumeSummary struct {
	CurrentVolume int64       `json:"current_volume"`
	AvgVolume     float64     `json:"avg_volume"`
	Trend         VolumeTrend `json:"volume_trend"`
	OBV           float64     `json:"obv"`
	RecentSpikes  int         `json:"recent_spikes"`
}

// RSISummary is the latest RSI reading with its classification.
type RSISummary struct {
	Value          float64 `json:"value"`
	Signal         Signal  `json:"signal"`
	Interpretation string  `json:"interpretation"`
}

// MACDSummary is the latest MACD reading with its crossover state.
type MACDSummary struct {
	Line           float64     `json:"macd_line"`
	Signal         float64     `json:"signal_line"`
	Histogram      float64     `json:"histogram"`
	Cross          CrossSignal `json:"signal"`
	Interpretation string      `json:"interpretation"`
}

// BollingerSummary is the latest Bollinger Band reading.
type BollingerSummary struct {
	Upper          float64 `json:"upper"`
	Middle         float64 `json:"middle"`
	Lower          float64 `json:"lower"`
	Width          float64 `json:"width"`
	Signal         Signal  `json:"signal"`
	Interpretation string  `json:"interpretation"`
}

// Recommendation is the fused trading recommendation.
type Recommendation struct {
	Action     Action `json:"action"`
	Confidence int    `json:"confidence"`
	Reason     string `json:"reason"`
}

// Result aggregates every analysis output for one bar series.
type Result struct {
	Symbol         string           `json:"symbol,omitempty"`
	CurrentPrice   float64          `json:"current_price"`
	Trend          Trend            `json:"trend"`
	RSI            RSISummary       `json:"rsi"`
	MACD           MACDSummary      `json:"macd"`
	Bollinger      BollingerSummary `json:"bollinger_bands"`
	Levels         LevelSet         `json:"support_resistance"`
	Volume         VolumeSummary    `json:"volume"`
	Patterns       []PatternEvent   `json:"patterns"`
	SMA20          float64          `json:"sma_20"`
	SMA50          float64          `json:"sma_50"`
	Recommendation Recommendation   `json:"recommendation"`
}
