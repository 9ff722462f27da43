package scoring

import (
	"stockscope/internal/analysis"
)

// TrendLabel classifies the overall trend from the current close and its
// 20- and 50-bar simple moving averages. NaN averages compare false on
// every branch, so a series too short for SMA50 can still label Uptrend or
// Downtrend from SMA20 alone, and one too short for SMA20 reads Sideways.
func TrendLabel(close, sma20, sma50 float64) analysis.Trend {
	switch {
	case close > sma20 && sma20 > sma50:
		return analysis.TrendStrongUptrend
	case close > sma20:
		return analysis.TrendUptrend
	case close < sma20 && sma20 < sma50:
		return analysis.TrendStrongDowntrend
	case close < sma20:
		return analysis.TrendDowntrend
	default:
		return analysis.TrendSideways
	}
}
