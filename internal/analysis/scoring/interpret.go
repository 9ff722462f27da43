package scoring

import (
	"fmt"
	"math"
)

// InterpretRSI renders the fixed interpretation text for an RSI value.
func InterpretRSI(value float64) string {
	switch {
	case math.IsNaN(value):
		return "Insufficient data"
	case value > 70:
		return "Overbought - Consider selling"
	case value < 30:
		return "Oversold - Consider buying"
	case value > 50:
		return "Bullish momentum"
	default:
		return "Bearish momentum"
	}
}

// InterpretMACD renders the fixed interpretation text for a MACD histogram
// value.
func InterpretMACD(histogram float64) string {
	switch {
	case histogram > 0:
		return "Bullish momentum - MACD above signal"
	case histogram < 0:
		return "Bearish momentum - MACD below signal"
	default:
		return "Neutral"
	}
}

// InterpretBollinger renders the interpretation text for a price relative
// to its Bollinger Bands. Between the bands the position is phrased as a
// percentage of the band range.
func InterpretBollinger(price, upper, lower float64) string {
	switch {
	case price >= upper:
		return "Price at upper band - Overbought condition"
	case price <= lower:
		return "Price at lower band - Oversold condition"
	default:
		pct := (price - lower) / (upper - lower) * 100
		return fmt.Sprintf("Price at %.0f%% of band range", pct)
	}
}
