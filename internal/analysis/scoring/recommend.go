package scoring

import (
	"fmt"

	"stockscope/internal/analysis"
)

// Inputs are the per-module signals the recommendation fuses.
type Inputs struct {
	RSISignal   analysis.Signal
	MACDCross   analysis.CrossSignal
	BBSignal    analysis.Signal
	Trend       analysis.Trend
	VolumeTrend analysis.VolumeTrend
}

// Recommend tallies independent buy and sell signals and maps the counts
// to an action with a bounded confidence. Momentum signals (RSI, MACD
// cross) weigh 2, band and trend signals weigh 1. Rising volume adds one
// more buy point only when buys already lead; there is deliberately no
// sell-side counterpart. The mapping below is order-sensitive: the strong
// branches are checked before the plain ones.
func Recommend(in Inputs) analysis.Recommendation {
	var buy, sell int

	if in.RSISignal == analysis.SignalOversold {
		buy += 2
	} else if in.RSISignal == analysis.SignalOverbought {
		sell += 2
	}

	if in.MACDCross == analysis.CrossBuy {
		buy += 2
	} else if in.MACDCross == analysis.CrossSell {
		sell += 2
	}

	if in.BBSignal == analysis.SignalOversold {
		buy++
	} else if in.BBSignal == analysis.SignalOverbought {
		sell++
	}

	if in.Trend.Bullish() {
		buy++
	} else if in.Trend.Bearish() {
		sell++
	}

	if in.VolumeTrend == analysis.VolumeIncreasing && buy > sell {
		buy++
	}

	switch {
	case buy > sell+2:
		return analysis.Recommendation{
			Action:     analysis.ActionStrongBuy,
			Confidence: minInt(95, buy*15),
			Reason:     fmt.Sprintf("Multiple bullish signals detected (%d buy vs %d sell signals)", buy, sell),
		}
	case buy > sell:
		return analysis.Recommendation{
			Action:     analysis.ActionBuy,
			Confidence: minInt(80, buy*12),
			Reason:     fmt.Sprintf("Bullish indicators outweigh bearish (%d buy vs %d sell signals)", buy, sell),
		}
	case sell > buy+2:
		return analysis.Recommendation{
			Action:     analysis.ActionStrongSell,
			Confidence: minInt(95, sell*15),
			Reason:     fmt.Sprintf("Multiple bearish signals detected (%d sell vs %d buy signals)", sell, buy),
		}
	case sell > buy:
		return analysis.Recommendation{
			Action:     analysis.ActionSell,
			Confidence: minInt(80, sell*12),
			Reason:     fmt.Sprintf("Bearish indicators outweigh bullish (%d sell vs %d buy signals)", sell, buy),
		}
	default:
		return analysis.Recommendation{
			Action:     analysis.ActionHold,
			Confidence: 50,
			Reason:     "Mixed signals - Wait for clearer trend",
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
