package scoring

import (
	"testing"

	"stockscope/internal/analysis"
)

func TestRecommendMapping(t *testing.T) {
	tests := []struct {
		name       string
		in         Inputs
		action     analysis.Action
		confidence int
		reason     string
	}{
		{
			name: "everything bullish with rising volume",
			in: Inputs{
				RSISignal:   analysis.SignalOversold,
				MACDCross:   analysis.CrossBuy,
				BBSignal:    analysis.SignalOversold,
				Trend:       analysis.TrendStrongUptrend,
				VolumeTrend: analysis.VolumeIncreasing,
			},
			action:     analysis.ActionStrongBuy,
			confidence: 95,
			reason:     "Multiple bullish signals detected (7 buy vs 0 sell signals)",
		},
		{
			name: "trend only",
			in: Inputs{
				RSISignal:   analysis.SignalNeutral,
				MACDCross:   analysis.CrossHold,
				BBSignal:    analysis.SignalNeutral,
				Trend:       analysis.TrendUptrend,
				VolumeTrend: analysis.VolumeDecreasing,
			},
			action:     analysis.ActionBuy,
			confidence: 12,
			reason:     "Bullish indicators outweigh bearish (1 buy vs 0 sell signals)",
		},
		{
			name: "everything neutral",
			in: Inputs{
				RSISignal:   analysis.SignalNeutral,
				MACDCross:   analysis.CrossHold,
				BBSignal:    analysis.SignalNeutral,
				Trend:       analysis.TrendSideways,
				VolumeTrend: analysis.VolumeDecreasing,
			},
			action:     analysis.ActionHold,
			confidence: 50,
			reason:     "Mixed signals - Wait for clearer trend",
		},
		{
			name: "everything bearish",
			in: Inputs{
				RSISignal:   analysis.SignalOverbought,
				MACDCross:   analysis.CrossSell,
				BBSignal:    analysis.SignalOverbought,
				Trend:       analysis.TrendStrongDowntrend,
				VolumeTrend: analysis.VolumeDecreasing,
			},
			action:     analysis.ActionStrongSell,
			confidence: 90,
			reason:     "Multiple bearish signals detected (6 sell vs 0 buy signals)",
		},
		{
			name: "downtrend only",
			in: Inputs{
				RSISignal:   analysis.SignalNeutral,
				MACDCross:   analysis.CrossHold,
				BBSignal:    analysis.SignalNeutral,
				Trend:       analysis.TrendDowntrend,
				VolumeTrend: analysis.VolumeDecreasing,
			},
			action:     analysis.ActionSell,
			confidence: 12,
			reason:     "Bearish indicators outweigh bullish (1 sell vs 0 buy signals)",
		},
		{
			name: "strong buy boundary at three",
			in: Inputs{
				RSISignal:   analysis.SignalOversold,
				MACDCross:   analysis.CrossHold,
				BBSignal:    analysis.SignalNeutral,
				Trend:       analysis.TrendUptrend,
				VolumeTrend: analysis.VolumeDecreasing,
			},
			action:     analysis.ActionStrongBuy,
			confidence: 45,
			reason:     "Multiple bullish signals detected (3 buy vs 0 sell signals)",
		},
		{
			name: "three against one is a plain buy",
			in: Inputs{
				RSISignal:   analysis.SignalOversold,
				MACDCross:   analysis.CrossHold,
				BBSignal:    analysis.SignalOverbought,
				Trend:       analysis.TrendUptrend,
				VolumeTrend: analysis.VolumeDecreasing,
			},
			action:     analysis.ActionBuy,
			confidence: 36,
			reason:     "Bullish indicators outweigh bearish (3 buy vs 1 sell signals)",
		},
		{
			name: "balanced signals hold",
			in: Inputs{
				RSISignal:   analysis.SignalOversold,
				MACDCross:   analysis.CrossSell,
				BBSignal:    analysis.SignalNeutral,
				Trend:       analysis.TrendSideways,
				VolumeTrend: analysis.VolumeDecreasing,
			},
			action:     analysis.ActionHold,
			confidence: 50,
			reason:     "Mixed signals - Wait for clearer trend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Recommend(tt.in)
			if rec.Action != tt.action {
				t.Errorf("action = %v, want %v", rec.Action, tt.action)
			}
			if rec.Confidence != tt.confidence {
				t.Errorf("confidence = %d, want %d", rec.Confidence, tt.confidence)
			}
			if rec.Reason != tt.reason {
				t.Errorf("reason = %q, want %q", rec.Reason, tt.reason)
			}
		})
	}
}

func TestRecommendVolumeBonusIsBuyOnly(t *testing.T) {
	// Rising volume adds a buy point when buys lead.
	buySide := Recommend(Inputs{
		RSISignal:   analysis.SignalOversold,
		MACDCross:   analysis.CrossHold,
		BBSignal:    analysis.SignalNeutral,
		Trend:       analysis.TrendSideways,
		VolumeTrend: analysis.VolumeIncreasing,
	})
	if buySide.Action != analysis.ActionStrongBuy || buySide.Confidence != 45 {
		t.Errorf("expected the volume bonus to lift 2 buys to Strong Buy at 45, got %v/%d",
			buySide.Action, buySide.Confidence)
	}

	// The mirrored sell case gets no bonus.
	sellSide := Recommend(Inputs{
		RSISignal:   analysis.SignalOverbought,
		MACDCross:   analysis.CrossHold,
		BBSignal:    analysis.SignalNeutral,
		Trend:       analysis.TrendSideways,
		VolumeTrend: analysis.VolumeIncreasing,
	})
	if sellSide.Action != analysis.ActionSell || sellSide.Confidence != 24 {
		t.Errorf("expected plain Sell at 24 with no volume bonus, got %v/%d",
			sellSide.Action, sellSide.Confidence)
	}
}

func TestTrendSubstringSemantics(t *testing.T) {
	// Strong trends count the same as plain ones in the tally.
	strong := Recommend(Inputs{Trend: analysis.TrendStrongUptrend, MACDCross: analysis.CrossHold,
		RSISignal: analysis.SignalNeutral, BBSignal: analysis.SignalNeutral,
		VolumeTrend: analysis.VolumeDecreasing})
	plain := Recommend(Inputs{Trend: analysis.TrendUptrend, MACDCross: analysis.CrossHold,
		RSISignal: analysis.SignalNeutral, BBSignal: analysis.SignalNeutral,
		VolumeTrend: analysis.VolumeDecreasing})
	if strong.Action != plain.Action || strong.Confidence != plain.Confidence {
		t.Errorf("Strong Uptrend and Uptrend should tally identically: %v/%d vs %v/%d",
			strong.Action, strong.Confidence, plain.Action, plain.Confidence)
	}
}
