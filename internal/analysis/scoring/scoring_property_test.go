package scoring

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"stockscope/internal/analysis"
)

func genInputs() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf(analysis.SignalOverbought, analysis.SignalOversold, analysis.SignalNeutral),
		gen.OneConstOf(analysis.CrossBuy, analysis.CrossSell, analysis.CrossHold),
		gen.OneConstOf(analysis.SignalOverbought, analysis.SignalOversold, analysis.SignalNeutral),
		gen.OneConstOf(analysis.TrendStrongUptrend, analysis.TrendUptrend, analysis.TrendSideways,
			analysis.TrendDowntrend, analysis.TrendStrongDowntrend),
		gen.OneConstOf(analysis.VolumeIncreasing, analysis.VolumeDecreasing),
	).Map(func(vals []interface{}) Inputs {
		return Inputs{
			RSISignal:   vals[0].(analysis.Signal),
			MACDCross:   vals[1].(analysis.CrossSignal),
			BBSignal:    vals[2].(analysis.Signal),
			Trend:       vals[3].(analysis.Trend),
			VolumeTrend: vals[4].(analysis.VolumeTrend),
		}
	})
}

func actionRank(a analysis.Action) int {
	switch a {
	case analysis.ActionStrongSell:
		return -2
	case analysis.ActionSell:
		return -1
	case analysis.ActionHold:
		return 0
	case analysis.ActionBuy:
		return 1
	case analysis.ActionStrongBuy:
		return 2
	}
	return -99
}

func mirrorInputs(in Inputs) Inputs {
	flipSignal := func(s analysis.Signal) analysis.Signal {
		switch s {
		case analysis.SignalOverbought:
			return analysis.SignalOversold
		case analysis.SignalOversold:
			return analysis.SignalOverbought
		}
		return s
	}
	flipCross := func(c analysis.CrossSignal) analysis.CrossSignal {
		switch c {
		case analysis.CrossBuy:
			return analysis.CrossSell
		case analysis.CrossSell:
			return analysis.CrossBuy
		}
		return c
	}
	flipTrend := func(t analysis.Trend) analysis.Trend {
		switch t {
		case analysis.TrendStrongUptrend:
			return analysis.TrendStrongDowntrend
		case analysis.TrendUptrend:
			return analysis.TrendDowntrend
		case analysis.TrendDowntrend:
			return analysis.TrendUptrend
		case analysis.TrendStrongDowntrend:
			return analysis.TrendStrongUptrend
		}
		return t
	}
	return Inputs{
		RSISignal:   flipSignal(in.RSISignal),
		MACDCross:   flipCross(in.MACDCross),
		BBSignal:    flipSignal(in.BBSignal),
		Trend:       flipTrend(in.Trend),
		VolumeTrend: in.VolumeTrend,
	}
}

func TestRecommendProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("confidence stays within bounds", prop.ForAll(
		func(in Inputs) bool {
			rec := Recommend(in)
			return rec.Confidence >= 0 && rec.Confidence <= 100
		},
		genInputs(),
	))

	properties.Property("action is a known label with a reason", prop.ForAll(
		func(in Inputs) bool {
			rec := Recommend(in)
			return actionRank(rec.Action) >= -2 && rec.Reason != ""
		},
		genInputs(),
	))

	properties.Property("identical inputs recommend identically", prop.ForAll(
		func(in Inputs) bool {
			return Recommend(in) == Recommend(in)
		},
		genInputs(),
	))

	properties.Property("rising volume never makes the call more bearish", prop.ForAll(
		func(in Inputs) bool {
			rising := in
			rising.VolumeTrend = analysis.VolumeIncreasing
			falling := in
			falling.VolumeTrend = analysis.VolumeDecreasing
			return actionRank(Recommend(rising).Action) >= actionRank(Recommend(falling).Action)
		},
		genInputs(),
	))

	// The volume bonus is buy-side only, so mirror symmetry holds only
	// when volume is not rising.
	properties.Property("mirrored inputs without rising volume mirror the action", prop.ForAll(
		func(in Inputs) bool {
			in.VolumeTrend = analysis.VolumeDecreasing
			rec := Recommend(in)
			mirrored := Recommend(mirrorInputs(in))
			return actionRank(mirrored.Action) == -actionRank(rec.Action) &&
				mirrored.Confidence == rec.Confidence
		},
		genInputs(),
	))

	properties.TestingRun(t)
}
