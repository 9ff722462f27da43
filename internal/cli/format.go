package cli

import (
	"fmt"
	"math"

	"stockscope/internal/analysis"
	"stockscope/internal/analysis/indicators"
	"stockscope/pkg/utils"
)

// renderResult prints the full analysis report for one symbol.
func renderResult(output *Output, result *analysis.Result, dateFormat string) {
	output.Bold("═══ %s ═══", result.Symbol)
	output.Printf("Price: %s   Trend: %s\n",
		utils.FormatPrice(result.CurrentPrice), trendText(output, result.Trend))
	output.Printf("SMA20: %s   SMA50: %s\n",
		utils.FormatPrice(result.SMA20), utils.FormatPrice(result.SMA50))
	output.Println()

	output.Bold("Momentum")
	output.Printf("  RSI(14):   %6.2f  [%s]  %s\n",
		result.RSI.Value, signalText(output, result.RSI.Signal), result.RSI.Interpretation)
	output.Printf("  MACD:      %6.2f  Signal: %6.2f  Histogram: %6.2f  [%s]\n",
		result.MACD.Line, result.MACD.Signal, result.MACD.Histogram,
		crossText(output, result.MACD.Cross))
	output.Printf("             %s\n", result.MACD.Interpretation)
	output.Println()

	output.Bold("Volatility")
	output.Printf("  Bollinger: Upper %s  Middle %s  Lower %s\n",
		utils.FormatPrice(result.Bollinger.Upper),
		utils.FormatPrice(result.Bollinger.Middle),
		utils.FormatPrice(result.Bollinger.Lower))
	output.Printf("             Width %.2f  [%s]  %s\n",
		result.Bollinger.Width, signalText(output, result.Bollinger.Signal),
		result.Bollinger.Interpretation)
	output.Println()

	output.Bold("Support / Resistance")
	renderLevels(output, &result.Levels)
	output.Println()

	output.Bold("Volume")
	output.Printf("  Current: %s   Average: %s   Trend: %s\n",
		utils.FormatQuantity(result.Volume.CurrentVolume),
		utils.FormatCompact(result.Volume.AvgVolume),
		result.Volume.Trend)
	output.Printf("  OBV: %s   Spikes (last 10 bars): %d\n",
		utils.FormatCompact(result.Volume.OBV), result.Volume.RecentSpikes)
	output.Println()

	output.Bold("Candlestick Patterns")
	if len(result.Patterns) == 0 {
		output.Dim("  No recent patterns detected")
	} else {
		for _, p := range result.Patterns {
			output.Printf("  %s  %-18s %s  %s\n",
				p.Date.Format(dateFormat), p.Pattern,
				directionText(output, p.Direction), output.DimText(p.Description))
		}
	}
	output.Println()

	output.Bold("Recommendation")
	output.Printf("  %s  (confidence %d%%)\n",
		output.Action(string(result.Recommendation.Action)), result.Recommendation.Confidence)
	output.Printf("  %s\n", result.Recommendation.Reason)
}

func renderLevels(output *Output, levels *analysis.LevelSet) {
	if levels.NearestSupport != nil {
		output.Printf("  Nearest Support:    %s\n", output.Green(utils.FormatPrice(*levels.NearestSupport)))
	} else {
		output.Printf("  Nearest Support:    %s\n", output.DimText("none below price"))
	}
	if levels.NearestResistance != nil {
		output.Printf("  Nearest Resistance: %s\n", output.Red(utils.FormatPrice(*levels.NearestResistance)))
	} else {
		output.Printf("  Nearest Resistance: %s\n", output.DimText("none above price"))
	}
	if len(levels.Support) > 0 {
		output.Printf("  Support levels:     %s\n", formatLevelList(levels.Support))
	}
	if len(levels.Resistance) > 0 {
		output.Printf("  Resistance levels:  %s\n", formatLevelList(levels.Resistance))
	}
}

func formatLevelList(levels []float64) string {
	s := ""
	for i, l := range levels {
		if i > 0 {
			s += "  "
		}
		s += utils.FormatPrice(l)
	}
	return s
}

// renderFrame prints the last rows of the per-bar indicator table.
func renderFrame(output *Output, frame *indicators.Frame, lastN int) {
	n := frame.Len()
	if lastN <= 0 || lastN > n {
		lastN = n
	}

	output.Bold("Indicator Table (last %d bars)", lastN)
	table := NewTable(output, "Date", "Close", "RSI", "MACD", "Hist", "BB Up", "BB Low", "Vol MA", "OBV", "SMA20")
	for i := n - lastN; i < n; i++ {
		bar := frame.Bars[i]
		table.AddRow(
			bar.Date.Format("2006-01-02"),
			fmt.Sprintf("%.2f", bar.Close),
			formatCell(frame.RSI[i]),
			formatCell(frame.MACD[i]),
			formatCell(frame.MACDHistogram[i]),
			formatCell(frame.BBUpper[i]),
			formatCell(frame.BBLower[i]),
			formatCell(frame.VolumeMA[i]),
			fmt.Sprintf("%.0f", frame.OBV[i]),
			formatCell(frame.SMA20[i]),
		)
	}
	table.Render()
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

func trendText(output *Output, trend analysis.Trend) string {
	switch {
	case trend.Bullish():
		return output.Green(string(trend))
	case trend.Bearish():
		return output.Red(string(trend))
	default:
		return output.Yellow(string(trend))
	}
}

func signalText(output *Output, signal analysis.Signal) string {
	switch signal {
	case analysis.SignalOverbought:
		return output.Red(string(signal))
	case analysis.SignalOversold:
		return output.Green(string(signal))
	default:
		return output.DimText(string(signal))
	}
}

func crossText(output *Output, cross analysis.CrossSignal) string {
	switch cross {
	case analysis.CrossBuy:
		return output.Green(string(cross))
	case analysis.CrossSell:
		return output.Red(string(cross))
	default:
		return output.DimText(string(cross))
	}
}

func directionText(output *Output, dir analysis.Direction) string {
	switch dir {
	case analysis.Bullish:
		return output.Green(string(dir))
	case analysis.Bearish:
		return output.Red(string(dir))
	default:
		return output.Yellow(string(dir))
	}
}
