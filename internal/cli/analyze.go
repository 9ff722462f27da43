package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"stockscope/internal/analysis/scoring"
	"stockscope/internal/logging"
	"stockscope/internal/models"
	"stockscope/internal/store"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <symbol>",
		Short: "Full technical analysis for a symbol",
		Long: `Perform comprehensive technical analysis including:
- Momentum (RSI) and trend (MACD, SMA20/SMA50)
- Volatility (Bollinger Bands)
- Support/resistance levels
- Volume analysis (moving average, spikes, OBV)
- Candlestick patterns
- A composite recommendation

Bars are read from the import database, or from a CSV file with
--csv. The series must cover at least the configured minimum of
bars (60 by default).`,
		Example: `  stockscope analyze AAPL
  stockscope analyze AAPL --csv bars/aapl.csv
  stockscope analyze MSFT --detailed
  stockscope analyze TSLA --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			csvPath, _ := cmd.Flags().GetString("csv")
			detailed, _ := cmd.Flags().GetBool("detailed")
			lastN, _ := cmd.Flags().GetInt("last")

			logger := logging.WithSymbol(app.Logger, symbol)

			series, err := loadSeries(ctx, app, symbol, csvPath)
			if err != nil {
				output.Error("Failed to load bars: %v", err)
				return err
			}

			analyzer, err := scoring.NewAnalyzer(app.Config.Params())
			if err != nil {
				return err
			}

			start := time.Now()
			result, frame, err := analyzer.AnalyzeFrame(ctx, series)
			if err != nil {
				output.Error("Analysis failed: %v", err)
				return err
			}
			result.Symbol = symbol

			logging.LogAnalysis(logger, symbol, len(series),
				string(result.Recommendation.Action), result.Recommendation.Confidence,
				time.Since(start))

			if output.IsJSON() {
				return output.JSON(result)
			}

			renderResult(output, result, app.Config.UI.DateFormat)
			if detailed {
				output.Println()
				renderFrame(output, frame, lastN)
			}
			return nil
		},
	}

	cmd.Flags().String("csv", "", "load bars from a CSV file instead of the import database")
	cmd.Flags().Bool("detailed", false, "also print the per-bar indicator table")
	cmd.Flags().Int("last", 15, "rows to show in the detailed table")
	return cmd
}

// loadSeries reads bars from the CSV path when given, otherwise from the
// import database, and validates them.
func loadSeries(ctx context.Context, app *App, symbol, csvPath string) (models.BarSeries, error) {
	var src store.BarSource
	if csvPath != "" {
		src = store.NewCSVSource(csvPath)
	} else {
		if app.Store == nil {
			return nil, fmt.Errorf("import database unavailable; use --csv or run 'stockscope data import'")
		}
		src = app.Store
	}

	bars, err := src.LoadBars(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return models.NewBarSeries(bars)
}
