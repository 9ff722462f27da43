package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"stockscope/internal/logging"
	"stockscope/internal/models"
	"stockscope/internal/store"
)

func newDataCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Manage the local bar database",
		Long:  "Import, inspect, and delete OHLCV bars in the local SQLite database.",
	}

	cmd.AddCommand(newDataImportCmd(app))
	cmd.AddCommand(newDataShowCmd(app))
	cmd.AddCommand(newDataListCmd(app))
	cmd.AddCommand(newDataDeleteCmd(app))
	return cmd
}

func requireStore(app *App) error {
	if app.Store == nil {
		return fmt.Errorf("import database unavailable")
	}
	return nil
}

func newDataImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <symbol>",
		Short: "Import bars for a symbol from a CSV file",
		Long: `Import daily OHLCV bars from a CSV file with the header
Date,Open,High,Low,Close,Volume and dates formatted as 2006-01-02.
Bars for dates already stored are replaced.`,
		Example: `  stockscope data import AAPL --csv bars/aapl.csv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := requireStore(app); err != nil {
				output.Error("%v", err)
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			csvPath, _ := cmd.Flags().GetString("csv")
			if csvPath == "" {
				return fmt.Errorf("--csv is required")
			}

			bars, err := store.NewCSVSource(csvPath).LoadBars(ctx, symbol)
			if err != nil {
				output.Error("Failed to read CSV: %v", err)
				return err
			}
			series, err := models.NewBarSeries(bars)
			if err != nil {
				output.Error("Rejected CSV: %v", err)
				return err
			}

			if err := app.Store.SaveBars(ctx, symbol, series); err != nil {
				output.Error("Failed to save bars: %v", err)
				return err
			}

			logging.LogImport(app.Logger, symbol, csvPath, len(series))

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"symbol": symbol,
					"bars":   len(series),
					"from":   series[0].Date,
					"to":     series.Last().Date,
				})
			}
			output.Success("Imported %d bars for %s (%s to %s)",
				len(series), symbol,
				series[0].Date.Format("2006-01-02"),
				series.Last().Date.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().String("csv", "", "CSV file to import (required)")
	return cmd
}

func newDataShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <symbol>",
		Short: "Show stored bars for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := requireStore(app); err != nil {
				output.Error("%v", err)
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			lastN, _ := cmd.Flags().GetInt("last")

			bars, err := app.Store.LoadBars(ctx, symbol)
			if err != nil {
				output.Error("Failed to load bars: %v", err)
				return err
			}

			if lastN > 0 && lastN < len(bars) {
				bars = bars[len(bars)-lastN:]
			}

			if output.IsJSON() {
				return output.JSON(bars)
			}

			table := NewTable(output, "Date", "Open", "High", "Low", "Close", "Volume")
			for _, b := range bars {
				table.AddRow(
					b.Date.Format("2006-01-02"),
					fmt.Sprintf("%.2f", b.Open),
					fmt.Sprintf("%.2f", b.High),
					fmt.Sprintf("%.2f", b.Low),
					fmt.Sprintf("%.2f", b.Close),
					fmt.Sprintf("%d", b.Volume),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().Int("last", 20, "number of most recent bars to show (0 for all)")
	return cmd
}

func newDataListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List symbols with stored bars",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := requireStore(app); err != nil {
				output.Error("%v", err)
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			symbols, err := app.Store.ListSymbols(ctx)
			if err != nil {
				output.Error("Failed to list symbols: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(symbols)
			}

			if len(symbols) == 0 {
				output.Dim("No symbols imported yet")
				return nil
			}

			table := NewTable(output, "Symbol", "Bars", "Latest")
			for _, symbol := range symbols {
				count, err := app.Store.CountBars(ctx, symbol)
				if err != nil {
					return err
				}
				latest, err := app.Store.Freshness(ctx, symbol)
				if err != nil {
					return err
				}
				latestStr := "-"
				if !latest.IsZero() {
					latestStr = latest.Format("2006-01-02")
				}
				table.AddRow(symbol, fmt.Sprintf("%d", count), latestStr)
			}
			table.Render()
			return nil
		},
	}
}

func newDataDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <symbol>",
		Short: "Delete stored bars for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := requireStore(app); err != nil {
				output.Error("%v", err)
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			n, err := app.Store.DeleteBars(ctx, symbol)
			if err != nil {
				output.Error("Failed to delete bars: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{"symbol": symbol, "deleted": n})
			}
			output.Success("Deleted %d bars for %s", n, symbol)
			return nil
		},
	}
}
