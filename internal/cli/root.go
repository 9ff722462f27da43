package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"stockscope/internal/config"
	"stockscope/internal/logging"
	"stockscope/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  *store.SQLiteStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if dataStore, err := store.NewSQLiteStore(cfg.Store.DBPath); err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, imported data is unavailable")
	} else {
		app.Store = dataStore
		logger.Debug().Str("path", cfg.Store.DBPath).Msg("SQLite store initialized")
	}

	rootCmd := &cobra.Command{
		Use:   "stockscope",
		Short: "StockScope - technical analysis CLI for OHLCV data",
		Long: `StockScope analyzes daily OHLCV bar series and produces a technical
report: RSI, MACD, Bollinger Bands, support/resistance levels, volume
analysis, candlestick patterns, and a composite recommendation.

Bars come from a CSV file or the local import database; no market data
is fetched. Use 'stockscope help <command>' for details on a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/stockscope)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newAnalyzeCmd(app))
	rootCmd.AddCommand(newDataCmd(app))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("StockScope v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app.Config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) {
	output.Bold("Analysis Configuration")
	output.Printf("  RSI Period:        %d\n", cfg.Analysis.RSIPeriod)
	output.Printf("  MACD:              %d/%d/%d\n", cfg.Analysis.MACDFast, cfg.Analysis.MACDSlow, cfg.Analysis.MACDSignal)
	output.Printf("  Bollinger:         %d bars, %.1f std dev\n", cfg.Analysis.BBPeriod, cfg.Analysis.BBStdDev)
	output.Printf("  Level Order:       %d\n", cfg.Analysis.LevelOrder)
	output.Printf("  Level Tolerance:   %.1f%%\n", cfg.Analysis.LevelTolerance*100)
	output.Printf("  Volume Period:     %d\n", cfg.Analysis.VolumePeriod)
	output.Printf("  Spike Ratio:       %.1fx\n", cfg.Analysis.VolumeSpikeRatio)
	output.Printf("  Min Bars:          %d\n", cfg.Analysis.MinBars)
	output.Println()

	output.Bold("Store")
	output.Printf("  Database:          %s\n", cfg.Store.DBPath)
	output.Println()

	output.Bold("Logging")
	output.Printf("  Level:             %s\n", cfg.Logging.Level)
	output.Printf("  Console:           %v\n", cfg.Logging.Console)
	output.Printf("  File:              %v\n", cfg.Logging.File)
}
