// Package config provides configuration management for the analysis
// application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	"stockscope/internal/analysis/scoring"
)

// Config holds all application configuration.
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Store    StoreConfig    `mapstructure:"store"`
	UI       UIConfig       `mapstructure:"ui"`
}

// AnalysisConfig holds the indicator windows and thresholds.
type AnalysisConfig struct {
	RSIPeriod        int     `mapstructure:"rsi_period"`
	MACDFast         int     `mapstructure:"macd_fast"`
	MACDSlow         int     `mapstructure:"macd_slow"`
	MACDSignal       int     `mapstructure:"macd_signal"`
	BBPeriod         int     `mapstructure:"bb_period"`
	BBStdDev         float64 `mapstructure:"bb_std_dev"`
	LevelOrder       int     `mapstructure:"level_order"`
	LevelTolerance   float64 `mapstructure:"level_tolerance"`
	VolumePeriod     int     `mapstructure:"volume_period"`
	VolumeSpikeRatio float64 `mapstructure:"volume_spike_ratio"`
	MinBars          int     `mapstructure:"min_bars"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// StoreConfig holds bar store configuration.
type StoreConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/stockscope"
	}
	return filepath.Join(home, ".config", "stockscope")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			RSIPeriod:        14,
			MACDFast:         12,
			MACDSlow:         26,
			MACDSignal:       9,
			BBPeriod:         20,
			BBStdDev:         2.0,
			LevelOrder:       5,
			LevelTolerance:   0.02,
			VolumePeriod:     20,
			VolumeSpikeRatio: 2.0,
			MinBars:          60,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Console:    true,
			File:       true,
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     30,
		},
		Store: StoreConfig{
			DBPath: filepath.Join(DefaultConfigDir(), "stockscope.db"),
		},
		UI: UIConfig{
			ColorEnabled: true,
			DateFormat:   "02-Jan-2006",
		},
	}
}

// Load loads configuration from the specified directory. If configDir is
// empty, uses the default config directory. A missing config file is
// replaced by a commented template and the defaults are used.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if err := createTemplateConfig(configDir); err != nil {
				return nil, fmt.Errorf("creating config template: %w", err)
			}
		} else {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
	} else if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	// An empty db_path (the template default) means the standard location
	// under the config directory.
	if cfg.Store.DBPath == "" {
		cfg.Store.DBPath = filepath.Join(configDir, "stockscope.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("analysis.rsi_period", cfg.Analysis.RSIPeriod)
	v.SetDefault("analysis.macd_fast", cfg.Analysis.MACDFast)
	v.SetDefault("analysis.macd_slow", cfg.Analysis.MACDSlow)
	v.SetDefault("analysis.macd_signal", cfg.Analysis.MACDSignal)
	v.SetDefault("analysis.bb_period", cfg.Analysis.BBPeriod)
	v.SetDefault("analysis.bb_std_dev", cfg.Analysis.BBStdDev)
	v.SetDefault("analysis.level_order", cfg.Analysis.LevelOrder)
	v.SetDefault("analysis.level_tolerance", cfg.Analysis.LevelTolerance)
	v.SetDefault("analysis.volume_period", cfg.Analysis.VolumePeriod)
	v.SetDefault("analysis.volume_spike_ratio", cfg.Analysis.VolumeSpikeRatio)
	v.SetDefault("analysis.min_bars", cfg.Analysis.MinBars)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.console", cfg.Logging.Console)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.max_size", cfg.Logging.MaxSize)
	v.SetDefault("logging.max_backups", cfg.Logging.MaxBackups)
	v.SetDefault("logging.max_age", cfg.Logging.MaxAge)
	v.SetDefault("store.db_path", cfg.Store.DBPath)
	v.SetDefault("ui.color_enabled", cfg.UI.ColorEnabled)
	v.SetDefault("ui.date_format", cfg.UI.DateFormat)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STOCKSCOPE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("STOCKSCOPE_DB_PATH"); v != "" {
		cfg.Store.DBPath = v
	}
	if v := os.Getenv("STOCKSCOPE_MIN_BARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.MinBars = n
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	a := c.Analysis
	if a.RSIPeriod < 1 || a.MACDFast < 1 || a.MACDSlow < 1 || a.MACDSignal < 1 ||
		a.BBPeriod < 1 || a.LevelOrder < 1 || a.VolumePeriod < 1 {
		return fmt.Errorf("analysis periods must be positive")
	}
	if a.MACDFast >= a.MACDSlow {
		return fmt.Errorf("macd_fast (%d) must be less than macd_slow (%d)", a.MACDFast, a.MACDSlow)
	}
	if a.BBStdDev <= 0 {
		return fmt.Errorf("bb_std_dev must be positive")
	}
	if a.LevelTolerance <= 0 || a.LevelTolerance >= 1 {
		return fmt.Errorf("level_tolerance must be between 0 and 1")
	}
	if a.VolumeSpikeRatio <= 1 {
		return fmt.Errorf("volume_spike_ratio must be greater than 1")
	}
	if a.MinBars < 1 {
		return fmt.Errorf("min_bars must be at least 1")
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	return nil
}

// Params converts the analysis section to engine parameters.
func (c *Config) Params() scoring.Params {
	p := scoring.DefaultParams()
	p.RSIPeriod = c.Analysis.RSIPeriod
	p.MACDFast = c.Analysis.MACDFast
	p.MACDSlow = c.Analysis.MACDSlow
	p.MACDSignal = c.Analysis.MACDSignal
	p.BBPeriod = c.Analysis.BBPeriod
	p.BBStdDev = c.Analysis.BBStdDev
	p.LevelOrder = c.Analysis.LevelOrder
	p.LevelTolerance = c.Analysis.LevelTolerance
	p.VolumePeriod = c.Analysis.VolumePeriod
	p.VolumeSpikeRatio = c.Analysis.VolumeSpikeRatio
	p.MinBars = c.Analysis.MinBars
	return p
}
