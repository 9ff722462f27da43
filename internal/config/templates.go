package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# StockScope Configuration

[analysis]
# RSI lookback period
rsi_period = 14
# MACD EMA spans
macd_fast = 12
macd_slow = 26
macd_signal = 9
# Bollinger Band window and width multiplier
bb_period = 20
bb_std_dev = 2.0
# Support/resistance extrema window (bars on each side)
level_order = 5
# Relative tolerance for clustering nearby levels
level_tolerance = 0.02
# Volume moving-average window
volume_period = 20
# Spike threshold as a multiple of the volume average
volume_spike_ratio = 2.0
# Minimum bars required for a full analysis
min_bars = 60

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to the console
console = true
# Log to a rotating file
file = true
# Rotation limits
max_size = 100
max_backups = 7
max_age = 30

[store]
# SQLite database path (empty uses the default under the config dir)
db_path = ""

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "02-Jan-2006"
`

// createTemplateConfig writes a commented config.toml so a first run
// leaves something editable behind.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}
	return nil
}
