package fluent

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/fluentkit/fluent/classes"
	"github.com/fluentkit/fluent/retained"
)

// Config is the fluent.toml configuration file.
type Config struct {
	Layout      LayoutConfig      `toml:"layout"`
	Breakpoints BreakpointsConfig `toml:"breakpoints"`
}

// LayoutConfig tunes the retained pass scheduling.
type LayoutConfig struct {
	// DebounceMillis is the quiet window before a layout pass runs.
	// 0 makes every mutation lay out synchronously.
	DebounceMillis int `toml:"debounce_ms"`
}

// BreakpointsConfig holds the responsive width thresholds in pixels.
type BreakpointsConfig struct {
	SM  float32 `toml:"sm"`
	MD  float32 `toml:"md"`
	LG  float32 `toml:"lg"`
	XL  float32 `toml:"xl"`
	XXL float32 `toml:"xxl"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	bp := classes.DefaultBreakpoints()
	return Config{
		Layout: LayoutConfig{
			DebounceMillis: int(retained.DefaultDebounce / time.Millisecond),
		},
		Breakpoints: BreakpointsConfig{
			SM:  bp.SM,
			MD:  bp.MD,
			LG:  bp.LG,
			XL:  bp.XL,
			XXL: bp.XXL,
		},
	}
}

// LoadConfig reads a TOML config file. A missing file returns defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig writes the configuration to path.
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Debounce returns the configured quiet window as a duration.
func (c Config) Debounce() time.Duration {
	if c.Layout.DebounceMillis <= 0 {
		return 0
	}
	return time.Duration(c.Layout.DebounceMillis) * time.Millisecond
}

// BreakpointConfig converts the thresholds for the class resolver.
func (c Config) BreakpointConfig() classes.BreakpointConfig {
	return classes.BreakpointConfig{
		SM:  c.Breakpoints.SM,
		MD:  c.Breakpoints.MD,
		LG:  c.Breakpoints.LG,
		XL:  c.Breakpoints.XL,
		XXL: c.Breakpoints.XXL,
	}
}
