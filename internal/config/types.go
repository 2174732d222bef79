package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .statbar.yaml configuration file.
type Config struct {
	Version  int            `yaml:"version" mapstructure:"version"`
	Stats    StatsConfig    `yaml:"stats" mapstructure:"stats"`
	Renderer RendererConfig `yaml:"renderer" mapstructure:"renderer"`
	Bar      BarConfig      `yaml:"bar" mapstructure:"bar"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// StatsConfig controls the shared stats directory and the collector service.
type StatsConfig struct {
	// Dir is where the collector writes latest.json, history.json, the PID
	// file, and the stats socket, and where the bar reads them back.
	Dir string `yaml:"dir" mapstructure:"dir"`

	// Interval is the collector sampling cadence.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// History is the number of samples retained per metric series.
	History int `yaml:"history" mapstructure:"history"`
}

// RendererConfig controls how graph windows are spawned.
type RendererConfig struct {
	// Bin is the external renderer binary. It receives the path of a
	// serialized graph request as its only argument.
	Bin string `yaml:"bin" mapstructure:"bin"`

	// Dir is where request files are written before the spawn.
	// Empty means the OS temp directory.
	Dir string `yaml:"dir" mapstructure:"dir"`

	// Width and Height are the default graph dimensions in pixels.
	Width  int `yaml:"width" mapstructure:"width"`
	Height int `yaml:"height" mapstructure:"height"`
}

// BarConfig controls the TUI status bar.
type BarConfig struct {
	// Interval is how often widgets re-sample the shared stats file.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// ClockFormat is a Go time layout for the clock widget.
	ClockFormat string `yaml:"clock_format" mapstructure:"clock_format"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultStatsDir is the well-known location shared with external consumers.
const DefaultStatsDir = "/tmp/statbar-stats"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Stats: StatsConfig{
			Dir:      DefaultStatsDir,
			Interval: time.Second,
			History:  60,
		},
		Renderer: RendererConfig{
			Bin:    "statbar-graph",
			Dir:    "",
			Width:  300,
			Height: 100,
		},
		Bar: BarConfig{
			Interval:    time.Second,
			ClockFormat: "15:04",
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
