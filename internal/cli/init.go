package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/statbar/statbar/internal/config"
	"github.com/statbar/statbar/internal/errors"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Skip prompts, use defaults
}

// configHeader is prepended to generated config files.
const configHeader = `# statbar configuration
# Run 'statbar collect' for the background collector, 'statbar' for the UI.
`

// Init creates a new .statbar.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if !opts.NonInteractive {
		statsDir := cfg.Stats.Dir
		interval := cfg.Stats.Interval.String()
		rendererBin := cfg.Renderer.Bin
		clockFormat := cfg.Bar.ClockFormat

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Stats directory").
					Description("Where the collector writes shared stats files").
					Placeholder(config.DefaultStatsDir).
					Value(&statsDir).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("stats directory is required")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Refresh interval").
					Description("How often to sample and refresh (Go duration)").
					Placeholder("1s").
					Value(&interval).
					Validate(func(s string) error {
						if _, err := time.ParseDuration(s); err != nil {
							return fmt.Errorf("use a Go duration like 1s or 500ms")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Graph renderer binary").
					Description("External program launched for graph windows").
					Placeholder("statbar-graph").
					Value(&rendererBin),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Clock format").
					Description("Go time layout for the clock widget").
					Placeholder("15:04").
					Value(&clockFormat),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive")
		}

		cfg.Stats.Dir = statsDir
		if d, err := time.ParseDuration(interval); err == nil {
			cfg.Stats.Interval = d
			cfg.Bar.Interval = d
		}
		if rendererBin != "" {
			cfg.Renderer.Bin = rendererBin
		}
		if clockFormat != "" {
			cfg.Bar.ClockFormat = clockFormat
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	content := configHeader + string(data)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+configPath,
			"Check directory permissions")
	}

	fmt.Printf("Created %s\n", configPath)
	fmt.Println("Start the collector with 'statbar collect', then run 'statbar'.")
	return nil
}
