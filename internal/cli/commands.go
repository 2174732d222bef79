package cli

import (
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	collectIntervalFlag string
	barIntervalFlag     string
	renderOutputFlag    string
	initForce           bool
	initNonInteractive  bool
)

// barCmd starts the TUI status bar.
var barCmd = &cobra.Command{
	Use:   "bar",
	Short: "Start the status bar UI",
	Long: `Start the interactive terminal status bar.

Widgets show CPU, memory, and network utilization read from the shared
stats directory, refreshed every second. A collector must be running for
live data; without one the widgets show placeholders.

Examples:
  statbar bar
  statbar bar --interval 2s
  statbar bar --stats-dir /tmp/my-stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return barCommand()
	},
}

// collectCmd runs the stats collector service.
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run the stats collector service",
	Long: `Run the background collector that samples system utilization.

Every interval the collector writes the latest snapshot and the rolling
history into the stats directory, and serves the full history on a unix
socket for external consumers. Only one collector may own a stats
directory at a time.

Examples:
  statbar collect
  statbar collect --interval 500ms
  statbar collect --stats-dir /tmp/my-stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return collectCommand(collectIntervalFlag)
	},
}

// renderCmd renders a graph request to an SVG file.
var renderCmd = &cobra.Command{
	Use:   "render [request-file]",
	Short: "Render a graph request to SVG",
	Long: `Render a serialized graph request as an SVG chart.

Reads the request from the given file, or from stdin when no file is
given. The SVG is written to the request's output_path (or --output) and
the output path is printed on success.

Examples:
  statbar render /tmp/statbar-graph-1234.json
  cat request.json | statbar render --output /tmp/cpu.svg`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return renderCommand(path, renderOutputFlag)
	},
}

// initCmd creates a new .statbar.yaml configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .statbar.yaml configuration",
	Long: `Initialize a new statbar configuration file.

Creates a .statbar.yaml in the current directory, guiding you through the
stats directory, refresh interval, and renderer binary with interactive
prompts.

Examples:
  statbar init
  statbar init --force
  statbar init --non-interactive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
		})
	},
}

func init() {
	barCmd.Flags().StringVar(&barIntervalFlag, "interval", "", "Widget refresh interval (e.g. 1s, 500ms)")
	collectCmd.Flags().StringVar(&collectIntervalFlag, "interval", "", "Sampling interval (e.g. 1s, 500ms)")
	renderCmd.Flags().StringVar(&renderOutputFlag, "output", "", "Write the SVG here instead of the request's output_path")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing config without asking")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "Skip prompts, use defaults")

	rootCmd.AddCommand(barCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(initCmd)
}
