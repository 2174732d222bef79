// Package cli wires the statbar commands together.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statbar/statbar/internal/config"
)

// Persistent flags shared by every command.
var (
	configFlag   string
	statsDirFlag string
)

// rootCmd is the base command. Running statbar with no subcommand starts
// the status bar.
var rootCmd = &cobra.Command{
	Use:   "statbar",
	Short: "Terminal system status bar",
	Long: `statbar is a system status bar for the terminal.

A background collector samples CPU, memory, and network utilization into a
shared stats directory. The bar reads those files every second and renders
a row of widgets; selecting a widget and pressing 'g' opens a graph window
through an external renderer.

Run 'statbar collect' in the background, then 'statbar' (or 'statbar bar')
for the UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return barCommand()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&statsDirFlag, "stats-dir", "", "Override the shared stats directory")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective config for a command invocation,
// applying flag overrides on top of the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}
	if statsDirFlag != "" {
		cfg.Stats.Dir = statsDirFlag
	}
	return cfg, nil
}
