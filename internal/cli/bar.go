package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/statbar/statbar/internal/bar"
	"github.com/statbar/statbar/internal/errors"
	"github.com/statbar/statbar/internal/logger"
)

// barCommand starts the TUI status bar.
func barCommand() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if barIntervalFlag != "" {
		interval, err := time.ParseDuration(barIntervalFlag)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Invalid --interval value: "+barIntervalFlag,
				"Use a Go duration like 1s or 500ms")
		}
		cfg.Bar.Interval = interval
	}

	model := bar.NewModel(cfg, logger.Default())

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
