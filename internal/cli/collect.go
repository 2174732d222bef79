package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/statbar/statbar/internal/errors"
	"github.com/statbar/statbar/internal/logger"
	"github.com/statbar/statbar/internal/stats"
)

// collectCommand runs the collector service until interrupted.
func collectCommand(intervalFlag string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	interval := cfg.Stats.Interval
	if intervalFlag != "" {
		interval, err = time.ParseDuration(intervalFlag)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Invalid --interval value: "+intervalFlag,
				"Use a Go duration like 1s or 500ms")
		}
	}

	log := logger.Default()
	collector := stats.NewCollector(log)
	service := stats.NewService(cfg.Stats.Dir, interval, cfg.Stats.History, collector, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return service.Run(ctx)
}
