package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/statbar/statbar/internal/errors"
	"github.com/statbar/statbar/internal/logger"
	"github.com/statbar/statbar/internal/util"
)

// Sampler produces snapshots for the service loop.
// Collector is the production implementation; tests substitute fakes.
type Sampler interface {
	Sample() (Snapshot, error)
}

// Service runs the collector loop: sample on a fixed interval, record into
// history, publish latest.json and history.json, and serve the full history
// to every stats socket connection.
type Service struct {
	dir      string
	interval time.Duration
	sampler  Sampler
	history  *History
	log      logger.Logger
}

// NewService creates a collector service writing into dir.
func NewService(dir string, interval time.Duration, historySize int, sampler Sampler, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Service{
		dir:      dir,
		interval: interval,
		sampler:  sampler,
		history:  NewHistory(historySize),
		log:      log,
	}
}

// History exposes the accumulated history, mainly for tests.
func (s *Service) History() *History {
	return s.history
}

// Run executes the collection loop until ctx is cancelled.
// It refuses to start when another live service owns the stats directory.
func (s *Service) Run(ctx context.Context) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrStats,
			"Couldn't create stats directory "+s.dir,
			"Check directory permissions")
	}

	if err := s.acquirePidFile(); err != nil {
		return err
	}
	defer os.Remove(filepath.Join(s.dir, PidFile))

	listener, err := s.listen()
	if err != nil {
		return err
	}
	defer listener.Close()

	go s.serveHistory(ctx, listener)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	size := s.history.size
	s.log.Info("collecting stats into %s every %s, retaining %d %s",
		s.dir, s.interval, size, util.Pluralize(size, "sample", "samples"))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.collectOnce()
		}
	}
}

// collectOnce performs one sample/record/publish cycle.
// Publish failures are logged, never fatal: readers tolerate missing files.
func (s *Service) collectOnce() {
	snap, err := s.sampler.Sample()
	if err != nil {
		s.log.Warn("sample failed: %v", err)
		return
	}

	s.history.Push(snap)

	if err := s.writeJSON(LatestFile, snap); err != nil {
		s.log.Warn("couldn't write latest stats: %v", err)
	}
	if err := s.writeJSON(HistoryFile, s.history.Data()); err != nil {
		s.log.Warn("couldn't write history: %v", err)
	}
}

func (s *Service) writeJSON(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
}

// acquirePidFile claims the stats directory, rejecting a second service
// while tolerating PID files left behind by a crashed run.
func (s *Service) acquirePidFile() error {
	path := filepath.Join(s.dir, PidFile)

	if data, err := os.ReadFile(path); err == nil {
		if pid, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil {
			if _, err := os.Stat(fmt.Sprintf("/proc/%d", pid)); err == nil {
				return errors.New(errors.ErrStats,
					fmt.Sprintf("Collector already running with PID %d", pid),
					"Stop the running collector first, or point --stats-dir elsewhere")
			}
		}
		s.log.Debug("removing stale pid file %s", path)
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrStats,
			"Couldn't write PID file",
			"Check permissions on "+s.dir)
	}
	return nil
}

func (s *Service) listen() (net.Listener, error) {
	path := filepath.Join(s.dir, SocketFile)

	// Remove a socket left behind by a previous run.
	_ = os.Remove(path)

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrStats,
			"Couldn't bind stats socket "+path,
			"Check permissions on "+s.dir)
	}
	return listener, nil
}

// serveHistory sends the full history to each connection and closes it.
// One-shot connections keep the protocol trivial for non-Go consumers.
func (s *Service) serveHistory(ctx context.Context, listener net.Listener) {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.log.Debug("accept failed: %v", err)
			return
		}

		go func(conn net.Conn) {
			defer conn.Close()
			data, err := json.Marshal(s.history.Data())
			if err != nil {
				s.log.Warn("couldn't serialize history: %v", err)
				return
			}
			if _, err := conn.Write(data); err != nil {
				s.log.Debug("history send failed: %v", err)
			}
		}(conn)
	}
}
