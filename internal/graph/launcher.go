package graph

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/statbar/statbar/internal/logger"
)

// Launcher spawns the external graph renderer, fire-and-forget.
//
// The request is serialized to a uniquely named temp file and the renderer
// is invoked with the file path as its single argument. The spawn is an
// argument-vector exec, never a shell string, so request contents can't be
// interpreted as shell syntax. Failures are logged and absorbed: the UI
// stays interactive, the graph window just doesn't appear.
type Launcher struct {
	bin string
	dir string
	log logger.Logger
}

// NewLauncher creates a launcher for the given renderer binary.
// dir is where request files are written; empty means the OS temp dir.
// A nil log defaults to the package logger.
func NewLauncher(bin, dir string, log logger.Logger) *Launcher {
	if dir == "" {
		dir = os.TempDir()
	}
	if log == nil {
		log = logger.Default()
	}
	return &Launcher{bin: bin, dir: dir, log: log}
}

// Launch serializes req and spawns the renderer detached. The spawned
// process is never cancelled; a reaper goroutine logs its exit and removes
// the request file.
func (l *Launcher) Launch(req Request) {
	data, err := json.Marshal(req)
	if err != nil {
		l.log.Error("couldn't serialize graph request: %v", err)
		return
	}

	// UUID suffix keeps request files unique across concurrent launches
	// and across restarts sharing the same temp directory.
	path := filepath.Join(l.dir, "statbar-graph-"+uuid.NewString()+".json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		l.log.Error("couldn't write graph request: %v", err)
		return
	}

	cmd := exec.Command(l.bin, path)
	if err := cmd.Start(); err != nil {
		l.log.Error("couldn't launch renderer %q: %v", l.bin, err)
		os.Remove(path)
		return
	}

	l.log.Debug("launched renderer %q for %s (pid %d)", l.bin, req.DataSource, cmd.Process.Pid)

	go func() {
		err := cmd.Wait()
		if err != nil {
			l.log.Warn("renderer for %s exited: %v", req.DataSource, err)
		} else {
			l.log.Debug("renderer for %s exited cleanly", req.DataSource)
		}
		os.Remove(path)
	}()
}
