package stats

import (
	"encoding/json"
	"io"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/statbar/statbar/internal/logger"
)

// socketReadTimeout bounds how long a history read may block on the socket
// before falling back to the file.
const socketReadTimeout = 500 * time.Millisecond

// Reader reads the shared stats files produced by the collector service.
//
// Every call re-reads from storage; there is no caching and no staleness
// detection. Any failure (missing file, producer mid-write, schema mismatch)
// is reported as "no data" so callers can substitute a safe default and
// skip a frame instead of failing.
type Reader struct {
	dir string
	log logger.Logger
}

// NewReader creates a reader for the given stats directory.
// A nil log defaults to the package logger.
func NewReader(dir string, log logger.Logger) *Reader {
	if log == nil {
		log = logger.Default()
	}
	return &Reader{dir: dir, log: log}
}

// Dir returns the stats directory this reader is bound to.
func (r *Reader) Dir() string {
	return r.dir
}

// Read returns the latest snapshot and true, or a zero snapshot and false
// when no usable data is available. It never returns an error.
func (r *Reader) Read() (Snapshot, bool) {
	var snap Snapshot

	data, err := os.ReadFile(filepath.Join(r.dir, LatestFile))
	if err != nil {
		r.log.Debug("stats read failed: %v", err)
		return Snapshot{}, false
	}

	if err := json.Unmarshal(data, &snap); err != nil {
		r.log.Debug("stats parse failed: %v", err)
		return Snapshot{}, false
	}

	return snap, true
}

// History returns the recorded metric history and true, or zero history and
// false. The socket is tried first since it always carries a complete,
// consistent payload; the file is the fallback when the service is down
// but a stale history.json remains.
func (r *Reader) History() (HistoryData, bool) {
	if hist, ok := r.historyFromSocket(); ok {
		return hist, true
	}
	return r.historyFromFile()
}

func (r *Reader) historyFromSocket() (HistoryData, bool) {
	conn, err := net.DialTimeout("unix", filepath.Join(r.dir, SocketFile), socketReadTimeout)
	if err != nil {
		r.log.Debug("stats socket unavailable: %v", err)
		return HistoryData{}, false
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(socketReadTimeout))
	data, err := io.ReadAll(conn)
	if err != nil {
		r.log.Debug("stats socket read failed: %v", err)
		return HistoryData{}, false
	}

	var hist HistoryData
	if err := json.Unmarshal(data, &hist); err != nil {
		r.log.Debug("stats socket payload invalid: %v", err)
		return HistoryData{}, false
	}
	return hist, true
}

func (r *Reader) historyFromFile() (HistoryData, bool) {
	data, err := os.ReadFile(filepath.Join(r.dir, HistoryFile))
	if err != nil {
		r.log.Debug("history read failed: %v", err)
		return HistoryData{}, false
	}

	var hist HistoryData
	if err := json.Unmarshal(data, &hist); err != nil {
		r.log.Debug("history parse failed: %v", err)
		return HistoryData{}, false
	}
	return hist, true
}
