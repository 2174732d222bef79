// Package bar implements the terminal status bar: a row of metric widgets
// refreshed from the shared stats files on a single tick, with graph windows
// launched on demand through the external renderer.
package bar

import (
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/statbar/statbar/internal/graph"
	"github.com/statbar/statbar/internal/logger"
	"github.com/statbar/statbar/internal/poll"
	"github.com/statbar/statbar/internal/stats"
	"github.com/statbar/statbar/internal/util"
)

// sparkWindow is how many recent samples the inline sparkline shows.
const sparkWindow = 30

// networkRateFloor keeps network graph scaling readable on quiet links (KB/s).
const networkRateFloor = 1024.0

// Source couples the shared stats reader with a bar-local history.
//
// Refresh reads the latest snapshot once per tick; every widget then samples
// from the cached snapshot, so all widgets within one tick agree on the data.
// The history accumulates refreshed snapshots and seeds sparklines and graph
// windows.
type Source struct {
	reader  *stats.Reader
	history *stats.History

	mu   sync.Mutex
	last stats.Snapshot
	ok   bool
}

// NewSource creates a source over the given reader.
func NewSource(reader *stats.Reader, historySize int) *Source {
	return &Source{
		reader:  reader,
		history: stats.NewHistory(historySize),
	}
}

// Seed backfills the local history from the collector's recorded history so
// sparklines have content immediately after startup. Failure is fine; the
// history fills up from live ticks instead.
func (s *Source) Seed() bool {
	hist, ok := s.reader.History()
	if !ok {
		return false
	}

	n := len(hist.CPU)
	for i := 0; i < n; i++ {
		snap := stats.Snapshot{
			Timestamp: hist.LastUpdate,
			CPUUsage:  hist.CPU[i],
		}
		if i < len(hist.Memory) {
			snap.Memory.UsedPercentage = hist.Memory[i]
			snap.Memory.Total = hist.MemoryTotal
		}
		if i < len(hist.NetworkDownload) {
			snap.NetworkDownload = hist.NetworkDownload[i]
		}
		if i < len(hist.NetworkUpload) {
			snap.NetworkUpload = hist.NetworkUpload[i]
		}
		s.history.Push(snap)
	}
	return n > 0
}

// Refresh re-reads the latest snapshot. Called once per tick, before any
// widget samples.
func (s *Source) Refresh() {
	snap, ok := s.reader.Read()

	s.mu.Lock()
	s.ok = ok
	if ok {
		s.last = snap
	}
	s.mu.Unlock()

	if ok {
		s.history.Push(snap)
	}
}

// Last returns the snapshot cached by the most recent Refresh. When that
// Refresh found no usable data it returns the zero snapshot and false, so
// widgets fall back to safe zero defaults rather than showing stale numbers.
func (s *Source) Last() (stats.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ok {
		return stats.Snapshot{}, false
	}
	return s.last, true
}

// History returns the accumulated bar-local history.
func (s *Source) History() *stats.History {
	return s.history
}

// Widget is one cell of the status bar.
//
// The text lives in a poll cell so a panicking formatter degrades to the
// previous text instead of tearing down the bar. Spark and Graph are
// optional; the clock has neither.
type Widget struct {
	Name  string
	Cell  *poll.Cell[string]
	Color lipgloss.Color

	// Spark renders an inline sparkline of the widget's recent history.
	Spark func(width int) string

	// Graph builds the renderer request for this widget. ok is false when
	// there is nothing to plot.
	Graph func() (graph.Request, bool)
}

// Widgets builds the standard widget row: CPU, memory, network down/up,
// and a clock.
func Widgets(src *Source, clockFormat string, log logger.Logger) []*Widget {
	return []*Widget{
		NewCPUWidget(src, log),
		NewMemoryWidget(src, log),
		NewNetDownWidget(src, log),
		NewNetUpWidget(src, log),
		NewClockWidget(clockFormat, log),
	}
}

// NewCPUWidget shows overall CPU usage and graphs the CPU series.
// Missing stats read as the zero snapshot, so the widget shows "CPU 0%".
func NewCPUWidget(src *Source, log logger.Logger) *Widget {
	cell := poll.NewCell("CPU 0%", func() string {
		snap, _ := src.Last()
		return "CPU " + util.FormatPercent(snap.CPUUsage)
	}).SetLogger(log)

	return &Widget{
		Name:  "cpu",
		Cell:  cell,
		Color: ColorCPU,
		Spark: func(width int) string {
			return RenderSparkline(src.History().CPU(sparkWindow), width, ColorCPU)
		},
		Graph: func() (graph.Request, bool) {
			req := graph.DefaultRequest()
			req.Title = "CPU Usage"
			req.Color = string(ColorCPU)
			req.DataSource = "cpu"
			req.InitialData = src.History().CPU(src.History().Count())
			return req, true
		},
	}
}

// NewMemoryWidget shows memory utilization and graphs the detailed breakdown.
func NewMemoryWidget(src *Source, log logger.Logger) *Widget {
	cell := poll.NewCell("MEM 0%", func() string {
		snap, _ := src.Last()
		return "MEM " + util.FormatPercent(snap.Memory.UsedPercentage)
	}).SetLogger(log)

	return &Widget{
		Name:  "memory",
		Cell:  cell,
		Color: ColorMemory,
		Spark: func(width int) string {
			return RenderSparkline(src.History().Memory(sparkWindow), width, ColorMemory)
		},
		Graph: func() (graph.Request, bool) {
			req := graph.DefaultRequest()
			req.Title = "Memory"
			if snap, ok := src.Last(); ok && snap.Memory.Total > 0 {
				req.Title = "Memory (" + util.FormatKB(snap.Memory.Total) + " total)"
			}
			req.Color = string(ColorMemory)
			req.DataSource = "memory"
			req.Advanced = true
			req.InitialData = src.History().Memory(src.History().Count())
			return req, true
		},
	}
}

// NewNetDownWidget shows download throughput; its graph plots both
// directions as a multi chart.
func NewNetDownWidget(src *Source, log logger.Logger) *Widget {
	cell := poll.NewCell("↓ 0 KB/s", func() string {
		snap, _ := src.Last()
		return "↓ " + util.FormatRate(snap.NetworkDownload)
	}).SetLogger(log)

	return &Widget{
		Name:  "net-down",
		Cell:  cell,
		Color: ColorNetDown,
		Spark: func(width int) string {
			download, _ := src.History().Network(sparkWindow)
			return RenderSparkline(download, width, ColorNetDown)
		},
		Graph: func() (graph.Request, bool) { return networkGraph(src) },
	}
}

// NewNetUpWidget shows upload throughput; same graph as net-down.
func NewNetUpWidget(src *Source, log logger.Logger) *Widget {
	cell := poll.NewCell("↑ 0 KB/s", func() string {
		snap, _ := src.Last()
		return "↑ " + util.FormatRate(snap.NetworkUpload)
	}).SetLogger(log)

	return &Widget{
		Name:  "net-up",
		Cell:  cell,
		Color: ColorNetUp,
		Spark: func(width int) string {
			_, upload := src.History().Network(sparkWindow)
			return RenderSparkline(upload, width, ColorNetUp)
		},
		Graph: func() (graph.Request, bool) { return networkGraph(src) },
	}
}

// NewClockWidget shows wall-clock time in the configured layout.
func NewClockWidget(format string, log logger.Logger) *Widget {
	if format == "" {
		format = "15:04"
	}
	cell := poll.NewCell(time.Now().Format(format), func() string {
		return time.Now().Format(format)
	}).SetLogger(log)

	return &Widget{
		Name:  "clock",
		Cell:  cell,
		Color: ColorClock,
	}
}

// networkGraph builds the two-series throughput request scaled to the
// observed peak, never below the rate floor.
func networkGraph(src *Source) (graph.Request, bool) {
	download, upload := src.History().Network(src.History().Count())

	req := graph.DefaultRequest()
	req.Title = "Network"
	req.Color = string(ColorNetDown)
	req.Color2 = string(ColorNetUp)
	req.DataSource = "network"
	req.MultiChart = true
	req.InitialData = download
	req.InitialData2 = upload
	req.MaxValue = rateCeiling(download, upload)
	return req, true
}

func rateCeiling(series ...[]float64) float64 {
	ceiling := networkRateFloor
	for _, s := range series {
		for _, v := range s {
			if v > ceiling {
				ceiling = v
			}
		}
	}
	return ceiling
}
