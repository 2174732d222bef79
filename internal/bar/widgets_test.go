package bar

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statbar/statbar/internal/logger"
	"github.com/statbar/statbar/internal/stats"
)

func newTestSource(t *testing.T, dir string) *Source {
	t.Helper()
	return NewSource(stats.NewReader(dir, logger.Noop()), 10)
}

func writeLatest(t *testing.T, dir string, snap stats.Snapshot) {
	t.Helper()
	data, err := json.Marshal(snap)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, stats.LatestFile), data, 0o644))
}

func sampleAll(widgets []*Widget) {
	for _, w := range widgets {
		w.Cell.Sample()
	}
}

func TestWidgetsShowZeroDefaultsWithoutData(t *testing.T) {
	src := newTestSource(t, t.TempDir())
	widgets := Widgets(src, "15:04", logger.Noop())

	src.Refresh()
	sampleAll(widgets)

	assert.Equal(t, "CPU 0%", widgets[0].Cell.Value())
	assert.Equal(t, "MEM 0%", widgets[1].Cell.Value())
	assert.Equal(t, "↓ 0 KB/s", widgets[2].Cell.Value())
	assert.Equal(t, "↑ 0 KB/s", widgets[3].Cell.Value())
}

func TestWidgetsFormatSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeLatest(t, dir, stats.Snapshot{
		Timestamp:       1700000000000,
		CPUUsage:        42.7,
		Memory:          stats.MemoryStats{UsedPercentage: 62.3, Total: 16000000},
		NetworkDownload: 512,
		NetworkUpload:   2048,
	})

	src := newTestSource(t, dir)
	widgets := Widgets(src, "15:04", logger.Noop())

	src.Refresh()
	sampleAll(widgets)

	assert.Equal(t, "CPU 43%", widgets[0].Cell.Value())
	assert.Equal(t, "MEM 62%", widgets[1].Cell.Value())
	assert.Equal(t, "↓ 512 KB/s", widgets[2].Cell.Value())
	assert.Equal(t, "↑ 2.0 MB/s", widgets[3].Cell.Value())
}

func TestWidgetsDegradeWhenDataDisappears(t *testing.T) {
	dir := t.TempDir()
	writeLatest(t, dir, stats.Snapshot{CPUUsage: 50})

	src := newTestSource(t, dir)
	widgets := Widgets(src, "15:04", logger.Noop())

	src.Refresh()
	sampleAll(widgets)
	require.Equal(t, "CPU 50%", widgets[0].Cell.Value())

	// Collector stops; the file goes away mid-session and the widget falls
	// back to the zero default rather than a stale number.
	require.NoError(t, os.Remove(filepath.Join(dir, stats.LatestFile)))

	src.Refresh()
	sampleAll(widgets)
	assert.Equal(t, "CPU 0%", widgets[0].Cell.Value())
}

func TestClockWidget(t *testing.T) {
	w := NewClockWidget("15:04", logger.Noop())

	w.Cell.Sample()
	assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}$`), w.Cell.Value())

	// The clock neither sparks nor graphs.
	assert.Nil(t, w.Spark)
	assert.Nil(t, w.Graph)
}

func TestClockWidgetDefaultFormat(t *testing.T) {
	w := NewClockWidget("", logger.Noop())
	w.Cell.Sample()
	assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}$`), w.Cell.Value())
}

func TestCPUGraphRequest(t *testing.T) {
	dir := t.TempDir()
	writeLatest(t, dir, stats.Snapshot{CPUUsage: 42})

	src := newTestSource(t, dir)
	src.Refresh()

	w := NewCPUWidget(src, logger.Noop())
	req, ok := w.Graph()

	require.True(t, ok)
	assert.Equal(t, "cpu", req.DataSource)
	assert.Equal(t, 100.0, req.MaxValue)
	assert.Equal(t, []float64{42}, req.InitialData)
	assert.False(t, req.MultiChart)
}

func TestMemoryGraphRequestIsAdvanced(t *testing.T) {
	src := newTestSource(t, t.TempDir())
	w := NewMemoryWidget(src, logger.Noop())

	req, ok := w.Graph()
	require.True(t, ok)
	assert.Equal(t, "memory", req.DataSource)
	assert.True(t, req.Advanced)
}

func TestNetworkGraphRequest(t *testing.T) {
	dir := t.TempDir()
	src := newTestSource(t, dir)

	writeLatest(t, dir, stats.Snapshot{NetworkDownload: 100, NetworkUpload: 50})
	src.Refresh()
	writeLatest(t, dir, stats.Snapshot{NetworkDownload: 2048, NetworkUpload: 80})
	src.Refresh()

	w := NewNetDownWidget(src, logger.Noop())
	req, ok := w.Graph()

	require.True(t, ok)
	assert.Equal(t, "network", req.DataSource)
	assert.True(t, req.MultiChart)
	assert.Equal(t, []float64{100, 2048}, req.InitialData)
	assert.Equal(t, []float64{50, 80}, req.InitialData2)
	// Scaled to the observed peak.
	assert.Equal(t, 2048.0, req.MaxValue)
}

func TestNetworkGraphRateFloor(t *testing.T) {
	dir := t.TempDir()
	src := newTestSource(t, dir)
	writeLatest(t, dir, stats.Snapshot{NetworkDownload: 5, NetworkUpload: 2})
	src.Refresh()

	req, ok := networkGraph(src)
	require.True(t, ok)

	// Quiet links still get a readable fixed scale.
	assert.Equal(t, networkRateFloor, req.MaxValue)
}

func TestSourceSeedFromHistory(t *testing.T) {
	dir := t.TempDir()

	hist := stats.HistoryData{
		CPU:             []float64{10, 20, 30},
		Memory:          []float64{40, 50, 60},
		MemoryTotal:     16000000,
		NetworkDownload: []float64{1, 2, 3},
		NetworkUpload:   []float64{4, 5, 6},
		LastUpdate:      1234,
	}
	data, err := json.Marshal(hist)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, stats.HistoryFile), data, 0o644))

	src := newTestSource(t, dir)
	require.True(t, src.Seed())

	assert.Equal(t, []float64{10, 20, 30}, src.History().CPU(10))
	assert.Equal(t, []float64{40, 50, 60}, src.History().Memory(10))
}

func TestSourceSeedWithoutCollector(t *testing.T) {
	src := newTestSource(t, t.TempDir())
	assert.False(t, src.Seed())
	assert.Equal(t, 0, src.History().Count())
}

func TestSourceRefreshAccumulatesHistory(t *testing.T) {
	dir := t.TempDir()
	src := newTestSource(t, dir)

	for i, cpu := range []float64{10, 20, 30} {
		writeLatest(t, dir, stats.Snapshot{Timestamp: int64(i), CPUUsage: cpu})
		src.Refresh()
	}

	assert.Equal(t, []float64{10, 20, 30}, src.History().CPU(10))

	snap, ok := src.Last()
	require.True(t, ok)
	assert.Equal(t, 30.0, snap.CPUUsage)
}
