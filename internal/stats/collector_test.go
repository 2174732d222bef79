package stats

import (
	"testing"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statbar/statbar/internal/logger"
)

func TestClampPercent(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"negative clamps to zero", -5, 0},
		{"zero passes", 0, 0},
		{"normal value passes", 42.5, 42.5},
		{"hundred passes", 100, 100},
		{"overshoot clamps to hundred", 103.2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, clampPercent(tt.input))
		})
	}
}

func TestCollectorSample(t *testing.T) {
	c := NewCollector(logger.Noop())

	snap, err := c.Sample()
	require.NoError(t, err)

	assert.Greater(t, snap.Timestamp, int64(0))
	assert.GreaterOrEqual(t, snap.CPUUsage, 0.0)
	assert.LessOrEqual(t, snap.CPUUsage, 100.0)
	assert.GreaterOrEqual(t, snap.Memory.UsedPercentage, 0.0)
	assert.LessOrEqual(t, snap.Memory.UsedPercentage, 100.0)
	assert.Greater(t, snap.Memory.Total, 0.0)

	// Rate metrics are deltas; the first sample reports zero.
	assert.Equal(t, 0.0, snap.NetworkDownload)
	assert.Equal(t, 0.0, snap.NetworkUpload)
	assert.Equal(t, 0.0, snap.CPUIOWait)
}

func TestCollectorSecondSampleHasRates(t *testing.T) {
	c := NewCollector(logger.Noop())

	_, err := c.Sample()
	require.NoError(t, err)

	snap, err := c.Sample()
	require.NoError(t, err)

	// Rates can legitimately be zero on an idle box; they just must not be
	// negative or absurd.
	assert.GreaterOrEqual(t, snap.NetworkDownload, 0.0)
	assert.GreaterOrEqual(t, snap.NetworkUpload, 0.0)
	assert.GreaterOrEqual(t, snap.CPUIOWait, 0.0)
	assert.LessOrEqual(t, snap.CPUIOWait, 100.0)
}

func TestTotalCPUTime(t *testing.T) {
	prev := cpu.TimesStat{User: 10, System: 5, Idle: 100, Iowait: 2}
	cur := cpu.TimesStat{User: 20, System: 10, Idle: 150, Iowait: 4}

	assert.Greater(t, totalCPUTime(cur), totalCPUTime(prev))
	assert.Equal(t, 117.0, totalCPUTime(prev))
}
