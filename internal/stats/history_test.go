package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeries(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{"default size", 0, DefaultHistorySize},
		{"negative size", -1, DefaultHistorySize},
		{"custom size", 100, 100},
		{"small size", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSeries(tt.size)
			assert.Equal(t, tt.expected, s.size)
			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestSeriesPushAndLast(t *testing.T) {
	s := NewSeries(10)

	for i := 0; i < 5; i++ {
		s.Push(float64(i * 10))
	}

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, []float64{0, 10, 20, 30, 40}, s.Last(5))

	// Asking for more than stored returns only what exists.
	assert.Equal(t, []float64{0, 10, 20, 30, 40}, s.Last(100))

	// Most recent subset.
	assert.Equal(t, []float64{30, 40}, s.Last(2))
}

func TestSeriesOverflow(t *testing.T) {
	s := NewSeries(5)

	for i := 0; i < 8; i++ {
		s.Push(float64(i))
	}

	// Oldest values evicted, newest retained in order.
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, []float64{3, 4, 5, 6, 7}, s.All())
}

func TestSeriesPadded(t *testing.T) {
	s := NewSeries(5)
	s.Push(1)
	s.Push(2)

	// Left-padded with zeros to full capacity.
	assert.Equal(t, []float64{0, 0, 0, 1, 2}, s.padded())
}

func TestSeriesEmpty(t *testing.T) {
	s := NewSeries(5)

	assert.Nil(t, s.Last(3))
	assert.Nil(t, s.All())
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, s.padded())
}

func TestHistoryPush(t *testing.T) {
	h := NewHistory(10)

	h.Push(Snapshot{
		Timestamp: 1000,
		CPUUsage:  50,
		CPUCores:  []float64{40, 60},
		Memory:    MemoryStats{UsedPercentage: 62, Total: 16000000},
	})

	assert.Equal(t, 1, h.Count())
	assert.Equal(t, []float64{50}, h.CPU(10))
	assert.Equal(t, []float64{62}, h.Memory(10))
}

func TestHistoryNetworkSeries(t *testing.T) {
	h := NewHistory(10)

	for i := 0; i < 3; i++ {
		h.Push(Snapshot{
			NetworkDownload: float64(i * 100),
			NetworkUpload:   float64(i * 10),
		})
	}

	download, upload := h.Network(10)
	assert.Equal(t, []float64{0, 100, 200}, download)
	assert.Equal(t, []float64{0, 10, 20}, upload)
}

func TestHistoryLazyCoreGrowth(t *testing.T) {
	h := NewHistory(10)

	// First sample with no core data, then one that reveals 4 cores.
	h.Push(Snapshot{CPUUsage: 10})
	h.Push(Snapshot{CPUUsage: 20, CPUCores: []float64{1, 2, 3, 4}})

	data := h.Data()
	require.Len(t, data.CPUCores, 4)
	// Core series only saw one sample each, zero-padded to capacity.
	assert.Equal(t, 10, len(data.CPUCores[0]))
	assert.Equal(t, 1.0, data.CPUCores[0][9])
}

func TestHistoryDataSerialization(t *testing.T) {
	h := NewHistory(5)

	h.Push(Snapshot{
		Timestamp:       1234,
		CPUUsage:        25,
		CPUIOWait:       2,
		Memory:          MemoryStats{UsedPercentage: 50, Total: 8000000, Apps: 3000000},
		NetworkDownload: 100,
		NetworkUpload:   20,
	})

	data := h.Data()

	// All series zero-padded to capacity, newest at the end.
	assert.Equal(t, []float64{0, 0, 0, 0, 25}, data.CPU)
	assert.Equal(t, []float64{0, 0, 0, 0, 2}, data.CPUIOWait)
	assert.Equal(t, []float64{0, 0, 0, 0, 50}, data.Memory)
	assert.Equal(t, []float64{0, 0, 0, 0, 100}, data.NetworkDownload)
	assert.Equal(t, []float64{0, 0, 0, 0, 20}, data.NetworkUpload)
	assert.Equal(t, 8000000.0, data.MemoryTotal)
	assert.Equal(t, int64(1234), data.LastUpdate)
}
