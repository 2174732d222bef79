package stats

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	gopsnet "github.com/shirou/gopsutil/v4/net"

	"github.com/statbar/statbar/internal/errors"
	"github.com/statbar/statbar/internal/logger"
)

// Collector samples system utilization into Snapshots.
//
// Rate metrics (network throughput, iowait share) are deltas against the
// previous call, so the first Sample of a run reports them as zero.
type Collector struct {
	log logger.Logger

	prevCPUTimes *cpu.TimesStat
	prevNetRecv  uint64
	prevNetSent  uint64
	prevNetAt    time.Time
}

// NewCollector creates a collector. A nil log defaults to the package logger.
func NewCollector(log logger.Logger) *Collector {
	if log == nil {
		log = logger.Default()
	}
	return &Collector{log: log}
}

// Sample collects one snapshot. Individual probe failures degrade that
// portion of the snapshot to zeros rather than failing the whole sample;
// only a fully unusable CPU probe is reported as an error.
func (c *Collector) Sample() (Snapshot, error) {
	snap := Snapshot{
		Timestamp: time.Now().UnixMilli(),
	}

	overall, err := cpu.Percent(0, false)
	if err != nil {
		return snap, errors.WrapWithCode(err, errors.ErrStats,
			"Couldn't read CPU usage",
			"Check that /proc is mounted and readable")
	}
	if len(overall) > 0 {
		snap.CPUUsage = clampPercent(overall[0])
	}

	if cores, err := cpu.Percent(0, true); err == nil {
		snap.CPUCores = make([]float64, len(cores))
		for i, usage := range cores {
			snap.CPUCores[i] = clampPercent(usage)
		}
	} else {
		c.log.Debug("per-core cpu probe failed: %v", err)
	}

	snap.CPUIOWait = c.sampleIOWait()
	snap.Memory = c.sampleMemory()
	snap.NetworkDownload, snap.NetworkUpload = c.sampleNetwork()

	return snap, nil
}

// sampleIOWait computes the iowait share of total CPU time since the
// previous sample, as a 0-100 percentage.
func (c *Collector) sampleIOWait() float64 {
	times, err := cpu.Times(false)
	if err != nil || len(times) == 0 {
		c.log.Debug("cpu times probe failed: %v", err)
		return 0
	}

	cur := times[0]
	prev := c.prevCPUTimes
	c.prevCPUTimes = &cur

	if prev == nil {
		return 0
	}

	totalDelta := totalCPUTime(cur) - totalCPUTime(*prev)
	iowaitDelta := cur.Iowait - prev.Iowait
	if totalDelta <= 0 || iowaitDelta < 0 {
		return 0
	}
	return clampPercent(iowaitDelta / totalDelta * 100)
}

func totalCPUTime(t cpu.TimesStat) float64 {
	return t.User + t.System + t.Idle + t.Nice + t.Iowait + t.Irq + t.Softirq + t.Steal
}

// sampleMemory reads memory utilization. Sizes are converted to KB to match
// the shared snapshot schema.
func (c *Collector) sampleMemory() MemoryStats {
	vm, err := mem.VirtualMemory()
	if err != nil {
		c.log.Debug("memory probe failed: %v", err)
		return MemoryStats{}
	}

	const kb = 1024
	stats := MemoryStats{
		Total:          float64(vm.Total) / kb,
		Available:      float64(vm.Available) / kb,
		UsedPercentage: clampPercent(vm.UsedPercent),
		Cached:         float64(vm.Cached) / kb,
		Buffers:        float64(vm.Buffers) / kb,
		Slab:           float64(vm.Slab) / kb,
		Shmem:          float64(vm.Shared) / kb,
	}

	// Application memory: what's used once caches, buffers, and kernel
	// slabs are taken out.
	apps := float64(vm.Used) - float64(vm.Cached) - float64(vm.Buffers) - float64(vm.Slab)
	if apps < 0 {
		apps = float64(vm.Used)
	}
	stats.Apps = apps / kb

	return stats
}

// sampleNetwork sums non-loopback interface counters and converts the delta
// since the previous call into KB/s.
func (c *Collector) sampleNetwork() (download, upload float64) {
	counters, err := gopsnet.IOCounters(true)
	if err != nil {
		c.log.Debug("network probe failed: %v", err)
		return 0, 0
	}

	var recv, sent uint64
	for _, nic := range counters {
		if nic.Name == "lo" || nic.Name == "lo0" {
			continue
		}
		recv += nic.BytesRecv
		sent += nic.BytesSent
	}

	now := time.Now()
	prevRecv, prevSent, prevAt := c.prevNetRecv, c.prevNetSent, c.prevNetAt
	c.prevNetRecv, c.prevNetSent, c.prevNetAt = recv, sent, now

	if prevAt.IsZero() {
		return 0, 0
	}

	elapsed := now.Sub(prevAt).Seconds()
	if elapsed <= 0 {
		return 0, 0
	}

	// Counter reset (interface bounce) shows up as a negative delta.
	if recv >= prevRecv {
		download = float64(recv-prevRecv) / 1024 / elapsed
	}
	if sent >= prevSent {
		upload = float64(sent-prevSent) / 1024 / elapsed
	}
	return download, upload
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
