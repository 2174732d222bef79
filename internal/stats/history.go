package stats

import "sync"

// DefaultHistorySize is the default number of samples retained per series.
const DefaultHistorySize = 60

// Series is a fixed-size ring buffer of float64 samples.
// It is not safe for concurrent use; History adds the locking.
type Series struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewSeries creates a ring buffer with the given capacity.
func NewSeries(size int) *Series {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &Series{
		data: make([]float64, size),
		size: size,
	}
}

// Push adds a value, evicting the oldest when full.
func (s *Series) Push(value float64) {
	s.data[s.head] = value
	s.head = (s.head + 1) % s.size
	if s.count < s.size {
		s.count++
	}
}

// Len returns the number of stored values.
func (s *Series) Len() int {
	return s.count
}

// Last returns the last count values in chronological order (oldest first).
func (s *Series) Last(count int) []float64 {
	if count <= 0 || s.count == 0 {
		return nil
	}
	if count > s.count {
		count = s.count
	}

	result := make([]float64, count)

	// head points to the next write position, so the most recent value is
	// at head-1; walk back count values from there.
	start := (s.head - count + s.size) % s.size
	for i := 0; i < count; i++ {
		result[i] = s.data[(start+i)%s.size]
	}
	return result
}

// All returns every stored value in chronological order.
func (s *Series) All() []float64 {
	return s.Last(s.count)
}

// padded returns all values left-padded with zeros to the full capacity,
// matching the serialized format external consumers expect.
func (s *Series) padded() []float64 {
	result := make([]float64, s.size)
	values := s.All()
	copy(result[s.size-len(values):], values)
	return result
}

// History accumulates snapshot samples into fixed-size series for every
// metric the graph renderer can plot. It is safe for concurrent use.
type History struct {
	mu   sync.RWMutex
	size int

	cpu       *Series
	cpuCores  []*Series
	cpuIOWait *Series

	memory        *Series
	memoryTotal   float64
	memoryApps    *Series
	memoryCached  *Series
	memoryBuffers *Series
	memorySlab    *Series
	memoryShmem   *Series

	networkDownload *Series
	networkUpload   *Series

	lastUpdate int64
}

// NewHistory creates a history tracker retaining size samples per series.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size:            size,
		cpu:             NewSeries(size),
		cpuIOWait:       NewSeries(size),
		memory:          NewSeries(size),
		memoryApps:      NewSeries(size),
		memoryCached:    NewSeries(size),
		memoryBuffers:   NewSeries(size),
		memorySlab:      NewSeries(size),
		memoryShmem:     NewSeries(size),
		networkDownload: NewSeries(size),
		networkUpload:   NewSeries(size),
	}
}

// Push records one snapshot across all series.
func (h *History) Push(snap Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cpu.Push(snap.CPUUsage)
	h.cpuIOWait.Push(snap.CPUIOWait)

	// Grow per-core series lazily; core count can only be learned from the
	// first populated sample.
	for len(h.cpuCores) < len(snap.CPUCores) {
		h.cpuCores = append(h.cpuCores, NewSeries(h.size))
	}
	for i, usage := range snap.CPUCores {
		h.cpuCores[i].Push(usage)
	}

	h.memory.Push(snap.Memory.UsedPercentage)
	h.memoryTotal = snap.Memory.Total
	h.memoryApps.Push(snap.Memory.Apps)
	h.memoryCached.Push(snap.Memory.Cached)
	h.memoryBuffers.Push(snap.Memory.Buffers)
	h.memorySlab.Push(snap.Memory.Slab)
	h.memoryShmem.Push(snap.Memory.Shmem)

	h.networkDownload.Push(snap.NetworkDownload)
	h.networkUpload.Push(snap.NetworkUpload)

	h.lastUpdate = snap.Timestamp
}

// CPU returns the last count CPU usage samples, oldest first.
func (h *History) CPU(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cpu.Last(count)
}

// Memory returns the last count memory usage samples, oldest first.
func (h *History) Memory(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.memory.Last(count)
}

// Network returns the last count download and upload samples, oldest first.
func (h *History) Network(count int) (download, upload []float64) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.networkDownload.Last(count), h.networkUpload.Last(count)
}

// Count returns the number of samples recorded so far.
func (h *History) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cpu.Len()
}

// Data serializes the full history in the external history.json format.
// Series are zero-padded to full capacity so consumers always see a fixed
// window, matching what a fresh collector would have written.
func (h *History) Data() HistoryData {
	h.mu.RLock()
	defer h.mu.RUnlock()

	cores := make([][]float64, len(h.cpuCores))
	for i, s := range h.cpuCores {
		cores[i] = s.padded()
	}

	return HistoryData{
		CPU:             h.cpu.padded(),
		CPUCores:        cores,
		CPUIOWait:       h.cpuIOWait.padded(),
		Memory:          h.memory.padded(),
		MemoryTotal:     h.memoryTotal,
		MemoryApps:      h.memoryApps.padded(),
		MemoryCached:    h.memoryCached.padded(),
		MemoryBuffers:   h.memoryBuffers.padded(),
		MemorySlab:      h.memorySlab.padded(),
		MemoryShmem:     h.memoryShmem.padded(),
		NetworkDownload: h.networkDownload.padded(),
		NetworkUpload:   h.networkUpload.padded(),
		LastUpdate:      h.lastUpdate,
	}
}
