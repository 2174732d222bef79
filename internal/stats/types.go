package stats

// Well-known file names inside the stats directory. The collector writes
// them; the bar and any external consumer read them.
const (
	LatestFile  = "latest.json"
	HistoryFile = "history.json"
	SocketFile  = "stats.sock"
	PidFile     = "service.pid"
)

// MemoryStats is the memory portion of a snapshot. All sizes are in KB.
type MemoryStats struct {
	Total          float64 `json:"total"`
	Available      float64 `json:"available"`
	UsedPercentage float64 `json:"used_percentage"`
	Apps           float64 `json:"apps"`
	Cached         float64 `json:"cached"`
	Buffers        float64 `json:"buffers"`
	Slab           float64 `json:"slab"`
	Shmem          float64 `json:"shmem"`
}

// Snapshot is one sample of system utilization as stored in latest.json.
// Rates are in KB/s, percentages in 0-100.
type Snapshot struct {
	Timestamp       int64     `json:"timestamp"` // unix milliseconds
	CPUUsage        float64   `json:"cpu_usage"`
	CPUCores        []float64 `json:"cpu_cores"`
	CPUIOWait       float64   `json:"cpu_iowait"`
	Memory          MemoryStats `json:"memory"`
	NetworkDownload float64   `json:"network_download"`
	NetworkUpload   float64   `json:"network_upload"`
}

// HistoryData is the serialized form of History as stored in history.json
// and served over the stats socket. Each series is oldest-first.
type HistoryData struct {
	CPU             []float64   `json:"cpu"`
	CPUCores        [][]float64 `json:"cpu_cores"`
	CPUIOWait       []float64   `json:"cpu_iowait"`
	Memory          []float64   `json:"memory"`
	MemoryTotal     float64     `json:"memory_total"`
	MemoryApps      []float64   `json:"memory_apps"`
	MemoryCached    []float64   `json:"memory_cached"`
	MemoryBuffers   []float64   `json:"memory_buffers"`
	MemorySlab      []float64   `json:"memory_slab"`
	MemoryShmem     []float64   `json:"memory_shmem"`
	NetworkDownload []float64   `json:"network_download"`
	NetworkUpload   []float64   `json:"network_upload"`
	LastUpdate      int64       `json:"last_update"`
}
