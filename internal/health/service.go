package health

import (
	"runtime"
	"sync/atomic"
	"time"
)

// Service tracks request traffic in-process. The binary is stateless, so
// plain atomic counters are enough; they reset on restart.
type Service struct {
	start   time.Time
	total   atomic.Int64
	success atomic.Int64
	failed  atomic.Int64
}

func NewService() *Service {
	return &Service{start: time.Now()}
}

// Record implements middleware.MetricsRecorder. Status codes below 400 count
// as success.
func (s *Service) Record(statusCode int) {
	s.total.Add(1)
	if statusCode < 400 {
		s.success.Add(1)
	} else {
		s.failed.Add(1)
	}
}

// Snapshot is the health payload for GET /health/json.
type Snapshot struct {
	Status  string      `json:"status"`
	Runtime RuntimeInfo `json:"runtime"`
	Traffic TrafficInfo `json:"traffic"`
}

type RuntimeInfo struct {
	UptimeSeconds int64  `json:"uptimeSeconds"`
	Goroutines    int    `json:"goroutines"`
	Platform      string `json:"platform"`
	GoVersion     string `json:"goVersion"`
}

type TrafficInfo struct {
	TotalRequests int64 `json:"totalRequests"`
	SuccessCount  int64 `json:"successCount"`
	FailedCount   int64 `json:"failedCount"`
}

// Collect gathers the current health snapshot.
func (s *Service) Collect() Snapshot {
	return Snapshot{
		Status: "ok",
		Runtime: RuntimeInfo{
			UptimeSeconds: int64(time.Since(s.start).Seconds()),
			Goroutines:    runtime.NumGoroutine(),
			Platform:      runtime.GOOS,
			GoVersion:     runtime.Version(),
		},
		Traffic: TrafficInfo{
			TotalRequests: s.total.Load(),
			SuccessCount:  s.success.Load(),
			FailedCount:   s.failed.Load(),
		},
	}
}

// Reset zeroes the traffic counters and restarts the uptime clock.
func (s *Service) Reset() {
	s.start = time.Now()
	s.total.Store(0)
	s.success.Store(0)
	s.failed.Store(0)
}
