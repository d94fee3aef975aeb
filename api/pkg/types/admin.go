package types

import "time"

// CacheStats mirrors the backend's Redis counters. The client only renders
// these numbers, it never derives anything from them.
type CacheStats struct {
	Hits            int64   `json:"hits"`
	Misses          int64   `json:"misses"`
	HitRate         float64 `json:"hit_rate"`
	Keys            int64   `json:"keys"`
	UsedMemoryBytes uint64  `json:"used_memory_bytes"`
	Evictions       int64   `json:"evictions"`
}

type HealthReport struct {
	Status        string            `json:"status"`
	Services      map[string]string `json:"services"`
	Cache         *CacheStats       `json:"cache,omitempty"`
	UptimeSeconds int64             `json:"uptime_seconds"`
}

// EvaluationReport is the offline ranking-quality snapshot. Keys of the
// at-K maps are the K values as strings ("5", "10").
type EvaluationReport struct {
	PrecisionAtK map[string]float64 `json:"precision_at_k"`
	RecallAtK    map[string]float64 `json:"recall_at_k"`
	MRR          float64            `json:"mrr"`
	NDCG         float64            `json:"ndcg"`
	Coverage     float64            `json:"coverage"`
	SampleCount  int64              `json:"sample_count"`
	ComputedAt   time.Time          `json:"computed_at"`
}

type RouteStats struct {
	Route        string  `json:"route"`
	RequestCount int64   `json:"request_count"`
	ErrorRate    float64 `json:"error_rate"`
	P50Millis    float64 `json:"p50_ms"`
	P95Millis    float64 `json:"p95_ms"`
	P99Millis    float64 `json:"p99_ms"`
}

type PerformanceReport struct {
	WindowSeconds int64        `json:"window_seconds"`
	Routes        []RouteStats `json:"routes"`
}

type BatchJob struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Status    BatchJobStatus `json:"status"`
	Processed int64          `json:"processed"`
	Failed    int64          `json:"failed"`
	Total     int64          `json:"total"`
	Error     string         `json:"error,omitempty"`
	Started   time.Time      `json:"started"`
	Finished  *time.Time     `json:"finished,omitempty"`
}

type BatchTriggerRequest struct {
	Type string `json:"type"`
}

type BatchTriggerResponse struct {
	Job *BatchJob `json:"job"`
}

// BatchCheckResponse is returned by POST /admin/batches/check, which asks
// the backend to reconcile the status of all non-terminal jobs.
type BatchCheckResponse struct {
	Checked int         `json:"checked"`
	Jobs    []*BatchJob `json:"jobs"`
}
