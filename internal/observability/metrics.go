package observability

import (
	"strconv"
	"sync"
	"time"
)

// RequestStats aggregates latency per route key.
type RequestStats struct {
	Count       int64 `json:"count"`
	TotalMillis int64 `json:"total_ms"`
	MaxMillis   int64 `json:"max_ms"`
	AvgMillis   int64 `json:"avg_ms"`
}

type requestAggregate struct {
	count       int64
	totalMillis int64
	maxMillis   int64
}

// Metrics provides basic in-memory counters with request latency.
type Metrics struct {
	mu         sync.Mutex
	requests   map[string]*requestAggregate
	errorCount map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requests:   make(map[string]*requestAggregate),
		errorCount: make(map[string]int64),
	}
}

// RecordRequest accumulates count and latency for the route.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	millis := duration.Milliseconds()

	m.mu.Lock()
	defer m.mu.Unlock()
	agg, ok := m.requests[key]
	if !ok {
		agg = &requestAggregate{}
		m.requests[key] = agg
	}
	agg.count++
	agg.totalMillis += millis
	if millis > agg.maxMillis {
		agg.maxMillis = millis
	}
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// Snapshot copies current counters for the diagnostics endpoint.
func (m *Metrics) Snapshot() (requests map[string]RequestStats, errs map[string]int64) {
	if m == nil {
		return nil, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	requests = make(map[string]RequestStats, len(m.requests))
	for key, agg := range m.requests {
		stats := RequestStats{
			Count:       agg.count,
			TotalMillis: agg.totalMillis,
			MaxMillis:   agg.maxMillis,
		}
		if agg.count > 0 {
			stats.AvgMillis = agg.totalMillis / agg.count
		}
		requests[key] = stats
	}
	errs = make(map[string]int64, len(m.errorCount))
	for k, v := range m.errorCount {
		errs[k] = v
	}
	return requests, errs
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
