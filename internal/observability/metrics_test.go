package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRequestAggregatesLatency(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordRequest("/menu", "GET", 200, 20*time.Millisecond)
	metrics.RecordRequest("/menu", "GET", 200, 40*time.Millisecond)
	metrics.RecordRequest("/menu", "GET", 200, 90*time.Millisecond)

	requests, _ := metrics.Snapshot()
	stats, ok := requests["/menu|GET|200"]
	require.True(t, ok)
	assert.Equal(t, int64(3), stats.Count)
	assert.Equal(t, int64(150), stats.TotalMillis)
	assert.Equal(t, int64(90), stats.MaxMillis)
	assert.Equal(t, int64(50), stats.AvgMillis)
}

func TestRecordRequestKeysByStatus(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordRequest("/menu", "GET", 200, time.Millisecond)
	metrics.RecordRequest("/menu", "GET", 401, time.Millisecond)

	requests, _ := metrics.Snapshot()
	assert.Len(t, requests, 2)
}

func TestRecordError(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordError("/employees/1", "GET", "EMPLOYEE_NOT_FOUND")
	metrics.RecordError("/employees/1", "GET", "EMPLOYEE_NOT_FOUND")

	_, errs := metrics.Snapshot()
	assert.Equal(t, int64(2), errs["/employees/1|GET|EMPLOYEE_NOT_FOUND"])
}

func TestNilMetricsAreSafe(t *testing.T) {
	var metrics *Metrics
	metrics.RecordRequest("/menu", "GET", 200, time.Millisecond)
	metrics.RecordError("/menu", "GET", "INTERNAL_ERROR")

	requests, errs := metrics.Snapshot()
	assert.Nil(t, requests)
	assert.Nil(t, errs)
}
