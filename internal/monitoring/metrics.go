// Package monitoring tracks in-process request metrics and health checks,
// exposed on /metrics and /healthz.
package monitoring

import (
	"context"
	"net/http"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type Metrics struct {
	mu            sync.RWMutex
	requestCount  int64
	errorCount    int64
	statusCodes   map[string]int64
	endpoints     map[string]int64
	totalDuration time.Duration
	startTime     time.Time
	lastRequest   time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		statusCodes: make(map[string]int64),
		endpoints:   make(map[string]int64),
		startTime:   time.Now(),
	}
}

// Middleware records counts, status codes and durations per request.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		m.mu.Lock()
		m.requestCount++
		m.totalDuration += duration
		m.lastRequest = time.Now()
		m.statusCodes[strconv.Itoa(c.Writer.Status())]++
		m.endpoints[c.Request.Method+" "+c.FullPath()]++
		if c.Writer.Status() >= http.StatusInternalServerError {
			m.errorCount++
		}
		m.mu.Unlock()
	}
}

// Snapshot returns a copy of the counters for the /metrics endpoint.
func (m *Metrics) Snapshot() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	statusCodes := make(map[string]int64, len(m.statusCodes))
	for k, v := range m.statusCodes {
		statusCodes[k] = v
	}
	endpoints := make(map[string]int64, len(m.endpoints))
	for k, v := range m.endpoints {
		endpoints[k] = v
	}

	var avgMs float64
	if m.requestCount > 0 {
		avgMs = float64(m.totalDuration.Milliseconds()) / float64(m.requestCount)
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return map[string]interface{}{
		"request_count":    m.requestCount,
		"error_count":      m.errorCount,
		"avg_duration_ms":  avgMs,
		"status_codes":     statusCodes,
		"endpoint_calls":   endpoints,
		"uptime_seconds":   time.Since(m.startTime).Seconds(),
		"last_request":     m.lastRequest,
		"goroutines":       runtime.NumGoroutine(),
		"heap_alloc_bytes": mem.HeapAlloc,
	}
}

func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, m.Snapshot())
	}
}

type HealthCheckFunc func(ctx context.Context) error

type HealthChecker struct {
	mu     sync.RWMutex
	checks map[string]HealthCheckFunc
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{checks: make(map[string]HealthCheckFunc)}
}

func (h *HealthChecker) Register(name string, check HealthCheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = check
}

// Handler runs every registered check with a short deadline and reports
// 503 when any of them fails.
func (h *HealthChecker) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		h.mu.RLock()
		names := make([]string, 0, len(h.checks))
		for name := range h.checks {
			names = append(names, name)
		}
		checks := make(map[string]HealthCheckFunc, len(h.checks))
		for name, fn := range h.checks {
			checks[name] = fn
		}
		h.mu.RUnlock()

		status := http.StatusOK
		results := make(map[string]string, len(names))
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				results[name] = err.Error()
				status = http.StatusServiceUnavailable
			} else {
				results[name] = "ok"
			}
		}

		c.JSON(status, gin.H{
			"status": http.StatusText(status),
			"checks": results,
		})
	}
}
