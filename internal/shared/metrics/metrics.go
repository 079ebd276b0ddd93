package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	uploadsAcceptedTotal     atomic.Uint64
	uploadsRejectedTotal     atomic.Uint64
	uploadsFailedTotal       atomic.Uint64
	notificationsFailedTotal atomic.Uint64

	uploadDuration = newHistogram([]float64{25, 50, 100, 250, 500, 1000, 2500, 5000, 10000})
)

// IncUploadAccepted counts an upload that was stored and recorded.
func IncUploadAccepted() {
	uploadsAcceptedTotal.Add(1)
}

// IncUploadRejected counts a request refused with a client error.
func IncUploadRejected() {
	uploadsRejectedTotal.Add(1)
}

// IncUploadFailed counts a request that failed on a dependency or internal fault.
func IncUploadFailed() {
	uploadsFailedTotal.Add(1)
}

// IncNotificationFailed counts a swallowed notification failure.
func IncNotificationFailed() {
	notificationsFailedTotal.Add(1)
}

// ObserveUploadDurationMs records a request duration in milliseconds.
func ObserveUploadDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	uploadDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "uploads_accepted_total", "Total uploads stored and recorded", uploadsAcceptedTotal.Load())
	writeCounter(&buf, "uploads_rejected_total", "Total uploads rejected with a client error", uploadsRejectedTotal.Load())
	writeCounter(&buf, "uploads_failed_total", "Total uploads failed on a dependency", uploadsFailedTotal.Load())
	writeCounter(&buf, "notifications_failed_total", "Total notification publishes that failed", notificationsFailedTotal.Load())
	writeHistogram(&buf, "upload_duration_ms", "Upload request duration in milliseconds", uploadDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	// Observe already counts each value into every bucket it fits.
	for i, bound := range snap.buckets {
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), snap.counts[i])
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
