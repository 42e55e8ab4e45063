package editor

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

const latencySamples = 256

// Metrics counts what the editor did. Counters are atomic so the app can
// read a snapshot from another goroutine.
type Metrics struct {
	keyEvents atomic.Uint64
	actions   atomic.Uint64
	edits     atomic.Uint64
	errors    atomic.Uint64

	peakKeyLatency atomic.Int64

	mu         sync.Mutex
	latencies  [latencySamples]time.Duration
	latencyIdx int
	samples    int

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordKeyEvent records a dispatched key with its processing time.
func (m *Metrics) RecordKeyEvent(latency time.Duration) {
	m.keyEvents.Add(1)

	ns := latency.Nanoseconds()
	for {
		current := m.peakKeyLatency.Load()
		if ns <= current || m.peakKeyLatency.CompareAndSwap(current, ns) {
			break
		}
	}

	m.mu.Lock()
	m.latencies[m.latencyIdx] = latency
	m.latencyIdx = (m.latencyIdx + 1) % latencySamples
	m.samples = min(m.samples+1, latencySamples)
	m.mu.Unlock()
}

// RecordAction records an executed action.
func (m *Metrics) RecordAction() {
	m.actions.Add(1)
}

// RecordEdit records a buffer mutation.
func (m *Metrics) RecordEdit() {
	m.edits.Add(1)
}

// RecordError records a buffer operation that failed and was absorbed.
func (m *Metrics) RecordError() {
	m.errors.Add(1)
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	KeyEvents uint64
	Actions   uint64
	Edits     uint64
	Errors    uint64

	AvgKeyLatency  time.Duration
	P99KeyLatency  time.Duration
	PeakKeyLatency time.Duration

	Uptime time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	recent := slices.Clone(m.latencies[:m.samples])
	m.mu.Unlock()

	snap := MetricsSnapshot{
		KeyEvents:      m.keyEvents.Load(),
		Actions:        m.actions.Load(),
		Edits:          m.edits.Load(),
		Errors:         m.errors.Load(),
		PeakKeyLatency: time.Duration(m.peakKeyLatency.Load()),
		Uptime:         time.Since(m.startTime),
	}
	snap.AvgKeyLatency, snap.P99KeyLatency = latencyStats(recent)
	return snap
}

func latencyStats(latencies []time.Duration) (avg, p99 time.Duration) {
	if len(latencies) == 0 {
		return 0, 0
	}
	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}
	slices.Sort(latencies)
	idx := min(int(float64(len(latencies))*0.99), len(latencies)-1)
	return sum / time.Duration(len(latencies)), latencies[idx]
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.keyEvents.Store(0)
	m.actions.Store(0)
	m.edits.Store(0)
	m.errors.Store(0)
	m.peakKeyLatency.Store(0)

	m.mu.Lock()
	m.latencyIdx = 0
	m.samples = 0
	m.startTime = time.Now()
	m.mu.Unlock()
}
