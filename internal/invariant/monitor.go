package invariant

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/AKASH-tech234/paceline/internal/taxonomy"
)

// latencyWindowSize bounds the rolling latency buffer.
const latencyWindowSize = 1000

// Observation describes one pipeline step for cross-checking.
type Observation struct {
	Latency time.Duration
	// PositiveOutcome marks an event where the subject succeeded; a
	// success must never carry a diagnosis.
	PositiveOutcome bool
	Category        taxonomy.Category
	PatternID       string
}

// Violation reports a "must be zero" counter that is not zero.
type Violation struct {
	Name    string `json:"name"`
	Count   int64  `json:"count"`
	Message string `json:"message"`
}

// Snapshot is a consistent copy of the monitor's counters, suitable for a
// caller-owned health or metrics endpoint.
type Snapshot struct {
	TotalEvents           int64         `json:"total_events"`
	PositiveWithDiagnosis int64         `json:"positive_with_diagnosis"`
	TaxonomyViolations    int64         `json:"taxonomy_violations"`
	GateViolations        int64         `json:"gate_violations"`
	SchemaFailures        int64         `json:"schema_failures"`
	LatencyCount          int           `json:"latency_count"`
	LatencyP50            time.Duration `json:"latency_p50"`
	LatencyP99            time.Duration `json:"latency_p99"`
}

// Monitor asserts cross-cutting safety invariants over the decision
// pipeline. It sits off the critical path: mutators record and return, and
// violations surface only through CheckInvariants. All methods are safe for
// concurrent use; one mutex guards the whole counter struct and every
// critical section is a few increments plus a bounded append.
type Monitor struct {
	mu sync.Mutex

	totalEvents           int64
	positiveWithDiagnosis int64
	taxonomyViolations    int64
	gateViolations        int64
	schemaFailures        int64

	latencies []time.Duration
}

// NewMonitor creates a monitor. One instance per process, passed explicitly
// to whichever components observe through it.
func NewMonitor() *Monitor {
	return &Monitor{latencies: make([]time.Duration, 0, latencyWindowSize)}
}

// RecordInference observes one calibrate-track step. A positive outcome
// carrying a diagnosis, or a (category, pattern) pair outside the taxonomy,
// increments the corresponding must-be-zero counter; the triggering
// operation itself is never failed.
func (m *Monitor) RecordInference(obs Observation) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalEvents++
	m.appendLatency(obs.Latency)

	if obs.PositiveOutcome && obs.Category != "" && obs.Category != taxonomy.CategoryUnclassified {
		m.positiveWithDiagnosis++
		fmt.Fprintf(os.Stderr, "critical: positive outcome carried diagnosis %s/%s\n",
			obs.Category, obs.PatternID)
	}

	if obs.Category != "" && !taxonomy.ValidPair(obs.Category, obs.PatternID) {
		m.taxonomyViolations++
	}
}

// RecordTaxonomyViolation counts an invalid categorical pair observed
// outside the inference path.
func (m *Monitor) RecordTaxonomyViolation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.taxonomyViolations++
}

// RecordGateViolation counts a policy/verdict mismatch, e.g. a caller
// acting against a blocked decision.
func (m *Monitor) RecordGateViolation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gateViolations++
}

// RecordSchemaFailure counts a validation failure on an external input.
func (m *Monitor) RecordSchemaFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schemaFailures++
}

// appendLatency adds to the rolling window, dropping the oldest entry once
// full. Caller holds the mutex.
func (m *Monitor) appendLatency(d time.Duration) {
	if len(m.latencies) >= latencyWindowSize {
		copy(m.latencies, m.latencies[1:])
		m.latencies = m.latencies[:latencyWindowSize-1]
	}
	m.latencies = append(m.latencies, d)
}

// CheckInvariants returns a violation per must-be-zero counter that is
// non-zero. An empty result means healthy.
func (m *Monitor) CheckInvariants() []Violation {
	m.mu.Lock()
	defer m.mu.Unlock()

	var violations []Violation
	if m.positiveWithDiagnosis > 0 {
		violations = append(violations, Violation{
			Name:    "positive_with_diagnosis",
			Count:   m.positiveWithDiagnosis,
			Message: "positive outcomes produced diagnosis side effects",
		})
	}
	if m.taxonomyViolations > 0 {
		violations = append(violations, Violation{
			Name:    "taxonomy_violations",
			Count:   m.taxonomyViolations,
			Message: "invalid categorical label pairs observed",
		})
	}
	return violations
}

// Stats returns a consistent snapshot of all counters and latency
// percentiles.
func (m *Monitor) Stats() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		TotalEvents:           m.totalEvents,
		PositiveWithDiagnosis: m.positiveWithDiagnosis,
		TaxonomyViolations:    m.taxonomyViolations,
		GateViolations:        m.gateViolations,
		SchemaFailures:        m.schemaFailures,
		LatencyCount:          len(m.latencies),
	}

	if len(m.latencies) > 0 {
		sorted := append([]time.Duration(nil), m.latencies...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		snap.LatencyP50 = percentile(sorted, 0.50)
		snap.LatencyP99 = percentile(sorted, 0.99)
	}

	return snap
}

// Reset zeroes every counter and the latency window. For test isolation
// and administrative reset only.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalEvents = 0
	m.positiveWithDiagnosis = 0
	m.taxonomyViolations = 0
	m.gateViolations = 0
	m.schemaFailures = 0
	m.latencies = m.latencies[:0]
}

// percentile returns the nearest-rank percentile of a sorted slice.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)-1))
	return sorted[idx]
}
