package invariant

import (
	"sync"
	"testing"
	"time"

	"github.com/AKASH-tech234/paceline/internal/taxonomy"
)

func TestCheckInvariants_HealthyByDefault(t *testing.T) {
	m := NewMonitor()

	m.RecordInference(Observation{
		Latency:   2 * time.Millisecond,
		Category:  taxonomy.CategoryMisconception,
		PatternID: "proc-step-skip",
	})

	if v := m.CheckInvariants(); len(v) != 0 {
		t.Errorf("violations = %v, want none", v)
	}
}

func TestRecordInference_PositiveWithDiagnosis(t *testing.T) {
	m := NewMonitor()

	m.RecordInference(Observation{
		PositiveOutcome: true,
		Category:        taxonomy.CategoryMisconception,
		PatternID:       "proc-step-skip",
	})

	violations := m.CheckInvariants()
	if len(violations) != 1 {
		t.Fatalf("got %d violations, want 1", len(violations))
	}
	if violations[0].Name != "positive_with_diagnosis" {
		t.Errorf("violation = %s, want positive_with_diagnosis", violations[0].Name)
	}
	if violations[0].Count != 1 {
		t.Errorf("count = %d, want 1", violations[0].Count)
	}
}

func TestRecordInference_PositiveUnclassifiedIsFine(t *testing.T) {
	m := NewMonitor()

	m.RecordInference(Observation{
		PositiveOutcome: true,
		Category:        taxonomy.CategoryUnclassified,
	})
	m.RecordInference(Observation{PositiveOutcome: true})

	if v := m.CheckInvariants(); len(v) != 0 {
		t.Errorf("violations = %v, want none", v)
	}
}

func TestRecordInference_InvalidTaxonomyPair(t *testing.T) {
	m := NewMonitor()

	m.RecordInference(Observation{
		Category:  taxonomy.CategoryCareless,
		PatternID: "proc-step-skip", // registered under misconception
	})

	violations := m.CheckInvariants()
	if len(violations) != 1 || violations[0].Name != "taxonomy_violations" {
		t.Fatalf("violations = %v, want one taxonomy_violations entry", violations)
	}
}

func TestGateAndSchemaCountersAreNotInvariants(t *testing.T) {
	m := NewMonitor()
	m.RecordGateViolation()
	m.RecordSchemaFailure()

	// These counters report through Stats but do not fail the health check.
	if v := m.CheckInvariants(); len(v) != 0 {
		t.Errorf("violations = %v, want none", v)
	}

	snap := m.Stats()
	if snap.GateViolations != 1 {
		t.Errorf("gate violations = %d, want 1", snap.GateViolations)
	}
	if snap.SchemaFailures != 1 {
		t.Errorf("schema failures = %d, want 1", snap.SchemaFailures)
	}
}

func TestStats_LatencyPercentiles(t *testing.T) {
	m := NewMonitor()

	for i := 1; i <= 100; i++ {
		m.RecordInference(Observation{Latency: time.Duration(i) * time.Millisecond})
	}

	snap := m.Stats()
	if snap.LatencyCount != 100 {
		t.Fatalf("latency count = %d, want 100", snap.LatencyCount)
	}
	if snap.LatencyP50 != 50*time.Millisecond {
		t.Errorf("p50 = %v, want 50ms", snap.LatencyP50)
	}
	if snap.LatencyP99 != 99*time.Millisecond {
		t.Errorf("p99 = %v, want 99ms", snap.LatencyP99)
	}
}

func TestLatencyWindowBounded(t *testing.T) {
	m := NewMonitor()

	for i := 0; i < latencyWindowSize+500; i++ {
		m.RecordInference(Observation{Latency: time.Millisecond})
	}

	snap := m.Stats()
	if snap.LatencyCount != latencyWindowSize {
		t.Errorf("latency count = %d, want %d", snap.LatencyCount, latencyWindowSize)
	}
	if snap.TotalEvents != int64(latencyWindowSize+500) {
		t.Errorf("total events = %d, want %d", snap.TotalEvents, latencyWindowSize+500)
	}
}

func TestReset(t *testing.T) {
	m := NewMonitor()
	m.RecordInference(Observation{
		PositiveOutcome: true,
		Category:        taxonomy.CategoryMisconception,
		PatternID:       "proc-step-skip",
	})
	m.RecordGateViolation()

	m.Reset()

	if v := m.CheckInvariants(); len(v) != 0 {
		t.Errorf("violations after reset = %v, want none", v)
	}
	snap := m.Stats()
	if snap.TotalEvents != 0 || snap.LatencyCount != 0 || snap.GateViolations != 0 {
		t.Errorf("stats after reset = %+v, want zeros", snap)
	}
}

func TestMonitor_ConcurrentMutators(t *testing.T) {
	m := NewMonitor()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				m.RecordInference(Observation{Latency: time.Millisecond})
				m.RecordGateViolation()
			}
		}()
	}
	wg.Wait()

	snap := m.Stats()
	if snap.TotalEvents != 1600 {
		t.Errorf("total events = %d, want 1600", snap.TotalEvents)
	}
	if snap.GateViolations != 1600 {
		t.Errorf("gate violations = %d, want 1600", snap.GateViolations)
	}
}
