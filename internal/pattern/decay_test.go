package pattern

import (
	"math"
	"testing"
)

func TestDecayWeight_HalfLife(t *testing.T) {
	cfg := DefaultConfig()

	// At exactly one half-life past the boost window, weight is 0.5.
	if got := decayWeight(14, cfg); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("decayWeight(14) = %v, want 0.5", got)
	}
	if got := decayWeight(28, cfg); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("decayWeight(28) = %v, want 0.25", got)
	}
}

func TestDecayWeight_RecencyBoostCapped(t *testing.T) {
	cfg := DefaultConfig()

	// Fresh evidence: 1.0 * 1.3 capped to 1.0.
	if got := decayWeight(0, cfg); got != 1.0 {
		t.Errorf("decayWeight(0) = %v, want 1.0", got)
	}

	// At age 3 the boost still applies: 2^(-3/14) * 1.3 > 1, capped.
	if got := decayWeight(3, cfg); got != 1.0 {
		t.Errorf("decayWeight(3) = %v, want 1.0", got)
	}

	// Just past the window the boost is gone.
	raw := math.Exp2(-3.1 / cfg.HalfLifeDays)
	if got := decayWeight(3.1, cfg); math.Abs(got-raw) > 1e-9 {
		t.Errorf("decayWeight(3.1) = %v, want unboosted %v", got, raw)
	}
}

func TestDecayWeight_BoostBelowCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HalfLifeDays = 2 // fast decay so the boosted weight stays under 1

	raw := math.Exp2(-3.0 / 2.0) // 0.3536
	want := raw * cfg.RecencyBoostFactor
	if got := decayWeight(3, cfg); math.Abs(got-want) > 1e-9 {
		t.Errorf("decayWeight(3) = %v, want boosted %v", got, want)
	}
}

func TestRecencyStep(t *testing.T) {
	tests := []struct {
		age  float64
		want float64
	}{
		{0, 1.0},
		{3, 1.0},
		{3.5, 0.5},
		{7, 0.5},
		{10, 0.25},
		{14, 0.25},
		{14.5, 0},
		{100, 0},
	}

	for _, tt := range tests {
		if got := recencyStep(tt.age); got != tt.want {
			t.Errorf("recencyStep(%v) = %v, want %v", tt.age, got, tt.want)
		}
	}
}

func TestRecomputeMetrics_MeanConfidenceWeighted(t *testing.T) {
	cfg := DefaultConfig()
	rec := NewRecord("subj-1", "proc-step-skip")

	fresh := highEvidence(day(28)) // weight 1.0 at day 28
	old := highEvidence(day(0))    // weight 0.25 at day 28
	old.Confidence = 0.60
	rec.Evidence = []Evidence{old, fresh}

	recomputeMetrics(rec, day(28), cfg)

	wantWeighted := 1.0 + 0.25
	if math.Abs(rec.Metrics.WeightedEvidence-wantWeighted) > 1e-9 {
		t.Errorf("weighted = %v, want %v", rec.Metrics.WeightedEvidence, wantWeighted)
	}

	wantMean := (0.85*1.0 + 0.60*0.25) / wantWeighted
	if math.Abs(rec.Metrics.MeanConfidence-wantMean) > 1e-9 {
		t.Errorf("mean confidence = %v, want %v", rec.Metrics.MeanConfidence, wantMean)
	}

	// One fresh item (1.0) and one 28-day-old item (0).
	if math.Abs(rec.Metrics.RecencyScore-0.5) > 1e-9 {
		t.Errorf("recency = %v, want 0.5", rec.Metrics.RecencyScore)
	}
}

func TestRecomputeMetrics_Empty(t *testing.T) {
	rec := NewRecord("subj-1", "proc-step-skip")
	recomputeMetrics(rec, day(0), DefaultConfig())

	if rec.Metrics.WeightedEvidence != 0 || rec.Metrics.MeanConfidence != 0 || rec.Metrics.RecencyScore != 0 {
		t.Errorf("empty record metrics = %+v, want zeros", rec.Metrics)
	}
}
