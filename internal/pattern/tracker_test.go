package pattern

import (
	"reflect"
	"testing"
	"time"

	"github.com/AKASH-tech234/paceline/internal/calibration"
	"github.com/AKASH-tech234/paceline/internal/taxonomy"
)

var day0 = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return day0.AddDate(0, 0, n)
}

func highEvidence(ts time.Time) Evidence {
	return Evidence{
		ID:         "ev-" + ts.Format("20060102"),
		Timestamp:  ts,
		Confidence: 0.85,
		Tier:       calibration.TierHigh,
		Category:   taxonomy.CategoryMisconception,
		PatternID:  "proc-step-skip",
	}
}

func mediumEvidence(ts time.Time) Evidence {
	ev := highEvidence(ts)
	ev.Confidence = 0.70
	ev.Tier = calibration.TierMedium
	return ev
}

func lowEvidence(ts time.Time) Evidence {
	ev := highEvidence(ts)
	ev.Confidence = 0.40
	ev.Tier = calibration.TierLow
	return ev
}

func TestAddEvidence_LowTierLeavesRecordUnchanged(t *testing.T) {
	rec := NewRecord("subj-1", "proc-step-skip")
	cfg := DefaultConfig()

	// Build up some state first.
	AddEvidence(rec, highEvidence(day(0)), cfg)
	before := *rec
	beforeEvidence := append([]Evidence(nil), rec.Evidence...)

	if tr := AddEvidence(rec, lowEvidence(day(1)), cfg); tr != nil {
		t.Errorf("low-tier evidence produced transition %+v", tr)
	}

	if !reflect.DeepEqual(rec.Metrics, before.Metrics) {
		t.Errorf("metrics changed: %+v -> %+v", before.Metrics, rec.Metrics)
	}
	if rec.State != before.State {
		t.Errorf("state changed: %s -> %s", before.State, rec.State)
	}
	if !rec.LastOccurrence.Equal(before.LastOccurrence) {
		t.Error("last occurrence changed on low-tier evidence")
	}
	if !reflect.DeepEqual(rec.Evidence, beforeEvidence) {
		t.Error("evidence list changed on low-tier evidence")
	}
}

func TestAddEvidence_MediumCeiling(t *testing.T) {
	rec := NewRecord("subj-1", "proc-step-skip")
	cfg := DefaultConfig()

	// 50 medium items a few hours apart: weighted evidence far exceeds
	// every promotion threshold, yet the state must stop at suspected.
	for i := 0; i < 50; i++ {
		ts := day0.Add(time.Duration(i) * 4 * time.Hour)
		AddEvidence(rec, mediumEvidence(ts), cfg)
		if rec.State == StateConfirmed || rec.State == StateStable {
			t.Fatalf("medium-only evidence reached %s after %d items", rec.State, i+1)
		}
	}
	if rec.State != StateSuspected {
		t.Errorf("state = %s, want suspected", rec.State)
	}
	if rec.Metrics.WeightedEvidence < cfg.StableThreshold {
		t.Fatalf("test setup: weighted evidence %v never crossed the stable threshold", rec.Metrics.WeightedEvidence)
	}
}

func TestAddEvidence_MonotonicPromotionOrder(t *testing.T) {
	rec := NewRecord("subj-1", "proc-step-skip")
	cfg := DefaultConfig()

	order := map[State]int{StateNone: 0, StateSuspected: 1, StateConfirmed: 2, StateStable: 3}
	seen := []State{rec.State}

	for i := 0; i < 10; i++ {
		ts := day0.Add(time.Duration(i) * 6 * time.Hour)
		if tr := AddEvidence(rec, highEvidence(ts), cfg); tr != nil {
			if order[tr.To] != order[tr.From]+1 {
				t.Errorf("transition %s -> %s skipped a level", tr.From, tr.To)
			}
			seen = append(seen, tr.To)
		}
	}

	if seen[len(seen)-1] != StateStable {
		t.Fatalf("expected dense high-tier evidence to reach stable, got %s", seen[len(seen)-1])
	}
	want := []State{StateNone, StateSuspected, StateConfirmed, StateStable}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("promotion path = %v, want %v", seen, want)
	}
}

func TestAddEvidence_ConfirmedAtSetOnce(t *testing.T) {
	rec := NewRecord("subj-1", "proc-step-skip")
	cfg := DefaultConfig()

	for i := 0; i < 10; i++ {
		AddEvidence(rec, highEvidence(day0.Add(time.Duration(i)*6*time.Hour)), cfg)
	}
	if rec.ConfirmedAt == nil {
		t.Fatal("ConfirmedAt not set after confirmation")
	}
	first := *rec.ConfirmedAt

	// Decay back below confirmed, then re-confirm.
	ApplyDecay(rec, day(120), cfg)
	if rec.State == StateConfirmed || rec.State == StateStable {
		t.Fatalf("test setup: state %s did not decay", rec.State)
	}
	for i := 0; i < 10; i++ {
		AddEvidence(rec, highEvidence(day(120).Add(time.Duration(i)*6*time.Hour)), cfg)
	}

	if !rec.ConfirmedAt.Equal(first) {
		t.Errorf("ConfirmedAt moved on re-confirmation: %v -> %v", first, rec.ConfirmedAt)
	}
}

func TestAddEvidence_InvalidTierPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid tier")
		}
	}()
	rec := NewRecord("subj-1", "proc-step-skip")
	ev := highEvidence(day(0))
	ev.Tier = calibration.Tier("bogus")
	AddEvidence(rec, ev, DefaultConfig())
}

func TestApplyDecay_Idempotent(t *testing.T) {
	cfg := DefaultConfig()

	build := func() *Record {
		rec := NewRecord("subj-1", "proc-step-skip")
		for i := 0; i < 6; i++ {
			AddEvidence(rec, highEvidence(day(i)), cfg)
		}
		return rec
	}

	for _, at := range []time.Time{day(6), day(20), day(45), day(200)} {
		once := build()
		ApplyDecay(once, at, cfg)

		twice := build()
		ApplyDecay(twice, at, cfg)
		ApplyDecay(twice, at, cfg)

		if once.State != twice.State {
			t.Errorf("at %v: state %s vs %s after repeat decay", at, once.State, twice.State)
		}
		if !reflect.DeepEqual(once.Metrics, twice.Metrics) {
			t.Errorf("at %v: metrics diverged after repeat decay", at)
		}
	}
}

func TestApplyDecay_DemotesThroughLevels(t *testing.T) {
	cfg := DefaultConfig()
	rec := NewRecord("subj-1", "proc-step-skip")
	for i := 0; i < 10; i++ {
		AddEvidence(rec, highEvidence(day0.Add(time.Duration(i)*6*time.Hour)), cfg)
	}
	if rec.State != StateStable {
		t.Fatalf("test setup: state = %s, want stable", rec.State)
	}

	// Far in the future everything has decayed to nothing.
	transitions := ApplyDecay(rec, day(365), cfg)
	if rec.State != StateNone {
		t.Errorf("state = %s, want none", rec.State)
	}

	// Demotion happens one level at a time.
	prev := StateStable
	order := map[State]int{StateNone: 0, StateSuspected: 1, StateConfirmed: 2, StateStable: 3}
	for _, tr := range transitions {
		if tr.From != prev {
			t.Errorf("transition chain broken: from %s, previous state %s", tr.From, prev)
		}
		if order[tr.To] != order[tr.From]-1 {
			t.Errorf("demotion %s -> %s skipped a level", tr.From, tr.To)
		}
		prev = tr.To
	}
}

func TestApplyDecay_InactivityDemotesConfirmed(t *testing.T) {
	cfg := DefaultConfig()
	rec := NewRecord("subj-1", "proc-step-skip")

	// Enough spread-out high evidence to confirm and hold weight.
	for i := 0; i < 12; i++ {
		AddEvidence(rec, highEvidence(day0.Add(time.Duration(i)*6*time.Hour)), cfg)
	}
	if rec.State != StateStable {
		t.Fatalf("test setup: state = %s, want stable", rec.State)
	}

	// 35 days of silence: weight has decayed some but the inactivity rule
	// is what forces the drop to suspected.
	transitions := ApplyDecay(rec, day(35), cfg)
	if rec.State != StateSuspected {
		t.Errorf("state = %s, want suspected after 35 idle days", rec.State)
	}

	last := transitions[len(transitions)-1]
	if last.Trigger != "inactivity" && last.Trigger != "decay" {
		t.Errorf("trigger = %q, want inactivity or decay", last.Trigger)
	}
}

func TestScenario_ThreeHighItemsConfirm(t *testing.T) {
	cfg := DefaultConfig()
	rec := NewRecord("subj-1", "proc-step-skip")

	for i := 0; i < 3; i++ {
		AddEvidence(rec, highEvidence(day(i)), cfg)
	}

	if rec.State != StateConfirmed {
		t.Errorf("state = %s, want confirmed", rec.State)
	}
	if rec.Metrics.WeightedEvidence < cfg.ConfirmThreshold {
		t.Errorf("weighted evidence = %v, want >= %v", rec.Metrics.WeightedEvidence, cfg.ConfirmThreshold)
	}
}

func TestScenario_ThreeMediumItemsStaySuspected(t *testing.T) {
	cfg := DefaultConfig()
	rec := NewRecord("subj-1", "proc-step-skip")

	for i := 0; i < 3; i++ {
		AddEvidence(rec, mediumEvidence(day(i)), cfg)
	}

	if rec.State != StateSuspected {
		t.Errorf("state = %s, want suspected", rec.State)
	}
}

func TestScenario_ConfirmedDecaysAfterSixWeeks(t *testing.T) {
	cfg := DefaultConfig()
	rec := NewRecord("subj-1", "proc-step-skip")

	for i := 0; i < 3; i++ {
		AddEvidence(rec, highEvidence(day(i)), cfg)
	}
	if rec.State != StateConfirmed {
		t.Fatalf("test setup: state = %s, want confirmed", rec.State)
	}

	// Most recent evidence is 45 days old at evaluation time.
	ApplyDecay(rec, day(47), cfg)

	if rec.State == StateConfirmed || rec.State == StateStable {
		t.Errorf("state = %s, want suspected or none", rec.State)
	}
	if rec.Metrics.WeightedEvidence >= cfg.ConfirmedDemoteBelow {
		t.Errorf("weighted evidence = %v, want < %v", rec.Metrics.WeightedEvidence, cfg.ConfirmedDemoteBelow)
	}
}

func TestAddEvidence_EvidenceCapDropsOldest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxEvidence = 5
	rec := NewRecord("subj-1", "proc-step-skip")

	for i := 0; i < 8; i++ {
		AddEvidence(rec, highEvidence(day0.Add(time.Duration(i)*time.Hour)), cfg)
	}

	if len(rec.Evidence) != 5 {
		t.Fatalf("evidence count = %d, want 5", len(rec.Evidence))
	}
	oldest := rec.Evidence[0].Timestamp
	if !oldest.Equal(day0.Add(3 * time.Hour)) {
		t.Errorf("oldest retained = %v, want %v", oldest, day0.Add(3*time.Hour))
	}
}
