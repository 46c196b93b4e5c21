package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Patterns: map[string]*PatternRecordData{
				"subj-1/proc-step-skip": {
					SubjectID:       "subj-1",
					PatternName:     "proc-step-skip",
					State:           "suspected",
					TransitionCount: 1,
				},
			},
			Policy: map[string]*SubjectPolicyData{
				"subj-1": {SubjectID: "subj-1", Difficulty: 3, ConsecutiveEligible: 2},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	rec := snap.Data.Patterns["subj-1/proc-step-skip"]
	if rec == nil || rec.State != "suspected" {
		t.Errorf("pattern record = %+v, want suspected state", rec)
	}
	pol := snap.Data.Policy["subj-1"]
	if pol == nil || pol.ConsecutiveEligible != 2 {
		t.Errorf("policy data = %+v, want consecutive eligible 2", pol)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestEvidenceEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := EvidenceEventData{
		EvidenceID:       "ev-1",
		SubjectID:        "subj-1",
		PatternName:      "proc-step-skip",
		Category:         "misconception",
		PatternID:        "proc-step-skip",
		RawConfidence:    0.91,
		Confidence:       0.85,
		Tier:             "high",
		StateBefore:      "none",
		StateAfter:       "suspected",
		WeightedEvidence: 1.0,
	}
	if err := repo.AppendEvidenceEvent(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryEvidence(ctx, "subj-1", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	got := events[0]
	if got.EvidenceID != "ev-1" || got.Tier != "high" || got.StateAfter != "suspected" {
		t.Errorf("event = %+v, want ev-1/high/suspected", got.EvidenceEventData)
	}
	if got.Sequence == 0 {
		t.Error("sequence not assigned")
	}
}

func TestLatestEvidenceTime(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// No evidence: zero time, no error.
	ts, err := repo.LatestEvidenceTime(ctx, "subj-1", "proc-step-skip")
	if err != nil {
		t.Fatalf("latest evidence time (empty): %v", err)
	}
	if !ts.IsZero() {
		t.Errorf("timestamp = %v, want zero", ts)
	}

	for i := 0; i < 3; i++ {
		err := repo.AppendEvidenceEvent(ctx, EvidenceEventData{
			EvidenceID:  "ev-" + string(rune('a'+i)),
			SubjectID:   "subj-1",
			PatternName: "proc-step-skip",
			Category:    "misconception",
			PatternID:   "proc-step-skip",
			Tier:        "high",
			StateBefore: "none",
			StateAfter:  "suspected",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	ts, err = repo.LatestEvidenceTime(ctx, "subj-1", "proc-step-skip")
	if err != nil {
		t.Fatalf("latest evidence time: %v", err)
	}
	if ts.IsZero() {
		t.Error("timestamp is zero after appends")
	}
}

func TestDecisionEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := DecisionEventData{
		DecisionID:     "dec-1",
		SubjectID:      "subj-1",
		ProposedAction: "increase",
		ProposedTarget: 4,
		FinalAction:    "maintain",
		FinalTarget:    3,
		BlockingGate:   "hysteresis_gate",
		Gates: []GateData{
			{Name: "confidence_gate", Passed: true, Reason: "high confidence tier"},
			{Name: "hysteresis_gate", Passed: false, Reason: "only 1 consecutive eligible cycles, need 3"},
		},
		ConfidenceTier:      "high",
		PatternState:        "none",
		CyclesSinceChange:   10,
		ConsecutiveEligible: 1,
	}
	if err := repo.AppendDecisionEvent(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	decisions, err := repo.RecentDecisions(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(decisions) != 1 {
		t.Fatalf("got %d decisions, want 1", len(decisions))
	}
	got := decisions[0]
	if got.BlockingGate != "hysteresis_gate" {
		t.Errorf("blocking gate = %q, want hysteresis_gate", got.BlockingGate)
	}
	if len(got.Gates) != 2 || got.Gates[1].Passed {
		t.Errorf("gates = %+v, want second gate failed", got.Gates)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendEvidenceEvent(ctx, EvidenceEventData{
		EvidenceID: "ev-1", SubjectID: "subj-1", PatternName: "p",
		Category: "careless", Tier: "medium", StateBefore: "none", StateAfter: "none",
	}); err != nil {
		t.Fatalf("append evidence: %v", err)
	}
	if err := repo.AppendDecisionEvent(ctx, DecisionEventData{
		DecisionID: "dec-1", SubjectID: "subj-1",
		ProposedAction: "maintain", FinalAction: "maintain",
		ConfidenceTier: "high", PatternState: "none",
	}); err != nil {
		t.Fatalf("append decision: %v", err)
	}

	events, err := repo.QueryEvidence(ctx, "subj-1", QueryOpts{})
	if err != nil {
		t.Fatalf("query evidence: %v", err)
	}
	decisions, err := repo.RecentDecisions(ctx, 1)
	if err != nil {
		t.Fatalf("query decisions: %v", err)
	}
	if decisions[0].Sequence <= events[0].Sequence {
		t.Errorf("decision sequence %d not after evidence sequence %d",
			decisions[0].Sequence, events[0].Sequence)
	}
}
