package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AKASH-tech234/paceline/internal/calibration"
	"github.com/AKASH-tech234/paceline/internal/pattern"
	"github.com/AKASH-tech234/paceline/internal/policy"
	"github.com/AKASH-tech234/paceline/internal/store"
	"github.com/AKASH-tech234/paceline/internal/taxonomy"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	evidence  []store.EvidenceEventData
	decisions []store.DecisionEventData
	appendErr error
}

func (m *mockEventRepo) AppendEvidenceEvent(_ context.Context, data store.EvidenceEventData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.evidence = append(m.evidence, data)
	return nil
}

func (m *mockEventRepo) AppendDecisionEvent(_ context.Context, data store.DecisionEventData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.decisions = append(m.decisions, data)
	return nil
}

func (m *mockEventRepo) QueryEvidence(_ context.Context, _ string, _ store.QueryOpts) ([]store.EvidenceEvent, error) {
	return nil, nil
}

func (m *mockEventRepo) RecentDecisions(_ context.Context, _ int) ([]store.DecisionEvent, error) {
	return nil, nil
}

func (m *mockEventRepo) LatestEvidenceTime(_ context.Context, _, _ string) (time.Time, error) {
	return time.Time{}, nil
}

func testService(repo store.EventRepo) *Service {
	cal := calibration.NewCalibrator(&calibration.Model{
		Version:    "test",
		Raw:        []float64{0, 1},
		Calibrated: []float64{0, 1},
	}, calibration.DefaultConfig())
	return NewService(cal, nil, repo, DefaultConfig())
}

func day(n int) time.Time {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, n)
}

func highEvent(n int) Event {
	return patternEvent("proc-step-skip", n)
}

func patternEvent(name string, n int) Event {
	return Event{
		SubjectID:     "subj-1",
		PatternName:   name,
		Category:      taxonomy.CategoryMisconception,
		PatternID:     name,
		RawConfidence: 0.85,
		Timestamp:     day(n),
	}
}

func TestProcessEvent_TracksAndPersists(t *testing.T) {
	repo := &mockEventRepo{}
	svc := testService(repo)

	res, err := svc.ProcessEvent(context.Background(), highEvent(0))
	if err != nil {
		t.Fatalf("process event: %v", err)
	}
	if res.Evidence == nil {
		t.Fatal("expected evidence")
	}
	if res.Evidence.Tier != calibration.TierHigh {
		t.Errorf("tier = %s, want high", res.Evidence.Tier)
	}
	if res.StateBefore != pattern.StateNone || res.StateAfter != pattern.StateSuspected {
		t.Errorf("states = %s -> %s, want none -> suspected", res.StateBefore, res.StateAfter)
	}
	if res.Transition == nil || res.Transition.Trigger != "evidence" {
		t.Errorf("transition = %+v, want evidence trigger", res.Transition)
	}

	if len(repo.evidence) != 1 {
		t.Fatalf("persisted %d evidence events, want 1", len(repo.evidence))
	}
	ev := repo.evidence[0]
	if ev.StateBefore != "none" || ev.StateAfter != "suspected" {
		t.Errorf("persisted states = %s -> %s, want none -> suspected", ev.StateBefore, ev.StateAfter)
	}
	if ev.EvidenceID == "" {
		t.Error("persisted evidence has no ID")
	}
}

func TestProcessEvent_ThreeHighConfirms(t *testing.T) {
	svc := testService(nil)
	ctx := context.Background()

	var last *Result
	for i := 0; i < 3; i++ {
		res, err := svc.ProcessEvent(ctx, highEvent(i))
		if err != nil {
			t.Fatalf("process event %d: %v", i, err)
		}
		last = res
	}
	if last.StateAfter != pattern.StateConfirmed {
		t.Errorf("state after 3 high events = %s, want confirmed", last.StateAfter)
	}
}

func TestProcessEvent_PositiveOutcomeSkipsTracking(t *testing.T) {
	repo := &mockEventRepo{}
	svc := testService(repo)

	res, err := svc.ProcessEvent(context.Background(), Event{
		SubjectID:       "subj-1",
		PositiveOutcome: true,
		RawConfidence:   0.9,
		Timestamp:       day(0),
		Category:        taxonomy.CategoryMisconception,
		PatternID:       "proc-step-skip",
	})
	if err != nil {
		t.Fatalf("process event: %v", err)
	}
	if res.Evidence != nil {
		t.Error("positive event produced evidence")
	}
	if len(repo.evidence) != 0 {
		t.Errorf("persisted %d evidence events, want 0", len(repo.evidence))
	}

	// A success carrying a diagnosis is a must-be-zero violation.
	stats := svc.Monitor().Stats()
	if stats.PositiveWithDiagnosis != 1 {
		t.Errorf("positive-with-diagnosis = %d, want 1", stats.PositiveWithDiagnosis)
	}
	if stats.TotalEvents != 1 {
		t.Errorf("total events = %d, want 1", stats.TotalEvents)
	}
}

func TestProcessEvent_LowTierLeavesStateUntouched(t *testing.T) {
	repo := &mockEventRepo{}
	svc := testService(repo)

	ev := highEvent(0)
	ev.RawConfidence = 0.30
	res, err := svc.ProcessEvent(context.Background(), ev)
	if err != nil {
		t.Fatalf("process event: %v", err)
	}
	if res.Evidence.Tier != calibration.TierLow {
		t.Fatalf("tier = %s, want low", res.Evidence.Tier)
	}
	if res.StateAfter != pattern.StateNone {
		t.Errorf("state = %s, want none", res.StateAfter)
	}
	// Low-tier evidence is still persisted for audit.
	if len(repo.evidence) != 1 {
		t.Errorf("persisted %d evidence events, want 1", len(repo.evidence))
	}
}

func TestProcessEvent_EmptySubject(t *testing.T) {
	svc := testService(nil)
	_, err := svc.ProcessEvent(context.Background(), Event{PatternName: "p"})
	if err == nil {
		t.Fatal("expected error for empty subject ID")
	}
}

func TestProcessEvent_AppendFailure(t *testing.T) {
	repo := &mockEventRepo{appendErr: errors.New("disk full")}
	svc := testService(repo)

	_, err := svc.ProcessEvent(context.Background(), highEvent(0))
	if err == nil {
		t.Fatal("expected append error to propagate")
	}
}

func TestEvaluateProposal_HysteresisThenApproval(t *testing.T) {
	repo := &mockEventRepo{}
	snap := &store.SnapshotData{
		Version: 1,
		Policy: map[string]*store.SubjectPolicyData{
			"subj-1": {
				SubjectID:             "subj-1",
				Difficulty:            3,
				CyclesSinceLastChange: 10,
				ConsecutiveEligible:   2,
			},
		},
	}
	cal := calibration.NewCalibrator(&calibration.Model{
		Version: "test", Raw: []float64{0, 1}, Calibrated: []float64{0, 1},
	}, calibration.DefaultConfig())
	svc := NewService(cal, snap, repo, DefaultConfig())
	ctx := context.Background()

	p := Proposal{
		SubjectID:      "subj-1",
		Action:         policy.ActionIncrease,
		Target:         4,
		ConfidenceTier: calibration.TierHigh,
	}

	// First attempt: blocked only by hysteresis, counter advances.
	d1, err := svc.EvaluateProposal(ctx, p)
	if err != nil {
		t.Fatalf("evaluate 1: %v", err)
	}
	if d1.BlockingGate != policy.GateHysteresis {
		t.Fatalf("blocking gate = %q, want hysteresis_gate", d1.BlockingGate)
	}
	if d1.FinalAction != policy.ActionMaintain {
		t.Errorf("final action = %s, want maintain", d1.FinalAction)
	}
	if d1.ConsecutiveEligible != 3 {
		t.Errorf("consecutive eligible = %d, want 3", d1.ConsecutiveEligible)
	}

	// Second attempt: hysteresis satisfied, approved.
	d2, err := svc.EvaluateProposal(ctx, p)
	if err != nil {
		t.Fatalf("evaluate 2: %v", err)
	}
	if !d2.Approved() {
		t.Fatalf("second proposal blocked by %q", d2.BlockingGate)
	}
	if d2.FinalTarget != 4 {
		t.Errorf("final target = %v, want 4", d2.FinalTarget)
	}
	if got := svc.Difficulty("subj-1"); got != 4 {
		t.Errorf("difficulty = %v, want 4", got)
	}
	if d2.ConsecutiveEligible != 0 {
		t.Errorf("counter after approval = %d, want 0", d2.ConsecutiveEligible)
	}

	if len(repo.decisions) != 2 {
		t.Fatalf("persisted %d decision events, want 2", len(repo.decisions))
	}
	if repo.decisions[0].BlockingGate != policy.GateHysteresis {
		t.Errorf("persisted blocking gate = %q, want hysteresis_gate", repo.decisions[0].BlockingGate)
	}
	if len(repo.decisions[0].Gates) != 5 {
		t.Errorf("persisted %d gate results, want 5", len(repo.decisions[0].Gates))
	}
}

func TestEvaluateProposal_ConfirmedPatternBlocksIncrease(t *testing.T) {
	svc := testService(nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.ProcessEvent(ctx, highEvent(i)); err != nil {
			t.Fatalf("process event %d: %v", i, err)
		}
	}

	// Counters are generous so only the pattern state can block.
	svc.subjects["subj-1"] = &subjectPolicy{
		difficulty:            3,
		cyclesSinceLastChange: 10,
		consecutiveEligible:   5,
	}

	d, err := svc.EvaluateProposal(ctx, Proposal{
		SubjectID:      "subj-1",
		Action:         policy.ActionIncrease,
		Target:         4,
		ConfidenceTier: calibration.TierHigh,
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if d.BlockingGate != policy.GatePatternState {
		t.Errorf("blocking gate = %q, want pattern_state_gate", d.BlockingGate)
	}
}

func TestEvaluateProposal_StablePatternDoesNotMaskConfirmed(t *testing.T) {
	svc := testService(nil)
	ctx := context.Background()

	// Pattern A reaches STABLE: four high items a day apart.
	for i := 0; i < 4; i++ {
		if _, err := svc.ProcessEvent(ctx, patternEvent("proc-step-skip", i)); err != nil {
			t.Fatalf("process A %d: %v", i, err)
		}
	}
	recA := svc.PatternRecord("subj-1", "proc-step-skip")
	if recA.State != pattern.StateStable {
		t.Fatalf("pattern A state = %s, want stable", recA.State)
	}

	// Pattern B reaches CONFIRMED alongside it.
	for i := 0; i < 3; i++ {
		if _, err := svc.ProcessEvent(ctx, patternEvent("proc-step-order", i)); err != nil {
			t.Fatalf("process B %d: %v", i, err)
		}
	}
	recB := svc.PatternRecord("subj-1", "proc-step-order")
	if recB.State != pattern.StateConfirmed {
		t.Fatalf("pattern B state = %s, want confirmed", recB.State)
	}

	// Counters are generous so only the pattern state can block.
	svc.subjects["subj-1"] = &subjectPolicy{
		difficulty:            3,
		cyclesSinceLastChange: 10,
		consecutiveEligible:   5,
	}

	d, err := svc.EvaluateProposal(ctx, Proposal{
		SubjectID:      "subj-1",
		Action:         policy.ActionIncrease,
		Target:         4,
		ConfidenceTier: calibration.TierHigh,
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if d.BlockingGate != policy.GatePatternState {
		t.Fatalf("blocking gate = %q, want pattern_state_gate", d.BlockingGate)
	}
	if d.Input.PatternState != pattern.StateConfirmed {
		t.Errorf("gate saw state %s, want confirmed", d.Input.PatternState)
	}
	if got := svc.Difficulty("subj-1"); got != 3 {
		t.Errorf("difficulty = %v, want unchanged 3", got)
	}
}

func TestEvaluateProposal_DecreaseAlwaysAllowed(t *testing.T) {
	svc := testService(nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.ProcessEvent(ctx, highEvent(i)); err != nil {
			t.Fatalf("process event %d: %v", i, err)
		}
	}
	svc.subjects["subj-1"] = &subjectPolicy{difficulty: 3}

	d, err := svc.EvaluateProposal(ctx, Proposal{
		SubjectID:      "subj-1",
		Action:         policy.ActionDecrease,
		Target:         2,
		ConfidenceTier: calibration.TierLow,
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !d.Approved() {
		t.Errorf("decrease blocked by %q", d.BlockingGate)
	}
	if got := svc.Difficulty("subj-1"); got != 2 {
		t.Errorf("difficulty = %v, want 2", got)
	}
}

func TestRunDecay_DemotesStaleRecord(t *testing.T) {
	svc := testService(nil)
	ctx := context.Background()

	if _, err := svc.ProcessEvent(ctx, highEvent(0)); err != nil {
		t.Fatalf("process event: %v", err)
	}

	transitions := svc.RunDecay(day(60))
	if len(transitions) != 1 {
		t.Fatalf("got %d transitions, want 1", len(transitions))
	}
	tr := transitions[0]
	if tr.From != pattern.StateSuspected || tr.To != pattern.StateNone {
		t.Errorf("transition = %s -> %s, want suspected -> none", tr.From, tr.To)
	}
	if tr.Trigger != "decay" {
		t.Errorf("trigger = %q, want decay", tr.Trigger)
	}

	// Idempotent for a fixed now.
	if again := svc.RunDecay(day(60)); len(again) != 0 {
		t.Errorf("second decay produced %d transitions, want 0", len(again))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	svc := testService(nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.ProcessEvent(ctx, highEvent(i)); err != nil {
			t.Fatalf("process event %d: %v", i, err)
		}
	}
	svc.subjects["subj-1"] = &subjectPolicy{
		difficulty:            3,
		cyclesSinceLastChange: 2,
		consecutiveEligible:   1,
	}

	data := svc.SnapshotData()

	cal := calibration.NewCalibrator(&calibration.Model{
		Version: "test", Raw: []float64{0, 1}, Calibrated: []float64{0, 1},
	}, calibration.DefaultConfig())
	restored := NewService(cal, data, nil, DefaultConfig())

	rec := restored.PatternRecord("subj-1", "proc-step-skip")
	if rec == nil {
		t.Fatal("record not restored")
	}
	if rec.State != pattern.StateConfirmed {
		t.Errorf("restored state = %s, want confirmed", rec.State)
	}
	if len(rec.Evidence) != 3 {
		t.Errorf("restored %d evidence items, want 3", len(rec.Evidence))
	}
	if rec.ConfirmedAt == nil {
		t.Error("restored record lost ConfirmedAt")
	}
	if got := restored.Difficulty("subj-1"); got != 3 {
		t.Errorf("restored difficulty = %v, want 3", got)
	}

	// Decay on the restored service behaves as if state never left memory.
	transitions := restored.RunDecay(day(2))
	if len(transitions) != 0 {
		t.Errorf("fresh evidence decayed: %+v", transitions)
	}
}

func TestPatternRecord_ReturnsCopy(t *testing.T) {
	svc := testService(nil)
	ctx := context.Background()

	if _, err := svc.ProcessEvent(ctx, highEvent(0)); err != nil {
		t.Fatalf("process event: %v", err)
	}

	rec := svc.PatternRecord("subj-1", "proc-step-skip")
	rec.State = pattern.StateStable
	rec.Evidence[0].Confidence = 0

	fresh := svc.PatternRecord("subj-1", "proc-step-skip")
	if fresh.State != pattern.StateSuspected {
		t.Errorf("internal state mutated through copy: %s", fresh.State)
	}
	if fresh.Evidence[0].Confidence == 0 {
		t.Error("internal evidence mutated through copy")
	}
}
