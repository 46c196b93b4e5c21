package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AKASH-tech234/paceline/internal/calibration"
	"github.com/AKASH-tech234/paceline/internal/invariant"
	"github.com/AKASH-tech234/paceline/internal/pattern"
	"github.com/AKASH-tech234/paceline/internal/policy"
	"github.com/AKASH-tech234/paceline/internal/store"
	"github.com/AKASH-tech234/paceline/internal/taxonomy"
)

// Config bundles the component configurations the service wires together.
type Config struct {
	Calibration calibration.Config
	Pattern     pattern.Config
	Policy      policy.Config
}

// DefaultConfig returns the documented defaults for every component.
func DefaultConfig() Config {
	return Config{
		Calibration: calibration.DefaultConfig(),
		Pattern:     pattern.DefaultConfig(),
		Policy:      policy.DefaultConfig(),
	}
}

// Event is one upstream diagnostic event before calibration.
type Event struct {
	SubjectID   string
	PatternName string
	Category    taxonomy.Category
	PatternID   string
	ArtifactID  string

	RawConfidence float64
	Timestamp     time.Time

	// PositiveOutcome marks a success event. Success events carry no
	// diagnosis and never touch pattern state; one that does carry a
	// category is flagged by the invariant monitor.
	PositiveOutcome bool
}

// Result describes what one processed event did to tracked state.
type Result struct {
	Evidence    *pattern.Evidence
	StateBefore pattern.State
	StateAfter  pattern.State
	Transition  *pattern.StateTransition
}

// Proposal is one difficulty-change request from the external recommender.
type Proposal struct {
	SubjectID      string
	Action         policy.Action
	Target         float64
	ConfidenceTier calibration.Tier
}

// subjectPolicy holds the per-subject counters the policy engine reads but
// does not own.
type subjectPolicy struct {
	difficulty            float64
	cyclesSinceLastChange int
	consecutiveEligible   int
}

// Service coordinates the full decision pipeline: calibrate incoming events,
// track pattern state, gate difficulty proposals, and observe every step
// through the invariant monitor. One instance per process; a single mutex
// serializes all mutations, so callers may share it across goroutines.
type Service struct {
	mu sync.Mutex

	calibrator *calibration.Calibrator
	engine     *policy.Engine
	monitor    *invariant.Monitor
	eventRepo  store.EventRepo
	cfg        Config

	// records is keyed by subjectID + "/" + patternName.
	records  map[string]*pattern.Record
	subjects map[string]*subjectPolicy
}

// NewService creates a service, loading tracked state from the snapshot.
// A nil snapshot starts empty; a nil eventRepo disables event persistence.
func NewService(cal *calibration.Calibrator, snap *store.SnapshotData, eventRepo store.EventRepo, cfg Config) *Service {
	s := &Service{
		calibrator: cal,
		engine:     policy.NewEngine(cfg.Policy),
		monitor:    invariant.NewMonitor(),
		eventRepo:  eventRepo,
		cfg:        cfg,
		records:    make(map[string]*pattern.Record),
		subjects:   make(map[string]*subjectPolicy),
	}
	if snap != nil {
		s.loadSnapshot(snap)
	}
	return s
}

// Monitor exposes the invariant monitor for health reporting.
func (s *Service) Monitor() *invariant.Monitor {
	return s.monitor
}

func recordKey(subjectID, patternName string) string {
	return subjectID + "/" + patternName
}

func (s *Service) record(subjectID, patternName string) *pattern.Record {
	key := recordKey(subjectID, patternName)
	if rec, ok := s.records[key]; ok {
		return rec
	}
	rec := pattern.NewRecord(subjectID, patternName)
	s.records[key] = rec
	return rec
}

func (s *Service) subject(subjectID string) *subjectPolicy {
	if sp, ok := s.subjects[subjectID]; ok {
		return sp
	}
	sp := &subjectPolicy{}
	s.subjects[subjectID] = sp
	return sp
}

// ProcessEvent calibrates one diagnostic event, feeds it to the pattern
// tracker, and appends an evidence event to the store. Positive-outcome
// events are observed but never tracked. Low-tier evidence is observed and
// persisted but leaves pattern state untouched.
func (s *Service) ProcessEvent(ctx context.Context, ev Event) (*Result, error) {
	if ev.SubjectID == "" {
		return nil, fmt.Errorf("process event: empty subject ID")
	}
	if !ev.PositiveOutcome && ev.PatternName == "" {
		return nil, fmt.Errorf("process event: empty pattern name")
	}
	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	calibrated, tier := s.calibrator.Calibrate(ev.RawConfidence)

	defer func() {
		s.monitor.RecordInference(invariant.Observation{
			Latency:         time.Since(start),
			PositiveOutcome: ev.PositiveOutcome,
			Category:        ev.Category,
			PatternID:       ev.PatternID,
		})
	}()

	if ev.PositiveOutcome {
		return &Result{}, nil
	}

	rec := s.record(ev.SubjectID, ev.PatternName)
	before := rec.State

	evidence := pattern.Evidence{
		ID:            uuid.NewString(),
		Timestamp:     ts,
		RawConfidence: ev.RawConfidence,
		Confidence:    calibrated,
		Tier:          tier,
		Category:      ev.Category,
		PatternID:     ev.PatternID,
		ArtifactID:    ev.ArtifactID,
	}
	transition := pattern.AddEvidence(rec, evidence, s.cfg.Pattern)

	if s.eventRepo != nil {
		err := s.eventRepo.AppendEvidenceEvent(ctx, store.EvidenceEventData{
			EvidenceID:       evidence.ID,
			SubjectID:        ev.SubjectID,
			PatternName:      ev.PatternName,
			Category:         string(ev.Category),
			PatternID:        ev.PatternID,
			ArtifactID:       ev.ArtifactID,
			RawConfidence:    ev.RawConfidence,
			Confidence:       calibrated,
			Tier:             string(tier),
			StateBefore:      string(before),
			StateAfter:       string(rec.State),
			WeightedEvidence: rec.Metrics.WeightedEvidence,
		})
		if err != nil {
			return nil, fmt.Errorf("append evidence event: %w", err)
		}
	}

	return &Result{
		Evidence:    &evidence,
		StateBefore: before,
		StateAfter:  rec.State,
		Transition:  transition,
	}, nil
}

// EvaluateProposal runs one difficulty proposal through the gate pipeline,
// updates the subject's policy counters from the decision, and appends a
// decision event to the store. The subject's current difficulty and the
// hysteresis counters are owned here, not by the caller.
func (s *Service) EvaluateProposal(ctx context.Context, p Proposal) (*policy.Decision, error) {
	if p.SubjectID == "" {
		return nil, fmt.Errorf("evaluate proposal: empty subject ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sp := s.subject(p.SubjectID)
	state := s.worstState(p.SubjectID)

	decision := s.engine.Evaluate(policy.Input{
		SubjectID:             p.SubjectID,
		ProposedAction:        p.Action,
		ProposedTarget:        p.Target,
		CurrentValue:          sp.difficulty,
		ConfidenceTier:        p.ConfidenceTier,
		PatternState:          state,
		CyclesSinceLastChange: sp.cyclesSinceLastChange,
		ConsecutiveEligible:   sp.consecutiveEligible,
	})

	sp.consecutiveEligible = decision.ConsecutiveEligible
	if decision.Approved() && decision.FinalAction != policy.ActionMaintain {
		sp.difficulty = decision.FinalTarget
		sp.cyclesSinceLastChange = 0
	} else {
		sp.cyclesSinceLastChange++
	}

	if s.eventRepo != nil {
		gates := make([]store.GateData, 0, len(decision.Gates))
		for _, g := range decision.Gates {
			gates = append(gates, store.GateData{Name: g.Name, Passed: g.Passed, Reason: g.Reason})
		}
		err := s.eventRepo.AppendDecisionEvent(ctx, store.DecisionEventData{
			DecisionID:          decision.ID,
			SubjectID:           p.SubjectID,
			ProposedAction:      string(decision.ProposedAction),
			ProposedTarget:      decision.ProposedTarget,
			FinalAction:         string(decision.FinalAction),
			FinalTarget:         decision.FinalTarget,
			BlockingGate:        decision.BlockingGate,
			Gates:               gates,
			ConfidenceTier:      string(p.ConfidenceTier),
			PatternState:        string(state),
			CyclesSinceChange:   decision.Input.CyclesSinceLastChange,
			ConsecutiveEligible: decision.ConsecutiveEligible,
		})
		if err != nil {
			return nil, fmt.Errorf("append decision event: %w", err)
		}
	}

	return decision, nil
}

// worstState returns the pattern state the gate pipeline should see for a
// subject: if any of the subject's patterns is under investigation or
// remediation, that state wins over a stable or absent one, so a single
// confirmed pattern blocks increases no matter what else is tracked.
func (s *Service) worstState(subjectID string) pattern.State {
	rank := map[pattern.State]int{
		pattern.StateNone:      0,
		pattern.StateStable:    1,
		pattern.StateSuspected: 2,
		pattern.StateConfirmed: 3,
	}
	worst := pattern.StateNone
	for _, rec := range s.records {
		if rec.SubjectID != subjectID {
			continue
		}
		if rank[rec.State] > rank[worst] {
			worst = rec.State
		}
	}
	return worst
}

// RunDecay applies temporal decay to every tracked record against now and
// returns the resulting transitions. Idempotent for a fixed now.
func (s *Service) RunDecay(now time.Time) []pattern.StateTransition {
	s.mu.Lock()
	defer s.mu.Unlock()

	var transitions []pattern.StateTransition
	for _, rec := range s.records {
		transitions = append(transitions, pattern.ApplyDecay(rec, now, s.cfg.Pattern)...)
	}
	return transitions
}

// PatternRecord returns a copy of the tracked record for one (subject,
// pattern), or nil if none exists.
func (s *Service) PatternRecord(subjectID, patternName string) *pattern.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[recordKey(subjectID, patternName)]
	if !ok {
		return nil
	}
	cp := *rec
	cp.Evidence = append([]pattern.Evidence(nil), rec.Evidence...)
	return &cp
}

// AllRecords returns copies of every tracked record.
func (s *Service) AllRecords() []*pattern.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*pattern.Record, 0, len(s.records))
	for _, rec := range s.records {
		cp := *rec
		cp.Evidence = append([]pattern.Evidence(nil), rec.Evidence...)
		result = append(result, &cp)
	}
	return result
}

// Difficulty returns the subject's current difficulty value.
func (s *Service) Difficulty(subjectID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sp, ok := s.subjects[subjectID]; ok {
		return sp.difficulty
	}
	return 0
}
