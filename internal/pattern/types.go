package pattern

import (
	"time"

	"github.com/AKASH-tech234/paceline/internal/calibration"
	"github.com/AKASH-tech234/paceline/internal/taxonomy"
)

// State represents a pattern's position in the confirmation lifecycle.
type State string

const (
	StateNone      State = "none"
	StateSuspected State = "suspected"
	StateConfirmed State = "confirmed"
	StateStable    State = "stable"
)

// AllStates returns all states in promotion order.
func AllStates() []State {
	return []State{StateNone, StateSuspected, StateConfirmed, StateStable}
}

// Valid reports whether s is a known state.
func (s State) Valid() bool {
	switch s {
	case StateNone, StateSuspected, StateConfirmed, StateStable:
		return true
	}
	return false
}

// Evidence is one timestamped, confidence-scored occurrence of a pattern.
// Immutable once created; owned by the Record that holds it.
type Evidence struct {
	ID            string            `json:"id"`
	Timestamp     time.Time         `json:"timestamp"`
	RawConfidence float64           `json:"raw_confidence"`
	Confidence    float64           `json:"confidence"`
	Tier          calibration.Tier  `json:"tier"`
	Category      taxonomy.Category `json:"category"`
	PatternID     string            `json:"pattern_id,omitempty"`
	ArtifactID    string            `json:"artifact_id,omitempty"`
}

// Metrics holds the derived aggregates recomputed on every mutation.
type Metrics struct {
	EvidenceCount    int     `json:"evidence_count"`
	WeightedEvidence float64 `json:"weighted_evidence"`
	MeanConfidence   float64 `json:"mean_confidence"`
	RecencyScore     float64 `json:"recency_score"`
}

// Record tracks one (subject, pattern) pair through the state machine.
type Record struct {
	SubjectID       string     `json:"subject_id"`
	PatternName     string     `json:"pattern_name"`
	State           State      `json:"state"`
	Evidence        []Evidence `json:"evidence"`
	Metrics         Metrics    `json:"metrics"`
	StateEnteredAt  time.Time  `json:"state_entered_at"`
	LastOccurrence  time.Time  `json:"last_occurrence"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`
	TransitionCount int        `json:"transition_count"`
}

// NewRecord creates a Record in the initial state.
func NewRecord(subjectID, patternName string) *Record {
	return &Record{
		SubjectID:   subjectID,
		PatternName: patternName,
		State:       StateNone,
	}
}

// StateTransition records a state change for event logging and display.
type StateTransition struct {
	SubjectID   string
	PatternName string
	From        State
	To          State
	Trigger     string // "evidence", "decay", "inactivity"
	At          time.Time
}

// Config holds the tracker's thresholds.
type Config struct {
	// HalfLifeDays controls the exponential decay of evidence weight.
	HalfLifeDays float64
	// RecencyBoostDays is the age window inside which evidence weight is
	// multiplied by RecencyBoostFactor (capped at 1.0).
	RecencyBoostDays   float64
	RecencyBoostFactor float64

	// Promotion thresholds on weighted evidence.
	SuspectThreshold float64
	ConfirmThreshold float64
	StableThreshold  float64

	// Demotion thresholds on weighted evidence, per current state.
	StableDemoteBelow    float64
	ConfirmedDemoteBelow float64
	SuspectedDemoteBelow float64

	// RecentWindowDays bounds the "recent high-tier evidence" counts used
	// for promotion, and the inactivity demotion rule.
	RecentWindowDays  float64
	MinHighForConfirm int
	MinHighForStable  int

	// MaxEvidence caps retained evidence per record; oldest items are
	// dropped first. Zero means unbounded.
	MaxEvidence int
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() Config {
	return Config{
		HalfLifeDays:         14,
		RecencyBoostDays:     3,
		RecencyBoostFactor:   1.3,
		SuspectThreshold:     1.0,
		ConfirmThreshold:     2.5,
		StableThreshold:      4.0,
		StableDemoteBelow:    2.5,
		ConfirmedDemoteBelow: 1.5,
		SuspectedDemoteBelow: 0.5,
		RecentWindowDays:     30,
		MinHighForConfirm:    2,
		MinHighForStable:     3,
		MaxEvidence:          200,
	}
}
