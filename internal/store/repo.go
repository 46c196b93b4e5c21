package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// EvidenceData is the stored form of one evidence item inside a pattern
// record snapshot.
type EvidenceData struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	RawConfidence float64   `json:"raw_confidence"`
	Confidence    float64   `json:"confidence"`
	Tier          string    `json:"tier"`
	Category      string    `json:"category"`
	PatternID     string    `json:"pattern_id,omitempty"`
	ArtifactID    string    `json:"artifact_id,omitempty"`
}

// PatternRecordData is the stored form of one (subject, pattern) record.
type PatternRecordData struct {
	SubjectID       string         `json:"subject_id"`
	PatternName     string         `json:"pattern_name"`
	State           string         `json:"state"`
	Evidence        []EvidenceData `json:"evidence,omitempty"`
	StateEnteredAt  *string        `json:"state_entered_at,omitempty"`
	LastOccurrence  *string        `json:"last_occurrence,omitempty"`
	ConfirmedAt     *string        `json:"confirmed_at,omitempty"`
	TransitionCount int            `json:"transition_count"`
}

// SubjectPolicyData holds the caller-owned policy counters for one subject.
type SubjectPolicyData struct {
	SubjectID             string  `json:"subject_id"`
	Difficulty            float64 `json:"difficulty"`
	CyclesSinceLastChange int     `json:"cycles_since_last_change"`
	ConsecutiveEligible   int     `json:"consecutive_eligible"`
}

// SnapshotData captures the full tracked state at a point in time.
type SnapshotData struct {
	Version int `json:"version"`
	// Patterns is keyed by "subjectID/patternName".
	Patterns map[string]*PatternRecordData `json:"patterns,omitempty"`
	// Policy is keyed by subject ID.
	Policy map[string]*SubjectPolicyData `json:"policy,omitempty"`
}

// Snapshot represents a point-in-time capture of tracked state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages tracked-state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// EvidenceEventData captures one processed diagnostic evidence item.
type EvidenceEventData struct {
	EvidenceID       string
	SubjectID        string
	PatternName      string
	Category         string
	PatternID        string
	ArtifactID       string
	RawConfidence    float64
	Confidence       float64
	Tier             string
	StateBefore      string
	StateAfter       string
	WeightedEvidence float64
}

// GateData is the stored form of one gate evaluation.
type GateData struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Reason string `json:"reason"`
}

// DecisionEventData captures one audited policy decision.
type DecisionEventData struct {
	DecisionID          string
	SubjectID           string
	ProposedAction      string
	ProposedTarget      float64
	FinalAction         string
	FinalTarget         float64
	BlockingGate        string
	Gates               []GateData
	ConfidenceTier      string
	PatternState        string
	CyclesSinceChange   int
	ConsecutiveEligible int
}

// EvidenceEvent is one stored evidence event row.
type EvidenceEvent struct {
	Sequence  int64
	Timestamp time.Time
	EvidenceEventData
}

// DecisionEvent is one stored decision event row.
type DecisionEvent struct {
	Sequence  int64
	Timestamp time.Time
	DecisionEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendEvidenceEvent records one processed evidence item.
	AppendEvidenceEvent(ctx context.Context, data EvidenceEventData) error

	// AppendDecisionEvent records one policy decision.
	AppendDecisionEvent(ctx context.Context, data DecisionEventData) error

	// QueryEvidence returns evidence events for a subject, oldest first.
	// An empty subjectID returns events for every subject.
	QueryEvidence(ctx context.Context, subjectID string, opts QueryOpts) ([]EvidenceEvent, error)

	// RecentDecisions returns the most recent decision events, newest first.
	RecentDecisions(ctx context.Context, limit int) ([]DecisionEvent, error)

	// LatestEvidenceTime returns the timestamp of the most recent evidence
	// for a (subject, pattern), or the zero time if none exists.
	LatestEvidenceTime(ctx context.Context, subjectID, patternName string) (time.Time, error)
}
