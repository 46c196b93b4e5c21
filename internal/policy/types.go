package policy

import (
	"time"

	"github.com/AKASH-tech234/paceline/internal/calibration"
	"github.com/AKASH-tech234/paceline/internal/pattern"
)

// Action is a proposed or approved difficulty change.
type Action string

const (
	ActionIncrease Action = "increase"
	ActionDecrease Action = "decrease"
	ActionMaintain Action = "maintain"
)

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	switch a {
	case ActionIncrease, ActionDecrease, ActionMaintain:
		return true
	}
	return false
}

// Gate names, in evaluation order.
const (
	GateConfidence      = "confidence_gate"
	GatePatternState    = "pattern_state_gate"
	GateCooldown        = "cooldown_gate"
	GateHysteresis      = "hysteresis_gate"
	GateDirectionalBias = "directional_bias_gate"
)

// GateNames returns the gate pipeline in order.
func GateNames() []string {
	return []string{GateConfidence, GatePatternState, GateCooldown, GateHysteresis, GateDirectionalBias}
}

// Input is one policy evaluation request. The caller owns and persists the
// counters; the engine holds no state between calls.
type Input struct {
	SubjectID      string
	ProposedAction Action
	ProposedTarget float64
	CurrentValue   float64

	ConfidenceTier calibration.Tier
	PatternState   pattern.State

	// CyclesSinceLastChange counts decision cycles since the difficulty
	// last moved.
	CyclesSinceLastChange int
	// ConsecutiveEligible counts consecutive cycles in which the external
	// recommender assessed the subject as eligible for an increase.
	ConsecutiveEligible int
}

// GateResult records one gate's evaluation for the audit trail.
type GateResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Reason string `json:"reason"`
}

// Decision is the audited output of one evaluation. Immutable once
// returned.
type Decision struct {
	ID          string    `json:"id"`
	EvaluatedAt time.Time `json:"evaluated_at"`

	ProposedAction Action  `json:"proposed_action"`
	ProposedTarget float64 `json:"proposed_target"`
	FinalAction    Action  `json:"final_action"`
	FinalTarget    float64 `json:"final_target"`

	// Gates holds one result per gate, in evaluation order, whether or
	// not an earlier gate failed.
	Gates []GateResult `json:"gates"`
	// BlockingGate is the name of the first failed gate, or "".
	BlockingGate string `json:"blocking_gate,omitempty"`

	// ConsecutiveEligible is the updated hysteresis counter the caller
	// must persist for the next cycle.
	ConsecutiveEligible int `json:"consecutive_eligible"`

	// Input is the snapshot the decision was computed from.
	Input Input `json:"input"`
}

// Approved reports whether the proposal passed every gate.
func (d *Decision) Approved() bool {
	return d.BlockingGate == ""
}

// Config holds the policy engine thresholds.
type Config struct {
	// MinCyclesBetweenChanges is the cooldown before another increase.
	MinCyclesBetweenChanges int
	// MinConsecutiveEligible is the hysteresis run length required before
	// an increase is allowed.
	MinConsecutiveEligible int
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() Config {
	return Config{
		MinCyclesBetweenChanges: 5,
		MinConsecutiveEligible:  3,
	}
}
