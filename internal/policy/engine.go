package policy

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AKASH-tech234/paceline/internal/calibration"
	"github.com/AKASH-tech234/paceline/internal/pattern"
)

// Engine evaluates difficulty-change proposals through the gate pipeline.
// It is a pure function of its input and config and is safe for unlimited
// concurrent callers.
type Engine struct {
	cfg Config
}

// NewEngine creates a policy engine.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Evaluate runs every gate in order and records each result. The first
// failed gate becomes the blocking gate; later gates are still evaluated so
// the audit trail always carries all five results. A blocked proposal
// downgrades to maintain at the current value.
func (e *Engine) Evaluate(in Input) *Decision {
	if !in.ProposedAction.Valid() {
		panic(fmt.Sprintf("policy: invalid action %q", in.ProposedAction))
	}
	if !in.ConfidenceTier.Valid() {
		panic(fmt.Sprintf("policy: invalid confidence tier %q", in.ConfidenceTier))
	}
	if !in.PatternState.Valid() {
		panic(fmt.Sprintf("policy: invalid pattern state %q", in.PatternState))
	}

	gates := []GateResult{
		e.confidenceGate(in),
		e.patternStateGate(in),
		e.cooldownGate(in),
		e.hysteresisGate(in),
		e.directionalBiasGate(in),
	}

	blocking := ""
	for _, g := range gates {
		if !g.Passed {
			blocking = g.Name
			break
		}
	}

	d := &Decision{
		ID:             uuid.NewString(),
		EvaluatedAt:    time.Now().UTC(),
		ProposedAction: in.ProposedAction,
		ProposedTarget: in.ProposedTarget,
		Gates:          gates,
		BlockingGate:   blocking,
		Input:          in,
	}

	if blocking == "" {
		d.FinalAction = in.ProposedAction
		d.FinalTarget = in.ProposedTarget
	} else {
		d.FinalAction = ActionMaintain
		d.FinalTarget = in.CurrentValue
	}

	d.ConsecutiveEligible = e.nextEligibleCount(in, d)
	return d
}

// nextEligibleCount advances the caller-owned hysteresis counter. An
// increase blocked only by hysteresis counts as another eligible cycle; an
// approved increase consumes the run.
func (e *Engine) nextEligibleCount(in Input, d *Decision) int {
	if in.ProposedAction != ActionIncrease {
		return in.ConsecutiveEligible
	}
	if d.BlockingGate == GateHysteresis {
		return in.ConsecutiveEligible + 1
	}
	if d.Approved() {
		return 0
	}
	return in.ConsecutiveEligible
}

// confidenceGate requires high confidence for an increase. Decreases and
// maintains always pass: lowering difficulty never needs certainty.
func (e *Engine) confidenceGate(in Input) GateResult {
	g := GateResult{Name: GateConfidence, Passed: true}

	if in.ProposedAction != ActionIncrease {
		g.Reason = fmt.Sprintf("%s does not require confidence", in.ProposedAction)
		return g
	}
	if in.ConfidenceTier == calibration.TierHigh {
		g.Reason = "high confidence tier"
		return g
	}

	g.Passed = false
	g.Reason = fmt.Sprintf("increase requires high confidence, got %s", in.ConfidenceTier)
	return g
}

// patternStateGate blocks increases while a pattern is under investigation
// or remediation. A stable pattern is a known, managed condition and does
// not block; neither does the absence of one.
func (e *Engine) patternStateGate(in Input) GateResult {
	g := GateResult{Name: GatePatternState, Passed: true}

	if in.ProposedAction != ActionIncrease {
		g.Reason = fmt.Sprintf("%s is not gated on pattern state", in.ProposedAction)
		return g
	}

	switch in.PatternState {
	case pattern.StateSuspected, pattern.StateConfirmed:
		g.Passed = false
		g.Reason = fmt.Sprintf("pattern state %s requires remediation before increase", in.PatternState)
	default:
		g.Reason = fmt.Sprintf("pattern state %s does not block", in.PatternState)
	}
	return g
}

// cooldownGate enforces a minimum number of cycles between increases.
func (e *Engine) cooldownGate(in Input) GateResult {
	g := GateResult{Name: GateCooldown, Passed: true}

	if in.ProposedAction != ActionIncrease {
		g.Reason = fmt.Sprintf("%s is not subject to cooldown", in.ProposedAction)
		return g
	}
	if in.CyclesSinceLastChange >= e.cfg.MinCyclesBetweenChanges {
		g.Reason = fmt.Sprintf("%d cycles since last change (need %d)",
			in.CyclesSinceLastChange, e.cfg.MinCyclesBetweenChanges)
		return g
	}

	g.Passed = false
	g.Reason = fmt.Sprintf("only %d cycles since last change, need %d",
		in.CyclesSinceLastChange, e.cfg.MinCyclesBetweenChanges)
	return g
}

// hysteresisGate requires a sustained run of eligible cycles before an
// increase, preventing oscillation on a single good assessment.
func (e *Engine) hysteresisGate(in Input) GateResult {
	g := GateResult{Name: GateHysteresis, Passed: true}

	if in.ProposedAction != ActionIncrease {
		g.Reason = fmt.Sprintf("%s is not subject to hysteresis", in.ProposedAction)
		return g
	}
	if in.ConsecutiveEligible >= e.cfg.MinConsecutiveEligible {
		g.Reason = fmt.Sprintf("%d consecutive eligible cycles (need %d)",
			in.ConsecutiveEligible, e.cfg.MinConsecutiveEligible)
		return g
	}

	g.Passed = false
	g.Reason = fmt.Sprintf("only %d consecutive eligible cycles, need %d",
		in.ConsecutiveEligible, e.cfg.MinConsecutiveEligible)
	return g
}

// directionalBiasGate is the final sanity check: the proposed target must
// actually move in the proposed direction.
func (e *Engine) directionalBiasGate(in Input) GateResult {
	g := GateResult{Name: GateDirectionalBias, Passed: true}

	switch in.ProposedAction {
	case ActionIncrease:
		if in.ProposedTarget <= in.CurrentValue {
			g.Passed = false
			g.Reason = fmt.Sprintf("increase target %.2f does not exceed current %.2f",
				in.ProposedTarget, in.CurrentValue)
			return g
		}
		g.Reason = "target moves upward"
	case ActionDecrease:
		if in.ProposedTarget >= in.CurrentValue {
			g.Passed = false
			g.Reason = fmt.Sprintf("decrease target %.2f is not below current %.2f",
				in.ProposedTarget, in.CurrentValue)
			return g
		}
		g.Reason = "target moves downward"
	case ActionMaintain:
		g.Reason = "maintain keeps the current value"
	}
	return g
}
