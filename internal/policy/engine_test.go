package policy

import (
	"testing"

	"github.com/AKASH-tech234/paceline/internal/calibration"
	"github.com/AKASH-tech234/paceline/internal/pattern"
)

// cleanIncrease is an increase proposal that passes every gate.
func cleanIncrease() Input {
	return Input{
		SubjectID:             "subj-1",
		ProposedAction:        ActionIncrease,
		ProposedTarget:        4,
		CurrentValue:          3,
		ConfidenceTier:        calibration.TierHigh,
		PatternState:          pattern.StateNone,
		CyclesSinceLastChange: 10,
		ConsecutiveEligible:   3,
	}
}

func TestEvaluate_ApprovesCleanIncrease(t *testing.T) {
	e := NewEngine(DefaultConfig())
	d := e.Evaluate(cleanIncrease())

	if !d.Approved() {
		t.Fatalf("blocked by %s, want approval", d.BlockingGate)
	}
	if d.FinalAction != ActionIncrease {
		t.Errorf("final action = %s, want increase", d.FinalAction)
	}
	if d.FinalTarget != 4 {
		t.Errorf("final target = %v, want 4", d.FinalTarget)
	}
	if d.ConsecutiveEligible != 0 {
		t.Errorf("eligible counter = %d, want 0 after approved increase", d.ConsecutiveEligible)
	}
}

func TestEvaluate_RecordsAllFiveGates(t *testing.T) {
	e := NewEngine(DefaultConfig())

	// Fails the very first gate; the audit list must still be complete.
	in := cleanIncrease()
	in.ConfidenceTier = calibration.TierLow

	d := e.Evaluate(in)
	if len(d.Gates) != 5 {
		t.Fatalf("gate list has %d entries, want 5", len(d.Gates))
	}
	for i, name := range GateNames() {
		if d.Gates[i].Name != name {
			t.Errorf("gate[%d] = %s, want %s", i, d.Gates[i].Name, name)
		}
		if d.Gates[i].Reason == "" {
			t.Errorf("gate %s has empty reason", name)
		}
	}
}

func TestEvaluate_ConfidenceGateBlocksMediumIncrease(t *testing.T) {
	e := NewEngine(DefaultConfig())
	in := cleanIncrease()
	in.ConfidenceTier = calibration.TierMedium

	d := e.Evaluate(in)
	if d.BlockingGate != GateConfidence {
		t.Errorf("blocking gate = %q, want %s", d.BlockingGate, GateConfidence)
	}
	if d.FinalAction != ActionMaintain {
		t.Errorf("final action = %s, want maintain", d.FinalAction)
	}
	if d.FinalTarget != in.CurrentValue {
		t.Errorf("final target = %v, want current value %v", d.FinalTarget, in.CurrentValue)
	}
}

func TestEvaluate_DecreaseAlwaysPassesConfidenceAndPatternGates(t *testing.T) {
	e := NewEngine(DefaultConfig())

	for _, tier := range calibration.AllTiers() {
		for _, state := range pattern.AllStates() {
			in := Input{
				SubjectID:      "subj-1",
				ProposedAction: ActionDecrease,
				ProposedTarget: 2,
				CurrentValue:   3,
				ConfidenceTier: tier,
				PatternState:   state,
			}
			d := e.Evaluate(in)

			if !d.Gates[0].Passed {
				t.Errorf("tier=%s state=%s: decrease failed confidence gate", tier, state)
			}
			if !d.Gates[1].Passed {
				t.Errorf("tier=%s state=%s: decrease failed pattern state gate", tier, state)
			}
			if !d.Approved() {
				t.Errorf("tier=%s state=%s: decrease blocked by %s", tier, state, d.BlockingGate)
			}
		}
	}
}

func TestEvaluate_GatePrecedence(t *testing.T) {
	e := NewEngine(DefaultConfig())

	// Fails both the confidence gate and the pattern state gate; the
	// blocking gate must be the first in order.
	in := cleanIncrease()
	in.ConfidenceTier = calibration.TierLow
	in.PatternState = pattern.StateConfirmed

	d := e.Evaluate(in)
	if d.BlockingGate != GateConfidence {
		t.Errorf("blocking gate = %q, want %s", d.BlockingGate, GateConfidence)
	}
	if d.Gates[1].Passed {
		t.Error("pattern state gate recorded as passed despite confirmed state")
	}
}

func TestEvaluate_PatternStateGate(t *testing.T) {
	e := NewEngine(DefaultConfig())

	tests := []struct {
		state pattern.State
		block bool
	}{
		{pattern.StateNone, false},
		{pattern.StateSuspected, true},
		{pattern.StateConfirmed, true},
		{pattern.StateStable, false},
	}

	for _, tt := range tests {
		in := cleanIncrease()
		in.PatternState = tt.state
		d := e.Evaluate(in)

		blocked := d.BlockingGate == GatePatternState
		if blocked != tt.block {
			t.Errorf("state %s: blocked=%v, want %v", tt.state, blocked, tt.block)
		}
	}
}

func TestEvaluate_CooldownGate(t *testing.T) {
	e := NewEngine(DefaultConfig())

	in := cleanIncrease()
	in.CyclesSinceLastChange = 4

	d := e.Evaluate(in)
	if d.BlockingGate != GateCooldown {
		t.Errorf("blocking gate = %q, want %s", d.BlockingGate, GateCooldown)
	}

	in.CyclesSinceLastChange = 5
	if d := e.Evaluate(in); !d.Approved() {
		t.Errorf("blocked by %s at exactly the cooldown minimum", d.BlockingGate)
	}
}

func TestEvaluate_HysteresisBlockIncrementsCounter(t *testing.T) {
	e := NewEngine(DefaultConfig())

	in := cleanIncrease()
	in.ConsecutiveEligible = 1

	d := e.Evaluate(in)
	if d.BlockingGate != GateHysteresis {
		t.Fatalf("blocking gate = %q, want %s", d.BlockingGate, GateHysteresis)
	}
	if d.FinalAction != ActionMaintain {
		t.Errorf("final action = %s, want maintain", d.FinalAction)
	}
	if d.ConsecutiveEligible != 2 {
		t.Errorf("eligible counter = %d, want 2", d.ConsecutiveEligible)
	}
}

func TestEvaluate_EarlierBlockLeavesCounterAlone(t *testing.T) {
	e := NewEngine(DefaultConfig())

	in := cleanIncrease()
	in.ConfidenceTier = calibration.TierMedium
	in.ConsecutiveEligible = 2

	d := e.Evaluate(in)
	if d.BlockingGate != GateConfidence {
		t.Fatalf("blocking gate = %q, want %s", d.BlockingGate, GateConfidence)
	}
	if d.ConsecutiveEligible != 2 {
		t.Errorf("eligible counter = %d, want unchanged 2", d.ConsecutiveEligible)
	}
}

func TestEvaluate_DirectionalBiasGate(t *testing.T) {
	e := NewEngine(DefaultConfig())

	tests := []struct {
		name    string
		action  Action
		target  float64
		current float64
		block   bool
	}{
		{"increase moving up", ActionIncrease, 4, 3, false},
		{"increase not moving", ActionIncrease, 3, 3, true},
		{"increase moving down", ActionIncrease, 2, 3, true},
		{"decrease moving down", ActionDecrease, 2, 3, false},
		{"decrease not moving", ActionDecrease, 3, 3, true},
		{"maintain", ActionMaintain, 3, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := cleanIncrease()
			in.ProposedAction = tt.action
			in.ProposedTarget = tt.target
			in.CurrentValue = tt.current

			d := e.Evaluate(in)
			blocked := d.BlockingGate == GateDirectionalBias
			if blocked != tt.block {
				t.Errorf("blocked=%v, want %v (blocking gate %q)", blocked, tt.block, d.BlockingGate)
			}
		})
	}
}

func TestEvaluate_MaintainPassesEverything(t *testing.T) {
	e := NewEngine(DefaultConfig())

	in := Input{
		SubjectID:      "subj-1",
		ProposedAction: ActionMaintain,
		ProposedTarget: 3,
		CurrentValue:   3,
		ConfidenceTier: calibration.TierLow,
		PatternState:   pattern.StateConfirmed,
	}

	d := e.Evaluate(in)
	if !d.Approved() {
		t.Errorf("maintain blocked by %s", d.BlockingGate)
	}
	if d.FinalAction != ActionMaintain {
		t.Errorf("final action = %s, want maintain", d.FinalAction)
	}
}

func TestEvaluate_InvalidActionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid action")
		}
	}()
	in := cleanIncrease()
	in.ProposedAction = Action("bogus")
	NewEngine(DefaultConfig()).Evaluate(in)
}

func TestEvaluate_InputSnapshotPreserved(t *testing.T) {
	e := NewEngine(DefaultConfig())
	in := cleanIncrease()
	d := e.Evaluate(in)

	if d.Input != in {
		t.Errorf("input snapshot = %+v, want %+v", d.Input, in)
	}
	if d.ID == "" {
		t.Error("decision ID is empty")
	}
}
