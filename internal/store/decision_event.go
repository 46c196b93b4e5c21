package store

import (
	"context"
	"fmt"

	"github.com/AKASH-tech234/paceline/ent"
	"github.com/AKASH-tech234/paceline/ent/decisionevent"
	entschema "github.com/AKASH-tech234/paceline/ent/schema"
)

func (r *eventRepo) AppendDecisionEvent(ctx context.Context, data DecisionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	gates := make([]entschema.GateResultData, 0, len(data.Gates))
	for _, g := range data.Gates {
		gates = append(gates, entschema.GateResultData{
			Name:   g.Name,
			Passed: g.Passed,
			Reason: g.Reason,
		})
	}

	_, err = r.client.DecisionEvent.Create().
		SetSequence(seqNum).
		SetDecisionID(data.DecisionID).
		SetSubjectID(data.SubjectID).
		SetProposedAction(data.ProposedAction).
		SetProposedTarget(data.ProposedTarget).
		SetFinalAction(data.FinalAction).
		SetFinalTarget(data.FinalTarget).
		SetBlockingGate(data.BlockingGate).
		SetGates(gates).
		SetConfidenceTier(data.ConfidenceTier).
		SetPatternState(data.PatternState).
		SetCyclesSinceChange(data.CyclesSinceChange).
		SetConsecutiveEligible(data.ConsecutiveEligible).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save decision event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentDecisions(ctx context.Context, limit int) ([]DecisionEvent, error) {
	q := r.client.DecisionEvent.Query().
		Order(ent.Desc(decisionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query decision events: %w", err)
	}

	events := make([]DecisionEvent, 0, len(rows))
	for _, row := range rows {
		gates := make([]GateData, 0, len(row.Gates))
		for _, g := range row.Gates {
			gates = append(gates, GateData{Name: g.Name, Passed: g.Passed, Reason: g.Reason})
		}
		events = append(events, DecisionEvent{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			DecisionEventData: DecisionEventData{
				DecisionID:          row.DecisionID,
				SubjectID:           row.SubjectID,
				ProposedAction:      row.ProposedAction,
				ProposedTarget:      row.ProposedTarget,
				FinalAction:         row.FinalAction,
				FinalTarget:         row.FinalTarget,
				BlockingGate:        row.BlockingGate,
				Gates:               gates,
				ConfidenceTier:      row.ConfidenceTier,
				PatternState:        row.PatternState,
				CyclesSinceChange:   row.CyclesSinceChange,
				ConsecutiveEligible: row.ConsecutiveEligible,
			},
		})
	}
	return events, nil
}
