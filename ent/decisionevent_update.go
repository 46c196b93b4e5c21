// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/AKASH-tech234/paceline/ent/decisionevent"
	"github.com/AKASH-tech234/paceline/ent/predicate"
	"github.com/AKASH-tech234/paceline/ent/schema"
)

// DecisionEventUpdate is the builder for updating DecisionEvent entities.
type DecisionEventUpdate struct {
	config
	hooks    []Hook
	mutation *DecisionEventMutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdate) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDecisionID sets the "decision_id" field.
func (_u *DecisionEventUpdate) SetDecisionID(v string) *DecisionEventUpdate {
	_u.mutation.SetDecisionID(v)
	return _u
}

// SetNillableDecisionID sets the "decision_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableDecisionID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetDecisionID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *DecisionEventUpdate) SetSubjectID(v string) *DecisionEventUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableSubjectID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetProposedAction sets the "proposed_action" field.
func (_u *DecisionEventUpdate) SetProposedAction(v string) *DecisionEventUpdate {
	_u.mutation.SetProposedAction(v)
	return _u
}

// SetNillableProposedAction sets the "proposed_action" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableProposedAction(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetProposedAction(*v)
	}
	return _u
}

// SetProposedTarget sets the "proposed_target" field.
func (_u *DecisionEventUpdate) SetProposedTarget(v float64) *DecisionEventUpdate {
	_u.mutation.ResetProposedTarget()
	_u.mutation.SetProposedTarget(v)
	return _u
}

// SetNillableProposedTarget sets the "proposed_target" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableProposedTarget(v *float64) *DecisionEventUpdate {
	if v != nil {
		_u.SetProposedTarget(*v)
	}
	return _u
}

// AddProposedTarget adds value to the "proposed_target" field.
func (_u *DecisionEventUpdate) AddProposedTarget(v float64) *DecisionEventUpdate {
	_u.mutation.AddProposedTarget(v)
	return _u
}

// SetFinalAction sets the "final_action" field.
func (_u *DecisionEventUpdate) SetFinalAction(v string) *DecisionEventUpdate {
	_u.mutation.SetFinalAction(v)
	return _u
}

// SetNillableFinalAction sets the "final_action" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableFinalAction(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetFinalAction(*v)
	}
	return _u
}

// SetFinalTarget sets the "final_target" field.
func (_u *DecisionEventUpdate) SetFinalTarget(v float64) *DecisionEventUpdate {
	_u.mutation.ResetFinalTarget()
	_u.mutation.SetFinalTarget(v)
	return _u
}

// SetNillableFinalTarget sets the "final_target" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableFinalTarget(v *float64) *DecisionEventUpdate {
	if v != nil {
		_u.SetFinalTarget(*v)
	}
	return _u
}

// AddFinalTarget adds value to the "final_target" field.
func (_u *DecisionEventUpdate) AddFinalTarget(v float64) *DecisionEventUpdate {
	_u.mutation.AddFinalTarget(v)
	return _u
}

// SetBlockingGate sets the "blocking_gate" field.
func (_u *DecisionEventUpdate) SetBlockingGate(v string) *DecisionEventUpdate {
	_u.mutation.SetBlockingGate(v)
	return _u
}

// SetNillableBlockingGate sets the "blocking_gate" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableBlockingGate(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetBlockingGate(*v)
	}
	return _u
}

// ClearBlockingGate clears the value of the "blocking_gate" field.
func (_u *DecisionEventUpdate) ClearBlockingGate() *DecisionEventUpdate {
	_u.mutation.ClearBlockingGate()
	return _u
}

// SetGates sets the "gates" field.
func (_u *DecisionEventUpdate) SetGates(v []schema.GateResultData) *DecisionEventUpdate {
	_u.mutation.SetGates(v)
	return _u
}

// AppendGates appends value to the "gates" field.
func (_u *DecisionEventUpdate) AppendGates(v []schema.GateResultData) *DecisionEventUpdate {
	_u.mutation.AppendGates(v)
	return _u
}

// SetConfidenceTier sets the "confidence_tier" field.
func (_u *DecisionEventUpdate) SetConfidenceTier(v string) *DecisionEventUpdate {
	_u.mutation.SetConfidenceTier(v)
	return _u
}

// SetNillableConfidenceTier sets the "confidence_tier" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableConfidenceTier(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetConfidenceTier(*v)
	}
	return _u
}

// SetPatternState sets the "pattern_state" field.
func (_u *DecisionEventUpdate) SetPatternState(v string) *DecisionEventUpdate {
	_u.mutation.SetPatternState(v)
	return _u
}

// SetNillablePatternState sets the "pattern_state" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillablePatternState(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetPatternState(*v)
	}
	return _u
}

// SetCyclesSinceChange sets the "cycles_since_change" field.
func (_u *DecisionEventUpdate) SetCyclesSinceChange(v int) *DecisionEventUpdate {
	_u.mutation.ResetCyclesSinceChange()
	_u.mutation.SetCyclesSinceChange(v)
	return _u
}

// SetNillableCyclesSinceChange sets the "cycles_since_change" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableCyclesSinceChange(v *int) *DecisionEventUpdate {
	if v != nil {
		_u.SetCyclesSinceChange(*v)
	}
	return _u
}

// AddCyclesSinceChange adds value to the "cycles_since_change" field.
func (_u *DecisionEventUpdate) AddCyclesSinceChange(v int) *DecisionEventUpdate {
	_u.mutation.AddCyclesSinceChange(v)
	return _u
}

// SetConsecutiveEligible sets the "consecutive_eligible" field.
func (_u *DecisionEventUpdate) SetConsecutiveEligible(v int) *DecisionEventUpdate {
	_u.mutation.ResetConsecutiveEligible()
	_u.mutation.SetConsecutiveEligible(v)
	return _u
}

// SetNillableConsecutiveEligible sets the "consecutive_eligible" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableConsecutiveEligible(v *int) *DecisionEventUpdate {
	if v != nil {
		_u.SetConsecutiveEligible(*v)
	}
	return _u
}

// AddConsecutiveEligible adds value to the "consecutive_eligible" field.
func (_u *DecisionEventUpdate) AddConsecutiveEligible(v int) *DecisionEventUpdate {
	_u.mutation.AddConsecutiveEligible(v)
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdate) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DecisionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DecisionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionEventUpdate) check() error {
	if v, ok := _u.mutation.DecisionID(); ok {
		if err := decisionevent.DecisionIDValidator(v); err != nil {
			return &ValidationError{Name: "decision_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.decision_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := decisionevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProposedAction(); ok {
		if err := decisionevent.ProposedActionValidator(v); err != nil {
			return &ValidationError{Name: "proposed_action", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.proposed_action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FinalAction(); ok {
		if err := decisionevent.FinalActionValidator(v); err != nil {
			return &ValidationError{Name: "final_action", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.final_action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceTier(); ok {
		if err := decisionevent.ConfidenceTierValidator(v); err != nil {
			return &ValidationError{Name: "confidence_tier", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.confidence_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternState(); ok {
		if err := decisionevent.PatternStateValidator(v); err != nil {
			return &ValidationError{Name: "pattern_state", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.pattern_state": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DecisionID(); ok {
		_spec.SetField(decisionevent.FieldDecisionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(decisionevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposedAction(); ok {
		_spec.SetField(decisionevent.FieldProposedAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposedTarget(); ok {
		_spec.SetField(decisionevent.FieldProposedTarget, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProposedTarget(); ok {
		_spec.AddField(decisionevent.FieldProposedTarget, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinalAction(); ok {
		_spec.SetField(decisionevent.FieldFinalAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalTarget(); ok {
		_spec.SetField(decisionevent.FieldFinalTarget, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalTarget(); ok {
		_spec.AddField(decisionevent.FieldFinalTarget, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BlockingGate(); ok {
		_spec.SetField(decisionevent.FieldBlockingGate, field.TypeString, value)
	}
	if _u.mutation.BlockingGateCleared() {
		_spec.ClearField(decisionevent.FieldBlockingGate, field.TypeString)
	}
	if value, ok := _u.mutation.Gates(); ok {
		_spec.SetField(decisionevent.FieldGates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, decisionevent.FieldGates, value)
		})
	}
	if value, ok := _u.mutation.ConfidenceTier(); ok {
		_spec.SetField(decisionevent.FieldConfidenceTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternState(); ok {
		_spec.SetField(decisionevent.FieldPatternState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CyclesSinceChange(); ok {
		_spec.SetField(decisionevent.FieldCyclesSinceChange, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCyclesSinceChange(); ok {
		_spec.AddField(decisionevent.FieldCyclesSinceChange, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveEligible(); ok {
		_spec.SetField(decisionevent.FieldConsecutiveEligible, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveEligible(); ok {
		_spec.AddField(decisionevent.FieldConsecutiveEligible, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DecisionEventUpdateOne is the builder for updating a single DecisionEvent entity.
type DecisionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DecisionEventMutation
}

// SetDecisionID sets the "decision_id" field.
func (_u *DecisionEventUpdateOne) SetDecisionID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetDecisionID(v)
	return _u
}

// SetNillableDecisionID sets the "decision_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableDecisionID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetDecisionID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *DecisionEventUpdateOne) SetSubjectID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableSubjectID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetProposedAction sets the "proposed_action" field.
func (_u *DecisionEventUpdateOne) SetProposedAction(v string) *DecisionEventUpdateOne {
	_u.mutation.SetProposedAction(v)
	return _u
}

// SetNillableProposedAction sets the "proposed_action" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableProposedAction(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetProposedAction(*v)
	}
	return _u
}

// SetProposedTarget sets the "proposed_target" field.
func (_u *DecisionEventUpdateOne) SetProposedTarget(v float64) *DecisionEventUpdateOne {
	_u.mutation.ResetProposedTarget()
	_u.mutation.SetProposedTarget(v)
	return _u
}

// SetNillableProposedTarget sets the "proposed_target" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableProposedTarget(v *float64) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetProposedTarget(*v)
	}
	return _u
}

// AddProposedTarget adds value to the "proposed_target" field.
func (_u *DecisionEventUpdateOne) AddProposedTarget(v float64) *DecisionEventUpdateOne {
	_u.mutation.AddProposedTarget(v)
	return _u
}

// SetFinalAction sets the "final_action" field.
func (_u *DecisionEventUpdateOne) SetFinalAction(v string) *DecisionEventUpdateOne {
	_u.mutation.SetFinalAction(v)
	return _u
}

// SetNillableFinalAction sets the "final_action" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableFinalAction(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetFinalAction(*v)
	}
	return _u
}

// SetFinalTarget sets the "final_target" field.
func (_u *DecisionEventUpdateOne) SetFinalTarget(v float64) *DecisionEventUpdateOne {
	_u.mutation.ResetFinalTarget()
	_u.mutation.SetFinalTarget(v)
	return _u
}

// SetNillableFinalTarget sets the "final_target" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableFinalTarget(v *float64) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetFinalTarget(*v)
	}
	return _u
}

// AddFinalTarget adds value to the "final_target" field.
func (_u *DecisionEventUpdateOne) AddFinalTarget(v float64) *DecisionEventUpdateOne {
	_u.mutation.AddFinalTarget(v)
	return _u
}

// SetBlockingGate sets the "blocking_gate" field.
func (_u *DecisionEventUpdateOne) SetBlockingGate(v string) *DecisionEventUpdateOne {
	_u.mutation.SetBlockingGate(v)
	return _u
}

// SetNillableBlockingGate sets the "blocking_gate" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableBlockingGate(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetBlockingGate(*v)
	}
	return _u
}

// ClearBlockingGate clears the value of the "blocking_gate" field.
func (_u *DecisionEventUpdateOne) ClearBlockingGate() *DecisionEventUpdateOne {
	_u.mutation.ClearBlockingGate()
	return _u
}

// SetGates sets the "gates" field.
func (_u *DecisionEventUpdateOne) SetGates(v []schema.GateResultData) *DecisionEventUpdateOne {
	_u.mutation.SetGates(v)
	return _u
}

// AppendGates appends value to the "gates" field.
func (_u *DecisionEventUpdateOne) AppendGates(v []schema.GateResultData) *DecisionEventUpdateOne {
	_u.mutation.AppendGates(v)
	return _u
}

// SetConfidenceTier sets the "confidence_tier" field.
func (_u *DecisionEventUpdateOne) SetConfidenceTier(v string) *DecisionEventUpdateOne {
	_u.mutation.SetConfidenceTier(v)
	return _u
}

// SetNillableConfidenceTier sets the "confidence_tier" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableConfidenceTier(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetConfidenceTier(*v)
	}
	return _u
}

// SetPatternState sets the "pattern_state" field.
func (_u *DecisionEventUpdateOne) SetPatternState(v string) *DecisionEventUpdateOne {
	_u.mutation.SetPatternState(v)
	return _u
}

// SetNillablePatternState sets the "pattern_state" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillablePatternState(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetPatternState(*v)
	}
	return _u
}

// SetCyclesSinceChange sets the "cycles_since_change" field.
func (_u *DecisionEventUpdateOne) SetCyclesSinceChange(v int) *DecisionEventUpdateOne {
	_u.mutation.ResetCyclesSinceChange()
	_u.mutation.SetCyclesSinceChange(v)
	return _u
}

// SetNillableCyclesSinceChange sets the "cycles_since_change" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableCyclesSinceChange(v *int) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetCyclesSinceChange(*v)
	}
	return _u
}

// AddCyclesSinceChange adds value to the "cycles_since_change" field.
func (_u *DecisionEventUpdateOne) AddCyclesSinceChange(v int) *DecisionEventUpdateOne {
	_u.mutation.AddCyclesSinceChange(v)
	return _u
}

// SetConsecutiveEligible sets the "consecutive_eligible" field.
func (_u *DecisionEventUpdateOne) SetConsecutiveEligible(v int) *DecisionEventUpdateOne {
	_u.mutation.ResetConsecutiveEligible()
	_u.mutation.SetConsecutiveEligible(v)
	return _u
}

// SetNillableConsecutiveEligible sets the "consecutive_eligible" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableConsecutiveEligible(v *int) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetConsecutiveEligible(*v)
	}
	return _u
}

// AddConsecutiveEligible adds value to the "consecutive_eligible" field.
func (_u *DecisionEventUpdateOne) AddConsecutiveEligible(v int) *DecisionEventUpdateOne {
	_u.mutation.AddConsecutiveEligible(v)
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdateOne) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdateOne) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DecisionEventUpdateOne) Select(field string, fields ...string) *DecisionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DecisionEvent entity.
func (_u *DecisionEventUpdateOne) Save(ctx context.Context) (*DecisionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) SaveX(ctx context.Context) *DecisionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DecisionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionEventUpdateOne) check() error {
	if v, ok := _u.mutation.DecisionID(); ok {
		if err := decisionevent.DecisionIDValidator(v); err != nil {
			return &ValidationError{Name: "decision_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.decision_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := decisionevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProposedAction(); ok {
		if err := decisionevent.ProposedActionValidator(v); err != nil {
			return &ValidationError{Name: "proposed_action", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.proposed_action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FinalAction(); ok {
		if err := decisionevent.FinalActionValidator(v); err != nil {
			return &ValidationError{Name: "final_action", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.final_action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceTier(); ok {
		if err := decisionevent.ConfidenceTierValidator(v); err != nil {
			return &ValidationError{Name: "confidence_tier", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.confidence_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternState(); ok {
		if err := decisionevent.PatternStateValidator(v); err != nil {
			return &ValidationError{Name: "pattern_state", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.pattern_state": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionEventUpdateOne) sqlSave(ctx context.Context) (_node *DecisionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DecisionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, decisionevent.FieldID)
		for _, f := range fields {
			if !decisionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != decisionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DecisionID(); ok {
		_spec.SetField(decisionevent.FieldDecisionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(decisionevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposedAction(); ok {
		_spec.SetField(decisionevent.FieldProposedAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposedTarget(); ok {
		_spec.SetField(decisionevent.FieldProposedTarget, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProposedTarget(); ok {
		_spec.AddField(decisionevent.FieldProposedTarget, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinalAction(); ok {
		_spec.SetField(decisionevent.FieldFinalAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalTarget(); ok {
		_spec.SetField(decisionevent.FieldFinalTarget, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalTarget(); ok {
		_spec.AddField(decisionevent.FieldFinalTarget, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BlockingGate(); ok {
		_spec.SetField(decisionevent.FieldBlockingGate, field.TypeString, value)
	}
	if _u.mutation.BlockingGateCleared() {
		_spec.ClearField(decisionevent.FieldBlockingGate, field.TypeString)
	}
	if value, ok := _u.mutation.Gates(); ok {
		_spec.SetField(decisionevent.FieldGates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, decisionevent.FieldGates, value)
		})
	}
	if value, ok := _u.mutation.ConfidenceTier(); ok {
		_spec.SetField(decisionevent.FieldConfidenceTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternState(); ok {
		_spec.SetField(decisionevent.FieldPatternState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CyclesSinceChange(); ok {
		_spec.SetField(decisionevent.FieldCyclesSinceChange, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCyclesSinceChange(); ok {
		_spec.AddField(decisionevent.FieldCyclesSinceChange, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveEligible(); ok {
		_spec.SetField(decisionevent.FieldConsecutiveEligible, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveEligible(); ok {
		_spec.AddField(decisionevent.FieldConsecutiveEligible, field.TypeInt, value)
	}
	_node = &DecisionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
