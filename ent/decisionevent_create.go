// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/AKASH-tech234/paceline/ent/decisionevent"
	"github.com/AKASH-tech234/paceline/ent/schema"
)

// DecisionEventCreate is the builder for creating a DecisionEvent entity.
type DecisionEventCreate struct {
	config
	mutation *DecisionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DecisionEventCreate) SetSequence(v int64) *DecisionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DecisionEventCreate) SetTimestamp(v time.Time) *DecisionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DecisionEventCreate) SetNillableTimestamp(v *time.Time) *DecisionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetDecisionID sets the "decision_id" field.
func (_c *DecisionEventCreate) SetDecisionID(v string) *DecisionEventCreate {
	_c.mutation.SetDecisionID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *DecisionEventCreate) SetSubjectID(v string) *DecisionEventCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetProposedAction sets the "proposed_action" field.
func (_c *DecisionEventCreate) SetProposedAction(v string) *DecisionEventCreate {
	_c.mutation.SetProposedAction(v)
	return _c
}

// SetProposedTarget sets the "proposed_target" field.
func (_c *DecisionEventCreate) SetProposedTarget(v float64) *DecisionEventCreate {
	_c.mutation.SetProposedTarget(v)
	return _c
}

// SetFinalAction sets the "final_action" field.
func (_c *DecisionEventCreate) SetFinalAction(v string) *DecisionEventCreate {
	_c.mutation.SetFinalAction(v)
	return _c
}

// SetFinalTarget sets the "final_target" field.
func (_c *DecisionEventCreate) SetFinalTarget(v float64) *DecisionEventCreate {
	_c.mutation.SetFinalTarget(v)
	return _c
}

// SetBlockingGate sets the "blocking_gate" field.
func (_c *DecisionEventCreate) SetBlockingGate(v string) *DecisionEventCreate {
	_c.mutation.SetBlockingGate(v)
	return _c
}

// SetNillableBlockingGate sets the "blocking_gate" field if the given value is not nil.
func (_c *DecisionEventCreate) SetNillableBlockingGate(v *string) *DecisionEventCreate {
	if v != nil {
		_c.SetBlockingGate(*v)
	}
	return _c
}

// SetGates sets the "gates" field.
func (_c *DecisionEventCreate) SetGates(v []schema.GateResultData) *DecisionEventCreate {
	_c.mutation.SetGates(v)
	return _c
}

// SetConfidenceTier sets the "confidence_tier" field.
func (_c *DecisionEventCreate) SetConfidenceTier(v string) *DecisionEventCreate {
	_c.mutation.SetConfidenceTier(v)
	return _c
}

// SetPatternState sets the "pattern_state" field.
func (_c *DecisionEventCreate) SetPatternState(v string) *DecisionEventCreate {
	_c.mutation.SetPatternState(v)
	return _c
}

// SetCyclesSinceChange sets the "cycles_since_change" field.
func (_c *DecisionEventCreate) SetCyclesSinceChange(v int) *DecisionEventCreate {
	_c.mutation.SetCyclesSinceChange(v)
	return _c
}

// SetConsecutiveEligible sets the "consecutive_eligible" field.
func (_c *DecisionEventCreate) SetConsecutiveEligible(v int) *DecisionEventCreate {
	_c.mutation.SetConsecutiveEligible(v)
	return _c
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_c *DecisionEventCreate) Mutation() *DecisionEventMutation {
	return _c.mutation
}

// Save creates the DecisionEvent in the database.
func (_c *DecisionEventCreate) Save(ctx context.Context) (*DecisionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DecisionEventCreate) SaveX(ctx context.Context) *DecisionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DecisionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := decisionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.BlockingGate(); !ok {
		v := decisionevent.DefaultBlockingGate
		_c.mutation.SetBlockingGate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DecisionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "DecisionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DecisionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.DecisionID(); !ok {
		return &ValidationError{Name: "decision_id", err: errors.New(`ent: missing required field "DecisionEvent.decision_id"`)}
	}
	if v, ok := _c.mutation.DecisionID(); ok {
		if err := decisionevent.DecisionIDValidator(v); err != nil {
			return &ValidationError{Name: "decision_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.decision_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "DecisionEvent.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := decisionevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProposedAction(); !ok {
		return &ValidationError{Name: "proposed_action", err: errors.New(`ent: missing required field "DecisionEvent.proposed_action"`)}
	}
	if v, ok := _c.mutation.ProposedAction(); ok {
		if err := decisionevent.ProposedActionValidator(v); err != nil {
			return &ValidationError{Name: "proposed_action", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.proposed_action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProposedTarget(); !ok {
		return &ValidationError{Name: "proposed_target", err: errors.New(`ent: missing required field "DecisionEvent.proposed_target"`)}
	}
	if _, ok := _c.mutation.FinalAction(); !ok {
		return &ValidationError{Name: "final_action", err: errors.New(`ent: missing required field "DecisionEvent.final_action"`)}
	}
	if v, ok := _c.mutation.FinalAction(); ok {
		if err := decisionevent.FinalActionValidator(v); err != nil {
			return &ValidationError{Name: "final_action", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.final_action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FinalTarget(); !ok {
		return &ValidationError{Name: "final_target", err: errors.New(`ent: missing required field "DecisionEvent.final_target"`)}
	}
	if _, ok := _c.mutation.Gates(); !ok {
		return &ValidationError{Name: "gates", err: errors.New(`ent: missing required field "DecisionEvent.gates"`)}
	}
	if _, ok := _c.mutation.ConfidenceTier(); !ok {
		return &ValidationError{Name: "confidence_tier", err: errors.New(`ent: missing required field "DecisionEvent.confidence_tier"`)}
	}
	if v, ok := _c.mutation.ConfidenceTier(); ok {
		if err := decisionevent.ConfidenceTierValidator(v); err != nil {
			return &ValidationError{Name: "confidence_tier", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.confidence_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatternState(); !ok {
		return &ValidationError{Name: "pattern_state", err: errors.New(`ent: missing required field "DecisionEvent.pattern_state"`)}
	}
	if v, ok := _c.mutation.PatternState(); ok {
		if err := decisionevent.PatternStateValidator(v); err != nil {
			return &ValidationError{Name: "pattern_state", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.pattern_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CyclesSinceChange(); !ok {
		return &ValidationError{Name: "cycles_since_change", err: errors.New(`ent: missing required field "DecisionEvent.cycles_since_change"`)}
	}
	if _, ok := _c.mutation.ConsecutiveEligible(); !ok {
		return &ValidationError{Name: "consecutive_eligible", err: errors.New(`ent: missing required field "DecisionEvent.consecutive_eligible"`)}
	}
	return nil
}

func (_c *DecisionEventCreate) sqlSave(ctx context.Context) (*DecisionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DecisionEventCreate) createSpec() (*DecisionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &DecisionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(decisionevent.Table, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(decisionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(decisionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.DecisionID(); ok {
		_spec.SetField(decisionevent.FieldDecisionID, field.TypeString, value)
		_node.DecisionID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(decisionevent.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.ProposedAction(); ok {
		_spec.SetField(decisionevent.FieldProposedAction, field.TypeString, value)
		_node.ProposedAction = value
	}
	if value, ok := _c.mutation.ProposedTarget(); ok {
		_spec.SetField(decisionevent.FieldProposedTarget, field.TypeFloat64, value)
		_node.ProposedTarget = value
	}
	if value, ok := _c.mutation.FinalAction(); ok {
		_spec.SetField(decisionevent.FieldFinalAction, field.TypeString, value)
		_node.FinalAction = value
	}
	if value, ok := _c.mutation.FinalTarget(); ok {
		_spec.SetField(decisionevent.FieldFinalTarget, field.TypeFloat64, value)
		_node.FinalTarget = value
	}
	if value, ok := _c.mutation.BlockingGate(); ok {
		_spec.SetField(decisionevent.FieldBlockingGate, field.TypeString, value)
		_node.BlockingGate = value
	}
	if value, ok := _c.mutation.Gates(); ok {
		_spec.SetField(decisionevent.FieldGates, field.TypeJSON, value)
		_node.Gates = value
	}
	if value, ok := _c.mutation.ConfidenceTier(); ok {
		_spec.SetField(decisionevent.FieldConfidenceTier, field.TypeString, value)
		_node.ConfidenceTier = value
	}
	if value, ok := _c.mutation.PatternState(); ok {
		_spec.SetField(decisionevent.FieldPatternState, field.TypeString, value)
		_node.PatternState = value
	}
	if value, ok := _c.mutation.CyclesSinceChange(); ok {
		_spec.SetField(decisionevent.FieldCyclesSinceChange, field.TypeInt, value)
		_node.CyclesSinceChange = value
	}
	if value, ok := _c.mutation.ConsecutiveEligible(); ok {
		_spec.SetField(decisionevent.FieldConsecutiveEligible, field.TypeInt, value)
		_node.ConsecutiveEligible = value
	}
	return _node, _spec
}

// DecisionEventCreateBulk is the builder for creating many DecisionEvent entities in bulk.
type DecisionEventCreateBulk struct {
	config
	err      error
	builders []*DecisionEventCreate
}

// Save creates the DecisionEvent entities in the database.
func (_c *DecisionEventCreateBulk) Save(ctx context.Context) ([]*DecisionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DecisionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DecisionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DecisionEventCreateBulk) SaveX(ctx context.Context) []*DecisionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
