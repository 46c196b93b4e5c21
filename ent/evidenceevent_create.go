// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/AKASH-tech234/paceline/ent/evidenceevent"
)

// EvidenceEventCreate is the builder for creating a EvidenceEvent entity.
type EvidenceEventCreate struct {
	config
	mutation *EvidenceEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *EvidenceEventCreate) SetSequence(v int64) *EvidenceEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EvidenceEventCreate) SetTimestamp(v time.Time) *EvidenceEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *EvidenceEventCreate) SetNillableTimestamp(v *time.Time) *EvidenceEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetEvidenceID sets the "evidence_id" field.
func (_c *EvidenceEventCreate) SetEvidenceID(v string) *EvidenceEventCreate {
	_c.mutation.SetEvidenceID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *EvidenceEventCreate) SetSubjectID(v string) *EvidenceEventCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetPatternName sets the "pattern_name" field.
func (_c *EvidenceEventCreate) SetPatternName(v string) *EvidenceEventCreate {
	_c.mutation.SetPatternName(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *EvidenceEventCreate) SetCategory(v string) *EvidenceEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetPatternID sets the "pattern_id" field.
func (_c *EvidenceEventCreate) SetPatternID(v string) *EvidenceEventCreate {
	_c.mutation.SetPatternID(v)
	return _c
}

// SetNillablePatternID sets the "pattern_id" field if the given value is not nil.
func (_c *EvidenceEventCreate) SetNillablePatternID(v *string) *EvidenceEventCreate {
	if v != nil {
		_c.SetPatternID(*v)
	}
	return _c
}

// SetArtifactID sets the "artifact_id" field.
func (_c *EvidenceEventCreate) SetArtifactID(v string) *EvidenceEventCreate {
	_c.mutation.SetArtifactID(v)
	return _c
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_c *EvidenceEventCreate) SetNillableArtifactID(v *string) *EvidenceEventCreate {
	if v != nil {
		_c.SetArtifactID(*v)
	}
	return _c
}

// SetRawConfidence sets the "raw_confidence" field.
func (_c *EvidenceEventCreate) SetRawConfidence(v float64) *EvidenceEventCreate {
	_c.mutation.SetRawConfidence(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *EvidenceEventCreate) SetConfidence(v float64) *EvidenceEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *EvidenceEventCreate) SetTier(v string) *EvidenceEventCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetStateBefore sets the "state_before" field.
func (_c *EvidenceEventCreate) SetStateBefore(v string) *EvidenceEventCreate {
	_c.mutation.SetStateBefore(v)
	return _c
}

// SetStateAfter sets the "state_after" field.
func (_c *EvidenceEventCreate) SetStateAfter(v string) *EvidenceEventCreate {
	_c.mutation.SetStateAfter(v)
	return _c
}

// SetWeightedEvidence sets the "weighted_evidence" field.
func (_c *EvidenceEventCreate) SetWeightedEvidence(v float64) *EvidenceEventCreate {
	_c.mutation.SetWeightedEvidence(v)
	return _c
}

// Mutation returns the EvidenceEventMutation object of the builder.
func (_c *EvidenceEventCreate) Mutation() *EvidenceEventMutation {
	return _c.mutation
}

// Save creates the EvidenceEvent in the database.
func (_c *EvidenceEventCreate) Save(ctx context.Context) (*EvidenceEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvidenceEventCreate) SaveX(ctx context.Context) *EvidenceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvidenceEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := evidenceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.PatternID(); !ok {
		v := evidenceevent.DefaultPatternID
		_c.mutation.SetPatternID(v)
	}
	if _, ok := _c.mutation.ArtifactID(); !ok {
		v := evidenceevent.DefaultArtifactID
		_c.mutation.SetArtifactID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvidenceEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "EvidenceEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "EvidenceEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.EvidenceID(); !ok {
		return &ValidationError{Name: "evidence_id", err: errors.New(`ent: missing required field "EvidenceEvent.evidence_id"`)}
	}
	if v, ok := _c.mutation.EvidenceID(); ok {
		if err := evidenceevent.EvidenceIDValidator(v); err != nil {
			return &ValidationError{Name: "evidence_id", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.evidence_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "EvidenceEvent.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := evidenceevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatternName(); !ok {
		return &ValidationError{Name: "pattern_name", err: errors.New(`ent: missing required field "EvidenceEvent.pattern_name"`)}
	}
	if v, ok := _c.mutation.PatternName(); ok {
		if err := evidenceevent.PatternNameValidator(v); err != nil {
			return &ValidationError{Name: "pattern_name", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.pattern_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "EvidenceEvent.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := evidenceevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawConfidence(); !ok {
		return &ValidationError{Name: "raw_confidence", err: errors.New(`ent: missing required field "EvidenceEvent.raw_confidence"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "EvidenceEvent.confidence"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "EvidenceEvent.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := evidenceevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StateBefore(); !ok {
		return &ValidationError{Name: "state_before", err: errors.New(`ent: missing required field "EvidenceEvent.state_before"`)}
	}
	if v, ok := _c.mutation.StateBefore(); ok {
		if err := evidenceevent.StateBeforeValidator(v); err != nil {
			return &ValidationError{Name: "state_before", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.state_before": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StateAfter(); !ok {
		return &ValidationError{Name: "state_after", err: errors.New(`ent: missing required field "EvidenceEvent.state_after"`)}
	}
	if v, ok := _c.mutation.StateAfter(); ok {
		if err := evidenceevent.StateAfterValidator(v); err != nil {
			return &ValidationError{Name: "state_after", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.state_after": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WeightedEvidence(); !ok {
		return &ValidationError{Name: "weighted_evidence", err: errors.New(`ent: missing required field "EvidenceEvent.weighted_evidence"`)}
	}
	return nil
}

func (_c *EvidenceEventCreate) sqlSave(ctx context.Context) (*EvidenceEvent, error) {
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

func (_c *EvidenceEventCreate) createSpec() (*EvidenceEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EvidenceEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evidenceevent.Table, sqlgraph.NewFieldSpec(evidenceevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(evidenceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(evidenceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.EvidenceID(); ok {
		_spec.SetField(evidenceevent.FieldEvidenceID, field.TypeString, value)
		_node.EvidenceID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(evidenceevent.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.PatternName(); ok {
		_spec.SetField(evidenceevent.FieldPatternName, field.TypeString, value)
		_node.PatternName = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(evidenceevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.PatternID(); ok {
		_spec.SetField(evidenceevent.FieldPatternID, field.TypeString, value)
		_node.PatternID = value
	}
	if value, ok := _c.mutation.ArtifactID(); ok {
		_spec.SetField(evidenceevent.FieldArtifactID, field.TypeString, value)
		_node.ArtifactID = value
	}
	if value, ok := _c.mutation.RawConfidence(); ok {
		_spec.SetField(evidenceevent.FieldRawConfidence, field.TypeFloat64, value)
		_node.RawConfidence = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(evidenceevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(evidenceevent.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.StateBefore(); ok {
		_spec.SetField(evidenceevent.FieldStateBefore, field.TypeString, value)
		_node.StateBefore = value
	}
	if value, ok := _c.mutation.StateAfter(); ok {
		_spec.SetField(evidenceevent.FieldStateAfter, field.TypeString, value)
		_node.StateAfter = value
	}
	if value, ok := _c.mutation.WeightedEvidence(); ok {
		_spec.SetField(evidenceevent.FieldWeightedEvidence, field.TypeFloat64, value)
		_node.WeightedEvidence = value
	}
	return _node, _spec
}

// EvidenceEventCreateBulk is the builder for creating many EvidenceEvent entities in bulk.
type EvidenceEventCreateBulk struct {
	config
	err      error
	builders []*EvidenceEventCreate
}

// Save creates the EvidenceEvent entities in the database.
func (_c *EvidenceEventCreateBulk) Save(ctx context.Context) ([]*EvidenceEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvidenceEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvidenceEventMutation)
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
func (_c *EvidenceEventCreateBulk) SaveX(ctx context.Context) []*EvidenceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
