// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/AKASH-tech234/paceline/ent/evidenceevent"
	"github.com/AKASH-tech234/paceline/ent/predicate"
)

// EvidenceEventUpdate is the builder for updating EvidenceEvent entities.
type EvidenceEventUpdate struct {
	config
	hooks    []Hook
	mutation *EvidenceEventMutation
}

// Where appends a list predicates to the EvidenceEventUpdate builder.
func (_u *EvidenceEventUpdate) Where(ps ...predicate.EvidenceEvent) *EvidenceEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEvidenceID sets the "evidence_id" field.
func (_u *EvidenceEventUpdate) SetEvidenceID(v string) *EvidenceEventUpdate {
	_u.mutation.SetEvidenceID(v)
	return _u
}

// SetNillableEvidenceID sets the "evidence_id" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableEvidenceID(v *string) *EvidenceEventUpdate {
	if v != nil {
		_u.SetEvidenceID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *EvidenceEventUpdate) SetSubjectID(v string) *EvidenceEventUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableSubjectID(v *string) *EvidenceEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetPatternName sets the "pattern_name" field.
func (_u *EvidenceEventUpdate) SetPatternName(v string) *EvidenceEventUpdate {
	_u.mutation.SetPatternName(v)
	return _u
}

// SetNillablePatternName sets the "pattern_name" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillablePatternName(v *string) *EvidenceEventUpdate {
	if v != nil {
		_u.SetPatternName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *EvidenceEventUpdate) SetCategory(v string) *EvidenceEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableCategory(v *string) *EvidenceEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPatternID sets the "pattern_id" field.
func (_u *EvidenceEventUpdate) SetPatternID(v string) *EvidenceEventUpdate {
	_u.mutation.SetPatternID(v)
	return _u
}

// SetNillablePatternID sets the "pattern_id" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillablePatternID(v *string) *EvidenceEventUpdate {
	if v != nil {
		_u.SetPatternID(*v)
	}
	return _u
}

// ClearPatternID clears the value of the "pattern_id" field.
func (_u *EvidenceEventUpdate) ClearPatternID() *EvidenceEventUpdate {
	_u.mutation.ClearPatternID()
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *EvidenceEventUpdate) SetArtifactID(v string) *EvidenceEventUpdate {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableArtifactID(v *string) *EvidenceEventUpdate {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// ClearArtifactID clears the value of the "artifact_id" field.
func (_u *EvidenceEventUpdate) ClearArtifactID() *EvidenceEventUpdate {
	_u.mutation.ClearArtifactID()
	return _u
}

// SetRawConfidence sets the "raw_confidence" field.
func (_u *EvidenceEventUpdate) SetRawConfidence(v float64) *EvidenceEventUpdate {
	_u.mutation.ResetRawConfidence()
	_u.mutation.SetRawConfidence(v)
	return _u
}

// SetNillableRawConfidence sets the "raw_confidence" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableRawConfidence(v *float64) *EvidenceEventUpdate {
	if v != nil {
		_u.SetRawConfidence(*v)
	}
	return _u
}

// AddRawConfidence adds value to the "raw_confidence" field.
func (_u *EvidenceEventUpdate) AddRawConfidence(v float64) *EvidenceEventUpdate {
	_u.mutation.AddRawConfidence(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EvidenceEventUpdate) SetConfidence(v float64) *EvidenceEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableConfidence(v *float64) *EvidenceEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EvidenceEventUpdate) AddConfidence(v float64) *EvidenceEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *EvidenceEventUpdate) SetTier(v string) *EvidenceEventUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableTier(v *string) *EvidenceEventUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetStateBefore sets the "state_before" field.
func (_u *EvidenceEventUpdate) SetStateBefore(v string) *EvidenceEventUpdate {
	_u.mutation.SetStateBefore(v)
	return _u
}

// SetNillableStateBefore sets the "state_before" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableStateBefore(v *string) *EvidenceEventUpdate {
	if v != nil {
		_u.SetStateBefore(*v)
	}
	return _u
}

// SetStateAfter sets the "state_after" field.
func (_u *EvidenceEventUpdate) SetStateAfter(v string) *EvidenceEventUpdate {
	_u.mutation.SetStateAfter(v)
	return _u
}

// SetNillableStateAfter sets the "state_after" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableStateAfter(v *string) *EvidenceEventUpdate {
	if v != nil {
		_u.SetStateAfter(*v)
	}
	return _u
}

// SetWeightedEvidence sets the "weighted_evidence" field.
func (_u *EvidenceEventUpdate) SetWeightedEvidence(v float64) *EvidenceEventUpdate {
	_u.mutation.ResetWeightedEvidence()
	_u.mutation.SetWeightedEvidence(v)
	return _u
}

// SetNillableWeightedEvidence sets the "weighted_evidence" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableWeightedEvidence(v *float64) *EvidenceEventUpdate {
	if v != nil {
		_u.SetWeightedEvidence(*v)
	}
	return _u
}

// AddWeightedEvidence adds value to the "weighted_evidence" field.
func (_u *EvidenceEventUpdate) AddWeightedEvidence(v float64) *EvidenceEventUpdate {
	_u.mutation.AddWeightedEvidence(v)
	return _u
}

// Mutation returns the EvidenceEventMutation object of the builder.
func (_u *EvidenceEventUpdate) Mutation() *EvidenceEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvidenceEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvidenceEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceEventUpdate) check() error {
	if v, ok := _u.mutation.EvidenceID(); ok {
		if err := evidenceevent.EvidenceIDValidator(v); err != nil {
			return &ValidationError{Name: "evidence_id", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.evidence_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := evidenceevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternName(); ok {
		if err := evidenceevent.PatternNameValidator(v); err != nil {
			return &ValidationError{Name: "pattern_name", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.pattern_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := evidenceevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := evidenceevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StateBefore(); ok {
		if err := evidenceevent.StateBeforeValidator(v); err != nil {
			return &ValidationError{Name: "state_before", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.state_before": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StateAfter(); ok {
		if err := evidenceevent.StateAfterValidator(v); err != nil {
			return &ValidationError{Name: "state_after", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.state_after": %w`, err)}
		}
	}
	return nil
}

func (_u *EvidenceEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidenceevent.Table, evidenceevent.Columns, sqlgraph.NewFieldSpec(evidenceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EvidenceID(); ok {
		_spec.SetField(evidenceevent.FieldEvidenceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(evidenceevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternName(); ok {
		_spec.SetField(evidenceevent.FieldPatternName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(evidenceevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternID(); ok {
		_spec.SetField(evidenceevent.FieldPatternID, field.TypeString, value)
	}
	if _u.mutation.PatternIDCleared() {
		_spec.ClearField(evidenceevent.FieldPatternID, field.TypeString)
	}
	if value, ok := _u.mutation.ArtifactID(); ok {
		_spec.SetField(evidenceevent.FieldArtifactID, field.TypeString, value)
	}
	if _u.mutation.ArtifactIDCleared() {
		_spec.ClearField(evidenceevent.FieldArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.RawConfidence(); ok {
		_spec.SetField(evidenceevent.FieldRawConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRawConfidence(); ok {
		_spec.AddField(evidenceevent.FieldRawConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(evidenceevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(evidenceevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(evidenceevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateBefore(); ok {
		_spec.SetField(evidenceevent.FieldStateBefore, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateAfter(); ok {
		_spec.SetField(evidenceevent.FieldStateAfter, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeightedEvidence(); ok {
		_spec.SetField(evidenceevent.FieldWeightedEvidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightedEvidence(); ok {
		_spec.AddField(evidenceevent.FieldWeightedEvidence, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidenceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvidenceEventUpdateOne is the builder for updating a single EvidenceEvent entity.
type EvidenceEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvidenceEventMutation
}

// SetEvidenceID sets the "evidence_id" field.
func (_u *EvidenceEventUpdateOne) SetEvidenceID(v string) *EvidenceEventUpdateOne {
	_u.mutation.SetEvidenceID(v)
	return _u
}

// SetNillableEvidenceID sets the "evidence_id" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableEvidenceID(v *string) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetEvidenceID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *EvidenceEventUpdateOne) SetSubjectID(v string) *EvidenceEventUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableSubjectID(v *string) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetPatternName sets the "pattern_name" field.
func (_u *EvidenceEventUpdateOne) SetPatternName(v string) *EvidenceEventUpdateOne {
	_u.mutation.SetPatternName(v)
	return _u
}

// SetNillablePatternName sets the "pattern_name" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillablePatternName(v *string) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetPatternName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *EvidenceEventUpdateOne) SetCategory(v string) *EvidenceEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableCategory(v *string) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPatternID sets the "pattern_id" field.
func (_u *EvidenceEventUpdateOne) SetPatternID(v string) *EvidenceEventUpdateOne {
	_u.mutation.SetPatternID(v)
	return _u
}

// SetNillablePatternID sets the "pattern_id" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillablePatternID(v *string) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetPatternID(*v)
	}
	return _u
}

// ClearPatternID clears the value of the "pattern_id" field.
func (_u *EvidenceEventUpdateOne) ClearPatternID() *EvidenceEventUpdateOne {
	_u.mutation.ClearPatternID()
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *EvidenceEventUpdateOne) SetArtifactID(v string) *EvidenceEventUpdateOne {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableArtifactID(v *string) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// ClearArtifactID clears the value of the "artifact_id" field.
func (_u *EvidenceEventUpdateOne) ClearArtifactID() *EvidenceEventUpdateOne {
	_u.mutation.ClearArtifactID()
	return _u
}

// SetRawConfidence sets the "raw_confidence" field.
func (_u *EvidenceEventUpdateOne) SetRawConfidence(v float64) *EvidenceEventUpdateOne {
	_u.mutation.ResetRawConfidence()
	_u.mutation.SetRawConfidence(v)
	return _u
}

// SetNillableRawConfidence sets the "raw_confidence" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableRawConfidence(v *float64) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetRawConfidence(*v)
	}
	return _u
}

// AddRawConfidence adds value to the "raw_confidence" field.
func (_u *EvidenceEventUpdateOne) AddRawConfidence(v float64) *EvidenceEventUpdateOne {
	_u.mutation.AddRawConfidence(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EvidenceEventUpdateOne) SetConfidence(v float64) *EvidenceEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableConfidence(v *float64) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EvidenceEventUpdateOne) AddConfidence(v float64) *EvidenceEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *EvidenceEventUpdateOne) SetTier(v string) *EvidenceEventUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableTier(v *string) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetStateBefore sets the "state_before" field.
func (_u *EvidenceEventUpdateOne) SetStateBefore(v string) *EvidenceEventUpdateOne {
	_u.mutation.SetStateBefore(v)
	return _u
}

// SetNillableStateBefore sets the "state_before" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableStateBefore(v *string) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetStateBefore(*v)
	}
	return _u
}

// SetStateAfter sets the "state_after" field.
func (_u *EvidenceEventUpdateOne) SetStateAfter(v string) *EvidenceEventUpdateOne {
	_u.mutation.SetStateAfter(v)
	return _u
}

// SetNillableStateAfter sets the "state_after" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableStateAfter(v *string) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetStateAfter(*v)
	}
	return _u
}

// SetWeightedEvidence sets the "weighted_evidence" field.
func (_u *EvidenceEventUpdateOne) SetWeightedEvidence(v float64) *EvidenceEventUpdateOne {
	_u.mutation.ResetWeightedEvidence()
	_u.mutation.SetWeightedEvidence(v)
	return _u
}

// SetNillableWeightedEvidence sets the "weighted_evidence" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableWeightedEvidence(v *float64) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetWeightedEvidence(*v)
	}
	return _u
}

// AddWeightedEvidence adds value to the "weighted_evidence" field.
func (_u *EvidenceEventUpdateOne) AddWeightedEvidence(v float64) *EvidenceEventUpdateOne {
	_u.mutation.AddWeightedEvidence(v)
	return _u
}

// Mutation returns the EvidenceEventMutation object of the builder.
func (_u *EvidenceEventUpdateOne) Mutation() *EvidenceEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvidenceEventUpdate builder.
func (_u *EvidenceEventUpdateOne) Where(ps ...predicate.EvidenceEvent) *EvidenceEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvidenceEventUpdateOne) Select(field string, fields ...string) *EvidenceEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvidenceEvent entity.
func (_u *EvidenceEventUpdateOne) Save(ctx context.Context) (*EvidenceEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceEventUpdateOne) SaveX(ctx context.Context) *EvidenceEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvidenceEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceEventUpdateOne) check() error {
	if v, ok := _u.mutation.EvidenceID(); ok {
		if err := evidenceevent.EvidenceIDValidator(v); err != nil {
			return &ValidationError{Name: "evidence_id", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.evidence_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := evidenceevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternName(); ok {
		if err := evidenceevent.PatternNameValidator(v); err != nil {
			return &ValidationError{Name: "pattern_name", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.pattern_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := evidenceevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := evidenceevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StateBefore(); ok {
		if err := evidenceevent.StateBeforeValidator(v); err != nil {
			return &ValidationError{Name: "state_before", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.state_before": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StateAfter(); ok {
		if err := evidenceevent.StateAfterValidator(v); err != nil {
			return &ValidationError{Name: "state_after", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.state_after": %w`, err)}
		}
	}
	return nil
}

func (_u *EvidenceEventUpdateOne) sqlSave(ctx context.Context) (_node *EvidenceEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidenceevent.Table, evidenceevent.Columns, sqlgraph.NewFieldSpec(evidenceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvidenceEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evidenceevent.FieldID)
		for _, f := range fields {
			if !evidenceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evidenceevent.FieldID {
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
	if value, ok := _u.mutation.EvidenceID(); ok {
		_spec.SetField(evidenceevent.FieldEvidenceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(evidenceevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternName(); ok {
		_spec.SetField(evidenceevent.FieldPatternName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(evidenceevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternID(); ok {
		_spec.SetField(evidenceevent.FieldPatternID, field.TypeString, value)
	}
	if _u.mutation.PatternIDCleared() {
		_spec.ClearField(evidenceevent.FieldPatternID, field.TypeString)
	}
	if value, ok := _u.mutation.ArtifactID(); ok {
		_spec.SetField(evidenceevent.FieldArtifactID, field.TypeString, value)
	}
	if _u.mutation.ArtifactIDCleared() {
		_spec.ClearField(evidenceevent.FieldArtifactID, field.TypeString)
	}
	if value, ok := _u.mutation.RawConfidence(); ok {
		_spec.SetField(evidenceevent.FieldRawConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRawConfidence(); ok {
		_spec.AddField(evidenceevent.FieldRawConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(evidenceevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(evidenceevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(evidenceevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateBefore(); ok {
		_spec.SetField(evidenceevent.FieldStateBefore, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateAfter(); ok {
		_spec.SetField(evidenceevent.FieldStateAfter, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeightedEvidence(); ok {
		_spec.SetField(evidenceevent.FieldWeightedEvidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightedEvidence(); ok {
		_spec.AddField(evidenceevent.FieldWeightedEvidence, field.TypeFloat64, value)
	}
	_node = &EvidenceEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidenceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
