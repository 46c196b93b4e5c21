// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/AKASH-tech234/paceline/ent/decisionevent"
	"github.com/AKASH-tech234/paceline/ent/evidenceevent"
	"github.com/AKASH-tech234/paceline/ent/predicate"
	"github.com/AKASH-tech234/paceline/ent/schema"
	"github.com/AKASH-tech234/paceline/ent/snapshot"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDecisionEvent = "DecisionEvent"
	TypeEvidenceEvent = "EvidenceEvent"
	TypeSnapshot      = "Snapshot"
)

// DecisionEventMutation represents an operation that mutates the DecisionEvent nodes in the graph.
type DecisionEventMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	sequence                *int64
	addsequence             *int64
	timestamp               *time.Time
	decision_id             *string
	subject_id              *string
	proposed_action         *string
	proposed_target         *float64
	addproposed_target      *float64
	final_action            *string
	final_target            *float64
	addfinal_target         *float64
	blocking_gate           *string
	gates                   *[]schema.GateResultData
	appendgates             []schema.GateResultData
	confidence_tier         *string
	pattern_state           *string
	cycles_since_change     *int
	addcycles_since_change  *int
	consecutive_eligible    *int
	addconsecutive_eligible *int
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*DecisionEvent, error)
	predicates              []predicate.DecisionEvent
}

var _ ent.Mutation = (*DecisionEventMutation)(nil)

// decisioneventOption allows management of the mutation configuration using functional options.
type decisioneventOption func(*DecisionEventMutation)

// newDecisionEventMutation creates new mutation for the DecisionEvent entity.
func newDecisionEventMutation(c config, op Op, opts ...decisioneventOption) *DecisionEventMutation {
	m := &DecisionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeDecisionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDecisionEventID sets the ID field of the mutation.
func withDecisionEventID(id int) decisioneventOption {
	return func(m *DecisionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *DecisionEvent
		)
		m.oldValue = func(ctx context.Context) (*DecisionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DecisionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDecisionEvent sets the old DecisionEvent of the mutation.
func withDecisionEvent(node *DecisionEvent) decisioneventOption {
	return func(m *DecisionEventMutation) {
		m.oldValue = func(context.Context) (*DecisionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DecisionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DecisionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DecisionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DecisionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DecisionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *DecisionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *DecisionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the DecisionEvent entity.
// If the DecisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *DecisionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *DecisionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *DecisionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *DecisionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *DecisionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the DecisionEvent entity.
// If the DecisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *DecisionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetDecisionID sets the "decision_id" field.
func (m *DecisionEventMutation) SetDecisionID(s string) {
	m.decision_id = &s
}

// DecisionID returns the value of the "decision_id" field in the mutation.
func (m *DecisionEventMutation) DecisionID() (r string, exists bool) {
	v := m.decision_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionID returns the old "decision_id" field's value of the DecisionEvent entity.
// If the DecisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionEventMutation) OldDecisionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionID: %w", err)
	}
	return oldValue.DecisionID, nil
}

// ResetDecisionID resets all changes to the "decision_id" field.
func (m *DecisionEventMutation) ResetDecisionID() {
	m.decision_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *DecisionEventMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *DecisionEventMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the DecisionEvent entity.
// If the DecisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionEventMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *DecisionEventMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetProposedAction sets the "proposed_action" field.
func (m *DecisionEventMutation) SetProposedAction(s string) {
	m.proposed_action = &s
}

// ProposedAction returns the value of the "proposed_action" field in the mutation.
func (m *DecisionEventMutation) ProposedAction() (r string, exists bool) {
	v := m.proposed_action
	if v == nil {
		return
	}
	return *v, true
}

// OldProposedAction returns the old "proposed_action" field's value of the DecisionEvent entity.
// If the DecisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionEventMutation) OldProposedAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposedAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposedAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposedAction: %w", err)
	}
	return oldValue.ProposedAction, nil
}

// ResetProposedAction resets all changes to the "proposed_action" field.
func (m *DecisionEventMutation) ResetProposedAction() {
	m.proposed_action = nil
}

// SetProposedTarget sets the "proposed_target" field.
func (m *DecisionEventMutation) SetProposedTarget(f float64) {
	m.proposed_target = &f
	m.addproposed_target = nil
}

// ProposedTarget returns the value of the "proposed_target" field in the mutation.
func (m *DecisionEventMutation) ProposedTarget() (r float64, exists bool) {
	v := m.proposed_target
	if v == nil {
		return
	}
	return *v, true
}

// OldProposedTarget returns the old "proposed_target" field's value of the DecisionEvent entity.
// If the DecisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionEventMutation) OldProposedTarget(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposedTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposedTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposedTarget: %w", err)
	}
	return oldValue.ProposedTarget, nil
}

// AddProposedTarget adds f to the "proposed_target" field.
func (m *DecisionEventMutation) AddProposedTarget(f float64) {
	if m.addproposed_target != nil {
		*m.addproposed_target += f
	} else {
		m.addproposed_target = &f
	}
}

// AddedProposedTarget returns the value that was added to the "proposed_target" field in this mutation.
func (m *DecisionEventMutation) AddedProposedTarget() (r float64, exists bool) {
	v := m.addproposed_target
	if v == nil {
		return
	}
	return *v, true
}

// ResetProposedTarget resets all changes to the "proposed_target" field.
func (m *DecisionEventMutation) ResetProposedTarget() {
	m.proposed_target = nil
	m.addproposed_target = nil
}

// SetFinalAction sets the "final_action" field.
func (m *DecisionEventMutation) SetFinalAction(s string) {
	m.final_action = &s
}

// FinalAction returns the value of the "final_action" field in the mutation.
func (m *DecisionEventMutation) FinalAction() (r string, exists bool) {
	v := m.final_action
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalAction returns the old "final_action" field's value of the DecisionEvent entity.
// If the DecisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionEventMutation) OldFinalAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalAction: %w", err)
	}
	return oldValue.FinalAction, nil
}

// ResetFinalAction resets all changes to the "final_action" field.
func (m *DecisionEventMutation) ResetFinalAction() {
	m.final_action = nil
}

// SetFinalTarget sets the "final_target" field.
func (m *DecisionEventMutation) SetFinalTarget(f float64) {
	m.final_target = &f
	m.addfinal_target = nil
}

// FinalTarget returns the value of the "final_target" field in the mutation.
func (m *DecisionEventMutation) FinalTarget() (r float64, exists bool) {
	v := m.final_target
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalTarget returns the old "final_target" field's value of the DecisionEvent entity.
// If the DecisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionEventMutation) OldFinalTarget(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalTarget: %w", err)
	}
	return oldValue.FinalTarget, nil
}

// AddFinalTarget adds f to the "final_target" field.
func (m *DecisionEventMutation) AddFinalTarget(f float64) {
	if m.addfinal_target != nil {
		*m.addfinal_target += f
	} else {
		m.addfinal_target = &f
	}
}

// AddedFinalTarget returns the value that was added to the "final_target" field in this mutation.
func (m *DecisionEventMutation) AddedFinalTarget() (r float64, exists bool) {
	v := m.addfinal_target
	if v == nil {
		return
	}
	return *v, true
}

// ResetFinalTarget resets all changes to the "final_target" field.
func (m *DecisionEventMutation) ResetFinalTarget() {
	m.final_target = nil
	m.addfinal_target = nil
}

// SetBlockingGate sets the "blocking_gate" field.
func (m *DecisionEventMutation) SetBlockingGate(s string) {
	m.blocking_gate = &s
}

// BlockingGate returns the value of the "blocking_gate" field in the mutation.
func (m *DecisionEventMutation) BlockingGate() (r string, exists bool) {
	v := m.blocking_gate
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockingGate returns the old "blocking_gate" field's value of the DecisionEvent entity.
// If the DecisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionEventMutation) OldBlockingGate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockingGate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockingGate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockingGate: %w", err)
	}
	return oldValue.BlockingGate, nil
}

// ClearBlockingGate clears the value of the "blocking_gate" field.
func (m *DecisionEventMutation) ClearBlockingGate() {
	m.blocking_gate = nil
	m.clearedFields[decisionevent.FieldBlockingGate] = struct{}{}
}

// BlockingGateCleared returns if the "blocking_gate" field was cleared in this mutation.
func (m *DecisionEventMutation) BlockingGateCleared() bool {
	_, ok := m.clearedFields[decisionevent.FieldBlockingGate]
	return ok
}

// ResetBlockingGate resets all changes to the "blocking_gate" field.
func (m *DecisionEventMutation) ResetBlockingGate() {
	m.blocking_gate = nil
	delete(m.clearedFields, decisionevent.FieldBlockingGate)
}

// SetGates sets the "gates" field.
func (m *DecisionEventMutation) SetGates(srd []schema.GateResultData) {
	m.gates = &srd
	m.appendgates = nil
}

// Gates returns the value of the "gates" field in the mutation.
func (m *DecisionEventMutation) Gates() (r []schema.GateResultData, exists bool) {
	v := m.gates
	if v == nil {
		return
	}
	return *v, true
}

// OldGates returns the old "gates" field's value of the DecisionEvent entity.
// If the DecisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionEventMutation) OldGates(ctx context.Context) (v []schema.GateResultData, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGates: %w", err)
	}
	return oldValue.Gates, nil
}

// AppendGates adds srd to the "gates" field.
func (m *DecisionEventMutation) AppendGates(srd []schema.GateResultData) {
	m.appendgates = append(m.appendgates, srd...)
}

// AppendedGates returns the list of values that were appended to the "gates" field in this mutation.
func (m *DecisionEventMutation) AppendedGates() ([]schema.GateResultData, bool) {
	if len(m.appendgates) == 0 {
		return nil, false
	}
	return m.appendgates, true
}

// ResetGates resets all changes to the "gates" field.
func (m *DecisionEventMutation) ResetGates() {
	m.gates = nil
	m.appendgates = nil
}

// SetConfidenceTier sets the "confidence_tier" field.
func (m *DecisionEventMutation) SetConfidenceTier(s string) {
	m.confidence_tier = &s
}

// ConfidenceTier returns the value of the "confidence_tier" field in the mutation.
func (m *DecisionEventMutation) ConfidenceTier() (r string, exists bool) {
	v := m.confidence_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceTier returns the old "confidence_tier" field's value of the DecisionEvent entity.
// If the DecisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionEventMutation) OldConfidenceTier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceTier: %w", err)
	}
	return oldValue.ConfidenceTier, nil
}

// ResetConfidenceTier resets all changes to the "confidence_tier" field.
func (m *DecisionEventMutation) ResetConfidenceTier() {
	m.confidence_tier = nil
}

// SetPatternState sets the "pattern_state" field.
func (m *DecisionEventMutation) SetPatternState(s string) {
	m.pattern_state = &s
}

// PatternState returns the value of the "pattern_state" field in the mutation.
func (m *DecisionEventMutation) PatternState() (r string, exists bool) {
	v := m.pattern_state
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternState returns the old "pattern_state" field's value of the DecisionEvent entity.
// If the DecisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionEventMutation) OldPatternState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternState: %w", err)
	}
	return oldValue.PatternState, nil
}

// ResetPatternState resets all changes to the "pattern_state" field.
func (m *DecisionEventMutation) ResetPatternState() {
	m.pattern_state = nil
}

// SetCyclesSinceChange sets the "cycles_since_change" field.
func (m *DecisionEventMutation) SetCyclesSinceChange(i int) {
	m.cycles_since_change = &i
	m.addcycles_since_change = nil
}

// CyclesSinceChange returns the value of the "cycles_since_change" field in the mutation.
func (m *DecisionEventMutation) CyclesSinceChange() (r int, exists bool) {
	v := m.cycles_since_change
	if v == nil {
		return
	}
	return *v, true
}

// OldCyclesSinceChange returns the old "cycles_since_change" field's value of the DecisionEvent entity.
// If the DecisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionEventMutation) OldCyclesSinceChange(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCyclesSinceChange is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCyclesSinceChange requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCyclesSinceChange: %w", err)
	}
	return oldValue.CyclesSinceChange, nil
}

// AddCyclesSinceChange adds i to the "cycles_since_change" field.
func (m *DecisionEventMutation) AddCyclesSinceChange(i int) {
	if m.addcycles_since_change != nil {
		*m.addcycles_since_change += i
	} else {
		m.addcycles_since_change = &i
	}
}

// AddedCyclesSinceChange returns the value that was added to the "cycles_since_change" field in this mutation.
func (m *DecisionEventMutation) AddedCyclesSinceChange() (r int, exists bool) {
	v := m.addcycles_since_change
	if v == nil {
		return
	}
	return *v, true
}

// ResetCyclesSinceChange resets all changes to the "cycles_since_change" field.
func (m *DecisionEventMutation) ResetCyclesSinceChange() {
	m.cycles_since_change = nil
	m.addcycles_since_change = nil
}

// SetConsecutiveEligible sets the "consecutive_eligible" field.
func (m *DecisionEventMutation) SetConsecutiveEligible(i int) {
	m.consecutive_eligible = &i
	m.addconsecutive_eligible = nil
}

// ConsecutiveEligible returns the value of the "consecutive_eligible" field in the mutation.
func (m *DecisionEventMutation) ConsecutiveEligible() (r int, exists bool) {
	v := m.consecutive_eligible
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveEligible returns the old "consecutive_eligible" field's value of the DecisionEvent entity.
// If the DecisionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionEventMutation) OldConsecutiveEligible(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveEligible is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveEligible requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveEligible: %w", err)
	}
	return oldValue.ConsecutiveEligible, nil
}

// AddConsecutiveEligible adds i to the "consecutive_eligible" field.
func (m *DecisionEventMutation) AddConsecutiveEligible(i int) {
	if m.addconsecutive_eligible != nil {
		*m.addconsecutive_eligible += i
	} else {
		m.addconsecutive_eligible = &i
	}
}

// AddedConsecutiveEligible returns the value that was added to the "consecutive_eligible" field in this mutation.
func (m *DecisionEventMutation) AddedConsecutiveEligible() (r int, exists bool) {
	v := m.addconsecutive_eligible
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveEligible resets all changes to the "consecutive_eligible" field.
func (m *DecisionEventMutation) ResetConsecutiveEligible() {
	m.consecutive_eligible = nil
	m.addconsecutive_eligible = nil
}

// Where appends a list predicates to the DecisionEventMutation builder.
func (m *DecisionEventMutation) Where(ps ...predicate.DecisionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DecisionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DecisionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DecisionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DecisionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DecisionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DecisionEvent).
func (m *DecisionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DecisionEventMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.sequence != nil {
		fields = append(fields, decisionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, decisionevent.FieldTimestamp)
	}
	if m.decision_id != nil {
		fields = append(fields, decisionevent.FieldDecisionID)
	}
	if m.subject_id != nil {
		fields = append(fields, decisionevent.FieldSubjectID)
	}
	if m.proposed_action != nil {
		fields = append(fields, decisionevent.FieldProposedAction)
	}
	if m.proposed_target != nil {
		fields = append(fields, decisionevent.FieldProposedTarget)
	}
	if m.final_action != nil {
		fields = append(fields, decisionevent.FieldFinalAction)
	}
	if m.final_target != nil {
		fields = append(fields, decisionevent.FieldFinalTarget)
	}
	if m.blocking_gate != nil {
		fields = append(fields, decisionevent.FieldBlockingGate)
	}
	if m.gates != nil {
		fields = append(fields, decisionevent.FieldGates)
	}
	if m.confidence_tier != nil {
		fields = append(fields, decisionevent.FieldConfidenceTier)
	}
	if m.pattern_state != nil {
		fields = append(fields, decisionevent.FieldPatternState)
	}
	if m.cycles_since_change != nil {
		fields = append(fields, decisionevent.FieldCyclesSinceChange)
	}
	if m.consecutive_eligible != nil {
		fields = append(fields, decisionevent.FieldConsecutiveEligible)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DecisionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case decisionevent.FieldSequence:
		return m.Sequence()
	case decisionevent.FieldTimestamp:
		return m.Timestamp()
	case decisionevent.FieldDecisionID:
		return m.DecisionID()
	case decisionevent.FieldSubjectID:
		return m.SubjectID()
	case decisionevent.FieldProposedAction:
		return m.ProposedAction()
	case decisionevent.FieldProposedTarget:
		return m.ProposedTarget()
	case decisionevent.FieldFinalAction:
		return m.FinalAction()
	case decisionevent.FieldFinalTarget:
		return m.FinalTarget()
	case decisionevent.FieldBlockingGate:
		return m.BlockingGate()
	case decisionevent.FieldGates:
		return m.Gates()
	case decisionevent.FieldConfidenceTier:
		return m.ConfidenceTier()
	case decisionevent.FieldPatternState:
		return m.PatternState()
	case decisionevent.FieldCyclesSinceChange:
		return m.CyclesSinceChange()
	case decisionevent.FieldConsecutiveEligible:
		return m.ConsecutiveEligible()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DecisionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case decisionevent.FieldSequence:
		return m.OldSequence(ctx)
	case decisionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case decisionevent.FieldDecisionID:
		return m.OldDecisionID(ctx)
	case decisionevent.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case decisionevent.FieldProposedAction:
		return m.OldProposedAction(ctx)
	case decisionevent.FieldProposedTarget:
		return m.OldProposedTarget(ctx)
	case decisionevent.FieldFinalAction:
		return m.OldFinalAction(ctx)
	case decisionevent.FieldFinalTarget:
		return m.OldFinalTarget(ctx)
	case decisionevent.FieldBlockingGate:
		return m.OldBlockingGate(ctx)
	case decisionevent.FieldGates:
		return m.OldGates(ctx)
	case decisionevent.FieldConfidenceTier:
		return m.OldConfidenceTier(ctx)
	case decisionevent.FieldPatternState:
		return m.OldPatternState(ctx)
	case decisionevent.FieldCyclesSinceChange:
		return m.OldCyclesSinceChange(ctx)
	case decisionevent.FieldConsecutiveEligible:
		return m.OldConsecutiveEligible(ctx)
	}
	return nil, fmt.Errorf("unknown DecisionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DecisionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case decisionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case decisionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case decisionevent.FieldDecisionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionID(v)
		return nil
	case decisionevent.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case decisionevent.FieldProposedAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposedAction(v)
		return nil
	case decisionevent.FieldProposedTarget:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposedTarget(v)
		return nil
	case decisionevent.FieldFinalAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalAction(v)
		return nil
	case decisionevent.FieldFinalTarget:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalTarget(v)
		return nil
	case decisionevent.FieldBlockingGate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockingGate(v)
		return nil
	case decisionevent.FieldGates:
		v, ok := value.([]schema.GateResultData)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGates(v)
		return nil
	case decisionevent.FieldConfidenceTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceTier(v)
		return nil
	case decisionevent.FieldPatternState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternState(v)
		return nil
	case decisionevent.FieldCyclesSinceChange:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCyclesSinceChange(v)
		return nil
	case decisionevent.FieldConsecutiveEligible:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveEligible(v)
		return nil
	}
	return fmt.Errorf("unknown DecisionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DecisionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, decisionevent.FieldSequence)
	}
	if m.addproposed_target != nil {
		fields = append(fields, decisionevent.FieldProposedTarget)
	}
	if m.addfinal_target != nil {
		fields = append(fields, decisionevent.FieldFinalTarget)
	}
	if m.addcycles_since_change != nil {
		fields = append(fields, decisionevent.FieldCyclesSinceChange)
	}
	if m.addconsecutive_eligible != nil {
		fields = append(fields, decisionevent.FieldConsecutiveEligible)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DecisionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case decisionevent.FieldSequence:
		return m.AddedSequence()
	case decisionevent.FieldProposedTarget:
		return m.AddedProposedTarget()
	case decisionevent.FieldFinalTarget:
		return m.AddedFinalTarget()
	case decisionevent.FieldCyclesSinceChange:
		return m.AddedCyclesSinceChange()
	case decisionevent.FieldConsecutiveEligible:
		return m.AddedConsecutiveEligible()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DecisionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case decisionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case decisionevent.FieldProposedTarget:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProposedTarget(v)
		return nil
	case decisionevent.FieldFinalTarget:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinalTarget(v)
		return nil
	case decisionevent.FieldCyclesSinceChange:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCyclesSinceChange(v)
		return nil
	case decisionevent.FieldConsecutiveEligible:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveEligible(v)
		return nil
	}
	return fmt.Errorf("unknown DecisionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DecisionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(decisionevent.FieldBlockingGate) {
		fields = append(fields, decisionevent.FieldBlockingGate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DecisionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DecisionEventMutation) ClearField(name string) error {
	switch name {
	case decisionevent.FieldBlockingGate:
		m.ClearBlockingGate()
		return nil
	}
	return fmt.Errorf("unknown DecisionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DecisionEventMutation) ResetField(name string) error {
	switch name {
	case decisionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case decisionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case decisionevent.FieldDecisionID:
		m.ResetDecisionID()
		return nil
	case decisionevent.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case decisionevent.FieldProposedAction:
		m.ResetProposedAction()
		return nil
	case decisionevent.FieldProposedTarget:
		m.ResetProposedTarget()
		return nil
	case decisionevent.FieldFinalAction:
		m.ResetFinalAction()
		return nil
	case decisionevent.FieldFinalTarget:
		m.ResetFinalTarget()
		return nil
	case decisionevent.FieldBlockingGate:
		m.ResetBlockingGate()
		return nil
	case decisionevent.FieldGates:
		m.ResetGates()
		return nil
	case decisionevent.FieldConfidenceTier:
		m.ResetConfidenceTier()
		return nil
	case decisionevent.FieldPatternState:
		m.ResetPatternState()
		return nil
	case decisionevent.FieldCyclesSinceChange:
		m.ResetCyclesSinceChange()
		return nil
	case decisionevent.FieldConsecutiveEligible:
		m.ResetConsecutiveEligible()
		return nil
	}
	return fmt.Errorf("unknown DecisionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DecisionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DecisionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DecisionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DecisionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DecisionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DecisionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DecisionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DecisionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DecisionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DecisionEvent edge %s", name)
}

// EvidenceEventMutation represents an operation that mutates the EvidenceEvent nodes in the graph.
type EvidenceEventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	sequence             *int64
	addsequence          *int64
	timestamp            *time.Time
	evidence_id          *string
	subject_id           *string
	pattern_name         *string
	category             *string
	pattern_id           *string
	artifact_id          *string
	raw_confidence       *float64
	addraw_confidence    *float64
	confidence           *float64
	addconfidence        *float64
	tier                 *string
	state_before         *string
	state_after          *string
	weighted_evidence    *float64
	addweighted_evidence *float64
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*EvidenceEvent, error)
	predicates           []predicate.EvidenceEvent
}

var _ ent.Mutation = (*EvidenceEventMutation)(nil)

// evidenceeventOption allows management of the mutation configuration using functional options.
type evidenceeventOption func(*EvidenceEventMutation)

// newEvidenceEventMutation creates new mutation for the EvidenceEvent entity.
func newEvidenceEventMutation(c config, op Op, opts ...evidenceeventOption) *EvidenceEventMutation {
	m := &EvidenceEventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvidenceEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvidenceEventID sets the ID field of the mutation.
func withEvidenceEventID(id int) evidenceeventOption {
	return func(m *EvidenceEventMutation) {
		var (
			err   error
			once  sync.Once
			value *EvidenceEvent
		)
		m.oldValue = func(ctx context.Context) (*EvidenceEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvidenceEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvidenceEvent sets the old EvidenceEvent of the mutation.
func withEvidenceEvent(node *EvidenceEvent) evidenceeventOption {
	return func(m *EvidenceEventMutation) {
		m.oldValue = func(context.Context) (*EvidenceEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvidenceEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvidenceEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvidenceEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvidenceEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvidenceEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *EvidenceEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *EvidenceEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the EvidenceEvent entity.
// If the EvidenceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *EvidenceEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *EvidenceEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *EvidenceEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *EvidenceEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *EvidenceEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the EvidenceEvent entity.
// If the EvidenceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *EvidenceEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetEvidenceID sets the "evidence_id" field.
func (m *EvidenceEventMutation) SetEvidenceID(s string) {
	m.evidence_id = &s
}

// EvidenceID returns the value of the "evidence_id" field in the mutation.
func (m *EvidenceEventMutation) EvidenceID() (r string, exists bool) {
	v := m.evidence_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceID returns the old "evidence_id" field's value of the EvidenceEvent entity.
// If the EvidenceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceEventMutation) OldEvidenceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceID: %w", err)
	}
	return oldValue.EvidenceID, nil
}

// ResetEvidenceID resets all changes to the "evidence_id" field.
func (m *EvidenceEventMutation) ResetEvidenceID() {
	m.evidence_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *EvidenceEventMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *EvidenceEventMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the EvidenceEvent entity.
// If the EvidenceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceEventMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *EvidenceEventMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetPatternName sets the "pattern_name" field.
func (m *EvidenceEventMutation) SetPatternName(s string) {
	m.pattern_name = &s
}

// PatternName returns the value of the "pattern_name" field in the mutation.
func (m *EvidenceEventMutation) PatternName() (r string, exists bool) {
	v := m.pattern_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternName returns the old "pattern_name" field's value of the EvidenceEvent entity.
// If the EvidenceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceEventMutation) OldPatternName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternName: %w", err)
	}
	return oldValue.PatternName, nil
}

// ResetPatternName resets all changes to the "pattern_name" field.
func (m *EvidenceEventMutation) ResetPatternName() {
	m.pattern_name = nil
}

// SetCategory sets the "category" field.
func (m *EvidenceEventMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *EvidenceEventMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the EvidenceEvent entity.
// If the EvidenceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceEventMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *EvidenceEventMutation) ResetCategory() {
	m.category = nil
}

// SetPatternID sets the "pattern_id" field.
func (m *EvidenceEventMutation) SetPatternID(s string) {
	m.pattern_id = &s
}

// PatternID returns the value of the "pattern_id" field in the mutation.
func (m *EvidenceEventMutation) PatternID() (r string, exists bool) {
	v := m.pattern_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternID returns the old "pattern_id" field's value of the EvidenceEvent entity.
// If the EvidenceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceEventMutation) OldPatternID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternID: %w", err)
	}
	return oldValue.PatternID, nil
}

// ClearPatternID clears the value of the "pattern_id" field.
func (m *EvidenceEventMutation) ClearPatternID() {
	m.pattern_id = nil
	m.clearedFields[evidenceevent.FieldPatternID] = struct{}{}
}

// PatternIDCleared returns if the "pattern_id" field was cleared in this mutation.
func (m *EvidenceEventMutation) PatternIDCleared() bool {
	_, ok := m.clearedFields[evidenceevent.FieldPatternID]
	return ok
}

// ResetPatternID resets all changes to the "pattern_id" field.
func (m *EvidenceEventMutation) ResetPatternID() {
	m.pattern_id = nil
	delete(m.clearedFields, evidenceevent.FieldPatternID)
}

// SetArtifactID sets the "artifact_id" field.
func (m *EvidenceEventMutation) SetArtifactID(s string) {
	m.artifact_id = &s
}

// ArtifactID returns the value of the "artifact_id" field in the mutation.
func (m *EvidenceEventMutation) ArtifactID() (r string, exists bool) {
	v := m.artifact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactID returns the old "artifact_id" field's value of the EvidenceEvent entity.
// If the EvidenceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceEventMutation) OldArtifactID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactID: %w", err)
	}
	return oldValue.ArtifactID, nil
}

// ClearArtifactID clears the value of the "artifact_id" field.
func (m *EvidenceEventMutation) ClearArtifactID() {
	m.artifact_id = nil
	m.clearedFields[evidenceevent.FieldArtifactID] = struct{}{}
}

// ArtifactIDCleared returns if the "artifact_id" field was cleared in this mutation.
func (m *EvidenceEventMutation) ArtifactIDCleared() bool {
	_, ok := m.clearedFields[evidenceevent.FieldArtifactID]
	return ok
}

// ResetArtifactID resets all changes to the "artifact_id" field.
func (m *EvidenceEventMutation) ResetArtifactID() {
	m.artifact_id = nil
	delete(m.clearedFields, evidenceevent.FieldArtifactID)
}

// SetRawConfidence sets the "raw_confidence" field.
func (m *EvidenceEventMutation) SetRawConfidence(f float64) {
	m.raw_confidence = &f
	m.addraw_confidence = nil
}

// RawConfidence returns the value of the "raw_confidence" field in the mutation.
func (m *EvidenceEventMutation) RawConfidence() (r float64, exists bool) {
	v := m.raw_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldRawConfidence returns the old "raw_confidence" field's value of the EvidenceEvent entity.
// If the EvidenceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceEventMutation) OldRawConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawConfidence: %w", err)
	}
	return oldValue.RawConfidence, nil
}

// AddRawConfidence adds f to the "raw_confidence" field.
func (m *EvidenceEventMutation) AddRawConfidence(f float64) {
	if m.addraw_confidence != nil {
		*m.addraw_confidence += f
	} else {
		m.addraw_confidence = &f
	}
}

// AddedRawConfidence returns the value that was added to the "raw_confidence" field in this mutation.
func (m *EvidenceEventMutation) AddedRawConfidence() (r float64, exists bool) {
	v := m.addraw_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetRawConfidence resets all changes to the "raw_confidence" field.
func (m *EvidenceEventMutation) ResetRawConfidence() {
	m.raw_confidence = nil
	m.addraw_confidence = nil
}

// SetConfidence sets the "confidence" field.
func (m *EvidenceEventMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EvidenceEventMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the EvidenceEvent entity.
// If the EvidenceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceEventMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EvidenceEventMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EvidenceEventMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EvidenceEventMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetTier sets the "tier" field.
func (m *EvidenceEventMutation) SetTier(s string) {
	m.tier = &s
}

// Tier returns the value of the "tier" field in the mutation.
func (m *EvidenceEventMutation) Tier() (r string, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the EvidenceEvent entity.
// If the EvidenceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceEventMutation) OldTier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *EvidenceEventMutation) ResetTier() {
	m.tier = nil
}

// SetStateBefore sets the "state_before" field.
func (m *EvidenceEventMutation) SetStateBefore(s string) {
	m.state_before = &s
}

// StateBefore returns the value of the "state_before" field in the mutation.
func (m *EvidenceEventMutation) StateBefore() (r string, exists bool) {
	v := m.state_before
	if v == nil {
		return
	}
	return *v, true
}

// OldStateBefore returns the old "state_before" field's value of the EvidenceEvent entity.
// If the EvidenceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceEventMutation) OldStateBefore(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateBefore: %w", err)
	}
	return oldValue.StateBefore, nil
}

// ResetStateBefore resets all changes to the "state_before" field.
func (m *EvidenceEventMutation) ResetStateBefore() {
	m.state_before = nil
}

// SetStateAfter sets the "state_after" field.
func (m *EvidenceEventMutation) SetStateAfter(s string) {
	m.state_after = &s
}

// StateAfter returns the value of the "state_after" field in the mutation.
func (m *EvidenceEventMutation) StateAfter() (r string, exists bool) {
	v := m.state_after
	if v == nil {
		return
	}
	return *v, true
}

// OldStateAfter returns the old "state_after" field's value of the EvidenceEvent entity.
// If the EvidenceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceEventMutation) OldStateAfter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateAfter: %w", err)
	}
	return oldValue.StateAfter, nil
}

// ResetStateAfter resets all changes to the "state_after" field.
func (m *EvidenceEventMutation) ResetStateAfter() {
	m.state_after = nil
}

// SetWeightedEvidence sets the "weighted_evidence" field.
func (m *EvidenceEventMutation) SetWeightedEvidence(f float64) {
	m.weighted_evidence = &f
	m.addweighted_evidence = nil
}

// WeightedEvidence returns the value of the "weighted_evidence" field in the mutation.
func (m *EvidenceEventMutation) WeightedEvidence() (r float64, exists bool) {
	v := m.weighted_evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldWeightedEvidence returns the old "weighted_evidence" field's value of the EvidenceEvent entity.
// If the EvidenceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceEventMutation) OldWeightedEvidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeightedEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeightedEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeightedEvidence: %w", err)
	}
	return oldValue.WeightedEvidence, nil
}

// AddWeightedEvidence adds f to the "weighted_evidence" field.
func (m *EvidenceEventMutation) AddWeightedEvidence(f float64) {
	if m.addweighted_evidence != nil {
		*m.addweighted_evidence += f
	} else {
		m.addweighted_evidence = &f
	}
}

// AddedWeightedEvidence returns the value that was added to the "weighted_evidence" field in this mutation.
func (m *EvidenceEventMutation) AddedWeightedEvidence() (r float64, exists bool) {
	v := m.addweighted_evidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeightedEvidence resets all changes to the "weighted_evidence" field.
func (m *EvidenceEventMutation) ResetWeightedEvidence() {
	m.weighted_evidence = nil
	m.addweighted_evidence = nil
}

// Where appends a list predicates to the EvidenceEventMutation builder.
func (m *EvidenceEventMutation) Where(ps ...predicate.EvidenceEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvidenceEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvidenceEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvidenceEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvidenceEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvidenceEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvidenceEvent).
func (m *EvidenceEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvidenceEventMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.sequence != nil {
		fields = append(fields, evidenceevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, evidenceevent.FieldTimestamp)
	}
	if m.evidence_id != nil {
		fields = append(fields, evidenceevent.FieldEvidenceID)
	}
	if m.subject_id != nil {
		fields = append(fields, evidenceevent.FieldSubjectID)
	}
	if m.pattern_name != nil {
		fields = append(fields, evidenceevent.FieldPatternName)
	}
	if m.category != nil {
		fields = append(fields, evidenceevent.FieldCategory)
	}
	if m.pattern_id != nil {
		fields = append(fields, evidenceevent.FieldPatternID)
	}
	if m.artifact_id != nil {
		fields = append(fields, evidenceevent.FieldArtifactID)
	}
	if m.raw_confidence != nil {
		fields = append(fields, evidenceevent.FieldRawConfidence)
	}
	if m.confidence != nil {
		fields = append(fields, evidenceevent.FieldConfidence)
	}
	if m.tier != nil {
		fields = append(fields, evidenceevent.FieldTier)
	}
	if m.state_before != nil {
		fields = append(fields, evidenceevent.FieldStateBefore)
	}
	if m.state_after != nil {
		fields = append(fields, evidenceevent.FieldStateAfter)
	}
	if m.weighted_evidence != nil {
		fields = append(fields, evidenceevent.FieldWeightedEvidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvidenceEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evidenceevent.FieldSequence:
		return m.Sequence()
	case evidenceevent.FieldTimestamp:
		return m.Timestamp()
	case evidenceevent.FieldEvidenceID:
		return m.EvidenceID()
	case evidenceevent.FieldSubjectID:
		return m.SubjectID()
	case evidenceevent.FieldPatternName:
		return m.PatternName()
	case evidenceevent.FieldCategory:
		return m.Category()
	case evidenceevent.FieldPatternID:
		return m.PatternID()
	case evidenceevent.FieldArtifactID:
		return m.ArtifactID()
	case evidenceevent.FieldRawConfidence:
		return m.RawConfidence()
	case evidenceevent.FieldConfidence:
		return m.Confidence()
	case evidenceevent.FieldTier:
		return m.Tier()
	case evidenceevent.FieldStateBefore:
		return m.StateBefore()
	case evidenceevent.FieldStateAfter:
		return m.StateAfter()
	case evidenceevent.FieldWeightedEvidence:
		return m.WeightedEvidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvidenceEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evidenceevent.FieldSequence:
		return m.OldSequence(ctx)
	case evidenceevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case evidenceevent.FieldEvidenceID:
		return m.OldEvidenceID(ctx)
	case evidenceevent.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case evidenceevent.FieldPatternName:
		return m.OldPatternName(ctx)
	case evidenceevent.FieldCategory:
		return m.OldCategory(ctx)
	case evidenceevent.FieldPatternID:
		return m.OldPatternID(ctx)
	case evidenceevent.FieldArtifactID:
		return m.OldArtifactID(ctx)
	case evidenceevent.FieldRawConfidence:
		return m.OldRawConfidence(ctx)
	case evidenceevent.FieldConfidence:
		return m.OldConfidence(ctx)
	case evidenceevent.FieldTier:
		return m.OldTier(ctx)
	case evidenceevent.FieldStateBefore:
		return m.OldStateBefore(ctx)
	case evidenceevent.FieldStateAfter:
		return m.OldStateAfter(ctx)
	case evidenceevent.FieldWeightedEvidence:
		return m.OldWeightedEvidence(ctx)
	}
	return nil, fmt.Errorf("unknown EvidenceEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evidenceevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case evidenceevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case evidenceevent.FieldEvidenceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceID(v)
		return nil
	case evidenceevent.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case evidenceevent.FieldPatternName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternName(v)
		return nil
	case evidenceevent.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case evidenceevent.FieldPatternID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternID(v)
		return nil
	case evidenceevent.FieldArtifactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactID(v)
		return nil
	case evidenceevent.FieldRawConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawConfidence(v)
		return nil
	case evidenceevent.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case evidenceevent.FieldTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case evidenceevent.FieldStateBefore:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateBefore(v)
		return nil
	case evidenceevent.FieldStateAfter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateAfter(v)
		return nil
	case evidenceevent.FieldWeightedEvidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeightedEvidence(v)
		return nil
	}
	return fmt.Errorf("unknown EvidenceEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvidenceEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, evidenceevent.FieldSequence)
	}
	if m.addraw_confidence != nil {
		fields = append(fields, evidenceevent.FieldRawConfidence)
	}
	if m.addconfidence != nil {
		fields = append(fields, evidenceevent.FieldConfidence)
	}
	if m.addweighted_evidence != nil {
		fields = append(fields, evidenceevent.FieldWeightedEvidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvidenceEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evidenceevent.FieldSequence:
		return m.AddedSequence()
	case evidenceevent.FieldRawConfidence:
		return m.AddedRawConfidence()
	case evidenceevent.FieldConfidence:
		return m.AddedConfidence()
	case evidenceevent.FieldWeightedEvidence:
		return m.AddedWeightedEvidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evidenceevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case evidenceevent.FieldRawConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRawConfidence(v)
		return nil
	case evidenceevent.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case evidenceevent.FieldWeightedEvidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeightedEvidence(v)
		return nil
	}
	return fmt.Errorf("unknown EvidenceEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvidenceEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evidenceevent.FieldPatternID) {
		fields = append(fields, evidenceevent.FieldPatternID)
	}
	if m.FieldCleared(evidenceevent.FieldArtifactID) {
		fields = append(fields, evidenceevent.FieldArtifactID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvidenceEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvidenceEventMutation) ClearField(name string) error {
	switch name {
	case evidenceevent.FieldPatternID:
		m.ClearPatternID()
		return nil
	case evidenceevent.FieldArtifactID:
		m.ClearArtifactID()
		return nil
	}
	return fmt.Errorf("unknown EvidenceEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvidenceEventMutation) ResetField(name string) error {
	switch name {
	case evidenceevent.FieldSequence:
		m.ResetSequence()
		return nil
	case evidenceevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case evidenceevent.FieldEvidenceID:
		m.ResetEvidenceID()
		return nil
	case evidenceevent.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case evidenceevent.FieldPatternName:
		m.ResetPatternName()
		return nil
	case evidenceevent.FieldCategory:
		m.ResetCategory()
		return nil
	case evidenceevent.FieldPatternID:
		m.ResetPatternID()
		return nil
	case evidenceevent.FieldArtifactID:
		m.ResetArtifactID()
		return nil
	case evidenceevent.FieldRawConfidence:
		m.ResetRawConfidence()
		return nil
	case evidenceevent.FieldConfidence:
		m.ResetConfidence()
		return nil
	case evidenceevent.FieldTier:
		m.ResetTier()
		return nil
	case evidenceevent.FieldStateBefore:
		m.ResetStateBefore()
		return nil
	case evidenceevent.FieldStateAfter:
		m.ResetStateAfter()
		return nil
	case evidenceevent.FieldWeightedEvidence:
		m.ResetWeightedEvidence()
		return nil
	}
	return fmt.Errorf("unknown EvidenceEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvidenceEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvidenceEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvidenceEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvidenceEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvidenceEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvidenceEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvidenceEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EvidenceEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvidenceEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EvidenceEvent edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Snapshot, error)
	predicates    []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id int) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *SnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *SnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.sequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, snapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, snapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.Sequence()
	case snapshot.FieldTimestamp:
		return m.Timestamp()
	case snapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldSequence:
		return m.OldSequence(ctx)
	case snapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case snapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case snapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case snapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case snapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case snapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Snapshot edge %s", name)
}
