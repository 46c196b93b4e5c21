// Code generated by ent, DO NOT EDIT.

package decisionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/AKASH-tech234/paceline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// DecisionID applies equality check predicate on the "decision_id" field. It's identical to DecisionIDEQ.
func DecisionID(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldDecisionID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldSubjectID, v))
}

// ProposedAction applies equality check predicate on the "proposed_action" field. It's identical to ProposedActionEQ.
func ProposedAction(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldProposedAction, v))
}

// ProposedTarget applies equality check predicate on the "proposed_target" field. It's identical to ProposedTargetEQ.
func ProposedTarget(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldProposedTarget, v))
}

// FinalAction applies equality check predicate on the "final_action" field. It's identical to FinalActionEQ.
func FinalAction(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldFinalAction, v))
}

// FinalTarget applies equality check predicate on the "final_target" field. It's identical to FinalTargetEQ.
func FinalTarget(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldFinalTarget, v))
}

// BlockingGate applies equality check predicate on the "blocking_gate" field. It's identical to BlockingGateEQ.
func BlockingGate(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldBlockingGate, v))
}

// ConfidenceTier applies equality check predicate on the "confidence_tier" field. It's identical to ConfidenceTierEQ.
func ConfidenceTier(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldConfidenceTier, v))
}

// PatternState applies equality check predicate on the "pattern_state" field. It's identical to PatternStateEQ.
func PatternState(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldPatternState, v))
}

// CyclesSinceChange applies equality check predicate on the "cycles_since_change" field. It's identical to CyclesSinceChangeEQ.
func CyclesSinceChange(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldCyclesSinceChange, v))
}

// ConsecutiveEligible applies equality check predicate on the "consecutive_eligible" field. It's identical to ConsecutiveEligibleEQ.
func ConsecutiveEligible(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldConsecutiveEligible, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// DecisionIDEQ applies the EQ predicate on the "decision_id" field.
func DecisionIDEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldDecisionID, v))
}

// DecisionIDNEQ applies the NEQ predicate on the "decision_id" field.
func DecisionIDNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldDecisionID, v))
}

// DecisionIDIn applies the In predicate on the "decision_id" field.
func DecisionIDIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldDecisionID, vs...))
}

// DecisionIDNotIn applies the NotIn predicate on the "decision_id" field.
func DecisionIDNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldDecisionID, vs...))
}

// DecisionIDGT applies the GT predicate on the "decision_id" field.
func DecisionIDGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldDecisionID, v))
}

// DecisionIDGTE applies the GTE predicate on the "decision_id" field.
func DecisionIDGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldDecisionID, v))
}

// DecisionIDLT applies the LT predicate on the "decision_id" field.
func DecisionIDLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldDecisionID, v))
}

// DecisionIDLTE applies the LTE predicate on the "decision_id" field.
func DecisionIDLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldDecisionID, v))
}

// DecisionIDContains applies the Contains predicate on the "decision_id" field.
func DecisionIDContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldDecisionID, v))
}

// DecisionIDHasPrefix applies the HasPrefix predicate on the "decision_id" field.
func DecisionIDHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldDecisionID, v))
}

// DecisionIDHasSuffix applies the HasSuffix predicate on the "decision_id" field.
func DecisionIDHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldDecisionID, v))
}

// DecisionIDEqualFold applies the EqualFold predicate on the "decision_id" field.
func DecisionIDEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldDecisionID, v))
}

// DecisionIDContainsFold applies the ContainsFold predicate on the "decision_id" field.
func DecisionIDContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldDecisionID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldSubjectID, v))
}

// ProposedActionEQ applies the EQ predicate on the "proposed_action" field.
func ProposedActionEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldProposedAction, v))
}

// ProposedActionNEQ applies the NEQ predicate on the "proposed_action" field.
func ProposedActionNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldProposedAction, v))
}

// ProposedActionIn applies the In predicate on the "proposed_action" field.
func ProposedActionIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldProposedAction, vs...))
}

// ProposedActionNotIn applies the NotIn predicate on the "proposed_action" field.
func ProposedActionNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldProposedAction, vs...))
}

// ProposedActionGT applies the GT predicate on the "proposed_action" field.
func ProposedActionGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldProposedAction, v))
}

// ProposedActionGTE applies the GTE predicate on the "proposed_action" field.
func ProposedActionGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldProposedAction, v))
}

// ProposedActionLT applies the LT predicate on the "proposed_action" field.
func ProposedActionLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldProposedAction, v))
}

// ProposedActionLTE applies the LTE predicate on the "proposed_action" field.
func ProposedActionLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldProposedAction, v))
}

// ProposedActionContains applies the Contains predicate on the "proposed_action" field.
func ProposedActionContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldProposedAction, v))
}

// ProposedActionHasPrefix applies the HasPrefix predicate on the "proposed_action" field.
func ProposedActionHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldProposedAction, v))
}

// ProposedActionHasSuffix applies the HasSuffix predicate on the "proposed_action" field.
func ProposedActionHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldProposedAction, v))
}

// ProposedActionEqualFold applies the EqualFold predicate on the "proposed_action" field.
func ProposedActionEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldProposedAction, v))
}

// ProposedActionContainsFold applies the ContainsFold predicate on the "proposed_action" field.
func ProposedActionContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldProposedAction, v))
}

// ProposedTargetEQ applies the EQ predicate on the "proposed_target" field.
func ProposedTargetEQ(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldProposedTarget, v))
}

// ProposedTargetNEQ applies the NEQ predicate on the "proposed_target" field.
func ProposedTargetNEQ(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldProposedTarget, v))
}

// ProposedTargetIn applies the In predicate on the "proposed_target" field.
func ProposedTargetIn(vs ...float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldProposedTarget, vs...))
}

// ProposedTargetNotIn applies the NotIn predicate on the "proposed_target" field.
func ProposedTargetNotIn(vs ...float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldProposedTarget, vs...))
}

// ProposedTargetGT applies the GT predicate on the "proposed_target" field.
func ProposedTargetGT(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldProposedTarget, v))
}

// ProposedTargetGTE applies the GTE predicate on the "proposed_target" field.
func ProposedTargetGTE(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldProposedTarget, v))
}

// ProposedTargetLT applies the LT predicate on the "proposed_target" field.
func ProposedTargetLT(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldProposedTarget, v))
}

// ProposedTargetLTE applies the LTE predicate on the "proposed_target" field.
func ProposedTargetLTE(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldProposedTarget, v))
}

// FinalActionEQ applies the EQ predicate on the "final_action" field.
func FinalActionEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldFinalAction, v))
}

// FinalActionNEQ applies the NEQ predicate on the "final_action" field.
func FinalActionNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldFinalAction, v))
}

// FinalActionIn applies the In predicate on the "final_action" field.
func FinalActionIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldFinalAction, vs...))
}

// FinalActionNotIn applies the NotIn predicate on the "final_action" field.
func FinalActionNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldFinalAction, vs...))
}

// FinalActionGT applies the GT predicate on the "final_action" field.
func FinalActionGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldFinalAction, v))
}

// FinalActionGTE applies the GTE predicate on the "final_action" field.
func FinalActionGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldFinalAction, v))
}

// FinalActionLT applies the LT predicate on the "final_action" field.
func FinalActionLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldFinalAction, v))
}

// FinalActionLTE applies the LTE predicate on the "final_action" field.
func FinalActionLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldFinalAction, v))
}

// FinalActionContains applies the Contains predicate on the "final_action" field.
func FinalActionContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldFinalAction, v))
}

// FinalActionHasPrefix applies the HasPrefix predicate on the "final_action" field.
func FinalActionHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldFinalAction, v))
}

// FinalActionHasSuffix applies the HasSuffix predicate on the "final_action" field.
func FinalActionHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldFinalAction, v))
}

// FinalActionEqualFold applies the EqualFold predicate on the "final_action" field.
func FinalActionEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldFinalAction, v))
}

// FinalActionContainsFold applies the ContainsFold predicate on the "final_action" field.
func FinalActionContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldFinalAction, v))
}

// FinalTargetEQ applies the EQ predicate on the "final_target" field.
func FinalTargetEQ(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldFinalTarget, v))
}

// FinalTargetNEQ applies the NEQ predicate on the "final_target" field.
func FinalTargetNEQ(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldFinalTarget, v))
}

// FinalTargetIn applies the In predicate on the "final_target" field.
func FinalTargetIn(vs ...float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldFinalTarget, vs...))
}

// FinalTargetNotIn applies the NotIn predicate on the "final_target" field.
func FinalTargetNotIn(vs ...float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldFinalTarget, vs...))
}

// FinalTargetGT applies the GT predicate on the "final_target" field.
func FinalTargetGT(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldFinalTarget, v))
}

// FinalTargetGTE applies the GTE predicate on the "final_target" field.
func FinalTargetGTE(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldFinalTarget, v))
}

// FinalTargetLT applies the LT predicate on the "final_target" field.
func FinalTargetLT(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldFinalTarget, v))
}

// FinalTargetLTE applies the LTE predicate on the "final_target" field.
func FinalTargetLTE(v float64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldFinalTarget, v))
}

// BlockingGateEQ applies the EQ predicate on the "blocking_gate" field.
func BlockingGateEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldBlockingGate, v))
}

// BlockingGateNEQ applies the NEQ predicate on the "blocking_gate" field.
func BlockingGateNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldBlockingGate, v))
}

// BlockingGateIn applies the In predicate on the "blocking_gate" field.
func BlockingGateIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldBlockingGate, vs...))
}

// BlockingGateNotIn applies the NotIn predicate on the "blocking_gate" field.
func BlockingGateNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldBlockingGate, vs...))
}

// BlockingGateGT applies the GT predicate on the "blocking_gate" field.
func BlockingGateGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldBlockingGate, v))
}

// BlockingGateGTE applies the GTE predicate on the "blocking_gate" field.
func BlockingGateGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldBlockingGate, v))
}

// BlockingGateLT applies the LT predicate on the "blocking_gate" field.
func BlockingGateLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldBlockingGate, v))
}

// BlockingGateLTE applies the LTE predicate on the "blocking_gate" field.
func BlockingGateLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldBlockingGate, v))
}

// BlockingGateContains applies the Contains predicate on the "blocking_gate" field.
func BlockingGateContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldBlockingGate, v))
}

// BlockingGateHasPrefix applies the HasPrefix predicate on the "blocking_gate" field.
func BlockingGateHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldBlockingGate, v))
}

// BlockingGateHasSuffix applies the HasSuffix predicate on the "blocking_gate" field.
func BlockingGateHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldBlockingGate, v))
}

// BlockingGateIsNil applies the IsNil predicate on the "blocking_gate" field.
func BlockingGateIsNil() predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIsNull(FieldBlockingGate))
}

// BlockingGateNotNil applies the NotNil predicate on the "blocking_gate" field.
func BlockingGateNotNil() predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotNull(FieldBlockingGate))
}

// BlockingGateEqualFold applies the EqualFold predicate on the "blocking_gate" field.
func BlockingGateEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldBlockingGate, v))
}

// BlockingGateContainsFold applies the ContainsFold predicate on the "blocking_gate" field.
func BlockingGateContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldBlockingGate, v))
}

// ConfidenceTierEQ applies the EQ predicate on the "confidence_tier" field.
func ConfidenceTierEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldConfidenceTier, v))
}

// ConfidenceTierNEQ applies the NEQ predicate on the "confidence_tier" field.
func ConfidenceTierNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldConfidenceTier, v))
}

// ConfidenceTierIn applies the In predicate on the "confidence_tier" field.
func ConfidenceTierIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldConfidenceTier, vs...))
}

// ConfidenceTierNotIn applies the NotIn predicate on the "confidence_tier" field.
func ConfidenceTierNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldConfidenceTier, vs...))
}

// ConfidenceTierGT applies the GT predicate on the "confidence_tier" field.
func ConfidenceTierGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldConfidenceTier, v))
}

// ConfidenceTierGTE applies the GTE predicate on the "confidence_tier" field.
func ConfidenceTierGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldConfidenceTier, v))
}

// ConfidenceTierLT applies the LT predicate on the "confidence_tier" field.
func ConfidenceTierLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldConfidenceTier, v))
}

// ConfidenceTierLTE applies the LTE predicate on the "confidence_tier" field.
func ConfidenceTierLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldConfidenceTier, v))
}

// ConfidenceTierContains applies the Contains predicate on the "confidence_tier" field.
func ConfidenceTierContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldConfidenceTier, v))
}

// ConfidenceTierHasPrefix applies the HasPrefix predicate on the "confidence_tier" field.
func ConfidenceTierHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldConfidenceTier, v))
}

// ConfidenceTierHasSuffix applies the HasSuffix predicate on the "confidence_tier" field.
func ConfidenceTierHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldConfidenceTier, v))
}

// ConfidenceTierEqualFold applies the EqualFold predicate on the "confidence_tier" field.
func ConfidenceTierEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldConfidenceTier, v))
}

// ConfidenceTierContainsFold applies the ContainsFold predicate on the "confidence_tier" field.
func ConfidenceTierContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldConfidenceTier, v))
}

// PatternStateEQ applies the EQ predicate on the "pattern_state" field.
func PatternStateEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldPatternState, v))
}

// PatternStateNEQ applies the NEQ predicate on the "pattern_state" field.
func PatternStateNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldPatternState, v))
}

// PatternStateIn applies the In predicate on the "pattern_state" field.
func PatternStateIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldPatternState, vs...))
}

// PatternStateNotIn applies the NotIn predicate on the "pattern_state" field.
func PatternStateNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldPatternState, vs...))
}

// PatternStateGT applies the GT predicate on the "pattern_state" field.
func PatternStateGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldPatternState, v))
}

// PatternStateGTE applies the GTE predicate on the "pattern_state" field.
func PatternStateGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldPatternState, v))
}

// PatternStateLT applies the LT predicate on the "pattern_state" field.
func PatternStateLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldPatternState, v))
}

// PatternStateLTE applies the LTE predicate on the "pattern_state" field.
func PatternStateLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldPatternState, v))
}

// PatternStateContains applies the Contains predicate on the "pattern_state" field.
func PatternStateContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldPatternState, v))
}

// PatternStateHasPrefix applies the HasPrefix predicate on the "pattern_state" field.
func PatternStateHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldPatternState, v))
}

// PatternStateHasSuffix applies the HasSuffix predicate on the "pattern_state" field.
func PatternStateHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldPatternState, v))
}

// PatternStateEqualFold applies the EqualFold predicate on the "pattern_state" field.
func PatternStateEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldPatternState, v))
}

// PatternStateContainsFold applies the ContainsFold predicate on the "pattern_state" field.
func PatternStateContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldPatternState, v))
}

// CyclesSinceChangeEQ applies the EQ predicate on the "cycles_since_change" field.
func CyclesSinceChangeEQ(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldCyclesSinceChange, v))
}

// CyclesSinceChangeNEQ applies the NEQ predicate on the "cycles_since_change" field.
func CyclesSinceChangeNEQ(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldCyclesSinceChange, v))
}

// CyclesSinceChangeIn applies the In predicate on the "cycles_since_change" field.
func CyclesSinceChangeIn(vs ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldCyclesSinceChange, vs...))
}

// CyclesSinceChangeNotIn applies the NotIn predicate on the "cycles_since_change" field.
func CyclesSinceChangeNotIn(vs ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldCyclesSinceChange, vs...))
}

// CyclesSinceChangeGT applies the GT predicate on the "cycles_since_change" field.
func CyclesSinceChangeGT(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldCyclesSinceChange, v))
}

// CyclesSinceChangeGTE applies the GTE predicate on the "cycles_since_change" field.
func CyclesSinceChangeGTE(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldCyclesSinceChange, v))
}

// CyclesSinceChangeLT applies the LT predicate on the "cycles_since_change" field.
func CyclesSinceChangeLT(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldCyclesSinceChange, v))
}

// CyclesSinceChangeLTE applies the LTE predicate on the "cycles_since_change" field.
func CyclesSinceChangeLTE(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldCyclesSinceChange, v))
}

// ConsecutiveEligibleEQ applies the EQ predicate on the "consecutive_eligible" field.
func ConsecutiveEligibleEQ(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldConsecutiveEligible, v))
}

// ConsecutiveEligibleNEQ applies the NEQ predicate on the "consecutive_eligible" field.
func ConsecutiveEligibleNEQ(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldConsecutiveEligible, v))
}

// ConsecutiveEligibleIn applies the In predicate on the "consecutive_eligible" field.
func ConsecutiveEligibleIn(vs ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldConsecutiveEligible, vs...))
}

// ConsecutiveEligibleNotIn applies the NotIn predicate on the "consecutive_eligible" field.
func ConsecutiveEligibleNotIn(vs ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldConsecutiveEligible, vs...))
}

// ConsecutiveEligibleGT applies the GT predicate on the "consecutive_eligible" field.
func ConsecutiveEligibleGT(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldConsecutiveEligible, v))
}

// ConsecutiveEligibleGTE applies the GTE predicate on the "consecutive_eligible" field.
func ConsecutiveEligibleGTE(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldConsecutiveEligible, v))
}

// ConsecutiveEligibleLT applies the LT predicate on the "consecutive_eligible" field.
func ConsecutiveEligibleLT(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldConsecutiveEligible, v))
}

// ConsecutiveEligibleLTE applies the LTE predicate on the "consecutive_eligible" field.
func ConsecutiveEligibleLTE(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldConsecutiveEligible, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.NotPredicates(p))
}
