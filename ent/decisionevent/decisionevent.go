// Code generated by ent, DO NOT EDIT.

package decisionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the decisionevent type in the database.
	Label = "decision_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldDecisionID holds the string denoting the decision_id field in the database.
	FieldDecisionID = "decision_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldProposedAction holds the string denoting the proposed_action field in the database.
	FieldProposedAction = "proposed_action"
	// FieldProposedTarget holds the string denoting the proposed_target field in the database.
	FieldProposedTarget = "proposed_target"
	// FieldFinalAction holds the string denoting the final_action field in the database.
	FieldFinalAction = "final_action"
	// FieldFinalTarget holds the string denoting the final_target field in the database.
	FieldFinalTarget = "final_target"
	// FieldBlockingGate holds the string denoting the blocking_gate field in the database.
	FieldBlockingGate = "blocking_gate"
	// FieldGates holds the string denoting the gates field in the database.
	FieldGates = "gates"
	// FieldConfidenceTier holds the string denoting the confidence_tier field in the database.
	FieldConfidenceTier = "confidence_tier"
	// FieldPatternState holds the string denoting the pattern_state field in the database.
	FieldPatternState = "pattern_state"
	// FieldCyclesSinceChange holds the string denoting the cycles_since_change field in the database.
	FieldCyclesSinceChange = "cycles_since_change"
	// FieldConsecutiveEligible holds the string denoting the consecutive_eligible field in the database.
	FieldConsecutiveEligible = "consecutive_eligible"
	// Table holds the table name of the decisionevent in the database.
	Table = "decision_events"
)

// Columns holds all SQL columns for decisionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldDecisionID,
	FieldSubjectID,
	FieldProposedAction,
	FieldProposedTarget,
	FieldFinalAction,
	FieldFinalTarget,
	FieldBlockingGate,
	FieldGates,
	FieldConfidenceTier,
	FieldPatternState,
	FieldCyclesSinceChange,
	FieldConsecutiveEligible,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DecisionIDValidator is a validator for the "decision_id" field. It is called by the builders before save.
	DecisionIDValidator func(string) error
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
	// ProposedActionValidator is a validator for the "proposed_action" field. It is called by the builders before save.
	ProposedActionValidator func(string) error
	// FinalActionValidator is a validator for the "final_action" field. It is called by the builders before save.
	FinalActionValidator func(string) error
	// DefaultBlockingGate holds the default value on creation for the "blocking_gate" field.
	DefaultBlockingGate string
	// ConfidenceTierValidator is a validator for the "confidence_tier" field. It is called by the builders before save.
	ConfidenceTierValidator func(string) error
	// PatternStateValidator is a validator for the "pattern_state" field. It is called by the builders before save.
	PatternStateValidator func(string) error
)

// OrderOption defines the ordering options for the DecisionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByDecisionID orders the results by the decision_id field.
func ByDecisionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisionID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByProposedAction orders the results by the proposed_action field.
func ByProposedAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposedAction, opts...).ToFunc()
}

// ByProposedTarget orders the results by the proposed_target field.
func ByProposedTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposedTarget, opts...).ToFunc()
}

// ByFinalAction orders the results by the final_action field.
func ByFinalAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalAction, opts...).ToFunc()
}

// ByFinalTarget orders the results by the final_target field.
func ByFinalTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalTarget, opts...).ToFunc()
}

// ByBlockingGate orders the results by the blocking_gate field.
func ByBlockingGate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockingGate, opts...).ToFunc()
}

// ByConfidenceTier orders the results by the confidence_tier field.
func ByConfidenceTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceTier, opts...).ToFunc()
}

// ByPatternState orders the results by the pattern_state field.
func ByPatternState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternState, opts...).ToFunc()
}

// ByCyclesSinceChange orders the results by the cycles_since_change field.
func ByCyclesSinceChange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCyclesSinceChange, opts...).ToFunc()
}

// ByConsecutiveEligible orders the results by the consecutive_eligible field.
func ByConsecutiveEligible(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveEligible, opts...).ToFunc()
}
