// Code generated by ent, DO NOT EDIT.

package evidenceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the evidenceevent type in the database.
	Label = "evidence_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldEvidenceID holds the string denoting the evidence_id field in the database.
	FieldEvidenceID = "evidence_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldPatternName holds the string denoting the pattern_name field in the database.
	FieldPatternName = "pattern_name"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldPatternID holds the string denoting the pattern_id field in the database.
	FieldPatternID = "pattern_id"
	// FieldArtifactID holds the string denoting the artifact_id field in the database.
	FieldArtifactID = "artifact_id"
	// FieldRawConfidence holds the string denoting the raw_confidence field in the database.
	FieldRawConfidence = "raw_confidence"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldStateBefore holds the string denoting the state_before field in the database.
	FieldStateBefore = "state_before"
	// FieldStateAfter holds the string denoting the state_after field in the database.
	FieldStateAfter = "state_after"
	// FieldWeightedEvidence holds the string denoting the weighted_evidence field in the database.
	FieldWeightedEvidence = "weighted_evidence"
	// Table holds the table name of the evidenceevent in the database.
	Table = "evidence_events"
)

// Columns holds all SQL columns for evidenceevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldEvidenceID,
	FieldSubjectID,
	FieldPatternName,
	FieldCategory,
	FieldPatternID,
	FieldArtifactID,
	FieldRawConfidence,
	FieldConfidence,
	FieldTier,
	FieldStateBefore,
	FieldStateAfter,
	FieldWeightedEvidence,
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
	// EvidenceIDValidator is a validator for the "evidence_id" field. It is called by the builders before save.
	EvidenceIDValidator func(string) error
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
	// PatternNameValidator is a validator for the "pattern_name" field. It is called by the builders before save.
	PatternNameValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultPatternID holds the default value on creation for the "pattern_id" field.
	DefaultPatternID string
	// DefaultArtifactID holds the default value on creation for the "artifact_id" field.
	DefaultArtifactID string
	// TierValidator is a validator for the "tier" field. It is called by the builders before save.
	TierValidator func(string) error
	// StateBeforeValidator is a validator for the "state_before" field. It is called by the builders before save.
	StateBeforeValidator func(string) error
	// StateAfterValidator is a validator for the "state_after" field. It is called by the builders before save.
	StateAfterValidator func(string) error
)

// OrderOption defines the ordering options for the EvidenceEvent queries.
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

// ByEvidenceID orders the results by the evidence_id field.
func ByEvidenceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByPatternName orders the results by the pattern_name field.
func ByPatternName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternName, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByPatternID orders the results by the pattern_id field.
func ByPatternID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternID, opts...).ToFunc()
}

// ByArtifactID orders the results by the artifact_id field.
func ByArtifactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtifactID, opts...).ToFunc()
}

// ByRawConfidence orders the results by the raw_confidence field.
func ByRawConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawConfidence, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByStateBefore orders the results by the state_before field.
func ByStateBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateBefore, opts...).ToFunc()
}

// ByStateAfter orders the results by the state_after field.
func ByStateAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateAfter, opts...).ToFunc()
}

// ByWeightedEvidence orders the results by the weighted_evidence field.
func ByWeightedEvidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeightedEvidence, opts...).ToFunc()
}
