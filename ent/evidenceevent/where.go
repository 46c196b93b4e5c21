// Code generated by ent, DO NOT EDIT.

package evidenceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/AKASH-tech234/paceline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldTimestamp, v))
}

// EvidenceID applies equality check predicate on the "evidence_id" field. It's identical to EvidenceIDEQ.
func EvidenceID(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldEvidenceID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldSubjectID, v))
}

// PatternName applies equality check predicate on the "pattern_name" field. It's identical to PatternNameEQ.
func PatternName(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldPatternName, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldCategory, v))
}

// PatternID applies equality check predicate on the "pattern_id" field. It's identical to PatternIDEQ.
func PatternID(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldPatternID, v))
}

// ArtifactID applies equality check predicate on the "artifact_id" field. It's identical to ArtifactIDEQ.
func ArtifactID(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldArtifactID, v))
}

// RawConfidence applies equality check predicate on the "raw_confidence" field. It's identical to RawConfidenceEQ.
func RawConfidence(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldRawConfidence, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldConfidence, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldTier, v))
}

// StateBefore applies equality check predicate on the "state_before" field. It's identical to StateBeforeEQ.
func StateBefore(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldStateBefore, v))
}

// StateAfter applies equality check predicate on the "state_after" field. It's identical to StateAfterEQ.
func StateAfter(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldStateAfter, v))
}

// WeightedEvidence applies equality check predicate on the "weighted_evidence" field. It's identical to WeightedEvidenceEQ.
func WeightedEvidence(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldWeightedEvidence, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldTimestamp, v))
}

// EvidenceIDEQ applies the EQ predicate on the "evidence_id" field.
func EvidenceIDEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldEvidenceID, v))
}

// EvidenceIDNEQ applies the NEQ predicate on the "evidence_id" field.
func EvidenceIDNEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldEvidenceID, v))
}

// EvidenceIDIn applies the In predicate on the "evidence_id" field.
func EvidenceIDIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldEvidenceID, vs...))
}

// EvidenceIDNotIn applies the NotIn predicate on the "evidence_id" field.
func EvidenceIDNotIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldEvidenceID, vs...))
}

// EvidenceIDGT applies the GT predicate on the "evidence_id" field.
func EvidenceIDGT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldEvidenceID, v))
}

// EvidenceIDGTE applies the GTE predicate on the "evidence_id" field.
func EvidenceIDGTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldEvidenceID, v))
}

// EvidenceIDLT applies the LT predicate on the "evidence_id" field.
func EvidenceIDLT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldEvidenceID, v))
}

// EvidenceIDLTE applies the LTE predicate on the "evidence_id" field.
func EvidenceIDLTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldEvidenceID, v))
}

// EvidenceIDContains applies the Contains predicate on the "evidence_id" field.
func EvidenceIDContains(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContains(FieldEvidenceID, v))
}

// EvidenceIDHasPrefix applies the HasPrefix predicate on the "evidence_id" field.
func EvidenceIDHasPrefix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasPrefix(FieldEvidenceID, v))
}

// EvidenceIDHasSuffix applies the HasSuffix predicate on the "evidence_id" field.
func EvidenceIDHasSuffix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasSuffix(FieldEvidenceID, v))
}

// EvidenceIDEqualFold applies the EqualFold predicate on the "evidence_id" field.
func EvidenceIDEqualFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEqualFold(FieldEvidenceID, v))
}

// EvidenceIDContainsFold applies the ContainsFold predicate on the "evidence_id" field.
func EvidenceIDContainsFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContainsFold(FieldEvidenceID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContainsFold(FieldSubjectID, v))
}

// PatternNameEQ applies the EQ predicate on the "pattern_name" field.
func PatternNameEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldPatternName, v))
}

// PatternNameNEQ applies the NEQ predicate on the "pattern_name" field.
func PatternNameNEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldPatternName, v))
}

// PatternNameIn applies the In predicate on the "pattern_name" field.
func PatternNameIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldPatternName, vs...))
}

// PatternNameNotIn applies the NotIn predicate on the "pattern_name" field.
func PatternNameNotIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldPatternName, vs...))
}

// PatternNameGT applies the GT predicate on the "pattern_name" field.
func PatternNameGT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldPatternName, v))
}

// PatternNameGTE applies the GTE predicate on the "pattern_name" field.
func PatternNameGTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldPatternName, v))
}

// PatternNameLT applies the LT predicate on the "pattern_name" field.
func PatternNameLT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldPatternName, v))
}

// PatternNameLTE applies the LTE predicate on the "pattern_name" field.
func PatternNameLTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldPatternName, v))
}

// PatternNameContains applies the Contains predicate on the "pattern_name" field.
func PatternNameContains(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContains(FieldPatternName, v))
}

// PatternNameHasPrefix applies the HasPrefix predicate on the "pattern_name" field.
func PatternNameHasPrefix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasPrefix(FieldPatternName, v))
}

// PatternNameHasSuffix applies the HasSuffix predicate on the "pattern_name" field.
func PatternNameHasSuffix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasSuffix(FieldPatternName, v))
}

// PatternNameEqualFold applies the EqualFold predicate on the "pattern_name" field.
func PatternNameEqualFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEqualFold(FieldPatternName, v))
}

// PatternNameContainsFold applies the ContainsFold predicate on the "pattern_name" field.
func PatternNameContainsFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContainsFold(FieldPatternName, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContainsFold(FieldCategory, v))
}

// PatternIDEQ applies the EQ predicate on the "pattern_id" field.
func PatternIDEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldPatternID, v))
}

// PatternIDNEQ applies the NEQ predicate on the "pattern_id" field.
func PatternIDNEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldPatternID, v))
}

// PatternIDIn applies the In predicate on the "pattern_id" field.
func PatternIDIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldPatternID, vs...))
}

// PatternIDNotIn applies the NotIn predicate on the "pattern_id" field.
func PatternIDNotIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldPatternID, vs...))
}

// PatternIDGT applies the GT predicate on the "pattern_id" field.
func PatternIDGT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldPatternID, v))
}

// PatternIDGTE applies the GTE predicate on the "pattern_id" field.
func PatternIDGTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldPatternID, v))
}

// PatternIDLT applies the LT predicate on the "pattern_id" field.
func PatternIDLT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldPatternID, v))
}

// PatternIDLTE applies the LTE predicate on the "pattern_id" field.
func PatternIDLTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldPatternID, v))
}

// PatternIDContains applies the Contains predicate on the "pattern_id" field.
func PatternIDContains(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContains(FieldPatternID, v))
}

// PatternIDHasPrefix applies the HasPrefix predicate on the "pattern_id" field.
func PatternIDHasPrefix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasPrefix(FieldPatternID, v))
}

// PatternIDHasSuffix applies the HasSuffix predicate on the "pattern_id" field.
func PatternIDHasSuffix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasSuffix(FieldPatternID, v))
}

// PatternIDIsNil applies the IsNil predicate on the "pattern_id" field.
func PatternIDIsNil() predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIsNull(FieldPatternID))
}

// PatternIDNotNil applies the NotNil predicate on the "pattern_id" field.
func PatternIDNotNil() predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotNull(FieldPatternID))
}

// PatternIDEqualFold applies the EqualFold predicate on the "pattern_id" field.
func PatternIDEqualFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEqualFold(FieldPatternID, v))
}

// PatternIDContainsFold applies the ContainsFold predicate on the "pattern_id" field.
func PatternIDContainsFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContainsFold(FieldPatternID, v))
}

// ArtifactIDEQ applies the EQ predicate on the "artifact_id" field.
func ArtifactIDEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldArtifactID, v))
}

// ArtifactIDNEQ applies the NEQ predicate on the "artifact_id" field.
func ArtifactIDNEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldArtifactID, v))
}

// ArtifactIDIn applies the In predicate on the "artifact_id" field.
func ArtifactIDIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldArtifactID, vs...))
}

// ArtifactIDNotIn applies the NotIn predicate on the "artifact_id" field.
func ArtifactIDNotIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldArtifactID, vs...))
}

// ArtifactIDGT applies the GT predicate on the "artifact_id" field.
func ArtifactIDGT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldArtifactID, v))
}

// ArtifactIDGTE applies the GTE predicate on the "artifact_id" field.
func ArtifactIDGTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldArtifactID, v))
}

// ArtifactIDLT applies the LT predicate on the "artifact_id" field.
func ArtifactIDLT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldArtifactID, v))
}

// ArtifactIDLTE applies the LTE predicate on the "artifact_id" field.
func ArtifactIDLTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldArtifactID, v))
}

// ArtifactIDContains applies the Contains predicate on the "artifact_id" field.
func ArtifactIDContains(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContains(FieldArtifactID, v))
}

// ArtifactIDHasPrefix applies the HasPrefix predicate on the "artifact_id" field.
func ArtifactIDHasPrefix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasPrefix(FieldArtifactID, v))
}

// ArtifactIDHasSuffix applies the HasSuffix predicate on the "artifact_id" field.
func ArtifactIDHasSuffix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasSuffix(FieldArtifactID, v))
}

// ArtifactIDIsNil applies the IsNil predicate on the "artifact_id" field.
func ArtifactIDIsNil() predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIsNull(FieldArtifactID))
}

// ArtifactIDNotNil applies the NotNil predicate on the "artifact_id" field.
func ArtifactIDNotNil() predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotNull(FieldArtifactID))
}

// ArtifactIDEqualFold applies the EqualFold predicate on the "artifact_id" field.
func ArtifactIDEqualFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEqualFold(FieldArtifactID, v))
}

// ArtifactIDContainsFold applies the ContainsFold predicate on the "artifact_id" field.
func ArtifactIDContainsFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContainsFold(FieldArtifactID, v))
}

// RawConfidenceEQ applies the EQ predicate on the "raw_confidence" field.
func RawConfidenceEQ(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldRawConfidence, v))
}

// RawConfidenceNEQ applies the NEQ predicate on the "raw_confidence" field.
func RawConfidenceNEQ(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldRawConfidence, v))
}

// RawConfidenceIn applies the In predicate on the "raw_confidence" field.
func RawConfidenceIn(vs ...float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldRawConfidence, vs...))
}

// RawConfidenceNotIn applies the NotIn predicate on the "raw_confidence" field.
func RawConfidenceNotIn(vs ...float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldRawConfidence, vs...))
}

// RawConfidenceGT applies the GT predicate on the "raw_confidence" field.
func RawConfidenceGT(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldRawConfidence, v))
}

// RawConfidenceGTE applies the GTE predicate on the "raw_confidence" field.
func RawConfidenceGTE(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldRawConfidence, v))
}

// RawConfidenceLT applies the LT predicate on the "raw_confidence" field.
func RawConfidenceLT(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldRawConfidence, v))
}

// RawConfidenceLTE applies the LTE predicate on the "raw_confidence" field.
func RawConfidenceLTE(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldRawConfidence, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldConfidence, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContainsFold(FieldTier, v))
}

// StateBeforeEQ applies the EQ predicate on the "state_before" field.
func StateBeforeEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldStateBefore, v))
}

// StateBeforeNEQ applies the NEQ predicate on the "state_before" field.
func StateBeforeNEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldStateBefore, v))
}

// StateBeforeIn applies the In predicate on the "state_before" field.
func StateBeforeIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldStateBefore, vs...))
}

// StateBeforeNotIn applies the NotIn predicate on the "state_before" field.
func StateBeforeNotIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldStateBefore, vs...))
}

// StateBeforeGT applies the GT predicate on the "state_before" field.
func StateBeforeGT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldStateBefore, v))
}

// StateBeforeGTE applies the GTE predicate on the "state_before" field.
func StateBeforeGTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldStateBefore, v))
}

// StateBeforeLT applies the LT predicate on the "state_before" field.
func StateBeforeLT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldStateBefore, v))
}

// StateBeforeLTE applies the LTE predicate on the "state_before" field.
func StateBeforeLTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldStateBefore, v))
}

// StateBeforeContains applies the Contains predicate on the "state_before" field.
func StateBeforeContains(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContains(FieldStateBefore, v))
}

// StateBeforeHasPrefix applies the HasPrefix predicate on the "state_before" field.
func StateBeforeHasPrefix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasPrefix(FieldStateBefore, v))
}

// StateBeforeHasSuffix applies the HasSuffix predicate on the "state_before" field.
func StateBeforeHasSuffix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasSuffix(FieldStateBefore, v))
}

// StateBeforeEqualFold applies the EqualFold predicate on the "state_before" field.
func StateBeforeEqualFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEqualFold(FieldStateBefore, v))
}

// StateBeforeContainsFold applies the ContainsFold predicate on the "state_before" field.
func StateBeforeContainsFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContainsFold(FieldStateBefore, v))
}

// StateAfterEQ applies the EQ predicate on the "state_after" field.
func StateAfterEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldStateAfter, v))
}

// StateAfterNEQ applies the NEQ predicate on the "state_after" field.
func StateAfterNEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldStateAfter, v))
}

// StateAfterIn applies the In predicate on the "state_after" field.
func StateAfterIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldStateAfter, vs...))
}

// StateAfterNotIn applies the NotIn predicate on the "state_after" field.
func StateAfterNotIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldStateAfter, vs...))
}

// StateAfterGT applies the GT predicate on the "state_after" field.
func StateAfterGT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldStateAfter, v))
}

// StateAfterGTE applies the GTE predicate on the "state_after" field.
func StateAfterGTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldStateAfter, v))
}

// StateAfterLT applies the LT predicate on the "state_after" field.
func StateAfterLT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldStateAfter, v))
}

// StateAfterLTE applies the LTE predicate on the "state_after" field.
func StateAfterLTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldStateAfter, v))
}

// StateAfterContains applies the Contains predicate on the "state_after" field.
func StateAfterContains(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContains(FieldStateAfter, v))
}

// StateAfterHasPrefix applies the HasPrefix predicate on the "state_after" field.
func StateAfterHasPrefix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasPrefix(FieldStateAfter, v))
}

// StateAfterHasSuffix applies the HasSuffix predicate on the "state_after" field.
func StateAfterHasSuffix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasSuffix(FieldStateAfter, v))
}

// StateAfterEqualFold applies the EqualFold predicate on the "state_after" field.
func StateAfterEqualFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEqualFold(FieldStateAfter, v))
}

// StateAfterContainsFold applies the ContainsFold predicate on the "state_after" field.
func StateAfterContainsFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContainsFold(FieldStateAfter, v))
}

// WeightedEvidenceEQ applies the EQ predicate on the "weighted_evidence" field.
func WeightedEvidenceEQ(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldWeightedEvidence, v))
}

// WeightedEvidenceNEQ applies the NEQ predicate on the "weighted_evidence" field.
func WeightedEvidenceNEQ(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldWeightedEvidence, v))
}

// WeightedEvidenceIn applies the In predicate on the "weighted_evidence" field.
func WeightedEvidenceIn(vs ...float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldWeightedEvidence, vs...))
}

// WeightedEvidenceNotIn applies the NotIn predicate on the "weighted_evidence" field.
func WeightedEvidenceNotIn(vs ...float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldWeightedEvidence, vs...))
}

// WeightedEvidenceGT applies the GT predicate on the "weighted_evidence" field.
func WeightedEvidenceGT(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldWeightedEvidence, v))
}

// WeightedEvidenceGTE applies the GTE predicate on the "weighted_evidence" field.
func WeightedEvidenceGTE(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldWeightedEvidence, v))
}

// WeightedEvidenceLT applies the LT predicate on the "weighted_evidence" field.
func WeightedEvidenceLT(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldWeightedEvidence, v))
}

// WeightedEvidenceLTE applies the LTE predicate on the "weighted_evidence" field.
func WeightedEvidenceLTE(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldWeightedEvidence, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvidenceEvent) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvidenceEvent) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvidenceEvent) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.NotPredicates(p))
}
