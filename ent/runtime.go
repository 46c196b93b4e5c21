// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/AKASH-tech234/paceline/ent/decisionevent"
	"github.com/AKASH-tech234/paceline/ent/evidenceevent"
	"github.com/AKASH-tech234/paceline/ent/schema"
	"github.com/AKASH-tech234/paceline/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	decisioneventMixin := schema.DecisionEvent{}.Mixin()
	decisioneventMixinFields0 := decisioneventMixin[0].Fields()
	_ = decisioneventMixinFields0
	decisioneventFields := schema.DecisionEvent{}.Fields()
	_ = decisioneventFields
	// decisioneventDescTimestamp is the schema descriptor for timestamp field.
	decisioneventDescTimestamp := decisioneventMixinFields0[1].Descriptor()
	// decisionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	decisionevent.DefaultTimestamp = decisioneventDescTimestamp.Default.(func() time.Time)
	// decisioneventDescDecisionID is the schema descriptor for decision_id field.
	decisioneventDescDecisionID := decisioneventFields[0].Descriptor()
	// decisionevent.DecisionIDValidator is a validator for the "decision_id" field. It is called by the builders before save.
	decisionevent.DecisionIDValidator = decisioneventDescDecisionID.Validators[0].(func(string) error)
	// decisioneventDescSubjectID is the schema descriptor for subject_id field.
	decisioneventDescSubjectID := decisioneventFields[1].Descriptor()
	// decisionevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	decisionevent.SubjectIDValidator = decisioneventDescSubjectID.Validators[0].(func(string) error)
	// decisioneventDescProposedAction is the schema descriptor for proposed_action field.
	decisioneventDescProposedAction := decisioneventFields[2].Descriptor()
	// decisionevent.ProposedActionValidator is a validator for the "proposed_action" field. It is called by the builders before save.
	decisionevent.ProposedActionValidator = decisioneventDescProposedAction.Validators[0].(func(string) error)
	// decisioneventDescFinalAction is the schema descriptor for final_action field.
	decisioneventDescFinalAction := decisioneventFields[4].Descriptor()
	// decisionevent.FinalActionValidator is a validator for the "final_action" field. It is called by the builders before save.
	decisionevent.FinalActionValidator = decisioneventDescFinalAction.Validators[0].(func(string) error)
	// decisioneventDescBlockingGate is the schema descriptor for blocking_gate field.
	decisioneventDescBlockingGate := decisioneventFields[6].Descriptor()
	// decisionevent.DefaultBlockingGate holds the default value on creation for the blocking_gate field.
	decisionevent.DefaultBlockingGate = decisioneventDescBlockingGate.Default.(string)
	// decisioneventDescConfidenceTier is the schema descriptor for confidence_tier field.
	decisioneventDescConfidenceTier := decisioneventFields[8].Descriptor()
	// decisionevent.ConfidenceTierValidator is a validator for the "confidence_tier" field. It is called by the builders before save.
	decisionevent.ConfidenceTierValidator = decisioneventDescConfidenceTier.Validators[0].(func(string) error)
	// decisioneventDescPatternState is the schema descriptor for pattern_state field.
	decisioneventDescPatternState := decisioneventFields[9].Descriptor()
	// decisionevent.PatternStateValidator is a validator for the "pattern_state" field. It is called by the builders before save.
	decisionevent.PatternStateValidator = decisioneventDescPatternState.Validators[0].(func(string) error)
	evidenceeventMixin := schema.EvidenceEvent{}.Mixin()
	evidenceeventMixinFields0 := evidenceeventMixin[0].Fields()
	_ = evidenceeventMixinFields0
	evidenceeventFields := schema.EvidenceEvent{}.Fields()
	_ = evidenceeventFields
	// evidenceeventDescTimestamp is the schema descriptor for timestamp field.
	evidenceeventDescTimestamp := evidenceeventMixinFields0[1].Descriptor()
	// evidenceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	evidenceevent.DefaultTimestamp = evidenceeventDescTimestamp.Default.(func() time.Time)
	// evidenceeventDescEvidenceID is the schema descriptor for evidence_id field.
	evidenceeventDescEvidenceID := evidenceeventFields[0].Descriptor()
	// evidenceevent.EvidenceIDValidator is a validator for the "evidence_id" field. It is called by the builders before save.
	evidenceevent.EvidenceIDValidator = evidenceeventDescEvidenceID.Validators[0].(func(string) error)
	// evidenceeventDescSubjectID is the schema descriptor for subject_id field.
	evidenceeventDescSubjectID := evidenceeventFields[1].Descriptor()
	// evidenceevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	evidenceevent.SubjectIDValidator = evidenceeventDescSubjectID.Validators[0].(func(string) error)
	// evidenceeventDescPatternName is the schema descriptor for pattern_name field.
	evidenceeventDescPatternName := evidenceeventFields[2].Descriptor()
	// evidenceevent.PatternNameValidator is a validator for the "pattern_name" field. It is called by the builders before save.
	evidenceevent.PatternNameValidator = evidenceeventDescPatternName.Validators[0].(func(string) error)
	// evidenceeventDescCategory is the schema descriptor for category field.
	evidenceeventDescCategory := evidenceeventFields[3].Descriptor()
	// evidenceevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	evidenceevent.CategoryValidator = evidenceeventDescCategory.Validators[0].(func(string) error)
	// evidenceeventDescPatternID is the schema descriptor for pattern_id field.
	evidenceeventDescPatternID := evidenceeventFields[4].Descriptor()
	// evidenceevent.DefaultPatternID holds the default value on creation for the pattern_id field.
	evidenceevent.DefaultPatternID = evidenceeventDescPatternID.Default.(string)
	// evidenceeventDescArtifactID is the schema descriptor for artifact_id field.
	evidenceeventDescArtifactID := evidenceeventFields[5].Descriptor()
	// evidenceevent.DefaultArtifactID holds the default value on creation for the artifact_id field.
	evidenceevent.DefaultArtifactID = evidenceeventDescArtifactID.Default.(string)
	// evidenceeventDescTier is the schema descriptor for tier field.
	evidenceeventDescTier := evidenceeventFields[8].Descriptor()
	// evidenceevent.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	evidenceevent.TierValidator = evidenceeventDescTier.Validators[0].(func(string) error)
	// evidenceeventDescStateBefore is the schema descriptor for state_before field.
	evidenceeventDescStateBefore := evidenceeventFields[9].Descriptor()
	// evidenceevent.StateBeforeValidator is a validator for the "state_before" field. It is called by the builders before save.
	evidenceevent.StateBeforeValidator = evidenceeventDescStateBefore.Validators[0].(func(string) error)
	// evidenceeventDescStateAfter is the schema descriptor for state_after field.
	evidenceeventDescStateAfter := evidenceeventFields[10].Descriptor()
	// evidenceevent.StateAfterValidator is a validator for the "state_after" field. It is called by the builders before save.
	evidenceevent.StateAfterValidator = evidenceeventDescStateAfter.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
