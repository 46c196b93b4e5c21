// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/AKASH-tech234/paceline/ent/evidenceevent"
)

// EvidenceEvent is the model entity for the EvidenceEvent schema.
type EvidenceEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global event log, strictly increasing across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// When the event was recorded, UTC
	Timestamp time.Time `json:"timestamp,omitempty"`
	// EvidenceID holds the value of the "evidence_id" field.
	EvidenceID string `json:"evidence_id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// PatternName holds the value of the "pattern_name" field.
	PatternName string `json:"pattern_name,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// PatternID holds the value of the "pattern_id" field.
	PatternID string `json:"pattern_id,omitempty"`
	// ArtifactID holds the value of the "artifact_id" field.
	ArtifactID string `json:"artifact_id,omitempty"`
	// RawConfidence holds the value of the "raw_confidence" field.
	RawConfidence float64 `json:"raw_confidence,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier string `json:"tier,omitempty"`
	// StateBefore holds the value of the "state_before" field.
	StateBefore string `json:"state_before,omitempty"`
	// StateAfter holds the value of the "state_after" field.
	StateAfter string `json:"state_after,omitempty"`
	// WeightedEvidence holds the value of the "weighted_evidence" field.
	WeightedEvidence float64 `json:"weighted_evidence,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvidenceEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evidenceevent.FieldRawConfidence, evidenceevent.FieldConfidence, evidenceevent.FieldWeightedEvidence:
			values[i] = new(sql.NullFloat64)
		case evidenceevent.FieldID, evidenceevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case evidenceevent.FieldEvidenceID, evidenceevent.FieldSubjectID, evidenceevent.FieldPatternName, evidenceevent.FieldCategory, evidenceevent.FieldPatternID, evidenceevent.FieldArtifactID, evidenceevent.FieldTier, evidenceevent.FieldStateBefore, evidenceevent.FieldStateAfter:
			values[i] = new(sql.NullString)
		case evidenceevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvidenceEvent fields.
func (_m *EvidenceEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evidenceevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case evidenceevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case evidenceevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case evidenceevent.FieldEvidenceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_id", values[i])
			} else if value.Valid {
				_m.EvidenceID = value.String
			}
		case evidenceevent.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case evidenceevent.FieldPatternName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_name", values[i])
			} else if value.Valid {
				_m.PatternName = value.String
			}
		case evidenceevent.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case evidenceevent.FieldPatternID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_id", values[i])
			} else if value.Valid {
				_m.PatternID = value.String
			}
		case evidenceevent.FieldArtifactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_id", values[i])
			} else if value.Valid {
				_m.ArtifactID = value.String
			}
		case evidenceevent.FieldRawConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_confidence", values[i])
			} else if value.Valid {
				_m.RawConfidence = value.Float64
			}
		case evidenceevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case evidenceevent.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = value.String
			}
		case evidenceevent.FieldStateBefore:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_before", values[i])
			} else if value.Valid {
				_m.StateBefore = value.String
			}
		case evidenceevent.FieldStateAfter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_after", values[i])
			} else if value.Valid {
				_m.StateAfter = value.String
			}
		case evidenceevent.FieldWeightedEvidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weighted_evidence", values[i])
			} else if value.Valid {
				_m.WeightedEvidence = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvidenceEvent.
// This includes values selected through modifiers, order, etc.
func (_m *EvidenceEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EvidenceEvent.
// Note that you need to call EvidenceEvent.Unwrap() before calling this method if this EvidenceEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvidenceEvent) Update() *EvidenceEventUpdateOne {
	return NewEvidenceEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvidenceEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvidenceEvent) Unwrap() *EvidenceEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvidenceEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvidenceEvent) String() string {
	var builder strings.Builder
	builder.WriteString("EvidenceEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("evidence_id=")
	builder.WriteString(_m.EvidenceID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("pattern_name=")
	builder.WriteString(_m.PatternName)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("pattern_id=")
	builder.WriteString(_m.PatternID)
	builder.WriteString(", ")
	builder.WriteString("artifact_id=")
	builder.WriteString(_m.ArtifactID)
	builder.WriteString(", ")
	builder.WriteString("raw_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawConfidence))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(_m.Tier)
	builder.WriteString(", ")
	builder.WriteString("state_before=")
	builder.WriteString(_m.StateBefore)
	builder.WriteString(", ")
	builder.WriteString("state_after=")
	builder.WriteString(_m.StateAfter)
	builder.WriteString(", ")
	builder.WriteString("weighted_evidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeightedEvidence))
	builder.WriteByte(')')
	return builder.String()
}

// EvidenceEvents is a parsable slice of EvidenceEvent.
type EvidenceEvents []*EvidenceEvent
