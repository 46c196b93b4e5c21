// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/AKASH-tech234/paceline/ent/decisionevent"
	"github.com/AKASH-tech234/paceline/ent/schema"
)

// DecisionEvent is the model entity for the DecisionEvent schema.
type DecisionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global event log, strictly increasing across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// When the event was recorded, UTC
	Timestamp time.Time `json:"timestamp,omitempty"`
	// DecisionID holds the value of the "decision_id" field.
	DecisionID string `json:"decision_id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// ProposedAction holds the value of the "proposed_action" field.
	ProposedAction string `json:"proposed_action,omitempty"`
	// ProposedTarget holds the value of the "proposed_target" field.
	ProposedTarget float64 `json:"proposed_target,omitempty"`
	// FinalAction holds the value of the "final_action" field.
	FinalAction string `json:"final_action,omitempty"`
	// FinalTarget holds the value of the "final_target" field.
	FinalTarget float64 `json:"final_target,omitempty"`
	// BlockingGate holds the value of the "blocking_gate" field.
	BlockingGate string `json:"blocking_gate,omitempty"`
	// Gates holds the value of the "gates" field.
	Gates []schema.GateResultData `json:"gates,omitempty"`
	// ConfidenceTier holds the value of the "confidence_tier" field.
	ConfidenceTier string `json:"confidence_tier,omitempty"`
	// PatternState holds the value of the "pattern_state" field.
	PatternState string `json:"pattern_state,omitempty"`
	// CyclesSinceChange holds the value of the "cycles_since_change" field.
	CyclesSinceChange int `json:"cycles_since_change,omitempty"`
	// ConsecutiveEligible holds the value of the "consecutive_eligible" field.
	ConsecutiveEligible int `json:"consecutive_eligible,omitempty"`
	selectValues        sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DecisionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case decisionevent.FieldGates:
			values[i] = new([]byte)
		case decisionevent.FieldProposedTarget, decisionevent.FieldFinalTarget:
			values[i] = new(sql.NullFloat64)
		case decisionevent.FieldID, decisionevent.FieldSequence, decisionevent.FieldCyclesSinceChange, decisionevent.FieldConsecutiveEligible:
			values[i] = new(sql.NullInt64)
		case decisionevent.FieldDecisionID, decisionevent.FieldSubjectID, decisionevent.FieldProposedAction, decisionevent.FieldFinalAction, decisionevent.FieldBlockingGate, decisionevent.FieldConfidenceTier, decisionevent.FieldPatternState:
			values[i] = new(sql.NullString)
		case decisionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DecisionEvent fields.
func (_m *DecisionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case decisionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case decisionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case decisionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case decisionevent.FieldDecisionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision_id", values[i])
			} else if value.Valid {
				_m.DecisionID = value.String
			}
		case decisionevent.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case decisionevent.FieldProposedAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposed_action", values[i])
			} else if value.Valid {
				_m.ProposedAction = value.String
			}
		case decisionevent.FieldProposedTarget:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field proposed_target", values[i])
			} else if value.Valid {
				_m.ProposedTarget = value.Float64
			}
		case decisionevent.FieldFinalAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_action", values[i])
			} else if value.Valid {
				_m.FinalAction = value.String
			}
		case decisionevent.FieldFinalTarget:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field final_target", values[i])
			} else if value.Valid {
				_m.FinalTarget = value.Float64
			}
		case decisionevent.FieldBlockingGate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blocking_gate", values[i])
			} else if value.Valid {
				_m.BlockingGate = value.String
			}
		case decisionevent.FieldGates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field gates", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Gates); err != nil {
					return fmt.Errorf("unmarshal field gates: %w", err)
				}
			}
		case decisionevent.FieldConfidenceTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_tier", values[i])
			} else if value.Valid {
				_m.ConfidenceTier = value.String
			}
		case decisionevent.FieldPatternState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_state", values[i])
			} else if value.Valid {
				_m.PatternState = value.String
			}
		case decisionevent.FieldCyclesSinceChange:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cycles_since_change", values[i])
			} else if value.Valid {
				_m.CyclesSinceChange = int(value.Int64)
			}
		case decisionevent.FieldConsecutiveEligible:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_eligible", values[i])
			} else if value.Valid {
				_m.ConsecutiveEligible = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DecisionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *DecisionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DecisionEvent.
// Note that you need to call DecisionEvent.Unwrap() before calling this method if this DecisionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DecisionEvent) Update() *DecisionEventUpdateOne {
	return NewDecisionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DecisionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DecisionEvent) Unwrap() *DecisionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DecisionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DecisionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("DecisionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("decision_id=")
	builder.WriteString(_m.DecisionID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("proposed_action=")
	builder.WriteString(_m.ProposedAction)
	builder.WriteString(", ")
	builder.WriteString("proposed_target=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProposedTarget))
	builder.WriteString(", ")
	builder.WriteString("final_action=")
	builder.WriteString(_m.FinalAction)
	builder.WriteString(", ")
	builder.WriteString("final_target=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalTarget))
	builder.WriteString(", ")
	builder.WriteString("blocking_gate=")
	builder.WriteString(_m.BlockingGate)
	builder.WriteString(", ")
	builder.WriteString("gates=")
	builder.WriteString(fmt.Sprintf("%v", _m.Gates))
	builder.WriteString(", ")
	builder.WriteString("confidence_tier=")
	builder.WriteString(_m.ConfidenceTier)
	builder.WriteString(", ")
	builder.WriteString("pattern_state=")
	builder.WriteString(_m.PatternState)
	builder.WriteString(", ")
	builder.WriteString("cycles_since_change=")
	builder.WriteString(fmt.Sprintf("%v", _m.CyclesSinceChange))
	builder.WriteString(", ")
	builder.WriteString("consecutive_eligible=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveEligible))
	builder.WriteByte(')')
	return builder.String()
}

// DecisionEvents is a parsable slice of DecisionEvent.
type DecisionEvents []*DecisionEvent
