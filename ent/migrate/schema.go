// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DecisionEventsColumns holds the columns for the "decision_events" table.
	DecisionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "decision_id", Type: field.TypeString, Unique: true},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "proposed_action", Type: field.TypeString},
		{Name: "proposed_target", Type: field.TypeFloat64},
		{Name: "final_action", Type: field.TypeString},
		{Name: "final_target", Type: field.TypeFloat64},
		{Name: "blocking_gate", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "gates", Type: field.TypeJSON},
		{Name: "confidence_tier", Type: field.TypeString},
		{Name: "pattern_state", Type: field.TypeString},
		{Name: "cycles_since_change", Type: field.TypeInt},
		{Name: "consecutive_eligible", Type: field.TypeInt},
	}
	// DecisionEventsTable holds the schema information for the "decision_events" table.
	DecisionEventsTable = &schema.Table{
		Name:       "decision_events",
		Columns:    DecisionEventsColumns,
		PrimaryKey: []*schema.Column{DecisionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "decisionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[1]},
			},
			{
				Name:    "decisionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[2]},
			},
			{
				Name:    "decisionevent_subject_id",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[4]},
			},
			{
				Name:    "decisionevent_blocking_gate",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[9]},
			},
		},
	}
	// EvidenceEventsColumns holds the columns for the "evidence_events" table.
	EvidenceEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "evidence_id", Type: field.TypeString, Unique: true},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "pattern_name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "pattern_id", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "artifact_id", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "raw_confidence", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "tier", Type: field.TypeString},
		{Name: "state_before", Type: field.TypeString},
		{Name: "state_after", Type: field.TypeString},
		{Name: "weighted_evidence", Type: field.TypeFloat64},
	}
	// EvidenceEventsTable holds the schema information for the "evidence_events" table.
	EvidenceEventsTable = &schema.Table{
		Name:       "evidence_events",
		Columns:    EvidenceEventsColumns,
		PrimaryKey: []*schema.Column{EvidenceEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evidenceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{EvidenceEventsColumns[1]},
			},
			{
				Name:    "evidenceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EvidenceEventsColumns[2]},
			},
			{
				Name:    "evidenceevent_subject_id",
				Unique:  false,
				Columns: []*schema.Column{EvidenceEventsColumns[4]},
			},
			{
				Name:    "evidenceevent_subject_id_pattern_name",
				Unique:  false,
				Columns: []*schema.Column{EvidenceEventsColumns[4], EvidenceEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DecisionEventsTable,
		EvidenceEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
