package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvidenceEvent records one diagnostic evidence item processed by the
// pipeline, including its calibration and the resulting pattern state.
type EvidenceEvent struct {
	ent.Schema
}

func (EvidenceEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (EvidenceEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("evidence_id").NotEmpty().Unique(),
		field.String("subject_id").NotEmpty(),
		field.String("pattern_name").NotEmpty(),
		field.String("category").NotEmpty(), // misconception, careless, speed-rush, ...
		field.String("pattern_id").Optional().Default(""),
		field.String("artifact_id").Optional().Default(""),
		field.Float("raw_confidence"),
		field.Float("confidence"),
		field.String("tier").NotEmpty(), // high, medium, low
		field.String("state_before").NotEmpty(),
		field.String("state_after").NotEmpty(),
		field.Float("weighted_evidence"),
	}
}

func (EvidenceEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("subject_id", "pattern_name"),
	}
}
