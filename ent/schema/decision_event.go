package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GateResultData is the stored form of one gate evaluation.
type GateResultData struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Reason string `json:"reason"`
}

// DecisionEvent records one audited difficulty policy decision.
type DecisionEvent struct {
	ent.Schema
}

func (DecisionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DecisionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("decision_id").NotEmpty().Unique(),
		field.String("subject_id").NotEmpty(),
		field.String("proposed_action").NotEmpty(), // increase, decrease, maintain
		field.Float("proposed_target"),
		field.String("final_action").NotEmpty(),
		field.Float("final_target"),
		field.String("blocking_gate").Optional().Default(""),
		field.JSON("gates", []GateResultData{}),
		field.String("confidence_tier").NotEmpty(),
		field.String("pattern_state").NotEmpty(),
		field.Int("cycles_since_change"),
		field.Int("consecutive_eligible"),
	}
}

func (DecisionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("blocking_gate"),
	}
}
