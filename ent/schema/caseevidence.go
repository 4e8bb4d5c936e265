package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CaseEvidence holds the schema definition for the CaseEvidence entity.
// Child rows of SupportCase linking a case to the messages it was mined
// from. Ordering is explicit via position (earliest evidence first);
// merges append, never remove.
type CaseEvidence struct {
	ent.Schema
}

// Fields of the CaseEvidence.
func (CaseEvidence) Fields() []ent.Field {
	return []ent.Field{
		field.String("case_id").
			Immutable(),
		field.String("message_id").
			Immutable(),
		field.Int64("message_ts").
			Immutable().
			Comment("Denormalized from RawMessage for reaction-based confirmation"),
		field.Int("position").
			Comment("Stable evidence order within the case"),
	}
}

// Edges of the CaseEvidence.
func (CaseEvidence) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("support_case", SupportCase.Type).
			Ref("evidence").
			Field("case_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CaseEvidence.
func (CaseEvidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id", "message_id").
			Unique(),
		index.Fields("message_ts"),
	}
}
