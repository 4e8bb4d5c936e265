package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SupportCase holds the schema definition for the SupportCase entity.
// A mined support case: a problem reported in a group and, once solved,
// its solution. Solved cases with a non-empty solution are mirrored into
// the vector index (in_index=true); the database row is the source of truth.
type SupportCase struct {
	ent.Schema
}

// Fields of the SupportCase.
func (SupportCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("case_id").
			Unique().
			Immutable(),
		field.String("group_id").
			Immutable(),
		field.Enum("status").
			Values("open", "solved", "archived").
			Default("open"),
		field.String("problem_title"),
		field.Text("problem_summary"),
		field.Text("solution_summary").
			Default("").
			Comment("Non-empty whenever status=solved via extraction or resolution; may be blank for reaction-confirmed cases until derived"),
		field.JSON("tags", []string{}).
			Optional(),
		field.JSON("dedup_embedding", []float32{}).
			Optional().
			Comment("Embedding of title+problem, used only for near-duplicate detection"),
		field.Bool("in_index").
			Default(false),
		field.String("closed_emoji").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the SupportCase.
func (SupportCase) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("evidence", CaseEvidence.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the SupportCase.
func (SupportCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id", "status"),
		index.Fields("status", "updated_at"),
		index.Fields("group_id", "updated_at"),
	}
}
