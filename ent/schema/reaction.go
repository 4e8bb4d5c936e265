package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Reaction holds the schema definition for the Reaction entity.
// Upserts are idempotent on the full tuple; a reaction-remove deletes
// the exact tuple and nothing else.
type Reaction struct {
	ent.Schema
}

// Fields of the Reaction.
func (Reaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("group_id"),
		field.Int64("target_ts").
			Comment("Timestamp (ms) of the message the reaction targets"),
		field.String("target_author"),
		field.String("sender_hash"),
		field.String("emoji"),
		field.Bool("is_positive").
			Default(false).
			Comment("Emoji is in the configured positive set"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the Reaction.
func (Reaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id", "target_ts", "target_author", "sender_hash", "emoji").
			Unique(),
		index.Fields("group_id", "target_ts"),
	}
}
