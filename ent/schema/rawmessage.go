package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RawMessage holds the schema definition for the RawMessage entity.
// One row per chat message; inserts are idempotent on (group_id, message_id)
// and rows are never mutated after ingest (except reaction_count).
type RawMessage struct {
	ent.Schema
}

// Fields of the RawMessage.
func (RawMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("group_id").
			Immutable(),
		field.String("message_id").
			Immutable().
			Comment("Transport message id, unique within a group"),
		field.Int64("ts").
			Immutable().
			Comment("Message timestamp in milliseconds"),
		field.String("sender_hash").
			Immutable(),
		field.String("sender_name").
			Optional().
			Nillable(),
		field.Text("content_text").
			Comment("Message text, including appended image OCR markers"),
		field.JSON("image_paths", []string{}).
			Optional().
			Comment("Relative paths under the image root, in attachment order"),
		field.String("reply_to_id").
			Optional().
			Nillable(),
		field.Int("reaction_count").
			Default(0),
		field.Bool("from_bot").
			Default(false).
			Comment("Sender matches the configured bot sender hash"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the RawMessage.
func (RawMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id", "message_id").
			Unique(),
		index.Fields("group_id", "ts"),
	}
}
