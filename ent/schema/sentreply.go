package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SentReply holds the schema definition for the SentReply entity.
// Idempotency marker for outgoing replies: one row per
// (group_id, original message_id) the bot has answered. A second
// MAYBE_RESPOND for the same message detects the row and skips the send.
type SentReply struct {
	ent.Schema
}

// Fields of the SentReply.
func (SentReply) Fields() []ent.Field {
	return []ent.Field{
		field.String("group_id").
			Immutable(),
		field.String("message_id").
			Immutable(),
		field.Time("sent_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SentReply.
func (SentReply) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id", "message_id").
			Unique(),
	}
}
