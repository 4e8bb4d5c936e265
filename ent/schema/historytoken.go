package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HistoryToken holds the schema definition for the HistoryToken entity.
// Single-use token authorizing the history-bootstrap collaborator to post
// extracted case blocks for one admin+group pair.
type HistoryToken struct {
	ent.Schema
}

// Fields of the HistoryToken.
func (HistoryToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("token").
			Unique().
			Immutable(),
		field.String("admin_id").
			Immutable(),
		field.String("group_id").
			Immutable(),
		field.Time("expires_at"),
		field.Bool("consumed").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the HistoryToken.
func (HistoryToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("admin_id"),
		index.Fields("expires_at"),
	}
}
