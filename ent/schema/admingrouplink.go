package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdminGroupLink holds the schema definition for the AdminGroupLink entity.
// Binds an admin to a group they supervise. Created on successful history
// bootstrap; removed on wipe, contact-removed, or bot removal from the group.
type AdminGroupLink struct {
	ent.Schema
}

// Fields of the AdminGroupLink.
func (AdminGroupLink) Fields() []ent.Field {
	return []ent.Field{
		field.String("admin_id"),
		field.String("group_id"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the AdminGroupLink.
func (AdminGroupLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("admin_id", "group_id").
			Unique(),
		index.Fields("group_id"),
	}
}
