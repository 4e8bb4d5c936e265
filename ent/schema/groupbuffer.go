package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// GroupBuffer holds the schema definition for the GroupBuffer entity.
// One row per active group; the rolling extraction buffer.
type GroupBuffer struct {
	ent.Schema
}

// Fields of the GroupBuffer.
func (GroupBuffer) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("group_id").
			Unique().
			Immutable(),
		field.Text("buffer_text").
			Default(""),
		field.JSON("doc_urls", []string{}).
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
