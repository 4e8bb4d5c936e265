package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AdminSession holds the schema definition for the AdminSession entity.
// At most one row per admin; tracks the DM onboarding state machine.
type AdminSession struct {
	ent.Schema
}

// Fields of the AdminSession.
func (AdminSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("admin_id").
			Unique().
			Immutable(),
		field.Enum("state").
			Values("awaiting_group_name", "awaiting_qr_scan").
			Default("awaiting_group_name"),
		field.String("pending_group_id").
			Optional().
			Nillable(),
		field.String("pending_group_name").
			Optional().
			Nillable(),
		field.String("pending_token").
			Optional().
			Nillable().
			Comment("Single-use history token awaiting QR scan"),
		field.Enum("lang").
			Values("uk", "en").
			Default("en"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
