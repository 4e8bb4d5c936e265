package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity.
// Durable work queue row with at-least-once lease semantics. Workers claim
// pending jobs whose next_visible_at has passed using FOR UPDATE SKIP LOCKED;
// a claim sets in_progress and a lease expiry. Expired leases are recovered
// back to pending by the pool's orphan scan.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values("buffer_update", "maybe_respond", "history_link"),
		field.String("group_id").
			Optional().
			Comment("Denormalized from payload for observability and FIFO ordering"),
		field.Bytes("payload").
			Comment("JSON payload, opaque to the queue"),
		field.Enum("status").
			Values("pending", "in_progress", "done", "failed", "cancelled").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Time("next_visible_at").
			Default(time.Now).
			Comment("Job is claimable once this instant has passed"),
		field.Time("lease_expires_at").
			Optional().
			Nillable().
			Comment("Set while in_progress; expired leases are recovered"),
		field.String("worker_id").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "next_visible_at"),
		index.Fields("type", "status"),
		index.Fields("status", "lease_expires_at"),
		index.Fields("group_id"),
	}
}
