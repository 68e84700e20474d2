package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/complete/abandon).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// QueueEntrySummary is the serialized form of a queue entry for persistence.
type QueueEntrySummary struct {
	ItemID   string `json:"item_id"`
	ItemType string `json:"item_type"`
	New      bool   `json:"new"`
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("user_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start, complete or abandon"),
		field.Int("items_served").
			Default(0).
			Comment("Total answers graded (on complete/abandon only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on complete/abandon only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock session duration (on complete/abandon only)"),
		field.JSON("queue_summary", []QueueEntrySummary{}).
			Optional().
			Comment("Serialized queue (on start only)"),
		field.JSON("failed_item_ids", []string{}).
			Optional().
			Comment("Records that could not be persisted on complete"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id", "action"),
	}
}
