package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single graded answer within a session.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("user_id").
			NotEmpty(),
		field.String("item_id").
			NotEmpty(),
		field.String("item_type").
			NotEmpty(),
		field.Bool("correct"),
		field.Int("hints_used").
			Default(0),
		field.Int64("time_spent_ms").
			Default(0),
		field.Int("strength_before").
			Default(0),
		field.Int("strength_after").
			Default(0),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id", "item_id"),
	}
}
