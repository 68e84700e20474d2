package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearnedItem is the per-user, per-item spaced repetition record.
// One row per (user_id, item_id); mutated only through the strength model.
type LearnedItem struct {
	ent.Schema
}

func (LearnedItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("item_id").
			NotEmpty().
			Comment("References a catalog item; the catalog itself is not stored here"),
		field.String("item_type").
			NotEmpty().
			Comment("vocabulary, character or grammar"),
		field.String("script").
			Default("").
			Comment("hiragana/katakana/kanji for character items, empty otherwise"),
		field.Int("strength").
			Default(0).
			Min(0).
			Max(100).
			Comment("Mastery strength, 0-100"),
		field.Time("last_reviewed").
			Optional().
			Nillable().
			Comment("Nil until the first review"),
		field.Time("next_review").
			Optional().
			Comment("Due timestamp; zero value means due immediately"),
		field.Int("correct_count").
			Default(0).
			Min(0),
		field.Int("incorrect_count").
			Default(0).
			Min(0),
	}
}

func (LearnedItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "item_id").
			Unique(),
		index.Fields("user_id", "next_review"),
		index.Fields("user_id", "item_type"),
	}
}
