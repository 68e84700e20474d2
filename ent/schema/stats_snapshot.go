package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StatsSnapshot captures a user's aggregated statistics and daily goal
// after each completed session, enabling fast restore without replaying
// the event log.
type StatsSnapshot struct {
	ent.Schema
}

func (StatsSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was taken"),
		field.JSON("data", map[string]any{}).
			Comment("UserStatistics and DailyGoal as JSON"),
	}
}

func (StatsSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "timestamp"),
	}
}
