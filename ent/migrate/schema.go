// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LearnedItemsColumns holds the columns for the "learned_items" table.
	LearnedItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "item_type", Type: field.TypeString},
		{Name: "script", Type: field.TypeString, Default: ""},
		{Name: "strength", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed", Type: field.TypeTime, Nullable: true},
		{Name: "next_review", Type: field.TypeTime, Nullable: true},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "incorrect_count", Type: field.TypeInt, Default: 0},
	}
	// LearnedItemsTable holds the schema information for the "learned_items" table.
	LearnedItemsTable = &schema.Table{
		Name:       "learned_items",
		Columns:    LearnedItemsColumns,
		PrimaryKey: []*schema.Column{LearnedItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learneditem_user_id_item_id",
				Unique:  true,
				Columns: []*schema.Column{LearnedItemsColumns[1], LearnedItemsColumns[2]},
			},
			{
				Name:    "learneditem_user_id_next_review",
				Unique:  false,
				Columns: []*schema.Column{LearnedItemsColumns[1], LearnedItemsColumns[7]},
			},
			{
				Name:    "learneditem_user_id_item_type",
				Unique:  false,
				Columns: []*schema.Column{LearnedItemsColumns[1], LearnedItemsColumns[3]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "item_type", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "time_spent_ms", Type: field.TypeInt64, Default: 0},
		{Name: "strength_before", Type: field.TypeInt, Default: 0},
		{Name: "strength_after", Type: field.TypeInt, Default: 0},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
			{
				Name:    "reviewevent_user_id_item_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[4], ReviewEventsColumns[5]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "items_served", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "queue_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "failed_item_ids", Type: field.TypeJSON, Nullable: true},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_user_id_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4], SessionEventsColumns[5]},
			},
		},
	}
	// StatsSnapshotsColumns holds the columns for the "stats_snapshots" table.
	StatsSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// StatsSnapshotsTable holds the schema information for the "stats_snapshots" table.
	StatsSnapshotsTable = &schema.Table{
		Name:       "stats_snapshots",
		Columns:    StatsSnapshotsColumns,
		PrimaryKey: []*schema.Column{StatsSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "statssnapshot_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StatsSnapshotsColumns[1], StatsSnapshotsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LearnedItemsTable,
		ReviewEventsTable,
		SessionEventsTable,
		StatsSnapshotsTable,
	}
)

func init() {
}
