// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LearnedItem is the predicate function for learneditem builders.
type LearnedItem func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// StatsSnapshot is the predicate function for statssnapshot builders.
type StatsSnapshot func(*sql.Selector)
