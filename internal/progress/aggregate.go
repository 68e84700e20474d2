// Package progress rolls completed review sessions up into user
// statistics, streaks and daily-goal state. Aggregation is pure: prior
// state in, new state out, persistence belongs to the store.
package progress

import (
	"time"

	"github.com/sagara/kotoba/internal/catalog"
	"github.com/sagara/kotoba/internal/strength"
)

// Event is one graded answer inside a session summary.
type Event struct {
	ItemID         string
	ItemType       catalog.ItemType
	Script         catalog.Script
	Correct        bool
	HintsUsed      int
	TimeSpent      time.Duration
	StrengthBefore int
	StrengthAfter  int
	Timestamp      time.Time
}

// Summary is the aggregate handed over when a session completes.
// Events are ordered by timestamp, non-decreasing.
type Summary struct {
	SessionID string
	UserID    string
	Events    []Event

	// LessonsCompleted is the number of structured lessons finished
	// during the session, reported by the lesson-flow collaborator.
	// Plain review sessions leave it at zero.
	LessonsCompleted int
}

// Duration is the total answer time across all events.
func (s Summary) Duration() time.Duration {
	var total time.Duration
	for _, e := range s.Events {
		total += e.TimeSpent
	}
	return total
}

// Params holds the aggregator's tuning constants.
type Params struct {
	// XPPerCorrect is awarded for each correct answer. Incorrect
	// answers award nothing.
	XPPerCorrect int

	// MasteryThreshold is the strength at which an item first counts
	// toward wordsLearned / charactersLearned.
	MasteryThreshold int
}

// DefaultParams returns the product defaults.
func DefaultParams() Params {
	return Params{XPPerCorrect: 10, MasteryThreshold: 80}
}

// Aggregator applies session summaries to user statistics.
type Aggregator struct {
	params Params
}

// NewAggregator creates an aggregator with the given params.
func NewAggregator(p Params) Aggregator {
	return Aggregator{params: p}
}

// ApplySession folds a completed session into the prior statistics and
// daily goal. today is the calendar day the session completed on.
//
// Splitting one session into two consecutive sub-sessions and applying
// both yields the same statistics, except for streak and goal-minute
// effects which depend only on the calendar date.
func (a Aggregator) ApplySession(prior Stats, goal Goal, sum Summary, today time.Time) (Stats, Goal, error) {
	if err := validateOrdering(sum.Events); err != nil {
		return Stats{}, Goal{}, err
	}

	stats := prior
	stats.CharactersLearned = make(map[catalog.Script]int, len(prior.CharactersLearned))
	for k, v := range prior.CharactersLearned {
		stats.CharactersLearned[k] = v
	}

	// An item crossing the mastery threshold counts once per session,
	// even if it dips and crosses again.
	crossed := make(map[string]bool)

	for _, e := range sum.Events {
		if e.Correct {
			stats.TotalXP += a.params.XPPerCorrect
			stats.TotalCorrect++
		} else {
			stats.TotalIncorrect++
		}
		stats.TimeSpentMs += e.TimeSpent.Milliseconds()

		if e.StrengthBefore < a.params.MasteryThreshold &&
			e.StrengthAfter >= a.params.MasteryThreshold &&
			!crossed[e.ItemID] {
			crossed[e.ItemID] = true
			switch e.ItemType {
			case catalog.TypeVocabulary:
				stats.WordsLearned++
			case catalog.TypeCharacter:
				stats.CharactersLearned[e.Script]++
			}
		}
	}

	if total := stats.TotalCorrect + stats.TotalIncorrect; total > 0 {
		stats.AccuracyRate = float64(stats.TotalCorrect) / float64(total)
	}
	stats.LessonsCompleted += sum.LessonsCompleted

	goal = a.applyGoal(goal, &stats, sum, today)
	stats.CurrentStreak = goal.StreakDays
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}

	return stats, goal, nil
}

// applyGoal updates the daily goal and streak for a session on today.
// The streak advances at most once per calendar day and resets when a
// day is skipped.
func (a Aggregator) applyGoal(goal Goal, stats *Stats, sum Summary, today time.Time) Goal {
	day := dateOf(today)
	last := dateOf(stats.LastStudyDate)

	switch {
	case stats.LastStudyDate.IsZero():
		goal.StreakDays = 1
		goal.CompletedMinutes = 0
	case day.Equal(last):
		// Same calendar day: streak and minutes carry on.
	case day.Sub(last) == 24*time.Hour:
		goal.StreakDays++
		goal.CompletedMinutes = 0
	default:
		goal.StreakDays = 1
		goal.CompletedMinutes = 0
	}

	goal.CompletedMinutes += int(sum.Duration() / time.Minute)
	stats.LastStudyDate = day
	return goal
}

func validateOrdering(events []Event) error {
	for i := range events {
		if events[i].TimeSpent < 0 {
			return &strength.InvalidInputError{Field: "timeSpent", Reason: "must not be negative"}
		}
		if i > 0 && events[i].Timestamp.Before(events[i-1].Timestamp) {
			return &strength.InvalidInputError{Field: "events", Reason: "timestamps must be non-decreasing"}
		}
	}
	return nil
}
