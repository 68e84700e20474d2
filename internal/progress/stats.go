package progress

import (
	"time"

	"github.com/sagara/kotoba/internal/catalog"
)

// Stats is the derived, recomputed aggregate of a user's study history.
type Stats struct {
	TotalXP          int   `json:"total_xp"`
	CurrentStreak    int   `json:"current_streak"`
	LongestStreak    int   `json:"longest_streak"`
	LessonsCompleted int   `json:"lessons_completed"`
	TimeSpentMs      int64 `json:"time_spent_ms"`
	WordsLearned     int   `json:"words_learned"`

	// CharactersLearned counts characters first mastered, per script.
	CharactersLearned map[catalog.Script]int `json:"characters_learned"`

	// TotalCorrect/TotalIncorrect accumulate lifetime answer counts;
	// AccuracyRate is derived from them so it stays a lifetime ratio
	// rather than a per-session one.
	TotalCorrect   int     `json:"total_correct"`
	TotalIncorrect int     `json:"total_incorrect"`
	AccuracyRate   float64 `json:"accuracy_rate"`

	// LastStudyDate is the calendar day (UTC midnight) of the most
	// recent completed session. Zero means the user has never studied.
	LastStudyDate time.Time `json:"last_study_date"`
}

// NewStats returns zeroed statistics with initialized maps.
func NewStats() Stats {
	return Stats{CharactersLearned: make(map[catalog.Script]int)}
}

// TimeSpentMinutes is the lifetime study time in whole minutes.
func (s Stats) TimeSpentMinutes() int {
	return int(s.TimeSpentMs / int64(time.Minute/time.Millisecond))
}

// Goal is the user's daily study goal.
type Goal struct {
	TargetMinutes    int `json:"target_minutes"`
	CompletedMinutes int `json:"completed_minutes"`
	StreakDays       int `json:"streak_days"`
}

// DefaultGoal returns the onboarding default of 10 minutes per day.
func DefaultGoal() Goal {
	return Goal{TargetMinutes: 10}
}

// Met reports whether today's goal has been reached.
func (g Goal) Met() bool {
	return g.TargetMinutes > 0 && g.CompletedMinutes >= g.TargetMinutes
}

// dateOf truncates a timestamp to its UTC calendar day.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
