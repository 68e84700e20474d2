// Package strength implements the pure mastery-strength model: how a
// learned item's strength and review schedule evolve in response to a
// graded answer. It performs no I/O and holds no state.
package strength

import (
	"math"
	"time"

	"github.com/sagara/kotoba/internal/catalog"
)

// Record is the per-user, per-item spaced repetition state.
type Record struct {
	UserID   string
	ItemID   string
	ItemType catalog.ItemType
	Script   catalog.Script

	// Strength is the bounded mastery score, 0-100.
	Strength int

	// LastReviewed is nil until the first review.
	LastReviewed *time.Time

	// NextReview is the due timestamp. A record with a nil LastReviewed
	// is due regardless of NextReview.
	NextReview time.Time

	CorrectCount   int
	IncorrectCount int
}

// NewRecord returns the zero-state record for an item the user has never
// studied: strength 0, no counts, due immediately.
func NewRecord(userID string, item catalog.Item) Record {
	return Record{
		UserID:   userID,
		ItemID:   item.ID,
		ItemType: item.Type,
		Script:   item.Script,
	}
}

// IsDue reports whether the item should be reviewed at the given time.
// Never-reviewed items are always due.
func (r Record) IsDue(now time.Time) bool {
	if r.LastReviewed == nil {
		return true
	}
	return !now.Before(r.NextReview)
}

// TotalAttempts is the number of reviews recorded for this item.
func (r Record) TotalAttempts() int {
	return r.CorrectCount + r.IncorrectCount
}

// Accuracy is the lifetime correct ratio, 0 when never attempted.
func (r Record) Accuracy() float64 {
	total := r.TotalAttempts()
	if total == 0 {
		return 0
	}
	return float64(r.CorrectCount) / float64(total)
}

// Outcome is a single graded answer.
type Outcome struct {
	Correct   bool
	HintsUsed int
	TimeSpent time.Duration
}

// Params holds the tuning constants of the strength model.
type Params struct {
	// BaseBonus is the strength gain for an unhinted correct answer.
	BaseBonus int

	// Penalty is the strength loss for an incorrect answer. Hints do not
	// reduce the penalty.
	Penalty int

	// CurveMaxDays scales the interval curve: a strength-100 item
	// reviews again in roughly 1+CurveMaxDays days.
	CurveMaxDays int

	// RelapseInterval is the forced short interval after an incorrect
	// answer, regardless of the previous interval.
	RelapseInterval time.Duration

	// MasteryThreshold is the strength at which an item counts as
	// learned for statistics purposes.
	MasteryThreshold int
}

// DefaultParams returns the product-tuned defaults.
func DefaultParams() Params {
	return Params{
		BaseBonus:        20,
		Penalty:          15,
		CurveMaxDays:     30,
		RelapseInterval:  24 * time.Hour,
		MasteryThreshold: 80,
	}
}

// Model applies review outcomes to records.
type Model struct {
	params Params
}

// NewModel creates a strength model with the given params.
func NewModel(p Params) Model {
	return Model{params: p}
}

// Params returns the model's tuning constants.
func (m Model) Params() Params {
	return m.params
}

// Apply computes the updated record for a review outcome at the given
// time. The input record is not mutated.
func (m Model) Apply(rec Record, out Outcome, now time.Time) (Record, error) {
	if out.HintsUsed < 0 {
		return Record{}, &InvalidInputError{Field: "hintsUsed", Reason: "must not be negative"}
	}
	if out.TimeSpent < 0 {
		return Record{}, &InvalidInputError{Field: "timeSpent", Reason: "must not be negative"}
	}

	rec.Strength = clamp(rec.Strength)

	if out.Correct {
		bonus := m.params.BaseBonus / (1 + out.HintsUsed)
		rec.Strength = clamp(rec.Strength + bonus)
		rec.CorrectCount++
		rec.NextReview = now.AddDate(0, 0, m.IntervalDays(rec.Strength))
	} else {
		rec.Strength = clamp(rec.Strength - m.params.Penalty)
		rec.IncorrectCount++
		rec.NextReview = now.Add(m.params.RelapseInterval)
	}

	reviewed := now
	rec.LastReviewed = &reviewed
	return rec, nil
}

// IntervalDays maps a strength to its next review interval. The curve is
// super-linear: low-strength items come back within a day or two, items
// near 100 stretch to weeks.
func (m Model) IntervalDays(strength int) int {
	s := float64(clamp(strength)) / 100.0
	return int(math.Round(1 + s*s*float64(m.params.CurveMaxDays)))
}

// Mastered reports whether the strength is at or above the mastery
// threshold.
func (m Model) Mastered(strength int) bool {
	return strength >= m.params.MasteryThreshold
}

func clamp(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
