package strength

import (
	"errors"
	"testing"
	"time"

	"github.com/sagara/kotoba/internal/catalog"
)

var reviewTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func testRecord() Record {
	last := reviewTime.AddDate(0, 0, -5)
	return Record{
		UserID:         "u1",
		ItemID:         "vocab-mizu",
		ItemType:       catalog.TypeVocabulary,
		Strength:       50,
		LastReviewed:   &last,
		NextReview:     reviewTime,
		CorrectCount:   3,
		IncorrectCount: 1,
	}
}

func TestApply_CorrectAddsBonusAndSchedulesByCurve(t *testing.T) {
	m := NewModel(DefaultParams())

	got, err := m.Apply(testRecord(), Outcome{Correct: true}, reviewTime)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got.Strength != 70 {
		t.Errorf("Strength = %d, want 70", got.Strength)
	}
	if got.CorrectCount != 4 {
		t.Errorf("CorrectCount = %d, want 4", got.CorrectCount)
	}
	if got.IncorrectCount != 1 {
		t.Errorf("IncorrectCount = %d, want 1", got.IncorrectCount)
	}
	if got.LastReviewed == nil || !got.LastReviewed.Equal(reviewTime) {
		t.Errorf("LastReviewed = %v, want %v", got.LastReviewed, reviewTime)
	}

	// Curve at strength 70: round(1 + 0.49*30) = 16 days.
	wantNext := reviewTime.AddDate(0, 0, 16)
	if !got.NextReview.Equal(wantNext) {
		t.Errorf("NextReview = %v, want %v", got.NextReview, wantNext)
	}
}

func TestApply_IncorrectSubtractsPenaltyAndForcesShortInterval(t *testing.T) {
	m := NewModel(DefaultParams())

	got, err := m.Apply(testRecord(), Outcome{Correct: false}, reviewTime)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got.Strength != 35 {
		t.Errorf("Strength = %d, want 35", got.Strength)
	}
	if got.IncorrectCount != 2 {
		t.Errorf("IncorrectCount = %d, want 2", got.IncorrectCount)
	}
	wantNext := reviewTime.Add(24 * time.Hour)
	if !got.NextReview.Equal(wantNext) {
		t.Errorf("NextReview = %v, want exactly %v", got.NextReview, wantNext)
	}
}

func TestApply_HintsReduceBonus(t *testing.T) {
	m := NewModel(DefaultParams())

	tests := []struct {
		hints        int
		wantStrength int
	}{
		{0, 70}, // +20
		{1, 60}, // +10
		{2, 56}, // +6
		{3, 55}, // +5
	}
	for _, tt := range tests {
		got, err := m.Apply(testRecord(), Outcome{Correct: true, HintsUsed: tt.hints}, reviewTime)
		if err != nil {
			t.Fatalf("apply with %d hints: %v", tt.hints, err)
		}
		if got.Strength != tt.wantStrength {
			t.Errorf("hints=%d: Strength = %d, want %d", tt.hints, got.Strength, tt.wantStrength)
		}
	}
}

func TestApply_HintsDoNotReducePenalty(t *testing.T) {
	m := NewModel(DefaultParams())

	got, err := m.Apply(testRecord(), Outcome{Correct: false, HintsUsed: 5}, reviewTime)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.Strength != 35 {
		t.Errorf("Strength = %d, want 35 (full penalty despite hints)", got.Strength)
	}
}

func TestApply_ClampsAtBounds(t *testing.T) {
	m := NewModel(DefaultParams())

	high := testRecord()
	high.Strength = 95
	got, err := m.Apply(high, Outcome{Correct: true}, reviewTime)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.Strength != 100 {
		t.Errorf("Strength = %d, want 100", got.Strength)
	}

	low := testRecord()
	low.Strength = 10
	got, err = m.Apply(low, Outcome{Correct: false}, reviewTime)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.Strength != 0 {
		t.Errorf("Strength = %d, want 0", got.Strength)
	}
}

func TestApply_StrengthStaysBoundedOverManyReviews(t *testing.T) {
	m := NewModel(DefaultParams())
	rec := NewRecord("u1", catalog.Item{ID: "x", Type: catalog.TypeVocabulary})

	now := reviewTime
	for i := 0; i < 500; i++ {
		// Alternate unevenly between outcomes.
		out := Outcome{Correct: i%3 != 0, HintsUsed: i % 4}
		var err error
		rec, err = m.Apply(rec, out, now)
		if err != nil {
			t.Fatalf("apply #%d: %v", i, err)
		}
		if rec.Strength < 0 || rec.Strength > 100 {
			t.Fatalf("apply #%d: Strength = %d, out of [0,100]", i, rec.Strength)
		}
		if rec.TotalAttempts() != i+1 {
			t.Fatalf("apply #%d: TotalAttempts = %d, want %d", i, rec.TotalAttempts(), i+1)
		}
		now = rec.NextReview
	}
}

func TestApply_InvalidInput(t *testing.T) {
	m := NewModel(DefaultParams())

	_, err := m.Apply(testRecord(), Outcome{Correct: true, HintsUsed: -1}, reviewTime)
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("negative hints: got %v, want InvalidInputError", err)
	}

	_, err = m.Apply(testRecord(), Outcome{Correct: true, TimeSpent: -time.Second}, reviewTime)
	if !errors.As(err, &invalid) {
		t.Fatalf("negative time: got %v, want InvalidInputError", err)
	}
}

func TestIsDue_NeverReviewedAlwaysDue(t *testing.T) {
	rec := NewRecord("u1", catalog.Item{ID: "x", Type: catalog.TypeGrammar})
	rec.NextReview = reviewTime.AddDate(0, 0, 7) // in the future

	if !rec.IsDue(reviewTime) {
		t.Error("never-reviewed record should be due regardless of NextReview")
	}
}

func TestIsDue_RespectsNextReview(t *testing.T) {
	rec := testRecord()
	rec.NextReview = reviewTime.Add(time.Hour)

	if rec.IsDue(reviewTime) {
		t.Error("record should not be due before NextReview")
	}
	if !rec.IsDue(reviewTime.Add(time.Hour)) {
		t.Error("record should be due at NextReview")
	}
}

func TestIntervalDays_MonotonicCurve(t *testing.T) {
	m := NewModel(DefaultParams())

	if got := m.IntervalDays(0); got != 1 {
		t.Errorf("IntervalDays(0) = %d, want 1", got)
	}
	if got := m.IntervalDays(100); got != 31 {
		t.Errorf("IntervalDays(100) = %d, want 31", got)
	}

	prev := 0
	for s := 0; s <= 100; s += 5 {
		d := m.IntervalDays(s)
		if d < prev {
			t.Fatalf("IntervalDays(%d) = %d, decreased from %d", s, d, prev)
		}
		prev = d
	}
}

func TestAccuracy(t *testing.T) {
	rec := testRecord()
	if got := rec.Accuracy(); got != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", got)
	}

	empty := NewRecord("u1", catalog.Item{ID: "x"})
	if got := empty.Accuracy(); got != 0 {
		t.Errorf("Accuracy (no attempts) = %v, want 0", got)
	}
}
