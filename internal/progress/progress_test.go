package progress

import (
	"errors"
	"testing"
	"time"

	"github.com/sagara/kotoba/internal/catalog"
	"github.com/sagara/kotoba/internal/strength"
)

var sessionDay = time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)

func event(id string, correct bool, spent time.Duration, at time.Time) Event {
	return Event{
		ItemID:    id,
		ItemType:  catalog.TypeVocabulary,
		Correct:   correct,
		TimeSpent: spent,
		Timestamp: at,
	}
}

func summary(events ...Event) Summary {
	return Summary{SessionID: "s1", UserID: "u1", Events: events}
}

func TestApplySession_XPAndAccuracy(t *testing.T) {
	agg := NewAggregator(DefaultParams())

	sum := summary(
		event("v1", true, 4*time.Second, sessionDay),
		event("v2", false, 6*time.Second, sessionDay.Add(time.Minute)),
		event("v3", true, 5*time.Second, sessionDay.Add(2*time.Minute)),
		event("v1", true, 3*time.Second, sessionDay.Add(3*time.Minute)),
	)
	stats, _, err := agg.ApplySession(NewStats(), DefaultGoal(), sum, sessionDay)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if stats.TotalXP != 30 {
		t.Errorf("TotalXP = %d, want 30", stats.TotalXP)
	}
	if stats.TotalCorrect != 3 || stats.TotalIncorrect != 1 {
		t.Errorf("counts = %d/%d, want 3/1", stats.TotalCorrect, stats.TotalIncorrect)
	}
	if stats.AccuracyRate != 0.75 {
		t.Errorf("AccuracyRate = %v, want 0.75", stats.AccuracyRate)
	}
	if stats.TimeSpentMs != 18000 {
		t.Errorf("TimeSpentMs = %d, want 18000", stats.TimeSpentMs)
	}
}

func TestApplySession_AccuracyIsLifetime(t *testing.T) {
	agg := NewAggregator(DefaultParams())

	prior := NewStats()
	prior.TotalCorrect = 90
	prior.TotalIncorrect = 10

	// A perfect session nudges, not replaces, the lifetime ratio.
	sum := summary(
		event("v1", true, time.Second, sessionDay),
		event("v2", true, time.Second, sessionDay.Add(time.Second)),
	)
	stats, _, err := agg.ApplySession(prior, DefaultGoal(), sum, sessionDay)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	want := float64(92) / float64(102)
	if stats.AccuracyRate != want {
		t.Errorf("AccuracyRate = %v, want %v", stats.AccuracyRate, want)
	}
}

func TestApplySession_MasteryCrossings(t *testing.T) {
	agg := NewAggregator(DefaultParams())

	cross := func(id string, typ catalog.ItemType, script catalog.Script, before, after int, at time.Time) Event {
		return Event{
			ItemID: id, ItemType: typ, Script: script,
			Correct: true, TimeSpent: time.Second,
			StrengthBefore: before, StrengthAfter: after,
			Timestamp: at,
		}
	}

	sum := summary(
		// Word crosses 80: counts.
		cross("v1", catalog.TypeVocabulary, "", 70, 85, sessionDay),
		// Already above threshold: no crossing.
		cross("v2", catalog.TypeVocabulary, "", 85, 100, sessionDay.Add(time.Second)),
		// Hiragana and kanji characters cross.
		cross("c1", catalog.TypeCharacter, catalog.ScriptHiragana, 75, 90, sessionDay.Add(2*time.Second)),
		cross("c2", catalog.TypeCharacter, catalog.ScriptKanji, 79, 80, sessionDay.Add(3*time.Second)),
		// v1 dips below and crosses again in the same session: still one.
		cross("v1", catalog.TypeVocabulary, "", 65, 85, sessionDay.Add(4*time.Second)),
		// Grammar crossings count toward neither bucket.
		cross("g1", catalog.TypeGrammar, "", 70, 90, sessionDay.Add(5*time.Second)),
	)
	stats, _, err := agg.ApplySession(NewStats(), DefaultGoal(), sum, sessionDay)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if stats.WordsLearned != 1 {
		t.Errorf("WordsLearned = %d, want 1", stats.WordsLearned)
	}
	if got := stats.CharactersLearned[catalog.ScriptHiragana]; got != 1 {
		t.Errorf("hiragana learned = %d, want 1", got)
	}
	if got := stats.CharactersLearned[catalog.ScriptKanji]; got != 1 {
		t.Errorf("kanji learned = %d, want 1", got)
	}
}

func TestApplySession_DoesNotMutatePrior(t *testing.T) {
	agg := NewAggregator(DefaultParams())

	prior := NewStats()
	prior.CharactersLearned[catalog.ScriptHiragana] = 5

	sum := summary(Event{
		ItemID: "c1", ItemType: catalog.TypeCharacter, Script: catalog.ScriptHiragana,
		Correct: true, StrengthBefore: 70, StrengthAfter: 90, Timestamp: sessionDay,
	})
	if _, _, err := agg.ApplySession(prior, DefaultGoal(), sum, sessionDay); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if prior.CharactersLearned[catalog.ScriptHiragana] != 5 {
		t.Errorf("prior map mutated: %v", prior.CharactersLearned)
	}
}

func TestApplySession_StreakTransitions(t *testing.T) {
	agg := NewAggregator(DefaultParams())
	sum := summary(event("v1", true, time.Second, sessionDay))

	t.Run("first session ever", func(t *testing.T) {
		stats, goal, err := agg.ApplySession(NewStats(), DefaultGoal(), sum, sessionDay)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if goal.StreakDays != 1 || stats.CurrentStreak != 1 {
			t.Errorf("streak = %d/%d, want 1/1", goal.StreakDays, stats.CurrentStreak)
		}
	})

	t.Run("consecutive day extends", func(t *testing.T) {
		prior := NewStats()
		prior.LastStudyDate = time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
		prior.CurrentStreak = 4
		prior.LongestStreak = 4

		stats, goal, err := agg.ApplySession(prior, Goal{TargetMinutes: 10, StreakDays: 4}, sum, sessionDay)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if goal.StreakDays != 5 {
			t.Errorf("StreakDays = %d, want 5", goal.StreakDays)
		}
		if stats.LongestStreak != 5 {
			t.Errorf("LongestStreak = %d, want 5", stats.LongestStreak)
		}
	})

	t.Run("same day unchanged", func(t *testing.T) {
		prior := NewStats()
		prior.LastStudyDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		prior.CurrentStreak = 4

		_, goal, err := agg.ApplySession(prior, Goal{TargetMinutes: 10, StreakDays: 4}, sum, sessionDay)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if goal.StreakDays != 4 {
			t.Errorf("StreakDays = %d, want 4", goal.StreakDays)
		}
	})

	t.Run("skipped day resets", func(t *testing.T) {
		prior := NewStats()
		prior.LastStudyDate = time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)
		prior.CurrentStreak = 9
		prior.LongestStreak = 9

		stats, goal, err := agg.ApplySession(prior, Goal{TargetMinutes: 10, StreakDays: 9}, sum, sessionDay)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if goal.StreakDays != 1 {
			t.Errorf("StreakDays = %d, want 1", goal.StreakDays)
		}
		if stats.LongestStreak != 9 {
			t.Errorf("LongestStreak = %d, want 9 (preserved)", stats.LongestStreak)
		}
	})
}

func TestApplySession_GoalMinutes(t *testing.T) {
	agg := NewAggregator(DefaultParams())

	sum := summary(
		event("v1", true, 4*time.Minute, sessionDay),
		event("v2", true, 3*time.Minute, sessionDay.Add(4*time.Minute)),
	)

	prior := NewStats()
	prior.LastStudyDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	goal := Goal{TargetMinutes: 10, CompletedMinutes: 5, StreakDays: 2}

	_, got, err := agg.ApplySession(prior, goal, sum, sessionDay)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.CompletedMinutes != 12 {
		t.Errorf("CompletedMinutes = %d, want 12 (same-day accumulation)", got.CompletedMinutes)
	}
	if !got.Met() {
		t.Error("goal should be met at 12/10 minutes")
	}
}

func TestApplySession_GoalMinutesResetOnNewDay(t *testing.T) {
	agg := NewAggregator(DefaultParams())

	sum := summary(event("v1", true, 2*time.Minute, sessionDay))

	prior := NewStats()
	prior.LastStudyDate = time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	goal := Goal{TargetMinutes: 10, CompletedMinutes: 25, StreakDays: 3}

	_, got, err := agg.ApplySession(prior, goal, sum, sessionDay)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.CompletedMinutes != 2 {
		t.Errorf("CompletedMinutes = %d, want 2 (reset on day change)", got.CompletedMinutes)
	}
}

func TestApplySession_SplitSessionsMatchCombined(t *testing.T) {
	agg := NewAggregator(DefaultParams())

	events := []Event{
		event("v1", true, 3*time.Second, sessionDay),
		{ItemID: "c1", ItemType: catalog.TypeCharacter, Script: catalog.ScriptKatakana,
			Correct: true, TimeSpent: 4 * time.Second,
			StrengthBefore: 75, StrengthAfter: 90, Timestamp: sessionDay.Add(time.Second)},
		event("v2", false, 5*time.Second, sessionDay.Add(2*time.Second)),
		event("v3", true, 2*time.Second, sessionDay.Add(3*time.Second)),
	}

	combined, _, err := agg.ApplySession(NewStats(), DefaultGoal(), summary(events...), sessionDay)
	if err != nil {
		t.Fatalf("apply combined: %v", err)
	}

	half, halfGoal, err := agg.ApplySession(NewStats(), DefaultGoal(), summary(events[:2]...), sessionDay)
	if err != nil {
		t.Fatalf("apply first half: %v", err)
	}
	split, _, err := agg.ApplySession(half, halfGoal, summary(events[2:]...), sessionDay)
	if err != nil {
		t.Fatalf("apply second half: %v", err)
	}

	if split.TotalXP != combined.TotalXP ||
		split.TotalCorrect != combined.TotalCorrect ||
		split.TotalIncorrect != combined.TotalIncorrect ||
		split.TimeSpentMs != combined.TimeSpentMs ||
		split.WordsLearned != combined.WordsLearned ||
		split.AccuracyRate != combined.AccuracyRate {
		t.Errorf("split sessions diverged from combined:\nsplit:    %+v\ncombined: %+v", split, combined)
	}
	if split.CharactersLearned[catalog.ScriptKatakana] != combined.CharactersLearned[catalog.ScriptKatakana] {
		t.Errorf("characters learned diverged: %v vs %v", split.CharactersLearned, combined.CharactersLearned)
	}
}

func TestApplySession_RejectsBadEvents(t *testing.T) {
	agg := NewAggregator(DefaultParams())
	var invalid *strength.InvalidInputError

	outOfOrder := summary(
		event("v1", true, time.Second, sessionDay.Add(time.Minute)),
		event("v2", true, time.Second, sessionDay),
	)
	if _, _, err := agg.ApplySession(NewStats(), DefaultGoal(), outOfOrder, sessionDay); !errors.As(err, &invalid) {
		t.Errorf("out-of-order events: got %v, want InvalidInputError", err)
	}

	negative := summary(event("v1", true, -time.Second, sessionDay))
	if _, _, err := agg.ApplySession(NewStats(), DefaultGoal(), negative, sessionDay); !errors.As(err, &invalid) {
		t.Errorf("negative time spent: got %v, want InvalidInputError", err)
	}
}

func TestApplySession_LessonsCompletedFromSummary(t *testing.T) {
	agg := NewAggregator(DefaultParams())

	prior := NewStats()
	prior.LessonsCompleted = 7

	sum := summary(event("v1", true, time.Second, sessionDay))
	sum.LessonsCompleted = 2

	stats, _, err := agg.ApplySession(prior, DefaultGoal(), sum, sessionDay)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if stats.LessonsCompleted != 9 {
		t.Errorf("LessonsCompleted = %d, want 9", stats.LessonsCompleted)
	}
}
