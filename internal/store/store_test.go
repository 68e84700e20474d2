package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sagara/kotoba/internal/catalog"
	"github.com/sagara/kotoba/internal/progress"
	"github.com/sagara/kotoba/internal/strength"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecord(userID, itemID string, strengthVal int, nextReview time.Time) strength.Record {
	last := nextReview.AddDate(0, 0, -3)
	return strength.Record{
		UserID:         userID,
		ItemID:         itemID,
		ItemType:       catalog.TypeVocabulary,
		Strength:       strengthVal,
		LastReviewed:   &last,
		NextReview:     nextReview,
		CorrectCount:   2,
		IncorrectCount: 1,
	}
}

func TestRecordRepo_PutGetRoundtrip(t *testing.T) {
	s := testStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	want := sampleRecord("u1", "vocab-mizu", 55, testNow)
	if err := repo.Put(ctx, want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Get(ctx, "u1", "vocab-mizu")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Strength != 55 || got.CorrectCount != 2 || got.IncorrectCount != 1 {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got.LastReviewed == nil || !got.LastReviewed.Equal(*want.LastReviewed) {
		t.Errorf("LastReviewed = %v, want %v", got.LastReviewed, want.LastReviewed)
	}
	if !got.NextReview.Equal(want.NextReview) {
		t.Errorf("NextReview = %v, want %v", got.NextReview, want.NextReview)
	}

	// Put again updates in place rather than duplicating.
	want.Strength = 75
	want.CorrectCount = 3
	if err := repo.Put(ctx, want); err != nil {
		t.Fatalf("second put: %v", err)
	}
	got, err = repo.Get(ctx, "u1", "vocab-mizu")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Strength != 75 || got.CorrectCount != 3 {
		t.Errorf("update lost: %+v", got)
	}
}

func TestRecordRepo_GetMissingReturnsZeroState(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	got, err := s.RecordRepo().Get(ctx, "u1", "never-seen")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Strength != 0 || got.TotalAttempts() != 0 {
		t.Errorf("missing record = %+v, want zero state", got)
	}
	if !got.IsDue(testNow) {
		t.Error("zero-state record should be due immediately")
	}
}

func TestRecordRepo_Due(t *testing.T) {
	s := testStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	overdue := sampleRecord("u1", "vocab-a", 40, testNow.AddDate(0, 0, -2))
	dueNow := sampleRecord("u1", "vocab-b", 60, testNow)
	notYet := sampleRecord("u1", "vocab-c", 80, testNow.AddDate(0, 0, 5))
	otherUser := sampleRecord("u2", "vocab-a", 40, testNow.AddDate(0, 0, -2))

	neverReviewed := sampleRecord("u1", "char-a", 0, testNow.AddDate(0, 0, 9))
	neverReviewed.ItemType = catalog.TypeCharacter
	neverReviewed.Script = catalog.ScriptHiragana
	neverReviewed.LastReviewed = nil

	for _, rec := range []strength.Record{overdue, dueNow, notYet, otherUser, neverReviewed} {
		if err := repo.Put(ctx, rec); err != nil {
			t.Fatalf("put %s: %v", rec.ItemID, err)
		}
	}

	recs, err := repo.DueRecords(ctx, "u1", testNow)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	got := make(map[string]bool, len(recs))
	for _, r := range recs {
		got[r.ItemID] = true
	}
	for _, id := range []string{"vocab-a", "vocab-b", "char-a"} {
		if !got[id] {
			t.Errorf("due records missing %s: %v", id, got)
		}
	}
	if got["vocab-c"] {
		t.Error("future record reported as due")
	}
	if len(recs) != 3 {
		t.Errorf("due count = %d, want 3", len(recs))
	}

	// Type filter narrows the result.
	chars, err := repo.Due(ctx, "u1", ItemFilter{Types: []catalog.ItemType{catalog.TypeCharacter}}, testNow)
	if err != nil {
		t.Fatalf("filtered due: %v", err)
	}
	if len(chars) != 1 || chars[0].ItemID != "char-a" {
		t.Errorf("filtered due = %v, want [char-a]", chars)
	}
}

func TestRecordRepo_KnownItemIDs(t *testing.T) {
	s := testStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, sampleRecord("u1", "vocab-a", 40, testNow)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put(ctx, sampleRecord("u2", "vocab-b", 40, testNow)); err != nil {
		t.Fatalf("put: %v", err)
	}

	known, err := repo.KnownItemIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("known: %v", err)
	}
	if len(known) != 1 || !known["vocab-a"] {
		t.Errorf("known = %v, want {vocab-a}", known)
	}
}

func TestEventRepo_ReviewsOn(t *testing.T) {
	s := testStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := events.AppendReview(ctx, ReviewEventData{
			SessionID: "s1", UserID: "u1", ItemID: fmt.Sprintf("vocab-%d", i),
			ItemType: "vocabulary", Correct: true, TimeSpentMs: 1000,
			StrengthBefore: 0, StrengthAfter: 20,
		})
		if err != nil {
			t.Fatalf("append review: %v", err)
		}
	}
	if err := events.AppendReview(ctx, ReviewEventData{
		SessionID: "s2", UserID: "u2", ItemID: "vocab-x", ItemType: "vocabulary",
	}); err != nil {
		t.Fatalf("append review: %v", err)
	}

	n, err := events.ReviewsOn(ctx, "u1", time.Now().UTC())
	if err != nil {
		t.Fatalf("reviews on: %v", err)
	}
	if n != 3 {
		t.Errorf("ReviewsOn = %d, want 3", n)
	}

	n, err = events.ReviewsOn(ctx, "u1", time.Now().UTC().AddDate(0, 0, -1))
	if err != nil {
		t.Fatalf("reviews on: %v", err)
	}
	if n != 0 {
		t.Errorf("ReviewsOn yesterday = %d, want 0", n)
	}
}

func TestEventRepo_SessionEvents(t *testing.T) {
	s := testStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	err := events.AppendSession(ctx, SessionEventData{
		SessionID: "s1", UserID: "u1", Action: "start",
		QueueSummary: []QueueEntrySummary{
			{ItemID: "vocab-a", ItemType: "vocabulary", New: true},
		},
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = events.AppendSession(ctx, SessionEventData{
		SessionID: "s1", UserID: "u1", Action: "complete",
		ItemsServed: 1, CorrectAnswers: 1, DurationSecs: 42,
		FailedItemIDs: []string{"vocab-a"},
	})
	if err != nil {
		t.Fatalf("append complete: %v", err)
	}
}

func TestStatsRepo_SaveLoadRoundtrip(t *testing.T) {
	s := testStore(t)
	repo := s.StatsRepo()
	ctx := context.Background()

	_, _, ok, err := repo.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if ok {
		t.Error("ok = true for user with no snapshots")
	}

	stats := progress.NewStats()
	stats.TotalXP = 120
	stats.CurrentStreak = 3
	stats.WordsLearned = 2
	stats.CharactersLearned[catalog.ScriptHiragana] = 4
	stats.TotalCorrect = 12
	stats.TotalIncorrect = 3
	stats.AccuracyRate = 0.8
	stats.LastStudyDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	goal := progress.Goal{TargetMinutes: 15, CompletedMinutes: 7, StreakDays: 3}

	if err := repo.Save(ctx, "u1", stats, goal); err != nil {
		t.Fatalf("save: %v", err)
	}

	gotStats, gotGoal, ok, err := repo.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatal("ok = false after save")
	}
	if gotStats.TotalXP != 120 || gotStats.WordsLearned != 2 {
		t.Errorf("stats = %+v, want %+v", gotStats, stats)
	}
	if gotStats.CharactersLearned[catalog.ScriptHiragana] != 4 {
		t.Errorf("CharactersLearned = %v, want hiragana:4", gotStats.CharactersLearned)
	}
	if !gotStats.LastStudyDate.Equal(stats.LastStudyDate) {
		t.Errorf("LastStudyDate = %v, want %v", gotStats.LastStudyDate, stats.LastStudyDate)
	}
	if gotGoal != goal {
		t.Errorf("goal = %+v, want %+v", gotGoal, goal)
	}
}

func TestEventRepo_AppendFailuresAreStorageErrors(t *testing.T) {
	s := testStore(t)
	events := s.EventRepo()
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	var storageErr *StorageError
	err := events.AppendReview(context.Background(), ReviewEventData{
		SessionID: "s1", UserID: "u1", ItemID: "vocab-a", ItemType: "vocabulary",
	})
	if !errors.As(err, &storageErr) {
		t.Errorf("append review on closed store: got %v, want StorageError", err)
	}

	err = events.AppendSession(context.Background(), SessionEventData{
		SessionID: "s1", UserID: "u1", Action: "start",
	})
	if !errors.As(err, &storageErr) {
		t.Errorf("append session on closed store: got %v, want StorageError", err)
	}
}

func TestStatsRepo_LoadReturnsLatest(t *testing.T) {
	s := testStore(t)
	repo := s.StatsRepo()
	ctx := context.Background()

	for xp := 10; xp <= 30; xp += 10 {
		stats := progress.NewStats()
		stats.TotalXP = xp
		if err := repo.Save(ctx, "u1", stats, progress.DefaultGoal()); err != nil {
			t.Fatalf("save xp=%d: %v", xp, err)
		}
		// Snapshot timestamps need to differ.
		time.Sleep(5 * time.Millisecond)
	}

	got, _, _, err := repo.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.TotalXP != 30 {
		t.Errorf("TotalXP = %d, want 30 (latest snapshot)", got.TotalXP)
	}
}

func TestStatsRepo_PruneBreaksTimestampTiesByID(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	// Three snapshots sharing one timestamp; only insertion order (the
	// row id) distinguishes them.
	for xp := 1; xp <= 3; xp++ {
		data, err := toMap(statsData{Stats: progress.Stats{TotalXP: xp}})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		_, err = s.Client().StatsSnapshot.Create().
			SetUserID("u1").
			SetTimestamp(testNow).
			SetData(data).
			Save(ctx)
		if err != nil {
			t.Fatalf("create snapshot xp=%d: %v", xp, err)
		}
	}

	if err := s.StatsRepo().Prune(ctx, "u1", 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	n, err := s.Client().StatsSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("snapshots after prune = %d, want 2", n)
	}

	got, _, ok, err := s.StatsRepo().Load(ctx, "u1")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.TotalXP != 3 {
		t.Errorf("TotalXP = %d, want 3 (newest row survives the tie)", got.TotalXP)
	}
}

func TestResetUser(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.RecordRepo().Put(ctx, sampleRecord("u1", "vocab-a", 40, testNow)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.RecordRepo().Put(ctx, sampleRecord("u2", "vocab-a", 40, testNow)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.EventRepo().AppendReview(ctx, ReviewEventData{SessionID: "s1", UserID: "u1", ItemID: "vocab-a", ItemType: "vocabulary"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.StatsRepo().Save(ctx, "u1", progress.NewStats(), progress.DefaultGoal()); err != nil {
		t.Fatalf("save stats: %v", err)
	}

	if err := s.ResetUser(ctx, "u1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	known, err := s.RecordRepo().KnownItemIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("known: %v", err)
	}
	if len(known) != 0 {
		t.Errorf("records survived reset: %v", known)
	}
	if _, _, ok, err := s.StatsRepo().Load(ctx, "u1"); err != nil || ok {
		t.Errorf("stats survived reset (ok=%v, err=%v)", ok, err)
	}
	n, err := s.EventRepo().ReviewsOn(ctx, "u1", time.Now().UTC())
	if err != nil {
		t.Fatalf("reviews on: %v", err)
	}
	if n != 0 {
		t.Errorf("events survived reset: %d", n)
	}

	// Other users are untouched.
	known, err = s.RecordRepo().KnownItemIDs(ctx, "u2")
	if err != nil {
		t.Fatalf("known u2: %v", err)
	}
	if len(known) != 1 {
		t.Errorf("reset touched another user's records: %v", known)
	}
}

// flakyRepo fails Put a fixed number of times before succeeding.
type flakyRepo struct {
	RecordRepo
	failures int
	calls    int
}

func (f *flakyRepo) Put(ctx context.Context, rec strength.Record) error {
	f.calls++
	if f.calls <= f.failures {
		return &StorageError{Op: "put record", UserID: rec.UserID, ItemID: rec.ItemID, Err: errors.New("transient")}
	}
	return nil
}

func TestWithRetry_RecoversFromTransientFailures(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2.0}

	flaky := &flakyRepo{failures: 2}
	repo := WithRetry(flaky, cfg)
	if err := repo.Put(context.Background(), strength.Record{UserID: "u1", ItemID: "x"}); err != nil {
		t.Fatalf("put should succeed on third attempt: %v", err)
	}
	if flaky.calls != 3 {
		t.Errorf("calls = %d, want 3", flaky.calls)
	}

	exhausted := &flakyRepo{failures: 10}
	repo = WithRetry(exhausted, cfg)
	err := repo.Put(context.Background(), strength.Record{UserID: "u1", ItemID: "x"})
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("got %v, want StorageError after exhausting retries", err)
	}
	if exhausted.calls != 3 {
		t.Errorf("calls = %d, want 3 (bounded)", exhausted.calls)
	}
}

// invalidRepo always fails with invalid input.
type invalidRepo struct {
	RecordRepo
	calls int
}

func (f *invalidRepo) Put(ctx context.Context, rec strength.Record) error {
	f.calls++
	return &strength.InvalidInputError{Field: "strength", Reason: "out of range"}
}

func TestWithRetry_DoesNotRetryInvalidInput(t *testing.T) {
	inner := &invalidRepo{}
	repo := WithRetry(inner, DefaultRetryConfig())

	err := repo.Put(context.Background(), strength.Record{UserID: "u1", ItemID: "x"})
	var invalid *strength.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want InvalidInputError", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry)", inner.calls)
	}
}
