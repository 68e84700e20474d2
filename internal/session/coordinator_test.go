package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sagara/kotoba/internal/catalog"
	"github.com/sagara/kotoba/internal/progress"
	"github.com/sagara/kotoba/internal/scheduler"
	"github.com/sagara/kotoba/internal/store"
	"github.com/sagara/kotoba/internal/strength"
)

var startAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

// fakeRecords is an in-memory RecordRepo. failPut marks item ids whose
// Put should fail, to exercise partial-persist handling.
type fakeRecords struct {
	mu      sync.Mutex
	recs    map[string]strength.Record
	failPut map[string]bool
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{recs: make(map[string]strength.Record), failPut: make(map[string]bool)}
}

func key(userID, itemID string) string { return userID + "|" + itemID }

func (f *fakeRecords) Get(_ context.Context, userID, itemID string) (strength.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec, ok := f.recs[key(userID, itemID)]; ok {
		return rec, nil
	}
	return strength.Record{UserID: userID, ItemID: itemID}, nil
}

func (f *fakeRecords) Put(_ context.Context, rec strength.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPut[rec.ItemID] {
		return &store.StorageError{Op: "put record", UserID: rec.UserID, ItemID: rec.ItemID, Err: errors.New("disk full")}
	}
	f.recs[key(rec.UserID, rec.ItemID)] = rec
	return nil
}

func (f *fakeRecords) Due(_ context.Context, userID string, _ store.ItemFilter, asOf time.Time) ([]strength.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []strength.Record
	for _, rec := range f.recs {
		if rec.UserID == userID && rec.IsDue(asOf) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecords) DueRecords(ctx context.Context, userID string, asOf time.Time) ([]strength.Record, error) {
	return f.Due(ctx, userID, store.ItemFilter{}, asOf)
}

func (f *fakeRecords) KnownItemIDs(_ context.Context, userID string) (map[string]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	known := make(map[string]bool)
	for _, rec := range f.recs {
		if rec.UserID == userID {
			known[rec.ItemID] = true
		}
	}
	return known, nil
}

// fakeEvents collects appended events in memory. failComplete makes the
// next N "complete" appends fail, to exercise retried completion.
type fakeEvents struct {
	mu           sync.Mutex
	reviews      []store.ReviewEventData
	sessions     []store.SessionEventData
	failComplete int
}

func (f *fakeEvents) AppendReview(_ context.Context, data store.ReviewEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviews = append(f.reviews, data)
	return nil
}

func (f *fakeEvents) AppendSession(_ context.Context, data store.SessionEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if data.Action == "complete" && f.failComplete > 0 {
		f.failComplete--
		return &store.StorageError{Op: "append session event", UserID: data.UserID, Err: errors.New("disk full")}
	}
	f.sessions = append(f.sessions, data)
	return nil
}

func (f *fakeEvents) ReviewsOn(_ context.Context, userID string, day time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.reviews {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeEvents) lastSession(t *testing.T) store.SessionEventData {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sessions) == 0 {
		t.Fatal("no session events recorded")
	}
	return f.sessions[len(f.sessions)-1]
}

// fakeStats holds a single latest snapshot per user.
type fakeStats struct {
	mu    sync.Mutex
	stats map[string]progress.Stats
	goals map[string]progress.Goal
	saves int
}

func newFakeStats() *fakeStats {
	return &fakeStats{stats: make(map[string]progress.Stats), goals: make(map[string]progress.Goal)}
}

func (f *fakeStats) Load(_ context.Context, userID string) (progress.Stats, progress.Goal, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.stats[userID]; ok {
		return s, f.goals[userID], true, nil
	}
	return progress.NewStats(), progress.DefaultGoal(), false, nil
}

func (f *fakeStats) Save(_ context.Context, userID string, stats progress.Stats, goal progress.Goal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stats[userID] = stats
	f.goals[userID] = goal
	f.saves++
	return nil
}

func (f *fakeStats) Prune(_ context.Context, _ string, _ int) error { return nil }

func sessionCatalog(t *testing.T) catalog.Provider {
	t.Helper()
	cat, err := catalog.NewMemory([]catalog.Item{
		{ID: "vocab-mizu", Type: catalog.TypeVocabulary, Level: catalog.LevelBeginner, Japanese: "水", Reading: "mizu", Meaning: "water"},
		{ID: "vocab-neko", Type: catalog.TypeVocabulary, Level: catalog.LevelBeginner, Japanese: "猫", Reading: "neko", Meaning: "cat"},
		{ID: "char-a", Type: catalog.TypeCharacter, Script: catalog.ScriptHiragana, Level: catalog.LevelBeginner, Japanese: "あ", Reading: "a", Meaning: "a"},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

type fixture struct {
	coord   *Coordinator
	records *fakeRecords
	events  *fakeEvents
	stats   *fakeStats
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	records := newFakeRecords()
	events := &fakeEvents{}
	stats := newFakeStats()
	cat := sessionCatalog(t)

	f := &fixture{records: records, events: events, stats: stats, now: startAt}
	f.coord = NewCoordinator(Options{
		Records:   records,
		Events:    events,
		Stats:     stats,
		Scheduler: scheduler.New(records, events, cat, scheduler.DefaultConfig()),
		Catalog:   cat,
		Model:     strength.NewModel(strength.DefaultParams()),
		Agg:       progress.NewAggregator(progress.DefaultParams()),
		Mix:       scheduler.DefaultMix(),
		Now:       func() time.Time { return f.now },
	})
	return f
}

func TestSession_FullLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.coord.Start(ctx, "u1", 3)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if sess.Status() != StatusInProgress {
		t.Fatalf("status = %v, want in-progress", sess.Status())
	}
	if len(sess.Queue) != 3 {
		t.Fatalf("queue length = %d, want 3 (all new items)", len(sess.Queue))
	}
	if got := f.events.lastSession(t); got.Action != "start" || len(got.QueueSummary) != 3 {
		t.Errorf("start event = %+v, want action=start with 3 queue entries", got)
	}

	res, err := f.coord.SubmitAnswer(ctx, "u1", "vocab-mizu", "Water", 0, 4*time.Second)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Correct {
		t.Error("answer 'Water' should grade correct (case-insensitive meaning)")
	}
	if res.StrengthBefore != 0 || res.StrengthAfter != 20 {
		t.Errorf("strength %d -> %d, want 0 -> 20", res.StrengthBefore, res.StrengthAfter)
	}

	res, err = f.coord.SubmitAnswer(ctx, "u1", "vocab-neko", "dog", 0, 3*time.Second)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Correct {
		t.Error("answer 'dog' for neko should grade incorrect")
	}
	if sess.Remaining() != 1 {
		t.Errorf("remaining = %d, want 1", sess.Remaining())
	}

	// char-a answered by reading.
	if _, err := f.coord.SubmitAnswer(ctx, "u1", "char-a", "a", 1, 2*time.Second); err != nil {
		t.Fatalf("submit: %v", err)
	}

	stats, goal, err := f.coord.Complete(ctx, "u1")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if stats.TotalXP != 20 {
		t.Errorf("TotalXP = %d, want 20 (two correct answers)", stats.TotalXP)
	}
	if stats.TotalCorrect != 2 || stats.TotalIncorrect != 1 {
		t.Errorf("counts = %d/%d, want 2/1", stats.TotalCorrect, stats.TotalIncorrect)
	}
	if goal.StreakDays != 1 {
		t.Errorf("StreakDays = %d, want 1", goal.StreakDays)
	}
	if sess.Status() != StatusCompleted {
		t.Errorf("status = %v, want completed", sess.Status())
	}
	if _, ok := f.coord.Active("u1"); ok {
		t.Error("completed session still registered as active")
	}

	// All three records were persisted.
	for _, id := range []string{"vocab-mizu", "vocab-neko", "char-a"} {
		rec, err := f.records.Get(ctx, "u1", id)
		if err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
		if rec.TotalAttempts() != 1 {
			t.Errorf("record %s: attempts = %d, want 1", id, rec.TotalAttempts())
		}
	}
	if got := f.events.lastSession(t); got.Action != "complete" || got.ItemsServed != 3 || got.CorrectAnswers != 2 {
		t.Errorf("complete event = %+v, want action=complete served=3 correct=2", got)
	}
	if len(f.events.reviews) != 3 {
		t.Errorf("review events = %d, want 3", len(f.events.reviews))
	}
}

func TestStart_EmptyQueue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Give every catalog item a record with a far-future review date.
	future := startAt.AddDate(0, 0, 10)
	last := startAt.AddDate(0, 0, -1)
	for _, id := range []string{"vocab-mizu", "vocab-neko", "char-a"} {
		rec := strength.Record{
			UserID: "u1", ItemID: id, ItemType: catalog.TypeVocabulary,
			Strength: 90, LastReviewed: &last, NextReview: future, CorrectCount: 5,
		}
		if err := f.records.Put(ctx, rec); err != nil {
			t.Fatalf("seed record: %v", err)
		}
	}

	var empty *EmptyQueueError
	if _, err := f.coord.Start(ctx, "u1", 5); !errors.As(err, &empty) {
		t.Fatalf("got %v, want EmptyQueueError", err)
	}
	if _, ok := f.coord.Active("u1"); ok {
		t.Error("failed start left an active session behind")
	}
}

func TestStart_AlreadyActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.coord.Start(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	var active *AlreadyActiveError
	_, err = f.coord.Start(ctx, "u1", 2)
	if !errors.As(err, &active) {
		t.Fatalf("got %v, want AlreadyActiveError", err)
	}
	if active.SessionID != first.ID {
		t.Errorf("error names session %s, want %s", active.SessionID, first.ID)
	}

	// A different user is unaffected.
	if _, err := f.coord.Start(ctx, "u2", 2); err != nil {
		t.Errorf("second user start: %v", err)
	}
}

func TestSubmitAnswer_RequiresSession(t *testing.T) {
	f := newFixture(t)

	var state *InvalidStateError
	_, err := f.coord.SubmitAnswer(context.Background(), "u1", "vocab-mizu", "water", 0, time.Second)
	if !errors.As(err, &state) {
		t.Fatalf("got %v, want InvalidStateError", err)
	}
	if state.Status != StatusIdle {
		t.Errorf("Status = %v, want idle", state.Status)
	}
}

func TestSubmitAnswer_RejectsItemsOutsideQueue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.coord.Start(ctx, "u1", 3); err != nil {
		t.Fatalf("start: %v", err)
	}

	var invalid *strength.InvalidInputError
	if _, err := f.coord.SubmitAnswer(ctx, "u1", "no-such-item", "x", 0, time.Second); !errors.As(err, &invalid) {
		t.Fatalf("got %v, want InvalidInputError", err)
	}

	// Answering the same item twice fails the second time.
	if _, err := f.coord.SubmitAnswer(ctx, "u1", "vocab-mizu", "water", 0, time.Second); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := f.coord.SubmitAnswer(ctx, "u1", "vocab-mizu", "water", 0, time.Second); !errors.As(err, &invalid) {
		t.Fatalf("resubmit: got %v, want InvalidInputError", err)
	}
}

func TestComplete_PartialPersistExcludesFailedRecords(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.records.failPut["vocab-neko"] = true

	if _, err := f.coord.Start(ctx, "u1", 2); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.coord.SubmitAnswer(ctx, "u1", "vocab-mizu", "water", 0, 2*time.Second); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := f.coord.SubmitAnswer(ctx, "u1", "vocab-neko", "cat", 0, 2*time.Second); err != nil {
		t.Fatalf("submit: %v", err)
	}

	stats, _, err := f.coord.Complete(ctx, "u1")
	var partial *PartialPersistError
	if !errors.As(err, &partial) {
		t.Fatalf("got %v, want PartialPersistError", err)
	}
	if len(partial.FailedItemIDs) != 1 || partial.FailedItemIDs[0] != "vocab-neko" {
		t.Errorf("FailedItemIDs = %v, want [vocab-neko]", partial.FailedItemIDs)
	}

	// Only the saved record's event counts toward statistics.
	if stats.TotalXP != 10 {
		t.Errorf("TotalXP = %d, want 10 (failed record excluded)", stats.TotalXP)
	}
	if stats.TotalCorrect != 1 {
		t.Errorf("TotalCorrect = %d, want 1", stats.TotalCorrect)
	}
	if got := f.events.lastSession(t); len(got.FailedItemIDs) != 1 {
		t.Errorf("complete event FailedItemIDs = %v, want [vocab-neko]", got.FailedItemIDs)
	}
	if _, ok := f.coord.Active("u1"); ok {
		t.Error("session with partial failure should still complete and deregister")
	}
}

func TestAbandon_LeavesStatsUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.coord.Start(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.coord.SubmitAnswer(ctx, "u1", "vocab-mizu", "water", 0, time.Second); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := f.coord.Abandon(ctx, "u1"); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if sess.Status() != StatusAbandoned {
		t.Errorf("status = %v, want abandoned", sess.Status())
	}
	if f.stats.saves != 0 {
		t.Errorf("abandon saved stats %d times, want 0", f.stats.saves)
	}
	if got := f.events.lastSession(t); got.Action != "abandon" || got.ItemsServed != 1 {
		t.Errorf("abandon event = %+v, want action=abandon served=1", got)
	}

	// The pending record was never persisted.
	rec, err := f.records.Get(ctx, "u1", "vocab-mizu")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.TotalAttempts() != 0 {
		t.Errorf("abandoned session persisted a record: %+v", rec)
	}

	// The user can start again immediately.
	if _, err := f.coord.Start(ctx, "u1", 2); err != nil {
		t.Fatalf("restart after abandon: %v", err)
	}
}

func TestSubmitAnswer_NewlyMastered(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Seed a record just under the mastery threshold and due now.
	last := startAt.AddDate(0, 0, -5)
	seed := strength.Record{
		UserID: "u1", ItemID: "vocab-mizu", ItemType: catalog.TypeVocabulary,
		Strength: 70, LastReviewed: &last, NextReview: startAt, CorrectCount: 4,
	}
	if err := f.records.Put(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := f.coord.Start(ctx, "u1", 1); err != nil {
		t.Fatalf("start: %v", err)
	}
	res, err := f.coord.SubmitAnswer(ctx, "u1", "vocab-mizu", "mizu", 0, time.Second)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.NewlyMastered {
		t.Errorf("70 -> %d should set NewlyMastered", res.StrengthAfter)
	}
}

func TestComplete_RetryAfterEventFailureAppliesOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.events.failComplete = 1

	sess, err := f.coord.Start(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.coord.SubmitAnswer(ctx, "u1", "vocab-mizu", "water", 0, time.Second); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := f.coord.SubmitAnswer(ctx, "u1", "vocab-neko", "dog", 0, time.Second); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, _, err := f.coord.Complete(ctx, "u1"); err == nil {
		t.Fatal("complete should fail while the event append fails")
	}
	if sess.Status() != StatusInProgress {
		t.Fatalf("status after failed complete = %v, want in-progress", sess.Status())
	}
	if _, ok := f.coord.Active("u1"); !ok {
		t.Fatal("failed complete dropped the session")
	}
	if f.stats.saves != 0 {
		t.Fatalf("failed complete saved stats %d times, want 0", f.stats.saves)
	}

	stats, _, err := f.coord.Complete(ctx, "u1")
	if err != nil {
		t.Fatalf("retry complete: %v", err)
	}
	if stats.TotalXP != 10 {
		t.Errorf("TotalXP = %d, want 10 (one correct answer, applied once)", stats.TotalXP)
	}
	if stats.TotalCorrect != 1 || stats.TotalIncorrect != 1 {
		t.Errorf("counts = %d/%d, want 1/1", stats.TotalCorrect, stats.TotalIncorrect)
	}
	if f.stats.saves != 1 {
		t.Errorf("stats saved %d times, want 1", f.stats.saves)
	}
	if sess.Status() != StatusCompleted {
		t.Errorf("status = %v, want completed", sess.Status())
	}
}

func TestComplete_SecondCallFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.coord.Start(ctx, "u1", 1); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.coord.SubmitAnswer(ctx, "u1", "vocab-mizu", "water", 0, time.Second); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, _, err := f.coord.Complete(ctx, "u1"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	var state *InvalidStateError
	if _, _, err := f.coord.Complete(ctx, "u1"); !errors.As(err, &state) {
		t.Fatalf("second complete: got %v, want InvalidStateError", err)
	}
}

func TestCoordinator_IndependentUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	users := []string{"u1", "u2", "u3"}
	var wg sync.WaitGroup
	errs := make(chan error, len(users))
	for _, u := range users {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			if _, err := f.coord.Start(ctx, userID, 2); err != nil {
				errs <- fmt.Errorf("%s start: %w", userID, err)
				return
			}
			if _, err := f.coord.SubmitAnswer(ctx, userID, "vocab-mizu", "water", 0, time.Second); err != nil {
				errs <- fmt.Errorf("%s submit: %w", userID, err)
				return
			}
			if _, _, err := f.coord.Complete(ctx, userID); err != nil {
				errs <- fmt.Errorf("%s complete: %w", userID, err)
			}
		}(u)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	for _, u := range users {
		stats, _, _, err := f.stats.Load(ctx, u)
		if err != nil {
			t.Fatalf("load %s: %v", u, err)
		}
		if stats.TotalCorrect != 1 {
			t.Errorf("%s TotalCorrect = %d, want 1", u, stats.TotalCorrect)
		}
	}
}
