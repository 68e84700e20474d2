package scheduler

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/sagara/kotoba/internal/catalog"
	"github.com/sagara/kotoba/internal/strength"
)

var asOf = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

// fakeSource is an in-memory RecordSource for tests.
type fakeSource struct {
	due   []strength.Record
	known map[string]bool
}

func (f *fakeSource) DueRecords(_ context.Context, _ string, _ time.Time) ([]strength.Record, error) {
	out := make([]strength.Record, len(f.due))
	copy(out, f.due)
	return out, nil
}

func (f *fakeSource) KnownItemIDs(_ context.Context, _ string) (map[string]bool, error) {
	return f.known, nil
}

// fakeCounter reports a fixed number of reviews done today.
type fakeCounter struct {
	done int
}

func (f *fakeCounter) ReviewsOn(_ context.Context, _ string, _ time.Time) (int, error) {
	return f.done, nil
}

func testCatalog(t *testing.T) catalog.Provider {
	t.Helper()
	var items []catalog.Item
	for _, id := range []string{"v1", "v2", "v3", "v4", "v5", "v6"} {
		items = append(items, catalog.Item{ID: id, Type: catalog.TypeVocabulary, Level: catalog.LevelBeginner, Japanese: id, Meaning: id})
	}
	for _, id := range []string{"c1", "c2", "c3", "c4"} {
		items = append(items, catalog.Item{ID: id, Type: catalog.TypeCharacter, Script: catalog.ScriptHiragana, Level: catalog.LevelBeginner, Japanese: id, Meaning: id})
	}
	for _, id := range []string{"g1", "g2"} {
		items = append(items, catalog.Item{ID: id, Type: catalog.TypeGrammar, Level: catalog.LevelBeginner, Japanese: id, Meaning: id})
	}
	cat, err := catalog.NewMemory(items)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

func dueRecord(id string, typ catalog.ItemType, strengthVal int, dueAt time.Time) strength.Record {
	last := dueAt.AddDate(0, 0, -3)
	return strength.Record{
		UserID:       "u1",
		ItemID:       id,
		ItemType:     typ,
		Strength:     strengthVal,
		LastReviewed: &last,
		NextReview:   dueAt,
		CorrectCount: 1,
	}
}

func knownSet(recs []strength.Record, extra ...string) map[string]bool {
	known := make(map[string]bool)
	for _, r := range recs {
		known[r.ItemID] = true
	}
	for _, id := range extra {
		known[id] = true
	}
	return known
}

func itemIDs(queue []Entry) []string {
	ids := make([]string, len(queue))
	for i, e := range queue {
		ids[i] = e.ItemID
	}
	return ids
}

func TestBuildQueue_Deterministic(t *testing.T) {
	due := []strength.Record{
		dueRecord("v2", catalog.TypeVocabulary, 40, asOf.AddDate(0, 0, -1)),
		dueRecord("v1", catalog.TypeVocabulary, 40, asOf.AddDate(0, 0, -1)),
		dueRecord("c1", catalog.TypeCharacter, 10, asOf.AddDate(0, 0, -2)),
		dueRecord("g1", catalog.TypeGrammar, 70, asOf),
	}
	src := &fakeSource{due: due, known: knownSet(due, "v3", "v4", "v5", "v6", "c2", "c3", "c4", "g2")}
	s := New(src, &fakeCounter{}, testCatalog(t), DefaultConfig())

	first, err := s.BuildQueue(context.Background(), "u1", 4, DefaultMix(), asOf)
	if err != nil {
		t.Fatalf("build queue: %v", err)
	}
	second, err := s.BuildQueue(context.Background(), "u1", 4, DefaultMix(), asOf)
	if err != nil {
		t.Fatalf("build queue: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different queues:\n%v\n%v", first, second)
	}
}

func TestBuildQueue_OrderWithinCategory(t *testing.T) {
	// v3 is oldest-due; v1 and v2 tie on due date, v2 has lower
	// strength; v4 and v5 tie completely except id.
	due := []strength.Record{
		dueRecord("v1", catalog.TypeVocabulary, 30, asOf.AddDate(0, 0, -1)),
		dueRecord("v2", catalog.TypeVocabulary, 10, asOf.AddDate(0, 0, -1)),
		dueRecord("v3", catalog.TypeVocabulary, 90, asOf.AddDate(0, 0, -7)),
		dueRecord("v5", catalog.TypeVocabulary, 50, asOf),
		dueRecord("v4", catalog.TypeVocabulary, 50, asOf),
	}
	src := &fakeSource{due: due, known: knownSet(due, "v6", "c1", "c2", "c3", "c4", "g1", "g2")}
	s := New(src, &fakeCounter{}, testCatalog(t), DefaultConfig())

	queue, err := s.BuildQueue(context.Background(), "u1", 5, Mix{Vocabulary: 100}, asOf)
	if err != nil {
		t.Fatalf("build queue: %v", err)
	}

	want := []string{"v3", "v2", "v1", "v4", "v5"}
	if got := itemIDs(queue); !reflect.DeepEqual(got, want) {
		t.Errorf("queue order = %v, want %v", got, want)
	}
}

func TestBuildQueue_CategoryBlocksInFixedOrder(t *testing.T) {
	due := []strength.Record{
		dueRecord("g1", catalog.TypeGrammar, 10, asOf.AddDate(0, 0, -9)),
		dueRecord("c1", catalog.TypeCharacter, 10, asOf.AddDate(0, 0, -9)),
		dueRecord("v1", catalog.TypeVocabulary, 10, asOf.AddDate(0, 0, -1)),
	}
	src := &fakeSource{due: due, known: knownSet(due, "v2", "v3", "v4", "v5", "v6", "c2", "c3", "c4", "g2")}
	s := New(src, &fakeCounter{}, testCatalog(t), DefaultConfig())

	queue, err := s.BuildQueue(context.Background(), "u1", 3, DefaultMix(), asOf)
	if err != nil {
		t.Fatalf("build queue: %v", err)
	}

	// Vocabulary block first, then characters, then grammar, no matter
	// how overdue the others are.
	want := []string{"v1", "c1", "g1"}
	if got := itemIDs(queue); !reflect.DeepEqual(got, want) {
		t.Errorf("queue = %v, want %v", got, want)
	}
}

func TestBuildQueue_PadsWithNewItemsWhenShort(t *testing.T) {
	due := []strength.Record{
		dueRecord("v1", catalog.TypeVocabulary, 40, asOf.AddDate(0, 0, -1)),
		dueRecord("c1", catalog.TypeCharacter, 40, asOf.AddDate(0, 0, -1)),
	}
	src := &fakeSource{due: due, known: knownSet(due)}
	s := New(src, &fakeCounter{}, testCatalog(t), DefaultConfig())

	queue, err := s.BuildQueue(context.Background(), "u1", 5, DefaultMix(), asOf)
	if err != nil {
		t.Fatalf("build queue: %v", err)
	}
	if len(queue) != 5 {
		t.Fatalf("queue length = %d, want 5", len(queue))
	}

	// Due items first, then never-reviewed items in catalog order.
	want := []string{"v1", "c1", "v2", "v3", "v4"}
	if got := itemIDs(queue); !reflect.DeepEqual(got, want) {
		t.Errorf("queue = %v, want %v", got, want)
	}
	for i, e := range queue {
		if wantNew := i >= 2; e.New != wantNew {
			t.Errorf("entry %d (%s): New = %v, want %v", i, e.ItemID, e.New, wantNew)
		}
	}
}

func TestBuildQueue_NewItemsRespectDailyCap(t *testing.T) {
	due := []strength.Record{
		dueRecord("v1", catalog.TypeVocabulary, 40, asOf.AddDate(0, 0, -1)),
	}
	src := &fakeSource{due: due, known: knownSet(due)}
	cfg := Config{MaxReviewsPerDay: 100}
	s := New(src, &fakeCounter{done: 97}, testCatalog(t), cfg)

	queue, err := s.BuildQueue(context.Background(), "u1", 10, DefaultMix(), asOf)
	if err != nil {
		t.Fatalf("build queue: %v", err)
	}

	// 97 done + 1 due leaves room for 2 new items.
	if len(queue) != 3 {
		t.Fatalf("queue length = %d, want 3", len(queue))
	}
	newCount := 0
	for _, e := range queue {
		if e.New {
			newCount++
		}
	}
	if newCount != 2 {
		t.Errorf("new items = %d, want 2", newCount)
	}
}

func TestBuildQueue_ShorterThanRequestedWithoutPadding(t *testing.T) {
	due := []strength.Record{
		dueRecord("v1", catalog.TypeVocabulary, 40, asOf.AddDate(0, 0, -1)),
	}
	// Every catalog item already has a record: nothing new to add.
	src := &fakeSource{due: due, known: knownSet(due, "v2", "v3", "v4", "v5", "v6", "c1", "c2", "c3", "c4", "g1", "g2")}
	s := New(src, &fakeCounter{}, testCatalog(t), DefaultConfig())

	queue, err := s.BuildQueue(context.Background(), "u1", 10, DefaultMix(), asOf)
	if err != nil {
		t.Fatalf("build queue: %v", err)
	}
	if len(queue) != 1 {
		t.Errorf("queue length = %d, want 1 (never pad with non-due items)", len(queue))
	}
}

func TestBuildQueue_NewItemsSkipZeroWeightCategories(t *testing.T) {
	due := []strength.Record{
		dueRecord("v1", catalog.TypeVocabulary, 40, asOf.AddDate(0, 0, -1)),
	}
	// All vocabulary known; characters and grammar untouched but weighted 0.
	src := &fakeSource{due: due, known: knownSet(due, "v2", "v3", "v4", "v5", "v6")}
	s := New(src, &fakeCounter{}, testCatalog(t), DefaultConfig())

	queue, err := s.BuildQueue(context.Background(), "u1", 5, Mix{Vocabulary: 100}, asOf)
	if err != nil {
		t.Fatalf("build queue: %v", err)
	}

	// No vocabulary left to pad with, and excluded categories must not
	// leak in as new items.
	want := []string{"v1"}
	if got := itemIDs(queue); !reflect.DeepEqual(got, want) {
		t.Errorf("queue = %v, want %v", got, want)
	}
}

func TestBuildQueue_InvalidArguments(t *testing.T) {
	src := &fakeSource{known: map[string]bool{}}
	s := New(src, &fakeCounter{}, testCatalog(t), DefaultConfig())

	var invalid *strength.InvalidInputError
	_, err := s.BuildQueue(context.Background(), "u1", 10, Mix{Vocabulary: 50}, asOf)
	if !errors.As(err, &invalid) {
		t.Errorf("bad mix: got %v, want InvalidInputError", err)
	}

	_, err = s.BuildQueue(context.Background(), "u1", 0, DefaultMix(), asOf)
	if !errors.As(err, &invalid) {
		t.Errorf("maxItems 0: got %v, want InvalidInputError", err)
	}
}
