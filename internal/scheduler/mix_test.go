package scheduler

import (
	"errors"
	"testing"

	"github.com/sagara/kotoba/internal/catalog"
	"github.com/sagara/kotoba/internal/strength"
)

func TestMix_Validate(t *testing.T) {
	if err := DefaultMix().Validate(); err != nil {
		t.Fatalf("default mix: %v", err)
	}

	var invalid *strength.InvalidInputError
	if err := (Mix{Vocabulary: 50, Characters: 30, Grammar: 10}).Validate(); !errors.As(err, &invalid) {
		t.Errorf("sum 90: got %v, want InvalidInputError", err)
	}
	if err := (Mix{Vocabulary: 120, Characters: -40, Grammar: 20}).Validate(); !errors.As(err, &invalid) {
		t.Errorf("negative percentage: got %v, want InvalidInputError", err)
	}
}

func TestAllocate_ProportionalSplit(t *testing.T) {
	avail := map[catalog.ItemType]int{
		catalog.TypeVocabulary: 99,
		catalog.TypeCharacter:  99,
		catalog.TypeGrammar:    99,
	}
	got := Allocate(DefaultMix(), 10, avail)

	want := map[catalog.ItemType]int{
		catalog.TypeVocabulary: 5,
		catalog.TypeCharacter:  3,
		catalog.TypeGrammar:    2,
	}
	assertAlloc(t, got, want)
}

func TestAllocate_RedistributesEmptyCategory(t *testing.T) {
	// Grammar has nothing due: its 2 slots go to vocabulary and
	// characters in proportion to their 50:30 weights.
	avail := map[catalog.ItemType]int{
		catalog.TypeVocabulary: 99,
		catalog.TypeCharacter:  99,
		catalog.TypeGrammar:    0,
	}
	got := Allocate(DefaultMix(), 10, avail)

	want := map[catalog.ItemType]int{
		catalog.TypeVocabulary: 6,
		catalog.TypeCharacter:  4,
		catalog.TypeGrammar:    0,
	}
	assertAlloc(t, got, want)
}

func TestAllocate_CapsAtAvailability(t *testing.T) {
	avail := map[catalog.ItemType]int{
		catalog.TypeVocabulary: 4,
		catalog.TypeCharacter:  2,
		catalog.TypeGrammar:    0,
	}
	got := Allocate(DefaultMix(), 10, avail)

	// Nowhere to redistribute: the queue simply comes up short.
	want := map[catalog.ItemType]int{
		catalog.TypeVocabulary: 4,
		catalog.TypeCharacter:  2,
		catalog.TypeGrammar:    0,
	}
	assertAlloc(t, got, want)
}

func TestAllocate_PartialHeadroom(t *testing.T) {
	// Characters and grammar dry up; vocabulary absorbs what it can.
	avail := map[catalog.ItemType]int{
		catalog.TypeVocabulary: 9,
		catalog.TypeCharacter:  1,
		catalog.TypeGrammar:    1,
	}
	got := Allocate(DefaultMix(), 10, avail)

	want := map[catalog.ItemType]int{
		catalog.TypeVocabulary: 8,
		catalog.TypeCharacter:  1,
		catalog.TypeGrammar:    1,
	}
	assertAlloc(t, got, want)
}

func TestAllocate_ZeroWeightGetsNothing(t *testing.T) {
	mix := Mix{Vocabulary: 100, Characters: 0, Grammar: 0}
	avail := map[catalog.ItemType]int{
		catalog.TypeVocabulary: 3,
		catalog.TypeCharacter:  50,
		catalog.TypeGrammar:    50,
	}
	got := Allocate(mix, 10, avail)

	if got[catalog.TypeCharacter] != 0 || got[catalog.TypeGrammar] != 0 {
		t.Errorf("zero-weight categories received slots: %v", got)
	}
	if got[catalog.TypeVocabulary] != 3 {
		t.Errorf("vocabulary = %d, want 3 (all available)", got[catalog.TypeVocabulary])
	}
}

func assertAlloc(t *testing.T, got, want map[catalog.ItemType]int) {
	t.Helper()
	for _, typ := range catalog.ItemTypes {
		if got[typ] != want[typ] {
			t.Errorf("alloc[%s] = %d, want %d", typ, got[typ], want[typ])
		}
	}
}
