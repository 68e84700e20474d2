package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccepts(t *testing.T) {
	mizu := Item{ID: "vocab-mizu", Type: TypeVocabulary, Japanese: "水", Reading: "mizu", Meaning: "water"}
	taberu := Item{ID: "vocab-taberu", Type: TypeVocabulary, Japanese: "食べる", Reading: "taberu", Meaning: "to eat, eat"}

	tests := []struct {
		item   Item
		answer string
		want   bool
	}{
		{mizu, "water", true},
		{mizu, "Water", true},
		{mizu, "  water  ", true},
		{mizu, "mizu", true},
		{mizu, "MIZU", true},
		{mizu, "fire", false},
		{mizu, "", false},
		{mizu, "   ", false},
		{taberu, "to eat", true},
		{taberu, "eat", true},
		{taberu, "eating", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.item.Accepts(tt.answer), "%s.Accepts(%q)", tt.item.ID, tt.answer)
	}
}

func TestNewMemory(t *testing.T) {
	items := []Item{
		{ID: "b", Type: TypeVocabulary, Level: LevelBeginner, Japanese: "b", Meaning: "b"},
		{ID: "a", Type: TypeCharacter, Script: ScriptHiragana, Level: LevelBeginner, Japanese: "a", Meaning: "a"},
		{ID: "c", Type: TypeVocabulary, Level: LevelBeginner, Japanese: "c", Meaning: "c"},
	}
	m, err := NewMemory(items)
	require.NoError(t, err)

	_, ok := m.Item("a")
	assert.True(t, ok)
	_, ok = m.Item("missing")
	assert.False(t, ok)

	all := m.All()
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID, "All() is sorted by id")
	assert.Equal(t, "c", all[2].ID)

	vocab := m.ByType(TypeVocabulary)
	require.Len(t, vocab, 2)
	assert.Equal(t, "b", vocab[0].ID)
	assert.Equal(t, "c", vocab[1].ID)
}

func TestNewMemory_RejectsBadItems(t *testing.T) {
	_, err := NewMemory([]Item{
		{ID: "dup", Type: TypeVocabulary, Japanese: "x", Meaning: "x"},
		{ID: "dup", Type: TypeVocabulary, Japanese: "y", Meaning: "y"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	_, err = NewMemory([]Item{{Japanese: "x", Meaning: "x"}})
	require.Error(t, err, "empty id must be rejected")
}

func TestParse_ValidFile(t *testing.T) {
	raw := []byte(`{
		"items": [
			{
				"id": "char-a",
				"type": "character",
				"script": "hiragana",
				"level": "beginner",
				"japanese": "あ",
				"reading": "a",
				"meaning": "a"
			},
			{
				"id": "vocab-neko",
				"type": "vocabulary",
				"level": "beginner",
				"japanese": "猫",
				"reading": "neko",
				"meaning": "cat",
				"part_of_speech": "noun",
				"examples": [
					{"japanese": "猫がいます。", "reading": "neko ga imasu", "translation": "There is a cat."}
				]
			}
		]
	}`)

	items, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, ScriptHiragana, items[0].Script)
	require.Len(t, items[1].Examples, 1)
	assert.Equal(t, "There is a cat.", items[1].Examples[0].Translation)
}

func TestParse_RejectsInvalidContent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"items": [`},
		{"missing meaning", `{"items": [{"id": "x", "type": "vocabulary", "level": "beginner", "japanese": "x"}]}`},
		{"bad type enum", `{"items": [{"id": "x", "type": "verb", "level": "beginner", "japanese": "x", "meaning": "x"}]}`},
		{"bad script enum", `{"items": [{"id": "x", "type": "character", "script": "romaji", "level": "beginner", "japanese": "x", "meaning": "x"}]}`},
		{"unknown field", `{"items": [{"id": "x", "type": "vocabulary", "level": "beginner", "japanese": "x", "meaning": "x", "extra": 1}]}`},
		{"no items key", `{"content": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	raw := `{"items": [{"id": "vocab-inu", "type": "vocabulary", "level": "beginner", "japanese": "犬", "reading": "inu", "meaning": "dog"}]}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	items, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "vocab-inu", items[0].ID)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestBuiltinItems_FormValidCatalog(t *testing.T) {
	items := BuiltinItems()
	require.NotEmpty(t, items)

	m, err := NewMemory(items)
	require.NoError(t, err, "builtin items must form a valid catalog")

	// Every category has content so the default queue mix can be served.
	for _, typ := range ItemTypes {
		assert.NotEmpty(t, m.ByType(typ), "no builtin items of type %s", typ)
	}
	for _, it := range items {
		if it.Type == TypeCharacter {
			assert.NotEmpty(t, it.Script, "character item %s has no script", it.ID)
		}
		assert.NotEmpty(t, it.Meaning, "item %s has no meaning", it.ID)
		assert.NotEmpty(t, it.Japanese, "item %s has no japanese text", it.ID)
	}
}
