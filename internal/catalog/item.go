package catalog

import "strings"

// ItemType classifies a learning item.
type ItemType string

const (
	TypeVocabulary ItemType = "vocabulary"
	TypeCharacter  ItemType = "character"
	TypeGrammar    ItemType = "grammar"
)

// ItemTypes lists all item types in queue order.
var ItemTypes = []ItemType{TypeVocabulary, TypeCharacter, TypeGrammar}

// Script identifies the Japanese writing system of a character item.
type Script string

const (
	ScriptHiragana Script = "hiragana"
	ScriptKatakana Script = "katakana"
	ScriptKanji    Script = "kanji"
)

// Level is the authored difficulty of an item.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Example is a usage example attached to an item.
type Example struct {
	Japanese    string `json:"japanese"`
	Reading     string `json:"reading"`
	Translation string `json:"translation"`
}

// Item is an immutable content unit: a character, a vocabulary word or a
// grammar point. Items are authored externally and never mutated by the
// engine.
type Item struct {
	ID       string    `json:"id"`
	Type     ItemType  `json:"type"`
	Script   Script    `json:"script,omitempty"`
	Level    Level     `json:"level"`
	Japanese string    `json:"japanese"`
	Reading  string    `json:"reading,omitempty"`
	Meaning  string    `json:"meaning"`
	// PartOfSpeech applies to vocabulary items only.
	PartOfSpeech string `json:"part_of_speech,omitempty"`
	// Structure applies to grammar items only (e.g. "[noun] は [noun] です").
	Structure string    `json:"structure,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Examples  []Example `json:"examples,omitempty"`
}

// Accepts reports whether the learner's answer matches this item.
// Matching is case-insensitive against the meaning and the reading.
func (it Item) Accepts(answer string) bool {
	a := normalize(answer)
	if a == "" {
		return false
	}
	if a == normalize(it.Meaning) || a == normalize(it.Reading) {
		return true
	}
	// Meanings may list alternatives separated by commas or semicolons.
	for _, alt := range splitAlternatives(it.Meaning) {
		if a == normalize(alt) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func splitAlternatives(meaning string) []string {
	return strings.FieldsFunc(meaning, func(r rune) bool {
		return r == ',' || r == ';'
	})
}
