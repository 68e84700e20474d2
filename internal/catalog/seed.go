package catalog

// BuiltinItems returns the starter content bundled with the engine:
// the first hiragana and katakana rows, a handful of beginner vocabulary
// and two basic grammar points. Real deployments extend it with
// LoadFile'd content packs.
func BuiltinItems() []Item {
	return []Item{
		// Hiragana, あ row.
		{ID: "hira-a", Type: TypeCharacter, Script: ScriptHiragana, Level: LevelBeginner, Japanese: "あ", Reading: "a", Meaning: "a"},
		{ID: "hira-i", Type: TypeCharacter, Script: ScriptHiragana, Level: LevelBeginner, Japanese: "い", Reading: "i", Meaning: "i"},
		{ID: "hira-u", Type: TypeCharacter, Script: ScriptHiragana, Level: LevelBeginner, Japanese: "う", Reading: "u", Meaning: "u"},
		{ID: "hira-e", Type: TypeCharacter, Script: ScriptHiragana, Level: LevelBeginner, Japanese: "え", Reading: "e", Meaning: "e"},
		{ID: "hira-o", Type: TypeCharacter, Script: ScriptHiragana, Level: LevelBeginner, Japanese: "お", Reading: "o", Meaning: "o"},
		// Hiragana, か row.
		{ID: "hira-ka", Type: TypeCharacter, Script: ScriptHiragana, Level: LevelBeginner, Japanese: "か", Reading: "ka", Meaning: "ka"},
		{ID: "hira-ki", Type: TypeCharacter, Script: ScriptHiragana, Level: LevelBeginner, Japanese: "き", Reading: "ki", Meaning: "ki"},
		{ID: "hira-ku", Type: TypeCharacter, Script: ScriptHiragana, Level: LevelBeginner, Japanese: "く", Reading: "ku", Meaning: "ku"},
		// Katakana, ア row.
		{ID: "kata-a", Type: TypeCharacter, Script: ScriptKatakana, Level: LevelBeginner, Japanese: "ア", Reading: "a", Meaning: "a"},
		{ID: "kata-i", Type: TypeCharacter, Script: ScriptKatakana, Level: LevelBeginner, Japanese: "イ", Reading: "i", Meaning: "i"},
		{ID: "kata-u", Type: TypeCharacter, Script: ScriptKatakana, Level: LevelBeginner, Japanese: "ウ", Reading: "u", Meaning: "u"},
		// Basic kanji.
		{ID: "kanji-mizu", Type: TypeCharacter, Script: ScriptKanji, Level: LevelBeginner, Japanese: "水", Reading: "みず", Meaning: "water"},
		{ID: "kanji-hi", Type: TypeCharacter, Script: ScriptKanji, Level: LevelBeginner, Japanese: "火", Reading: "ひ", Meaning: "fire"},

		// Starter vocabulary.
		{
			ID: "vocab-konnichiwa", Type: TypeVocabulary, Level: LevelBeginner,
			Japanese: "こんにちは", Reading: "konnichiwa", Meaning: "hello; good afternoon",
			PartOfSpeech: "interjection",
			Examples: []Example{
				{Japanese: "こんにちは、田中さん。", Reading: "こんにちは、たなかさん。", Translation: "Hello, Mr. Tanaka."},
			},
		},
		{
			ID: "vocab-arigatou", Type: TypeVocabulary, Level: LevelBeginner,
			Japanese: "ありがとう", Reading: "arigatou", Meaning: "thank you",
			PartOfSpeech: "interjection",
		},
		{
			ID: "vocab-mizu", Type: TypeVocabulary, Level: LevelBeginner,
			Japanese: "水", Reading: "みず", Meaning: "water",
			PartOfSpeech: "noun",
			Examples: []Example{
				{Japanese: "水をください。", Reading: "みずをください。", Translation: "Water, please."},
			},
		},
		{
			ID: "vocab-neko", Type: TypeVocabulary, Level: LevelBeginner,
			Japanese: "猫", Reading: "ねこ", Meaning: "cat",
			PartOfSpeech: "noun",
		},
		{
			ID: "vocab-taberu", Type: TypeVocabulary, Level: LevelBeginner,
			Japanese: "食べる", Reading: "たべる", Meaning: "to eat",
			PartOfSpeech: "verb",
		},

		// Basic grammar.
		{
			ID: "gram-wa-desu", Type: TypeGrammar, Level: LevelBeginner,
			Japanese: "〜は〜です", Meaning: "X is Y",
			Structure: "[noun] は [noun] です",
			Examples: []Example{
				{Japanese: "私は学生です。", Reading: "わたしはがくせいです。", Translation: "I am a student."},
			},
		},
		{
			ID: "gram-o-particle", Type: TypeGrammar, Level: LevelBeginner,
			Japanese: "〜を〜", Meaning: "direct object marker",
			Structure: "[noun] を [verb]",
			Notes:     "を marks the direct object of a transitive verb.",
		},
	}
}
