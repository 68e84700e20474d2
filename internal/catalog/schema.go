package catalog

// itemFileSchema defines the JSON schema for external catalog content files.
// Authored content is validated against it before items are accepted.
var itemFileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"type": map[string]any{
						"type": "string",
						"enum": []any{"vocabulary", "character", "grammar"},
					},
					"script": map[string]any{
						"type": "string",
						"enum": []any{"hiragana", "katakana", "kanji"},
					},
					"level": map[string]any{
						"type": "string",
						"enum": []any{"beginner", "intermediate", "advanced"},
					},
					"japanese": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"reading": map[string]any{
						"type": "string",
					},
					"meaning": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"part_of_speech": map[string]any{
						"type": "string",
					},
					"structure": map[string]any{
						"type": "string",
					},
					"notes": map[string]any{
						"type": "string",
					},
					"examples": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"japanese":    map[string]any{"type": "string"},
								"reading":     map[string]any{"type": "string"},
								"translation": map[string]any{"type": "string"},
							},
							"required":             []any{"japanese", "translation"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "type", "level", "japanese", "meaning"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"items"},
	"additionalProperties": false,
}
