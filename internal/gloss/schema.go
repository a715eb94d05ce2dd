package gloss

import "github.com/abhisek/hanzi/internal/llm"

// GlossSchema defines the JSON schema for gloss responses.
var GlossSchema = &llm.Schema{
	Name:        "phrase-glosses",
	Description: "Short English glosses for Chinese phrases",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"glosses": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{
							"type":        "string",
							"description": "The phrase exactly as given in the request",
						},
						"en": map[string]any{
							"type":        "string",
							"description": "A short English gloss, a few words at most",
						},
					},
					"required":             []any{"word", "en"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"glosses"},
		"additionalProperties": false,
	},
}
