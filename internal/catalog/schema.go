package catalog

// categoryTable is the schema of a dimension -> category -> string table.
var categoryTable = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type":                 "object",
		"additionalProperties": map[string]any{"type": "string"},
	},
}

// documentSchema is the JSON schema every catalog document must satisfy
// before it is decoded into typed structs.
var documentSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "title", "dimensions", "sections", "constitution", "recommendations"},
	"properties": map[string]any{
		"id": map[string]any{
			"type":    "string",
			"pattern": "^[a-z0-9][a-z0-9-]*$",
		},
		"title":       map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"dimensions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "title", "categories"},
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"title": map[string]any{"type": "string", "minLength": 1},
					"categories": map[string]any{
						"type":        "array",
						"minItems":    2,
						"uniqueItems": true,
						"items":       map[string]any{"type": "string", "minLength": 1},
					},
				},
				"additionalProperties": false,
			},
		},
		"sections": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "title", "questions"},
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"title":       map[string]any{"type": "string", "minLength": 1},
					"description": map[string]any{"type": "string"},
					"questions": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type":     "object",
							"required": []any{"id", "prompt", "dimension", "options"},
							"properties": map[string]any{
								"id":        map[string]any{"type": "string", "minLength": 1},
								"prompt":    map[string]any{"type": "string", "minLength": 1},
								"dimension": map[string]any{"type": "string", "minLength": 1},
								"options": map[string]any{
									"type":     "array",
									"minItems": 2,
									"items": map[string]any{
										"type":     "object",
										"required": []any{"category", "text"},
										"properties": map[string]any{
											"category": map[string]any{"type": "string", "minLength": 1},
											"text":     map[string]any{"type": "string", "minLength": 1},
											"also": map[string]any{
												"type":                 "object",
												"additionalProperties": map[string]any{"type": "string"},
											},
										},
										"additionalProperties": false,
									},
								},
							},
							"additionalProperties": false,
						},
					},
				},
				"additionalProperties": false,
			},
		},
		"interpretations": categoryTable,
		"constitution": map[string]any{
			"type":     "object",
			"required": []any{"dimensions", "undetermined"},
			"properties": map[string]any{
				"dimensions": map[string]any{
					"type":     "array",
					"minItems": 2,
					"items":    map[string]any{"type": "string"},
				},
				"separator":    map[string]any{"type": "string"},
				"phrases":      categoryTable,
				"undetermined": map[string]any{"type": "string", "minLength": 1},
			},
			"additionalProperties": false,
		},
		"recommendations": map[string]any{
			"type":     "object",
			"required": []any{"primary", "secondary", "kinds"},
			"properties": map[string]any{
				"primary":   map[string]any{"type": "string"},
				"secondary": map[string]any{"type": "string"},
				"threshold": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				"kinds": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    map[string]any{"type": "string"},
				},
				"entries": map[string]any{
					"type": "object",
					"additionalProperties": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type": "object",
							"additionalProperties": map[string]any{
								"type":  "array",
								"items": map[string]any{"type": "string"},
							},
						},
					},
				},
				"fallback": map[string]any{
					"type": "object",
					"additionalProperties": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
			},
			"additionalProperties": false,
		},
	},
	"additionalProperties": false,
}
