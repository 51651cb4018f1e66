package llm

// BuildSDSJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to OpenAI as a structured output constraint and also use it locally to validate.
func BuildSDSJSONSchema() map[string]any {
	props := map[string]any{
		"product_name": map[string]any{"type": "string", "minLength": 1},
		"manufacturer": map[string]any{"type": "string"},
		"cas_number":   map[string]any{"type": "string", "pattern": `^\d{2,7}-\d{2}-\d$`},
		"signal_word":  map[string]any{"type": "string", "enum": []string{"DANGER", "WARNING"}},
		"h_codes": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string", "pattern": `^H\d{3}$`},
		},
		"pictograms": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string", "minLength": 1},
		},
		"precautionary_statements": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string", "minLength": 1},
		},
		"first_aid": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"skin_contact": map[string]any{"type": "string"},
				"eye_contact":  map[string]any{"type": "string"},
				"inhalation":   map[string]any{"type": "string"},
				"ingestion":    map[string]any{"type": "string"},
			},
		},
		"handling_storage": map[string]any{"type": "string"},
		"physical_state":   map[string]any{"type": "string"},
		"flash_point":      map[string]any{"type": "string"},
		"confidence":       map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}
	required := []string{"product_name"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}
