package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeOptionalFieldsNormalizesVocabulary(t *testing.T) {
	in := []byte(`{
		"product_name": "Acetone",
		"cas_number": "not-a-cas",
		"signal_word": "danger",
		"h_codes": ["h225", "H319", "flammable"],
		"pictograms": ["flame", "  "],
		"manufacturer": "   ",
		"first_aid": {"eye_contact": " Rinse with water ", "unknown_route": "x"}
	}`)

	out, dropped, err := SanitizeOptionalFields(in)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))

	assert.NotContains(t, m, "cas_number")
	assert.Equal(t, "DANGER", m["signal_word"])
	assert.Equal(t, []any{"H225", "H319"}, m["h_codes"])
	assert.Equal(t, []any{"flame"}, m["pictograms"])
	assert.NotContains(t, m, "manufacturer")
	assert.Equal(t, map[string]any{"eye_contact": "Rinse with water"}, m["first_aid"])

	assert.Contains(t, dropped, "cas_number")
	assert.Contains(t, dropped, "h_codes(partial)")
	assert.Contains(t, dropped, "manufacturer")
}

func TestSanitizeOptionalFieldsDropsInvalidSignalWord(t *testing.T) {
	in := []byte(`{"product_name": "X", "signal_word": "CAUTION"}`)
	out, dropped, err := SanitizeOptionalFields(in)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.NotContains(t, m, "signal_word")
	assert.Contains(t, dropped, "signal_word")
}

func TestSanitizedOutputValidatesAgainstSchema(t *testing.T) {
	schema := BuildSDSJSONSchema()

	raw := []byte(`{
		"product_name": "Acetone",
		"cas_number": "67-64-1",
		"signal_word": "danger",
		"h_codes": ["h225"]
	}`)
	require.Error(t, ValidateJSONAgainstSchema(schema, raw), "lowercase vocabulary should fail strict validation")

	cleaned, _, err := SanitizeOptionalFields(raw)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, cleaned))
}

func TestValidateJSONAgainstSchemaRequiresProductName(t *testing.T) {
	schema := BuildSDSJSONSchema()
	err := ValidateJSONAgainstSchema(schema, []byte(`{"signal_word": "DANGER"}`))
	require.Error(t, err)
}

func TestBuildSystemPromptIncludesKnownFields(t *testing.T) {
	p := BuildSystemPrompt(EnhanceRequest{
		KnownFields: map[string]string{
			"product_name": "Acetone",
			"cas_number":   "67-64-1",
		},
	})
	assert.Contains(t, p, "product_name=Acetone")
	assert.Contains(t, p, "cas_number=67-64-1")
}

func TestBuildUserPromptTruncatesLongText(t *testing.T) {
	long := make([]byte, 10000)
	for i := range long {
		long[i] = 'a'
	}
	p := BuildUserPrompt(EnhanceRequest{DocumentText: string(long)})
	assert.Contains(t, p, "…(truncated)")
	assert.Less(t, len(p), 9000)
}
