package ghs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHazards_FullSection(t *testing.T) {
	text := SectionText(sampleSDS, 2)
	got := ExtractHazards(text)

	assert.Equal(t, "DANGER", got.SignalWord)

	require.Len(t, got.HCodes, 3)
	assert.Equal(t, "H225", got.HCodes[0].Code)
	assert.Equal(t, "Highly flammable liquid and vapor", got.HCodes[0].Description)
	assert.Equal(t, "H319", got.HCodes[1].Code)
	assert.Equal(t, "H336", got.HCodes[2].Code)

	require.NotEmpty(t, got.PrecautionaryStatements)
	assert.Contains(t, got.PrecautionaryStatements[0], "P210")

	assert.Contains(t, got.Pictograms, "flame")
	assert.Contains(t, got.Pictograms, "exclamation_mark")
}

func TestExtractHazards_SignalWordCanonicalized(t *testing.T) {
	got := ExtractHazards("signal word: warning\nH302 Harmful if swallowed")
	assert.Equal(t, "WARNING", got.SignalWord)
}

func TestExtractHazards_UnknownHCodeKept(t *testing.T) {
	got := ExtractHazards("H999 made-up statement")
	require.Len(t, got.HCodes, 1)
	assert.Equal(t, "H999", got.HCodes[0].Code)
	assert.Empty(t, got.HCodes[0].Description)
}

func TestExtractHazards_DuplicateCodesCollapsed(t *testing.T) {
	got := ExtractHazards("H225 listed once\nH225 listed again\nH319 too")
	require.Len(t, got.HCodes, 2)
	assert.Equal(t, "H225", got.HCodes[0].Code)
	assert.Equal(t, "H319", got.HCodes[1].Code)
}

func TestExtractHazards_Empty(t *testing.T) {
	got := ExtractHazards("")
	assert.Empty(t, got.SignalWord)
	assert.Empty(t, got.HCodes)
	assert.Empty(t, got.Pictograms)
}

func TestDetectPictograms_SpecificBeforeSubstring(t *testing.T) {
	// "flame over circle" must map to the oxidizer pictogram even though
	// it contains the substring "flame".
	got := detectPictograms("GHS03 flame over circle")
	assert.Equal(t, []string{"flame_over_circle", "flame"}, got)
}
