package ghs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRatings_BothSchemes(t *testing.T) {
	text := "HMIS Ratings: Health: 2 Flammability: 3 Reactivity: 0\n" +
		"NFPA 704: Health: 1 Fire Hazard: 3 Instability: 0\n"
	hmis, nfpa := ExtractRatings(text)

	require.NotNil(t, hmis)
	require.NotNil(t, hmis.Health)
	assert.Equal(t, 2, *hmis.Health)
	require.NotNil(t, hmis.Flammability)
	assert.Equal(t, 3, *hmis.Flammability)
	require.NotNil(t, hmis.Reactivity)
	assert.Equal(t, 0, *hmis.Reactivity)

	require.NotNil(t, nfpa)
	require.NotNil(t, nfpa.Health)
	assert.Equal(t, 1, *nfpa.Health)
	require.NotNil(t, nfpa.Flammability)
	assert.Equal(t, 3, *nfpa.Flammability)
	require.NotNil(t, nfpa.Reactivity)
	assert.Equal(t, 0, *nfpa.Reactivity)
}

func TestExtractRatings_MissingMarkers(t *testing.T) {
	hmis, nfpa := ExtractRatings("no rating blocks anywhere")
	assert.Nil(t, hmis)
	assert.Nil(t, nfpa)
}

func TestExtractRatings_PartialBlock(t *testing.T) {
	hmis, _ := ExtractRatings("HMIS: Health: 1")
	require.NotNil(t, hmis)
	require.NotNil(t, hmis.Health)
	assert.Equal(t, 1, *hmis.Health)
	assert.Nil(t, hmis.Flammability)
	assert.Nil(t, hmis.Reactivity)
}

func TestExtractRatings_OutOfRangeDigitCapturedAsPrinted(t *testing.T) {
	// Range enforcement belongs to validation, not extraction.
	hmis, _ := ExtractRatings("HMIS Health: 7 Flammability: 1")
	require.NotNil(t, hmis)
	require.NotNil(t, hmis.Health)
	assert.Equal(t, 7, *hmis.Health)
}
