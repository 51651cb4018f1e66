package ghs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_FullDocument(t *testing.T) {
	res := Extract(sampleSDS)

	assert.True(t, res.IsReadable)
	assert.Equal(t, "Acetone Technical Grade", res.Identification.ProductName)
	assert.Equal(t, "ACME Chemical Company", res.Identification.Manufacturer)
	assert.Equal(t, "67-64-1", res.Identification.CASNumber)
	assert.Equal(t, "DANGER", res.Hazards.SignalWord)
	require.NotEmpty(t, res.Hazards.HCodes)

	assert.Equal(t, "Wash with plenty of soap and water", res.FirstAid.SkinContact)
	assert.Equal(t, "Remove person to fresh air", res.FirstAid.Inhalation)

	assert.Equal(t, "Liquid", res.Physical.PhysicalState)
	assert.Equal(t, "-20 C", res.Physical.FlashPoint)

	assert.NotEmpty(t, res.PPE.EyeProtection)
	assert.Greater(t, res.QualityScore, 50)
}

func TestExtract_UnreadableInput(t *testing.T) {
	res := Extract("::::")
	assert.False(t, res.IsReadable)
	assert.Empty(t, res.Identification.ProductName)
	assert.Equal(t, PPECodeUnclear, res.PPE.HMISCode)
	assert.Zero(t, res.QualityScore)
}

func TestExtract_Deterministic(t *testing.T) {
	first := Extract(sampleSDS)
	second := Extract(sampleSDS)
	assert.Equal(t, first, second)
}

func TestScoreResult_Weights(t *testing.T) {
	empty := Result{PPE: ExtractPPE("")}
	assert.Zero(t, Score(&empty))

	full := Extract(sampleSDS)
	assert.LessOrEqual(t, full.QualityScore, 100)
}
