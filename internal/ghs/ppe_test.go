package ghs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPPE_Families(t *testing.T) {
	text := "Eye Protection: Chemical splash goggles\n" +
		"Hand Protection: Nitrile gloves\n" +
		"Respiratory Protection: NIOSH approved organic vapor respirator\n" +
		"Skin Protection: Impervious apron\n"
	got := ExtractPPE(text)

	assert.Equal(t, []string{"Chemical splash goggles"}, got.EyeProtection)
	assert.Equal(t, []string{"Nitrile gloves"}, got.HandProtection)
	assert.Equal(t, []string{"NIOSH approved organic vapor respirator"}, got.RespiratoryProtection)
	assert.Equal(t, []string{"Impervious apron"}, got.SkinProtection)
	assert.Contains(t, got.GeneralEquipment, "gloves")
	assert.Contains(t, got.GeneralEquipment, "apron")
}

func TestExtractPPE_DedupPreservesFirstSeenCasing(t *testing.T) {
	text := "Gloves: Nitrile\nsome other line\nGloves: Nitrile\n"
	got := ExtractPPE(text)
	assert.Equal(t, []string{"Nitrile"}, got.HandProtection)
}

func TestExtractPPE_ShortCapturesRejected(t *testing.T) {
	// Captures at or below the length floor are treated as label noise.
	text := "Hand Protection: N/A\nEye Protection: Tight fitting goggles\n"
	got := ExtractPPE(text)
	assert.Empty(t, got.HandProtection)
	assert.Equal(t, []string{"Tight fitting goggles"}, got.EyeProtection)
}

func TestExtractPPE_EmptySection(t *testing.T) {
	got := ExtractPPE("")
	require.NotNil(t, got)
	assert.Empty(t, got.EyeProtection)
	assert.Empty(t, got.HandProtection)
	assert.Empty(t, got.RespiratoryProtection)
	assert.Empty(t, got.SkinProtection)
	assert.Equal(t, PPECodeUnclear, got.HMISCode)
}
