package ghs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSDS = `
SAFETY DATA SHEET

SECTION 1: Identification
Product Name: Acetone Technical Grade
Manufacturer: ACME Chemical Company
CAS Number: 67-64-1

SECTION 2: Hazards Identification
Signal Word: DANGER
H225 Highly flammable liquid and vapor
H319 Causes serious eye irritation
H336 May cause drowsiness or dizziness
P210 Keep away from heat, sparks and open flames
Pictograms: flame, exclamation mark

SECTION 3: Composition
Acetone 100%

SECTION 4: First-Aid Measures
Skin Contact: Wash with plenty of soap and water
Eye Contact: Rinse cautiously with water for several minutes
Inhalation: Remove person to fresh air
Ingestion: Rinse mouth, do NOT induce vomiting

SECTION 7: Handling and Storage
Precautions for safe handling: Keep container tightly closed
Storage: Store in a well-ventilated place

SECTION 8: Exposure Controls / Personal Protection
Eye Protection: Chemical splash goggles
Hand Protection: Nitrile gloves
Respiratory Protection: Organic vapor respirator when ventilation is inadequate
Skin Protection: Neoprene apron

SECTION 9: Physical and Chemical Properties
Physical State: Liquid
Flash Point: -20 C

SECTION 10: Stability and Reactivity
Stable under recommended conditions.
`

func TestSectionText_BoundedByNextHeading(t *testing.T) {
	got := SectionText(sampleSDS, 2)
	require.NotEmpty(t, got)
	assert.Contains(t, got, "H225")
	assert.Contains(t, got, "Signal Word")
	assert.NotContains(t, got, "Composition")
	assert.NotContains(t, got, "First-Aid")
}

func TestSectionText_AllTargetSectionsFound(t *testing.T) {
	for _, n := range []int{1, 2, 4, 7, 8, 9} {
		got := SectionText(sampleSDS, n)
		assert.NotEmpty(t, got, "section %d", n)
	}
}

func TestSectionText_NoHeadingReturnsEmpty(t *testing.T) {
	assert.Empty(t, SectionText("no recognizable structure at all", 8))
	assert.Empty(t, SectionText("", 8))
	assert.Empty(t, SectionText(sampleSDS, 14))
}

func TestSectionText_SynonymHeading(t *testing.T) {
	text := "intro text\nPersonal Protective Equipment\nWear safety glasses and gloves.\n"
	got := SectionText(text, 8)
	require.NotEmpty(t, got)
	assert.Contains(t, got, "safety glasses")
}

func TestSectionText_WindowTruncatesLongSection(t *testing.T) {
	long := "SECTION 8: Exposure Controls / Personal Protection\n" + strings.Repeat("filler text ", 500)
	got := SectionText(long, 8)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), sectionWindow)
}

func TestSectionText_PrefersFirstPatternNotFirstOccurrence(t *testing.T) {
	// A bare synonym appears before the specific numbered heading; the
	// specific pattern is tried first and wins.
	text := "refer to exposure controls summary on page 2\n" +
		"SECTION 8: Exposure Controls / Personal Protection\nHand Protection: butyl gloves\n"
	got := SectionText(text, 8)
	require.NotEmpty(t, got)
	assert.Contains(t, got, "butyl gloves")
}
