package ghs

import (
	"strings"

	"github.com/qrsafety/sds-pipeline/internal/entity"
)

var (
	eyePatterns = labelPatterns(
		`eye(?:\s*/\s*face)?\s+protection`,
		`safety\s+glasses`,
		`goggles`,
	)
	handPatterns = labelPatterns(
		`hand\s+protection`,
		`gloves?`,
	)
	respiratoryPatterns = labelPatterns(
		`respiratory\s+protection`,
		`respirator`,
	)
	skinPatterns = labelPatterns(
		`skin\s+(?:and\s+body\s+)?protection`,
		`protective\s+clothing`,
		`body\s+protection`,
	)
)

// generalEquipmentKeywords are scanned (lowercase substring presence) to
// build the general PPE keyword list, independent of labeled captures.
var generalEquipmentKeywords = []string{
	"safety glasses",
	"splash goggles",
	"goggles",
	"face shield",
	"gloves",
	"apron",
	"boots",
	"protective clothing",
	"dust mask",
	"dust respirator",
	"vapor respirator",
	"respirator",
	"supplied air",
	"self-contained breathing apparatus",
	"scba",
	"full face",
}

// ExtractPPE parses the section-8 span into the structured PPE record,
// including the derived HMIS letter code. Missing data yields empty
// lists and code "X", never an error.
func ExtractPPE(sectionText string) entity.PPERequirements {
	return entity.PPERequirements{
		EyeProtection:         captureList(sectionText, eyePatterns),
		HandProtection:        captureList(sectionText, handPatterns),
		RespiratoryProtection: captureList(sectionText, respiratoryPatterns),
		SkinProtection:        captureList(sectionText, skinPatterns),
		GeneralEquipment:      detectGeneralEquipment(sectionText),
		HMISCode:              DerivePPECode(sectionText),
	}
}

func detectGeneralEquipment(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, kw := range generalEquipmentKeywords {
		if strings.Contains(lower, kw) {
			out = append(out, kw)
		}
	}
	return out
}
