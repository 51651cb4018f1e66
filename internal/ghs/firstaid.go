package ghs

import (
	"github.com/qrsafety/sds-pipeline/internal/entity"
)

var (
	skinContactPatterns = labelPatterns(
		`(?:in\s+case\s+of\s+)?skin\s+contact`,
		`(?:if\s+)?on\s+skin`,
		`skin`,
	)
	eyeContactPatterns = labelPatterns(
		`(?:in\s+case\s+of\s+)?eye\s+contact`,
		`(?:if\s+)?in\s+eyes`,
		`eyes?`,
	)
	inhalationPatterns = labelPatterns(
		`(?:in\s+case\s+of\s+)?inhalation`,
		`if\s+inhaled`,
	)
	ingestionPatterns = labelPatterns(
		`(?:in\s+case\s+of\s+)?ingestion`,
		`if\s+swallowed`,
	)
)

// ExtractFirstAid pulls route-keyed first-aid instructions from the
// section-4 span.
func ExtractFirstAid(sectionText string) entity.FirstAid {
	return entity.FirstAid{
		SkinContact: captureFirst(sectionText, skinContactPatterns),
		EyeContact:  captureFirst(sectionText, eyeContactPatterns),
		Inhalation:  captureFirst(sectionText, inhalationPatterns),
		Ingestion:   captureFirst(sectionText, ingestionPatterns),
	}
}
