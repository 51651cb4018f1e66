package ghs

import (
	"strings"
	"unicode"

	"github.com/qrsafety/sds-pipeline/internal/entity"
)

// Result is the full structured output of rule-based extraction over one
// document's text.
type Result struct {
	Identification Identification
	Hazards        Hazards
	FirstAid       entity.FirstAid
	PPE            entity.PPERequirements
	HMIS           *entity.Ratings
	NFPA           *entity.Ratings
	Handling       string
	Physical       PhysicalProperties

	QualityScore int
	IsReadable   bool
}

// minReadableLen is the character floor under which a document is
// treated as an unreadable scan.
const minReadableLen = 100

// Extract runs the section locator and every field extractor over the
// full document text. Unreadable or heading-less input degrades to empty
// fields and a low score; it never fails.
func Extract(text string) Result {
	res := Result{IsReadable: isReadable(text)}

	res.Identification = ExtractIdentification(SectionText(text, 1))
	if res.Identification.CASNumber == "" {
		res.Identification.CASNumber = FindCASNumber(text)
	}
	res.Hazards = ExtractHazards(SectionText(text, 2))
	res.FirstAid = ExtractFirstAid(SectionText(text, 4))
	res.Handling = ExtractHandlingStorage(SectionText(text, 7))
	res.PPE = ExtractPPE(SectionText(text, 8))
	res.Physical = ExtractPhysicalProperties(SectionText(text, 9))
	res.HMIS, res.NFPA = ExtractRatings(text)

	res.QualityScore = Score(&res)
	return res
}

// Score computes the 0-100 extraction quality score from field
// completeness. Weights favor the label-critical fields. Exported so the
// pipeline can re-score a Result after AI enhancement fills gaps.
func Score(r *Result) int {
	score := 0
	if r.Identification.ProductName != "" {
		score += 15
	}
	if r.Identification.Manufacturer != "" {
		score += 10
	}
	if r.Identification.CASNumber != "" {
		score += 5
	}
	if r.Hazards.SignalWord != "" {
		score += 10
	}
	if len(r.Hazards.HCodes) > 0 {
		score += 15
	}
	if len(r.Hazards.Pictograms) > 0 {
		score += 10
	}
	if len(r.Hazards.PrecautionaryStatements) > 0 {
		score += 5
	}
	if !r.FirstAid.Empty() {
		score += 10
	}
	if r.PPE.HMISCode != PPECodeUnclear {
		score += 10
	}
	if r.HMIS != nil {
		score += 5
	}
	if r.NFPA != nil {
		score += 5
	}
	return score
}

func isReadable(text string) bool {
	if len(strings.TrimSpace(text)) < minReadableLen {
		return false
	}
	letters := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if letters >= minReadableLen/2 {
				return true
			}
		}
	}
	return false
}
