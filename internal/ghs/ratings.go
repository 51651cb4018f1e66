package ghs

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/qrsafety/sds-pipeline/internal/entity"
)

// ratingWindow bounds how far past an "HMIS"/"NFPA" marker the category
// digits are searched for. Rating blocks sit together on real sheets.
const ratingWindow = 400

var (
	reHMISMarker = regexp.MustCompile(`(?i)\bHMIS\b`)
	reNFPAMarker = regexp.MustCompile(`(?i)\bNFPA\b`)

	reHealth       = regexp.MustCompile(`(?i)health\s*(?:hazard)?\s*[:=\-]?\s*(\d)`)
	reFlammability = regexp.MustCompile(`(?i)(?:flammability|fire\s*hazard)\s*[:=\-]?\s*(\d)`)
	reReactivity   = regexp.MustCompile(`(?i)(?:reactivity|instability|physical\s*hazard)\s*[:=\-]?\s*(\d)`)
)

// ExtractRatings scans the whole document for HMIS and NFPA rating
// blocks. Ratings live outside the numbered sections on many sheets
// (headers, section 15/16), so this is not section-scoped. Digits are
// captured as printed; range enforcement (0-4) belongs to validation.
func ExtractRatings(text string) (hmis, nfpa *entity.Ratings) {
	return ratingsNear(text, reHMISMarker), ratingsNear(text, reNFPAMarker)
}

func ratingsNear(text string, marker *regexp.Regexp) *entity.Ratings {
	loc := marker.FindStringIndex(text)
	if loc == nil {
		return nil
	}
	end := loc[1] + ratingWindow
	if end > len(text) {
		end = len(text)
	}
	window := text[loc[1]:end]

	r := &entity.Ratings{
		Health:       captureDigit(window, reHealth),
		Flammability: captureDigit(window, reFlammability),
		Reactivity:   captureDigit(window, reReactivity),
	}
	if r.Health == nil && r.Flammability == nil && r.Reactivity == nil {
		return nil
	}
	return r
}

func captureDigit(text string, re *regexp.Regexp) *int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(m[1]))
	if err != nil {
		return nil
	}
	return &n
}
