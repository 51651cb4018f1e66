package ghs

import (
	"regexp"
	"strings"

	"github.com/qrsafety/sds-pipeline/constants"
	"github.com/qrsafety/sds-pipeline/internal/entity"
)

// Hazards holds the section-2 fields: signal word, hazard statement
// codes, precautionary statements and pictogram identifiers.
type Hazards struct {
	SignalWord              string
	HCodes                  []entity.HazardCode
	PrecautionaryStatements []string
	Pictograms              []string
}

var (
	reSignalLabeled = regexp.MustCompile(`(?i)signal\s*word\s*[:\-]?\s*(danger|warning)\b`)
	reSignalBare    = regexp.MustCompile(`(?i)\b(danger|warning)\b`)

	reHCode = regexp.MustCompile(`\bH(\d{3})\b`)
	rePCode = regexp.MustCompile(`\b(P\d{3}(?:\+P\d{3})*)\b[\s:\-]*([^\n]*)`)
)

// pictogramKeywords maps lowercase keyword presence to a pictogram
// identifier. Ordered: more specific phrases ("flame over circle") are
// checked before the substrings they contain ("flame").
var pictogramKeywords = []struct {
	keywords []string
	id       constants.Pictogram
}{
	{[]string{"flame over circle", "oxidizer", "oxidizing", "oxidiser"}, constants.PictogramOxidizer},
	{[]string{"exploding bomb", "explosive"}, constants.PictogramExplosive},
	{[]string{"flame", "flammable"}, constants.PictogramFlame},
	{[]string{"gas cylinder", "compressed gas", "gas under pressure"}, constants.PictogramGasCylinder},
	{[]string{"corrosion", "corrosive"}, constants.PictogramCorrosion},
	{[]string{"skull", "acute toxicity", "fatal"}, constants.PictogramSkull},
	{[]string{"health hazard", "carcinogen", "mutagen", "respiratory sensitizer", "aspiration"}, constants.PictogramHealthHazard},
	{[]string{"environment", "aquatic"}, constants.PictogramEnvironment},
	{[]string{"exclamation", "irritant", "irritation", "harmful"}, constants.PictogramExclamation},
}

// ExtractHazards parses the section-2 span. Every list keeps first-seen
// order; H-codes are paired with their catalog descriptions, with unknown
// codes kept (empty description) so validation can flag them.
func ExtractHazards(sectionText string) Hazards {
	var h Hazards

	if m := reSignalLabeled.FindStringSubmatch(sectionText); m != nil {
		h.SignalWord = string(constants.CanonicalSignalWord(m[1]))
	} else if m := reSignalBare.FindStringSubmatch(sectionText); m != nil {
		h.SignalWord = string(constants.CanonicalSignalWord(m[1]))
	}

	seen := make(map[string]struct{})
	for _, m := range reHCode.FindAllStringSubmatch(sectionText, -1) {
		code := "H" + m[1]
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		h.HCodes = append(h.HCodes, entity.HazardCode{
			Code:        code,
			Description: constants.HazardDescription(code),
		})
	}

	seenP := make(map[string]struct{})
	for _, m := range rePCode.FindAllStringSubmatch(sectionText, -1) {
		code := m[1]
		if _, dup := seenP[code]; dup {
			continue
		}
		seenP[code] = struct{}{}
		stmt := code
		if tail := strings.TrimSpace(m[2]); tail != "" {
			stmt = code + " " + tail
		}
		h.PrecautionaryStatements = append(h.PrecautionaryStatements, stmt)
	}

	h.Pictograms = detectPictograms(sectionText)
	return h
}

func detectPictograms(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, rule := range pictogramKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				out = append(out, string(rule.id))
				break
			}
		}
	}
	return out
}
