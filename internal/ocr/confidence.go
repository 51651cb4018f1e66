package ocr

import (
	"regexp"
	"strings"
)

var (
	reSectionHeading = regexp.MustCompile(`(?m)^\s*section\s*\d{1,2}\b`)
	reHazardCode     = regexp.MustCompile(`\bh\d{3}\b`)
	reCASNumber      = regexp.MustCompile(`\b\d{2,7}-\d{2}-\d\b`)
	reSignal         = regexp.MustCompile(`\bsignal\s*word\b|\bdanger\b|\bwarning\b`)
)

func hasSectionHeadings(s string) bool { return len(reSectionHeading.FindAllString(s, 3)) >= 2 }
func hasHazardCodes(s string) bool     { return reHazardCode.MatchString(s) }
func hasCASNumber(s string) bool       { return reCASNumber.MatchString(s) }
func hasSignalWord(s string) bool      { return reSignal.MatchString(s) }

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// very simple: boost if we see common safety sheet artifacts
	// (numbered sections, H-codes, CAS numbers, signal words).
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasSectionHeadings(txtL) {
		score += 0.2
	}
	if hasHazardCodes(txtL) {
		score += 0.15
	}
	if hasCASNumber(txtL) {
		score += 0.1
	}
	if hasSignalWord(txtL) {
		score += 0.15
	}
	if len(txt) > 500 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
