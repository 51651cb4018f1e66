// Package ghs parses raw SDS text into structured hazard data: GHS
// section spans, H-codes, pictograms, signal words, PPE requirements and
// HMIS/NFPA ratings. Everything in here is pure string work; absence of
// data yields empty values, never errors.
package ghs

import (
	"regexp"
	"strings"
)

// sectionWindow is the fixed span carved out after a section heading.
// Deliberately document-length-independent; very long sections are
// truncated and downstream scoring assumes that.
const sectionWindow = 2000

// sectionHeadings holds, per GHS section number, an ordered list of
// heading patterns tried most-specific-first. The first pattern that
// matches wins, not the first occurrence in the text.
var sectionHeadings = map[int][]*regexp.Regexp{
	1: compileHeadings(
		`section\s*1\b[:.\-\s]*(?:product\s+and\s+company\s+)?identification`,
		`section\s*1\b`,
		`product\s+and\s+company\s+identification`,
		`\bidentification\s+of\s+the\s+substance`,
	),
	2: compileHeadings(
		`section\s*2\b[:.\-\s]*hazards?\s+identification`,
		`section\s*2\b`,
		`hazards?\s+identification`,
	),
	3: compileHeadings(
		`section\s*3\b[:.\-\s]*composition`,
		`section\s*3\b`,
		`composition\s*/?\s*information\s+on\s+ingredients`,
	),
	4: compileHeadings(
		`section\s*4\b[:.\-\s]*first[\s\-]aid\s+measures`,
		`section\s*4\b`,
		`first[\s\-]aid\s+measures`,
	),
	5: compileHeadings(
		`section\s*5\b[:.\-\s]*fire[\s\-]fighting\s+measures`,
		`section\s*5\b`,
		`fire[\s\-]fighting\s+measures`,
	),
	6: compileHeadings(
		`section\s*6\b[:.\-\s]*accidental\s+release\s+measures`,
		`section\s*6\b`,
		`accidental\s+release\s+measures`,
	),
	7: compileHeadings(
		`section\s*7\b[:.\-\s]*handling\s+and\s+storage`,
		`section\s*7\b`,
		`handling\s+and\s+storage`,
	),
	8: compileHeadings(
		`section\s*8\b[:.\-\s]*exposure\s+controls?\s*/?\s*personal\s+protection`,
		`section\s*8\b`,
		`exposure\s+controls?\s*/?\s*personal\s+protection`,
		`exposure\s+controls?`,
		`personal\s+protective\s+equipment`,
	),
	9: compileHeadings(
		`section\s*9\b[:.\-\s]*physical\s+and\s+chemical\s+properties`,
		`section\s*9\b`,
		`physical\s+and\s+chemical\s+properties`,
	),
	10: compileHeadings(
		`section\s*10\b[:.\-\s]*stability\s+and\s+reactivity`,
		`section\s*10\b`,
		`stability\s+and\s+reactivity`,
	),
	11: compileHeadings(
		`section\s*11\b[:.\-\s]*toxicological\s+information`,
		`section\s*11\b`,
		`toxicological\s+information`,
	),
	12: compileHeadings(
		`section\s*12\b[:.\-\s]*ecological\s+information`,
		`section\s*12\b`,
		`ecological\s+information`,
	),
	13: compileHeadings(
		`section\s*13\b[:.\-\s]*disposal\s+considerations`,
		`section\s*13\b`,
		`disposal\s+considerations`,
	),
	14: compileHeadings(
		`section\s*14\b[:.\-\s]*transport\s+information`,
		`section\s*14\b`,
		`transport\s+information`,
	),
	15: compileHeadings(
		`section\s*15\b[:.\-\s]*regulatory\s+information`,
		`section\s*15\b`,
		`regulatory\s+information`,
	),
	16: compileHeadings(
		`section\s*16\b[:.\-\s]*other\s+information`,
		`section\s*16\b`,
		`other\s+information`,
	),
}

func compileHeadings(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}

// SectionText carves out the span of text belonging to one numbered GHS
// section (1-16). It takes a fixed window after the first heading pattern
// that matches, then truncates the window at the next section's heading
// when one appears inside it. Returns "" when no heading matches;
// extractors treat that as "no data", not an error.
func SectionText(text string, section int) string {
	patterns, ok := sectionHeadings[section]
	if !ok || text == "" {
		return ""
	}

	start := -1
	for _, re := range patterns {
		if loc := re.FindStringIndex(text); loc != nil {
			start = loc[0]
			break
		}
	}
	if start < 0 {
		return ""
	}

	end := start + sectionWindow
	if end > len(text) {
		end = len(text)
	}
	window := text[start:end]

	if next, ok := sectionHeadings[section+1]; ok {
		// Skip the first character so a degenerate pattern cannot match
		// the current heading itself.
		for _, re := range next {
			if loc := re.FindStringIndex(window[1:]); loc != nil {
				window = window[:loc[0]+1]
				break
			}
		}
	}

	return strings.TrimSpace(window)
}
