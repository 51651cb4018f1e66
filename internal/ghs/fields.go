package ghs

import (
	"regexp"
	"strings"
)

// minCaptureLen filters label-only false positives ("N/A" artifacts and
// bare punctuation). Heuristic cutoff, tunable; carries no meaning beyond
// behavioral compatibility.
const minCaptureLen = 3

// labelPatterns compiles case-insensitive label-capture regexes. Each
// pattern captures the text following a recognized label up to the next
// line break or period.
func labelPatterns(labels ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(labels))
	for _, l := range labels {
		out = append(out, regexp.MustCompile(`(?i)`+l+`\s*[:\-]\s*([^\n.]+)`))
	}
	return out
}

// captureList applies patterns in order and collects every accepted
// capture, deduplicated with first-occurrence order and casing preserved.
func captureList(text string, patterns []*regexp.Regexp) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			v := cleanCapture(m[1])
			if len(v) <= minCaptureLen {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// captureFirst returns the first accepted capture, or "".
func captureFirst(text string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if v := cleanCapture(m[1]); len(v) > minCaptureLen {
				return v
			}
		}
	}
	return ""
}

func cleanCapture(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, ";,")
	return strings.TrimSpace(s)
}
