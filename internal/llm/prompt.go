package llm

import (
	"sort"
	"strings"
)

// BuildSystemPrompt composes the system message with the GHS vocabulary rules
// and the already-known fields the model should not contradict.
func BuildSystemPrompt(req EnhanceRequest) string {
	parts := []string{
		"You are a safety data sheet (SDS) parser. Return ONLY JSON that matches the provided JSON Schema.",
		"Hazard codes use the GHS H-code format (H followed by exactly three digits, e.g. H225).",
		"The signal word is exactly DANGER or WARNING; omit it if the sheet shows neither.",
		"CAS numbers have the form NNNNNNN-NN-N (2-7 digits, 2 digits, 1 check digit).",
		"Pictogram names are lowercase snake_case GHS names (e.g. flame, skull_crossbones, health_hazard).",
		"Transcribe first aid measures per exposure route; do not merge routes.",
		"Never output null. If a field is not present on the sheet, omit it.",
		"Never invent hazard information that is not on the sheet.",
	}

	if len(req.KnownFields) > 0 {
		keys := make([]string, 0, len(req.KnownFields))
		for k := range req.KnownFields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var kb strings.Builder
		kb.WriteString("Fields already confirmed by a rule-based pass (keep these values unless the sheet clearly contradicts them): ")
		for i, k := range keys {
			if i > 0 {
				kb.WriteString("; ")
			}
			kb.WriteString(k)
			kb.WriteString("=")
			kb.WriteString(req.KnownFields[k])
		}
		parts = append(parts, kb.String())
	}

	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the document text with a filename hint.
func BuildUserPrompt(req EnhanceRequest) string {
	var b strings.Builder
	if f := strings.TrimSpace(req.FilenameHint); f != "" {
		b.WriteString("Filename: ")
		b.WriteString(f)
		b.WriteString("\n")
	}

	txt := strings.TrimSpace(req.DocumentText)
	b.WriteString("\nDocument text (first ~8k chars):\n")
	if len(txt) > 8000 {
		b.WriteString(txt[:8000])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(txt)
	}
	return b.String()
}
