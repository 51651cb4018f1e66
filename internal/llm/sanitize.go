package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	reCAS   = regexp.MustCompile(`^\d{2,7}-\d{2}-\d$`)
	reHCode = regexp.MustCompile(`^H\d{3}$`)
)

// SanitizeOptionalFields removes or normalizes optional fields that don't meet our stricter schema,
// so the overall document can still validate. We only touch OPTIONALS.
func SanitizeOptionalFields(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var dropped []string

	// cas_number: drop unless it matches the registry shape
	if v, ok := m["cas_number"].(string); ok {
		s := strings.TrimSpace(v)
		if !reCAS.MatchString(s) {
			delete(m, "cas_number")
			dropped = append(dropped, "cas_number")
		} else {
			m["cas_number"] = s
		}
	}

	// signal_word: normalize case; drop anything outside the GHS vocabulary
	if v, ok := m["signal_word"].(string); ok {
		s := strings.ToUpper(strings.TrimSpace(v))
		if s == "DANGER" || s == "WARNING" {
			m["signal_word"] = s
		} else {
			delete(m, "signal_word")
			dropped = append(dropped, "signal_word")
		}
	}

	// h_codes: uppercase, keep only well-formed codes, drop the array if empty after
	if v, ok := m["h_codes"].([]any); ok {
		var kept []any
		for _, x := range v {
			s, ok := x.(string)
			if !ok {
				continue
			}
			s = strings.ToUpper(strings.TrimSpace(s))
			if reHCode.MatchString(s) {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			delete(m, "h_codes")
			dropped = append(dropped, "h_codes")
		} else if len(kept) != len(v) {
			m["h_codes"] = kept
			dropped = append(dropped, "h_codes(partial)")
		} else {
			m["h_codes"] = kept
		}
	}

	// string arrays: drop empty members, drop the key if nothing survives
	for _, k := range []string{"pictograms", "precautionary_statements"} {
		v, ok := m[k].([]any)
		if !ok {
			continue
		}
		var kept []any
		for _, x := range v {
			if s, ok := x.(string); ok && strings.TrimSpace(s) != "" {
				kept = append(kept, strings.TrimSpace(s))
			}
		}
		if len(kept) == 0 {
			delete(m, k)
			dropped = append(dropped, k)
		} else {
			m[k] = kept
		}
	}

	// free-text optionals: drop null / empty
	for _, k := range []string{"manufacturer", "handling_storage", "physical_state", "flash_point"} {
		switch t := m[k].(type) {
		case nil:
			if _, present := m[k]; present {
				delete(m, k)
				dropped = append(dropped, k)
			}
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				delete(m, k)
				dropped = append(dropped, k)
			} else {
				m[k] = s
			}
		}
	}

	// first_aid: keep only known route keys with non-empty text
	if v, ok := m["first_aid"].(map[string]any); ok {
		routes := []string{"skin_contact", "eye_contact", "inhalation", "ingestion"}
		cleaned := make(map[string]any, len(routes))
		for _, r := range routes {
			if s, ok := v[r].(string); ok && strings.TrimSpace(s) != "" {
				cleaned[r] = strings.TrimSpace(s)
			}
		}
		if len(cleaned) == 0 {
			delete(m, "first_aid")
			dropped = append(dropped, "first_aid")
		} else {
			m["first_aid"] = cleaned
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, dropped, nil
}
