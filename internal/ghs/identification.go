package ghs

import "regexp"

// Identification holds the section-1 fields needed for labels.
type Identification struct {
	ProductName  string
	Manufacturer string
	CASNumber    string
}

var (
	productPatterns = labelPatterns(
		`product\s+name`,
		`product\s+identifier`,
		`trade\s+name`,
		`product`,
	)
	manufacturerPatterns = labelPatterns(
		`manufacturer(?:\s+name)?`,
		`company\s+name`,
		`supplied\s+by`,
		`supplier`,
		`company`,
	)

	reCAS = regexp.MustCompile(`\b(\d{2,7}-\d{2}-\d)\b`)
)

// ExtractIdentification pulls product name, manufacturer and CAS number
// from the section-1 span. The CAS number falls back to a document-wide
// search at the orchestrator level when section 1 does not carry one
// (many sheets list it only in section 3).
func ExtractIdentification(sectionText string) Identification {
	id := Identification{
		ProductName:  captureFirst(sectionText, productPatterns),
		Manufacturer: captureFirst(sectionText, manufacturerPatterns),
	}
	if m := reCAS.FindStringSubmatch(sectionText); m != nil {
		id.CASNumber = m[1]
	}
	return id
}

// FindCASNumber searches arbitrary text for the first CAS-format number.
func FindCASNumber(text string) string {
	if m := reCAS.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
