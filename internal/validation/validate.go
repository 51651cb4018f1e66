// Package validation checks persisted SDS records against the OSHA/GHS
// structural requirements and reports the result. It never mutates the
// document: pure read in, report out, safe to call repeatedly and
// concurrently.
package validation

import (
	"fmt"
	"regexp"

	"github.com/qrsafety/sds-pipeline/constants"
	"github.com/qrsafety/sds-pipeline/internal/entity"
)

// Report is the validation output shape. Field names are part of the
// invocation boundary and must not change.
type Report struct {
	IsValid       bool     `json:"isValid"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
	Suggestions   []string `json:"suggestions"`
	OSHACompliant bool     `json:"oshaCompliant"`
	GHSCompliant  bool     `json:"ghsCompliant"`
}

var (
	reCASFormat   = regexp.MustCompile(`^\d{2,7}-\d{2}-\d$`)
	reHCodeFormat = regexp.MustCompile(`^H\d{3}$`)
)

// minNameLen is the floor below which a name field counts as missing.
// Heuristic cutoff kept for behavioral compatibility; tunable.
const minNameLen = 3

// reviewThreshold is the quality score under which manual review is
// recommended.
const reviewThreshold = 50

// Validate runs every rule against the document. Rules are independent
// and non-short-circuiting: each contributes to errors or warnings
// regardless of what the others found.
func Validate(doc *entity.SDSDocument) Report {
	r := Report{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	if len(doc.ProductName) < minNameLen {
		r.Errors = append(r.Errors, "Product name is missing or too short")
	}
	if len(doc.Manufacturer) < minNameLen {
		r.Warnings = append(r.Warnings, "Manufacturer is missing or too short")
	}

	if doc.CASNumber != "" && !reCASFormat.MatchString(doc.CASNumber) {
		r.Warnings = append(r.Warnings, fmt.Sprintf("CAS number %q does not match the expected format", doc.CASNumber))
	}

	switch {
	case doc.SignalWord == "":
		r.Warnings = append(r.Warnings, "No signal word found")
		r.Suggestions = append(r.Suggestions, "Check section 2 of the source sheet for a DANGER or WARNING marker")
	case constants.CanonicalSignalWord(doc.SignalWord) == "":
		r.Errors = append(r.Errors, fmt.Sprintf("Signal word %q is not DANGER or WARNING", doc.SignalWord))
	}

	if len(doc.HCodes) == 0 {
		r.Errors = append(r.Errors, "No hazard codes (H-codes) found")
	} else {
		for _, hc := range doc.HCodes {
			if !reHCodeFormat.MatchString(hc.Code) {
				r.Warnings = append(r.Warnings, fmt.Sprintf("Hazard code %q does not match the H-code format", hc.Code))
			}
		}
	}

	if len(doc.Pictograms) == 0 {
		r.Warnings = append(r.Warnings, "No GHS pictograms found")
	}

	validateRatings(&r, "HMIS", doc.HMISCodes)
	validateRatings(&r, "NFPA", doc.NFPACodes)

	if len(doc.PrecautionaryStatements) == 0 {
		r.Warnings = append(r.Warnings, "No precautionary statements found")
	}
	if doc.FirstAid == nil || doc.FirstAid.Empty() {
		r.Warnings = append(r.Warnings, "No first aid information found")
	}

	if doc.ExtractionQualityScore < reviewThreshold {
		r.Warnings = append(r.Warnings, "Extraction quality is low; manual review recommended")
		r.Suggestions = append(r.Suggestions, "Re-run extraction or review the document manually")
	}

	r.IsValid = len(r.Errors) == 0

	hasCoreFields := len(doc.ProductName) > 0 &&
		len(doc.Manufacturer) > 0 &&
		doc.SignalWord != "" &&
		len(doc.HCodes) > 0 &&
		len(doc.Pictograms) > 0
	r.OSHACompliant = hasCoreFields && len(r.Errors) == 0

	// GHS compliance re-checks its constituents on top of the OSHA bar.
	// The re-check is redundant today and kept deliberately: it records
	// that GHS is a strict superset of the OSHA check, independent of
	// how the OSHA rule evolves.
	r.GHSCompliant = r.OSHACompliant &&
		len(doc.HCodes) > 0 &&
		len(doc.Pictograms) > 0 &&
		doc.SignalWord != ""

	return r
}

func validateRatings(r *Report, scheme string, ratings *entity.Ratings) {
	if ratings == nil {
		return
	}
	check := func(category string, v *int) {
		if v == nil {
			return
		}
		if *v < 0 || *v > 4 {
			r.Errors = append(r.Errors, fmt.Sprintf("%s %s rating %d is outside the 0-4 range", scheme, category, *v))
		}
	}
	check("health", ratings.Health)
	check("flammability", ratings.Flammability)
	check("reactivity", ratings.Reactivity)
}
