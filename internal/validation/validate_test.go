package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrsafety/sds-pipeline/internal/entity"
)

func compliantDoc() *entity.SDSDocument {
	return &entity.SDSDocument{
		ProductName:  "Acetone",
		Manufacturer: "ACME Chemical",
		SignalWord:   "WARNING",
		HCodes: []entity.HazardCode{
			{Code: "H225", Description: "Highly flammable liquid and vapor"},
		},
		Pictograms:              []string{"flame"},
		PrecautionaryStatements: []string{"P210 Keep away from heat"},
		FirstAid:                &entity.FirstAid{Inhalation: "Move to fresh air"},
		ExtractionQualityScore:  85,
	}
}

func TestValidate_OSHACompliantScenario(t *testing.T) {
	r := Validate(compliantDoc())

	assert.Empty(t, r.Errors)
	assert.True(t, r.IsValid)
	assert.True(t, r.OSHACompliant)
	assert.True(t, r.GHSCompliant)
}

func TestValidate_NoHCodesIsError(t *testing.T) {
	doc := compliantDoc()
	doc.HCodes = nil
	r := Validate(doc)

	assert.Contains(t, r.Errors, "No hazard codes (H-codes) found")
	assert.False(t, r.IsValid)
	assert.False(t, r.OSHACompliant)
	assert.False(t, r.GHSCompliant)
}

func TestValidate_ProductNameError(t *testing.T) {
	doc := compliantDoc()
	doc.ProductName = "Ab"
	r := Validate(doc)

	assert.False(t, r.IsValid)
	assert.False(t, r.OSHACompliant)
}

func TestValidate_ManufacturerWarningOnly(t *testing.T) {
	doc := compliantDoc()
	doc.Manufacturer = ""
	r := Validate(doc)

	assert.True(t, r.IsValid, "missing manufacturer must not invalidate")
	assert.NotEmpty(t, r.Warnings)
	assert.False(t, r.OSHACompliant, "manufacturer is still required for OSHA compliance")
}

func TestValidate_CASFormat(t *testing.T) {
	cases := []struct {
		cas      string
		wantWarn bool
	}{
		{"67-64-1", false},
		{"7732-18-5", false},
		{"1234567-89-0", false},
		{"", false},
		{"67-64", true},
		{"abc-12-3", true},
		{"1-23-4", true},
		{"67-64-12", true},
	}
	for _, tc := range cases {
		doc := compliantDoc()
		doc.CASNumber = tc.cas
		r := Validate(doc)

		found := false
		for _, w := range r.Warnings {
			if len(w) >= 3 && w[:3] == "CAS" {
				found = true
			}
		}
		assert.Equal(t, tc.wantWarn, found, "cas=%q", tc.cas)
	}
}

func TestValidate_SignalWord(t *testing.T) {
	doc := compliantDoc()
	doc.SignalWord = ""
	r := Validate(doc)
	assert.True(t, r.IsValid, "missing signal word is a warning")
	assert.False(t, r.OSHACompliant)

	doc = compliantDoc()
	doc.SignalWord = "CAUTION"
	r = Validate(doc)
	assert.False(t, r.IsValid, "invalid signal word is an error")

	doc = compliantDoc()
	doc.SignalWord = "danger"
	r = Validate(doc)
	assert.True(t, r.IsValid, "case-insensitive signal word check")
}

func TestValidate_RatingRange(t *testing.T) {
	intp := func(v int) *int { return &v }

	cases := []struct {
		name    string
		ratings *entity.Ratings
		wantErr int
	}{
		{"all in range", &entity.Ratings{Health: intp(0), Flammability: intp(4), Reactivity: intp(2)}, 0},
		{"one out of range", &entity.Ratings{Health: intp(7)}, 1},
		{"negative", &entity.Ratings{Reactivity: intp(-1)}, 1},
		{"two out of range", &entity.Ratings{Health: intp(5), Flammability: intp(9)}, 2},
		{"absent", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := compliantDoc()
			doc.HMISCodes = tc.ratings
			r := Validate(doc)
			assert.Len(t, r.Errors, tc.wantErr)
		})
	}
}

func TestValidate_MalformedHCodeIsWarningNotError(t *testing.T) {
	doc := compliantDoc()
	doc.HCodes = append(doc.HCodes, entity.HazardCode{Code: "H22"})
	r := Validate(doc)

	assert.True(t, r.IsValid)
	assert.NotEmpty(t, r.Warnings)
}

func TestValidate_LowQualityWarns(t *testing.T) {
	doc := compliantDoc()
	doc.ExtractionQualityScore = 30
	r := Validate(doc)

	require.True(t, r.IsValid)
	assert.Contains(t, r.Warnings, "Extraction quality is low; manual review recommended")
	assert.NotEmpty(t, r.Suggestions)
}

func TestValidate_AlwaysReturnsArrays(t *testing.T) {
	r := Validate(compliantDoc())
	require.NotNil(t, r.Errors)
	require.NotNil(t, r.Warnings)
	require.NotNil(t, r.Suggestions)
}
