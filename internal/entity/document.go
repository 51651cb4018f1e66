package entity

import (
	"time"

	"github.com/google/uuid"
)

// HazardCode pairs a GHS hazard statement code with its description.
type HazardCode struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// PPERequirements is the structured section-8 record: free-text
// requirement lists per protection family, the general-equipment keyword
// list, and the derived single-letter HMIS PPE code (A-K, or X when the
// requirements are unclear).
type PPERequirements struct {
	EyeProtection         []string `json:"eye_protection"`
	HandProtection        []string `json:"hand_protection"`
	RespiratoryProtection []string `json:"respiratory_protection"`
	SkinProtection        []string `json:"skin_protection"`
	GeneralEquipment      []string `json:"general_equipment"`
	HMISCode              string   `json:"hmis_code"`
}

// Ratings holds one scheme's 0-4 hazard ratings. Pointers distinguish
// "not found on the sheet" from a genuine zero.
type Ratings struct {
	Health       *int `json:"health,omitempty"`
	Flammability *int `json:"flammability,omitempty"`
	Reactivity   *int `json:"reactivity,omitempty"`
}

// FirstAid holds first-aid instructions keyed by exposure route.
type FirstAid struct {
	SkinContact string `json:"skin_contact,omitempty"`
	EyeContact  string `json:"eye_contact,omitempty"`
	Inhalation  string `json:"inhalation,omitempty"`
	Ingestion   string `json:"ingestion,omitempty"`
}

// Empty reports whether no route has any instruction text.
func (f FirstAid) Empty() bool {
	return f.SkinContact == "" && f.EyeContact == "" && f.Inhalation == "" && f.Ingestion == ""
}

// SDSDocument represents a persisted safety data sheet record for data
// transfer between layers. Field names and JSON tags are a stable
// boundary read by downstream consumers.
type SDSDocument struct {
	ID           uuid.UUID `json:"id"`
	FacilityID   uuid.UUID `json:"facility_id"`
	ProductName  string    `json:"product_name"`
	Manufacturer string    `json:"manufacturer"`
	CASNumber    string    `json:"cas_number,omitempty"`
	SourceURL    *string   `json:"source_url,omitempty"`
	BucketURL    *string   `json:"bucket_url,omitempty"`

	SignalWord              string           `json:"signal_word,omitempty"`
	HCodes                  []HazardCode     `json:"h_codes"`
	Pictograms              []string         `json:"pictograms"`
	PPERequirements         *PPERequirements `json:"ppe_requirements,omitempty"`
	HMISCodes               *Ratings         `json:"hmis_codes,omitempty"`
	NFPACodes               *Ratings         `json:"nfpa_codes,omitempty"`
	PrecautionaryStatements []string         `json:"precautionary_statements"`
	FirstAid                *FirstAid        `json:"first_aid,omitempty"`
	HandlingStorage         string           `json:"handling_storage,omitempty"`
	PhysicalState           string           `json:"physical_state,omitempty"`
	FlashPoint              string           `json:"flash_point,omitempty"`

	ExtractionQualityScore int       `json:"extraction_quality_score"`
	AIConfidence           int       `json:"ai_extraction_confidence"`
	ExtractionStatus       string    `json:"extraction_status"`
	IsReadable             bool      `json:"is_readable"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}
