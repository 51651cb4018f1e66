package llm

import "context"

// FirstAidFields mirrors the per-route first aid shape we ask the model for.
type FirstAidFields struct {
	SkinContact string `json:"skin_contact,omitempty"`
	EyeContact  string `json:"eye_contact,omitempty"`
	Inhalation  string `json:"inhalation,omitempty"`
	Ingestion   string `json:"ingestion,omitempty"`
}

// SDSFields is the normalized shape we want from the LLM.
type SDSFields struct {
	ProductName             string         `json:"product_name"`
	Manufacturer            string         `json:"manufacturer,omitempty"`
	CASNumber               string         `json:"cas_number,omitempty"` // NNNNNNN-NN-N
	SignalWord              string         `json:"signal_word,omitempty"`
	HCodes                  []string       `json:"h_codes,omitempty"` // e.g. ["H225", "H319"]
	Pictograms              []string       `json:"pictograms,omitempty"`
	PrecautionaryStatements []string       `json:"precautionary_statements,omitempty"`
	FirstAid                FirstAidFields `json:"first_aid,omitempty"`
	HandlingStorage         string         `json:"handling_storage,omitempty"`
	PhysicalState           string         `json:"physical_state,omitempty"`
	FlashPoint              string         `json:"flash_point,omitempty"`
	ModelConfidence         float32        `json:"confidence,omitempty"` // optional (0..1)
}

type EnhanceRequest struct {
	DocumentText string
	FilenameHint string

	// Fields the rule-based pass already found; the model fills gaps,
	// it does not overwrite confident rule output.
	KnownFields map[string]string

	PrepConfidence float32
}

// FieldEnhancer is the interface our pipeline depends on.
type FieldEnhancer interface {
	EnhanceFields(ctx context.Context, req EnhanceRequest) (SDSFields, []byte /*rawJSON*/, error)
}
