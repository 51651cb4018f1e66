package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob represents one extraction run for data transfer between
// layers. A document accumulates a job row per run, preserving the
// re-evaluation history.
type ExtractJob struct {
	ID           uuid.UUID       `json:"id"`
	DocumentID   uuid.UUID       `json:"document_id"`
	FacilityID   uuid.UUID       `json:"facility_id"`
	SourceRef    string          `json:"source_ref"`
	Format       string          `json:"format"`
	StartedAt    time.Time       `json:"started_at"`
	FinishedAt   *time.Time      `json:"finished_at,omitempty"`
	Status       *string         `json:"status,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	Confidence   *float32        `json:"confidence,omitempty"`
	NeedsReview  bool            `json:"needs_review"`
	RawText      *string         `json:"raw_text,omitempty"`
	Method       *string         `json:"method,omitempty"`
	ModelParams  json.RawMessage `json:"model_params,omitempty"`
}
