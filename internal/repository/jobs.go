package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/qrsafety/sds-pipeline/constants"
	"github.com/qrsafety/sds-pipeline/gen/ent"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, facilityID uuid.UUID, sourceRef, format string) (*ent.ExtractJob, error)
	AttachDocument(ctx context.Context, jobID, documentID uuid.UUID) error
	FinishSuccess(ctx context.Context, jobID uuid.UUID, result JobResult) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

// JobResult carries the per-run audit payload.
type JobResult struct {
	RawText       string
	Method        string
	Confidence    float32
	NeedsReview   bool
	ExtractedJSON []byte
	ModelName     string
	ModelParams   map[string]any
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, facilityID uuid.UUID, sourceRef, format string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetFacilityID(facilityID).
		SetSourceRef(sourceRef).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "facility_id", facilityID, "source_ref", sourceRef, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "source_ref", sourceRef, "format", format)
	return job, nil
}

func (r *extractJobRepo) AttachDocument(ctx context.Context, jobID, documentID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetDocumentID(documentID).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job attach document failed", "job_id", jobID, "document_id", documentID, "err", err)
	}
	return err
}

func (r *extractJobRepo) FinishSuccess(ctx context.Context, jobID uuid.UUID, result JobResult) error {
	var params []byte
	if result.ModelParams != nil {
		if b, err := json.Marshal(result.ModelParams); err == nil {
			params = b
		}
	}
	builder := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetRawText(result.RawText).
		SetMethod(result.Method).
		SetExtractionConfidence(result.Confidence).
		SetNeedsReview(result.NeedsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusExtractOK))
	if result.ExtractedJSON != nil {
		builder = builder.SetExtractedJSON(result.ExtractedJSON)
	}
	if result.ModelName != "" {
		builder = builder.SetModelName(result.ModelName)
	}
	if params != nil {
		builder = builder.SetModelParams(params)
	}
	if _, err := builder.Save(ctx); err != nil {
		r.log.Error("extract_job finish(OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (EXTRACT_OK)", "job_id", jobID, "method", result.Method, "confidence", result.Confidence)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
