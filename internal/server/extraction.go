package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdspb "github.com/qrsafety/sds-pipeline/gen/proto/sds/v1"
	"github.com/qrsafety/sds-pipeline/internal/pipeline"
	"github.com/qrsafety/sds-pipeline/internal/utils"
)

func (s *SDSService) TriggerExtraction(ctx context.Context, req *sdspb.TriggerExtractionRequest) (*sdspb.TriggerExtractionResponse, error) {
	facilityID, err := parseFacilityID(req.GetFacilityId())
	if err != nil {
		s.logger.Error("invalid facility_id for extraction", "facility_id", req.GetFacilityId(), "error", err)
		return nil, err
	}

	args := pipeline.ExtractArgs{
		FacilityID:     facilityID,
		SourceURL:      strings.TrimSpace(req.GetSourceUrl()),
		BucketURL:      strings.TrimSpace(req.GetBucketUrl()),
		LocalPath:      strings.TrimSpace(req.GetLocalPath()),
		ForceReprocess: req.GetForceReprocess(),
	}
	if args.SourceURL == "" && args.BucketURL == "" && args.LocalPath == "" {
		s.logger.Error("extraction request missing source", "facility_id", facilityID)
		return nil, status.Error(codes.InvalidArgument, "one of source_url, bucket_url, local_path is required")
	}

	if exists, _ := s.facilityRepo.Exists(ctx, facilityID); !exists {
		s.logger.Error("facility not found for extraction", "facility_id", facilityID)
		return nil, status.Error(codes.InvalidArgument, "facility not found")
	}

	s.logger.Info("starting extraction",
		"facility_id", facilityID,
		"source_url", args.SourceURL,
		"local_path", args.LocalPath,
		"force", args.ForceReprocess,
	)
	outcome, err := s.orchestrator.ProcessDocument(ctx, args)
	if err != nil {
		s.logger.Error("extraction failed", "facility_id", facilityID, "error", err)
		return nil, status.Errorf(codes.Internal, "extraction: %v", err)
	}

	resp := &sdspb.TriggerExtractionResponse{
		Document: utils.ToPBDocument(outcome.Document),
		Skipped:  outcome.Skipped,
	}
	if outcome.JobID != uuid.Nil {
		resp.JobId = outcome.JobID.String()
	}
	return resp, nil
}

func (s *SDSService) ProcessBatch(ctx context.Context, req *sdspb.ProcessBatchRequest) (*sdspb.ProcessBatchResponse, error) {
	facilityID, err := parseFacilityID(req.GetFacilityId())
	if err != nil {
		s.logger.Error("invalid facility_id for batch", "facility_id", req.GetFacilityId(), "error", err)
		return nil, err
	}

	documentIDs := make([]uuid.UUID, 0, len(req.GetDocumentIds()))
	for _, raw := range req.GetDocumentIds() {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "document_id %q must be a UUID", raw)
		}
		documentIDs = append(documentIDs, id)
	}

	if exists, _ := s.facilityRepo.Exists(ctx, facilityID); !exists {
		s.logger.Error("facility not found for batch", "facility_id", facilityID)
		return nil, status.Error(codes.InvalidArgument, "facility not found")
	}

	summary, err := s.coordinator.ProcessBatch(ctx, facilityID, documentIDs, req.GetForceReprocess())
	if err != nil {
		s.logger.Error("batch failed", "facility_id", facilityID, "error", err)
		return nil, status.Errorf(codes.Internal, "batch: %v", err)
	}

	resp := &sdspb.ProcessBatchResponse{
		Total:     int32(summary.Total),
		Succeeded: int32(summary.Succeeded),
		Failed:    int32(summary.Failed),
		Skipped:   int32(summary.Skipped),
	}
	for _, e := range summary.Errors {
		resp.Errors = append(resp.Errors, &sdspb.BatchError{
			DocumentId: e.DocumentID.String(),
			Message:    e.Message,
		})
	}
	return resp, nil
}

func parseFacilityID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "facility_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "facility_id must be a UUID")
	}
	return id, nil
}
