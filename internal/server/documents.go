package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/qrsafety/sds-pipeline/constants"
	sdspb "github.com/qrsafety/sds-pipeline/gen/proto/sds/v1"
	"github.com/qrsafety/sds-pipeline/internal/repository"
	"github.com/qrsafety/sds-pipeline/internal/utils"
	"github.com/qrsafety/sds-pipeline/internal/validation"
)

func (s *SDSService) GetDocument(ctx context.Context, req *sdspb.GetDocumentRequest) (*sdspb.GetDocumentResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get document", "document_id", id, "error", err)
		return nil, status.Error(codes.NotFound, "document not found")
	}
	return &sdspb.GetDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *SDSService) ListDocuments(ctx context.Context, req *sdspb.ListDocumentsRequest) (*sdspb.ListDocumentsResponse, error) {
	facilityID, err := parseFacilityID(req.GetFacilityId())
	if err != nil {
		return nil, err
	}

	filter := repository.ListDocumentsFilter{
		Limit:  int(req.GetLimit()),
		Offset: int(req.GetOffset()),
	}
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		if !validStatus(st) {
			return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", st)
		}
		filter.Status = &st
	}

	docs, err := s.documentRepo.ListDocuments(ctx, facilityID, filter)
	if err != nil {
		s.logger.Error("failed to list documents", "facility_id", facilityID, "error", err)
		return nil, status.Errorf(codes.Internal, "list documents: %v", err)
	}

	out := make([]*sdspb.SDSDocument, 0, len(docs))
	for _, d := range docs {
		out = append(out, utils.ToPBDocument(d))
	}
	return &sdspb.ListDocumentsResponse{Documents: out}, nil
}

// ValidateDocument re-runs compliance validation over a stored document.
// The report is computed fresh on every call, never cached.
func (s *SDSService) ValidateDocument(ctx context.Context, req *sdspb.ValidateDocumentRequest) (*sdspb.ValidateDocumentResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get document for validation", "document_id", id, "error", err)
		return nil, status.Error(codes.NotFound, "document not found")
	}

	report := validation.Validate(doc)
	return &sdspb.ValidateDocumentResponse{
		Report: &sdspb.ValidationReport{
			IsValid:       report.IsValid,
			Errors:        report.Errors,
			Warnings:      report.Warnings,
			Suggestions:   report.Suggestions,
			OshaCompliant: report.OSHACompliant,
			GhsCompliant:  report.GHSCompliant,
		},
	}, nil
}

func parseDocumentID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "document_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}
	return id, nil
}

func validStatus(s string) bool {
	for _, known := range constants.ExtractionStatusStrings() {
		if s == known {
			return true
		}
	}
	return false
}
