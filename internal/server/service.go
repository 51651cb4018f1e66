package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdspb "github.com/qrsafety/sds-pipeline/gen/proto/sds/v1"
	"github.com/qrsafety/sds-pipeline/internal/batch"
	"github.com/qrsafety/sds-pipeline/internal/common"
	"github.com/qrsafety/sds-pipeline/internal/export"
	"github.com/qrsafety/sds-pipeline/internal/pipeline"
	"github.com/qrsafety/sds-pipeline/internal/repository"
	"github.com/qrsafety/sds-pipeline/internal/utils"
)

// SDSService implements sds.v1.SDSService. The RPC surface is thin; all
// extraction logic lives in the pipeline and batch packages.
type SDSService struct {
	sdspb.UnimplementedSDSServiceServer
	facilityRepo repository.FacilityRepository
	documentRepo repository.DocumentRepository
	orchestrator *pipeline.Orchestrator
	coordinator  *batch.Coordinator
	exporter     *export.Service
	logger       *slog.Logger
}

func NewSDSService(
	facilityRepo repository.FacilityRepository,
	documentRepo repository.DocumentRepository,
	orchestrator *pipeline.Orchestrator,
	coordinator *batch.Coordinator,
	exporter *export.Service,
	logger *slog.Logger,
) *SDSService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SDSService{
		facilityRepo: facilityRepo,
		documentRepo: documentRepo,
		orchestrator: orchestrator,
		coordinator:  coordinator,
		exporter:     exporter,
		logger:       logger,
	}
}

func (s *SDSService) CreateFacility(ctx context.Context, req *sdspb.CreateFacilityRequest) (*sdspb.CreateFacilityResponse, error) {
	name := strings.TrimSpace(req.GetName())
	v := common.NewValidator().Field("name", name, common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("invalid create facility request", "error", err)
		return nil, common.ToStatusError(err)
	}

	row, err := s.facilityRepo.CreateFacility(ctx, &repository.Facility{
		Name:         name,
		ContactEmail: strings.TrimSpace(req.GetContactEmail()),
		Address:      strings.TrimSpace(req.GetAddress()),
	})
	if err != nil {
		s.logger.Error("failed to create facility", "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "create facility: %v", err)
	}

	return &sdspb.CreateFacilityResponse{
		Facility: utils.ToPBFacility(utils.ToFacility(row)),
	}, nil
}

func (s *SDSService) ListFacilities(ctx context.Context, _ *sdspb.ListFacilitiesRequest) (*sdspb.ListFacilitiesResponse, error) {
	rows, err := s.facilityRepo.ListFacilities(ctx)
	if err != nil {
		s.logger.Error("failed to list facilities", "error", err)
		return nil, status.Errorf(codes.Internal, "list facilities: %v", err)
	}

	out := make([]*sdspb.Facility, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToPBFacility(utils.ToFacility(row)))
	}
	return &sdspb.ListFacilitiesResponse{Facilities: out}, nil
}
