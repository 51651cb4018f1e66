package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdspb "github.com/qrsafety/sds-pipeline/gen/proto/sds/v1"
)

// ExportDocuments writes the facility's hazard inventory workbook to disk
// and returns its path. When output_path is empty the file lands in the
// system temp dir with a timestamped name.
func (s *SDSService) ExportDocuments(ctx context.Context, req *sdspb.ExportDocumentsRequest) (*sdspb.ExportDocumentsResponse, error) {
	facilityID, err := parseFacilityID(req.GetFacilityId())
	if err != nil {
		return nil, err
	}

	data, rowCount, err := s.exporter.ExportHazardInventoryXLSX(ctx, facilityID, "")
	if err != nil {
		s.logger.Error("export failed", "facility_id", facilityID, "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}

	outPath := strings.TrimSpace(req.GetOutputPath())
	if outPath == "" {
		name := fmt.Sprintf("hazard-inventory-%s-%s.xlsx", facilityID, time.Now().UTC().Format("20060102-150405"))
		outPath = filepath.Join(os.TempDir(), name)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		s.logger.Error("export write failed", "path", outPath, "error", err)
		return nil, status.Errorf(codes.Internal, "write export: %v", err)
	}

	s.logger.Info("export.done", "facility_id", facilityID, "path", outPath, "rows", rowCount)
	return &sdspb.ExportDocumentsResponse{
		FilePath: outPath,
		RowCount: int32(rowCount),
	}, nil
}
