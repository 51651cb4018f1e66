package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/qrsafety/sds-pipeline/internal/entity"
	"github.com/qrsafety/sds-pipeline/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// hazard-inventory exports.
type Service struct {
	documents repository.DocumentRepository
	logger    *slog.Logger
}

func NewService(documents repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{documents: documents, logger: logger}
}

// ExportHazardInventoryXLSX returns an XLSX workbook (as bytes) listing
// every matching document for the facility, one row per chemical. Status
// narrows the export when set; empty exports everything.
func (s *Service) ExportHazardInventoryXLSX(ctx context.Context, facilityID uuid.UUID, status string) ([]byte, int, error) {
	start := time.Now()

	filter := repository.ListDocumentsFilter{}
	if status != "" {
		filter.Status = &status
	}
	docs, err := s.documents.ListDocuments(ctx, facilityID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Hazard Inventory"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Product Name",
		"Manufacturer",
		"CAS Number",
		"Signal Word",
		"Hazard Codes",
		"Pictograms",
		"HMIS PPE",
		"HMIS H/F/R",
		"NFPA H/F/R",
		"Physical State",
		"Flash Point",
		"Quality Score",
		"Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range docs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.ProductName)
		write(2, d.Manufacturer)
		write(3, d.CASNumber)
		write(4, d.SignalWord)
		write(5, joinHazardCodes(d.HCodes))
		write(6, strings.Join(d.Pictograms, ", "))
		if d.PPERequirements != nil {
			write(7, d.PPERequirements.HMISCode)
		}
		write(8, formatRatings(d.HMISCodes))
		write(9, formatRatings(d.NFPACodes))
		write(10, d.PhysicalState)
		write(11, d.FlashPoint)
		write(12, d.ExtractionQualityScore)
		write(13, d.ExtractionStatus)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32) // product
	_ = f.SetColWidth(sheet, "B", "B", 24) // manufacturer
	_ = f.SetColWidth(sheet, "C", "D", 14) // cas, signal
	_ = f.SetColWidth(sheet, "E", "F", 30) // codes, pictograms
	_ = f.SetColWidth(sheet, "G", "I", 12) // ratings
	_ = f.SetColWidth(sheet, "J", "K", 16) // physical
	_ = f.SetColWidth(sheet, "L", "M", 14) // score, status

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"facility_id", facilityID.String(),
		"rows", len(docs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), len(docs), nil
}

func joinHazardCodes(codes []entity.HazardCode) string {
	parts := make([]string, 0, len(codes))
	for _, c := range codes {
		parts = append(parts, c.Code)
	}
	return strings.Join(parts, ", ")
}

// formatRatings renders health/flammability/reactivity as "2/3/0",
// leaving a dash where the sheet gave no number.
func formatRatings(r *entity.Ratings) string {
	if r == nil {
		return ""
	}
	part := func(p *int) string {
		if p == nil {
			return "-"
		}
		return fmt.Sprintf("%d", *p)
	}
	return part(r.Health) + "/" + part(r.Flammability) + "/" + part(r.Reactivity)
}
