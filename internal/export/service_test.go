package export

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/qrsafety/sds-pipeline/internal/entity"
	"github.com/qrsafety/sds-pipeline/internal/repository"
)

type fakeDocs struct {
	docs       []*entity.SDSDocument
	lastFilter repository.ListDocumentsFilter
}

func (f *fakeDocs) GetByID(_ context.Context, _ uuid.UUID) (*entity.SDSDocument, error) {
	return nil, errors.New("not found")
}

func (f *fakeDocs) GetByFacilityAndHash(_ context.Context, _ uuid.UUID, _ []byte) (*entity.SDSDocument, error) {
	return nil, errors.New("not found")
}

func (f *fakeDocs) ListDocuments(_ context.Context, _ uuid.UUID, filter repository.ListDocumentsFilter) ([]*entity.SDSDocument, error) {
	f.lastFilter = filter
	return f.docs, nil
}

func (f *fakeDocs) ListBelowQuality(_ context.Context, _ uuid.UUID, _ int) ([]*entity.SDSDocument, int, error) {
	return nil, 0, nil
}

func (f *fakeDocs) UpsertFromExtraction(_ context.Context, req *repository.SaveDocumentRequest) (*entity.SDSDocument, error) {
	return req.Document, nil
}

func intPtr(n int) *int { return &n }

func TestExportHazardInventoryXLSX(t *testing.T) {
	docs := &fakeDocs{docs: []*entity.SDSDocument{
		{
			ID:           uuid.New(),
			ProductName:  "Acetone",
			Manufacturer: "QR Labs",
			CASNumber:    "67-64-1",
			SignalWord:   "DANGER",
			HCodes: []entity.HazardCode{
				{Code: "H225"},
				{Code: "H319"},
			},
			Pictograms:             []string{"GHS02", "GHS07"},
			PPERequirements:        &entity.PPERequirements{HMISCode: "C"},
			HMISCodes:              &entity.Ratings{Health: intPtr(2), Flammability: intPtr(3), Reactivity: intPtr(0)},
			PhysicalState:          "Liquid",
			FlashPoint:             "-20 C",
			ExtractionQualityScore: 95,
			ExtractionStatus:       "completed",
		},
	}}
	svc := NewService(docs, nil)

	out, rowCount, err := svc.ExportHazardInventoryXLSX(context.Background(), uuid.New(), "completed")
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, 1, rowCount)
	require.NotNil(t, docs.lastFilter.Status)
	assert.Equal(t, "completed", *docs.lastFilter.Status)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Hazard Inventory")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Product Name", rows[0][0])
	assert.Equal(t, "Acetone", rows[1][0])
	assert.Equal(t, "H225, H319", rows[1][4])
	assert.Equal(t, "C", rows[1][6])
	assert.Equal(t, "2/3/0", rows[1][7])
}

func TestFormatRatings(t *testing.T) {
	assert.Equal(t, "", formatRatings(nil))
	assert.Equal(t, "2/-/0", formatRatings(&entity.Ratings{Health: intPtr(2), Reactivity: intPtr(0)}))
}
