package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/qrsafety/sds-pipeline/constants"
	"github.com/qrsafety/sds-pipeline/gen/ent"
	"github.com/qrsafety/sds-pipeline/gen/ent/sdsdocument"
	"github.com/qrsafety/sds-pipeline/internal/entity"
	"github.com/qrsafety/sds-pipeline/internal/utils"
)

// SaveDocumentRequest wraps everything the pipeline knows about one sheet
// when it persists an extraction run.
type SaveDocumentRequest struct {
	FacilityID  uuid.UUID
	ContentHash []byte
	SourceURL   string
	BucketURL   string

	Document *entity.SDSDocument
}

// ListDocumentsFilter narrows ListDocuments.
type ListDocumentsFilter struct {
	Status *string
	IDs    []uuid.UUID
	Limit  int
	Offset int
}

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SDSDocument, error)
	GetByFacilityAndHash(ctx context.Context, facilityID uuid.UUID, hash []byte) (*entity.SDSDocument, error)
	ListDocuments(ctx context.Context, facilityID uuid.UUID, filter ListDocumentsFilter) ([]*entity.SDSDocument, error)
	ListBelowQuality(ctx context.Context, facilityID uuid.UUID, threshold int) ([]*entity.SDSDocument, int, error)
	UpsertFromExtraction(ctx context.Context, req *SaveDocumentRequest) (*entity.SDSDocument, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SDSDocument, error) {
	row, err := r.client.SDSDocument.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToSDSDocument(row), nil
}

func (r *documentRepository) GetByFacilityAndHash(ctx context.Context, facilityID uuid.UUID, hash []byte) (*entity.SDSDocument, error) {
	row, err := r.client.SDSDocument.Query().
		Where(
			sdsdocument.FacilityID(facilityID),
			sdsdocument.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToSDSDocument(row), nil
}

func (r *documentRepository) ListDocuments(ctx context.Context, facilityID uuid.UUID, filter ListDocumentsFilter) ([]*entity.SDSDocument, error) {
	q := r.client.SDSDocument.Query().Where(sdsdocument.FacilityID(facilityID))
	if filter.Status != nil {
		q = q.Where(sdsdocument.ExtractionStatus(*filter.Status))
	}
	if len(filter.IDs) > 0 {
		q = q.Where(sdsdocument.IDIn(filter.IDs...))
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	rows, err := q.Order(sdsdocument.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "facility_id", facilityID, "error", err)
		return nil, err
	}

	result := make([]*entity.SDSDocument, len(rows))
	for i, row := range rows {
		result[i] = utils.ToSDSDocument(row)
	}
	return result, nil
}

// ListBelowQuality returns re-extraction candidates: sheets whose quality
// score sits under the threshold, plus anything still pending or flagged
// for manual review. The second return value is how many facility
// documents the filter excluded, so callers can report them as skipped.
func (r *documentRepository) ListBelowQuality(ctx context.Context, facilityID uuid.UUID, threshold int) ([]*entity.SDSDocument, int, error) {
	rows, err := r.client.SDSDocument.Query().
		Where(
			sdsdocument.FacilityID(facilityID),
			sdsdocument.Or(
				sdsdocument.ExtractionQualityScoreLT(threshold),
				sdsdocument.ExtractionStatusIn(
					string(constants.StatusPending),
					string(constants.StatusManualReview),
				),
			),
		).
		Order(sdsdocument.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list low-quality documents", "facility_id", facilityID, "error", err)
		return nil, 0, err
	}

	total, err := r.client.SDSDocument.Query().
		Where(sdsdocument.FacilityID(facilityID)).
		Count(ctx)
	if err != nil {
		r.logger.Error("failed to count facility documents", "facility_id", facilityID, "error", err)
		return nil, 0, err
	}

	result := make([]*entity.SDSDocument, len(rows))
	for i, row := range rows {
		result[i] = utils.ToSDSDocument(row)
	}
	return result, total - len(rows), nil
}

func (r *documentRepository) UpsertFromExtraction(ctx context.Context, req *SaveDocumentRequest) (*entity.SDSDocument, error) {
	doc := req.Document

	if len(req.ContentHash) > 0 {
		if existing, err := r.client.SDSDocument.Query().
			Where(
				sdsdocument.FacilityID(req.FacilityID),
				sdsdocument.ContentHash(req.ContentHash),
			).Only(ctx); err == nil {
			return r.updateRow(ctx, existing.ID, req)
		} else if !ent.IsNotFound(err) {
			return nil, err
		}
	}

	builder := r.client.SDSDocument.Create().
		SetFacilityID(req.FacilityID).
		SetProductName(doc.ProductName)
	if len(req.ContentHash) > 0 {
		builder = builder.SetContentHash(req.ContentHash)
	}
	if req.SourceURL != "" {
		builder = builder.SetSourceURL(req.SourceURL)
	}
	if req.BucketURL != "" {
		builder = builder.SetBucketURL(req.BucketURL)
	}
	applyExtraction(builder.Mutation(), doc)

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "facility_id", req.FacilityID, "product", doc.ProductName, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "document_id", row.ID, "product", row.ProductName, "status", row.ExtractionStatus)
	return utils.ToSDSDocument(row), nil
}

func (r *documentRepository) updateRow(ctx context.Context, id uuid.UUID, req *SaveDocumentRequest) (*entity.SDSDocument, error) {
	doc := req.Document
	builder := r.client.SDSDocument.UpdateOneID(id).
		SetProductName(doc.ProductName)
	if req.SourceURL != "" {
		builder = builder.SetSourceURL(req.SourceURL)
	}
	if req.BucketURL != "" {
		builder = builder.SetBucketURL(req.BucketURL)
	}
	applyExtraction(builder.Mutation(), doc)

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update document", "document_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("document updated", "document_id", row.ID, "product", row.ProductName, "status", row.ExtractionStatus)
	return utils.ToSDSDocument(row), nil
}

// applyExtraction writes the extraction payload through the shared mutation
// so create and update stay in lockstep.
func applyExtraction(m *ent.SDSDocumentMutation, doc *entity.SDSDocument) {
	if doc.Manufacturer != "" {
		m.SetManufacturer(doc.Manufacturer)
	}
	if doc.CASNumber != "" {
		m.SetCasNumber(doc.CASNumber)
	}
	if doc.SignalWord != "" {
		m.SetSignalWord(doc.SignalWord)
	}
	m.SetHCodes(doc.HCodes)
	m.SetPictograms(doc.Pictograms)
	if doc.PPERequirements != nil {
		m.SetPpeRequirements(*doc.PPERequirements)
	}
	if doc.HMISCodes != nil {
		m.SetHmisCodes(doc.HMISCodes)
	}
	if doc.NFPACodes != nil {
		m.SetNfpaCodes(doc.NFPACodes)
	}
	m.SetPrecautionaryStatements(doc.PrecautionaryStatements)
	if doc.FirstAid != nil && !doc.FirstAid.Empty() {
		m.SetFirstAid(*doc.FirstAid)
	}
	if doc.HandlingStorage != "" {
		m.SetHandlingStorage(doc.HandlingStorage)
	}
	if doc.PhysicalState != "" {
		m.SetPhysicalState(doc.PhysicalState)
	}
	if doc.FlashPoint != "" {
		m.SetFlashPoint(doc.FlashPoint)
	}
	m.SetExtractionQualityScore(doc.ExtractionQualityScore)
	if doc.AIConfidence > 0 {
		m.SetAiConfidence(float32(doc.AIConfidence))
	}
	m.SetExtractionStatus(doc.ExtractionStatus)
	m.SetIsReadable(doc.IsReadable)
}
