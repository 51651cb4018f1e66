package pipeline

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/qrsafety/sds-pipeline/constants"
	"github.com/qrsafety/sds-pipeline/internal/entity"
	"github.com/qrsafety/sds-pipeline/internal/fetch"
	"github.com/qrsafety/sds-pipeline/internal/ghs"
	"github.com/qrsafety/sds-pipeline/internal/llm"
	"github.com/qrsafety/sds-pipeline/internal/ocr"
	"github.com/qrsafety/sds-pipeline/internal/repository"
	"github.com/qrsafety/sds-pipeline/internal/validation"
)

// Config holds thresholds for status derivation and AI enhancement.
type Config struct {
	// OSHAThreshold is the quality score at or above which a valid
	// document is marked osha_compliant. Default 98.
	OSHAThreshold int
	// EnhanceThreshold is the score at or above which a document is
	// marked ai_enhanced, and below which the AI pass runs. Default 80.
	EnhanceThreshold int
	// ReviewThreshold is the score below which a document is flagged
	// manual_review_required. Also the skip filter for re-extraction.
	// Default 50.
	ReviewThreshold int
}

func (c *Config) applyDefaults() {
	if c.OSHAThreshold <= 0 {
		c.OSHAThreshold = 98
	}
	if c.EnhanceThreshold <= 0 {
		c.EnhanceThreshold = 80
	}
	if c.ReviewThreshold <= 0 {
		c.ReviewThreshold = 50
	}
}

// SourceFetcher retrieves a remote document into the local cache.
type SourceFetcher interface {
	Fetch(ctx context.Context, rawURL string) (fetch.Result, error)
}

// TextExtractor turns a local file into text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ocr.ExtractionResult, error)
}

// ExtractArgs identifies one document source. Exactly one of SourceURL,
// BucketURL, LocalPath should be set.
type ExtractArgs struct {
	FacilityID     uuid.UUID
	SourceURL      string
	BucketURL      string
	LocalPath      string
	ForceReprocess bool
}

// ExtractOutcome reports one orchestrator run.
type ExtractOutcome struct {
	Document *entity.SDSDocument
	JobID    uuid.UUID
	Skipped  bool
}

// Orchestrator runs fetch -> text extraction -> rule extraction ->
// optional AI enhancement -> validation -> persistence for one document.
type Orchestrator struct {
	logger    *slog.Logger
	cfg       Config
	fetcher   SourceFetcher
	extractor TextExtractor
	enhancer  llm.FieldEnhancer // nil disables the AI pass
	documents repository.DocumentRepository
	jobs      repository.ExtractJobRepository
}

func NewOrchestrator(
	logger *slog.Logger,
	cfg Config,
	fetcher SourceFetcher,
	extractor TextExtractor,
	enhancer llm.FieldEnhancer,
	documents repository.DocumentRepository,
	jobs repository.ExtractJobRepository,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.applyDefaults()
	return &Orchestrator{
		logger:    logger,
		cfg:       cfg,
		fetcher:   fetcher,
		extractor: extractor,
		enhancer:  enhancer,
		documents: documents,
		jobs:      jobs,
	}
}

// ProcessDocument runs the full pipeline for one source. A failed fetch
// leaves no rows behind; once a job starts, failures are recorded on it.
// Unreadable documents are persisted with is_readable=false, never dropped.
func (o *Orchestrator) ProcessDocument(ctx context.Context, args ExtractArgs) (ExtractOutcome, error) {
	localPath, contentHash, sourceRef, err := o.resolveSource(ctx, args)
	if err != nil {
		o.logger.Error("pipeline.fetch.failed", "source", sourceRef, "err", err)
		return ExtractOutcome{}, err
	}

	// dedup and skip filter: an already-extracted sheet above the review
	// threshold is not redone unless forced
	if existing, err := o.documents.GetByFacilityAndHash(ctx, args.FacilityID, contentHash); err == nil {
		if !args.ForceReprocess && existing.ExtractionQualityScore >= o.cfg.ReviewThreshold {
			o.logger.Info("pipeline.extract.skipped",
				"document_id", existing.ID,
				"quality_score", existing.ExtractionQualityScore,
			)
			return ExtractOutcome{Document: existing, Skipped: true}, nil
		}
	}

	format := constants.MapExtToFormat(filepath.Ext(localPath))
	job, err := o.jobs.Start(ctx, args.FacilityID, sourceRef, format)
	if err != nil {
		return ExtractOutcome{}, fmt.Errorf("start job: %w", err)
	}

	ocrRes, err := o.extractor.Extract(ctx, localPath)
	if err != nil {
		_ = o.jobs.FinishFailure(ctx, job.ID, err.Error())
		return ExtractOutcome{JobID: job.ID}, fmt.Errorf("extract text: %w", err)
	}
	o.logger.Info("pipeline.ocr.ok",
		"job_id", job.ID,
		"method", ocrRes.Method,
		"pages", ocrRes.Pages,
		"confidence", ocrRes.Confidence,
	)

	res := ghs.Extract(ocrRes.Text)

	aiConfidence := 0
	modelName := ""
	if res.IsReadable && res.QualityScore < o.cfg.EnhanceThreshold && o.enhancer != nil {
		aiConfidence, modelName = o.enhance(ctx, &res, ocrRes, localPath)
	}

	doc := buildDocument(args, &res, aiConfidence)
	report := validation.Validate(doc)
	doc.ExtractionStatus = o.deriveStatus(&res, report.IsValid)

	saved, err := o.documents.UpsertFromExtraction(ctx, &repository.SaveDocumentRequest{
		FacilityID:  args.FacilityID,
		ContentHash: contentHash,
		SourceURL:   args.SourceURL,
		BucketURL:   args.BucketURL,
		Document:    doc,
	})
	if err != nil {
		_ = o.jobs.FinishFailure(ctx, job.ID, err.Error())
		return ExtractOutcome{JobID: job.ID}, fmt.Errorf("persist document: %w", err)
	}
	if err := o.jobs.AttachDocument(ctx, job.ID, saved.ID); err != nil {
		return ExtractOutcome{Document: saved, JobID: job.ID}, err
	}

	extracted, _ := json.Marshal(doc)
	if err := o.jobs.FinishSuccess(ctx, job.ID, repository.JobResult{
		RawText:       ocrRes.Text,
		Method:        ocrRes.Method,
		Confidence:    float32(doc.ExtractionQualityScore),
		NeedsReview:   doc.ExtractionStatus == string(constants.StatusManualReview),
		ExtractedJSON: extracted,
		ModelName:     modelName,
		ModelParams: map[string]any{
			"ocr_confidence": ocrRes.Confidence,
			"ai_confidence":  aiConfidence,
		},
	}); err != nil {
		return ExtractOutcome{Document: saved, JobID: job.ID}, err
	}

	o.logger.Info("pipeline.extract.ok",
		"job_id", job.ID,
		"document_id", saved.ID,
		"product", saved.ProductName,
		"quality_score", saved.ExtractionQualityScore,
		"status", saved.ExtractionStatus,
		"is_readable", saved.IsReadable,
	)
	return ExtractOutcome{Document: saved, JobID: job.ID}, nil
}

// resolveSource turns args into a local file plus its content hash.
func (o *Orchestrator) resolveSource(ctx context.Context, args ExtractArgs) (string, []byte, string, error) {
	switch {
	case args.LocalPath != "":
		hashHex, _, err := fetch.HashFile(args.LocalPath)
		if err != nil {
			return "", nil, args.LocalPath, fmt.Errorf("hash %s: %w", args.LocalPath, err)
		}
		hash, _ := hex.DecodeString(hashHex)
		return args.LocalPath, hash, args.LocalPath, nil
	case args.SourceURL != "":
		res, err := o.fetcher.Fetch(ctx, args.SourceURL)
		if err != nil {
			return "", nil, args.SourceURL, err
		}
		hash, _ := hex.DecodeString(res.ContentHash)
		return res.Path, hash, args.SourceURL, nil
	case args.BucketURL != "":
		res, err := o.fetcher.Fetch(ctx, args.BucketURL)
		if err != nil {
			return "", nil, args.BucketURL, err
		}
		hash, _ := hex.DecodeString(res.ContentHash)
		return res.Path, hash, args.BucketURL, nil
	default:
		return "", nil, "", fmt.Errorf("no document source given")
	}
}

// enhance runs the AI pass and merges its answers into gaps the rules
// left empty. Rule-extracted values are never overwritten.
func (o *Orchestrator) enhance(ctx context.Context, res *ghs.Result, ocrRes ocr.ExtractionResult, localPath string) (int, string) {
	req := llm.EnhanceRequest{
		DocumentText:   ocrRes.Text,
		FilenameHint:   filepath.Base(localPath),
		KnownFields:    knownFields(res),
		PrepConfidence: ocrRes.Confidence,
	}
	fields, _, err := o.enhancer.EnhanceFields(ctx, req)
	if err != nil {
		o.logger.Warn("pipeline.enhance.failed", "err", err)
		return 0, ""
	}

	mergeFields(res, fields)
	res.QualityScore = ghs.Score(res)

	aiConfidence := int(fields.ModelConfidence * 100)
	if aiConfidence <= 0 {
		// the model answered but did not self-score; treat as moderate
		aiConfidence = 75
	}
	o.logger.Info("pipeline.enhance.ok",
		"quality_score", res.QualityScore,
		"ai_confidence", aiConfidence,
	)
	return aiConfidence, "openai"
}

func knownFields(res *ghs.Result) map[string]string {
	known := make(map[string]string)
	if res.Identification.ProductName != "" {
		known["product_name"] = res.Identification.ProductName
	}
	if res.Identification.Manufacturer != "" {
		known["manufacturer"] = res.Identification.Manufacturer
	}
	if res.Identification.CASNumber != "" {
		known["cas_number"] = res.Identification.CASNumber
	}
	if res.Hazards.SignalWord != "" {
		known["signal_word"] = res.Hazards.SignalWord
	}
	return known
}

func mergeFields(res *ghs.Result, fields llm.SDSFields) {
	if res.Identification.ProductName == "" {
		res.Identification.ProductName = fields.ProductName
	}
	if res.Identification.Manufacturer == "" {
		res.Identification.Manufacturer = fields.Manufacturer
	}
	if res.Identification.CASNumber == "" {
		res.Identification.CASNumber = fields.CASNumber
	}
	if res.Hazards.SignalWord == "" {
		res.Hazards.SignalWord = fields.SignalWord
	}
	if len(res.Hazards.HCodes) == 0 {
		for _, code := range fields.HCodes {
			res.Hazards.HCodes = append(res.Hazards.HCodes, entity.HazardCode{
				Code:        code,
				Description: constants.HazardDescription(code),
			})
		}
	}
	if len(res.Hazards.Pictograms) == 0 {
		res.Hazards.Pictograms = fields.Pictograms
	}
	if len(res.Hazards.PrecautionaryStatements) == 0 {
		res.Hazards.PrecautionaryStatements = fields.PrecautionaryStatements
	}
	if res.FirstAid.Empty() {
		res.FirstAid = entity.FirstAid{
			SkinContact: fields.FirstAid.SkinContact,
			EyeContact:  fields.FirstAid.EyeContact,
			Inhalation:  fields.FirstAid.Inhalation,
			Ingestion:   fields.FirstAid.Ingestion,
		}
	}
	if res.Handling == "" {
		res.Handling = fields.HandlingStorage
	}
	if res.Physical.PhysicalState == "" {
		res.Physical.PhysicalState = fields.PhysicalState
	}
	if res.Physical.FlashPoint == "" {
		res.Physical.FlashPoint = fields.FlashPoint
	}
}

// buildDocument maps a rule-extraction result onto the persistence shape.
func buildDocument(args ExtractArgs, res *ghs.Result, aiConfidence int) *entity.SDSDocument {
	doc := &entity.SDSDocument{
		FacilityID:   args.FacilityID,
		ProductName:  res.Identification.ProductName,
		Manufacturer: res.Identification.Manufacturer,
		CASNumber:    res.Identification.CASNumber,

		SignalWord:              res.Hazards.SignalWord,
		HCodes:                  res.Hazards.HCodes,
		Pictograms:              res.Hazards.Pictograms,
		HMISCodes:               res.HMIS,
		NFPACodes:               res.NFPA,
		PrecautionaryStatements: res.Hazards.PrecautionaryStatements,
		HandlingStorage:         res.Handling,
		PhysicalState:           res.Physical.PhysicalState,
		FlashPoint:              res.Physical.FlashPoint,

		ExtractionQualityScore: res.QualityScore,
		AIConfidence:           aiConfidence,
		IsReadable:             res.IsReadable,
	}
	if res.PPE.HMISCode != "" {
		ppe := res.PPE
		doc.PPERequirements = &ppe
	}
	if !res.FirstAid.Empty() {
		fa := res.FirstAid
		doc.FirstAid = &fa
	}
	if args.SourceURL != "" {
		u := args.SourceURL
		doc.SourceURL = &u
	}
	if args.BucketURL != "" {
		u := args.BucketURL
		doc.BucketURL = &u
	}
	return doc
}

// deriveStatus maps score and validity onto the stored status ladder.
func (o *Orchestrator) deriveStatus(res *ghs.Result, valid bool) string {
	if !res.IsReadable {
		return string(constants.StatusManualReview)
	}
	switch {
	case res.QualityScore >= o.cfg.OSHAThreshold && valid:
		return string(constants.StatusOSHACompliant)
	case res.QualityScore >= o.cfg.EnhanceThreshold:
		return string(constants.StatusAIEnhanced)
	case res.QualityScore < o.cfg.ReviewThreshold:
		return string(constants.StatusManualReview)
	default:
		return string(constants.StatusCompleted)
	}
}
