package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrsafety/sds-pipeline/constants"
	"github.com/qrsafety/sds-pipeline/gen/ent"
	"github.com/qrsafety/sds-pipeline/internal/entity"
	"github.com/qrsafety/sds-pipeline/internal/fetch"
	"github.com/qrsafety/sds-pipeline/internal/ghs"
	"github.com/qrsafety/sds-pipeline/internal/llm"
	"github.com/qrsafety/sds-pipeline/internal/ocr"
	"github.com/qrsafety/sds-pipeline/internal/repository"
	"github.com/qrsafety/sds-pipeline/internal/validation"
)

type fakeFetcher struct {
	result fetch.Result
	err    error
	called int
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) (fetch.Result, error) {
	f.called++
	return f.result, f.err
}

type fakeExtractor struct {
	text   string
	err    error
	called int
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (ocr.ExtractionResult, error) {
	f.called++
	if f.err != nil {
		return ocr.ExtractionResult{}, f.err
	}
	return ocr.ExtractionResult{
		Text:       f.text,
		Pages:      1,
		SourceType: constants.TXT,
		Method:     "plain-text",
		Confidence: 0.6,
	}, nil
}

type fakeEnhancer struct {
	fields llm.SDSFields
	err    error
	called int
}

func (f *fakeEnhancer) EnhanceFields(_ context.Context, _ llm.EnhanceRequest) (llm.SDSFields, []byte, error) {
	f.called++
	return f.fields, nil, f.err
}

type fakeDocs struct {
	existing *entity.SDSDocument
	saved    *repository.SaveDocumentRequest
}

func (f *fakeDocs) GetByID(_ context.Context, _ uuid.UUID) (*entity.SDSDocument, error) {
	return nil, errors.New("not found")
}

func (f *fakeDocs) GetByFacilityAndHash(_ context.Context, _ uuid.UUID, _ []byte) (*entity.SDSDocument, error) {
	if f.existing == nil {
		return nil, errors.New("not found")
	}
	return f.existing, nil
}

func (f *fakeDocs) ListDocuments(_ context.Context, _ uuid.UUID, _ repository.ListDocumentsFilter) ([]*entity.SDSDocument, error) {
	return nil, nil
}

func (f *fakeDocs) ListBelowQuality(_ context.Context, _ uuid.UUID, _ int) ([]*entity.SDSDocument, int, error) {
	return nil, 0, nil
}

func (f *fakeDocs) UpsertFromExtraction(_ context.Context, req *repository.SaveDocumentRequest) (*entity.SDSDocument, error) {
	f.saved = req
	doc := *req.Document
	doc.ID = uuid.New()
	return &doc, nil
}

type fakeJobs struct {
	started   int
	attached  uuid.UUID
	succeeded *repository.JobResult
	failedMsg string
}

func (f *fakeJobs) Start(_ context.Context, _ uuid.UUID, _, _ string) (*ent.ExtractJob, error) {
	f.started++
	return &ent.ExtractJob{ID: uuid.New()}, nil
}

func (f *fakeJobs) AttachDocument(_ context.Context, _ uuid.UUID, documentID uuid.UUID) error {
	f.attached = documentID
	return nil
}

func (f *fakeJobs) FinishSuccess(_ context.Context, _ uuid.UUID, result repository.JobResult) error {
	f.succeeded = &result
	return nil
}

func (f *fakeJobs) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	f.failedMsg = message
	return nil
}

func writeTempSheet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestOrchestrator(fetcher SourceFetcher, extractor TextExtractor, enhancer llm.FieldEnhancer, docs *fakeDocs, jobs *fakeJobs) *Orchestrator {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewOrchestrator(logger, Config{}, fetcher, extractor, enhancer, docs, jobs)
}

func TestProcessDocumentFetchFailureLeavesNoRows(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("status 404")}
	docs := &fakeDocs{}
	jobs := &fakeJobs{}
	o := newTestOrchestrator(fetcher, &fakeExtractor{}, nil, docs, jobs)

	_, err := o.ProcessDocument(context.Background(), ExtractArgs{
		FacilityID: uuid.New(),
		SourceURL:  "https://example.com/acetone.pdf",
	})
	require.Error(t, err)
	assert.Equal(t, 0, jobs.started)
	assert.Nil(t, docs.saved)
}

func TestProcessDocumentSkipsExistingAboveThreshold(t *testing.T) {
	existing := &entity.SDSDocument{
		ID:                     uuid.New(),
		ProductName:            "Acetone",
		ExtractionQualityScore: 85,
	}
	docs := &fakeDocs{existing: existing}
	jobs := &fakeJobs{}
	extractor := &fakeExtractor{text: "unused"}
	o := newTestOrchestrator(nil, extractor, nil, docs, jobs)

	path := writeTempSheet(t, "some sheet content")
	out, err := o.ProcessDocument(context.Background(), ExtractArgs{
		FacilityID: uuid.New(),
		LocalPath:  path,
	})
	require.NoError(t, err)
	assert.True(t, out.Skipped)
	assert.Equal(t, existing.ID, out.Document.ID)
	assert.Equal(t, 0, extractor.called)
	assert.Equal(t, 0, jobs.started)
}

func TestProcessDocumentForceReprocessIgnoresSkip(t *testing.T) {
	existing := &entity.SDSDocument{ID: uuid.New(), ExtractionQualityScore: 85}
	docs := &fakeDocs{existing: existing}
	jobs := &fakeJobs{}
	extractor := &fakeExtractor{text: strings.Repeat("safety data sheet text ", 10)}
	o := newTestOrchestrator(nil, extractor, nil, docs, jobs)

	path := writeTempSheet(t, "some sheet content")
	out, err := o.ProcessDocument(context.Background(), ExtractArgs{
		FacilityID:     uuid.New(),
		LocalPath:      path,
		ForceReprocess: true,
	})
	require.NoError(t, err)
	assert.False(t, out.Skipped)
	assert.Equal(t, 1, extractor.called)
	require.NotNil(t, docs.saved)
}

func TestProcessDocumentUnreadablePersistedForReview(t *testing.T) {
	docs := &fakeDocs{}
	jobs := &fakeJobs{}
	// too short to clear the readability floor
	extractor := &fakeExtractor{text: "@@##"}
	o := newTestOrchestrator(nil, extractor, nil, docs, jobs)

	path := writeTempSheet(t, "scanned garbage")
	out, err := o.ProcessDocument(context.Background(), ExtractArgs{
		FacilityID: uuid.New(),
		LocalPath:  path,
	})
	require.NoError(t, err)
	require.NotNil(t, docs.saved)
	doc := docs.saved.Document
	assert.False(t, doc.IsReadable)
	assert.Equal(t, string(constants.StatusManualReview), doc.ExtractionStatus)
	assert.Empty(t, doc.ProductName)
	require.NotNil(t, jobs.succeeded)
	assert.True(t, jobs.succeeded.NeedsReview)
	assert.Equal(t, out.Document.ID, jobs.attached)
}

func TestProcessDocumentExtractionFailureRecordedOnJob(t *testing.T) {
	docs := &fakeDocs{}
	jobs := &fakeJobs{}
	extractor := &fakeExtractor{err: errors.New("pdftotext: exit status 1")}
	o := newTestOrchestrator(nil, extractor, nil, docs, jobs)

	path := writeTempSheet(t, "whatever")
	_, err := o.ProcessDocument(context.Background(), ExtractArgs{
		FacilityID: uuid.New(),
		LocalPath:  path,
	})
	require.Error(t, err)
	assert.Equal(t, 1, jobs.started)
	assert.Contains(t, jobs.failedMsg, "pdftotext")
	assert.Nil(t, docs.saved)
}

func TestProcessDocumentEnhancesLowQualityExtraction(t *testing.T) {
	docs := &fakeDocs{}
	jobs := &fakeJobs{}
	// readable prose with nothing the rule extractors can latch onto
	extractor := &fakeExtractor{text: strings.Repeat("this sheet describes a liquid product ", 10)}
	enhancer := &fakeEnhancer{fields: llm.SDSFields{
		ProductName:     "Acetone",
		SignalWord:      "DANGER",
		HCodes:          []string{"H225"},
		ModelConfidence: 0.9,
	}}
	o := newTestOrchestrator(nil, extractor, enhancer, docs, jobs)

	path := writeTempSheet(t, "whatever")
	_, err := o.ProcessDocument(context.Background(), ExtractArgs{
		FacilityID: uuid.New(),
		LocalPath:  path,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, enhancer.called)
	require.NotNil(t, docs.saved)
	doc := docs.saved.Document
	assert.Equal(t, "Acetone", doc.ProductName)
	assert.Equal(t, "DANGER", doc.SignalWord)
	require.Len(t, doc.HCodes, 1)
	assert.Equal(t, "H225", doc.HCodes[0].Code)
	assert.NotEmpty(t, doc.HCodes[0].Description)
	assert.Equal(t, 90, doc.AIConfidence)
	assert.True(t, doc.IsReadable)
}

func TestDeriveStatusLadder(t *testing.T) {
	o := newTestOrchestrator(nil, nil, nil, &fakeDocs{}, &fakeJobs{})

	readable := func(score int) *ghs.Result {
		return &ghs.Result{IsReadable: true, QualityScore: score}
	}
	assert.Equal(t, string(constants.StatusOSHACompliant), o.deriveStatus(readable(98), true))
	assert.Equal(t, string(constants.StatusAIEnhanced), o.deriveStatus(readable(98), false))
	assert.Equal(t, string(constants.StatusAIEnhanced), o.deriveStatus(readable(85), true))
	assert.Equal(t, string(constants.StatusCompleted), o.deriveStatus(readable(60), true))
	assert.Equal(t, string(constants.StatusManualReview), o.deriveStatus(readable(30), true))
	assert.Equal(t, string(constants.StatusManualReview), o.deriveStatus(&ghs.Result{IsReadable: false, QualityScore: 99}, true))
}

func TestMissingProductNameInvalidatesDocument(t *testing.T) {
	// an otherwise well-formed sheet with no product name must never
	// pass validation, even when every hazard field is present
	res := ghs.Result{IsReadable: true, QualityScore: 85}
	res.Identification.Manufacturer = "QR Safety Labs"
	res.Hazards.SignalWord = "DANGER"
	res.Hazards.HCodes = []entity.HazardCode{{Code: "H225", Description: "Highly flammable liquid and vapour"}}
	res.Hazards.Pictograms = []string{"GHS02"}

	doc := buildDocument(ExtractArgs{FacilityID: uuid.New()}, &res, 0)
	assert.Empty(t, doc.ProductName)

	report := validation.Validate(doc)
	assert.False(t, report.IsValid)
	assert.False(t, report.OSHACompliant)
	assert.Contains(t, report.Errors, "Product name is missing or too short")
}

func TestMergeFieldsFillsGapsOnly(t *testing.T) {
	res := &ghs.Result{IsReadable: true}
	res.Identification.ProductName = "Acetone"
	res.Hazards.SignalWord = "WARNING"

	mergeFields(res, llm.SDSFields{
		ProductName:  "Something Else",
		SignalWord:   "DANGER",
		Manufacturer: "QR Labs",
		FlashPoint:   "-20 C",
	})

	assert.Equal(t, "Acetone", res.Identification.ProductName)
	assert.Equal(t, "WARNING", res.Hazards.SignalWord)
	assert.Equal(t, "QR Labs", res.Identification.Manufacturer)
	assert.Equal(t, "-20 C", res.Physical.FlashPoint)
}
