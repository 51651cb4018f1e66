package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrsafety/sds-pipeline/internal/entity"
	"github.com/qrsafety/sds-pipeline/internal/pipeline"
	"github.com/qrsafety/sds-pipeline/internal/repository"
)

type fakeProcessor struct {
	mu       sync.Mutex
	failURLs map[string]bool
	skipURLs map[string]bool
	calls    []string
	inflight int
	maxSeen  int
}

func (f *fakeProcessor) ProcessDocument(_ context.Context, args pipeline.ExtractArgs) (pipeline.ExtractOutcome, error) {
	f.mu.Lock()
	f.calls = append(f.calls, args.SourceURL)
	f.inflight++
	if f.inflight > f.maxSeen {
		f.maxSeen = f.inflight
	}
	f.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	f.mu.Lock()
	f.inflight--
	f.mu.Unlock()

	if f.failURLs[args.SourceURL] {
		return pipeline.ExtractOutcome{}, errors.New("fetch failed")
	}
	if f.skipURLs[args.SourceURL] {
		return pipeline.ExtractOutcome{Skipped: true}, nil
	}
	return pipeline.ExtractOutcome{Document: &entity.SDSDocument{ID: uuid.New()}}, nil
}

type fakeDocLister struct {
	byIDs          []*entity.SDSDocument
	belowQuality   []*entity.SDSDocument
	aboveThreshold int
	all            []*entity.SDSDocument
	lastFilter     *repository.ListDocumentsFilter
}

func (f *fakeDocLister) GetByID(_ context.Context, _ uuid.UUID) (*entity.SDSDocument, error) {
	return nil, errors.New("not found")
}

func (f *fakeDocLister) GetByFacilityAndHash(_ context.Context, _ uuid.UUID, _ []byte) (*entity.SDSDocument, error) {
	return nil, errors.New("not found")
}

func (f *fakeDocLister) ListDocuments(_ context.Context, _ uuid.UUID, filter repository.ListDocumentsFilter) ([]*entity.SDSDocument, error) {
	f.lastFilter = &filter
	if len(filter.IDs) > 0 {
		return f.byIDs, nil
	}
	return f.all, nil
}

func (f *fakeDocLister) ListBelowQuality(_ context.Context, _ uuid.UUID, _ int) ([]*entity.SDSDocument, int, error) {
	return f.belowQuality, f.aboveThreshold, nil
}

func (f *fakeDocLister) UpsertFromExtraction(_ context.Context, req *repository.SaveDocumentRequest) (*entity.SDSDocument, error) {
	return req.Document, nil
}

func docWithURL(url string) *entity.SDSDocument {
	return &entity.SDSDocument{ID: uuid.New(), SourceURL: &url}
}

func newTestCoordinator(cfg Config, p DocumentProcessor, docs repository.DocumentRepository) (*Coordinator, *int) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	c := NewCoordinator(logger, cfg, p, docs)
	sleeps := 0
	c.sleep = func(context.Context, time.Duration) { sleeps++ }
	return c, &sleeps
}

func TestProcessBatchSubBatchesWithDelay(t *testing.T) {
	// 12 documents in the fleet, 3 above the quality threshold; the 9
	// below it run as sub-batches of 5 then 4, and the 3 filtered out
	// still appear in the summary as skipped
	var candidates []*entity.SDSDocument
	for i := 0; i < 9; i++ {
		candidates = append(candidates, docWithURL(fmt.Sprintf("https://example.com/sds-%d.pdf", i)))
	}
	proc := &fakeProcessor{}
	c, sleeps := newTestCoordinator(Config{}, proc, &fakeDocLister{belowQuality: candidates, aboveThreshold: 3})

	summary, err := c.ProcessBatch(context.Background(), uuid.New(), nil, false)
	require.NoError(t, err)
	assert.Equal(t, 12, summary.Total)
	assert.Equal(t, 9, summary.Succeeded)
	assert.Equal(t, 3, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)
	// two groups means exactly one pause between them
	assert.Equal(t, 1, *sleeps)
	assert.Len(t, proc.calls, 9)
	assert.LessOrEqual(t, proc.maxSeen, 5)
}

func TestProcessBatchExplicitIDsWinOverFilter(t *testing.T) {
	explicit := []*entity.SDSDocument{docWithURL("https://example.com/a.pdf")}
	lister := &fakeDocLister{
		byIDs:        explicit,
		belowQuality: []*entity.SDSDocument{docWithURL("https://example.com/low.pdf")},
	}
	proc := &fakeProcessor{}
	c, _ := newTestCoordinator(Config{}, proc, lister)

	summary, err := c.ProcessBatch(context.Background(), uuid.New(), []uuid.UUID{explicit[0].ID}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
	require.Len(t, proc.calls, 1)
	assert.Equal(t, "https://example.com/a.pdf", proc.calls[0])
}

func TestProcessBatchForceSkipsQualityFilter(t *testing.T) {
	lister := &fakeDocLister{
		all:          []*entity.SDSDocument{docWithURL("https://example.com/good.pdf")},
		belowQuality: nil,
	}
	proc := &fakeProcessor{}
	c, _ := newTestCoordinator(Config{}, proc, lister)

	summary, err := c.ProcessBatch(context.Background(), uuid.New(), nil, true)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	require.NotNil(t, lister.lastFilter)
	assert.Empty(t, lister.lastFilter.IDs)
}

func TestProcessBatchCapsCandidates(t *testing.T) {
	var candidates []*entity.SDSDocument
	for i := 0; i < 60; i++ {
		candidates = append(candidates, docWithURL(fmt.Sprintf("https://example.com/sds-%d.pdf", i)))
	}
	proc := &fakeProcessor{}
	c, _ := newTestCoordinator(Config{}, proc, &fakeDocLister{belowQuality: candidates})

	summary, err := c.ProcessBatch(context.Background(), uuid.New(), nil, false)
	require.NoError(t, err)
	assert.Equal(t, 50, summary.Total)
	assert.Len(t, proc.calls, 50)
}

func TestProcessBatchFailureIsolation(t *testing.T) {
	candidates := []*entity.SDSDocument{
		docWithURL("https://example.com/ok.pdf"),
		docWithURL("https://example.com/bad.pdf"),
		docWithURL("https://example.com/dup.pdf"),
		docWithURL("https://example.com/ok2.pdf"),
	}
	proc := &fakeProcessor{
		failURLs: map[string]bool{"https://example.com/bad.pdf": true},
		skipURLs: map[string]bool{"https://example.com/dup.pdf": true},
	}
	c, _ := newTestCoordinator(Config{}, proc, &fakeDocLister{belowQuality: candidates})

	summary, err := c.ProcessBatch(context.Background(), uuid.New(), nil, false)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Skipped)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, candidates[1].ID, summary.Errors[0].DocumentID)
	assert.Contains(t, summary.Errors[0].Message, "fetch failed")
}

func TestProcessBatchAttemptsEveryCandidateDespiteFailures(t *testing.T) {
	// the first eleven documents fail, well past the recorded-error cap;
	// the nine healthy ones after them still get their attempt
	failURLs := make(map[string]bool)
	var candidates []*entity.SDSDocument
	for i := 0; i < 20; i++ {
		url := fmt.Sprintf("https://example.com/sds-%d.pdf", i)
		candidates = append(candidates, docWithURL(url))
		if i < 11 {
			failURLs[url] = true
		}
	}
	proc := &fakeProcessor{failURLs: failURLs}
	c, _ := newTestCoordinator(Config{}, proc, &fakeDocLister{belowQuality: candidates})

	summary, err := c.ProcessBatch(context.Background(), uuid.New(), nil, false)
	require.NoError(t, err)
	assert.Len(t, proc.calls, 20)
	assert.Equal(t, 11, summary.Failed)
	assert.Equal(t, 9, summary.Succeeded)
	// every failure is counted but only the first ten carry a message
	assert.Len(t, summary.Errors, 10)
}

func TestProcessBatchDocumentWithoutSource(t *testing.T) {
	doc := &entity.SDSDocument{ID: uuid.New()}
	proc := &fakeProcessor{}
	c, _ := newTestCoordinator(Config{}, proc, &fakeDocLister{belowQuality: []*entity.SDSDocument{doc}})

	summary, err := c.ProcessBatch(context.Background(), uuid.New(), nil, false)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0].Message, "no source reference")
	assert.Empty(t, proc.calls)
}
