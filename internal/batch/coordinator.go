package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/qrsafety/sds-pipeline/internal/entity"
	"github.com/qrsafety/sds-pipeline/internal/pipeline"
	"github.com/qrsafety/sds-pipeline/internal/repository"
)

// Config bounds a batch run.
type Config struct {
	// MaxDocuments caps how many documents one batch may touch. Default 50.
	MaxDocuments int
	// SubBatchSize is how many documents run concurrently. Default 5.
	SubBatchSize int
	// InterBatchDelay is the pause between sub-batches. Default 2s.
	InterBatchDelay time.Duration
	// MaxErrors caps how many per-document error messages the summary
	// records. Failures past the cap still count, they just carry no
	// message. Default 10.
	MaxErrors int
	// QualityThreshold selects candidates when no explicit IDs are given:
	// documents scoring below it are re-queued. Default 50.
	QualityThreshold int
}

func (c *Config) applyDefaults() {
	if c.MaxDocuments <= 0 {
		c.MaxDocuments = 50
	}
	if c.SubBatchSize <= 0 {
		c.SubBatchSize = 5
	}
	if c.InterBatchDelay <= 0 {
		c.InterBatchDelay = 2 * time.Second
	}
	if c.MaxErrors <= 0 {
		c.MaxErrors = 10
	}
	if c.QualityThreshold <= 0 {
		c.QualityThreshold = 50
	}
}

// DocumentProcessor is the per-document pipeline entry point.
type DocumentProcessor interface {
	ProcessDocument(ctx context.Context, args pipeline.ExtractArgs) (pipeline.ExtractOutcome, error)
}

// Error records one failed document inside an otherwise continuing batch.
type Error struct {
	DocumentID uuid.UUID
	Message    string
}

// Summary is the outcome of one batch run.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
	Errors    []Error
}

// Coordinator re-runs the extraction pipeline over many stored documents
// in rate-limited concurrent sub-batches. One document failing never
// stops its siblings; every selected document gets its attempt, and only
// infrastructure errors abort the run.
type Coordinator struct {
	logger    *slog.Logger
	cfg       Config
	processor DocumentProcessor
	documents repository.DocumentRepository

	// sleep is swapped out in tests
	sleep func(ctx context.Context, d time.Duration)
}

func NewCoordinator(logger *slog.Logger, cfg Config, processor DocumentProcessor, documents repository.DocumentRepository) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.applyDefaults()
	return &Coordinator{
		logger:    logger,
		cfg:       cfg,
		processor: processor,
		documents: documents,
		sleep:     sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// ProcessBatch reprocesses the given documents, or when documentIDs is
// empty, every facility document below the quality threshold. Force skips
// the threshold filter and re-extracts regardless of prior quality.
func (c *Coordinator) ProcessBatch(ctx context.Context, facilityID uuid.UUID, documentIDs []uuid.UUID, force bool) (Summary, error) {
	candidates, aboveThreshold, err := c.selectCandidates(ctx, facilityID, documentIDs, force)
	if err != nil {
		return Summary{}, err
	}
	if len(candidates) > c.cfg.MaxDocuments {
		c.logger.Warn("batch.capped",
			"candidates", len(candidates),
			"max", c.cfg.MaxDocuments,
		)
		candidates = candidates[:c.cfg.MaxDocuments]
	}

	// Documents the quality filter left out are part of the batch story
	// too: they show up as skipped rather than silently vanishing.
	summary := Summary{
		Total:   len(candidates) + aboveThreshold,
		Skipped: aboveThreshold,
	}
	if len(candidates) == 0 {
		return summary, nil
	}
	c.logger.Info("batch.start",
		"facility_id", facilityID,
		"total", summary.Total,
		"sub_batch_size", c.cfg.SubBatchSize,
	)

	var mu sync.Mutex
	for start := 0; start < len(candidates); start += c.cfg.SubBatchSize {
		if start > 0 {
			c.sleep(ctx, c.cfg.InterBatchDelay)
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		end := start + c.cfg.SubBatchSize
		if end > len(candidates) {
			end = len(candidates)
		}
		g, gctx := errgroup.WithContext(ctx)
		for _, doc := range candidates[start:end] {
			doc := doc
			g.Go(func() error {
				outcome, perr := c.processOne(gctx, facilityID, doc, force)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case perr != nil:
					summary.Failed++
					if len(summary.Errors) < c.cfg.MaxErrors {
						summary.Errors = append(summary.Errors, Error{
							DocumentID: doc.ID,
							Message:    perr.Error(),
						})
					}
				case outcome.Skipped:
					summary.Skipped++
				default:
					summary.Succeeded++
				}
				// failures are isolated, never propagated into the group
				return nil
			})
		}
		_ = g.Wait()
	}

	c.logger.Info("batch.done",
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
	)
	return summary, nil
}

func (c *Coordinator) processOne(ctx context.Context, facilityID uuid.UUID, doc *entity.SDSDocument, force bool) (pipeline.ExtractOutcome, error) {
	args := pipeline.ExtractArgs{
		FacilityID:     facilityID,
		ForceReprocess: force,
	}
	switch {
	case doc.SourceURL != nil && *doc.SourceURL != "":
		args.SourceURL = *doc.SourceURL
	case doc.BucketURL != nil && *doc.BucketURL != "":
		args.BucketURL = *doc.BucketURL
	default:
		return pipeline.ExtractOutcome{}, fmt.Errorf("document %s has no source reference", doc.ID)
	}
	outcome, err := c.processor.ProcessDocument(ctx, args)
	if err != nil {
		c.logger.Warn("batch.document.failed", "document_id", doc.ID, "err", err)
	}
	return outcome, err
}

// selectCandidates resolves which documents the batch touches. Explicit
// IDs always win; otherwise the below-quality filter applies, unless
// force widens it to the whole facility. The second return value is how
// many facility documents the quality filter excluded.
func (c *Coordinator) selectCandidates(ctx context.Context, facilityID uuid.UUID, documentIDs []uuid.UUID, force bool) ([]*entity.SDSDocument, int, error) {
	if len(documentIDs) > 0 {
		docs, err := c.documents.ListDocuments(ctx, facilityID, repository.ListDocumentsFilter{IDs: documentIDs})
		return docs, 0, err
	}
	if force {
		docs, err := c.documents.ListDocuments(ctx, facilityID, repository.ListDocumentsFilter{Limit: c.cfg.MaxDocuments})
		return docs, 0, err
	}
	return c.documents.ListBelowQuality(ctx, facilityID, c.cfg.QualityThreshold)
}
