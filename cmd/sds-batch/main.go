package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/qrsafety/sds-pipeline/constants"
	"github.com/qrsafety/sds-pipeline/internal/common"
	"github.com/qrsafety/sds-pipeline/internal/export"
	"github.com/qrsafety/sds-pipeline/internal/fetch"
	"github.com/qrsafety/sds-pipeline/internal/llm"
	"github.com/qrsafety/sds-pipeline/internal/llm/openai"
	"github.com/qrsafety/sds-pipeline/internal/ocr"
	"github.com/qrsafety/sds-pipeline/internal/pipeline"
	repo "github.com/qrsafety/sds-pipeline/internal/repository"
	"github.com/qrsafety/sds-pipeline/internal/watch"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir      = flag.String("dir", "", "directory of SDS files to process (required)")
		out      = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		facility = flag.String("facility", "Local Batch", "facility name to file documents under")
		force    = flag.Bool("force", false, "re-extract documents already in the database")
		watchDir = flag.Bool("watch", false, "after the initial pass, keep watching --dir for new files")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "hazard-inventory.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	entc := dbResult.Client
	facilityRepo := repo.NewFacilityRepository(entc, logger)
	documentRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	fac, err := facilityRepo.GetOrCreateByName(ctx, *facility)
	if err != nil {
		logger.Error("failed to get or create facility", "error", err)
		os.Exit(1)
	}
	logger.Info("using facility", "id", fac.ID, "name", fac.Name)

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:        cfg.OCR.Pdftotext,
		Pdftoppm:         cfg.OCR.Pdftoppm,
		Tesseract:        cfg.OCR.Tesseract,
		DPI:              cfg.OCR.DPI,
		MaxPages:         cfg.OCR.MaxPages,
		ArtifactCacheDir: cfg.OCR.ArtifactCacheDir,
	}, logger)
	fetcher := fetch.NewFetcher(fetch.Config{
		Timeout:      cfg.Fetch.Timeout,
		MaxSizeBytes: cfg.Fetch.MaxSizeBytes,
		CacheDir:     cfg.OCR.ArtifactCacheDir,
	}, logger)

	var enhancer llm.FieldEnhancer
	if cfg.LLM.APIKey != "" {
		enhancer = openai.NewClient(openai.Config{
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		logger.Info("openai client initialized", "model", cfg.LLM.Model)
	} else {
		logger.Warn("OPENAI_API_KEY not configured, AI enhancement will be skipped")
	}

	orchestrator := pipeline.NewOrchestrator(logger, pipeline.Config{}, fetcher, extractor, enhancer, documentRepo, jobsRepo)

	paths, err := collectSheets(*dir)
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("starting extraction", "dir", *dir, "files", len(paths))

	processed := 0
	skipped := 0
	failures := 0
	for _, path := range paths {
		outcome, err := orchestrator.ProcessDocument(ctx, pipeline.ExtractArgs{
			FacilityID:     fac.ID,
			LocalPath:      path,
			ForceReprocess: *force,
		})
		switch {
		case err != nil:
			logger.Error("failed to process file", "path", path, "error", err)
			failures++
		case outcome.Skipped:
			skipped++
		default:
			processed++
		}
	}

	if *watchDir {
		watchAndProcess(ctx, logger, orchestrator, fac.ID, *dir, *force)
	}

	logger.Info("exporting hazard inventory", "output", *out)
	exporter := export.NewService(documentRepo, logger)
	xlsxBytes, rows, err := exporter.ExportHazardInventoryXLSX(ctx, fac.ID, "")
	if err != nil {
		logger.Error("failed to export inventory", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete",
		"files_found", len(paths),
		"processed", processed,
		"skipped", skipped,
		"failures", failures,
		"inventory_rows", rows,
		"output_file", *out)

	fmt.Printf("Batch complete!\n")
	fmt.Printf("- Files found: %d\n", len(paths))
	fmt.Printf("- Processed: %d\n", processed)
	fmt.Printf("- Skipped: %d\n", skipped)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}

// watchAndProcess blocks until interrupted, extracting every new file
// dropped into dir.
func watchAndProcess(ctx context.Context, logger *slog.Logger, orchestrator *pipeline.Orchestrator, facilityID uuid.UUID, dir string, force bool) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, errs, err := watch.Start(ctx, watch.Config{
		Roots:    []string{dir},
		Debounce: 500 * time.Millisecond,
	}, logger)
	if err != nil {
		logger.Error("failed to start watcher", "dir", dir, "error", err)
		return
	}
	logger.Info("watching for new files", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Warn("watch error", "error", err)
		case path, ok := <-events:
			if !ok {
				return
			}
			if _, err := orchestrator.ProcessDocument(ctx, pipeline.ExtractArgs{
				FacilityID:     facilityID,
				LocalPath:      path,
				ForceReprocess: force,
			}); err != nil {
				logger.Error("failed to process file", "path", path, "error", err)
			}
		}
	}
}

// collectSheets walks dir for files with an allowed extension, skipping
// hidden entries.
func collectSheets(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") && path != dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if constants.IsAllowedExt(filepath.Ext(name)) {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}
