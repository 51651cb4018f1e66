package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	sdspb "github.com/qrsafety/sds-pipeline/gen/proto/sds/v1"
	"github.com/qrsafety/sds-pipeline/internal/batch"
	"github.com/qrsafety/sds-pipeline/internal/common"
	"github.com/qrsafety/sds-pipeline/internal/export"
	"github.com/qrsafety/sds-pipeline/internal/fetch"
	"github.com/qrsafety/sds-pipeline/internal/llm"
	"github.com/qrsafety/sds-pipeline/internal/llm/openai"
	"github.com/qrsafety/sds-pipeline/internal/ocr"
	"github.com/qrsafety/sds-pipeline/internal/pipeline"
	repo "github.com/qrsafety/sds-pipeline/internal/repository"
	"github.com/qrsafety/sds-pipeline/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbResult, err := common.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	if err := repo.HealthCheck(ctx, dbResult.Pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	entc := dbResult.Client
	facilityRepo := repo.NewFacilityRepository(entc, logger)
	documentRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	fetcher := fetch.NewFetcher(fetch.Config{
		Timeout:      cfg.Fetch.Timeout,
		MaxSizeBytes: cfg.Fetch.MaxSizeBytes,
		CacheDir:     cfg.OCR.ArtifactCacheDir,
	}, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:        cfg.OCR.Pdftotext,
		Pdftoppm:         cfg.OCR.Pdftoppm,
		Tesseract:        cfg.OCR.Tesseract,
		DPI:              cfg.OCR.DPI,
		MaxPages:         cfg.OCR.MaxPages,
		ArtifactCacheDir: cfg.OCR.ArtifactCacheDir,
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
		logger.Warn("OPENAI_API_KEY not configured, AI enhancement disabled")
	}

	orchestrator := pipeline.NewOrchestrator(logger, pipeline.Config{}, fetcher, extractor, enhancer, documentRepo, jobsRepo)
	coordinator := batch.NewCoordinator(logger, batch.Config{
		MaxDocuments:     cfg.Batch.MaxDocuments,
		SubBatchSize:     cfg.Batch.SubBatchSize,
		InterBatchDelay:  cfg.Batch.InterBatchDelay,
		QualityThreshold: cfg.Batch.QualityThreshold,
	}, orchestrator, documentRepo)
	exporter := export.NewService(documentRepo, logger)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(server.RequestIDInterceptor(logger)),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewSDSService(facilityRepo, documentRepo, orchestrator, coordinator, exporter, logger)
	sdspb.RegisterSDSServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}
