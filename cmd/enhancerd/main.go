package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/evgenyd/docs-metadata-enhancer/gen/proto/enhancer/v1"
	"github.com/evgenyd/docs-metadata-enhancer/internal/async"
	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
	"github.com/evgenyd/docs-metadata-enhancer/internal/export"
	"github.com/evgenyd/docs-metadata-enhancer/internal/llm/openai"
	"github.com/evgenyd/docs-metadata-enhancer/internal/loader"
	"github.com/evgenyd/docs-metadata-enhancer/internal/pipeline"
	"github.com/evgenyd/docs-metadata-enhancer/internal/repository"
	"github.com/evgenyd/docs-metadata-enhancer/internal/server"
	"github.com/evgenyd/docs-metadata-enhancer/internal/textproc"
	"github.com/evgenyd/docs-metadata-enhancer/internal/wikidata"
)

func main() {
	_ = godotenv.Load()

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

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	docsRepo := repository.NewDocumentRepository(entc, logger)
	relationsRepo := repository.NewRelationRepository(entc, logger)

	extractor := loader.NewExtractor(loader.Config{
		Soffice:  getenv("SOFFICE_BIN", "soffice"),
		Antiword: getenv("ANTIWORD_BIN", "antiword"),
		Catdoc:   getenv("CATDOC_BIN", "catdoc"),
		Unrtf:    getenv("UNRTF_BIN", "unrtf"),
	}, logger)
	stopwords := textproc.NewStopwords(cfg.Text.StopwordDir, logger)

	llmClient := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	known, err := wikidata.LoadKnownEntities(cfg.Wikidata.KnownEntities)
	if err != nil {
		logger.Error("failed to load known entities file", "path", cfg.Wikidata.KnownEntities, "error", err)
		os.Exit(1)
	}
	wdClient := wikidata.NewClient(cfg.Wikidata, logger)
	limiter := rate.NewLimiter(rate.Every(cfg.Wikidata.VerifyDelay), 1)
	linker := wikidata.NewLinker(wdClient, wikidata.NewLinkCache(), known, limiter, logger)

	extraction := pipeline.NewExtraction(extractor, stopwords, llmClient, llmClient, docsRepo, cfg.Text, logger)
	enrichment := pipeline.NewEnrichment(linker, wdClient, docsRepo, relationsRepo, logger)
	resync := pipeline.NewResync(wdClient, relationsRepo, logger)
	processor := pipeline.NewProcessor(docsRepo, extraction, enrichment, resync, logger)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(4),
		async.WithQueueSize(256),
		async.WithProcessTimeout(10*time.Minute),
		async.WithRetries(2),
	)

	grpcServer := grpc.NewServer()
	v1.RegisterDocumentsServiceServer(grpcServer, server.NewDocumentsService(docsRepo, relationsRepo, logger))
	v1.RegisterProcessingServiceServer(grpcServer, server.NewProcessingService(docsRepo, queue, logger))
	v1.RegisterExportServiceServer(grpcServer, server.NewExportService(export.NewService(docsRepo, logger), logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("docs-metadata-enhancer listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
