package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
	"github.com/evgenyd/docs-metadata-enhancer/internal/export"
	"github.com/evgenyd/docs-metadata-enhancer/internal/llm/openai"
	"github.com/evgenyd/docs-metadata-enhancer/internal/loader"
	"github.com/evgenyd/docs-metadata-enhancer/internal/pipeline"
	"github.com/evgenyd/docs-metadata-enhancer/internal/repository"
	"github.com/evgenyd/docs-metadata-enhancer/internal/textproc"
	"github.com/evgenyd/docs-metadata-enhancer/internal/wikidata"
)

// printError prints to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir    = flag.String("dir", "", "directory with documents to process (required)")
		out    = flag.String("out", "", "output XLSX file path (defaults next to --dir)")
		dsn    = flag.String("dsn", "", "SQLite DSN, in-memory when empty")
		enrich = flag.Bool("enrich", false, "run entity linking after extraction")
		owner  = flag.String("owner", "local-batch", "owner recorded on registered documents")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "documents.xlsx")
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(1)
	}

	entc, err := repository.OpenSQLite(ctx, *dsn, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := entc.Close(); err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
	}()

	docsRepo := repository.NewDocumentRepository(entc, logger)
	relationsRepo := repository.NewRelationRepository(entc, logger)

	extractor := loader.NewExtractor(loader.Config{}, logger)
	stopwords := textproc.NewStopwords(cfg.Text.StopwordDir, logger)
	llmClient := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	extraction := pipeline.NewExtraction(extractor, stopwords, llmClient, llmClient, docsRepo, cfg.Text, logger)

	var enrichment *pipeline.Enrichment
	var resync *pipeline.Resync
	var wdClient *wikidata.Client
	if *enrich {
		known, err := wikidata.LoadKnownEntities(cfg.Wikidata.KnownEntities)
		if err != nil {
			logger.Error("failed to load known entities file", "path", cfg.Wikidata.KnownEntities, "error", err)
			os.Exit(1)
		}
		wdClient = wikidata.NewClient(cfg.Wikidata, logger)
		limiter := rate.NewLimiter(rate.Every(cfg.Wikidata.VerifyDelay), 1)
		linker := wikidata.NewLinker(wdClient, wikidata.NewLinkCache(), known, limiter, logger)
		enrichment = pipeline.NewEnrichment(linker, wdClient, docsRepo, relationsRepo, logger)
		resync = pipeline.NewResync(wdClient, relationsRepo, logger)
	}
	processor := pipeline.NewProcessor(docsRepo, extraction, enrichment, resync, logger)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		logger.Error("failed to read input directory", "dir", *dir, "error", err)
		os.Exit(1)
	}

	processed := 0
	failures := 0
	skipped := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(*dir, entry.Name())
		format := constants.MapExtToFormat(filepath.Ext(entry.Name()))
		if format == "" {
			logger.Info("skipping unsupported file", "path", path)
			skipped++
			continue
		}

		doc, err := docsRepo.Create(ctx, &repository.CreateDocumentRequest{
			Name:       entry.Name(),
			SourcePath: path,
			Format:     format,
			Owner:      *owner,
		})
		if err != nil {
			logger.Error("failed to register document", "path", path, "error", err)
			failures++
			continue
		}

		logger.Info("processing document", "document_id", doc.ID, "path", path)
		if err := processor.RunExtraction(ctx, doc.ID); err != nil {
			logger.Error("extraction failed", "document_id", doc.ID, "error", err)
			failures++
			continue
		}
		if *enrich {
			if err := processor.RunEnrichment(ctx, doc.ID); err != nil {
				logger.Error("enrichment failed", "document_id", doc.ID, "error", err)
				failures++
				continue
			}
		}
		processed++
	}

	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(docsRepo, logger)
	xlsxBytes, err := exportService.ExportDocumentsXLSX(ctx, *owner)
	if err != nil {
		logger.Error("failed to export documents", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"processed", processed,
		"failures", failures,
		"skipped", skipped,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Skipped: %d\n", skipped)
	fmt.Printf("- Output: %s\n", *out)
}
