// Package pipeline sequences the document stages: extraction (load,
// normalize, chunk, per-chunk model calls, merge, finalize) and enrichment
// (entity linking over extracted metadata), plus the relation re-sync.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/evgenyd/docs-metadata-enhancer/gen/ent"
	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
	"github.com/evgenyd/docs-metadata-enhancer/internal/llm"
	"github.com/evgenyd/docs-metadata-enhancer/internal/loader"
	"github.com/evgenyd/docs-metadata-enhancer/internal/repository"
	"github.com/evgenyd/docs-metadata-enhancer/internal/textproc"
)

// Loader abstracts the document loader for tests.
type Loader interface {
	Load(ctx context.Context, path string) ([]loader.Segment, error)
}

// StopwordRemover abstracts the stopword step; its failure only skips the
// optimization, never the pipeline.
type StopwordRemover interface {
	Remove(ctx context.Context, text string) (string, error)
}

// Extraction runs one document through load, normalize, chunk, extract,
// merge and finalize, and persists the finalized metadata.
type Extraction struct {
	loader    Loader
	stopwords StopwordRemover
	extractor llm.Extractor
	finalizer llm.Finalizer
	docs      repository.DocumentRepository
	cfg       common.TextConfig
	log       *slog.Logger
}

func NewExtraction(
	ld Loader,
	stopwords StopwordRemover,
	extractor llm.Extractor,
	finalizer llm.Finalizer,
	docs repository.DocumentRepository,
	cfg common.TextConfig,
	logger *slog.Logger,
) *Extraction {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extraction{
		loader:    ld,
		stopwords: stopwords,
		extractor: extractor,
		finalizer: finalizer,
		docs:      docs,
		cfg:       cfg,
		log:       logger,
	}
}

// Run executes the extraction pipeline for one document. A chunk-level model
// failure skips the chunk; the stage fails only when no chunk yields
// entities or the finalizer gives up.
func (p *Extraction) Run(ctx context.Context, doc *ent.Document) error {
	segs, err := p.loader.Load(ctx, doc.SourcePath)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	text := textproc.Clean(loader.CombineSegments(segs))
	p.log.Info("pipeline.extract.text_ready",
		"document_id", doc.ID,
		"segments", len(segs),
		"chars", len(text),
		"tokens", textproc.CountTokens(text),
	)

	if p.stopwords != nil {
		filtered, err := p.stopwords.Remove(ctx, text)
		if err != nil {
			p.log.Warn("pipeline.extract.stopwords_skipped", "document_id", doc.ID, "error", err)
		} else {
			text = filtered
		}
	}

	chunks := textproc.Split(text, p.cfg.ChunkSize, p.cfg.ChunkOverlap)
	if len(chunks) == 0 {
		return fmt.Errorf("no text after normalization: %w", common.ErrExtractionFailed)
	}
	p.log.Info("pipeline.extract.chunked", "document_id", doc.ID, "chunks", len(chunks))

	// chunks run sequentially in document order; list fields must preserve
	// the order entities appear in the source
	sets := make([]*llm.EntitySet, len(chunks))
	for i, chunk := range chunks {
		set, err := p.extractor.Extract(ctx, chunk)
		if err != nil {
			p.log.Warn("pipeline.extract.chunk_failed",
				"document_id", doc.ID, "chunk", i, "error", err)
			continue
		}
		sets[i] = set
	}

	merged, err := llm.Merge(sets)
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}

	final, err := p.finalizer.Finalize(ctx, merged)
	if err != nil {
		return fmt.Errorf("finalize: %w", err)
	}

	metadata, err := final.MarshalMetadata()
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	if err := llm.ValidateMetadata(metadata); err != nil {
		return fmt.Errorf("%v: %w", err, common.ErrMalformedModelOutput)
	}
	if err := p.docs.SaveMetadata(ctx, doc.ID, metadata); err != nil {
		return fmt.Errorf("save metadata: %w", err)
	}

	p.log.Info("pipeline.extract.ok", "document_id", doc.ID)
	return nil
}
