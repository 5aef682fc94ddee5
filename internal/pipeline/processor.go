package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent"
	"github.com/evgenyd/docs-metadata-enhancer/internal/repository"
)

// Processor is the entry point the task scheduler invokes. It owns the
// status contract: processing before a stage, success clears the error text,
// failed records a short human-readable error. Retry policy lives in the
// scheduler, not here.
type Processor struct {
	docs       repository.DocumentRepository
	extraction *Extraction
	enrichment *Enrichment
	resync     *Resync
	log        *slog.Logger
}

func NewProcessor(
	docs repository.DocumentRepository,
	extraction *Extraction,
	enrichment *Enrichment,
	resync *Resync,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		docs:       docs,
		extraction: extraction,
		enrichment: enrichment,
		resync:     resync,
		log:        logger,
	}
}

// RunExtraction executes the extraction pipeline for one document id.
func (p *Processor) RunExtraction(ctx context.Context, id uuid.UUID) error {
	return p.runStage(ctx, id, "extraction", p.extraction.Run)
}

// RunEnrichment executes the entity-linking pipeline for one document id.
func (p *Processor) RunEnrichment(ctx context.Context, id uuid.UUID) error {
	return p.runStage(ctx, id, "enrichment", p.enrichment.Run)
}

// RunResync rebuilds relation rows from the embedded links.
func (p *Processor) RunResync(ctx context.Context, id uuid.UUID) error {
	return p.runStage(ctx, id, "resync", p.resync.Run)
}

func (p *Processor) runStage(ctx context.Context, id uuid.UUID, stage string, run func(context.Context, *ent.Document) error) error {
	doc, err := p.docs.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := p.docs.SetStatus(ctx, id, constants.DocStatusProcessing, ""); err != nil {
		return err
	}

	if err := run(ctx, doc); err != nil {
		p.log.Error("pipeline.stage_failed", "document_id", id, "stage", stage, "error", err)
		if serr := p.docs.SetStatus(ctx, id, constants.DocStatusFailed, stage+": "+err.Error()); serr != nil {
			p.log.Error("pipeline.status_update_failed", "document_id", id, "error", serr)
		}
		return err
	}

	if err := p.docs.SetStatus(ctx, id, constants.DocStatusSuccess, ""); err != nil {
		return err
	}
	p.log.Info("pipeline.stage_ok", "document_id", id, "stage", stage)
	return nil
}
