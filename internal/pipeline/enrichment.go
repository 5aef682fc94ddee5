package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent"
	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
	"github.com/evgenyd/docs-metadata-enhancer/internal/llm"
	"github.com/evgenyd/docs-metadata-enhancer/internal/repository"
	"github.com/evgenyd/docs-metadata-enhancer/internal/wikidata"
)

// Linker abstracts the entity linker for tests.
type Linker interface {
	PrepareBatch(ctx context.Context)
	Link(ctx context.Context, name string, et constants.EntityType) (wikidata.LinkResult, error)
}

// EntityFetcher retrieves entity detail for persistence.
type EntityFetcher interface {
	FetchEntity(ctx context.Context, qid string) (*wikidata.EntityData, error)
}

// Enrichment links every eligible metadata value to the knowledge base and
// persists the enriched metadata, the field-value-QID mirror, and the
// relation rows.
type Enrichment struct {
	linker    Linker
	fetcher   EntityFetcher
	docs      repository.DocumentRepository
	relations repository.RelationRepository
	log       *slog.Logger
}

func NewEnrichment(
	linker Linker,
	fetcher EntityFetcher,
	docs repository.DocumentRepository,
	relations repository.RelationRepository,
	logger *slog.Logger,
) *Enrichment {
	if logger == nil {
		logger = slog.Default()
	}
	return &Enrichment{
		linker:    linker,
		fetcher:   fetcher,
		docs:      docs,
		relations: relations,
		log:       logger,
	}
}

// Run enriches one document's already-extracted metadata. Individual lookup
// failures degrade to unlinked values; the stage fails only when the
// document has no metadata or persistence breaks.
func (p *Enrichment) Run(ctx context.Context, doc *ent.Document) error {
	if len(doc.Metadata) == 0 {
		return fmt.Errorf("document has no extracted metadata: %w", common.ErrInvalidInput)
	}
	set, err := llm.ParseReply(string(doc.Metadata))
	if err != nil {
		return fmt.Errorf("parse stored metadata: %w", err)
	}

	p.linker.PrepareBatch(ctx)

	metaWikidata := make(map[string]map[string]string)
	linked := 0

	for _, field := range constants.MetadataFields {
		values := set.Get(field).Strings()
		if len(values) == 0 {
			continue
		}
		et := constants.EntityTypeForField(field)

		items := make([]llm.LinkedItem, 0, len(values))
		for _, value := range values {
			item := llm.LinkedItem{Name: value}
			r, err := p.linker.Link(ctx, value, et)
			if err != nil {
				p.log.Warn("pipeline.enrich.link_error",
					"document_id", doc.ID, "field", field, "value", value, "error", err)
			}
			if r.QID != "" {
				item.Wikidata = r.QID
				if metaWikidata[field] == nil {
					metaWikidata[field] = make(map[string]string)
				}
				metaWikidata[field][value] = r.QID
				linked++

				if err := p.persistRelation(ctx, doc, field, value, r); err != nil {
					p.log.Warn("pipeline.enrich.persist_failed",
						"document_id", doc.ID, "field", field, "value", value,
						"qid", r.QID, "error", err)
				}
			}
			items = append(items, item)
		}

		// scalars stay plain strings in the metadata object; their links
		// live in meta_wikidata and the relation rows
		if constants.IsListField(field) {
			set.SetLinked(field, items)
		}
	}

	metadata, err := set.MarshalMetadata()
	if err != nil {
		return fmt.Errorf("marshal enriched metadata: %w", err)
	}
	if err := p.docs.SaveEnrichment(ctx, doc.ID, metadata, metaWikidata); err != nil {
		return fmt.Errorf("save enrichment: %w", err)
	}

	p.log.Info("pipeline.enrich.ok", "document_id", doc.ID, "linked", linked)
	return nil
}

func (p *Enrichment) persistRelation(ctx context.Context, doc *ent.Document, field, value string, r wikidata.LinkResult) error {
	_, err := p.relations.LinkEntity(ctx, &repository.LinkEntityRequest{
		DocumentID: doc.ID,
		QID:        r.QID,
		Fetch: func(ctx context.Context) (*wikidata.EntityData, error) {
			return p.fetcher.FetchEntity(ctx, r.QID)
		},
		FieldCategory: field,
		Name:          value,
		FieldKey:      field,
		FieldValue:    value,
		Confidence:    float32(r.Confidence),
		Context:       r.Context,
	})
	return err
}
