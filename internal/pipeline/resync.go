package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/evgenyd/docs-metadata-enhancer/gen/ent"
	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
	"github.com/evgenyd/docs-metadata-enhancer/internal/llm"
	"github.com/evgenyd/docs-metadata-enhancer/internal/repository"
	"github.com/evgenyd/docs-metadata-enhancer/internal/wikidata"
)

// Resync rebuilds the relation rows from the document's embedded
// field-value-QID links, for use after manual metadata edits. Relations whose
// value no longer appears in the current metadata are dropped.
type Resync struct {
	fetcher   EntityFetcher
	relations repository.RelationRepository
	log       *slog.Logger
}

func NewResync(fetcher EntityFetcher, relations repository.RelationRepository, logger *slog.Logger) *Resync {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resync{fetcher: fetcher, relations: relations, log: logger}
}

func (p *Resync) Run(ctx context.Context, doc *ent.Document) error {
	if len(doc.Metadata) == 0 {
		return fmt.Errorf("document has no extracted metadata: %w", common.ErrInvalidInput)
	}
	set, err := llm.ParseReply(string(doc.Metadata))
	if err != nil {
		return fmt.Errorf("parse stored metadata: %w", err)
	}

	cleared, err := p.relations.DeleteForDocument(ctx, doc.ID)
	if err != nil {
		return fmt.Errorf("clear relations: %w", err)
	}

	rebuilt, dropped := 0, 0
	for field, links := range doc.MetaWikidata {
		current := make(map[string]struct{})
		for _, v := range set.Get(field).Strings() {
			current[v] = struct{}{}
		}
		for value, qid := range links {
			if _, ok := current[value]; !ok {
				dropped++
				continue
			}
			_, err := p.relations.LinkEntity(ctx, &repository.LinkEntityRequest{
				DocumentID:    doc.ID,
				QID:           qid,
				Fetch:         p.fetchFor(qid),
				FieldCategory: field,
				Name:          value,
				FieldKey:      field,
				FieldValue:    value,
				Confidence:    1.0,
				Context:       "resynced from embedded links",
			})
			if err != nil {
				p.log.Warn("pipeline.resync.link_failed",
					"document_id", doc.ID, "field", field, "value", value,
					"qid", qid, "error", err)
				continue
			}
			rebuilt++
		}
	}

	p.log.Info("pipeline.resync.ok",
		"document_id", doc.ID,
		"cleared", cleared,
		"rebuilt", rebuilt,
		"dropped", dropped,
	)
	return nil
}

func (p *Resync) fetchFor(qid string) repository.FetchFunc {
	return func(ctx context.Context) (*wikidata.EntityData, error) {
		return p.fetcher.FetchEntity(ctx, qid)
	}
}
