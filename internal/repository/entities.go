package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/evgenyd/docs-metadata-enhancer/gen/ent"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/knowledgeentity"
	"github.com/evgenyd/docs-metadata-enhancer/internal/wikidata"
)

// staleAfter is the freshness threshold for persisted entity data.
const staleAfter = 30 * 24 * time.Hour

// FetchFunc retrieves entity detail from the knowledge base on demand, so the
// repository only pays for a remote fetch when the row is absent or stale.
type FetchFunc func(ctx context.Context) (*wikidata.EntityData, error)

type EntityRepository interface {
	// GetOrCreate returns the entity row for a QID, creating or refreshing it
	// from fetch when absent, stale or missing labels.
	GetOrCreate(ctx context.Context, qid string, fetch FetchFunc) (*ent.KnowledgeEntity, error)
	GetByQID(ctx context.Context, qid string) (*ent.KnowledgeEntity, error)
}

type entityRepository struct {
	client *ent.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewEntityRepository(client *ent.Client, logger *slog.Logger) EntityRepository {
	return &entityRepository{client: client, logger: logger, now: time.Now}
}

func (r *entityRepository) GetByQID(ctx context.Context, qid string) (*ent.KnowledgeEntity, error) {
	return r.client.KnowledgeEntity.Query().
		Where(knowledgeentity.Qid(qid)).
		Only(ctx)
}

func (r *entityRepository) GetOrCreate(ctx context.Context, qid string, fetch FetchFunc) (*ent.KnowledgeEntity, error) {
	existing, err := r.GetByQID(ctx, qid)
	switch {
	case err == nil:
		if !r.needsRefresh(existing) {
			return existing, nil
		}
	case !ent.IsNotFound(err):
		return nil, err
	}

	data, err := fetch(ctx)
	if err != nil {
		// stale data beats no data
		if existing != nil {
			r.logger.Warn("entity refresh failed, keeping stale row", "qid", qid, "error", err)
			return existing, nil
		}
		return nil, err
	}

	props, err := json.Marshal(data.Properties)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		updated, err := existing.Update().
			SetLabelRu(data.LabelRU).
			SetLabelEn(data.LabelEN).
			SetDescriptionRu(data.DescriptionRU).
			SetDescriptionEn(data.DescriptionEN).
			SetProperties(props).
			Save(ctx)
		if err != nil {
			return nil, err
		}
		r.logger.Info("entity refreshed", "qid", qid)
		return updated, nil
	}

	created, err := r.client.KnowledgeEntity.Create().
		SetQid(qid).
		SetLabelRu(data.LabelRU).
		SetLabelEn(data.LabelEN).
		SetDescriptionRu(data.DescriptionRU).
		SetDescriptionEn(data.DescriptionEN).
		SetProperties(props).
		Save(ctx)
	if ent.IsConstraintError(err) {
		// concurrent create of the same QID converges on the winner's row
		return r.GetByQID(ctx, qid)
	}
	if err != nil {
		return nil, err
	}
	r.logger.Info("entity created", "qid", qid, "label_ru", data.LabelRU)
	return created, nil
}

func (r *entityRepository) needsRefresh(e *ent.KnowledgeEntity) bool {
	if e.LabelRu == "" && e.LabelEn == "" {
		return true
	}
	return r.now().Sub(e.UpdatedAt) > staleAfter
}
