package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/evgenyd/docs-metadata-enhancer/gen/ent"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/entityrelation"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/knowledgeentity"
)

// LinkEntityRequest records one linked mention of a knowledge entity in a
// document's metadata.
type LinkEntityRequest struct {
	DocumentID    uuid.UUID
	QID           string
	Fetch         FetchFunc
	FieldCategory string
	Name          string
	FieldKey      string
	FieldValue    string
	Confidence    float32
	Context       string
}

type RelationRepository interface {
	// LinkEntity performs the entity get-or-create and the relation
	// get-or-create in one transaction, so a crash between the two cannot
	// leave a relation pointing at a missing entity. Idempotent on the
	// (document, entity, field_category, field_key, field_value) key.
	LinkEntity(ctx context.Context, req *LinkEntityRequest) (*ent.EntityRelation, error)
	ListForDocument(ctx context.Context, docID uuid.UUID) ([]*ent.EntityRelation, error)
	DeleteForDocument(ctx context.Context, docID uuid.UUID) (int, error)
}

type relationRepository struct {
	client *ent.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewRelationRepository(client *ent.Client, logger *slog.Logger) RelationRepository {
	return &relationRepository{client: client, logger: logger, now: time.Now}
}

func (r *relationRepository) LinkEntity(ctx context.Context, req *LinkEntityRequest) (*ent.EntityRelation, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	rel, err := r.linkInTx(ctx, tx, req)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("rollback failed", "error", rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit link: %w", err)
	}
	return rel, nil
}

func (r *relationRepository) linkInTx(ctx context.Context, tx *ent.Tx, req *LinkEntityRequest) (*ent.EntityRelation, error) {
	entity, err := r.entityInTx(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	existing, err := tx.EntityRelation.Query().
		Where(
			entityrelation.DocumentID(req.DocumentID),
			entityrelation.EntityID(entity.ID),
			entityrelation.FieldCategory(req.FieldCategory),
			entityrelation.FieldKey(req.FieldKey),
			entityrelation.FieldValue(req.FieldValue),
		).
		Only(ctx)
	if err == nil {
		// second attempt is an update, not an insert
		return existing.Update().
			SetConfidence(req.Confidence).
			SetContext(req.Context).
			Save(ctx)
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	rel, err := tx.EntityRelation.Create().
		SetDocumentID(req.DocumentID).
		SetEntityID(entity.ID).
		SetFieldCategory(req.FieldCategory).
		SetName(req.Name).
		SetFieldKey(req.FieldKey).
		SetFieldValue(req.FieldValue).
		SetConfidence(req.Confidence).
		SetContext(req.Context).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	r.logger.Info("entity linked",
		"document_id", req.DocumentID,
		"qid", req.QID,
		"field", req.FieldCategory,
		"value", req.FieldValue,
		"confidence", req.Confidence,
	)
	return rel, nil
}

// entityInTx mirrors EntityRepository.GetOrCreate inside the transaction.
func (r *relationRepository) entityInTx(ctx context.Context, tx *ent.Tx, req *LinkEntityRequest) (*ent.KnowledgeEntity, error) {
	existing, err := tx.KnowledgeEntity.Query().
		Where(knowledgeentity.Qid(req.QID)).
		Only(ctx)
	switch {
	case err == nil:
		fresh := (existing.LabelRu != "" || existing.LabelEn != "") &&
			r.now().Sub(existing.UpdatedAt) <= staleAfter
		if fresh {
			return existing, nil
		}
	case !ent.IsNotFound(err):
		return nil, err
	}

	data, err := req.Fetch(ctx)
	if err != nil {
		if existing != nil {
			return existing, nil
		}
		return nil, fmt.Errorf("fetch entity %s: %w", req.QID, err)
	}
	props, err := json.Marshal(data.Properties)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return existing.Update().
			SetLabelRu(data.LabelRU).
			SetLabelEn(data.LabelEN).
			SetDescriptionRu(data.DescriptionRU).
			SetDescriptionEn(data.DescriptionEN).
			SetProperties(props).
			Save(ctx)
	}
	return tx.KnowledgeEntity.Create().
		SetQid(req.QID).
		SetLabelRu(data.LabelRU).
		SetLabelEn(data.LabelEN).
		SetDescriptionRu(data.DescriptionRU).
		SetDescriptionEn(data.DescriptionEN).
		SetProperties(props).
		Save(ctx)
}

func (r *relationRepository) ListForDocument(ctx context.Context, docID uuid.UUID) ([]*ent.EntityRelation, error) {
	return r.client.EntityRelation.Query().
		Where(entityrelation.DocumentID(docID)).
		WithEntity().
		Order(entityrelation.ByCreatedAt()).
		All(ctx)
}

func (r *relationRepository) DeleteForDocument(ctx context.Context, docID uuid.UUID) (int, error) {
	n, err := r.client.EntityRelation.Delete().
		Where(entityrelation.DocumentID(docID)).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.logger.Info("relations cleared", "document_id", docID, "count", n)
	}
	return n, nil
}
