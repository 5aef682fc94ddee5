package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/document"
	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
)

// CreateDocumentRequest wraps parameters for registering an uploaded file.
type CreateDocumentRequest struct {
	Name       string
	SourcePath string
	Format     string
	Owner      string
}

type DocumentRepository interface {
	Create(ctx context.Context, req *CreateDocumentRequest) (*ent.Document, error)
	Get(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	List(ctx context.Context, owner string) ([]*ent.Document, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.DocStatus, procErr string) error
	SaveMetadata(ctx context.Context, id uuid.UUID, metadata json.RawMessage) error
	SaveEnrichment(ctx context.Context, id uuid.UUID, metadata json.RawMessage, metaWikidata map[string]map[string]string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) Create(ctx context.Context, req *CreateDocumentRequest) (*ent.Document, error) {
	doc, err := r.client.Document.Create().
		SetName(req.Name).
		SetSourcePath(req.SourcePath).
		SetFormat(req.Format).
		SetOwner(req.Owner).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "name", req.Name, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "id", doc.ID, "name", doc.Name, "format", doc.Format)
	return doc, nil
}

func (r *documentRepository) Get(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	doc, err := r.client.Document.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.WrapError(common.ErrNotFound, "document "+id.String())
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *documentRepository) List(ctx context.Context, owner string) ([]*ent.Document, error) {
	q := r.client.Document.Query()
	if owner != "" {
		q = q.Where(document.Owner(owner))
	}
	return q.Order(document.ByCreatedAt()).All(ctx)
}

// SetStatus implements the scheduler's status contract: processing before a
// stage, success clears the error text, failed records it.
func (r *documentRepository) SetStatus(ctx context.Context, id uuid.UUID, status constants.DocStatus, procErr string) error {
	upd := r.client.Document.UpdateOneID(id).SetStatus(string(status))
	switch status {
	case constants.DocStatusFailed:
		upd = upd.SetProcessingError(procErr)
	case constants.DocStatusSuccess:
		upd = upd.ClearProcessingError()
	}
	if err := upd.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.WrapError(common.ErrNotFound, "document "+id.String())
		}
		return err
	}
	r.logger.Info("document status", "id", id, "status", status, "error_text", procErr)
	return nil
}

func (r *documentRepository) SaveMetadata(ctx context.Context, id uuid.UUID, metadata json.RawMessage) error {
	return r.client.Document.UpdateOneID(id).
		SetMetadata(metadata).
		Exec(ctx)
}

func (r *documentRepository) SaveEnrichment(ctx context.Context, id uuid.UUID, metadata json.RawMessage, metaWikidata map[string]map[string]string) error {
	return r.client.Document.UpdateOneID(id).
		SetMetadata(metadata).
		SetMetaWikidata(metaWikidata).
		Exec(ctx)
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Document.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return common.WrapError(common.ErrNotFound, "document "+id.String())
	}
	return err
}
