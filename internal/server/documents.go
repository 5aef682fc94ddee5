package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent"
	v1 "github.com/evgenyd/docs-metadata-enhancer/gen/proto/enhancer/v1"
	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
	"github.com/evgenyd/docs-metadata-enhancer/internal/repository"
)

type DocumentsService struct {
	v1.UnimplementedDocumentsServiceServer
	docs      repository.DocumentRepository
	relations repository.RelationRepository
	logger    *slog.Logger
}

func NewDocumentsService(docs repository.DocumentRepository, relations repository.RelationRepository, logger *slog.Logger) *DocumentsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentsService{docs: docs, relations: relations, logger: logger}
}

func (s *DocumentsService) CreateDocument(ctx context.Context, req *v1.CreateDocumentRequest) (*v1.Document, error) {
	path := strings.TrimSpace(req.GetSourcePath())
	if path == "" {
		s.logger.Error("create document request missing source_path")
		return nil, common.InvalidArgumentError("source_path is required")
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		name = filepath.Base(path)
	}

	format := strings.ToUpper(strings.TrimSpace(req.GetFormat()))
	if format == "" {
		format = constants.MapExtToFormat(filepath.Ext(path))
	}
	if format == "" || !slices.Contains(constants.FileFormats, format) {
		s.logger.Error("unsupported document format", "source_path", path, "format", req.GetFormat())
		return nil, common.InvalidArgumentError("format must be one of PDF, DOCX, DOC, TXT, RTF")
	}

	doc, err := s.docs.Create(ctx, &repository.CreateDocumentRequest{
		Name:       name,
		SourcePath: path,
		Format:     format,
		Owner:      strings.TrimSpace(req.GetOwner()),
	})
	if err != nil {
		return nil, common.InternalErrorf("create document: %v", err)
	}
	return toPBDocument(doc), nil
}

func (s *DocumentsService) GetDocument(ctx context.Context, req *v1.GetDocumentRequest) (*v1.Document, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		s.logger.Error("invalid document_id format", "document_id", req.GetDocumentId(), "error", err)
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}
	doc, err := s.docs.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		return nil, common.InternalErrorf("get document: %v", err)
	}
	return toPBDocument(doc), nil
}

func (s *DocumentsService) ListDocuments(ctx context.Context, req *v1.ListDocumentsRequest) (*v1.ListDocumentsResponse, error) {
	docs, err := s.docs.List(ctx, strings.TrimSpace(req.GetOwner()))
	if err != nil {
		return nil, common.InternalErrorf("list documents: %v", err)
	}
	out := make([]*v1.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, toPBDocument(d))
	}
	return &v1.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocumentsService) DeleteDocument(ctx context.Context, req *v1.DeleteDocumentRequest) (*v1.DeleteDocumentResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		s.logger.Error("invalid document_id format", "document_id", req.GetDocumentId(), "error", err)
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}
	if err := s.docs.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		return nil, common.InternalErrorf("delete document: %v", err)
	}
	s.logger.Info("document deleted", "document_id", id)
	return &v1.DeleteDocumentResponse{}, nil
}

func (s *DocumentsService) ListEntityLinks(ctx context.Context, req *v1.ListEntityLinksRequest) (*v1.ListEntityLinksResponse, error) {
	id, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		s.logger.Error("invalid document_id format", "document_id", req.GetDocumentId(), "error", err)
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}
	if _, err := s.docs.Get(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		return nil, common.InternalErrorf("get document: %v", err)
	}
	rels, err := s.relations.ListForDocument(ctx, id)
	if err != nil {
		return nil, common.InternalErrorf("list entity links: %v", err)
	}
	out := make([]*v1.EntityLink, 0, len(rels))
	for _, r := range rels {
		link := &v1.EntityLink{
			FieldCategory: r.FieldCategory,
			Name:          r.Name,
			FieldKey:      r.FieldKey,
			FieldValue:    r.FieldValue,
			Confidence:    r.Confidence,
			Context:       r.Context,
		}
		if r.Edges.Entity != nil {
			link.Qid = r.Edges.Entity.Qid
		}
		out = append(out, link)
	}
	return &v1.ListEntityLinksResponse{Links: out}, nil
}

func parseDocumentID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, errors.New("document_id is required")
	}
	return uuid.Parse(raw)
}

func toPBDocument(d *ent.Document) *v1.Document {
	out := &v1.Document{
		Id:         d.ID.String(),
		Name:       d.Name,
		SourcePath: d.SourcePath,
		Format:     d.Format,
		Status:     d.Status,
		Owner:      d.Owner,
		CreatedAt:  d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  d.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if len(d.Metadata) > 0 {
		out.MetadataJson = string(d.Metadata)
	}
	if len(d.MetaWikidata) > 0 {
		if raw, err := json.Marshal(d.MetaWikidata); err == nil {
			out.MetaWikidataJson = string(raw)
		}
	}
	if d.ProcessingError != nil {
		out.ProcessingError = *d.ProcessingError
	}
	return out
}
