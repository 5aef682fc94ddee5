package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
	v1 "github.com/evgenyd/docs-metadata-enhancer/gen/proto/enhancer/v1"
	"github.com/evgenyd/docs-metadata-enhancer/internal/async"
	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
	"github.com/evgenyd/docs-metadata-enhancer/internal/repository"
)

type ProcessingService struct {
	v1.UnimplementedProcessingServiceServer
	docs   repository.DocumentRepository
	queue  async.Queue
	logger *slog.Logger
}

func NewProcessingService(docs repository.DocumentRepository, queue async.Queue, logger *slog.Logger) *ProcessingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProcessingService{docs: docs, queue: queue, logger: logger}
}

func (s *ProcessingService) RunExtraction(ctx context.Context, req *v1.RunStageRequest) (*v1.RunStageResponse, error) {
	return s.enqueue(ctx, req.GetDocumentId(), async.StageExtraction)
}

// RunEnrichment requires that extraction already produced metadata; the
// check happens in the pipeline, not here, so a queued extraction that has
// not finished yet fails the job rather than the RPC.
func (s *ProcessingService) RunEnrichment(ctx context.Context, req *v1.RunStageRequest) (*v1.RunStageResponse, error) {
	return s.enqueue(ctx, req.GetDocumentId(), async.StageEnrichment)
}

func (s *ProcessingService) ResyncLinks(ctx context.Context, req *v1.RunStageRequest) (*v1.RunStageResponse, error) {
	return s.enqueue(ctx, req.GetDocumentId(), async.StageResync)
}

func (s *ProcessingService) enqueue(ctx context.Context, rawID string, stage async.Stage) (*v1.RunStageResponse, error) {
	id, err := parseDocumentID(rawID)
	if err != nil {
		s.logger.Error("invalid document_id format", "document_id", rawID, "stage", stage, "error", err)
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}

	doc, err := s.docs.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		return nil, common.InternalErrorf("get document: %v", err)
	}
	if doc.Status == string(constants.DocStatusProcessing) {
		return nil, common.InvalidArgumentError("document is already being processed")
	}

	job := async.Job{
		DocumentID:  id,
		Stage:       stage,
		SubmittedAt: time.Now(),
		TraceID:     uuid.NewString(),
	}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		s.logger.Error("failed to enqueue document", "document_id", id, "stage", stage, "error", err)
		return nil, common.InternalErrorf("enqueue: %v", err)
	}
	s.logger.Info("stage queued", "document_id", id, "stage", stage, "trace_id", job.TraceID)

	return &v1.RunStageResponse{
		DocumentId: id.String(),
		Stage:      string(stage),
		Queued:     true,
	}, nil
}
