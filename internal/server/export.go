package server

import (
	"context"
	"log/slog"
	"strings"

	v1 "github.com/evgenyd/docs-metadata-enhancer/gen/proto/enhancer/v1"
	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
	"github.com/evgenyd/docs-metadata-enhancer/internal/export"
)

type ExportService struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportService(svc *export.Service, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{svc: svc, logger: logger}
}

func (s *ExportService) ExportDocuments(ctx context.Context, req *v1.ExportDocumentsRequest) (*v1.ExportDocumentsResponse, error) {
	owner := strings.TrimSpace(req.GetOwner())
	xlsx, err := s.svc.ExportDocumentsXLSX(ctx, owner)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "owner", owner, "err", err)
		return nil, common.InternalError(err.Error())
	}
	return &v1.ExportDocumentsResponse{Xlsx: xlsx}, nil
}
