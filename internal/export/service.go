// Package export produces XLSX workbooks of documents and their extracted
// metadata for downstream tooling.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent"
	"github.com/evgenyd/docs-metadata-enhancer/internal/llm"
	"github.com/evgenyd/docs-metadata-enhancer/internal/repository"
)

// Service is a tiny façade over the document repository that produces XLSX
// bytes for exports.
type Service struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewService(docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, logger: logger}
}

// ExportDocumentsXLSX returns a workbook with one row per document: status,
// then one column per canonical metadata field. List values are joined with
// "; "; linked values render as "name (QID)".
func (s *Service) ExportDocumentsXLSX(ctx context.Context, owner string) ([]byte, error) {
	start := time.Now()

	docs, err := s.docs.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Name", "Format", "Status", "Owner"}
	headers = append(headers, constants.MetadataFields...)
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range docs {
		values := []string{d.Name, d.Format, d.Status, d.Owner}
		values = append(values, metadataColumns(d)...)
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"owner", owner,
		"documents", len(docs),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// metadataColumns renders each canonical field of one document as a cell.
func metadataColumns(d *ent.Document) []string {
	out := make([]string, 0, len(constants.MetadataFields))
	if len(d.Metadata) == 0 {
		return make([]string, len(constants.MetadataFields))
	}
	set, err := llm.ParseReply(string(d.Metadata))
	if err != nil {
		return make([]string, len(constants.MetadataFields))
	}

	for _, field := range constants.MetadataFields {
		values := set.Get(field).Strings()
		links := d.MetaWikidata[field]
		parts := make([]string, 0, len(values))
		for _, v := range values {
			if qid, ok := links[v]; ok {
				parts = append(parts, fmt.Sprintf("%s (%s)", v, qid))
			} else {
				parts = append(parts, v)
			}
		}
		out = append(out, strings.Join(parts, "; "))
	}
	return out
}
