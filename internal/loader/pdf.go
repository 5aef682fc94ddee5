package loader

import (
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
)

// loadPDF extracts the text layer page by page, one segment per page.
func (e *Extractor) loadPDF(_ context.Context, path string) ([]Segment, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %v: %w", err, common.ErrExtractionFailed)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.log.Warn("loader.pdf.close_error", "path", path, "error", cerr)
		}
	}()

	total := r.NumPage()
	segs := make([]Segment, 0, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			e.log.Warn("loader.pdf.page_error", "path", path, "page", i, "error", err)
			continue
		}
		segs = append(segs, Segment{Text: text, Page: i})
	}
	return segs, nil
}
