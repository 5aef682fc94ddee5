package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
)

// Segment is one page or section of extracted plain text. Every extractor
// produces the same shape so downstream stages stay format-agnostic.
type Segment struct {
	Text string
	Page int // 1-based; always 1 for single-segment formats
}

// Config selects the external converter binaries for the legacy formats.
type Config struct {
	Soffice  string // LibreOffice binary, default "soffice"
	Antiword string
	Catdoc   string
	Unrtf    string
}

// Extractor converts a file path into text segments.
type Extractor struct {
	cfg    Config
	runner Runner
	log    *slog.Logger
}

type Option func(*Extractor)

// WithRunner substitutes the external-command runner (used by tests).
func WithRunner(r Runner) Option {
	return func(e *Extractor) { e.runner = r }
}

func NewExtractor(cfg Config, logger *slog.Logger, opts ...Option) *Extractor {
	if cfg.Soffice == "" {
		cfg.Soffice = "soffice"
	}
	if cfg.Antiword == "" {
		cfg.Antiword = "antiword"
	}
	if cfg.Catdoc == "" {
		cfg.Catdoc = "catdoc"
	}
	if cfg.Unrtf == "" {
		cfg.Unrtf = "unrtf"
	}
	if logger == nil {
		logger = slog.Default()
	}
	e := &Extractor{cfg: cfg, runner: execRunner{}, log: logger}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Load determines the format from the file extension and dispatches to the
// matching extractor. It returns at least one non-empty segment or an error
// wrapping ErrNotFound, ErrUnsupportedFormat or ErrExtractionFailed.
func (e *Extractor) Load(ctx context.Context, path string) ([]Segment, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, common.ErrNotFound)
	}

	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		return nil, fmt.Errorf("extension %q: %w", filepath.Ext(path), common.ErrUnsupportedFormat)
	}

	e.log.Info("loader.start", "path", path, "format", format)

	var (
		segs []Segment
		err  error
	)
	switch format {
	case constants.PDF:
		segs, err = e.loadPDF(ctx, path)
	case constants.DOCX:
		segs, err = e.loadDOCX(ctx, path)
	case constants.DOC:
		segs, err = e.loadDOC(ctx, path)
	case constants.TXT:
		segs, err = e.loadTXT(ctx, path)
	case constants.RTF:
		segs, err = e.loadRTF(ctx, path)
	}
	if err != nil {
		e.log.Error("loader.failed", "path", path, "format", format, "error", err)
		return nil, err
	}

	segs = dropEmpty(segs)
	if len(segs) == 0 {
		return nil, fmt.Errorf("%s produced no text: %w", format, common.ErrExtractionFailed)
	}

	e.log.Info("loader.ok", "path", path, "format", format, "segments", len(segs))
	return segs, nil
}

// CombineSegments joins segment texts with single spaces, preserving page
// order, for the normalization stage.
func CombineSegments(segs []Segment) string {
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}

func dropEmpty(segs []Segment) []Segment {
	out := segs[:0]
	for _, s := range segs {
		if strings.TrimSpace(s.Text) != "" {
			out = append(out, s)
		}
	}
	return out
}
