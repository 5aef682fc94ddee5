package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
)

// loadDOC converts a legacy binary Word file through a chain of external
// converters, taking the first that produces output. The intermediate temp
// directory is removed on every path, including failures.
func (e *Extractor) loadDOC(ctx context.Context, path string) ([]Segment, error) {
	text, err := e.convertWithChain(ctx, path, []converter{
		{name: "soffice", run: e.sofficeToText},
		{name: "antiword", run: e.stdoutConverter(e.cfg.Antiword)},
		{name: "catdoc", run: e.stdoutConverter(e.cfg.Catdoc)},
	})
	if err != nil {
		return nil, err
	}
	return []Segment{{Text: text, Page: 1}}, nil
}

type converter struct {
	name string
	run  func(ctx context.Context, in, tmpDir string) (string, error)
}

// convertWithChain tries each converter in preference order and returns the
// first non-empty result. Fails only when every converter is unavailable or
// errors.
func (e *Extractor) convertWithChain(ctx context.Context, path string, chain []converter) (string, error) {
	tmpDir, err := os.MkdirTemp("", "dme-conv-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %v: %w", err, common.ErrExtractionFailed)
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			e.log.Warn("loader.convert.cleanup_error", "dir", tmpDir, "error", rerr)
		}
	}()

	var lastErr error
	for _, c := range chain {
		text, err := c.run(ctx, path, tmpDir)
		if err != nil {
			e.log.Warn("loader.convert.attempt_failed", "converter", c.name, "path", path, "error", err)
			lastErr = err
			continue
		}
		if strings.TrimSpace(text) == "" {
			e.log.Warn("loader.convert.empty_output", "converter", c.name, "path", path)
			lastErr = fmt.Errorf("%s produced empty output", c.name)
			continue
		}
		e.log.Info("loader.convert.ok", "converter", c.name, "path", path, "chars", len(text))
		return text, nil
	}
	return "", fmt.Errorf("all converters failed for %s: %v: %w", path, lastErr, common.ErrExtractionFailed)
}

// sofficeToText runs LibreOffice headless conversion into tmpDir and reads
// the produced <base>.txt file.
func (e *Extractor) sofficeToText(ctx context.Context, in, tmpDir string) (string, error) {
	if _, _, err := e.runner.Run(ctx, e.cfg.Soffice, e.log,
		"--headless", "--convert-to", "txt", in, "--outdir", tmpDir); err != nil {
		return "", err
	}
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	out := filepath.Join(tmpDir, base+".txt")
	b, err := os.ReadFile(out)
	if err != nil {
		return "", fmt.Errorf("converted file missing: %w", err)
	}
	return string(b), nil
}

// stdoutConverter adapts converters that print plain text to stdout.
func (e *Extractor) stdoutConverter(bin string, extraArgs ...string) func(context.Context, string, string) (string, error) {
	return func(ctx context.Context, in, _ string) (string, error) {
		args := append(append([]string{}, extraArgs...), in)
		out, _, err := e.runner.Run(ctx, bin, e.log, args...)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}
