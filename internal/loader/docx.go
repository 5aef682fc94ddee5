package loader

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
)

// loadDOCX reads word/document.xml out of the OOXML container and collects
// the run text, one paragraph per line, as a single segment.
func (e *Extractor) loadDOCX(_ context.Context, path string) ([]Segment, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx container: %v: %w", err, common.ErrExtractionFailed)
	}
	defer func() {
		if cerr := zr.Close(); cerr != nil {
			e.log.Warn("loader.docx.close_error", "path", path, "error", cerr)
		}
	}()

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return nil, fmt.Errorf("docx missing word/document.xml: %w", common.ErrExtractionFailed)
	}

	rc, err := doc.Open()
	if err != nil {
		return nil, fmt.Errorf("open document.xml: %v: %w", err, common.ErrExtractionFailed)
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			e.log.Warn("loader.docx.close_error", "path", path, "error", cerr)
		}
	}()

	text, err := wordprocessingText(rc)
	if err != nil {
		return nil, fmt.Errorf("parse document.xml: %v: %w", err, common.ErrExtractionFailed)
	}
	return []Segment{{Text: text, Page: 1}}, nil
}

// wordprocessingText walks the WordprocessingML token stream, keeping the
// character data of <w:t> runs and turning paragraph ends into newlines.
func wordprocessingText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			case "tab":
				b.WriteByte(' ')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
