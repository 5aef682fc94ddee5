package loader

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
)

// probeLen is how many leading bytes decide the encoding of a plain text
// file. Enough to catch a wrong codepage without scanning the whole file.
const probeLen = 100

// loadTXT reads a plain text file, probing utf-8 first, then windows-1251,
// then latin-1 which accepts any byte sequence.
func (e *Extractor) loadTXT(_ context.Context, path string) ([]Segment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read txt: %v: %w", err, common.ErrExtractionFailed)
	}
	text, enc := decodeText(raw)
	e.log.Debug("loader.txt.decoded", "path", path, "encoding", enc, "chars", len(text))
	return []Segment{{Text: text, Page: 1}}, nil
}

func decodeText(raw []byte) (string, string) {
	probe := raw
	if len(probe) > probeLen {
		// the cut may split a multi-byte rune; drop the partial tail so a
		// valid utf-8 file is not misread as a legacy codepage
		probe = trimPartialRune(probe[:probeLen])
	}
	if utf8.Valid(probe) {
		return string(raw), "utf-8"
	}
	if s, err := charmap.Windows1251.NewDecoder().Bytes(raw); err == nil && !hasReplacement(s) {
		return string(s), "windows-1251"
	}
	s, _ := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	return string(s), "latin-1"
}

// trimPartialRune removes an incomplete trailing utf-8 sequence left by a
// byte-count cut. Genuinely invalid bytes are kept so codepage detection
// still sees them.
func trimPartialRune(b []byte) []byte {
	i := len(b)
	for j := 0; j < utf8.UTFMax-1 && i > 0 && b[i-1]&0xC0 == 0x80; j++ {
		i--
	}
	if i == 0 {
		return b
	}
	lead := b[i-1]
	var n int
	switch {
	case lead&0x80 == 0x00:
		n = 1
	case lead&0xE0 == 0xC0:
		n = 2
	case lead&0xF0 == 0xE0:
		n = 3
	case lead&0xF8 == 0xF0:
		n = 4
	default:
		return b
	}
	if i-1+n > len(b) {
		return b[:i-1]
	}
	return b
}

func hasReplacement(b []byte) bool {
	for _, r := range string(b) {
		if r == utf8.RuneError {
			return true
		}
	}
	return false
}
