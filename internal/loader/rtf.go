package loader

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
)

// loadRTF first tries a native control-word strip, which handles the vast
// majority of RTF files without shelling out. Files that yield nothing fall
// back to the external converter chain.
func (e *Extractor) loadRTF(ctx context.Context, path string) ([]Segment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rtf: %v: %w", err, common.ErrExtractionFailed)
	}
	if text := stripRTF(raw); strings.TrimSpace(text) != "" {
		return []Segment{{Text: text, Page: 1}}, nil
	}
	e.log.Warn("loader.rtf.native_empty", "path", path)

	text, err := e.convertWithChain(ctx, path, []converter{
		{name: "soffice", run: e.sofficeToText},
		{name: "unrtf", run: e.stdoutConverter(e.cfg.Unrtf, "--text")},
	})
	if err != nil {
		return nil, err
	}
	return []Segment{{Text: text, Page: 1}}, nil
}

// rtfSkipGroups are destination groups whose content is metadata or binary
// payload rather than document text.
var rtfSkipGroups = map[string]bool{
	"fonttbl":    true,
	"colortbl":   true,
	"stylesheet": true,
	"info":       true,
	"pict":       true,
	"object":     true,
	"header":     true,
	"footer":     true,
}

// stripRTF removes RTF control words and groups, keeping plain text. It
// understands \'hh byte escapes and \uN unicode escapes with their skip
// counts. Malformed input degrades to whatever text is recoverable.
func stripRTF(data []byte) string {
	var b strings.Builder
	skipDepth := 0 // depth at which a skip group started, 0 means not skipping
	depth := 0
	ucSkip := 1 // chars to skip after \uN, set by \ucN

	i := 0
	for i < len(data) {
		c := data[i]
		switch c {
		case '{':
			depth++
			i++
		case '}':
			if skipDepth != 0 && depth == skipDepth {
				skipDepth = 0
			}
			depth--
			i++
		case '\\':
			i++
			if i >= len(data) {
				break
			}
			switch {
			case data[i] == '\'':
				// hex escape, single byte in the document codepage
				if i+2 < len(data) {
					if n, err := strconv.ParseUint(string(data[i+1:i+3]), 16, 8); err == nil && skipDepth == 0 {
						b.WriteRune(rune(n))
					}
					i += 3
				} else {
					i = len(data)
				}
			case data[i] == '\\' || data[i] == '{' || data[i] == '}':
				if skipDepth == 0 {
					b.WriteByte(data[i])
				}
				i++
			case data[i] == '~':
				if skipDepth == 0 {
					b.WriteByte(' ')
				}
				i++
			case isRTFAlpha(data[i]):
				word, param, hasParam, next := readRTFControl(data, i)
				i = next
				switch word {
				case "par", "line", "sect", "page":
					if skipDepth == 0 {
						b.WriteByte('\n')
					}
				case "tab", "cell":
					if skipDepth == 0 {
						b.WriteByte(' ')
					}
				case "uc":
					if hasParam {
						ucSkip = param
					}
				case "u":
					if hasParam && skipDepth == 0 {
						b.WriteString(string(utf16.Decode([]uint16{uint16(param)})))
					}
					// consume the fallback chars that follow \uN
					for k := 0; k < ucSkip && i < len(data); k++ {
						if data[i] == '\\' && i+3 < len(data) && data[i+1] == '\'' {
							i += 4
						} else {
							i++
						}
					}
				default:
					if rtfSkipGroups[word] && skipDepth == 0 {
						skipDepth = depth
					}
				}
			default:
				i++
			}
		case '\r', '\n':
			i++
		default:
			if skipDepth == 0 {
				b.WriteByte(c)
			}
			i++
		}
	}
	return b.String()
}

func isRTFAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// readRTFControl parses a control word starting at data[i] and returns the
// word, its optional numeric parameter and the index past the control.
func readRTFControl(data []byte, i int) (word string, param int, hasParam bool, next int) {
	start := i
	for i < len(data) && isRTFAlpha(data[i]) {
		i++
	}
	word = string(data[start:i])

	numStart := i
	if i < len(data) && data[i] == '-' {
		i++
	}
	for i < len(data) && data[i] >= '0' && data[i] <= '9' {
		i++
	}
	if i > numStart {
		if n, err := strconv.Atoi(string(data[numStart:i])); err == nil {
			param, hasParam = n, true
		}
	}
	// a single space terminates the control word and is swallowed
	if i < len(data) && data[i] == ' ' {
		i++
	}
	return word, param, hasParam, i
}
