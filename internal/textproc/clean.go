// Package textproc prepares extracted document text for the model: whitespace
// normalization, stopword removal and bounded overlapping chunking.
package textproc

import (
	"regexp"
	"strings"
)

var (
	newlineRuns = regexp.MustCompile(`\n+`)
	spaceRuns   = regexp.MustCompile(`\s+`)
)

// Clean collapses newline runs, then all whitespace runs to single spaces and
// trims the ends. Best-effort normalization: it never fails and never drops
// non-whitespace content.
func Clean(text string) string {
	text = newlineRuns.ReplaceAllString(text, "\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
