package textproc

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	in := "  Title\n\n\nof   the\tdocument \n body  "
	assert.Equal(t, "Title of the document body", Clean(in))
}

func TestCleanEmpty(t *testing.T) {
	assert.Equal(t, "", Clean("   \n\t  "))
}

func TestSplitShortTextSingleChunk(t *testing.T) {
	chunks := Split("one two three", 3000, 200)
	require.Len(t, chunks, 1)
	assert.Equal(t, "one two three", chunks[0])
}

func TestSplitEmpty(t *testing.T) {
	assert.Empty(t, Split("", 3000, 200))
	assert.Empty(t, Split("   ", 3000, 200))
}

func TestSplitNeverCutsWords(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta epsilon ", 300)
	chunks := Split(strings.TrimSpace(text), 500, 50)
	vocab := map[string]bool{"alpha": true, "beta": true, "gamma": true, "delta": true, "epsilon": true}
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 500)
		for _, w := range strings.Fields(c) {
			assert.True(t, vocab[w], "word %q was cut", w)
		}
	}
}

func TestSplitFiveThousandCharsProducesTwoChunks(t *testing.T) {
	// 5000 chars of distinct 9-char words and separating spaces
	text := distinctWords(500, 9)
	require.Equal(t, 4999, len(text))

	chunks := Split(text, 3000, 200)
	require.Len(t, chunks, 2)
	assert.LessOrEqual(t, len(chunks[0]), 3000)
	assert.LessOrEqual(t, len(chunks[1]), 3000)

	// chunk 2 opens with the tail of chunk 1, at most 200 chars of it
	overlap := longestCommonOverlap(chunks[0], chunks[1])
	assert.LessOrEqual(t, len(overlap), 200)
	assert.Greater(t, len(overlap), 150, "overlap should fill most of the allowed span")
}

func TestSplitReconstruction(t *testing.T) {
	text := distinctWords(400, 7)
	chunks := Split(text, 700, 100)
	require.Greater(t, len(chunks), 1)

	rebuilt := chunks[0]
	for i := 1; i < len(chunks); i++ {
		ov := longestCommonOverlap(rebuilt, chunks[i])
		rebuilt += chunks[i][len(ov):]
	}
	assert.Equal(t, text, rebuilt)
}

func TestSplitOversizedWord(t *testing.T) {
	long := strings.Repeat("x", 120)
	chunks := Split("start "+long+" end", 50, 10)
	require.Len(t, chunks, 3)
	assert.Equal(t, "start", chunks[0])
	assert.Equal(t, long, chunks[1])
	assert.Equal(t, "end", chunks[2])
}

// distinctWords builds a space-joined text of n distinct words of the given
// length, so overlap regions can be located unambiguously.
func distinctWords(n, wordLen int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%0*d", wordLen-1, i)
	}
	return strings.Join(words, " ")
}

// longestCommonOverlap finds the longest suffix of a that prefixes b.
func longestCommonOverlap(a, b string) string {
	max := len(a)
	if len(b) < max {
		max = len(b)
	}
	for n := max; n > 0; n-- {
		if strings.HasSuffix(a, b[:n]) {
			return b[:n]
		}
	}
	return ""
}

func TestStopwordsRemove(t *testing.T) {
	dir := t.TempDir()
	corpus := filepath.Join(dir, "corpora", "stopwords")
	require.NoError(t, os.MkdirAll(corpus, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(corpus, "english"), []byte("the\nand\nof\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(corpus, "russian"), []byte("и\nв\nна\n"), 0o644))

	s := NewStopwords(dir, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	out, err := s.Remove(context.Background(), "The history of science и техника")
	require.NoError(t, err)
	assert.Equal(t, "history science техника", out)
}

func TestStopwordsMissingCorpusFails(t *testing.T) {
	s := NewStopwords(filepath.Join(t.TempDir(), "nope"), nil)
	// no corpus on disk and the download against a sandboxed network fails
	s.http.Timeout = 1 // effectively unreachable
	_, err := s.Remove(context.Background(), "some text")
	assert.Error(t, err)
}

func TestCountTokensNonZero(t *testing.T) {
	n := CountTokens("a handful of plain words")
	assert.Greater(t, n, 0)
}
