package loader

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeRunner scripts per-binary behavior for the converter chains.
type fakeRunner struct {
	calls   []string
	results map[string]func(args []string) ([]byte, error)
}

func (f *fakeRunner) Run(_ context.Context, name string, _ *slog.Logger, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	fn, ok := f.results[name]
	if !ok {
		return nil, nil, fmt.Errorf("%s: executable file not found in $PATH", name)
	}
	out, err := fn(args)
	return out, nil, err
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	e := NewExtractor(Config{}, testLogger())
	_, err := e.Load(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, "slides.pptx", []byte("x"))
	e := NewExtractor(Config{}, testLogger())
	_, err := e.Load(context.Background(), path)
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestLoadTXTUTF8(t *testing.T) {
	path := writeTempFile(t, "a.txt", []byte("Привет, мир"))
	e := NewExtractor(Config{}, testLogger())
	segs, err := e.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, "Привет, мир", segs[0].Text)
	assert.Equal(t, 1, segs[0].Page)
}

func TestLoadTXTWindows1251(t *testing.T) {
	// "Привет" in windows-1251
	raw := []byte{0xCF, 0xF0, 0xE8, 0xE2, 0xE5, 0xF2}
	path := writeTempFile(t, "b.txt", raw)
	e := NewExtractor(Config{}, testLogger())
	segs, err := e.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Привет", segs[0].Text)
}

func TestDecodeTextProbeSplitsRune(t *testing.T) {
	// 99 ascii bytes put the probe cut in the middle of the two-byte "П",
	// which must not push a valid utf-8 file onto the windows-1251 path
	body := strings.Repeat("a", 99) + "Привет и далее текст"
	text, enc := decodeText([]byte(body))
	assert.Equal(t, "utf-8", enc)
	assert.Equal(t, body, text)
}

func TestDecodeTextLatin1Fallback(t *testing.T) {
	// 0x98 is unmapped in windows-1251, so the probe falls through to latin-1.
	raw := []byte{0x98, 0x61, 0x62}
	text, enc := decodeText(raw)
	assert.Equal(t, "latin-1", enc)
	assert.Contains(t, text, "ab")
}

func TestLoadTXTEmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.txt", []byte("   \n  "))
	e := NewExtractor(Config{}, testLogger())
	_, err := e.Load(context.Background(), path)
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
}

func TestLoadDOCFallsBackToAntiword(t *testing.T) {
	path := writeTempFile(t, "old.doc", []byte{0xD0, 0xCF, 0x11, 0xE0})
	runner := &fakeRunner{results: map[string]func([]string) ([]byte, error){
		"antiword": func([]string) ([]byte, error) { return []byte("recovered body text"), nil },
	}}
	e := NewExtractor(Config{}, testLogger(), WithRunner(runner))

	segs, err := e.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "recovered body text", segs[0].Text)
	assert.Equal(t, []string{"soffice", "antiword"}, runner.calls)
}

func TestLoadDOCSofficeWritesOutput(t *testing.T) {
	path := writeTempFile(t, "report.doc", []byte{0xD0, 0xCF})
	runner := &fakeRunner{results: map[string]func([]string) ([]byte, error){
		"soffice": func(args []string) ([]byte, error) {
			outdir := args[len(args)-1]
			return nil, os.WriteFile(filepath.Join(outdir, "report.txt"), []byte("converted text"), 0o644)
		},
	}}
	e := NewExtractor(Config{}, testLogger(), WithRunner(runner))

	segs, err := e.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "converted text", segs[0].Text)
	assert.Equal(t, []string{"soffice"}, runner.calls)
}

func TestLoadDOCAllConvertersFail(t *testing.T) {
	path := writeTempFile(t, "broken.doc", []byte{0x00})
	runner := &fakeRunner{results: map[string]func([]string) ([]byte, error){}}
	e := NewExtractor(Config{}, testLogger(), WithRunner(runner))

	_, err := e.Load(context.Background(), path)
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
	assert.Equal(t, []string{"soffice", "antiword", "catdoc"}, runner.calls)
}

func TestConvertChainCleansTempDir(t *testing.T) {
	path := writeTempFile(t, "x.doc", []byte{0x00})
	var seenDir string
	runner := &fakeRunner{results: map[string]func([]string) ([]byte, error){
		"soffice": func(args []string) ([]byte, error) {
			seenDir = args[len(args)-1]
			return nil, errors.New("boom")
		},
	}}
	e := NewExtractor(Config{}, testLogger(), WithRunner(runner))

	_, err := e.Load(context.Background(), path)
	require.Error(t, err)
	require.NotEmpty(t, seenDir)
	_, statErr := os.Stat(seenDir)
	assert.True(t, os.IsNotExist(statErr), "temp dir must be removed after failure")
}

func TestLoadRTFNativeStrip(t *testing.T) {
	rtf := `{\rtf1\ansi{\fonttbl{\f0 Times New Roman;}}\f0\fs24 Hello \b World\b0.\par Second line.}`
	path := writeTempFile(t, "note.rtf", []byte(rtf))
	e := NewExtractor(Config{}, testLogger())

	segs, err := e.Load(context.Background(), path)
	require.NoError(t, err)
	text := segs[0].Text
	assert.Contains(t, text, "Hello World.")
	assert.Contains(t, text, "Second line.")
	assert.NotContains(t, text, "Times New Roman")
	assert.NotContains(t, text, "rtf1")
}

func TestStripRTFUnicodeEscapes(t *testing.T) {
	text := stripRTF([]byte(`{\rtf1\uc1 \u1055?\u1088?\u1080?\u1074?\u1077?\u1090?}`))
	assert.Equal(t, "Привет", strings.TrimSpace(text))
}

func TestLoadRTFFallsBackToConverters(t *testing.T) {
	// a file with an .rtf extension but no recoverable native text
	path := writeTempFile(t, "odd.rtf", []byte(`{\rtf1{\info garbage}}`))
	runner := &fakeRunner{results: map[string]func([]string) ([]byte, error){
		"unrtf": func([]string) ([]byte, error) { return []byte("fallback text"), nil },
	}}
	e := NewExtractor(Config{}, testLogger(), WithRunner(runner))

	segs, err := e.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "fallback text", segs[0].Text)
	assert.Equal(t, []string{"soffice", "unrtf"}, runner.calls)
}

func TestLoadDOCX(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
 <w:body>
  <w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>
  <w:p><w:r><w:t>Second</w:t></w:r><w:r><w:t xml:space="preserve"> paragraph</w:t></w:r></w:p>
 </w:body>
</w:document>`
	path := filepath.Join(t.TempDir(), "doc.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	e := NewExtractor(Config{}, testLogger())
	segs, err := e.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Contains(t, segs[0].Text, "First paragraph")
	assert.Contains(t, segs[0].Text, "Second paragraph")
}

func TestCombineSegments(t *testing.T) {
	segs := []Segment{{Text: "page one", Page: 1}, {Text: "page two", Page: 2}}
	assert.Equal(t, "page one page two", CombineSegments(segs))
}
