package textproc

import (
	"archive/zip"
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// stopwordsURL serves the NLTK stopword corpus as a zip of per-language
// plain-text word lists.
const stopwordsURL = "https://raw.githubusercontent.com/nltk/nltk_data/gh-pages/packages/corpora/stopwords.zip"

var stopwordLanguages = []string{"english", "russian"}

// Stopwords removes common words before the text is sent to the model,
// shrinking token counts. The corpus is fetched once and cached under the
// data directory; initialization failure disables only this step.
type Stopwords struct {
	dir  string
	http *http.Client
	log  *slog.Logger

	mu     sync.Mutex
	loaded bool
	words  map[string]struct{}
}

func NewStopwords(dir string, logger *slog.Logger) *Stopwords {
	if logger == nil {
		logger = slog.Default()
	}
	return &Stopwords{
		dir:  dir,
		http: &http.Client{},
		log:  logger,
	}
}

// Remove tokenizes on whitespace and drops tokens whose lowercase form is a
// known stopword, rejoining with single spaces.
func (s *Stopwords) Remove(ctx context.Context, text string) (string, error) {
	if err := s.ensure(ctx); err != nil {
		return "", fmt.Errorf("stopword corpus init: %w", err)
	}
	tokens := strings.Fields(text)
	kept := tokens[:0]
	for _, tok := range tokens {
		if _, drop := s.words[strings.ToLower(tok)]; !drop {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " "), nil
}

func (s *Stopwords) ensure(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}

	corpusDir := filepath.Join(s.dir, "corpora", "stopwords")
	if !s.corpusPresent(corpusDir) {
		if err := s.download(ctx, corpusDir); err != nil {
			return err
		}
	}

	words := make(map[string]struct{})
	for _, lang := range stopwordLanguages {
		if err := readWordList(filepath.Join(corpusDir, lang), words); err != nil {
			return fmt.Errorf("read %s stopwords: %w", lang, err)
		}
	}
	s.words = words
	s.loaded = true
	s.log.Info("textproc.stopwords.loaded", "dir", corpusDir, "words", len(words))
	return nil
}

func (s *Stopwords) corpusPresent(corpusDir string) bool {
	for _, lang := range stopwordLanguages {
		if _, err := os.Stat(filepath.Join(corpusDir, lang)); err != nil {
			return false
		}
	}
	return true
}

// download fetches the corpus zip and unpacks the language lists we use.
func (s *Stopwords) download(ctx context.Context, corpusDir string) error {
	s.log.Info("textproc.stopwords.download", "url", stopwordsURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, stopwordsURL, nil)
	if err != nil {
		return err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch stopword corpus: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch stopword corpus: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	zr, err := zip.NewReader(strings.NewReader(string(body)), int64(len(body)))
	if err != nil {
		return fmt.Errorf("corpus archive: %w", err)
	}

	if err := os.MkdirAll(corpusDir, 0o755); err != nil {
		return err
	}
	for _, lang := range stopwordLanguages {
		if err := extractZipEntry(zr, "stopwords/"+lang, filepath.Join(corpusDir, lang)); err != nil {
			return err
		}
	}
	return nil
}

func extractZipEntry(zr *zip.Reader, name, dst string) error {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		out, err := os.Create(dst)
		if err != nil {
			return err
		}
		defer out.Close()
		_, err = io.Copy(out, rc)
		return err
	}
	return fmt.Errorf("corpus archive missing %s", name)
}

func readWordList(path string, into map[string]struct{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w != "" {
			into[strings.ToLower(w)] = struct{}{}
		}
	}
	return sc.Err()
}
