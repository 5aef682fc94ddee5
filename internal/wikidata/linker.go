package wikidata

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
)

// searchAPI is the slice of Client the linker needs; tests substitute a fake
// with zero delays.
type searchAPI interface {
	Search(ctx context.Context, name, lang string) ([]SearchResult, error)
	InstanceOf(ctx context.Context, qid string) ([]string, error)
	SelfTest(ctx context.Context) error
}

// Linker resolves names to Wikidata identifiers with caching, optional type
// verification and graceful degradation on outages. An empty QID in the
// result means "no plausible match", which is a valid outcome, not an error.
type Linker struct {
	api     searchAPI
	cache   *LinkCache
	known   map[string]string
	limiter *rate.Limiter
	log     *slog.Logger

	// written by PrepareBatch while other workers may be mid-Link
	offline atomic.Bool
}

const (
	primaryLang  = "ru"
	fallbackLang = "en"
)

// Fallback links carry reduced confidence relative to type-verified or
// exact-label ones.
const fallbackConfidence = 0.7

func NewLinker(api searchAPI, cache *LinkCache, known map[string]string, limiter *rate.Limiter, logger *slog.Logger) *Linker {
	if cache == nil {
		cache = NewLinkCache()
	}
	if known == nil {
		known = map[string]string{}
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Every(500*time.Millisecond), 1)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Linker{api: api, cache: cache, known: known, limiter: limiter, log: logger}
}

// PrepareBatch probes connectivity once before a batch of lookups. When the
// self-test fails the linker degrades to cache-and-known-table-only mode for
// the rest of its lifetime.
func (l *Linker) PrepareBatch(ctx context.Context) {
	if err := l.api.SelfTest(ctx); err != nil {
		l.log.Warn("wikidata.selftest_failed", "error", err)
		l.offline.Store(true)
		return
	}
	l.offline.Store(false)
}

// Link resolves one name. Idempotent: repeated calls with the same name and
// type are served from cache and return the identical result.
func (l *Linker) Link(ctx context.Context, name string, et constants.EntityType) (LinkResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return LinkResult{}, nil
	}

	if qid, ok := l.known[name]; ok {
		return LinkResult{QID: qid, Confidence: 1.0, Context: "known entity table"}, nil
	}
	if r, ok := l.cache.Get(name, et); ok {
		return r, nil
	}
	if l.cache.HasMiss(name, et) || l.cache.HasFailure(name, et) {
		return LinkResult{}, nil
	}
	if l.offline.Load() {
		return LinkResult{}, nil
	}

	hits, err := l.search(ctx, name)
	if err != nil {
		l.log.Warn("wikidata.link.search_failed", "name", name, "type", et, "error", err)
		l.cache.PutFailure(name, et)
		return LinkResult{}, nil
	}
	if len(hits) == 0 {
		l.cache.PutMiss(name, et)
		return LinkResult{}, nil
	}

	if r, ok := l.verifyType(ctx, name, et, hits); ok {
		l.cache.PutHit(name, et, r)
		return r, nil
	}

	r := bestUnverified(name, hits)
	l.cache.PutHit(name, et, r)
	l.log.Debug("wikidata.link.fallback", "name", name, "type", et, "qid", r.QID, "context", r.Context)
	return r, nil
}

func (l *Linker) search(ctx context.Context, name string) ([]SearchResult, error) {
	hits, err := l.api.Search(ctx, name, primaryLang)
	if err != nil {
		return nil, err
	}
	if len(hits) > 0 {
		return hits, nil
	}
	return l.api.Search(ctx, name, fallbackLang)
}

// verifyType checks candidates against the accepted class set for the entity
// type, pacing the verification queries through the limiter. Verification
// errors only disqualify the individual candidate.
func (l *Linker) verifyType(ctx context.Context, name string, et constants.EntityType, hits []SearchResult) (LinkResult, bool) {
	if _, recognized := acceptedTypes[et]; !recognized {
		return LinkResult{}, false
	}
	for _, hit := range hits {
		if err := l.limiter.Wait(ctx); err != nil {
			return LinkResult{}, false
		}
		classes, err := l.api.InstanceOf(ctx, hit.ID)
		if err != nil {
			l.log.Warn("wikidata.link.verify_failed", "name", name, "qid", hit.ID, "error", err)
			continue
		}
		if typeAccepted(et, classes) {
			return LinkResult{
				QID:        hit.ID,
				Confidence: 1.0,
				Context:    "type-verified as " + string(et),
			}, true
		}
	}
	return LinkResult{}, false
}

// bestUnverified prefers an exact case-insensitive label match and otherwise
// takes the first search hit, so inconclusive type verification never blocks
// linking outright.
func bestUnverified(name string, hits []SearchResult) LinkResult {
	for _, hit := range hits {
		if strings.EqualFold(hit.Label, name) {
			return LinkResult{QID: hit.ID, Confidence: 1.0, Context: "exact label match"}
		}
	}
	return LinkResult{QID: hits[0].ID, Confidence: fallbackConfidence, Context: "first search hit"}
}
