package wikidata

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
)

type fakeAPI struct {
	mu          sync.Mutex
	searches    int
	verifies    int
	results     map[string][]SearchResult // keyed by name+"|"+lang
	classes     map[string][]string       // keyed by qid
	searchErr   error
	selfTestErr error
}

func (f *fakeAPI) Search(_ context.Context, name, lang string) ([]SearchResult, error) {
	f.mu.Lock()
	f.searches++
	f.mu.Unlock()
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.results[name+"|"+lang], nil
}

func (f *fakeAPI) InstanceOf(_ context.Context, qid string) ([]string, error) {
	f.mu.Lock()
	f.verifies++
	f.mu.Unlock()
	classes, ok := f.classes[qid]
	if !ok {
		return nil, errors.New("no such item")
	}
	return classes, nil
}

func (f *fakeAPI) SelfTest(context.Context) error { return f.selfTestErr }

func newTestLinker(api *fakeAPI, known map[string]string) *Linker {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewLinker(api, NewLinkCache(), known, rate.NewLimiter(rate.Inf, 1), logger)
}

func TestLinkTypeVerificationPicksHuman(t *testing.T) {
	api := &fakeAPI{
		results: map[string][]SearchResult{
			"Ivan Ivanov|ru": {
				{ID: "Q900", Label: "Ivan Ivanov"},
				{ID: "Q901", Label: "Ivan Ivanov"},
			},
		},
		classes: map[string][]string{
			"Q900": {"Q43229"}, // organization
			"Q901": {"Q5"},     // human
		},
	}
	l := newTestLinker(api, nil)

	r, err := l.Link(context.Background(), "Ivan Ivanov", constants.EntityTypePerson)
	require.NoError(t, err)
	assert.Equal(t, "Q901", r.QID, "must resolve to the human-typed candidate, not the first hit")
	assert.Equal(t, 1.0, r.Confidence)
}

func TestLinkCachesSuccessfulResult(t *testing.T) {
	api := &fakeAPI{
		results: map[string][]SearchResult{
			"Москва|ru": {{ID: "Q649", Label: "Москва"}},
		},
	}
	l := newTestLinker(api, nil)

	r1, err := l.Link(context.Background(), "Москва", "")
	require.NoError(t, err)
	r2, err := l.Link(context.Background(), "Москва", "")
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.Equal(t, 1, api.searches, "second call must be served from cache")
}

func TestLinkNegativeCache(t *testing.T) {
	api := &fakeAPI{results: map[string][]SearchResult{}}
	l := newTestLinker(api, nil)

	r, err := l.Link(context.Background(), "नहीं मिलेगा", constants.EntityTypePerson)
	require.NoError(t, err)
	assert.Empty(t, r.QID)
	// ru miss falls back to en, so the first call costs two searches
	assert.Equal(t, 2, api.searches)

	_, err = l.Link(context.Background(), "नहीं मिलेगा", constants.EntityTypePerson)
	require.NoError(t, err)
	assert.Equal(t, 2, api.searches, "negative result must be cached")
}

func TestLinkFailureCache(t *testing.T) {
	api := &fakeAPI{searchErr: errors.New("connection refused")}
	l := newTestLinker(api, nil)

	r, err := l.Link(context.Background(), "Кто-то", constants.EntityTypePerson)
	require.NoError(t, err, "transport failure must degrade to unlinked, not error")
	assert.Empty(t, r.QID)
	assert.Equal(t, 1, api.searches, "a transport error must not retry the fallback language")

	_, err = l.Link(context.Background(), "Кто-то", constants.EntityTypePerson)
	require.NoError(t, err)
	assert.Equal(t, 1, api.searches, "known-bad lookup must not be retried")
}

func TestLinkExactLabelPreferredOverFirstHit(t *testing.T) {
	api := &fakeAPI{
		results: map[string][]SearchResult{
			"оптика|ru": {
				{ID: "Q100", Label: "оптика (альбом)"},
				{ID: "Q101", Label: "Оптика"},
			},
		},
		// neither candidate declares an accepted concept class
		classes: map[string][]string{
			"Q100": {"Q482994"},
			"Q101": {"Q482994"},
		},
	}
	l := newTestLinker(api, nil)

	r, err := l.Link(context.Background(), "оптика", constants.EntityTypeConcept)
	require.NoError(t, err)
	assert.Equal(t, "Q101", r.QID)
	assert.Equal(t, "exact label match", r.Context)
}

func TestLinkFirstHitFallbackConfidence(t *testing.T) {
	api := &fakeAPI{
		results: map[string][]SearchResult{
			"нечто|ru": {{ID: "Q1", Label: "нечто иное"}},
		},
	}
	l := newTestLinker(api, nil)

	r, err := l.Link(context.Background(), "нечто", "")
	require.NoError(t, err)
	assert.Equal(t, "Q1", r.QID)
	assert.Less(t, r.Confidence, 1.0)
	assert.Zero(t, api.verifies, "untyped fields skip verification")
}

func TestLinkKnownEntityTable(t *testing.T) {
	api := &fakeAPI{}
	l := newTestLinker(api, map[string]string{"МГУ": "Q13164"})

	r, err := l.Link(context.Background(), "МГУ", constants.EntityTypeOrganization)
	require.NoError(t, err)
	assert.Equal(t, "Q13164", r.QID)
	assert.Zero(t, api.searches)
}

func TestLinkEnglishFallbackSearch(t *testing.T) {
	api := &fakeAPI{
		results: map[string][]SearchResult{
			"MIT|en": {{ID: "Q49108", Label: "MIT"}},
		},
		classes: map[string][]string{"Q49108": {"Q3918"}},
	}
	l := newTestLinker(api, nil)

	r, err := l.Link(context.Background(), "MIT", constants.EntityTypeOrganization)
	require.NoError(t, err)
	assert.Equal(t, "Q49108", r.QID)
	assert.Equal(t, 2, api.searches)
}

func TestLinkOfflineModeServesCacheOnly(t *testing.T) {
	api := &fakeAPI{
		selfTestErr: errors.New("no route to host"),
		results: map[string][]SearchResult{
			"Земля|ru": {{ID: "Q2", Label: "Земля"}},
		},
	}
	l := newTestLinker(api, nil)
	l.cache.PutHit("Солнце", constants.EntityTypeConcept, LinkResult{QID: "Q525", Confidence: 1.0})

	l.PrepareBatch(context.Background())

	r, err := l.Link(context.Background(), "Солнце", constants.EntityTypeConcept)
	require.NoError(t, err)
	assert.Equal(t, "Q525", r.QID, "cached hit is still served offline")

	r, err = l.Link(context.Background(), "Земля", constants.EntityTypeConcept)
	require.NoError(t, err)
	assert.Empty(t, r.QID)
	assert.Zero(t, api.searches, "offline mode must not touch the network")
}

// One linker is shared by all queue workers, and every enrichment run calls
// PrepareBatch while sibling workers may be mid-Link. Run under -race.
func TestLinkConcurrentWithPrepareBatch(t *testing.T) {
	api := &fakeAPI{
		results: map[string][]SearchResult{
			"Земля|ru": {{ID: "Q2", Label: "Земля"}},
		},
		classes: map[string][]string{"Q2": {"Q634"}},
	}
	l := newTestLinker(api, nil)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				l.PrepareBatch(context.Background())
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, err := l.Link(context.Background(), "Земля", constants.EntityTypeConcept)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}

func TestLinkEmptyName(t *testing.T) {
	l := newTestLinker(&fakeAPI{}, nil)
	r, err := l.Link(context.Background(), "   ", constants.EntityTypePerson)
	require.NoError(t, err)
	assert.Empty(t, r.QID)
}
