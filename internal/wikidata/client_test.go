package wikidata

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
)

func testClientConfig(apiURL, sparqlURL string) common.WikidataConfig {
	return common.WikidataConfig{
		APIURL:          apiURL,
		SPARQLURL:       sparqlURL,
		UserAgent:       "DocsMetadataEnhancerBot/1.0 (test)",
		SearchTimeout:   2 * time.Second,
		VerifyTimeout:   2 * time.Second,
		SelfTestTimeout: 2 * time.Second,
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestClientSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "wbsearchentities", q.Get("action"))
		assert.Equal(t, "ru", q.Get("language"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Contains(t, r.Header.Get("User-Agent"), "DocsMetadataEnhancerBot")
		fmt.Fprint(w, `{"search": [
			{"id": "Q5373427", "label": "Иванов", "description": "фамилия"},
			{"id": "Q4194585", "label": "Иванов И.И."}
		]}`)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(testClientConfig(srv.URL, ""), quietLogger())
	hits, err := c.Search(context.Background(), "Иванов", "ru")
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "Q5373427", hits[0].ID)
	assert.Equal(t, "фамилия", hits[0].Description)
}

func TestClientInstanceOf(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("query"), "wd:Q937 wdt:P31")
		fmt.Fprint(w, `{"results": {"bindings": [
			{"type": {"value": "http://www.wikidata.org/entity/Q5"}}
		]}}`)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(testClientConfig("", srv.URL), quietLogger())
	classes, err := c.InstanceOf(context.Background(), "Q937")
	require.NoError(t, err)
	assert.Equal(t, []string{"Q5"}, classes)
}

func TestClientFetchEntity(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		ids := r.URL.Query().Get("ids")
		if ids == "Q937" {
			fmt.Fprint(w, `{"entities": {"Q937": {
				"labels": {"ru": {"value": "Альберт Эйнштейн"}, "en": {"value": "Albert Einstein"}},
				"descriptions": {"en": {"value": "physicist"}},
				"claims": {
					"P31": [{"mainsnak": {"datavalue": {"type": "wikibase-entityid", "value": {"id": "Q5"}}}}],
					"P569": [{"mainsnak": {"datavalue": {"type": "time", "value": {"time": "+1879-03-14T00:00:00Z"}}}}]
				}
			}}}`)
			return
		}
		// label resolution batch
		assert.Equal(t, "Q5", ids)
		fmt.Fprint(w, `{"entities": {"Q5": {"labels": {"ru": {"value": "человек"}}}}}`)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(testClientConfig(srv.URL, ""), quietLogger())
	ent, err := c.FetchEntity(context.Background(), "Q937")
	require.NoError(t, err)
	assert.Equal(t, "Альберт Эйнштейн", ent.LabelRU)
	assert.Equal(t, "Albert Einstein", ent.LabelEN)
	assert.Equal(t, "physicist", ent.DescriptionEN)
	assert.Equal(t, Property{Label: "instance of", Values: []string{"человек"}}, ent.Properties["P31"])
	assert.Equal(t, []string{"1879-03-14T00:00:00Z"}, ent.Properties["P569"].Values)

	// label cache: a second fetch must not re-resolve Q5
	before := calls
	_, err = c.FetchEntity(context.Background(), "Q937")
	require.NoError(t, err)
	assert.Equal(t, before+1, calls, "second fetch should hit the label cache")
}

func TestClientSelfTest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"search": [{"id": "Q2"}]}`)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(testClientConfig(srv.URL, ""), quietLogger())
	assert.NoError(t, c.SelfTest(context.Background()))
}

func TestClientSelfTestDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(testClientConfig(srv.URL, ""), quietLogger())
	err := c.SelfTest(context.Background())
	assert.ErrorIs(t, err, common.ErrBackendUnavailable)
}

func TestLoadKnownEntities(t *testing.T) {
	path := t.TempDir() + "/known.yaml"
	require.NoError(t, os.WriteFile(path, []byte("МГУ: Q13164\nСПбГУ: Q27621\n"), 0o644))

	table, err := LoadKnownEntities(path)
	require.NoError(t, err)
	assert.Equal(t, "Q13164", table["МГУ"])
	assert.Len(t, table, 2)
}

func TestLoadKnownEntitiesMissingFile(t *testing.T) {
	table, err := LoadKnownEntities(t.TempDir() + "/absent.yaml")
	require.NoError(t, err)
	assert.Empty(t, table)
}
