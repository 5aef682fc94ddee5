package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
	"github.com/evgenyd/docs-metadata-enhancer/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// chatServer replies with the scripted contents in order and records the
// incoming messages of every call.
func chatServer(t *testing.T, replies ...string) (*httptest.Server, *[][]map[string]string) {
	t.Helper()
	var calls [][]map[string]string
	n := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		var req struct {
			Messages []map[string]string `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		calls = append(calls, req.Messages)

		require.Less(t, n, len(replies), "unexpected extra backend call")
		reply := replies[n]
		n++
		resp := map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"content": reply}}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newTestClient(url string) *Client {
	return NewClient(Config{APIKey: "test", BaseURL: url, Model: "test-model"}, testLogger())
}

func TestExtractParsesFirstReply(t *testing.T) {
	srv, calls := chatServer(t, `{"title": "Труды по физике", "keywords": ["физика"]}`)
	c := newTestClient(srv.URL)

	set, err := c.Extract(context.Background(), "chunk text")
	require.NoError(t, err)
	assert.Equal(t, "Труды по физике", set.Get(constants.FieldTitle).Str)
	require.Len(t, *calls, 1)
	assert.Equal(t, "chunk text", (*calls)[0][1]["content"])
}

func TestExtractRepairsMalformedReply(t *testing.T) {
	srv, calls := chatServer(t,
		"Sure! Here is the metadata:",
		`{"title": "Repaired"}`,
	)
	c := newTestClient(srv.URL)

	set, err := c.Extract(context.Background(), "chunk")
	require.NoError(t, err)
	assert.Equal(t, "Repaired", set.Get(constants.FieldTitle).Str)

	// exactly one repair call, carrying the invalid reply as assistant turn
	require.Len(t, *calls, 2)
	repair := (*calls)[1]
	require.Len(t, repair, 4)
	assert.Equal(t, "assistant", repair[2]["role"])
	assert.Equal(t, "Sure! Here is the metadata:", repair[2]["content"])
	assert.Equal(t, "user", repair[3]["role"])
}

func TestExtractRepairStillMalformed(t *testing.T) {
	srv, calls := chatServer(t, "not json", "still not json")
	c := newTestClient(srv.URL)

	set, err := c.Extract(context.Background(), "chunk")
	assert.Nil(t, set)
	assert.ErrorIs(t, err, common.ErrMalformedModelOutput)
	assert.Len(t, *calls, 2, "must stop after one repair attempt")
}

func TestExtractBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	c := newTestClient(srv.URL)

	_, err := c.Extract(context.Background(), "chunk")
	assert.ErrorIs(t, err, common.ErrBackendUnavailable)
}

func TestFinalizeValidatesSchema(t *testing.T) {
	final := map[string]any{}
	for _, f := range constants.MetadataFields {
		if constants.IsListField(f) {
			final[f] = []string{}
		} else {
			final[f] = ""
		}
	}
	final[constants.FieldTitle] = "Итоговый титул"
	final[constants.FieldKeywords] = []string{"наука", "история", "физика", "оптика"}
	b, err := json.Marshal(final)
	require.NoError(t, err)

	srv, calls := chatServer(t, string(b))
	c := newTestClient(srv.URL)

	merged := mergedFixture()
	set, err := c.Finalize(context.Background(), merged)
	require.NoError(t, err)
	assert.Equal(t, "Итоговый титул", set.Get(constants.FieldTitle).Str)
	assert.Len(t, set.Get(constants.FieldKeywords).List, 4)

	require.Len(t, *calls, 1)
	sys := (*calls)[0][0]["content"]
	assert.Contains(t, sys, "4 to 7 keywords")
	assert.Contains(t, fmt.Sprint((*calls)[0][1]["content"]), "Титул А")
}

func mergedFixture() *llm.EntitySet {
	s := llm.NewEntitySet()
	s.SetList(constants.FieldTitle, []string{"Титул А", "Титул Б"})
	s.SetList(constants.FieldKeywords, []string{"наука", "наука", "история"})
	return s
}
