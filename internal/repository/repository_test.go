package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent"
	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
	"github.com/evgenyd/docs-metadata-enhancer/internal/wikidata"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	client, err := OpenSQLite(context.Background(),
		"file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)", testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func createTestDocument(t *testing.T, docs DocumentRepository) *ent.Document {
	t.Helper()
	doc, err := docs.Create(context.Background(), &CreateDocumentRequest{
		Name:       "report.pdf",
		SourcePath: "/data/report.pdf",
		Format:     constants.PDF,
		Owner:      "researcher",
	})
	require.NoError(t, err)
	return doc
}

func einsteinFetch(ctx context.Context) (*wikidata.EntityData, error) {
	return &wikidata.EntityData{
		QID:     "Q937",
		LabelRU: "Альберт Эйнштейн",
		LabelEN: "Albert Einstein",
		Properties: map[string]wikidata.Property{
			"P31": {Label: "instance of", Values: []string{"человек"}},
		},
	}, nil
}

func TestDocumentLifecycle(t *testing.T) {
	client := openTestClient(t)
	docs := NewDocumentRepository(client, testLogger())
	ctx := context.Background()

	doc := createTestDocument(t, docs)
	assert.Equal(t, string(constants.DocStatusPending), doc.Status)

	require.NoError(t, docs.SetStatus(ctx, doc.ID, constants.DocStatusProcessing, ""))
	require.NoError(t, docs.SetStatus(ctx, doc.ID, constants.DocStatusFailed, "extraction failed: no text"))

	got, err := docs.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocStatusFailed), got.Status)
	require.NotNil(t, got.ProcessingError)
	assert.Equal(t, "extraction failed: no text", *got.ProcessingError)

	// success clears the error text
	require.NoError(t, docs.SetStatus(ctx, doc.ID, constants.DocStatusSuccess, ""))
	got, err = docs.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ProcessingError)
}

func TestDocumentGetMissing(t *testing.T) {
	client := openTestClient(t)
	docs := NewDocumentRepository(client, testLogger())

	doc := createTestDocument(t, docs)
	require.NoError(t, docs.Delete(context.Background(), doc.ID))

	_, err := docs.Get(context.Background(), doc.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSaveMetadataRoundTrip(t *testing.T) {
	client := openTestClient(t)
	docs := NewDocumentRepository(client, testLogger())
	ctx := context.Background()

	doc := createTestDocument(t, docs)
	meta := json.RawMessage(`{"title": "Труды по физике", "keywords": ["физика"]}`)
	require.NoError(t, docs.SaveMetadata(ctx, doc.ID, meta))

	got, err := docs.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.JSONEq(t, string(meta), string(got.Metadata))
}

func TestEntityGetOrCreateFetchesOnce(t *testing.T) {
	client := openTestClient(t)
	entities := NewEntityRepository(client, testLogger())
	ctx := context.Background()

	fetches := 0
	fetch := func(ctx context.Context) (*wikidata.EntityData, error) {
		fetches++
		return einsteinFetch(ctx)
	}

	e1, err := entities.GetOrCreate(ctx, "Q937", fetch)
	require.NoError(t, err)
	assert.Equal(t, "Альберт Эйнштейн", e1.LabelRu)

	e2, err := entities.GetOrCreate(ctx, "Q937", fetch)
	require.NoError(t, err)
	assert.Equal(t, e1.ID, e2.ID, "same QID must converge on one row")
	assert.Equal(t, 1, fetches, "fresh rows must not be re-fetched")
}

func TestEntityStaleRefresh(t *testing.T) {
	client := openTestClient(t)
	repo := &entityRepository{client: client, logger: testLogger(), now: time.Now}
	ctx := context.Background()

	_, err := repo.GetOrCreate(ctx, "Q937", einsteinFetch)
	require.NoError(t, err)

	// move the clock past the freshness threshold
	repo.now = func() time.Time { return time.Now().Add(staleAfter + time.Hour) }
	fetches := 0
	_, err = repo.GetOrCreate(ctx, "Q937", func(ctx context.Context) (*wikidata.EntityData, error) {
		fetches++
		return einsteinFetch(ctx)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetches, "stale row must be refreshed")
}

func TestEntityRefreshFailureKeepsStaleRow(t *testing.T) {
	client := openTestClient(t)
	repo := &entityRepository{client: client, logger: testLogger(), now: time.Now}
	ctx := context.Background()

	created, err := repo.GetOrCreate(ctx, "Q937", einsteinFetch)
	require.NoError(t, err)

	repo.now = func() time.Time { return time.Now().Add(staleAfter + time.Hour) }
	got, err := repo.GetOrCreate(ctx, "Q937", func(context.Context) (*wikidata.EntityData, error) {
		return nil, errors.New("api unreachable")
	})
	require.NoError(t, err, "stale data beats no data")
	assert.Equal(t, created.ID, got.ID)
}

func TestLinkEntityIdempotent(t *testing.T) {
	client := openTestClient(t)
	docs := NewDocumentRepository(client, testLogger())
	relations := NewRelationRepository(client, testLogger())
	ctx := context.Background()

	doc := createTestDocument(t, docs)
	req := &LinkEntityRequest{
		DocumentID:    doc.ID,
		QID:           "Q937",
		Fetch:         einsteinFetch,
		FieldCategory: constants.FieldCreator,
		Name:          "Альберт Эйнштейн",
		FieldKey:      constants.FieldCreator,
		FieldValue:    "А. Эйнштейн",
		Confidence:    1.0,
		Context:       "type-verified as person",
	}

	r1, err := relations.LinkEntity(ctx, req)
	require.NoError(t, err)

	// second attempt with updated confidence must not create a second row
	req.Confidence = 0.7
	r2, err := relations.LinkEntity(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, r1.ID, r2.ID)
	assert.InDelta(t, 0.7, float64(r2.Confidence), 1e-6)

	all, err := relations.ListForDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLinkEntityDistinctValuesMakeDistinctRows(t *testing.T) {
	client := openTestClient(t)
	docs := NewDocumentRepository(client, testLogger())
	relations := NewRelationRepository(client, testLogger())
	ctx := context.Background()

	doc := createTestDocument(t, docs)
	base := LinkEntityRequest{
		DocumentID:    doc.ID,
		QID:           "Q937",
		Fetch:         einsteinFetch,
		FieldCategory: constants.FieldCreator,
		Name:          "Альберт Эйнштейн",
		FieldKey:      constants.FieldCreator,
		Confidence:    1.0,
	}

	a := base
	a.FieldValue = "А. Эйнштейн"
	b := base
	b.FieldValue = "Albert Einstein"

	_, err := relations.LinkEntity(ctx, &a)
	require.NoError(t, err)
	_, err = relations.LinkEntity(ctx, &b)
	require.NoError(t, err)

	all, err := relations.ListForDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteForDocument(t *testing.T) {
	client := openTestClient(t)
	docs := NewDocumentRepository(client, testLogger())
	relations := NewRelationRepository(client, testLogger())
	ctx := context.Background()

	doc := createTestDocument(t, docs)
	_, err := relations.LinkEntity(ctx, &LinkEntityRequest{
		DocumentID:    doc.ID,
		QID:           "Q937",
		Fetch:         einsteinFetch,
		FieldCategory: constants.FieldCreator,
		Name:          "Альберт Эйнштейн",
		FieldKey:      constants.FieldCreator,
		FieldValue:    "Эйнштейн",
		Confidence:    1.0,
	})
	require.NoError(t, err)

	n, err := relations.DeleteForDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := relations.ListForDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Empty(t, all)
}
