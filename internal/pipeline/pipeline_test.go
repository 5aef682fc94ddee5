package pipeline

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent"
	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
	"github.com/evgenyd/docs-metadata-enhancer/internal/llm"
	"github.com/evgenyd/docs-metadata-enhancer/internal/loader"
	"github.com/evgenyd/docs-metadata-enhancer/internal/repository"
	"github.com/evgenyd/docs-metadata-enhancer/internal/wikidata"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

type fixture struct {
	client    *ent.Client
	docs      repository.DocumentRepository
	relations repository.RelationRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client, err := repository.OpenSQLite(context.Background(),
		"file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)", testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return &fixture{
		client:    client,
		docs:      repository.NewDocumentRepository(client, testLogger()),
		relations: repository.NewRelationRepository(client, testLogger()),
	}
}

func (f *fixture) createDoc(t *testing.T) *ent.Document {
	t.Helper()
	doc, err := f.docs.Create(context.Background(), &repository.CreateDocumentRequest{
		Name:       "paper.txt",
		SourcePath: "/data/paper.txt",
		Format:     constants.TXT,
		Owner:      "researcher",
	})
	require.NoError(t, err)
	return doc
}

type fakeLoader struct {
	segs []loader.Segment
	err  error
}

func (f *fakeLoader) Load(context.Context, string) ([]loader.Segment, error) {
	return f.segs, f.err
}

type fakeExtractor struct {
	calls int
	sets  []*llm.EntitySet
	errs  []error
}

func (f *fakeExtractor) Extract(context.Context, string) (*llm.EntitySet, error) {
	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var set *llm.EntitySet
	if i < len(f.sets) {
		set = f.sets[i]
	}
	return set, err
}

// fakeFinalizer deduplicates lists and takes the first scalar candidate,
// standing in for the model's finalization pass.
type fakeFinalizer struct{ err error }

func (f *fakeFinalizer) Finalize(_ context.Context, merged *llm.EntitySet) (*llm.EntitySet, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := llm.NewEntitySet()
	for _, field := range constants.MetadataFields {
		vals := merged.Get(field).Strings()
		if len(vals) == 0 {
			continue
		}
		if constants.IsListField(field) {
			seen := map[string]bool{}
			var dedup []string
			for _, v := range vals {
				if !seen[v] {
					seen[v] = true
					dedup = append(dedup, v)
				}
			}
			out.SetList(field, dedup)
		} else {
			out.SetScalar(field, vals[0])
		}
	}
	return out, nil
}

type fakeLinker struct {
	prepared bool
	results  map[string]wikidata.LinkResult
	calls    []string
}

func (f *fakeLinker) PrepareBatch(context.Context) { f.prepared = true }

func (f *fakeLinker) Link(_ context.Context, name string, _ constants.EntityType) (wikidata.LinkResult, error) {
	f.calls = append(f.calls, name)
	return f.results[name], nil
}

type fakeFetcher struct{}

func (fakeFetcher) FetchEntity(_ context.Context, qid string) (*wikidata.EntityData, error) {
	return &wikidata.EntityData{QID: qid, LabelRU: "метка " + qid}, nil
}

func chunkSet(title string, keywords ...string) *llm.EntitySet {
	s := llm.NewEntitySet()
	s.SetScalar(constants.FieldTitle, title)
	s.SetList(constants.FieldKeywords, keywords)
	return s
}

func textConfig() common.TextConfig {
	return common.TextConfig{ChunkSize: 3000, ChunkOverlap: 200}
}

func TestProcessorExtractionSuccess(t *testing.T) {
	f := newFixture(t)
	doc := f.createDoc(t)

	ld := &fakeLoader{segs: []loader.Segment{{Text: "Из архива физических трудов", Page: 1}}}
	ex := &fakeExtractor{sets: []*llm.EntitySet{chunkSet("Труды", "физика", "физика", "оптика")}}
	extraction := NewExtraction(ld, nil, ex, &fakeFinalizer{}, f.docs, textConfig(), testLogger())
	proc := NewProcessor(f.docs, extraction, nil, nil, testLogger())

	require.NoError(t, proc.RunExtraction(context.Background(), doc.ID))

	got, err := f.docs.Get(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocStatusSuccess), got.Status)
	assert.Nil(t, got.ProcessingError)
	require.NotEmpty(t, got.Metadata)
	assert.NoError(t, llm.ValidateMetadata(got.Metadata))
	assert.Contains(t, string(got.Metadata), `"Труды"`)
	assert.Equal(t, 1, ex.calls)
}

func TestProcessorExtractionChunkFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	doc := f.createDoc(t)

	// first chunk fails, second succeeds; pipeline must still finish
	long := make([]byte, 0, 7000)
	for len(long) < 7000 {
		long = append(long, []byte("слово ")...)
	}
	ld := &fakeLoader{segs: []loader.Segment{{Text: string(long), Page: 1}}}
	ex := &fakeExtractor{
		sets: []*llm.EntitySet{nil, chunkSet("Титул", "ключ")},
		errs: []error{common.ErrMalformedModelOutput, nil},
	}
	extraction := NewExtraction(ld, nil, ex, &fakeFinalizer{}, f.docs, textConfig(), testLogger())
	proc := NewProcessor(f.docs, extraction, nil, nil, testLogger())

	require.NoError(t, proc.RunExtraction(context.Background(), doc.ID))
	assert.GreaterOrEqual(t, ex.calls, 2)
}

func TestProcessorExtractionAllChunksFail(t *testing.T) {
	f := newFixture(t)
	doc := f.createDoc(t)

	ld := &fakeLoader{segs: []loader.Segment{{Text: "немного текста", Page: 1}}}
	ex := &fakeExtractor{errs: []error{common.ErrBackendUnavailable}}
	extraction := NewExtraction(ld, nil, ex, &fakeFinalizer{}, f.docs, textConfig(), testLogger())
	proc := NewProcessor(f.docs, extraction, nil, nil, testLogger())

	err := proc.RunExtraction(context.Background(), doc.ID)
	assert.ErrorIs(t, err, common.ErrExtractionFailed)

	got, gerr := f.docs.Get(context.Background(), doc.ID)
	require.NoError(t, gerr)
	assert.Equal(t, string(constants.DocStatusFailed), got.Status)
	require.NotNil(t, got.ProcessingError)
	assert.Contains(t, *got.ProcessingError, "extraction")
}

func TestProcessorExtractionLoaderFailure(t *testing.T) {
	f := newFixture(t)
	doc := f.createDoc(t)

	ld := &fakeLoader{err: common.ErrNotFound}
	extraction := NewExtraction(ld, nil, &fakeExtractor{}, &fakeFinalizer{}, f.docs, textConfig(), testLogger())
	proc := NewProcessor(f.docs, extraction, nil, nil, testLogger())

	err := proc.RunExtraction(context.Background(), doc.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func enrichedFixtureDoc(t *testing.T, f *fixture) *ent.Document {
	t.Helper()
	doc := f.createDoc(t)
	set := llm.NewEntitySet()
	set.SetScalar(constants.FieldTitle, "Общая теория относительности")
	set.SetList(constants.FieldCreator, []string{"Альберт Эйнштейн"})
	set.SetList(constants.FieldKeywords, []string{"гравитация", "неизвестное слово"})
	meta, err := set.MarshalMetadata()
	require.NoError(t, err)
	require.NoError(t, f.docs.SaveMetadata(context.Background(), doc.ID, meta))
	got, err := f.docs.Get(context.Background(), doc.ID)
	require.NoError(t, err)
	return got
}

func TestProcessorEnrichment(t *testing.T) {
	f := newFixture(t)
	doc := enrichedFixtureDoc(t, f)

	linker := &fakeLinker{results: map[string]wikidata.LinkResult{
		"Альберт Эйнштейн": {QID: "Q937", Confidence: 1.0, Context: "type-verified as person"},
		"гравитация":       {QID: "Q11402", Confidence: 1.0, Context: "exact label match"},
	}}
	enrichment := NewEnrichment(linker, fakeFetcher{}, f.docs, f.relations, testLogger())
	proc := NewProcessor(f.docs, nil, enrichment, nil, testLogger())

	require.NoError(t, proc.RunEnrichment(context.Background(), doc.ID))
	assert.True(t, linker.prepared, "self-test gate must run before the batch")

	got, err := f.docs.Get(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocStatusSuccess), got.Status)
	assert.Equal(t, "Q937", got.MetaWikidata[constants.FieldCreator]["Альберт Эйнштейн"])
	assert.Equal(t, "Q11402", got.MetaWikidata[constants.FieldKeywords]["гравитация"])
	assert.NotContains(t, got.MetaWikidata[constants.FieldKeywords], "неизвестное слово")

	// list entries carry the link, unlinked ones stay name-only
	assert.Contains(t, string(got.Metadata), `{"name":"гравитация","wikidata":"Q11402"}`)
	assert.Contains(t, string(got.Metadata), `{"name":"неизвестное слово"}`)
	assert.NoError(t, llm.ValidateMetadata(got.Metadata))

	rels, err := f.relations.ListForDocument(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Len(t, rels, 2)
}

func TestProcessorEnrichmentIdempotent(t *testing.T) {
	f := newFixture(t)
	doc := enrichedFixtureDoc(t, f)

	linker := &fakeLinker{results: map[string]wikidata.LinkResult{
		"Альберт Эйнштейн": {QID: "Q937", Confidence: 1.0},
	}}
	enrichment := NewEnrichment(linker, fakeFetcher{}, f.docs, f.relations, testLogger())
	proc := NewProcessor(f.docs, nil, enrichment, nil, testLogger())

	require.NoError(t, proc.RunEnrichment(context.Background(), doc.ID))
	require.NoError(t, proc.RunEnrichment(context.Background(), doc.ID))

	rels, err := f.relations.ListForDocument(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Len(t, rels, 1, "re-running enrichment must not duplicate relations")
}

func TestProcessorEnrichmentWithoutMetadata(t *testing.T) {
	f := newFixture(t)
	doc := f.createDoc(t)

	enrichment := NewEnrichment(&fakeLinker{}, fakeFetcher{}, f.docs, f.relations, testLogger())
	proc := NewProcessor(f.docs, nil, enrichment, nil, testLogger())

	err := proc.RunEnrichment(context.Background(), doc.ID)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestProcessorResyncDropsStaleLinks(t *testing.T) {
	f := newFixture(t)
	doc := enrichedFixtureDoc(t, f)
	ctx := context.Background()

	// embedded links: one still present in metadata, one edited away
	require.NoError(t, f.docs.SaveEnrichment(ctx, doc.ID, doc.Metadata, map[string]map[string]string{
		constants.FieldCreator:  {"Альберт Эйнштейн": "Q937"},
		constants.FieldKeywords: {"удалённое значение": "Q999"},
	}))
	got, err := f.docs.Get(ctx, doc.ID)
	require.NoError(t, err)

	resync := NewResync(fakeFetcher{}, f.relations, testLogger())
	proc := NewProcessor(f.docs, nil, nil, resync, testLogger())
	require.NoError(t, proc.RunResync(ctx, got.ID))

	rels, err := f.relations.ListForDocument(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, rels, 1, "only links still present in metadata are rebuilt")
	assert.Equal(t, constants.FieldCreator, rels[0].FieldCategory)
	assert.Equal(t, "Альберт Эйнштейн", rels[0].FieldValue)
}
