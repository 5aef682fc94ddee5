package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
)

func TestParseReplyCanonicalFields(t *testing.T) {
	reply := `{
		"creator": ["Иванов И.И.", "Петров П.П."],
		"title": "История науки",
		"keywords": ["наука", "история"],
		"summary": "Обзор.",
		"document_language": "русский"
	}`
	set, err := ParseReply(reply)
	require.NoError(t, err)
	assert.Equal(t, []string{"Иванов И.И.", "Петров П.П."}, set.Get(constants.FieldCreator).List)
	assert.Equal(t, "История науки", set.Get(constants.FieldTitle).Str)
	assert.Equal(t, "русский", set.Get(constants.FieldDocumentLanguage).Str)
}

func TestParseReplyLegacyAliases(t *testing.T) {
	reply := `{"author": ["Smith J."], "topic": "Old Schema Doc", "language": "english", "publisher": ["MIT Press"]}`
	set, err := ParseReply(reply)
	require.NoError(t, err)
	assert.Equal(t, []string{"Smith J."}, set.Get(constants.FieldCreator).List)
	assert.Equal(t, "Old Schema Doc", set.Get(constants.FieldTitle).Str)
	assert.Equal(t, "english", set.Get(constants.FieldDocumentLanguage).Str)
	assert.Equal(t, []string{"MIT Press"}, set.Get(constants.FieldOrganizations).List)
}

func TestParseReplyDropsUnknownKeys(t *testing.T) {
	set, err := ParseReply(`{"title": "T", "page_count": 12, "confidence": 0.9}`)
	require.NoError(t, err)
	assert.Equal(t, "T", set.Get(constants.FieldTitle).Str)
	assert.Len(t, set.Fields, 1)
}

func TestParseReplyCoercesShapes(t *testing.T) {
	// a bare string for a list field, and a list for a scalar field
	set, err := ParseReply(`{"keywords": "single keyword", "title": ["", "First Title", "Second"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"single keyword"}, set.Get(constants.FieldKeywords).List)
	assert.Equal(t, "First Title", set.Get(constants.FieldTitle).Str)
}

func TestParseReplyStripsCodeFences(t *testing.T) {
	set, err := ParseReply("```json\n{\"title\": \"Fenced\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Fenced", set.Get(constants.FieldTitle).Str)
}

func TestParseReplyMalformed(t *testing.T) {
	_, err := ParseReply("Sure, here is the metadata you asked for:")
	assert.ErrorIs(t, err, common.ErrMalformedModelOutput)
}

func TestParseReplyLinkedObjects(t *testing.T) {
	set, err := ParseReply(`{"organizations": [{"name": "МГУ", "wikidata": "Q13164"}, "СПбГУ"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"МГУ", "СПбГУ"}, set.Get(constants.FieldOrganizations).List)
}

func TestParseReplyFoldsAlternateObjectKeys(t *testing.T) {
	set, err := ParseReply(`{"creator": [{"label": "Иванов"}, {"value": "Петров"}, {"role": "editor"}]}`)
	require.NoError(t, err)
	// objects with no usable key are dropped, never an error
	assert.Equal(t, []string{"Иванов", "Петров"}, set.Get(constants.FieldCreator).List)
}

func TestMergeConcatenatesWithoutDedup(t *testing.T) {
	a := NewEntitySet()
	a.SetList(constants.FieldKeywords, []string{"физика", "оптика"})
	a.SetScalar(constants.FieldTitle, "Титул А")

	b := NewEntitySet()
	b.SetList(constants.FieldKeywords, []string{"оптика", "лазеры"})
	b.SetScalar(constants.FieldTitle, "Титул Б")

	merged, err := Merge([]*EntitySet{a, b})
	require.NoError(t, err)
	assert.Equal(t, []string{"физика", "оптика", "оптика", "лазеры"}, merged.Get(constants.FieldKeywords).List)
	// scalar candidates collected in chunk order for the finalizer
	assert.Equal(t, []string{"Титул А", "Титул Б"}, merged.Get(constants.FieldTitle).List)
}

func TestMergeSkipsFailedChunks(t *testing.T) {
	b := NewEntitySet()
	b.SetList(constants.FieldCreator, []string{"Smith"})
	merged, err := Merge([]*EntitySet{nil, b, nil})
	require.NoError(t, err)
	assert.Equal(t, []string{"Smith"}, merged.Get(constants.FieldCreator).List)
}

func TestMergeAllEmptyFails(t *testing.T) {
	_, err := Merge([]*EntitySet{nil, NewEntitySet()})
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
}

func TestMergeOrderPreservingAssociativity(t *testing.T) {
	mk := func(vals ...string) *EntitySet {
		s := NewEntitySet()
		s.SetList(constants.FieldDates, vals)
		return s
	}
	a, b, c := mk("1990"), mk("1991"), mk("1992")

	ab, err := Merge([]*EntitySet{a, b})
	require.NoError(t, err)
	abc1, err := Merge([]*EntitySet{ab, c})
	require.NoError(t, err)
	abc2, err := Merge([]*EntitySet{a, b, c})
	require.NoError(t, err)
	assert.Equal(t, abc2.Get(constants.FieldDates).List, abc1.Get(constants.FieldDates).List)
}

func TestMarshalMetadataPlaceholders(t *testing.T) {
	s := NewEntitySet()
	s.SetScalar(constants.FieldTitle, "Only a title")
	raw, err := s.MarshalMetadata()
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	require.Len(t, m, len(constants.MetadataFields))
	assert.JSONEq(t, `"Only a title"`, string(m[constants.FieldTitle]))
	assert.JSONEq(t, `[]`, string(m[constants.FieldKeywords]))
	assert.JSONEq(t, `""`, string(m[constants.FieldSummary]))

	assert.NoError(t, ValidateMetadata(raw))
}

func TestValidateMetadataRejectsUnknownKey(t *testing.T) {
	s := NewEntitySet()
	raw, err := s.MarshalMetadata()
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	m["page_count"] = 3
	bad, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Error(t, ValidateMetadata(bad))
}

func TestValidateMetadataAcceptsLinkedItems(t *testing.T) {
	s := NewEntitySet()
	s.SetLinked(constants.FieldCreator, []LinkedItem{{Name: "Иванов", Wikidata: "Q123"}, {Name: "Петров"}})
	raw, err := s.MarshalMetadata()
	require.NoError(t, err)
	assert.NoError(t, ValidateMetadata(raw))
}

func TestFinalizationUserContentListsAllFields(t *testing.T) {
	s := NewEntitySet()
	s.SetList(constants.FieldTitle, []string{"T1", "T2"})
	content, err := FinalizationUserContent(s)
	require.NoError(t, err)
	assert.Contains(t, content, `"title": ["T1", "T2"]`)
	assert.Contains(t, content, `"rights": []`)
}
