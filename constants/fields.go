package constants

// Canonical metadata field names (Dublin-Core-like). Stored as JSON keys in
// document.metadata; other tooling round-trips against exactly this set.
const (
	FieldCreator          = "creator"
	FieldOrganizations    = "organizations"
	FieldTitle            = "title"
	FieldKeywords         = "keywords"
	FieldDates            = "dates"
	FieldSummary          = "summary"
	FieldSubject          = "subject"
	FieldDocumentLanguage = "document_language"
	FieldIdentifier       = "identifier"
	FieldContributor      = "contributor"
	FieldRights           = "rights"
)

// MetadataFields lists every canonical field, in presentation order.
var MetadataFields = []string{
	FieldCreator,
	FieldOrganizations,
	FieldTitle,
	FieldKeywords,
	FieldDates,
	FieldSummary,
	FieldSubject,
	FieldDocumentLanguage,
	FieldIdentifier,
	FieldContributor,
	FieldRights,
}

// ListFields holds the fields whose value is a list; every other canonical
// field is a scalar string.
var ListFields = map[string]struct{}{
	FieldCreator:       {},
	FieldOrganizations: {},
	FieldKeywords:      {},
	FieldDates:         {},
	FieldSubject:       {},
	FieldContributor:   {},
}

// IsMetadataField reports whether name is one of the canonical fields.
func IsMetadataField(name string) bool {
	for _, f := range MetadataFields {
		if f == name {
			return true
		}
	}
	return false
}

// IsListField reports whether the canonical field holds a list value.
func IsListField(name string) bool {
	_, ok := ListFields[name]
	return ok
}

// legacyFieldAliases maps field names from the deprecated "author/topic"
// schema vintage onto the canonical set. Accepted only at the LLM-output
// parse boundary; never emitted.
var legacyFieldAliases = map[string]string{
	"author":       FieldCreator,
	"authors":      FieldCreator,
	"topic":        FieldTitle,
	"subject_area": FieldSubject,
	"language":     FieldDocumentLanguage,
	"publisher":    FieldOrganizations,
	"contributors": FieldContributor,
}

// CanonicalField resolves a model-reported key to its canonical field name.
// Returns false for keys outside the schema (including legacy fields that no
// longer exist).
func CanonicalField(name string) (string, bool) {
	if IsMetadataField(name) {
		return name, true
	}
	if canon, ok := legacyFieldAliases[name]; ok {
		return canon, true
	}
	return "", false
}

// EntityType is the semantic category used for knowledge-base type
// verification.
type EntityType string

const (
	EntityTypePerson       EntityType = "person"
	EntityTypeOrganization EntityType = "organization"
	EntityTypeLanguage     EntityType = "language"
	EntityTypeDiscipline   EntityType = "discipline"
	EntityTypeConcept      EntityType = "concept"
)

// fieldEntityTypes assigns the expected entity type per canonical field.
// Fields absent here are linked without type verification.
var fieldEntityTypes = map[string]EntityType{
	FieldCreator:          EntityTypePerson,
	FieldContributor:      EntityTypePerson,
	FieldOrganizations:    EntityTypeOrganization,
	FieldTitle:            EntityTypeConcept,
	FieldKeywords:         EntityTypeConcept,
	FieldSubject:          EntityTypeDiscipline,
	FieldDocumentLanguage: EntityTypeLanguage,
}

// EntityTypeForField returns the expected entity type for a canonical field,
// or "" when the field is not type-linked.
func EntityTypeForField(field string) EntityType {
	return fieldEntityTypes[field]
}
