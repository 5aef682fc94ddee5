// Package wikidata resolves metadata values to Wikidata identifiers: search,
// type verification, entity detail fetch, and the caching linker on top.
package wikidata

import (
	"github.com/evgenyd/docs-metadata-enhancer/constants"
)

// SearchResult is one candidate from entity search.
type SearchResult struct {
	ID          string
	Label       string
	Description string
}

// Property is a resolved claim group: the property's label and the labels or
// literal renderings of its values.
type Property struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// EntityData is the detail fetch result persisted into KnowledgeEntity.
type EntityData struct {
	QID           string
	LabelRU       string
	LabelEN       string
	DescriptionRU string
	DescriptionEN string
	Properties    map[string]Property // keyed by property id, e.g. "P31"
}

// acceptedTypes lists, per entity type, the Wikidata classes whose instances
// we accept during type verification.
var acceptedTypes = map[constants.EntityType]map[string]struct{}{
	constants.EntityTypePerson: {
		"Q5": {}, // human
	},
	constants.EntityTypeOrganization: {
		"Q43229":  {}, // organization
		"Q3918":   {}, // university
		"Q875538": {}, // public university
	},
	constants.EntityTypeLanguage: {
		"Q34770": {}, // language
	},
	constants.EntityTypeDiscipline: {
		"Q11862829": {}, // academic discipline
	},
	constants.EntityTypeConcept: {
		"Q1656682": {}, // event
		"Q7184903": {}, // abstract object
	},
}

// typeAccepted reports whether any declared class is in the accepted set for
// the entity type.
func typeAccepted(et constants.EntityType, classes []string) bool {
	accepted, ok := acceptedTypes[et]
	if !ok {
		return false
	}
	for _, c := range classes {
		if _, hit := accepted[c]; hit {
			return true
		}
	}
	return false
}

// claimProperties are the auxiliary properties fetched for persisted
// entities: instance of, subclass of, dates of death and birth, place of
// birth, occupation, administrative territory and country.
var claimProperties = []string{"P31", "P279", "P570", "P19", "P569", "P106", "P131", "P17"}
