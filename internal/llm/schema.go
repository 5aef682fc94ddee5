package llm

import (
	"github.com/evgenyd/docs-metadata-enhancer/constants"
)

// BuildMetadataJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. Used locally to validate the finalized metadata object before
// it is persisted.
func BuildMetadataJSONSchema() map[string]any {
	props := make(map[string]any, len(constants.MetadataFields))
	required := make([]any, 0, len(constants.MetadataFields))
	for _, f := range constants.MetadataFields {
		if constants.IsListField(f) {
			props[f] = map[string]any{
				"type":  "array",
				"items": stringOrLinkedProp(),
			}
		} else {
			props[f] = map[string]any{"type": "string"}
		}
		required = append(required, f)
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

// stringOrLinkedProp admits both plain strings and enriched {name, wikidata}
// objects, so the same schema validates metadata before and after linking.
func stringOrLinkedProp() map[string]any {
	return map[string]any{
		"anyOf": []any{
			map[string]any{"type": "string"},
			map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"name":     map[string]any{"type": "string", "minLength": 1},
					"wikidata": map[string]any{"type": "string", "pattern": `^Q\d+$`},
				},
				"required": []any{"name"},
			},
		},
	}
}
