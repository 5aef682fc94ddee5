package llm

import (
	"fmt"
	"strings"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
)

var fieldDescriptions = map[string]string{
	constants.FieldCreator:          "people who authored or created the document",
	constants.FieldOrganizations:    "organizations, institutions or publishers mentioned as responsible for the document",
	constants.FieldTitle:            "the document title",
	constants.FieldKeywords:         "key terms and phrases characterizing the content",
	constants.FieldDates:            "dates relevant to the document (creation, publication, coverage)",
	constants.FieldSummary:          "a short prose summary of the document",
	constants.FieldSubject:          "academic disciplines or subject areas the document belongs to",
	constants.FieldDocumentLanguage: "the language the document is written in",
	constants.FieldIdentifier:       "formal identifiers such as ISBN, DOI or report numbers",
	constants.FieldContributor:      "people who contributed to the document other than its creators",
	constants.FieldRights:           "copyright or usage rights statements",
}

// schemaDescription renders the field list with types for embedding in both
// prompts.
func schemaDescription() string {
	var b strings.Builder
	for _, f := range constants.MetadataFields {
		typ := `string`
		if constants.IsListField(f) {
			typ = `list of strings`
		}
		fmt.Fprintf(&b, "- %q (%s): %s\n", f, typ, fieldDescriptions[f])
	}
	return b.String()
}

// ExtractionSystemPrompt instructs the model to pull metadata entities out of
// one text chunk. The chunk itself goes in the user message.
func ExtractionSystemPrompt() string {
	return `You extract bibliographic metadata from fragments of documents.
The fragment may be in Russian or English.

Return a single JSON object with exactly these keys:
` + schemaDescription() + `
Rules:
- Include only information actually present in the fragment.
- Use an empty list [] or empty string "" when the fragment gives no evidence for a field.
- Keep names and titles in their original language and spelling.
- Respond with the JSON object only, no explanations and no markdown fences.`
}

// FinalizationSystemPrompt instructs the model to consolidate the merged
// entity bag into the final metadata object.
func FinalizationSystemPrompt() string {
	return `You consolidate raw metadata candidates collected from fragments of one document into its final metadata.

Return a single JSON object with exactly these keys:
` + schemaDescription() + `
Rules:
- Remove exact duplicates from every list.
- Choose or synthesize the single best title from the title candidates.
- Write one summary of 2 to 3 sentences based on the summary candidates.
- Pick the single most appropriate document language.
- Keep 4 to 7 keywords, ordered from most to least relevant.
- Every key must be present; use [] or "" where there is not enough evidence.
- Respond with the JSON object only, no explanations and no markdown fences.`
}

// FinalizationUserContent renders the merged candidates as the user message
// for the finalization call. Scalar fields arrive as candidate lists at this
// point.
func FinalizationUserContent(merged *EntitySet) (string, error) {
	payload := make(map[string][]string, len(constants.MetadataFields))
	for _, f := range constants.MetadataFields {
		vals := merged.Get(f).Strings()
		if vals == nil {
			vals = []string{}
		}
		payload[f] = vals
	}
	b, err := marshalOrdered(payload)
	if err != nil {
		return "", err
	}
	return "Metadata candidates:\n" + b, nil
}

func marshalOrdered(payload map[string][]string) (string, error) {
	var b strings.Builder
	b.WriteString("{\n")
	for i, f := range constants.MetadataFields {
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  %q: [", f)
		for j, v := range payload[f] {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%q", v)
		}
		b.WriteString("]")
	}
	b.WriteString("\n}")
	return b.String(), nil
}

// RepairInstruction asks the model to reformat an invalid reply. Sent once
// per failed call, with the invalid reply as the preceding assistant turn.
const RepairInstruction = `Your previous reply was not a valid JSON object of the required schema.
Reformat your answer as a single valid JSON object with exactly the required keys and nothing else.`
