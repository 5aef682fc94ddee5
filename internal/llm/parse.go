package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
)

// ParseReply turns a raw model reply into an EntitySet. Code fences are
// stripped, legacy field aliases are folded onto the canonical schema,
// unknown keys are dropped, and values are coerced to the field's declared
// shape (a bare string for a list field becomes a one-element list, a list
// for a scalar field contributes its first non-empty entry).
func ParseReply(reply string) (*EntitySet, error) {
	cleaned := StripCodeFences(reply)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("reply is not a JSON object: %v: %w", err, common.ErrMalformedModelOutput)
	}

	set := NewEntitySet()
	for key, val := range raw {
		field, ok := constants.CanonicalField(strings.ToLower(strings.TrimSpace(key)))
		if !ok {
			continue
		}
		entries, err := coerceStrings(val)
		if err != nil {
			return nil, fmt.Errorf("field %q: %v: %w", key, err, common.ErrMalformedModelOutput)
		}
		mergeField(set, field, entries)
	}
	return set, nil
}

// mergeField folds entries into the set, appending when an alias and its
// canonical field both occur in one reply.
func mergeField(set *EntitySet, field string, entries []string) {
	if constants.IsListField(field) {
		existing := set.Get(field).List
		set.SetList(field, append(existing, entries...))
		return
	}
	if set.Get(field).Str != "" {
		return
	}
	for _, e := range entries {
		if e != "" {
			set.SetScalar(field, e)
			return
		}
	}
}

// coerceStrings flattens a JSON value into trimmed non-empty strings.
// Accepts a string, an array of strings or objects (folding name, value,
// label or title keys), a number or null; anything else is malformed.
// Objects with no usable key are dropped with a warning, not an error.
func coerceStrings(raw json.RawMessage) ([]string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s = strings.TrimSpace(s); s != "" {
			return []string{s}, nil
		}
		return nil, nil
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		var out []string
		for _, el := range arr {
			vals, err := coerceStrings(el)
			if err != nil {
				return nil, err
			}
			out = append(out, vals...)
		}
		return out, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		for _, key := range []string{"name", "value", "label", "title"} {
			var s string
			if v, ok := obj[key]; ok && json.Unmarshal(v, &s) == nil {
				if s = strings.TrimSpace(s); s != "" {
					return []string{s}, nil
				}
			}
		}
		slog.Warn("llm.parse.object_dropped", "value", truncateJSON(raw))
		return nil, nil
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		return []string{num.String()}, nil
	}

	if string(raw) == "null" {
		return nil, nil
	}
	return nil, fmt.Errorf("unsupported value %s", truncateJSON(raw))
}

// StripCodeFences removes a surrounding markdown code fence, with or without
// a language tag, which models habitually wrap JSON in.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		first := strings.TrimSpace(s[:i])
		if first == "" || isFenceTag(first) {
			s = s[i+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func isFenceTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func truncateJSON(raw json.RawMessage) string {
	s := string(raw)
	if len(s) > 80 {
		return s[:80] + "..."
	}
	return s
}
