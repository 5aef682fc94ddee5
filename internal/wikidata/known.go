package wikidata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadKnownEntities reads the optional manual name-to-QID table. An empty
// path or a missing file yields an empty table, not an error; the table is a
// convenience for names the public search handles poorly.
func LoadKnownEntities(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read known entities: %w", err)
	}
	var table map[string]string
	if err := yaml.Unmarshal(b, &table); err != nil {
		return nil, fmt.Errorf("parse known entities: %w", err)
	}
	if table == nil {
		table = map[string]string{}
	}
	return table, nil
}
