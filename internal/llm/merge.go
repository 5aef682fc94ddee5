package llm

import (
	"fmt"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
)

// Merge concatenates per-chunk entity sets in chunk order. List fields keep
// duplicates, since deduplication belongs to the finalizer which sees the
// whole document. Scalar fields become candidate lists for the finalizer to
// resolve. Nil sets (failed chunks) are skipped; if every chunk contributed
// nothing the merge fails.
func Merge(sets []*EntitySet) (*EntitySet, error) {
	merged := NewEntitySet()
	for _, f := range constants.MetadataFields {
		var vals []string
		for _, s := range sets {
			if s == nil {
				continue
			}
			vals = append(vals, s.Get(f).Strings()...)
		}
		if vals != nil {
			merged.SetList(f, vals)
		}
	}
	if merged.IsEmpty() {
		return nil, fmt.Errorf("no chunk produced entities: %w", common.ErrExtractionFailed)
	}
	return merged, nil
}
