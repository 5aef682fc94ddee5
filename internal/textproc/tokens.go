package textproc

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	encOnce sync.Once
	encoder *tiktoken.Tiktoken
)

// CountTokens estimates how many model tokens the text costs, for logging
// and chunk sizing diagnostics. Uses the cl100k_base encoding when it can be
// initialized and degrades to a whitespace word count otherwise, so token
// accounting never blocks the pipeline.
func CountTokens(text string) int {
	encOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			encoder = enc
		}
	})
	if encoder == nil {
		return len(strings.Fields(text))
	}
	return len(encoder.Encode(text, nil, nil))
}
