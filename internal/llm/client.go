// Package llm abstracts the external generative model behind a single
// Generate call, with interchangeable provider backends.
package llm

import (
	"context"
)

// LLMClient is the one capability the extraction pipeline needs from a
// model provider.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
