// Package llmextract sends normalized prescription text to an external
// language model and parses its response into the medication schema. The
// external model is treated as an untrusted, best-effort oracle: any
// failure — transport, timeout, malformed output — resolves to a nil
// result, never an error, so callers fall back to the offline stages
// without exception handling.
package llmextract

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/rxlens/rxlens/internal/core/model"
	"github.com/rxlens/rxlens/internal/llm"
)

// Extractor invokes the external model with the fixed extraction prompt.
type Extractor struct {
	LLM     llm.LLMClient
	Prompt  string
	Timeout time.Duration
}

// NewExtractor builds an extractor. prompt overrides the built-in prompt
// when non-empty and must contain a single %s for the OCR text; a zero
// timeout disables the per-call deadline.
func NewExtractor(llmClient llm.LLMClient, prompt string, timeout time.Duration) *Extractor {
	if strings.TrimSpace(prompt) == "" {
		prompt = defaultPrompt
	}
	return &Extractor{
		LLM:     llmClient,
		Prompt:  prompt,
		Timeout: timeout,
	}
}

// Extract asks the model for medications, conditions, and allergies in
// the cleaned text. It returns nil on any failure; it never panics and
// never returns an error. Candidates in a non-nil result are tagged
// source=external and guaranteed non-nil slices.
func (e *Extractor) Extract(ctx context.Context, cleanedText string) *model.ExternalExtraction {
	if e.LLM == nil {
		return nil
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	prompt := fmt.Sprintf(e.Prompt, cleanedText)
	response, err := e.LLM.Generate(ctx, prompt)
	if err != nil {
		log.Printf("llmextract: model call failed: %v", err)
		return nil
	}

	result, err := parseJSON[model.ExternalExtraction](response)
	if err != nil {
		log.Printf("llmextract: unparseable model response: %v", err)
		return nil
	}

	if result.Medications == nil {
		result.Medications = []model.MedicationCandidate{}
	}
	if result.Conditions == nil {
		result.Conditions = []string{}
	}
	if result.Allergies == nil {
		result.Allergies = []string{}
	}
	for i := range result.Medications {
		result.Medications[i].Source = model.SourceExternal
	}

	return &result
}
