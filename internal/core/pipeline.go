// Package core wires the extraction stages into one pipeline: normalize
// OCR text, extract medication candidates with the fuzzy matcher and the
// external model independently, reconcile both candidate sets, and
// attach dosing schedules.
package core

import (
	"context"
	"time"

	"github.com/rxlens/rxlens/internal/config"
	"github.com/rxlens/rxlens/internal/core/drugindex"
	"github.com/rxlens/rxlens/internal/core/fuzzymatch"
	"github.com/rxlens/rxlens/internal/core/llmextract"
	"github.com/rxlens/rxlens/internal/core/model"
	"github.com/rxlens/rxlens/internal/core/normalize"
	"github.com/rxlens/rxlens/internal/core/reconcile"
	"github.com/rxlens/rxlens/internal/core/schedule"
	"github.com/rxlens/rxlens/internal/llm"
	"github.com/rxlens/rxlens/internal/metrics"
)

// Pipeline is stateless between requests; the only shared state is the
// read-only alias index, so concurrent use needs no locking.
type Pipeline struct {
	Index     *drugindex.Index
	Matcher   *fuzzymatch.Matcher
	Extractor *llmextract.Extractor
	Merger    *reconcile.Merger
	Debug     bool
}

// Result is the full output of one extraction run.
type Result struct {
	Normalized *model.NormalizationResult `json:"normalized"`
	Entities   *model.EntityBundle        `json:"entities"`
	Debug      *model.ExtractionDebug     `json:"extraction_debug,omitempty"`
}

// NewPipeline builds a pipeline around the given model client. llmClient
// may be nil, in which case the external stage always reports no result
// and extraction runs fully offline.
func NewPipeline(llmClient llm.LLMClient, cfg *config.Config) *Pipeline {
	index := drugindex.New()
	return &Pipeline{
		Index:     index,
		Matcher:   fuzzymatch.NewMatcher(index, cfg.Pipeline.FuzzyThreshold),
		Extractor: llmextract.NewExtractor(llmClient, cfg.LLM.Prompt, time.Duration(cfg.LLM.TimeoutSeconds)*time.Second),
		Merger:    reconcile.NewMerger(cfg.Pipeline.MergeThreshold),
		Debug:     cfg.Pipeline.Debug,
	}
}

// NormalizeAndExtract runs the whole pipeline over raw OCR text. The
// fuzzy stage always runs, regardless of the external stage's outcome,
// so the pipeline keeps working with the model unavailable. debug forces
// stage instrumentation into the result even when the pipeline-wide
// debug flag is off.
func (p *Pipeline) NormalizeAndExtract(ctx context.Context, reviewedText string, debug bool) *Result {
	started := time.Now()
	metrics.ExtractionsTotal.Inc()

	normalized := normalize.Normalize(reviewedText)
	cleanText := normalized.CleanedText

	// The two stages have no data dependency; the external network call
	// runs while the fuzzy scanner works.
	externalCh := make(chan *model.ExternalExtraction, 1)
	go func() {
		externalCh <- p.Extractor.Extract(ctx, cleanText)
	}()

	fuzzyMeds := p.Matcher.Extract(cleanText)
	external := <-externalCh

	var externalMeds []model.MedicationCandidate
	if external != nil {
		externalMeds = external.Medications
	} else {
		metrics.ExternalStageFailures.Inc()
	}

	merged := p.Merger.Merge(externalMeds, fuzzyMeds)
	for i := range merged {
		merged[i].Schedule = schedule.Build(merged[i])
	}

	// The external result is trusted per field only when non-empty.
	conditions := reconcile.FallbackConditions(cleanText)
	if external != nil && len(external.Conditions) > 0 {
		conditions = external.Conditions
	}
	allergies := reconcile.FallbackAllergies(cleanText)
	if external != nil && len(external.Allergies) > 0 {
		allergies = external.Allergies
	}

	if merged == nil {
		merged = []model.MedicationCandidate{}
	}

	result := &Result{
		Normalized: normalized,
		Entities: &model.EntityBundle{
			Medications: merged,
			Conditions:  conditions,
			Allergies:   allergies,
			LabValues:   []any{},
		},
	}

	if debug || p.Debug {
		preview := cleanText
		if len(preview) > 200 {
			preview = preview[:200]
		}
		result.Debug = &model.ExtractionDebug{
			ExternalMedCount: len(externalMeds),
			FuzzyMedCount:    len(fuzzyMeds),
			MergedCount:      len(merged),
			ExternalOK:       external != nil,
			CleanTextPreview: preview,
		}
	}

	metrics.ExtractionDuration.Observe(time.Since(started).Seconds())
	metrics.MedicationsExtracted.Observe(float64(len(merged)))

	return result
}
