// Package fuzzymatch finds medications in noisy OCR text by sliding
// multi-word windows over it and resolving each window against the drug
// alias index, exactly first, then by string similarity. It runs fully
// offline and serves as the safety net when the external model stage is
// unavailable.
package fuzzymatch

import (
	"regexp"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/rxlens/rxlens/internal/core/drugindex"
	"github.com/rxlens/rxlens/internal/core/model"
)

const fuzzyNotes = "Extracted via fuzzy OCR matching"

// nonNameRe matches tokens made entirely of digits and punctuation,
// which can never be drug names.
var nonNameRe = regexp.MustCompile(`^[\d\W]+$`)

// Matcher extracts medication candidates from normalized text.
type Matcher struct {
	index     *drugindex.Index
	threshold float64
	lev       *metrics.Levenshtein
}

// NewMatcher builds a matcher over the given alias index. threshold is
// the minimum normalized edit similarity at which a token is accepted as
// a garbled spelling of a known alias.
func NewMatcher(index *drugindex.Index, threshold float64) *Matcher {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	return &Matcher{
		index:     index,
		threshold: threshold,
		lev:       lev,
	}
}

// Extract scans the text and returns one candidate per recognized drug,
// first occurrence wins. Dosage, frequency, route, and duration are
// pulled from the surrounding lines with pattern rules; fields that
// cannot be found stay empty.
func (m *Matcher) Extract(cleanedText string) []model.MedicationCandidate {
	var medications []model.MedicationCandidate
	seen := make(map[string]bool)

	lines := strings.Split(strings.ReplaceAll(cleanedText, "\r", "\n"), "\n")

	for lineIdx, line := range lines {
		words := strings.Fields(line)
		for i := range words {
			// Longest window first, so multi-word brand names beat their
			// own substrings.
			for _, size := range []int{3, 2, 1} {
				if i+size > len(words) {
					continue
				}
				token := strings.Join(words[i:i+size], " ")
				if len(token) < 3 || nonNameRe.MatchString(token) {
					continue
				}

				canonical, ok := m.resolve(token)
				if !ok || seen[strings.ToLower(canonical)] {
					continue
				}
				seen[strings.ToLower(canonical)] = true

				context := contextAround(lines, lineIdx)
				medications = append(medications, model.MedicationCandidate{
					Name:      canonical,
					Dosage:    extractDosage(context),
					Frequency: extractFrequency(context),
					Duration:  extractDuration(context),
					Route:     extractRoute(context),
					Notes:     fuzzyNotes,
					Source:    model.SourceFuzzy,
				})
				// Overlapping windows at this position describe the same
				// drug; move on to the next start position.
				break
			}
		}
	}

	return medications
}

// resolve maps a token to a canonical drug name: exact case-folded
// lookup first, then the best-scoring alias if it clears the threshold.
func (m *Matcher) resolve(token string) (string, bool) {
	if canonical, ok := m.index.Canonicalize(token); ok {
		return canonical, true
	}

	tokenLower := strings.ToLower(strings.TrimSpace(token))
	bestScore := 0.0
	bestAlias := ""
	for _, alias := range m.index.Aliases() {
		score := strutil.Similarity(tokenLower, alias, m.lev)
		if score > bestScore {
			bestScore = score
			bestAlias = alias
		}
	}

	if bestScore < m.threshold {
		return "", false
	}
	canonical, _ := m.index.Canonicalize(bestAlias)
	return canonical, true
}

// Similarity reports the normalized edit similarity used for token
// resolution, for callers that need to reason about threshold behavior.
func (m *Matcher) Similarity(a, b string) float64 {
	return strutil.Similarity(a, b, m.lev)
}

// contextAround joins the previous, current, and next line, which is
// where dose and frequency annotations live relative to the drug name.
func contextAround(lines []string, idx int) string {
	lo := idx - 1
	if lo < 0 {
		lo = 0
	}
	hi := idx + 2
	if hi > len(lines) {
		hi = len(lines)
	}
	return strings.Join(lines[lo:hi], " ")
}
