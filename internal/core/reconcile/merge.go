// Package reconcile merges the medication candidates produced by the
// external model stage and the fuzzy matcher stage into one deduplicated
// list, and supplies keyword fallbacks for conditions and allergies when
// the external stage has nothing.
package reconcile

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/rxlens/rxlens/internal/core/model"
)

// Merger deduplicates across the two extraction stages by name
// similarity.
type Merger struct {
	threshold float64
	jw        *metrics.JaroWinkler
}

// NewMerger builds a merger. threshold is the minimum name similarity at
// which a secondary candidate counts as already present in the primary
// list.
func NewMerger(threshold float64) *Merger {
	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false
	return &Merger{threshold: threshold, jw: jw}
}

// Merge combines two candidate lists. Primary entries are kept verbatim
// and first; a secondary entry is appended only when its name does not
// fuzzy-match any primary name. The asymmetry is deliberate: the
// external stage produces cleaner, model-corrected spellings when it is
// available, while the fuzzy stage fills the gaps when it is not.
func (m *Merger) Merge(primary, secondary []model.MedicationCandidate) []model.MedicationCandidate {
	merged := make([]model.MedicationCandidate, 0, len(primary)+len(secondary))
	merged = append(merged, primary...)

	for _, cand := range secondary {
		if m.coveredBy(cand.Name, primary) {
			continue
		}
		merged = append(merged, cand)
	}
	return merged
}

func (m *Merger) coveredBy(name string, primary []model.MedicationCandidate) bool {
	for _, p := range primary {
		if m.Similarity(name, p.Name) >= m.threshold {
			return true
		}
	}
	return false
}

// Similarity reports the name similarity used for merge deduplication.
func (m *Merger) Similarity(a, b string) float64 {
	return strutil.Similarity(strings.ToLower(a), strings.ToLower(b), m.jw)
}
