// Package interaction answers "does this new medication interact with
// anything the patient already takes". Findings are grounded in a
// configured knowledge source; without one, every check reports unknown
// severity rather than fabricated safety.
package interaction

import (
	"context"
	"log"

	"github.com/rxlens/rxlens/internal/core/model"
)

// KnowledgeSource retrieves interaction evidence for one drug pair.
type KnowledgeSource interface {
	Lookup(ctx context.Context, drugA, drugB string) ([]model.Interaction, error)
}

// Checker runs interaction lookups over medication pairs.
type Checker struct {
	source KnowledgeSource
}

// NewChecker builds a checker. source may be nil, meaning no knowledge
// base is configured.
func NewChecker(source KnowledgeSource) *Checker {
	return &Checker{source: source}
}

// Available reports whether a knowledge source is configured.
func (c *Checker) Available() bool {
	return c.source != nil
}

// Check looks up interactions between the new medication and each
// current one. It degrades instead of failing: with no source, or when
// the source errors or finds nothing, the result is a single
// unknown-severity finding directing the caller to a clinician.
func (c *Checker) Check(ctx context.Context, newMed string, currentMeds []string) []model.Interaction {
	if c.source == nil {
		return []model.Interaction{unknownInteraction("Knowledge Base not configured", "Cannot verify - KB not available")}
	}

	var findings []model.Interaction
	for _, current := range currentMeds {
		rows, err := c.source.Lookup(ctx, newMed, current)
		if err != nil {
			log.Printf("interaction: lookup %s/%s failed: %v", newMed, current, err)
			continue
		}
		findings = append(findings, rows...)
	}

	if len(findings) == 0 {
		return []model.Interaction{unknownInteraction("No evidence found in Knowledge Base", "No supporting documents retrieved")}
	}
	return findings
}

// CheckAllPairs runs Check for every medication against the ones before
// it, the way the save flow vets a whole prescription at once.
func (c *Checker) CheckAllPairs(ctx context.Context, meds []string) []model.Interaction {
	var all []model.Interaction
	for i := 1; i < len(meds); i++ {
		all = append(all, c.Check(ctx, meds[i], meds[:i])...)
	}
	return all
}

func unknownInteraction(summary, mechanism string) model.Interaction {
	return model.Interaction{
		Severity:  model.SeverityUnknown,
		Summary:   summary,
		Mechanism: mechanism,
		Action:    "Consult healthcare provider",
		Citations: []model.Citation{},
	}
}
