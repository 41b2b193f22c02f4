package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxlens/rxlens/internal/core/model"
)

func med(name, source string) model.MedicationCandidate {
	return model.MedicationCandidate{Name: name, Source: source}
}

func TestPrimaryWinsOnConflict(t *testing.T) {
	m := NewMerger(0.8)

	// Premise: the garbled spelling scores above the dedup threshold
	// against the corrected one.
	require.Greater(t, m.Similarity("Cimetidine", "Cinatidise"), 0.8)

	merged := m.Merge(
		[]model.MedicationCandidate{med("Cimetidine", model.SourceExternal)},
		[]model.MedicationCandidate{med("Cinatidise", model.SourceFuzzy)},
	)

	require.Len(t, merged, 1)
	assert.Equal(t, "Cimetidine", merged[0].Name)
	assert.Equal(t, model.SourceExternal, merged[0].Source)
}

func TestSecondaryFillsGaps(t *testing.T) {
	m := NewMerger(0.8)

	merged := m.Merge(
		[]model.MedicationCandidate{med("Cimetidine", model.SourceExternal)},
		[]model.MedicationCandidate{
			med("Cimetidine", model.SourceFuzzy),
			med("Metformin", model.SourceFuzzy),
		},
	)

	require.Len(t, merged, 2)
	assert.Equal(t, "Cimetidine", merged[0].Name)
	assert.Equal(t, model.SourceExternal, merged[0].Source)
	assert.Equal(t, "Metformin", merged[1].Name)
	assert.Equal(t, model.SourceFuzzy, merged[1].Source)
}

func TestEmptyPrimaryKeepsAllSecondary(t *testing.T) {
	m := NewMerger(0.8)

	secondary := []model.MedicationCandidate{
		med("Paracetamol", model.SourceFuzzy),
		med("Ibuprofen", model.SourceFuzzy),
	}

	merged := m.Merge(nil, secondary)

	require.Len(t, merged, 2)
	assert.Equal(t, "Paracetamol", merged[0].Name)
	assert.Equal(t, "Ibuprofen", merged[1].Name)
}

func TestOrderIsPrimaryThenSecondary(t *testing.T) {
	m := NewMerger(0.8)

	merged := m.Merge(
		[]model.MedicationCandidate{med("Aspirin", model.SourceExternal), med("Warfarin", model.SourceExternal)},
		[]model.MedicationCandidate{med("Metformin", model.SourceFuzzy)},
	)

	require.Len(t, merged, 3)
	assert.Equal(t, []string{"Aspirin", "Warfarin", "Metformin"},
		[]string{merged[0].Name, merged[1].Name, merged[2].Name})
}

func TestDistinctDrugsSurviveMerge(t *testing.T) {
	m := NewMerger(0.8)

	require.Less(t, m.Similarity("Metformin", "Atorvastatin"), 0.8)

	merged := m.Merge(
		[]model.MedicationCandidate{med("Metformin", model.SourceExternal)},
		[]model.MedicationCandidate{med("Atorvastatin", model.SourceFuzzy)},
	)
	assert.Len(t, merged, 2)
}

func TestFallbackConditions(t *testing.T) {
	found := FallbackConditions("Known case of Hypertension and type 2 diabetes, complains of fever")
	assert.Contains(t, found, "Hypertension")
	assert.Contains(t, found, "Diabetes")
	assert.Contains(t, found, "Fever")

	assert.Empty(t, FallbackConditions("no relevant history"))
}

func TestFallbackAllergies(t *testing.T) {
	assert.Equal(t, []string{"penicillin"}, FallbackAllergies("Patient is allergic to penicillin"))
	assert.Equal(t, []string{"sulfa drugs", "aspirin"}, FallbackAllergies("Allergy to sulfa drugs, aspirin"))
	assert.Empty(t, FallbackAllergies("no known allergies"))
}
