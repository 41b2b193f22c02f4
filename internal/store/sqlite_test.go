package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxlens/rxlens/internal/core/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetPrescription(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	saved, err := s.SavePrescription(ctx, SavePrescriptionParams{
		PatientID:     "patient-1",
		DoctorID:      "doctor-2",
		ImageURL:      "https://example.com/rx.jpg",
		ReviewedText:  "Ibuprofen 200mg BD for 7 days",
		OCRConfidence: 0.87,
		Entities: &model.EntityBundle{
			Medications: []model.MedicationCandidate{
				{Name: "Ibuprofen", Dosage: "200 mg", Frequency: "Twice daily", Duration: "For 7 days"},
				{Name: "Omeprazole", Dosage: "20 mg", Frequency: "Once daily"},
			},
			Conditions: []string{"Fever"},
			Allergies:  []string{},
			LabValues:  []any{},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, 2, saved.MedicinesSaved)

	got, err := s.GetPrescription(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "patient-1", got.PatientID)
	assert.Equal(t, 0.87, got.OCRConfidence)
	assert.Equal(t, 2, got.MedicinesSaved)
	require.Len(t, got.Entities.Medications, 2)
	assert.Equal(t, "Ibuprofen", got.Entities.Medications[0].Name)
	assert.Equal(t, []string{"Fever"}, got.Entities.Conditions)
}

func TestSaveRequiresEntities(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SavePrescription(context.Background(), SavePrescriptionParams{
		PatientID: "p", DoctorID: "d",
	})
	assert.Error(t, err)
}

func TestGetMissingPrescription(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetPrescription(context.Background(), "no-such-id")
	assert.Error(t, err)
}
