// Package store persists confirmed prescriptions. The extraction core
// never touches it; only the save-prescription flow does.
package store

import (
	"context"
	"time"

	"github.com/rxlens/rxlens/internal/core/model"
)

// SavePrescriptionParams holds everything the save flow records.
type SavePrescriptionParams struct {
	PatientID     string
	DoctorID      string
	ImageURL      string
	ReviewedText  string
	OCRConfidence float64
	Entities      *model.EntityBundle
}

// Prescription is a saved record.
type Prescription struct {
	ID             string
	PatientID      string
	DoctorID       string
	ImageURL       string
	ReviewedText   string
	OCRConfidence  float64
	Entities       *model.EntityBundle
	MedicinesSaved int
	PrescribedAt   time.Time
}

// Store is the persistence interface for prescriptions.
type Store interface {
	// SavePrescription writes the record and its medications in one
	// transaction and returns the stored copy with its generated id.
	SavePrescription(ctx context.Context, p SavePrescriptionParams) (*Prescription, error)

	// GetPrescription retrieves a record by id.
	GetPrescription(ctx context.Context, id string) (*Prescription, error)

	// Close closes the store.
	Close() error
}
