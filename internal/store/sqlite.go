package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/rxlens/rxlens/internal/core/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS prescriptions (
		id             TEXT PRIMARY KEY,
		patient_id     TEXT NOT NULL,
		doctor_id      TEXT NOT NULL,
		image_url      TEXT,
		reviewed_text  TEXT,
		ocr_confidence REAL NOT NULL DEFAULT 0,
		entities       TEXT NOT NULL,
		prescribed_at  TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS prescription_medicines (
		id              TEXT PRIMARY KEY,
		prescription_id TEXT NOT NULL REFERENCES prescriptions(id) ON DELETE CASCADE,
		name            TEXT NOT NULL,
		dosage          TEXT,
		frequency       TEXT,
		duration        TEXT,
		route           TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_prescriptions_patient ON prescriptions(patient_id);
	CREATE INDEX IF NOT EXISTS idx_medicines_prescription ON prescription_medicines(prescription_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) SavePrescription(ctx context.Context, p SavePrescriptionParams) (*Prescription, error) {
	if p.Entities == nil {
		return nil, fmt.Errorf("entities are required")
	}

	entitiesJSON, err := json.Marshal(p.Entities)
	if err != nil {
		return nil, fmt.Errorf("marshal entities: %w", err)
	}

	rec := &Prescription{
		ID:            uuid.New().String(),
		PatientID:     p.PatientID,
		DoctorID:      p.DoctorID,
		ImageURL:      p.ImageURL,
		ReviewedText:  p.ReviewedText,
		OCRConfidence: p.OCRConfidence,
		Entities:      p.Entities,
		PrescribedAt:  time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO prescriptions (id, patient_id, doctor_id, image_url, reviewed_text, ocr_confidence, entities, prescribed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.PatientID, rec.DoctorID, rec.ImageURL, rec.ReviewedText,
		rec.OCRConfidence, string(entitiesJSON), rec.PrescribedAt.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert prescription: %w", err)
	}

	for _, med := range p.Entities.Medications {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO prescription_medicines (id, prescription_id, name, dosage, frequency, duration, route)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), rec.ID, med.Name, med.Dosage, med.Frequency, med.Duration, med.Route)
		if err != nil {
			return nil, fmt.Errorf("insert medicine %q: %w", med.Name, err)
		}
		rec.MedicinesSaved++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return rec, nil
}

func (s *SQLiteStore) GetPrescription(ctx context.Context, id string) (*Prescription, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, patient_id, doctor_id, image_url, reviewed_text, ocr_confidence, entities, prescribed_at
		 FROM prescriptions WHERE id = ?`, id)

	var rec Prescription
	var entitiesJSON, prescribedAt string
	err := row.Scan(&rec.ID, &rec.PatientID, &rec.DoctorID, &rec.ImageURL,
		&rec.ReviewedText, &rec.OCRConfidence, &entitiesJSON, &prescribedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("prescription %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query prescription: %w", err)
	}

	rec.Entities = &model.EntityBundle{}
	if err := json.Unmarshal([]byte(entitiesJSON), rec.Entities); err != nil {
		return nil, fmt.Errorf("unmarshal entities: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, prescribedAt); err == nil {
		rec.PrescribedAt = t
	}

	var count int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM prescription_medicines WHERE prescription_id = ?`, id).Scan(&count); err == nil {
		rec.MedicinesSaved = count
	}

	return &rec, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
