package care

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hospital-portal-server/internal/models"
)

// Resolver determines a patient's current doctor of record from treatment
// history. Read-only.
type Resolver struct {
	DB *gorm.DB
}

// NewResolver creates a new Resolver.
func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{DB: db}
}

// ResolveActiveDoctor returns the doctor on the patient's most recent
// medical record, ordered by record date then record id. A patient with no
// treatment history gets ErrNoActiveDoctor, which callers treat as "no
// addressable doctor yet" rather than a fault.
func (r *Resolver) ResolveActiveDoctor(patientID string) (string, error) {
	var record models.MedicalRecord
	err := r.DB.
		Where("patient_id = ?", patientID).
		Order("record_date DESC").
		Order("id DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNoActiveDoctor
	}
	if err != nil {
		return "", fmt.Errorf("resolve active doctor: %w", err)
	}
	return record.DoctorID, nil
}
