package models

import (
	"time"
)

// MedicalRecord is one treatment/visit entry for a patient. Besides the
// obvious clinical use it is the substrate for resolving a patient's active
// doctor: the doctor on the most recent record (record_date, then id) is the
// default recipient when the patient sends a message without addressing one.
type MedicalRecord struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID    string     `gorm:"size:36;index" json:"patientId"`
	DoctorID     string     `gorm:"size:36;index" json:"doctorId"`
	Diagnosis    string     `gorm:"type:text" json:"diagnosis"`
	Prescription string     `gorm:"type:text" json:"prescription"`
	RecordDate   time.Time  `gorm:"index" json:"recordDate"`
	FollowUpDate *time.Time `json:"followUpDate,omitempty"`
	Notes        string     `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	// Relations
	Patient User `gorm:"foreignKey:PatientID" json:"-"`
	Doctor  User `gorm:"foreignKey:DoctorID" json:"-"`
}
