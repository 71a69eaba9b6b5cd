package models

import (
	"time"
)

// ClaimStatus represents the review state of an insurance claim
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusRejected ClaimStatus = "rejected"
)

// InsuranceClaim is a patient-submitted reimbursement claim reviewed by admins
type InsuranceClaim struct {
	ID             int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID      string      `gorm:"size:36;index" json:"patientId"`
	ClaimAmount    float64     `gorm:"type:decimal(10,2)" json:"claimAmount"`
	ClaimType      string      `gorm:"size:100" json:"claimType"`
	Status         ClaimStatus `gorm:"size:20;default:'pending';index" json:"status"`
	SubmissionDate time.Time   `json:"submissionDate"`
	Documents      string      `gorm:"type:text" json:"documents"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`

	// Relations
	Patient User `gorm:"foreignKey:PatientID" json:"-"`
}
