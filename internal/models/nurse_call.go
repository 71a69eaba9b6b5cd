package models

import (
	"time"
)

// CallStatus represents the lifecycle state of a nurse-call request
type CallStatus string

const (
	CallStatusPending  CallStatus = "pending"
	CallStatusAccepted CallStatus = "accepted"
)

// NurseCallRequest is a doctor's request for nursing assistance. It is
// created pending with no nurse bound and transitions exactly once to
// accepted. The transition is a conditional update on status, so two nurses
// racing on the same call can never both win.
type NurseCallRequest struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"callId"`
	DoctorID  string     `gorm:"size:36;index" json:"doctorId"`
	NurseID   *string    `gorm:"size:36;index" json:"nurseId,omitempty"`
	Status    CallStatus `gorm:"size:20;default:'pending';index" json:"status"`
	CreatedAt time.Time  `json:"createdAt"`

	// Relations
	Doctor User `gorm:"foreignKey:DoctorID" json:"-"`
}
