package models

import (
	"time"
)

// Message is one entry in a patient/doctor thread. A thread is never stored
// as its own row; it is derived from the (patient_id, doctor_id) pair on the
// messages that reference it. Rows are append-only: nothing but the read
// flag is ever mutated, and nothing is deleted.
//
// The auto-increment key doubles as the insertion-order tie-break when two
// messages land with the same sent_at.
type Message struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID  string    `gorm:"size:36;index:idx_thread" json:"patientId"`
	DoctorID   string    `gorm:"size:36;index:idx_thread" json:"doctorId"`
	SenderID   string    `gorm:"size:36;index" json:"senderUserId"`
	ReceiverID string    `gorm:"size:36;index" json:"receiverUserId"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	SentAt     time.Time `gorm:"index" json:"sentAt"`
	Read       bool      `gorm:"default:false" json:"read"`

	// Relations
	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}
