package care

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"hospital-portal-server/internal/models"
)

// ThreadStore owns the message log. Threads are implicit: a thread exists
// the moment any message references its (patientID, doctorID) pair, and
// there is no separate thread row to keep consistent with it.
type ThreadStore struct {
	DB *gorm.DB
}

// NewThreadStore creates a new ThreadStore.
func NewThreadStore(db *gorm.DB) *ThreadStore {
	return &ThreadStore{DB: db}
}

// Append persists one message on the (patientID, doctorID) thread with a
// server-assigned timestamp. Content that trims to nothing is rejected with
// ErrEmptyContent and nothing is stored. Store failures are wrapped and
// returned, never swallowed: a dropped message is a clinically meaningful
// loss.
func (s *ThreadStore) Append(patientID, doctorID, senderID, receiverID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	message := models.Message{
		PatientID:  patientID,
		DoctorID:   doctorID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		SentAt:     time.Now(),
	}
	if err := s.DB.Create(&message).Error; err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}
	return &message, nil
}

// ListThread returns the thread's messages ascending by sent_at. Same-
// timestamp inserts keep a stable total order via the insertion id.
func (s *ThreadStore) ListThread(patientID, doctorID string) ([]models.Message, error) {
	var messages []models.Message
	err := s.DB.
		Where("patient_id = ? AND doctor_id = ?", patientID, doctorID).
		Order("sent_at ASC").
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("list thread: %w", err)
	}
	return messages, nil
}

// MarkRead sets the read flag on a message. Only the receiver may do this;
// it is the single mutation the append-only log permits.
func (s *ThreadStore) MarkRead(messageID int64, readerID string) error {
	result := s.DB.Model(&models.Message{}).
		Where("id = ? AND receiver_id = ?", messageID, readerID).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("mark message read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var message models.Message
		err := s.DB.First(&message, "id = ?", messageID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMessageNotFound
		}
		if err != nil {
			return fmt.Errorf("mark message read: %w", err)
		}
		return ErrNotRecipient
	}
	return nil
}
