package care

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hospital-portal-server/internal/models"
)

// CallQueue owns nurse-call requests and the pending→accepted transition.
type CallQueue struct {
	DB *gorm.DB
}

// NewCallQueue creates a new CallQueue.
func NewCallQueue(db *gorm.DB) *CallQueue {
	return &CallQueue{DB: db}
}

// Create opens a new call for the requesting doctor in state pending with
// no nurse bound.
func (q *CallQueue) Create(doctorID string) (*models.NurseCallRequest, error) {
	call := models.NurseCallRequest{
		DoctorID: doctorID,
		Status:   models.CallStatusPending,
	}
	if err := q.DB.Create(&call).Error; err != nil {
		return nil, fmt.Errorf("create nurse call: %w", err)
	}
	return &call, nil
}

// ListOpen returns the calls this nurse can act on or has already taken:
// everything still pending plus calls accepted by the querying nurse, most
// recent first. A call another nurse won simply disappears from the list.
func (q *CallQueue) ListOpen(nurseID string) ([]models.NurseCallRequest, error) {
	var calls []models.NurseCallRequest
	err := q.DB.
		Where("status = ? OR nurse_id = ?", models.CallStatusPending, nurseID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&calls).Error
	if err != nil {
		return nil, fmt.Errorf("list open calls: %w", err)
	}
	return calls, nil
}

// Claim binds the call to the nurse iff it is still pending. The transition
// is a single conditional UPDATE guarded on status, so concurrent claimants
// on the same call resolve entirely inside the store: exactly one update
// matches a row, every other claimant sees zero rows affected and gets
// ErrAlreadyClaimed without having changed anything. ErrCallNotFound is
// returned for an id that does not exist at all.
func (q *CallQueue) Claim(callID int64, nurseID string) error {
	result := q.DB.Model(&models.NurseCallRequest{}).
		Where("id = ? AND status = ?", callID, models.CallStatusPending).
		Updates(map[string]interface{}{
			"status":   models.CallStatusAccepted,
			"nurse_id": nurseID,
		})
	if result.Error != nil {
		return fmt.Errorf("claim nurse call: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var call models.NurseCallRequest
		err := q.DB.First(&call, "id = ?", callID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCallNotFound
		}
		if err != nil {
			return fmt.Errorf("claim nurse call: %w", err)
		}
		// Retries by the winning nurse land here too; the claim is
		// spent either way.
		return ErrAlreadyClaimed
	}
	return nil
}
