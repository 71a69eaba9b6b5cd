package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-portal-server/internal/care"
	"hospital-portal-server/internal/middleware"
	"hospital-portal-server/internal/models"
	"hospital-portal-server/internal/utils"
)

// MessageHandler exposes the care-coordination thread operations over HTTP.
// All thread semantics live in the care package; this layer only maps
// identity, authorization and the error taxonomy onto status codes.
type MessageHandler struct {
	DB   *gorm.DB
	Care *care.Service
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(db *gorm.DB, careService *care.Service) *MessageHandler {
	return &MessageHandler{DB: db, Care: careService}
}

// SendPatientMessageRequest is the body for a patient send. No recipient:
// the active doctor is resolved from treatment history.
type SendPatientMessageRequest struct {
	Content string `json:"content"`
}

// SendPatientMessage handles a patient sending to their active doctor.
// Empty content and a missing active doctor are rejections, not faults:
// nothing is stored and the caller gets a 400 with a reason it can render.
func (h *MessageHandler) SendPatientMessage(c *gin.Context) {
	var req SendPatientMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	message, err := h.Care.SendPatientMessage(patientID, req.Content)
	switch {
	case errors.Is(err, care.ErrEmptyContent):
		utils.BadRequest(c, "Message content is empty; nothing was sent")
		return
	case errors.Is(err, care.ErrNoActiveDoctor):
		utils.BadRequest(c, "No active doctor on record; visit a doctor before messaging")
		return
	case err != nil:
		utils.InternalServerError(c, "Failed to send message: "+err.Error())
		return
	}

	utils.Created(c, "Message sent successfully", gin.H{"messageId": message.ID})
}

// SendDoctorMessageRequest is the body for a doctor send. Doctors always
// address an explicit patient from their own list.
type SendDoctorMessageRequest struct {
	PatientID string `json:"patientId" binding:"required,uuid"`
	Content   string `json:"content"`
}

// SendDoctorMessage handles a doctor sending to a patient.
func (h *MessageHandler) SendDoctorMessage(c *gin.Context) {
	var req SendDoctorMessageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	// Verify the recipient exists and is a patient
	var patient models.User
	if err := h.DB.Where("id = ? AND role = ?", req.PatientID, models.RolePatient).First(&patient).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error verifying patient: "+err.Error())
		}
		return
	}

	message, err := h.Care.SendDoctorMessage(doctorID, req.PatientID, req.Content)
	switch {
	case errors.Is(err, care.ErrEmptyContent):
		utils.BadRequest(c, "Message content is empty; nothing was sent")
		return
	case err != nil:
		utils.InternalServerError(c, "Failed to send message: "+err.Error())
		return
	}

	utils.Created(c, "Message sent successfully", gin.H{"messageId": message.ID})
}

// GetThread returns the (patientId, doctorId) thread in send order. Only
// the two participants and admins may read it.
func (h *MessageHandler) GetThread(c *gin.Context) {
	patientID := c.Query("patientId")
	doctorID := c.Query("doctorId")
	if patientID == "" || doctorID == "" {
		utils.BadRequest(c, "patientId and doctorId query parameters are required")
		return
	}

	requestingUserID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	requestingRole, _ := middleware.GetUserRoleFromContext(c)

	isParticipant := requestingUserID == patientID || requestingUserID == doctorID
	if !isParticipant && requestingRole != models.RoleAdmin {
		utils.Forbidden(c, "You are not a participant in this thread")
		return
	}

	messages, err := h.Care.ListThread(patientID, doctorID)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch thread: "+err.Error())
		return
	}

	utils.Success(c, "Thread fetched successfully", messages)
}

// MarkMessageAsRead sets the read flag on one message. Only the recipient
// can; this is the single mutation message rows ever see.
func (h *MessageHandler) MarkMessageAsRead(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("messageId"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid message ID")
		return
	}

	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	err = h.Care.MarkMessageRead(messageID, userID)
	switch {
	case errors.Is(err, care.ErrMessageNotFound):
		utils.NotFound(c, "Message not found")
		return
	case errors.Is(err, care.ErrNotRecipient):
		utils.Forbidden(c, "Only the recipient can mark this message as read")
		return
	case err != nil:
		utils.InternalServerError(c, "Failed to update message: "+err.Error())
		return
	}

	utils.Success(c, "Message marked as read", nil)
}
