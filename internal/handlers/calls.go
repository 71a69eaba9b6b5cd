package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"hospital-portal-server/internal/care"
	"hospital-portal-server/internal/middleware"
	"hospital-portal-server/internal/utils"
)

// NurseCallHandler exposes the call dispatch queue over HTTP.
type NurseCallHandler struct {
	Care *care.Service
}

// NewNurseCallHandler creates a new NurseCallHandler.
func NewNurseCallHandler(careService *care.Service) *NurseCallHandler {
	return &NurseCallHandler{Care: careService}
}

// RequestNurse opens a pending call for the requesting doctor.
func (h *NurseCallHandler) RequestNurse(c *gin.Context) {
	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	call, err := h.Care.RequestNurse(doctorID)
	if err != nil {
		utils.InternalServerError(c, "Failed to create nurse call: "+err.Error())
		return
	}

	utils.Created(c, "Nurse call created", gin.H{
		"callId": call.ID,
		"status": call.Status,
	})
}

// AcceptCall claims the call for the requesting nurse. Exactly one nurse
// wins any given call; a lost race is a 409 with the call untouched by the
// loser, and an unknown id is a 404. Losing is an expected outcome under
// load and is counted, not logged.
func (h *NurseCallHandler) AcceptCall(c *gin.Context) {
	callID, err := strconv.ParseInt(c.Param("callId"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid call ID")
		return
	}

	nurseID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	err = h.Care.AcceptCall(nurseID, callID)
	switch {
	case errors.Is(err, care.ErrCallNotFound):
		middleware.RecordClaimOutcome("not_found")
		utils.NotFound(c, "Nurse call not found")
		return
	case errors.Is(err, care.ErrAlreadyClaimed):
		middleware.RecordClaimOutcome("already_claimed")
		utils.Conflict(c, "Call was already accepted by another nurse", gin.H{"callId": callID})
		return
	case err != nil:
		middleware.RecordClaimOutcome("error")
		utils.InternalServerError(c, "Failed to accept call: "+err.Error())
		return
	}

	middleware.RecordClaimOutcome("accepted")
	utils.Success(c, "Call accepted", gin.H{
		"callId": callID,
		"status": "accepted",
	})
}

// ListOpenCalls returns pending calls plus the requesting nurse's accepted
// ones, freshest first.
func (h *NurseCallHandler) ListOpenCalls(c *gin.Context) {
	nurseID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	calls, err := h.Care.ListOpenCalls(nurseID)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch open calls: "+err.Error())
		return
	}

	utils.Success(c, "Open calls fetched successfully", calls)
}
