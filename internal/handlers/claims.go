package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-portal-server/internal/middleware"
	"hospital-portal-server/internal/models"
	"hospital-portal-server/internal/utils"
)

// InsuranceClaimHandler handles insurance claim submission and review.
type InsuranceClaimHandler struct {
	DB *gorm.DB
}

// NewInsuranceClaimHandler creates a new InsuranceClaimHandler.
func NewInsuranceClaimHandler(db *gorm.DB) *InsuranceClaimHandler {
	return &InsuranceClaimHandler{DB: db}
}

// SubmitClaimRequest represents the request body for submitting a claim.
type SubmitClaimRequest struct {
	ClaimAmount float64 `json:"claimAmount" binding:"required,gt=0"`
	ClaimType   string  `json:"claimType" binding:"required"`
	Documents   string  `json:"documents"`
}

// SubmitClaim handles a patient submitting a claim. New claims are always
// pending.
func (h *InsuranceClaimHandler) SubmitClaim(c *gin.Context) {
	var req SubmitClaimRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	claim := models.InsuranceClaim{
		PatientID:      patientID,
		ClaimAmount:    req.ClaimAmount,
		ClaimType:      req.ClaimType,
		Status:         models.ClaimStatusPending,
		SubmissionDate: time.Now(),
		Documents:      req.Documents,
	}

	if err := h.DB.Create(&claim).Error; err != nil {
		utils.InternalServerError(c, "Failed to submit claim: "+err.Error())
		return
	}

	utils.Created(c, "Claim submitted successfully", claim)
}

// GetMyClaims lists the calling patient's claims, newest first.
func (h *InsuranceClaimHandler) GetMyClaims(c *gin.Context) {
	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var claims []models.InsuranceClaim
	err := h.DB.Where("patient_id = ?", patientID).
		Order("submission_date DESC").Order("id DESC").
		Find(&claims).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch claims: "+err.Error())
		return
	}

	utils.Success(c, "Claims fetched successfully", claims)
}

// GetAllClaims lists every claim for admin review, pending first.
func (h *InsuranceClaimHandler) GetAllClaims(c *gin.Context) {
	var claims []models.InsuranceClaim
	err := h.DB.Order("status = 'pending' DESC").
		Order("submission_date DESC").
		Find(&claims).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch claims: "+err.Error())
		return
	}

	utils.Success(c, "Claims fetched successfully", claims)
}

// DecideClaimRequest represents the request body for a claim decision.
type DecideClaimRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// DecideClaim approves or rejects a pending claim (admin). The decision is
// a conditional update on status so a claim cannot be decided twice.
func (h *InsuranceClaimHandler) DecideClaim(c *gin.Context) {
	claimID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid claim ID")
		return
	}

	var req DecideClaimRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	result := h.DB.Model(&models.InsuranceClaim{}).
		Where("id = ? AND status = ?", claimID, models.ClaimStatusPending).
		Update("status", models.ClaimStatus(req.Status))
	if result.Error != nil {
		utils.InternalServerError(c, "Failed to update claim: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		var claim models.InsuranceClaim
		if err := h.DB.First(&claim, "id = ?", claimID).Error; err != nil {
			utils.NotFound(c, "Claim not found")
			return
		}
		utils.Conflict(c, "Claim has already been decided", claim)
		return
	}

	utils.Success(c, "Claim updated successfully", gin.H{
		"id":     claimID,
		"status": req.Status,
	})
}
