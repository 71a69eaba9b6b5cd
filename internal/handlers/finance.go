package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-portal-server/internal/models"
	"hospital-portal-server/internal/utils"
)

// FinanceHandler handles hospital ledger requests (admin only).
type FinanceHandler struct {
	DB *gorm.DB
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(db *gorm.DB) *FinanceHandler {
	return &FinanceHandler{DB: db}
}

// financeSummary is total amount per transaction type.
type financeSummary struct {
	TransactionType models.TransactionType `json:"transactionType"`
	Total           float64                `json:"total"`
}

// GetSummary returns the total amount per transaction type.
func (h *FinanceHandler) GetSummary(c *gin.Context) {
	var summary []financeSummary
	err := h.DB.Model(&models.FinanceRecord{}).
		Select("transaction_type, SUM(amount) AS total").
		Group("transaction_type").
		Scan(&summary).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch finance summary: "+err.Error())
		return
	}

	utils.Success(c, "Finance summary fetched successfully", summary)
}

// GetRecords lists ledger entries, newest first.
func (h *FinanceHandler) GetRecords(c *gin.Context) {
	var records []models.FinanceRecord
	err := h.DB.Order("transaction_date DESC").Order("id DESC").Find(&records).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch finance records: "+err.Error())
		return
	}

	utils.Success(c, "Finance records fetched successfully", records)
}

// CreateFinanceRecordRequest represents the request body for a ledger entry.
type CreateFinanceRecordRequest struct {
	TransactionType string  `json:"transactionType" binding:"required,oneof=income expense"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	TransactionDate string  `json:"transactionDate"`
}

// CreateRecord adds one income or expense entry.
func (h *FinanceHandler) CreateRecord(c *gin.Context) {
	var req CreateFinanceRecordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	txDate := time.Now()
	if req.TransactionDate != "" {
		var err error
		txDate, err = time.Parse("2006-01-02", req.TransactionDate)
		if err != nil {
			utils.BadRequest(c, "Invalid transactionDate format. Use YYYY-MM-DD")
			return
		}
	}

	record := models.FinanceRecord{
		TransactionType: models.TransactionType(req.TransactionType),
		Amount:          req.Amount,
		Category:        req.Category,
		Description:     req.Description,
		TransactionDate: txDate,
	}

	if err := h.DB.Create(&record).Error; err != nil {
		utils.InternalServerError(c, "Failed to create finance record: "+err.Error())
		return
	}

	utils.Created(c, "Finance record created successfully", record)
}
