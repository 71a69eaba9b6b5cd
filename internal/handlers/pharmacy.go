package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-portal-server/internal/models"
	"hospital-portal-server/internal/utils"
)

// PharmacyHandler handles pharmacy inventory requests.
type PharmacyHandler struct {
	DB *gorm.DB
}

// NewPharmacyHandler creates a new PharmacyHandler.
func NewPharmacyHandler(db *gorm.DB) *PharmacyHandler {
	return &PharmacyHandler{DB: db}
}

// GetInventory lists the inventory ordered by drug name. Readable by any
// authenticated user.
func (h *PharmacyHandler) GetInventory(c *gin.Context) {
	var items []models.PharmacyItem
	if err := h.DB.Order("drug_name asc").Find(&items).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch inventory: "+err.Error())
		return
	}

	utils.Success(c, "Inventory fetched successfully", items)
}

// CreatePharmacyItemRequest represents the request body for adding a drug.
type CreatePharmacyItemRequest struct {
	DrugName        string  `json:"drugName" binding:"required"`
	Category        string  `json:"category"`
	Manufacturer    string  `json:"manufacturer"`
	QuantityInStock int     `json:"quantityInStock" binding:"min=0"`
	UnitPrice       float64 `json:"unitPrice" binding:"min=0"`
	ExpiryDate      string  `json:"expiryDate"`
	Description     string  `json:"description"`
}

// CreatePharmacyItem adds a drug to the inventory (admin).
func (h *PharmacyHandler) CreatePharmacyItem(c *gin.Context) {
	var req CreatePharmacyItemRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	item := models.PharmacyItem{
		DrugName:        req.DrugName,
		Category:        req.Category,
		Manufacturer:    req.Manufacturer,
		QuantityInStock: req.QuantityInStock,
		UnitPrice:       req.UnitPrice,
		Description:     req.Description,
	}

	if req.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			utils.BadRequest(c, "Invalid expiryDate format. Use YYYY-MM-DD")
			return
		}
		item.ExpiryDate = &expiry
	}

	if err := h.DB.Create(&item).Error; err != nil {
		utils.InternalServerError(c, "Failed to create inventory item: "+err.Error())
		return
	}

	utils.Created(c, "Inventory item created successfully", item)
}

// UpdateStockRequest represents the request body for a stock adjustment.
type UpdateStockRequest struct {
	QuantityInStock int `json:"quantityInStock" binding:"min=0"`
}

// UpdateStock sets the stock level of a drug (admin).
func (h *PharmacyHandler) UpdateStock(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid item ID")
		return
	}

	var req UpdateStockRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var item models.PharmacyItem
	if err := h.DB.First(&item, "id = ?", itemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Inventory item not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	item.QuantityInStock = req.QuantityInStock
	if err := h.DB.Save(&item).Error; err != nil {
		utils.InternalServerError(c, "Failed to update stock: "+err.Error())
		return
	}

	utils.Success(c, "Stock updated successfully", item)
}
