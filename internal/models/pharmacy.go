package models

import (
	"time"
)

// PharmacyItem is one drug in the pharmacy inventory
type PharmacyItem struct {
	ID              int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	DrugName        string     `gorm:"size:200;not null;index" json:"drugName"`
	Category        string     `gorm:"size:100" json:"category"`
	Manufacturer    string     `gorm:"size:200" json:"manufacturer"`
	QuantityInStock int        `json:"quantityInStock"`
	UnitPrice       float64    `gorm:"type:decimal(10,2)" json:"unitPrice"`
	ExpiryDate      *time.Time `json:"expiryDate,omitempty"`
	Description     string     `gorm:"type:text" json:"description"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
