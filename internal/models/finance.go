package models

import (
	"time"
)

// TransactionType distinguishes money in from money out
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// FinanceRecord is one income or expense entry in the hospital ledger
type FinanceRecord struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionType TransactionType `gorm:"size:10;not null;index" json:"transactionType"`
	Amount          float64         `gorm:"type:decimal(12,2)" json:"amount"`
	Category        string          `gorm:"size:100" json:"category"`
	Description     string          `gorm:"type:text" json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
	CreatedAt       time.Time       `json:"createdAt"`
}
