package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice is an independent billing document. It is not part of the
// aggregation engine; it only shares the currency-formatting convention.
type Invoice struct {
	ID            string `gorm:"primaryKey" json:"id"`
	UserID        string `gorm:"index" json:"user_id"`
	AccountID     string `gorm:"index" json:"account_id"`
	InvoiceNumber string `json:"invoice_number"`
	Date          string `json:"date"`     // YYYY-MM-DD
	DueDate       string `json:"due_date"` // YYYY-MM-DD
	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email"`
	ClientAddress string `json:"client_address"`
	Notes         string `json:"notes"`
	TotalAmount   float64 `json:"total_amount"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

type InvoiceItem struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	InvoiceID   string  `gorm:"index" json:"invoice_id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"` // quantity × rate, computed on save

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
