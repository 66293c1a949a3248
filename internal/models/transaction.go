package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction is one user-recorded financial event for a given date within
// an account. Amounts are currency-agnostic raw numbers; formatting happens
// at the presentation boundary only.
//
// Salary is the lump total for the day and SalaryEntries its itemized
// sub-records. The two are allowed to drift: a transaction may carry a lump
// total with no entries, or entries without a parent total, and the
// aggregation code tolerates both.
type Transaction struct {
	ID        string `gorm:"primaryKey" json:"id"`
	AccountID string `gorm:"index" json:"account_id"`
	Date      string `gorm:"index" json:"date"` // YYYY-MM-DD

	Investment float64 `json:"investment"`
	Earnings   float64 `json:"earnings"`
	Spending   float64 `json:"spending"`
	ToBeCredit float64 `json:"to_be_credit"`
	Salary     float64 `json:"salary"`

	// Debt principal and annual percentage rate, populated only when the
	// debt feature is enabled on the profile.
	Debt         float64 `json:"debt"`
	InterestRate float64 `json:"interest_rate"`

	SalaryEntries []SalaryEntry `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"salary_entries"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// SalaryEntry is a named, purposed sub-component of a transaction's salary
// total. Purpose is free text and drives the income/spending categorizers.
type SalaryEntry struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	TransactionID string  `gorm:"index" json:"transaction_id"`
	Name          string  `json:"name"`
	Purpose       string  `json:"purpose"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"` // YYYY-MM-DD

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *SalaryEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
