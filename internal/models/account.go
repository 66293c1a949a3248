package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is an isolated bucket of transactions representing one financial
// identity (e.g. "Personal", "Business"). Exactly one account per user is
// active at a time; the active account is the one feeding all summaries.
type Account struct {
	ID            string `gorm:"primaryKey" json:"id"`
	UserID        string `gorm:"index" json:"user_id"`
	Name          string `json:"name"`
	IsActive      bool   `json:"is_active"`
	AccountNumber int    `json:"account_number"` // display ordinal

	Transactions []Transaction `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
