package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       string  `gorm:"primaryKey" json:"id"`
	Email    *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Username string  `gorm:"uniqueIndex" json:"username"`
	PinHash  string  `json:"-"` // bcrypt hash, hidden from JSON
	IsGuest  bool    `gorm:"default:false" json:"is_guest"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	HasPin bool `gorm:"-" json:"has_pin"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Profile holds the per-user settings that shape reporting: display
// currency and whether debt tracking is enabled.
type Profile struct {
	ID          string `gorm:"primaryKey" json:"id"`
	UserID      string `gorm:"uniqueIndex" json:"user_id"`
	FullName    string `json:"full_name"`
	Currency    string `json:"currency"` // e.g. "INR (₹)", "USD ($)"
	DebtEnabled bool   `json:"debt_enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
