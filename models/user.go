package models

import (
	"time"
)

// User represents a registered student (or an admin) account.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:150;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Phone        string    `json:"phone,omitempty"` // optional, used for WhatsApp notifications
	IsAdmin      bool      `json:"is_admin" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
