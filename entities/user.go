package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	Role       string    `gorm:"default:user" json:"role"` // "user" or "admin"
	IsVerified bool      `gorm:"default:false" json:"is_verified"`
	VerifyCode string    `json:"-"`

	Timestamp
}
