package entities

import (
	"github.com/google/uuid"
)

// CartEntry holds at most one row per (user, menu item); adding the same
// item again increments Quantity through an upsert on the unique index.
type CartEntry struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_user_menu" json:"user_id"`
	MenuID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_user_menu" json:"menu_id"`
	Quantity int       `gorm:"default:1" json:"quantity"`

	User     *User     `gorm:"foreignKey:UserID"`
	MenuItem *MenuItem `gorm:"foreignKey:MenuID"`
	Timestamp
}

func (CartEntry) TableName() string { return "cart" }
