package entities

import (
	"github.com/google/uuid"
)

type Order struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid" json:"user_id"`
	Total  float64   `json:"total"`
	Status string    `gorm:"default:pending" json:"status"`

	User  *User       `gorm:"foreignKey:UserID"`
	Items []OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

// OrderItem snapshots quantity and unit price at checkout time; later menu
// price changes must not alter historical orders.
type OrderItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID  uuid.UUID `gorm:"type:uuid" json:"order_id"`
	MenuID   uuid.UUID `gorm:"type:uuid" json:"menu_id"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`

	Order    *Order    `gorm:"foreignKey:OrderID"`
	MenuItem *MenuItem `gorm:"foreignKey:MenuID"`
}
