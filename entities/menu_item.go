package entities

import (
	"github.com/google/uuid"
)

type MenuItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `json:"name"`
	Price    float64   `gorm:"not null" json:"price"`
	Category string    `json:"category"`
	Image    string    `json:"image"` // stored object name, resolved to a URL at response time

	Timestamp
}

func (MenuItem) TableName() string { return "menu" }
