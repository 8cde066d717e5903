package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderItem struct {
	ID      string `gorm:"type:varchar(36);primaryKey" json:"id"`
	OrderID string `gorm:"type:varchar(36);not null;index" json:"orderId"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order      *Order   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ProductID  string   `gorm:"type:varchar(36);not null" json:"productId"`
	Product    *Product `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Quantity   int      `gorm:"not null" json:"quantity"`
	UnitPrice  float64  `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	TotalPrice float64  `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}
