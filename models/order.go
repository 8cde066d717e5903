package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentDinheiro = "dinheiro"
	PaymentPix      = "pix"
	PaymentAberto   = "aberto"

	PaymentRealizado  = "realizado"
	StatusPendente    = "pendente"
	DeliveryRealizada = "realizada"
)

// PlaceholderVendorName is shown when an order references a vendor that no
// longer exists in the identity store.
const PlaceholderVendorName = "Vendedor não encontrado"

type Order struct {
	ID             string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	OrderNumber    int         `gorm:"uniqueIndex;not null" json:"orderNumber"`
	VendorID       string      `gorm:"type:varchar(36);not null;index" json:"vendorId"`
	Vendor         *User       `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	CustomerName   string      `gorm:"type:varchar(255)" json:"customerName"`
	CustomerPhone  string      `gorm:"type:varchar(50)" json:"customerPhone"`
	PaymentMethod  string      `gorm:"type:varchar(20);not null" json:"paymentMethod"`
	PaymentStatus  string      `gorm:"type:varchar(20);not null;default:'pendente'" json:"paymentStatus"`
	DeliveryStatus string      `gorm:"type:varchar(20);not null;default:'pendente'" json:"deliveryStatus"`
	TotalAmount    float64     `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	Notes          string      `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time   `gorm:"not null;index" json:"createdAt"`
	Items          []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// DisplayNumber returns the padded ticket form of the order number, e.g. "007".
func (o *Order) DisplayNumber() string {
	return fmt.Sprintf("%03d", o.OrderNumber)
}
