package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product types sold by the stand.
const (
	TypeCaldo  = "caldo"
	TypePizza  = "pizza"
	TypeTipica = "tipica"
)

// Portion sizes. "unico" is the single-size default.
const (
	SizePequeno     = "pequeno"
	SizeGrande      = "grande"
	SizeUnico       = "unico"
	SizeMarmitex    = "marmitex"
	SizeCumbuquinha = "cumbuquinha"
)

// PlaceholderProductName is shown when an order item points at a product
// that no longer exists. Aggregation and order detail must never fail on a
// dangling reference.
const PlaceholderProductName = "Produto não encontrado"

type Product struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Type      string    `gorm:"type:varchar(20);not null" json:"type"`
	Size      string    `gorm:"type:varchar(20);not null;default:'unico'" json:"size"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
