package stores

import (
	"errors"

	"github.com/pizzaecia/vendor-pos/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrEmptyItems     = errors.New("order must have at least one item")
	ErrUnknownProduct = errors.New("order item references an unknown product")
)

// NewItem is the line-item input for order creation and replacement.
// TotalPrice is always recomputed as Quantity * UnitPrice by the store.
type NewItem struct {
	ProductID string  `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unitPrice" binding:"gte=0"`
}

// OrderPatch carries a partial order-header update. Nil fields stay unchanged.
type OrderPatch struct {
	VendorID       *string  `json:"vendorId"`
	CustomerName   *string  `json:"customerName"`
	CustomerPhone  *string  `json:"customerPhone"`
	PaymentMethod  *string  `json:"paymentMethod"`
	PaymentStatus  *string  `json:"paymentStatus"`
	DeliveryStatus *string  `json:"deliveryStatus"`
	Notes          *string  `json:"notes"`
	TotalAmount    *float64 `json:"totalAmount"`
}

type OrderStore interface {
	// Create persists the header with the next sequential order number and
	// its items as one unit. Fails with ErrEmptyItems or ErrUnknownProduct.
	Create(header models.Order, items []NewItem) (*models.Order, error)
	GetByID(id string) (*models.Order, error)
	// List returns orders newest first. limit <= 0 means no limit.
	List(limit int) ([]models.Order, error)
	ListByVendor(vendorID string, limit int) ([]models.Order, error)
	// Update merges patch into the header. A non-nil items slice replaces
	// the entire item set; nil leaves the items alone.
	Update(id string, patch OrderPatch, items []NewItem) (*models.Order, error)
	UpdateStatus(id string, paymentStatus, deliveryStatus *string) (*models.Order, error)
	Delete(id string) error
}

type CatalogStore interface {
	List(activeOnly bool) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(p *models.Product) error
}

type IdentityStore interface {
	List() ([]models.User, error)
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Create(u *models.User) error
}
