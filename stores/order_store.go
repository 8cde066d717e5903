package stores

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/pizzaecia/vendor-pos/models"
)

type GormOrderStore struct {
	DB *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{DB: db}
}

func (s *GormOrderStore) Create(header models.Order, items []NewItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := checkProductRefs(tx, items); err != nil {
			return err
		}

		// Order numbers are max+1, assigned inside the transaction. The
		// unique index on order_number turns a lost race into an insert
		// error instead of a duplicate. Gaps after deletion are expected.
		var maxNumber int
		if err := tx.Model(&models.Order{}).
			Select("COALESCE(MAX(order_number), 0)").
			Row().Scan(&maxNumber); err != nil {
			return err
		}
		header.OrderNumber = maxNumber + 1

		if header.CreatedAt.IsZero() {
			header.CreatedAt = time.Now()
		}
		// store timestamps in UTC so sqlite's textual comparison stays
		// consistent with the stats window bounds
		header.CreatedAt = header.CreatedAt.UTC()
		header.Items = nil

		rows := buildItems(header.ID, items)
		header.TotalAmount = itemTotal(rows)

		if err := tx.Create(&header).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].OrderID = header.ID
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return s.GetByID(header.ID)
}

func (s *GormOrderStore) GetByID(id string) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Vendor").
		Preload("Items").
		Preload("Items.Product").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	resolveRefs(&order)
	return &order, nil
}

func (s *GormOrderStore) List(limit int) ([]models.Order, error) {
	return s.list(s.DB, limit)
}

func (s *GormOrderStore) ListByVendor(vendorID string, limit int) ([]models.Order, error) {
	return s.list(s.DB.Where("vendor_id = ?", vendorID), limit)
}

func (s *GormOrderStore) list(q *gorm.DB, limit int) ([]models.Order, error) {
	orders := []models.Order{}
	q = q.Preload("Vendor").
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	for i := range orders {
		resolveRefs(&orders[i])
	}
	return orders, nil
}

func (s *GormOrderStore) Update(id string, patch OrderPatch, items []NewItem) (*models.Order, error) {
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		applyPatch(&order, patch)

		// A supplied item list replaces the previous one wholesale; there
		// is no partial item editing.
		if items != nil {
			if len(items) == 0 {
				return ErrEmptyItems
			}
			if err := checkProductRefs(tx, items); err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			rows := buildItems(id, items)
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
			order.TotalAmount = itemTotal(rows)
		}

		return tx.Save(&order).Error
	}); err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

func (s *GormOrderStore) UpdateStatus(id string, paymentStatus, deliveryStatus *string) (*models.Order, error) {
	var order models.Order
	if err := s.DB.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if paymentStatus != nil {
		order.PaymentStatus = *paymentStatus
	}
	if deliveryStatus != nil {
		order.DeliveryStatus = *deliveryStatus
	}
	if err := s.DB.Save(&order).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *GormOrderStore) Delete(id string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}

func checkProductRefs(tx *gorm.DB, items []NewItem) error {
	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			ids = append(ids, it.ProductID)
		}
	}
	var count int64
	if err := tx.Model(&models.Product{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return ErrUnknownProduct
	}
	return nil
}

func buildItems(orderID string, items []NewItem) []models.OrderItem {
	rows := make([]models.OrderItem, len(items))
	for i, it := range items {
		rows[i] = models.OrderItem{
			OrderID:    orderID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: float64(it.Quantity) * it.UnitPrice,
		}
	}
	return rows
}

func itemTotal(rows []models.OrderItem) float64 {
	var total float64
	for _, r := range rows {
		total += r.TotalPrice
	}
	return total
}

func applyPatch(order *models.Order, patch OrderPatch) {
	if patch.VendorID != nil {
		order.VendorID = *patch.VendorID
	}
	if patch.CustomerName != nil {
		order.CustomerName = *patch.CustomerName
	}
	if patch.CustomerPhone != nil {
		order.CustomerPhone = *patch.CustomerPhone
	}
	if patch.PaymentMethod != nil {
		order.PaymentMethod = *patch.PaymentMethod
	}
	if patch.PaymentStatus != nil {
		order.PaymentStatus = *patch.PaymentStatus
	}
	if patch.DeliveryStatus != nil {
		order.DeliveryStatus = *patch.DeliveryStatus
	}
	if patch.Notes != nil {
		order.Notes = *patch.Notes
	}
	if patch.TotalAmount != nil {
		order.TotalAmount = *patch.TotalAmount
	}
}

// resolveRefs substitutes placeholder records for dangling vendor and
// product references so a deleted product never breaks an order response.
func resolveRefs(order *models.Order) {
	if order.Vendor == nil {
		order.Vendor = &models.User{ID: order.VendorID, Name: models.PlaceholderVendorName}
	}
	for i := range order.Items {
		if order.Items[i].Product == nil {
			order.Items[i].Product = &models.Product{
				ID:   order.Items[i].ProductID,
				Name: models.PlaceholderProductName,
			}
		}
	}
}
