package stores

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/pizzaecia/vendor-pos/models"
)

type GormCatalogStore struct {
	DB *gorm.DB
}

func NewGormCatalogStore(db *gorm.DB) *GormCatalogStore {
	return &GormCatalogStore{DB: db}
}

func (s *GormCatalogStore) List(activeOnly bool) ([]models.Product, error) {
	products := []models.Product{}
	q := s.DB.Order("name ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormCatalogStore) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := s.DB.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *GormCatalogStore) Create(p *models.Product) error {
	if p.Size == "" {
		p.Size = models.SizeUnico
	}
	p.Active = true
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return s.DB.Create(p).Error
}
