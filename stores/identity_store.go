package stores

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pizzaecia/vendor-pos/models"
)

type GormIdentityStore struct {
	DB *gorm.DB
}

func NewGormIdentityStore(db *gorm.DB) *GormIdentityStore {
	return &GormIdentityStore{DB: db}
}

func (s *GormIdentityStore) List() ([]models.User, error) {
	users := []models.User{}
	if err := s.DB.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormIdentityStore) GetByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormIdentityStore) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create hashes the password before persisting. Role defaults to vendor.
func (s *GormIdentityStore) Create(u *models.User) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	if u.Role == "" {
		u.Role = models.RoleVendor
	}
	u.Active = true
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	return s.DB.Create(u).Error
}
