package database

import (
	"github.com/pizzaecia/vendor-pos/models"
	"github.com/pizzaecia/vendor-pos/stores"
	"github.com/pizzaecia/vendor-pos/utils"
	"gorm.io/gorm"
)

// Seed inserts the demo users and product catalog. It is a no-op when any
// user already exists, so restarting the server never duplicates data.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		utils.InfoLogger.Println("Seed skipped: data already present")
		return nil
	}

	identity := stores.NewGormIdentityStore(db)
	seedUsers := []models.User{
		{Username: "admin", Name: "Administrador", Password: "admin123", Role: models.RoleAdmin},
		{Username: "vendedor1", Name: "João Vendedor", Password: "vend123", Role: models.RoleVendor},
	}
	for i := range seedUsers {
		if err := identity.Create(&seedUsers[i]); err != nil {
			return err
		}
	}

	catalog := stores.NewGormCatalogStore(db)
	seedProducts := []models.Product{
		{Name: "Caldo de Feijão", Type: models.TypeCaldo, Size: models.SizePequeno, Price: 8.50},
		{Name: "Caldo de Feijão", Type: models.TypeCaldo, Size: models.SizeGrande, Price: 12.00},
		{Name: "Caldo de Cana", Type: models.TypeCaldo, Size: models.SizePequeno, Price: 6.00},
		{Name: "Caldo de Cana", Type: models.TypeCaldo, Size: models.SizeGrande, Price: 9.00},
		{Name: "Pizza Margherita", Type: models.TypePizza, Size: models.SizePequeno, Price: 25.00},
		{Name: "Pizza Margherita", Type: models.TypePizza, Size: models.SizeGrande, Price: 35.00},
		{Name: "Pizza Portuguesa", Type: models.TypePizza, Size: models.SizePequeno, Price: 28.00},
		{Name: "Pizza Portuguesa", Type: models.TypePizza, Size: models.SizeGrande, Price: 38.00},
		{Name: "Tapioca", Type: models.TypeTipica, Size: models.SizeUnico, Price: 15.00},
		{Name: "Acarajé", Type: models.TypeTipica, Size: models.SizeUnico, Price: 12.00},
		{Name: "Pastéis", Type: models.TypeTipica, Size: models.SizeMarmitex, Price: 18.00},
		{Name: "Coxinha", Type: models.TypeTipica, Size: models.SizeCumbuquinha, Price: 8.00},
	}
	for i := range seedProducts {
		if err := catalog.Create(&seedProducts[i]); err != nil {
			return err
		}
	}

	utils.InfoLogger.Printf("Seeded %d users and %d products", len(seedUsers), len(seedProducts))
	return nil
}
