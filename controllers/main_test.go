package controllers

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pizzaecia/vendor-pos/middlewares"
	"github.com/pizzaecia/vendor-pos/models"
	"github.com/pizzaecia/vendor-pos/stores"
	"github.com/pizzaecia/vendor-pos/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func setupAPIRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()

	orderStore := stores.NewGormOrderStore(db)
	catalogStore := stores.NewGormCatalogStore(db)
	identityStore := stores.NewGormIdentityStore(db)
	statsAggregator := stores.NewStatsAggregator(db, time.UTC)

	authCtrl := NewAuthController(identityStore)
	userCtrl := NewUserController(identityStore)
	productCtrl := NewProductController(catalogStore)
	orderCtrl := NewOrderController(orderStore)
	statsCtrl := NewStatsController(statsAggregator)

	api := r.Group("/api")
	api.POST("/auth/login", authCtrl.Login)
	me := api.Group("/auth")
	me.Use(middlewares.AuthMiddleware())
	me.GET("/me", authCtrl.Me)
	api.GET("/users", userCtrl.GetAllUsers)
	api.POST("/users", userCtrl.CreateUser)
	api.GET("/products", productCtrl.GetAllProducts)
	api.POST("/products", productCtrl.CreateProduct)
	api.GET("/orders", orderCtrl.GetAllOrders)
	api.GET("/orders/:id", orderCtrl.GetOrderByID)
	api.POST("/orders", orderCtrl.CreateOrder)
	api.PUT("/orders/:id", orderCtrl.UpdateOrder)
	api.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	api.DELETE("/orders/:id", orderCtrl.DeleteOrder)
	api.POST("/orders/:id/ticket", orderCtrl.GenerateTicket)
	api.GET("/vendors/:vendorId/orders", orderCtrl.GetVendorOrders)
	api.GET("/stats", statsCtrl.GetStats)

	return r
}

func seedVendor(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	identity := stores.NewGormIdentityStore(db)
	vendor := &models.User{Username: "vendedor1", Name: "João Vendedor", Password: "vend123", Role: models.RoleVendor}
	require.NoError(t, identity.Create(vendor))
	return vendor
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Type: models.TypeTipica, Size: models.SizeUnico, Price: price, Active: true}
	require.NoError(t, db.Create(p).Error)
	return p
}
