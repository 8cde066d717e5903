package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pizzaecia/vendor-pos/config"
	"github.com/pizzaecia/vendor-pos/controllers"
	"github.com/pizzaecia/vendor-pos/middlewares"
	"github.com/pizzaecia/vendor-pos/stores"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	orderStore := stores.NewGormOrderStore(db)
	catalogStore := stores.NewGormCatalogStore(db)
	identityStore := stores.NewGormIdentityStore(db)
	statsAggregator := stores.NewStatsAggregator(db, cfg.Timezone)

	authCtrl := controllers.NewAuthController(identityStore)
	userCtrl := controllers.NewUserController(identityStore)
	productCtrl := controllers.NewProductController(catalogStore)
	orderCtrl := controllers.NewOrderController(orderStore)
	statsCtrl := controllers.NewStatsController(statsAggregator)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// AUTH
	api.POST("/auth/login", authCtrl.Login)
	me := api.Group("/auth")
	me.Use(middlewares.AuthMiddleware())
	me.GET("/me", authCtrl.Me)

	// USERS
	api.GET("/users", userCtrl.GetAllUsers)
	api.POST("/users", userCtrl.CreateUser)

	// PRODUCTS
	api.GET("/products", productCtrl.GetAllProducts)
	api.POST("/products", productCtrl.CreateProduct)

	// ORDERS
	api.GET("/orders", orderCtrl.GetAllOrders)
	api.GET("/orders/:id", orderCtrl.GetOrderByID)
	api.POST("/orders", orderCtrl.CreateOrder)
	api.PUT("/orders/:id", orderCtrl.UpdateOrder)
	api.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	api.DELETE("/orders/:id", orderCtrl.DeleteOrder)
	api.POST("/orders/:id/ticket", orderCtrl.GenerateTicket)

	// VENDOR ORDERS
	api.GET("/vendors/:vendorId/orders", orderCtrl.GetVendorOrders)

	// STATS
	api.GET("/stats", statsCtrl.GetStats)

	return r
}
