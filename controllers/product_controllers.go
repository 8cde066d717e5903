package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pizzaecia/vendor-pos/models"
	"github.com/pizzaecia/vendor-pos/stores"
	"github.com/pizzaecia/vendor-pos/utils"
)

type ProductController struct {
	Catalog stores.CatalogStore
}

func NewProductController(catalog stores.CatalogStore) *ProductController {
	return &ProductController{Catalog: catalog}
}

// GetAllProducts lists active products only. Soft-deleted products stay in
// the store so old order items keep resolving.
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	products, err := pc.Catalog.List(true)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req struct {
		Name  string  `json:"name" binding:"required"`
		Type  string  `json:"type" binding:"required,oneof=caldo pizza tipica"`
		Size  string  `json:"size" binding:"omitempty,oneof=pequeno grande unico marmitex cumbuquinha"`
		Price float64 `json:"price" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product := models.Product{
		Name:  req.Name,
		Type:  req.Type,
		Size:  req.Size,
		Price: req.Price,
	}
	if err := pc.Catalog.Create(&product); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}
