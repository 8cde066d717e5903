package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pizzaecia/vendor-pos/models"
	"github.com/pizzaecia/vendor-pos/services"
	"github.com/pizzaecia/vendor-pos/stores"
	"github.com/pizzaecia/vendor-pos/utils"
)

type OrderController struct {
	Orders stores.OrderStore
}

func NewOrderController(orders stores.OrderStore) *OrderController {
	return &OrderController{Orders: orders}
}

type orderHeaderRequest struct {
	VendorID       string  `json:"vendorId" binding:"required"`
	CustomerName   string  `json:"customerName"`
	CustomerPhone  string  `json:"customerPhone"`
	PaymentMethod  string  `json:"paymentMethod" binding:"required,oneof=dinheiro pix aberto"`
	PaymentStatus  string  `json:"paymentStatus" binding:"omitempty,oneof=realizado pendente"`
	DeliveryStatus string  `json:"deliveryStatus" binding:"omitempty,oneof=realizada pendente"`
	Notes          string  `json:"notes"`
	TotalAmount    float64 `json:"totalAmount" binding:"gte=0"`
}

// GetAllOrders -> list orders with resolved items and vendor, newest first.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	limit := parseLimit(c)
	orders, err := oc.Orders.List(limit)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.Orders.GetByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder persists the header plus a non-empty item list as one unit.
// Item totals and the order total are recomputed server-side.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		Order *orderHeaderRequest `json:"order" binding:"required"`
		Items []stores.NewItem    `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	header := models.Order{
		VendorID:       req.Order.VendorID,
		CustomerName:   req.Order.CustomerName,
		CustomerPhone:  req.Order.CustomerPhone,
		PaymentMethod:  req.Order.PaymentMethod,
		PaymentStatus:  req.Order.PaymentStatus,
		DeliveryStatus: req.Order.DeliveryStatus,
		Notes:          req.Order.Notes,
	}
	if header.PaymentStatus == "" {
		header.PaymentStatus = models.StatusPendente
	}
	if header.DeliveryStatus == "" {
		header.DeliveryStatus = models.StatusPendente
	}

	order, err := oc.Orders.Create(header, req.Items)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order #%s created (%d items, total %.2f)",
		order.DisplayNumber(), len(order.Items), order.TotalAmount)
	c.JSON(http.StatusCreated, order)
}

// UpdateOrder merges header fields; a supplied item list replaces the
// previous one entirely.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var req struct {
		Order *stores.OrderPatch `json:"order"`
		Items []stores.NewItem   `json:"items" binding:"omitempty,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	patch := stores.OrderPatch{}
	if req.Order != nil {
		patch = *req.Order
	}

	order, err := oc.Orders.Update(c.Param("id"), patch, req.Items)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus flips payment and/or delivery status without touching
// the rest of the header.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		PaymentStatus  *string `json:"paymentStatus" binding:"omitempty,oneof=realizado pendente"`
		DeliveryStatus *string `json:"deliveryStatus" binding:"omitempty,oneof=realizada pendente"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.UpdateStatus(c.Param("id"), req.PaymentStatus, req.DeliveryStatus)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	if err := oc.Orders.Delete(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Pedido deletado com sucesso")
}

func (oc *OrderController) GetVendorOrders(c *gin.Context) {
	limit := parseLimit(c)
	orders, err := oc.Orders.ListByVendor(c.Param("vendorId"), limit)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GenerateTicket streams the printable PDF ticket for an order.
func (oc *OrderController) GenerateTicket(c *gin.Context) {
	order, err := oc.Orders.GetByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	pdfBytes, err := services.GenerateTicketPDF(order)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to generate ticket"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="pedido-%d.pdf"`, order.OrderNumber))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func parseLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// respondStoreError maps store sentinels onto the API error taxonomy.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, stores.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, stores.ErrEmptyItems), errors.Is(err, stores.ErrUnknownProduct):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
