package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzaecia/vendor-pos/models"
)

func sampleOrder() *models.Order {
	return &models.Order{
		ID:          "o1",
		OrderNumber: 7,
		VendorID:    "v1",
		Vendor:      &models.User{ID: "v1", Name: "João Vendedor"},
		CustomerName:   "Maria",
		PaymentMethod:  models.PaymentDinheiro,
		PaymentStatus:  models.PaymentRealizado,
		DeliveryStatus: models.StatusPendente,
		TotalAmount:    50.00,
		CreatedAt:      time.Date(2025, 6, 10, 18, 30, 0, 0, time.UTC),
		Items: []models.OrderItem{
			{
				ID: "i1", OrderID: "o1", ProductID: "p1",
				Product:  &models.Product{ID: "p1", Name: "Pizza Margherita", Size: models.SizeGrande},
				Quantity: 1, UnitPrice: 35.00, TotalPrice: 35.00,
			},
			{
				ID: "i2", OrderID: "o1", ProductID: "p2",
				Product:  &models.Product{ID: "p2", Name: "Tapioca", Size: models.SizeUnico},
				Quantity: 1, UnitPrice: 15.00, TotalPrice: 15.00,
			},
		},
	}
}

func TestGenerateTicketPDF(t *testing.T) {
	pdfBytes, err := GenerateTicketPDF(sampleOrder())
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestGenerateTicketPDFWithDanglingRefs(t *testing.T) {
	order := sampleOrder()
	order.Vendor = nil
	order.Items[0].Product = nil

	pdfBytes, err := GenerateTicketPDF(order)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
