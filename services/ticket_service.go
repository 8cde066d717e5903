package services

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/pizzaecia/vendor-pos/models"
	"github.com/pizzaecia/vendor-pos/utils"
)

const (
	ticketWidth  = 226 // thermal printer paper, in points
	ticketHeight = 600
	ticketMargin = 10
)

var paymentMethodLabels = map[string]string{
	models.PaymentDinheiro: "Dinheiro",
	models.PaymentPix:      "PIX",
	models.PaymentAberto:   "Em Aberto",
}

// GenerateTicketPDF renders the printable order ticket in the thermal
// printer format. The order must come with items and vendor resolved.
func GenerateTicketPDF(order *models.Order) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: ticketWidth, Ht: ticketHeight},
	})
	pdf.SetMargins(ticketMargin, ticketMargin, ticketMargin)
	pdf.SetAutoPageBreak(true, ticketMargin)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	width := float64(ticketWidth - 2*ticketMargin)

	line := func(size float64, style, text, align string) {
		pdf.SetFont("Helvetica", style, size)
		pdf.CellFormat(width, size+4, tr(text), "", 1, align, false, 0, "")
	}
	separator := func() {
		line(10, "", "----------------------------------------", "C")
	}

	// business header
	line(16, "B", "PIZZA & CIA", "C")
	line(10, "", "Comidas Típicas & Caldos", "C")
	line(10, "", "(11) 99999-9999", "C")

	separator()

	vendorName := models.PlaceholderVendorName
	if order.Vendor != nil {
		vendorName = order.Vendor.Name
	}

	line(10, "", fmt.Sprintf("Pedido: #%s", order.DisplayNumber()), "L")
	line(10, "", fmt.Sprintf("Data/Hora: %s", order.CreatedAt.Format("02/01/2006 15:04:05")), "L")
	line(10, "", fmt.Sprintf("Vendedor: %s", vendorName), "L")
	if order.CustomerName != "" {
		line(10, "", fmt.Sprintf("Cliente: %s", order.CustomerName), "L")
	}

	separator()
	line(10, "", "ITENS", "C")
	separator()

	for _, item := range order.Items {
		name := models.PlaceholderProductName
		size := ""
		if item.Product != nil {
			name = item.Product.Name
			size = item.Product.Size
		}
		if size != "" && size != models.SizeUnico {
			name = fmt.Sprintf("%s %s", name, size)
		}
		line(10, "", fmt.Sprintf("%dx %s", item.Quantity, name), "L")
		line(10, "", utils.FormatBRL(item.TotalPrice), "R")
	}

	separator()
	line(12, "B", fmt.Sprintf("TOTAL: %s", utils.FormatBRL(order.TotalAmount)), "C")
	separator()

	method, ok := paymentMethodLabels[order.PaymentMethod]
	if !ok {
		method = order.PaymentMethod
	}
	paymentStatus := "Pendente"
	if order.PaymentStatus == models.PaymentRealizado {
		paymentStatus = "Realizado"
	}
	deliveryStatus := "Pendente"
	if order.DeliveryStatus == models.DeliveryRealizada {
		deliveryStatus = "Entregue"
	}

	line(10, "", fmt.Sprintf("Forma Pagto: %s", method), "L")
	line(10, "", fmt.Sprintf("Status Pagto: %s", paymentStatus), "L")
	line(10, "", fmt.Sprintf("Status Entrega: %s", deliveryStatus), "L")

	separator()
	line(9, "", "Obrigado pela preferência!", "C")
	line(9, "", "www.pizzaecia.com.br", "C")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
