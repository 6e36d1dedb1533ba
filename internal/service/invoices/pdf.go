package invoices

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
)

// renderInvoice рендерит PDF инвойса по завершённому бронированию.
// Позиции берутся из замороженного выбора, суммы - из денормализованной
// детализации, зафиксированной при подтверждении
func renderInvoice(booking *domain.Booking, invoiceNumber string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", invoiceNumber), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "INVOICE")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Invoice number: %s", invoiceNumber))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Booking: #%d", booking.ID))
	pdf.Ln(6)
	if booking.CompletedAt != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Completed at: %s", booking.CompletedAt.UTC().Format("2006-01-02 15:04")))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s (%s)", booking.CustomerName, booking.CustomerPhone))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(120, 8, "Service", "1", 0, "L", false, 0, "")
	pdf.CellFormat(70, 8, "Item", "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, serviceName := range booking.Selections.ServiceNames() {
		for _, itemKey := range booking.Selections.ItemKeys(serviceName) {
			label := "option " + itemKey
			if itemKey == domain.BaseItemKey {
				label = "base service"
			}
			pdf.CellFormat(120, 8, serviceName, "1", 0, "L", false, 0, "")
			pdf.CellFormat(70, 8, label, "1", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(6)

	writeTotal := func(label string, value int64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 11)
		pdf.CellFormat(120, 7, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(70, 7, fmt.Sprintf("%d", value), "", 1, "R", false, 0, "")
	}

	writeTotal("Subtotal", booking.Subtotal.Int64(), false)
	if booking.DiscountAmount > 0 {
		writeTotal("Discount", -booking.DiscountAmount.Int64(), false)
	}
	writeTotal("Tax", booking.TaxAmount.Int64(), false)
	writeTotal("Total", booking.Amount.Int64(), true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: render pdf: %v", ErrInternal, err)
	}
	return buf.Bytes(), nil
}
