package send_invoice

import (
	"github.com/m04kA/SMP-FulfilmentService/internal/service/invoices"
)

// SendInvoiceResponse модель ответа на отправку инвойса
type SendInvoiceResponse struct {
	InvoiceNumber string `json:"invoice_number"`
	AlreadySent   bool   `json:"already_sent"`
}

// FromSendResult конвертирует результат сервиса в модель ответа API
func FromSendResult(result *invoices.SendResult) *SendInvoiceResponse {
	return &SendInvoiceResponse{
		InvoiceNumber: result.InvoiceNumber,
		AlreadySent:   result.AlreadySent,
	}
}
