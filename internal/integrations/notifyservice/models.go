package notifyservice

// InvoiceDelivery запрос на доставку инвойса покупателю
// PDF передается в base64, формат доставки (email/push) выбирает NotifyService
type InvoiceDelivery struct {
	BookingID     int64  `json:"bookingId"`
	ProviderID    int64  `json:"providerId"`
	CustomerID    int64  `json:"customerId"`
	InvoiceNumber string `json:"invoiceNumber"`
	PDFBase64     string `json:"pdfBase64"`
}

// ErrorResponse модель ошибки от NotifyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
