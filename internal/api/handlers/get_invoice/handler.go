package get_invoice

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMP-FulfilmentService/internal/api/handlers"
	"github.com/m04kA/SMP-FulfilmentService/internal/api/middleware"
	"github.com/m04kA/SMP-FulfilmentService/internal/service/invoices"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "бронирование не найдено"
	msgNotCompleted     = "инвойс доступен только по завершённому бронированию"
)

type Handler struct {
	service InvoiceService
	logger  Logger
}

func NewHandler(service InvoiceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/invoice
// Отдаёт PDF инвойса без отправки и записи в реестр
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/invoice - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if _, ok := middleware.GetUserID(r.Context()); !ok {
		h.logger.Warn("GET /bookings/{id}/invoice - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	pdfBytes, invoiceNumber, err := h.service.Generate(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, invoices.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/invoice - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, invoices.ErrNotCompleted):
			handlers.RespondConflict(w, msgNotCompleted)

		default:
			h.logger.Error("GET /bookings/{id}/invoice - Failed to generate invoice: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", invoiceNumber))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
