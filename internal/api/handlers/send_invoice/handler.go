package send_invoice

import (
	"errors"
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
	msgDeliveryFailed   = "не удалось доставить инвойс"
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

// Handle POST /api/v1/bookings/{bookingId}/invoice
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/invoice - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/invoice - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Send(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, invoices.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/invoice - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, invoices.ErrNotCompleted):
			h.logger.Warn("POST /bookings/{id}/invoice - Booking not completed: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotCompleted)

		case errors.Is(err, invoices.ErrDeliveryFailed):
			h.logger.Error("POST /bookings/{id}/invoice - Delivery failed: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgDeliveryFailed)

		default:
			h.logger.Error("POST /bookings/{id}/invoice - Failed to send invoice: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/invoice - Invoice sent: booking_id=%d, invoice=%s, already_sent=%t, user_id=%d",
		bookingID, result.InvoiceNumber, result.AlreadySent, userID)
	handlers.RespondJSON(w, http.StatusOK, FromSendResult(result))
}
