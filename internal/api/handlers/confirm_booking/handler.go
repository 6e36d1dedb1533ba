package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMP-FulfilmentService/internal/api/handlers"
	"github.com/m04kA/SMP-FulfilmentService/internal/api/middleware"
	usecase "github.com/m04kA/SMP-FulfilmentService/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgEmptySelection     = "не выбрана ни одна позиция"
	msgStaffRequired      = "не выбран сотрудник"
	msgStaffNotEligible   = "сотрудник не выполняет выбранные услуги"
	msgCatalogMismatch    = "выбор не соответствует каталогу"
	msgDiscountNotFound   = "скидка не найдена"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(customerID))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptySelection):
			h.logger.Warn("POST /bookings - Empty selection: customer_id=%d", customerID)
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, usecase.ErrStaffRequired):
			handlers.RespondBadRequest(w, msgStaffRequired)

		case errors.Is(err, usecase.ErrStaffNotEligible):
			h.logger.Warn("POST /bookings - Staff not eligible: customer_id=%d, staff_id=%s",
				customerID, req.StaffID)
			handlers.RespondUnprocessable(w, msgStaffNotEligible)

		case errors.Is(err, usecase.ErrCatalogMismatch):
			h.logger.Warn("POST /bookings - Catalog mismatch: customer_id=%d, error=%v", customerID, err)
			handlers.RespondUnprocessable(w, msgCatalogMismatch)

		case errors.Is(err, usecase.ErrDiscountNotFound):
			handlers.RespondNotFound(w, msgDiscountNotFound)

		case errors.Is(err, usecase.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to confirm booking: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, customer_id=%d",
		resp.Booking.ID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
