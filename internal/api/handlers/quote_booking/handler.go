package quote_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMP-FulfilmentService/internal/api/handlers"
	usecase "github.com/m04kA/SMP-FulfilmentService/internal/usecase/quote_booking"
)

const (
	msgInvalidProviderID  = "некорректный ID провайдера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCatalogMismatch    = "выбор не соответствует каталогу"
	msgDiscountNotFound   = "скидка не найдена"
)

type Handler struct {
	useCase QuoteUseCase
	logger  Logger
}

func NewHandler(useCase QuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/providers/{providerId}/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /providers/{id}/quote - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers/{id}/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(providerID))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCatalogMismatch):
			h.logger.Warn("POST /providers/{id}/quote - Catalog mismatch: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondUnprocessable(w, msgCatalogMismatch)

		case errors.Is(err, usecase.ErrDiscountNotFound), errors.Is(err, usecase.ErrDiscountWrongProvider):
			h.logger.Warn("POST /providers/{id}/quote - Discount not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgDiscountNotFound)

		case errors.Is(err, usecase.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /providers/{id}/quote - Failed to compute quote: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
