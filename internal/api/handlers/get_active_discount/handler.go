package get_active_discount

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMP-FulfilmentService/internal/api/handlers"
	"github.com/m04kA/SMP-FulfilmentService/internal/service/catalog"
)

const (
	msgInvalidProviderID = "некорректный ID провайдера"
	msgNoActiveDiscount  = "активная скидка не найдена"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/discount
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/discount - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	discount, err := h.service.GetActiveDiscount(r.Context(), providerID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDiscountNotFound):
			handlers.RespondNotFound(w, msgNoActiveDiscount)

		default:
			h.logger.Error("GET /providers/{id}/discount - Failed to get discount: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, discount)
}
