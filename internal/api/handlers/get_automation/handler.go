package get_automation

import (
	"net/http"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
)

type Handler struct {
	service ShopService
	logger  Logger
}

func NewHandler(service ShopService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shop/automation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	automation, err := h.service.GetAutomation(r.Context())
	if err != nil {
		h.logger.Error("GET /shop/automation - Failed to get automation: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, automation)
}
