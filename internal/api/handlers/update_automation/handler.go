package update_automation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
	"github.com/m04kA/SMC-BarberShop/internal/service/shop"
	"github.com/m04kA/SMC-BarberShop/internal/service/shop/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAutomation  = "некорректные настройки напоминаний"
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

// Handle PUT /api/v1/shop/automation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAutomationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /shop/automation - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	automation, err := h.service.UpdateAutomation(r.Context(), &req)
	if err != nil {
		if errors.Is(err, shop.ErrInvalidInput) {
			h.logger.Warn("PUT /shop/automation - Invalid automation: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAutomation)
			return
		}

		h.logger.Error("PUT /shop/automation - Failed to update automation: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /shop/automation - Automation updated: enabled=%t, lead=%s", automation.Enabled, automation.ReminderLead)
	handlers.RespondJSON(w, http.StatusOK, automation)
}
