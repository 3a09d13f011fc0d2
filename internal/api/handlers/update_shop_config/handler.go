package update_shop_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
	"github.com/m04kA/SMC-BarberShop/internal/service/shop"
	"github.com/m04kA/SMC-BarberShop/internal/service/shop/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidConfig      = "некорректные настройки барбершопа: проверьте название, WhatsApp и часы работы"
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

// Handle PUT /api/v1/shop/config
// Обновляются только переданные поля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /shop/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cfg, err := h.service.UpdateConfig(r.Context(), &req)
	if err != nil {
		if errors.Is(err, shop.ErrInvalidInput) {
			h.logger.Warn("PUT /shop/config - Invalid config: %v", err)
			handlers.RespondBadRequest(w, msgInvalidConfig)
			return
		}

		h.logger.Error("PUT /shop/config - Failed to update shop config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /shop/config - Shop config updated: hours=%s-%s", cfg.OpeningTime, cfg.ClosingTime)
	handlers.RespondJSON(w, http.StatusOK, cfg)
}
