package lookup_client

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
	"github.com/m04kA/SMC-BarberShop/internal/service/clients"
)

const (
	msgMissingPhone   = "телефон обязателен"
	msgInvalidPhone   = "некорректный номер телефона"
	msgClientNotFound = "клиент не найден"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/lookup
// Query params: phone (required), в любом формате
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		h.logger.Warn("GET /clients/lookup - Missing phone")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	client, err := h.service.Lookup(r.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("GET /clients/lookup - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, clients.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("GET /clients/lookup - Failed to look up client: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, client)
}
