package list_clients

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
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

// Handle GET /api/v1/clients
// Query params: q (optional) - поиск по имени или телефону
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("q"))

	result, err := h.service.List(r.Context(), search)
	if err != nil {
		h.logger.Error("GET /clients - Failed to list clients: search=%q, error=%v", search, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
