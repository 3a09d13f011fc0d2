package list_appointments

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
	"github.com/m04kA/SMC-BarberShop/internal/service/appointments/models"
)

// ToServiceRequest собирает фильтр из query параметров
// view, from, to, status, clientId, includeCancelled - все опциональны
func ToServiceRequest(r *http.Request) (*models.ListAppointmentsRequest, error) {
	query := r.URL.Query()
	req := &models.ListAppointmentsRequest{}

	if view := query.Get("view"); view != "" {
		v := models.View(view)
		req.View = &v
	}

	if from := query.Get("from"); from != "" {
		date, err := handlers.ParseDate(from)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		req.From = &date
	}

	if to := query.Get("to"); to != "" {
		date, err := handlers.ParseDate(to)
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
		req.To = &date
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	clientID, err := handlers.QueryID(r, "clientId")
	if err != nil {
		return nil, fmt.Errorf("clientId: %w", err)
	}
	req.ClientID = clientID

	if raw := query.Get("includeCancelled"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("includeCancelled: %w", err)
		}
		req.IncludeCancelled = include
	}

	return req, nil
}
