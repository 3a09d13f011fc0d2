package get_client_history

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberShop/internal/service/clients"
	"github.com/m04kA/SMC-BarberShop/internal/service/clients/models"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
)

type fakeService struct{ err error }

func (f *fakeService) History(_ context.Context, clientID int64) (*models.ClientHistoryResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ClientHistoryResponse{
		Client:     models.ClientResponse{ID: clientID, Name: "Ana"},
		Visits:     []models.VisitResponse{{AppointmentID: 1, StartTime: "10:00", ServicePrice: 45, Status: "confirmed"}},
		TotalSpent: 45,
	}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{"found", "6", nil, http.StatusOK},
		{"not found", "6", clients.ErrClientNotFound, http.StatusNotFound},
		{"internal", "6", errors.New("boom"), http.StatusInternalServerError},
		{"bad id", "six", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.Nop())
			req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/clients/"+tt.id+"/appointments", nil),
				map[string]string{"id": tt.id})

			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"totalSpent":45`)
			}
		})
	}
}
