package update_appointment_status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberShop/internal/service/appointments"
	"github.com/m04kA/SMC-BarberShop/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
)

type fakeService struct {
	gotID  int64
	gotReq *models.UpdateStatusRequest
	err    error
}

func (f *fakeService) UpdateStatus(_ context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	f.gotID, f.gotReq = id, req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentResponse{ID: id, Status: req.Status}, nil
}

func newRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/"+id+"/status", strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("3", `{"status":"confirmed"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
	assert.Equal(t, int64(3), svc.gotID)
	assert.Equal(t, "confirmed", svc.gotReq.Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		body   string
		err    error
		status int
	}{
		{"bad id", "0", `{"status":"confirmed"}`, nil, http.StatusBadRequest},
		{"bad body", "3", `{"state":"confirmed"}`, nil, http.StatusBadRequest},
		{"not found", "3", `{"status":"confirmed"}`, appointments.ErrAppointmentNotFound, http.StatusNotFound},
		{"invalid status", "3", `{"status":"done"}`, appointments.ErrInvalidInput, http.StatusBadRequest},
		{"invalid transition", "3", `{"status":"pending"}`, appointments.ErrInvalidTransition, http.StatusConflict},
		{"internal", "3", `{"status":"confirmed"}`, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.Nop())
			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(tt.id, tt.body))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
