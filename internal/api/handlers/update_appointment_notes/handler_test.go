package update_appointment_notes

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
	called bool
	gotReq *models.UpdateNotesRequest
	err    error
}

func (f *fakeService) UpdateNotes(_ context.Context, _ int64, req *models.UpdateNotesRequest) error {
	f.called, f.gotReq = true, req
	return f.err
}

func newRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/"+id+"/notes", strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestHandle_SetAndClear(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("4", `{"notes":"prefere máquina 2"}`))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, svc.gotReq.Notes)
	assert.Equal(t, "prefere máquina 2", *svc.gotReq.Notes)

	rec = httptest.NewRecorder()
	h.Handle(rec, newRequest("4", `{"notes":null}`))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, svc.gotReq.Notes)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{"bad id", "abc", nil, http.StatusBadRequest},
		{"not found", "4", appointments.ErrAppointmentNotFound, http.StatusNotFound},
		{"too long", "4", appointments.ErrInvalidInput, http.StatusBadRequest},
		{"internal", "4", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.Nop())
			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(tt.id, `{"notes":"x"}`))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
