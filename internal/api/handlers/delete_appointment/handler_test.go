package delete_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberShop/internal/service/appointments"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
)

type fakeService struct {
	deleted int64
	err     error
}

func (f *fakeService) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = id
	return nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{"deleted", "9", nil, http.StatusNoContent},
		{"not found", "9", appointments.ErrAppointmentNotFound, http.StatusNotFound},
		{"internal", "9", errors.New("boom"), http.StatusInternalServerError},
		{"bad id", "-9", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			h := NewHandler(svc, logger.Nop())
			req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/"+tt.id, nil),
				map[string]string{"id": tt.id})

			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusNoContent {
				assert.Equal(t, int64(9), svc.deleted)
			}
		})
	}
}
