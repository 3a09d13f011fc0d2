package reschedule_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	rescheduleAppointment "github.com/m04kA/SMC-BarberShop/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

type fakeUseCase struct {
	got  *rescheduleAppointment.Request
	resp *rescheduleAppointment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *rescheduleAppointment.Request) (*rescheduleAppointment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func newRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/"+id+"/reschedule", strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &rescheduleAppointment.Response{Appointment: &domain.Appointment{
		ID:        7,
		ServiceID: 2,
		Date:      time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC),
		StartTime: "14:30",
		Status:    domain.StatusConfirmed,
	}}}
	h := NewHandler(uc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("7", `{"date":"2026-10-21","startTime":"14:30","serviceId":2}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"2026-10-21"`)
	assert.Contains(t, rec.Body.String(), `"startTime":"14:30"`)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.AppointmentID)
	assert.Equal(t, types.TimeString("14:30"), uc.got.StartTime)
	require.NotNil(t, uc.got.ServiceID)
	assert.Equal(t, int64(2), *uc.got.ServiceID)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		id   string
		body string
	}{
		{"bad id", "abc", `{"date":"2026-10-21","startTime":"14:30"}`},
		{"bad body", "7", `[]`},
		{"bad date", "7", `{"date":"21.10.2026","startTime":"14:30"}`},
		{"bad time", "7", `{"date":"2026-10-21","startTime":"2pm"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			h := NewHandler(uc, logger.Nop())

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(tt.id, tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{rescheduleAppointment.ErrAppointmentNotFound, http.StatusNotFound},
		{rescheduleAppointment.ErrAppointmentCancelled, http.StatusConflict},
		{rescheduleAppointment.ErrServiceNotFound, http.StatusNotFound},
		{rescheduleAppointment.ErrSlotNotAvailable, http.StatusConflict},
		{rescheduleAppointment.ErrInvalidInput, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		h := NewHandler(&fakeUseCase{err: tt.err}, logger.Nop())
		rec := httptest.NewRecorder()
		h.Handle(rec, newRequest("7", `{"date":"2026-10-21","startTime":"14:30"}`))
		assert.Equal(t, tt.status, rec.Code, tt.err.Error())
	}
}
