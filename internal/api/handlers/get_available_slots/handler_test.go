package get_available_slots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-BarberShop/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

type fakeUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:      time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		ServiceID: 3,
		Slots:     []types.TimeString{"09:00", "09:30", "11:00"},
	}}
	h := NewHandler(uc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2026-10-20&serviceId=3&excludeAppointmentId=7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2026-10-20","serviceId":3,"slots":["09:00","09:30","11:00"]}`, rec.Body.String())

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(3), uc.got.ServiceID)
	require.NotNil(t, uc.got.ExcludeAppointmentID)
	assert.Equal(t, int64(7), *uc.got.ExcludeAppointmentID)
	assert.Equal(t, "2026-10-20", uc.got.Date.Format("2006-01-02"))
}

func TestHandle_EmptySlotsIsArray(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:      time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		ServiceID: 99,
	}}
	h := NewHandler(uc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2026-10-20&serviceId=99", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2026-10-20","serviceId":99,"slots":[]}`, rec.Body.String())
	assert.Nil(t, uc.got.ExcludeAppointmentID)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing service", "?date=2026-10-20"},
		{"invalid service", "?date=2026-10-20&serviceId=abc"},
		{"non-positive service", "?date=2026-10-20&serviceId=0"},
		{"invalid exclude", "?date=2026-10-20&serviceId=3&excludeAppointmentId=x"},
		{"missing date", "?serviceId=3"},
		{"invalid date", "?date=20-10-2026&serviceId=3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			h := NewHandler(uc, logger.Nop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots"+tt.query, nil))

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
		{getAvailableSlots.ErrInvalidInput, http.StatusBadRequest},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		h := NewHandler(&fakeUseCase{err: tt.err}, logger.Nop())
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2026-10-20&serviceId=3", nil))
		assert.Equal(t, tt.status, rec.Code, tt.err.Error())
	}
}
