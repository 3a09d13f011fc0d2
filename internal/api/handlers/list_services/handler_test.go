package list_services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberShop/internal/service/catalog/models"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
)

type fakeService struct {
	resp *models.ServiceListResponse
	err  error
}

func (f *fakeService) List(context.Context) (*models.ServiceListResponse, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	h := NewHandler(&fakeService{resp: &models.ServiceListResponse{Services: []models.ServiceResponse{
		{ID: 1, Name: "Corte", Price: 45, DurationMinutes: 30},
	}}}, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Corte"`)
	assert.Contains(t, rec.Body.String(), `"durationMinutes":30`)

	h = NewHandler(&fakeService{err: errors.New("boom")}, logger.Nop())
	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
