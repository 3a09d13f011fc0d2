package get_shop_config

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberShop/internal/service/shop/models"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
)

type fakeService struct {
	resp *models.ShopConfigResponse
	err  error
}

func (f *fakeService) GetConfig(context.Context) (*models.ShopConfigResponse, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	h := NewHandler(&fakeService{resp: &models.ShopConfigResponse{
		Name: "Barbearia", OpeningTime: "09:00", ClosingTime: "19:00",
	}}, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/shop/config", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"closingTime":"19:00"`)
	assert.NotContains(t, rec.Body.String(), "updatedAt")

	h = NewHandler(&fakeService{err: errors.New("boom")}, logger.Nop())
	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/shop/config", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
