package update_service

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

	"github.com/m04kA/SMC-BarberShop/internal/service/catalog"
	"github.com/m04kA/SMC-BarberShop/internal/service/catalog/models"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
)

type fakeService struct {
	gotID  int64
	gotReq *models.UpdateServiceRequest
	err    error
}

func (f *fakeService) Update(_ context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	f.gotID, f.gotReq = id, req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ServiceResponse{ID: id, Name: "Corte", Price: *req.Price, DurationMinutes: 30}, nil
}

func newRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/services/"+id, strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestHandle_PartialUpdate(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("2", `{"price":50}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":50`)
	assert.Equal(t, int64(2), svc.gotID)
	assert.Nil(t, svc.gotReq.Name)
	assert.Nil(t, svc.gotReq.DurationMinutes)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{"bad id", "two", nil, http.StatusBadRequest},
		{"not found", "2", catalog.ErrServiceNotFound, http.StatusNotFound},
		{"invalid", "2", catalog.ErrInvalidInput, http.StatusBadRequest},
		{"internal", "2", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.Nop())
			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(tt.id, `{"price":50}`))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
