package update_automation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberShop/internal/service/shop"
	"github.com/m04kA/SMC-BarberShop/internal/service/shop/models"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
)

type fakeService struct {
	got *models.UpdateAutomationRequest
	err error
}

func (f *fakeService) UpdateAutomation(_ context.Context, req *models.UpdateAutomationRequest) (*models.AutomationResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AutomationResponse{Enabled: *req.Enabled, ReminderLead: "30min"}, nil
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPut, "/api/v1/shop/automation", strings.NewReader(`{"enabled":true}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"enabled":true`)
	assert.Nil(t, svc.got.ReminderLead)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"bad body", `{"enabled":"yes"}`, nil, http.StatusBadRequest},
		{"invalid lead", `{"enabled":true}`, shop.ErrInvalidInput, http.StatusBadRequest},
		{"internal", `{"enabled":true}`, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.Nop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPut, "/api/v1/shop/automation", strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
