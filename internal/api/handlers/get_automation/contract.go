package get_automation

import (
	"context"

	"github.com/m04kA/SMC-BarberShop/internal/service/shop/models"
)

type ShopService interface {
	GetAutomation(ctx context.Context) (*models.AutomationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
