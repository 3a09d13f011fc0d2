package update_shop_config

import (
	"context"

	"github.com/m04kA/SMC-BarberShop/internal/service/shop/models"
)

type ShopService interface {
	UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.ShopConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
