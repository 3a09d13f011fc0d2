package get_shop_config

import (
	"context"

	"github.com/m04kA/SMC-BarberShop/internal/service/shop/models"
)

type ShopService interface {
	GetConfig(ctx context.Context) (*models.ShopConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
