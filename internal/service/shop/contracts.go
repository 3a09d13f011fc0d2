package shop

import (
	"context"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

// ShopRepository интерфейс репозитория настроек барбершопа
type ShopRepository interface {
	GetConfig(ctx context.Context) (*domain.ShopConfig, error)
	UpsertConfig(ctx context.Context, cfg *domain.ShopConfig) (*domain.ShopConfig, error)
	GetAutomation(ctx context.Context) (*domain.Automation, error)
	UpsertAutomation(ctx context.Context, a *domain.Automation) (*domain.Automation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
