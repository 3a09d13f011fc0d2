package lookup_client

import (
	"context"

	"github.com/m04kA/SMC-BarberShop/internal/service/clients/models"
)

type ClientService interface {
	Lookup(ctx context.Context, phone string) (*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
