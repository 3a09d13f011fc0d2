package get_client_history

import (
	"context"

	"github.com/m04kA/SMC-BarberShop/internal/service/clients/models"
)

type ClientService interface {
	History(ctx context.Context, clientID int64) (*models.ClientHistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
