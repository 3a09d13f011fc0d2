package reminders

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/internal/usecase/send_notification"
)

// AppointmentRepository источник записей, ожидающих напоминания
type AppointmentRepository interface {
	ListDueForReminder(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
}

// AutomationSettings настройки напоминаний
type AutomationSettings interface {
	Automation(ctx context.Context) (*domain.Automation, error)
}

// Notifier отправляет напоминание по записи
type Notifier interface {
	Execute(ctx context.Context, req *send_notification.Request) (*send_notification.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
