package send_notification

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	MarkReminderSent(ctx context.Context, id int64, sentAt time.Time) error
}

// ShopSettings настройки барбершопа с подстановкой значений по умолчанию
type ShopSettings interface {
	Config(ctx context.Context) (*domain.ShopConfig, error)
	Automation(ctx context.Context) (*domain.Automation, error)
}

// Sender отправляет сообщение в WhatsApp
type Sender interface {
	Send(ctx context.Context, phone, text string) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncNotifications(trigger, result string)
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
