package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/availability"
)

// SnapshotLoader загружает данные для расчета слотов на день
type SnapshotLoader interface {
	Load(ctx context.Context, date time.Time) (availability.Snapshot, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	ObserveSlots(source string, count int)
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

// RealTimeProvider реальный провайдер времени для production
// Время возвращается в часовом поясе барбершопа
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
