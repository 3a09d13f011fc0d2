package reschedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	AppointmentID int64
	Date          time.Time
	StartTime     types.TimeString
	ServiceID     *int64 // Новая услуга (опционально, по умолчанию текущая)
}

// Response модель ответа с перенесенной записью
type Response struct {
	Appointment *domain.Appointment
}
