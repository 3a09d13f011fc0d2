package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date                 time.Time // Дата (без времени)
	ServiceID            int64     // ID услуги
	ExcludeAppointmentID *int64    // ID редактируемой записи (опционально)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      time.Time
	ServiceID int64
	Slots     []types.TimeString // Время начала, "HH:MM" по возрастанию
}
