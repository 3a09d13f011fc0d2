package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// Request модель запроса на создание записи
// Клиент задается либо ClientID, либо именем и телефоном
type Request struct {
	ClientID    *int64  // ID существующего клиента (опционально)
	ClientName  string  // Имя нового клиента
	ClientPhone string  // Телефон, по нему ищется существующий клиент
	ClientEmail *string // Email (опционально)

	ServiceID int64            // ID услуги
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Notes     *string          // Заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID          int64
	ClientID    int64
	ClientName  string
	ClientPhone string
	NewClient   bool // true, если клиент создан этой записью

	ServiceID       int64
	ServiceName     string
	ServicePrice    float64
	DurationMinutes int

	Date      time.Time
	StartTime types.TimeString
	Status    string
	Notes     *string

	CreatedAt time.Time
}
