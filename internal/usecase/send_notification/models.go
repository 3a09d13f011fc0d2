package send_notification

import "time"

// Trigger источник отправки уведомления
type Trigger string

const (
	// TriggerManual отправка из интерфейса администратора
	TriggerManual Trigger = "manual"
	// TriggerReminder автоматическое напоминание
	TriggerReminder Trigger = "reminder"
)

// Request модель запроса на отправку уведомления
type Request struct {
	AppointmentID int64
	Trigger       Trigger
	// Template шаблон сообщения (опционально)
	// По умолчанию: для manual - подтверждение, для reminder - шаблон из автоматизации
	Template *string
}

// Response модель ответа
type Response struct {
	AppointmentID int64
	Phone         string
	Message       string
	SentAt        time.Time
}
